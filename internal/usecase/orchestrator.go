package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/wb_cache/internal/domain"
	"github.com/Gunvolt24/wb_cache/internal/ports"
	"github.com/Gunvolt24/wb_cache/pkg/metrics"
)

// Проверка, что Orchestrator удовлетворяет порту CacheOrchestrator.
var _ ports.CacheOrchestrator = (*Orchestrator)(nil)

// Orchestrator — протокол согласованности кэша и хранилища.
// Сам данными не владеет: владеет порядком обращений к адаптерам
// и семантикой отказов для каждого паттерна. Состояния между вызовами
// нет, поэтому экземпляр безопасен для конкурентного использования.
type Orchestrator struct {
	store ports.ItemStore  // авторитетное хранилище
	cache ports.ItemCache  // эфемерный кэш с TTL
	queue ports.WriteQueue // отложенная запись для write-behind
	log   ports.Logger
	ttl   time.Duration // единый TTL кэш-записей для всех паттернов
	now   func() time.Time
}

// NewOrchestrator — DI-конструктор. ttl <= 0 заменяется на 30 секунд.
func NewOrchestrator(
	store ports.ItemStore,
	cache ports.ItemCache,
	queue ports.WriteQueue,
	log ports.Logger,
	ttl time.Duration,
) *Orchestrator {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &Orchestrator{
		store: store,
		cache: cache,
		queue: queue,
		log:   log,
		ttl:   ttl,
		now:   time.Now,
	}
}

// WriteThrough — синхронная запись в хранилище, затем в кэш.
// Порядок фиксирован: сначала хранилище (долговечность раньше быстрой копии),
// успех возвращается только когда завершились обе записи.
// Ошибка хранилища прерывает операцию до каких-либо изменений кэша.
// Ошибка кэша после успешной записи в хранилище — отдельная ошибка
// domain.ErrUncachedWrite: данные долговечны, кэш догонит на read-miss.
func (o *Orchestrator) WriteThrough(ctx context.Context, id string, item *domain.Item) (*domain.Item, error) {
	stored := o.stamp(id, item)

	if err := o.store.Put(ctx, stored); err != nil {
		o.log.Errorf(ctx, "write-through: store.Put failed id=%s err=%v", id, err)
		metrics.PatternOps.WithLabelValues("write_through", "error").Inc()
		return nil, fmt.Errorf("store put: %w", err)
	}

	if err := o.cache.SetWithTTL(ctx, stored, o.ttl); err != nil {
		o.log.Warnf(ctx, "write-through: cache.SetWithTTL failed id=%s err=%v", id, err)
		metrics.PatternOps.WithLabelValues("write_through", "error").Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrUncachedWrite, err)
	}

	metrics.PatternOps.WithLabelValues("write_through", "ok").Inc()
	return stored, nil
}

// WriteBehind — запись в кэш с TTL и постановка отложенной задачи на
// запись в хранилище. Успех возвращается сразу после записи в кэш;
// судьба отложенной записи вызывающему не видна. До её применения
// единственная копия значения живёт в кэше и подвержена TTL —
// осознанная плата за латентность одной кэш-записи.
func (o *Orchestrator) WriteBehind(ctx context.Context, id string, item *domain.Item) (*domain.Item, error) {
	stored := o.stamp(id, item)

	if err := o.cache.SetWithTTL(ctx, stored, o.ttl); err != nil {
		o.log.Errorf(ctx, "write-behind: cache.SetWithTTL failed id=%s err=%v", id, err)
		metrics.PatternOps.WithLabelValues("write_behind", "error").Inc()
		return nil, fmt.Errorf("cache set: %w", err)
	}

	if err := o.queue.Enqueue(ctx, stored); err != nil {
		// Кэш уже обновлён; задача не принята — хранилище не узнает об этой записи.
		o.log.Errorf(ctx, "write-behind: enqueue failed id=%s err=%v", id, err)
		metrics.PatternOps.WithLabelValues("write_behind", "error").Inc()
		return nil, fmt.Errorf("enqueue deferred write: %w", err)
	}

	metrics.PatternOps.WithLabelValues("write_behind", "ok").Inc()
	return stored, nil
}

// ReadThrough — чтение с автозаполнением кэша при промахе.
// Поведенчески совпадает с ReadCacheAside; отдельная точка входа
// сохранена, потому что у паттернов разные владельцы логики
// (кэш-слой против приложения) и разные гарантии в развёртывании.
func (o *Orchestrator) ReadThrough(ctx context.Context, id string) (*domain.Item, error) {
	return o.readMiss(ctx, "read_through", id)
}

// ReadCacheAside — приложение само проверяет кэш, при промахе идёт в
// хранилище и заполняет кэш.
func (o *Orchestrator) ReadCacheAside(ctx context.Context, id string) (*domain.Item, error) {
	return o.readMiss(ctx, "cache_aside", id)
}

// readMiss — общий протокол чтения:
// 1) кэш; недоступность кэша — не фатальна, считаем промахом;
// 2) при промахе — хранилище; отсутствие записи — domain.ErrNotFound,
//    отрицательный результат не кэшируется;
// 3) найденную запись кладём в кэш (ошибка — только предупреждение).
// Два конкурентных промаха по одному id могут оба дойти до хранилища и
// оба заполнить кэш — это допустимо, заполнения идемпотентны.
func (o *Orchestrator) readMiss(ctx context.Context, pattern, id string) (*domain.Item, error) {
	item, found, err := o.cache.Get(ctx, id)
	if err != nil {
		o.log.Warnf(ctx, "%s: cache.Get failed id=%s err=%v (fallback to store)", pattern, id, err)
	}
	if found {
		o.log.Infof(ctx, "%s: cache hit id=%s", pattern, id)
		metrics.PatternOps.WithLabelValues(pattern, "ok").Inc()
		return item, nil
	}
	o.log.Infof(ctx, "%s: cache miss id=%s", pattern, id)

	start := o.now()
	item, err = o.store.Get(ctx, id)
	if err != nil {
		o.log.Errorf(ctx, "%s: store.Get failed id=%s err=%v", pattern, id, err)
		metrics.PatternOps.WithLabelValues(pattern, "error").Inc()
		return nil, fmt.Errorf("store get: %w", err)
	}
	if item == nil {
		metrics.PatternOps.WithLabelValues(pattern, "not_found").Inc()
		return nil, domain.ErrNotFound
	}

	if setErr := o.cache.SetWithTTL(ctx, item, o.ttl); setErr != nil {
		o.log.Warnf(ctx, "%s: cache.SetWithTTL failed id=%s err=%v", pattern, id, setErr)
	}

	o.log.Infof(ctx, "%s: store fetch id=%s took=%s", pattern, id, time.Since(start))
	metrics.PatternOps.WithLabelValues(pattern, "ok").Inc()
	return item, nil
}

// Invalidate — убирает запись из кэша. removed=false означает, что записи
// уже не было; оба исхода — успех.
func (o *Orchestrator) Invalidate(ctx context.Context, id string) (bool, error) {
	removed, err := o.cache.Delete(ctx, id)
	if err != nil {
		o.log.Errorf(ctx, "invalidate: cache.Delete failed id=%s err=%v", id, err)
		metrics.PatternOps.WithLabelValues("invalidate", "error").Inc()
		return false, fmt.Errorf("cache delete: %w", err)
	}
	metrics.PatternOps.WithLabelValues("invalidate", "ok").Inc()
	return removed, nil
}

// DeleteAndInvalidate — удаление из хранилища, затем инвалидация кэша,
// независимо от того, нашлось ли что удалять в хранилище.
// Порядок фиксирован: если инвалидация оборвётся, кэш в худшем случае
// отдаёт устаревшую запись до истечения TTL (само-восстановление),
// а не пустой кэш при живой записи в хранилище.
func (o *Orchestrator) DeleteAndInvalidate(ctx context.Context, id string) error {
	found, err := o.store.Delete(ctx, id)
	if err != nil {
		o.log.Errorf(ctx, "delete: store.Delete failed id=%s err=%v", id, err)
		metrics.PatternOps.WithLabelValues("delete", "error").Inc()
		return fmt.Errorf("store delete: %w", err)
	}
	if !found {
		o.log.Infof(ctx, "delete: id=%s not present in store", id)
	}

	if _, err := o.cache.Delete(ctx, id); err != nil {
		o.log.Errorf(ctx, "delete: cache.Delete failed id=%s err=%v", id, err)
		metrics.PatternOps.WithLabelValues("delete", "error").Inc()
		return fmt.Errorf("cache delete: %w", err)
	}

	metrics.PatternOps.WithLabelValues("delete", "ok").Inc()
	return nil
}

// Health — доступность кэша (хранилище проверяется пулом при старте).
func (o *Orchestrator) Health(ctx context.Context) error {
	return o.cache.Ping(ctx)
}

// StoreItem — чтение напрямую из хранилища, мимо кэша (отладочная выдача).
func (o *Orchestrator) StoreItem(ctx context.Context, id string) (*domain.Item, error) {
	item, err := o.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store get: %w", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// StoreList — последние записи хранилища (отладочная выдача).
func (o *Orchestrator) StoreList(ctx context.Context, limit, offset int) ([]*domain.Item, error) {
	return o.store.List(ctx, limit, offset)
}

// WarmUpCache — прогрев кэша последними N записями хранилища.
// Если n <= 0, прогрев не выполняется (но это не ошибка).
func (o *Orchestrator) WarmUpCache(ctx context.Context, n int) error {
	if n <= 0 {
		o.log.Warnf(ctx, "cache warm-up skipped: n <= 0 (n=%d)", n)
		return nil
	}

	start := o.now()
	list, err := o.store.List(ctx, n, 0)
	if err != nil {
		o.log.Errorf(ctx, "warm-up: store.List failed n=%d err=%v", n, err)
		return err
	}
	for _, item := range list {
		if setErr := o.cache.SetWithTTL(ctx, item, o.ttl); setErr != nil {
			o.log.Warnf(ctx, "warm-up: cache.SetWithTTL failed id=%s err=%v", item.ID, setErr)
		}
	}
	o.log.Infof(ctx, "cache warmed with %d items in %s", len(list), time.Since(start))
	return nil
}

// stamp — копия входной записи с нормализованным id и временем записи.
// id из пути маршрута всегда выигрывает у id в теле.
func (o *Orchestrator) stamp(id string, item *domain.Item) *domain.Item {
	stored := item.Clone()
	stored.ID = id
	stored.Timestamp = o.now().UTC()
	return stored
}
