package memory

import (
	"context"
	"errors"
	"hash/fnv"
	"sync"
	"time"

	"github.com/Gunvolt24/wb_cache/internal/domain"
	"github.com/Gunvolt24/wb_cache/internal/ports"
	"github.com/Gunvolt24/wb_cache/pkg/metrics"
)

// Проверка, что DeferredWriteQueue удовлетворяет интерфейсу WriteQueue.
var _ ports.WriteQueue = (*DeferredWriteQueue)(nil)

// ErrQueueClosed — постановка после Close.
var ErrQueueClosed = errors.New("deferred write queue is closed")

// DeferredWriteQueue — очередь отложенной записи в хранилище.
// Ключи шардируются по воркерам хэшем, у каждого воркера свой FIFO-канал:
// задачи по одному ключу всегда применяются в порядке постановки,
// порядок между разными ключами не гарантируется.
//
// Очередь живёт только в памяти: падение процесса до применения задачи
// теряет её насовсем. Неудачная запись в хранилище не ретраится —
// задача отбрасывается с предупреждением и метрикой. Оба свойства —
// осознанный профиль рисков write-behind, а не недоработка.
type DeferredWriteQueue struct {
	store        ports.ItemStore
	log          ports.Logger
	shards       []chan *domain.Item
	applyTimeout time.Duration

	mu     sync.RWMutex
	closed bool

	wg sync.WaitGroup
}

// NewDeferredWriteQueue — конструктор. workers <= 0 и buffer <= 0
// заменяются на 1 и 1024; applyTimeout <= 0 — на 5 секунд.
func NewDeferredWriteQueue(store ports.ItemStore, log ports.Logger, workers, buffer int, applyTimeout time.Duration) *DeferredWriteQueue {
	if workers <= 0 {
		workers = 1
	}
	if buffer <= 0 {
		buffer = 1024
	}
	if applyTimeout <= 0 {
		applyTimeout = 5 * time.Second
	}

	shards := make([]chan *domain.Item, workers)
	for i := range shards {
		shards[i] = make(chan *domain.Item, buffer)
	}

	return &DeferredWriteQueue{
		store:        store,
		log:          log,
		shards:       shards,
		applyTimeout: applyTimeout,
	}
}

// Start — запускает воркеры. Воркеры живут до Close: остановка через
// закрытие каналов, чтобы принятые задачи были дописаны при штатном
// завершении.
func (q *DeferredWriteQueue) Start() {
	for _, shard := range q.shards {
		q.wg.Add(1)
		go q.worker(shard)
	}
}

// Enqueue — принять задачу отложенной записи. Пока в шарде есть место,
// возврат немедленный; при заполненном шарде — ожидание места с учётом
// отмены контекста (backpressure вместо потери задачи).
func (q *DeferredWriteQueue) Enqueue(ctx context.Context, item *domain.Item) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	shard := q.shards[q.shardFor(item.ID)]

	select {
	case shard <- item:
	default:
		select {
		case shard <- item:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	metrics.DeferredWritesEnqueued.Inc()
	metrics.DeferredQueueDepth.Inc()
	return nil
}

// Close — перестаёт принимать задачи и дожидается, пока воркеры
// допишут уже принятые.
func (q *DeferredWriteQueue) Close() error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	for _, shard := range q.shards {
		close(shard)
	}
	q.mu.Unlock()

	q.wg.Wait()
	return nil
}

// Depth — суммарное число ожидающих задач (для тестов и отладки).
func (q *DeferredWriteQueue) Depth() int {
	total := 0
	for _, shard := range q.shards {
		total += len(shard)
	}
	return total
}

func (q *DeferredWriteQueue) worker(shard <-chan *domain.Item) {
	defer q.wg.Done()
	for item := range shard {
		metrics.DeferredQueueDepth.Dec()
		q.apply(item)
	}
}

// apply — единственный потребитель задачи: одна попытка записи в
// хранилище, при неудаче задача отбрасывается.
func (q *DeferredWriteQueue) apply(item *domain.Item) {
	ctx, cancel := context.WithTimeout(context.Background(), q.applyTimeout)
	defer cancel()

	if err := q.store.Put(ctx, item); err != nil {
		q.log.Warnf(ctx, "deferred write dropped id=%s err=%v", item.ID, err)
		metrics.DeferredWritesDropped.Inc()
		return
	}
	metrics.DeferredWritesApplied.Inc()
}

func (q *DeferredWriteQueue) shardFor(id string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return int(h.Sum32() % uint32(len(q.shards)))
}
