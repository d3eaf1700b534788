package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/Gunvolt24/wb_cache/internal/domain"
	"github.com/Gunvolt24/wb_cache/internal/ports"
)

// Проверка, что ItemStore удовлетворяет интерфейсу ItemStore.
var _ ports.ItemStore = (*ItemStore)(nil)

// ItemStore — хранилище в памяти процесса, имитирующее «медленную» БД:
// каждая операция выдерживает настроенную задержку, как сетевой запрос.
// Используется в тестах и как драйвер для локального запуска без Postgres.
type ItemStore struct {
	readLatency  time.Duration
	writeLatency time.Duration

	mu    sync.RWMutex
	items map[string]*domain.Item
}

// NewItemStore — конструктор. Нулевые задержки допустимы (тесты).
func NewItemStore(readLatency, writeLatency time.Duration) *ItemStore {
	return &ItemStore{
		readLatency:  readLatency,
		writeLatency: writeLatency,
		items:        make(map[string]*domain.Item),
	}
}

// Get — вернуть запись по id; (nil, nil), если записи нет.
func (s *ItemStore) Get(ctx context.Context, id string) (*domain.Item, error) {
	if err := s.sleep(ctx, s.readLatency); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items[id].Clone(), nil
}

// Put — идемпотентный upsert.
func (s *ItemStore) Put(ctx context.Context, item *domain.Item) error {
	if item == nil || item.ID == "" {
		return errors.New("item is empty or id is required")
	}
	if err := s.sleep(ctx, s.writeLatency); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[item.ID] = item.Clone()
	return nil
}

// Delete — удалить запись; found=false, если записи не было.
func (s *ItemStore) Delete(ctx context.Context, id string) (bool, error) {
	if err := s.sleep(ctx, s.readLatency); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.items[id]
	delete(s.items, id)
	return ok, nil
}

// List — последние записи по времени обновления.
func (s *ItemStore) List(ctx context.Context, limit, offset int) ([]*domain.Item, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	if err := s.sleep(ctx, s.readLatency); err != nil {
		return nil, err
	}

	s.mu.RLock()
	all := make([]*domain.Item, 0, len(s.items))
	for _, item := range s.items {
		all = append(all, item.Clone())
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].Timestamp.After(all[j].Timestamp) })

	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

// sleep — имитация сетевой задержки с учётом отмены контекста.
func (s *ItemStore) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
