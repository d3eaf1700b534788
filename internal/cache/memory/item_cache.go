package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/wb_cache/internal/domain"
	"github.com/Gunvolt24/wb_cache/internal/ports"
	"github.com/Gunvolt24/wb_cache/pkg/metrics"
)

// Проверка, что LRUCacheTTL удовлетворяет интерфейсу ItemCache.
var _ ports.ItemCache = (*LRUCacheTTL)(nil)

type entry struct {
	id        string
	item      *domain.Item
	expiresAt time.Time
}

// LRUCacheTTL — кэш с вытеснением LRU и TTL на каждую запись.
// TTL задаётся при каждом SetWithTTL; истёкшая запись видна как промах
// и удаляется лениво — при чтении или при вытеснении из хвоста.
type LRUCacheTTL struct {
	capacity int

	ll    *list.List
	cache map[string]*list.Element

	mu sync.Mutex
}

// NewLRUCacheTTL — конструктор. capacity <= 0 заменяется на 1.
func NewLRUCacheTTL(capacity int) *LRUCacheTTL {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCacheTTL{
		capacity: capacity,
		ll:       list.New(),
		cache:    make(map[string]*list.Element),
	}
}

// Get — вернуть запись по id; истёкшая запись удаляется и считается промахом.
func (c *LRUCacheTTL) Get(_ context.Context, id string) (*domain.Item, bool, error) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.cache[id]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false, nil
	}
	ent := elem.Value.(*entry)
	if isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(c.ll.Len()))
		return nil, false, nil
	}
	c.ll.MoveToFront(elem)

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return ent.item.Clone(), true, nil
}

// SetWithTTL — сохранить/обновить запись со сроком жизни ttl.
// ttl <= 0 означает запись без истечения.
func (c *LRUCacheTTL) SetWithTTL(_ context.Context, item *domain.Item, ttl time.Duration) error {
	if item == nil || item.ID == "" {
		return nil
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.cache[item.ID]; ok {
		ent := elem.Value.(*entry)
		ent.item = item.Clone()
		ent.expiresAt = expiryFrom(now, ttl)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		id:        item.ID,
		item:      item.Clone(),
		expiresAt: expiryFrom(now, ttl),
	})
	c.cache[item.ID] = elem
	metrics.CacheSize.Set(float64(c.ll.Len()))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}

// Delete — убрать запись; removed=false, если её уже не было.
func (c *LRUCacheTTL) Delete(_ context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.cache[id]
	if !ok {
		return false, nil
	}
	c.removeElement(elem)
	metrics.CacheSize.Set(float64(c.ll.Len()))
	return true, nil
}

// Ping — кэш в памяти процесса доступен, пока жив процесс.
func (c *LRUCacheTTL) Ping(_ context.Context) error { return nil }
