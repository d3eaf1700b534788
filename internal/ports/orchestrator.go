package ports

import (
	"context"

	"github.com/Gunvolt24/wb_cache/internal/domain"
)

// CacheOrchestrator — операции оркестратора, видимые транспорту.
// Каждый паттерн — отдельная точка входа со своими гарантиями,
// единой операции "записать" намеренно нет.
type CacheOrchestrator interface {
	WriteThrough(ctx context.Context, id string, item *domain.Item) (*domain.Item, error)
	WriteBehind(ctx context.Context, id string, item *domain.Item) (*domain.Item, error)
	ReadThrough(ctx context.Context, id string) (*domain.Item, error)
	ReadCacheAside(ctx context.Context, id string) (*domain.Item, error)
	Invalidate(ctx context.Context, id string) (bool, error)
	DeleteAndInvalidate(ctx context.Context, id string) error
	Health(ctx context.Context) error
	StoreItem(ctx context.Context, id string) (*domain.Item, error)
	StoreList(ctx context.Context, limit, offset int) ([]*domain.Item, error)
}
