package ports

import (
	"context"
	"time"

	"github.com/Gunvolt24/wb_cache/internal/domain"
)

// ItemCache — интерфейс эфемерного кэша с TTL на запись.
// Требования к реализации: потокобезопасность; возврат копий сущности;
// истечение TTL — забота кэша, оркестратор видит только промахи.
type ItemCache interface {
	// Get — вернуть запись по id; (item, true, nil) при попадании,
	// (nil, false, nil) при промахе/истечении, err — при недоступности кэша.
	Get(ctx context.Context, id string) (*domain.Item, bool, error)

	// SetWithTTL — сохранить/обновить запись со сроком жизни ttl.
	SetWithTTL(ctx context.Context, item *domain.Item, ttl time.Duration) error

	// Delete — убрать запись; removed=false, если её уже не было (не ошибка).
	Delete(ctx context.Context, id string) (removed bool, err error)

	// Ping — проверка доступности кэша для health-check.
	Ping(ctx context.Context) error
}
