package ports

import (
	"context"

	"github.com/Gunvolt24/wb_cache/internal/domain"
)

// ItemStore — интерфейс долговременного хранилища. Хранилище владеет
// авторитетной копией данных; операции моделируют сетевые запросы
// (блокирующие, с ненулевой задержкой).
type ItemStore interface {
	// Get — вернуть запись по id; (nil, nil), если записи нет.
	Get(ctx context.Context, id string) (*domain.Item, error)

	// Put — идемпотентный upsert записи.
	Put(ctx context.Context, item *domain.Item) error

	// Delete — удалить запись; found=false, если записи не было (не ошибка).
	Delete(ctx context.Context, id string) (found bool, err error)

	// List — последние записи для прогрева кэша и отладочной выдачи.
	List(ctx context.Context, limit, offset int) ([]*domain.Item, error)
}
