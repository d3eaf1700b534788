package ports

import (
	"context"

	"github.com/Gunvolt24/wb_cache/internal/domain"
)

// WriteQueue — очередь отложенной записи в хранилище (write-behind).
// Enqueue принимает задачу не дожидаясь потребителя; принятая задача
// живёт только в памяти процесса — падение до применения теряет её
// (задокументированный риск паттерна).
type WriteQueue interface {
	Enqueue(ctx context.Context, item *domain.Item) error
}
