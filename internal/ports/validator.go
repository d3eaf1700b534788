package ports

import (
	"context"

	"github.com/Gunvolt24/wb_cache/internal/domain"
)

type ItemValidator interface {
	Validate(ctx context.Context, item *domain.Item) error
}
