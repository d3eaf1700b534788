package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/wb_cache/internal/domain"
	"github.com/Gunvolt24/wb_cache/internal/ports"
	"github.com/Gunvolt24/wb_cache/pkg/validate"
)

// Ingestor — приём записей из внешнего потока (Kafka).
// Каждое сообщение применяется через write-through: поток — источник
// авторитетных записей, долговечность важнее латентности.
type Ingestor struct {
	orch      ports.CacheOrchestrator
	validator ports.ItemValidator
	log       ports.Logger
}

// NewIngestor — DI-конструктор.
func NewIngestor(orch ports.CacheOrchestrator, validator ports.ItemValidator, log ports.Logger) *Ingestor {
	return &Ingestor{orch: orch, validator: validator, log: log}
}

// SaveFromMessage — сохранить запись, пришедшую из потока (raw JSON).
// Шаги:
//  1. строгий парсинг JSON (DisallowUnknownFields);
//  2. доменная валидация (вернёт validate.ErrInvalidItem при проблемах);
//  3. применение через write-through (хранилище, затем кэш).
func (i *Ingestor) SaveFromMessage(ctx context.Context, raw []byte) error {
	var item domain.Item
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	// Непарсящееся сообщение не станет валидным после повтора, поэтому
	// помечаем его той же sentinel-ошибкой, что и провал валидации:
	// консьюмер закоммитит оффсет и не будет ретраить мусор вечно.
	if err := dec.Decode(&item); err != nil {
		i.log.Warnf(ctx, "invalid json err=%v", err)
		return fmt.Errorf("%w: invalid json: %v", validate.ErrInvalidItem, err)
	}

	// Убеждаемся, что после объекта нет лишних данных.
	if err := dec.Decode(new(struct{})); err != io.EOF {
		i.log.Warnf(ctx, "invalid json: trailing data")
		return fmt.Errorf("%w: invalid json: trailing data", validate.ErrInvalidItem)
	}

	if err := i.validator.Validate(ctx, &item); err != nil {
		i.log.Warnf(ctx, "validation failed item_id=%s err=%v", item.ID, err)
		return fmt.Errorf("validation failed: %w", err)
	}

	if _, err := i.orch.WriteThrough(ctx, item.ID, &item); err != nil {
		i.log.Errorf(ctx, "write-through failed item_id=%s err=%v", item.ID, err)
		return fmt.Errorf("failed to save item: %w", err)
	}

	i.log.Infof(ctx, "item saved id=%s", item.ID)
	return nil
}
