package validate

import (
	"context"
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/Gunvolt24/wb_cache/internal/domain"
	"github.com/Gunvolt24/wb_cache/internal/ports"
)

// Проверка, что ItemValidator удовлетворяет интерфейсу ItemValidator.
var _ ports.ItemValidator = (*ItemValidator)(nil)

// ErrInvalidItem — базовая (sentinel error) ошибка валидации.
var ErrInvalidItem = errors.New("item validation failed")

const (
	maxNameLen        = 256
	maxDescriptionLen = 4096
)

// ItemValidator — структура для валидации записи.
// Возвращает ErrInvalidItem (с обёрнутой причиной) при любой проблеме.
type ItemValidator struct{}

// NewItemValidator — конструктор ItemValidator.
func NewItemValidator() *ItemValidator { return &ItemValidator{} }

// Validate — проверяет корректность полей записи.
func (v *ItemValidator) Validate(_ context.Context, item *domain.Item) error {
	if item == nil {
		return fmt.Errorf("%w: запись не может быть nil", ErrInvalidItem)
	}
	if item.ID == "" {
		return fmt.Errorf("%w: item_id обязателен", ErrInvalidItem)
	}
	if item.Name == "" {
		return fmt.Errorf("%w: name обязателен", ErrInvalidItem)
	}
	if utf8.RuneCountInString(item.Name) > maxNameLen {
		return fmt.Errorf("%w: name длиннее %d символов", ErrInvalidItem, maxNameLen)
	}
	if utf8.RuneCountInString(item.Description) > maxDescriptionLen {
		return fmt.Errorf("%w: description длиннее %d символов", ErrInvalidItem, maxDescriptionLen)
	}
	if math.IsNaN(item.Value) || math.IsInf(item.Value, 0) {
		return fmt.Errorf("%w: value должен быть конечным числом", ErrInvalidItem)
	}
	if item.Value < 0 {
		return fmt.Errorf("%w: value должен быть неотрицательным", ErrInvalidItem)
	}
	return nil
}
