//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/Gunvolt24/wb_cache/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// Мини-генератор валидной записи
func MakeItem(opts ...func(*domain.Item)) domain.Item {
	id := "item-" + UniqSuffix()
	now := time.Now().UTC().Truncate(time.Second)

	it := domain.Item{
		ID:          id,
		Name:        "Widget " + UniqSuffix(),
		Description: "generated by testutil",
		Value:       123.45,
		Timestamp:   now,
	}

	for _, fn := range opts {
		fn(&it)
	}
	return it
}

// Доп. опции — переопределить поля в конкретном тесте
func WithItemID(id string) func(*domain.Item) {
	return func(it *domain.Item) { it.ID = id }
}

func WithName(name string) func(*domain.Item) {
	return func(it *domain.Item) { it.Name = name }
}

func WithValue(v float64) func(*domain.Item) {
	return func(it *domain.Item) { it.Value = v }
}
