package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/wb_cache/internal/domain"
	"github.com/Gunvolt24/wb_cache/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что ItemStore удовлетворяет интерфейсу ItemStore.
var _ ports.ItemStore = (*ItemStore)(nil)

// ItemStore — реализация хранилища записей на Postgres (pgxpool).
type ItemStore struct {
	pool *pgxpool.Pool
}

// NewItemStore — конструктор ItemStore.
func NewItemStore(pool *pgxpool.Pool) *ItemStore { return &ItemStore{pool: pool} }

// Get — вернуть запись по id; (nil, nil), если записи нет.
func (s *ItemStore) Get(ctx context.Context, id string) (*domain.Item, error) {
	var item domain.Item
	err := s.pool.QueryRow(ctx, `
		SELECT id, name, description, value, updated_at
		FROM items
		WHERE id = $1
	`, id).Scan(&item.ID, &item.Name, &item.Description, &item.Value, &item.Timestamp)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select item: %w", err)
	}
	return &item, nil
}

// Put — идемпотентный upsert по id (PRIMARY KEY).
func (s *ItemStore) Put(ctx context.Context, item *domain.Item) error {
	if item == nil || item.ID == "" {
		return errors.New("item is empty or id is required")
	}

	if _, err := s.pool.Exec(ctx, `
		INSERT INTO items (id, name, description, value, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at
	`, item.ID, item.Name, item.Description, item.Value, item.Timestamp); err != nil {
		return fmt.Errorf("upsert item: %w", err)
	}
	return nil
}

// Delete — удалить запись; found=false, если записи не было.
func (s *ItemStore) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete item: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// List — последние записи по времени обновления (прогрев кэша и отладка).
func (s *ItemStore) List(ctx context.Context, limit, offset int) ([]*domain.Item, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id, name, description, value, updated_at
		FROM items
		ORDER BY updated_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select items: %w", err)
	}
	defer rows.Close()

	var items []*domain.Item
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Value, &item.Timestamp); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return items, nil
}
