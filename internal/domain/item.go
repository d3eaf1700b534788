package domain

import "time"

// Item — доменная сущность: единица данных, которой управляют кэш и хранилище.
// ID неизменяем после создания; Timestamp проставляется оркестратором при каждой записи.
type Item struct {
	ID          string    `json:"item_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Value       float64   `json:"value"`
	Timestamp   time.Time `json:"timestamp"`
}

// Clone — глубокая копия (у Item нет ссылочных полей, достаточно разыменования).
func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}
	cloned := *i
	return &cloned
}
