package domain

import "errors"

var (
	// ErrNotFound — записи с таким id нет ни в кэше, ни в хранилище.
	ErrNotFound = errors.New("item not found")

	// ErrUncachedWrite — write-through: запись в хранилище зафиксирована,
	// но кэш обновить не удалось. Данные долговечны, кэш и хранилище
	// рассинхронизированы до следующего read-miss.
	ErrUncachedWrite = errors.New("durable write succeeded, cache population failed")
)
