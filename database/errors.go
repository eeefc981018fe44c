package database

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no row has the requested id
	ErrNotFound = errors.New("not found")

	// ErrPersistence is returned when SQLite rejects a statement or the
	// connection fails mid-operation
	ErrPersistence = errors.New("persistence error")

	// ErrStorageUnavailable is returned when the database file cannot be
	// opened or initialized
	ErrStorageUnavailable = errors.New("storage unavailable")
)

func persistenceError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrPersistence, err)
}

func storageUnavailable(msg string, err error) error {
	return fmt.Errorf("%s: %w: %w", msg, ErrStorageUnavailable, err)
}
