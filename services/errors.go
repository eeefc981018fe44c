package services

import (
	"fmt"

	"tesla-notes/database"
)

// Store errors surfaced by every service. Compare with errors.Is.
var (
	ErrNotFound           = database.ErrNotFound
	ErrPersistence        = database.ErrPersistence
	ErrStorageUnavailable = database.ErrStorageUnavailable

	// ErrGuardPoisoned is returned by every operation after one panicked
	// while holding the guard
	ErrGuardPoisoned = fmt.Errorf("%w: store guard poisoned by an earlier panic", database.ErrPersistence)
)
