package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"tesla-notes/database"
	"tesla-notes/metrics"
)

// Guard serializes every store operation over the single shared connection.
// There is no read/write distinction: one operation runs at a time.
type Guard struct {
	mu       sync.Mutex
	poisoned bool
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewGuard creates a guard. Both arguments may be nil.
func NewGuard(m *metrics.Metrics, logger *slog.Logger) *Guard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Guard{metrics: m, logger: logger}
}

// Do runs fn while holding the guard. A panic in fn is recovered and
// reported as a persistence error, and the guard refuses all later work.
func (g *Guard) Do(op string, fn func() error) (err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.poisoned {
		return fmt.Errorf("%s: %w", op, ErrGuardPoisoned)
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			g.poisoned = true
			g.metrics.SetPoisoned()
			g.logger.Error("store operation panicked", "operation", op, "panic", r)
			err = fmt.Errorf("%s: %w: panic: %v", op, database.ErrPersistence, r)
		}

		elapsed := time.Since(start)
		outcome := outcomeOf(err)
		g.metrics.RecordOperation(op, outcome, elapsed)
		g.logger.Debug("store operation", "operation", op, "outcome", outcome, "duration", elapsed)
	}()

	return fn()
}

// Poisoned reports whether an earlier operation panicked
func (g *Guard) Poisoned() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.poisoned
}

func guarded[T any](g *Guard, op string, fn func() (T, error)) (T, error) {
	var result T
	err := g.Do(op, func() error {
		var err error
		result, err = fn()
		return err
	})
	return result, err
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, database.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}
