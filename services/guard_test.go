package services

import (
	"errors"
	"sync"
	"sync/atomic"
	"tesla-notes/metrics"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_Serializes(t *testing.T) {
	guard := NewGuard(nil, nil)

	var inFlight, maxInFlight int32
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = guard.Do("op", func() error {
				n := atomic.AddInt32(&inFlight, 1)
				for {
					m := atomic.LoadInt32(&maxInFlight)
					if n <= m || atomic.CompareAndSwapInt32(&maxInFlight, m, n) {
						break
					}
				}
				atomic.AddInt32(&inFlight, -1)
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInFlight)
}

func TestGuard_ReleasesOnError(t *testing.T) {
	guard := NewGuard(nil, nil)

	boom := errors.New("boom")
	err := guard.Do("op", func() error { return boom })
	assert.ErrorIs(t, err, boom)

	// The lock must be free again
	err = guard.Do("op", func() error { return nil })
	assert.NoError(t, err)
	assert.False(t, guard.Poisoned())
}

func TestGuard_PanicPoisons(t *testing.T) {
	m := metrics.New()
	guard := NewGuard(m, nil)

	err := guard.Do("update_memo", func() error {
		panic("half-written row")
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Contains(t, err.Error(), "half-written row")
	assert.True(t, guard.Poisoned())

	called := false
	err = guard.Do("get_memo", func() error {
		called = true
		return nil
	})
	assert.False(t, called)
	assert.ErrorIs(t, err, ErrGuardPoisoned)
	assert.ErrorIs(t, err, ErrPersistence)

	count, err := testutil.GatherAndCount(m.Registry(), "tesla_notes_store_operations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
