package repositories

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLedgerConsumeUpToLimit(t *testing.T) {
	ledger := NewMemoryUsageLedger()
	accountID := uuid.New()

	for i := 0; i < 10; i++ {
		res, err := ledger.TryConsume(context.Background(), accountID, "2026-08", 10)
		require.NoError(t, err)
		assert.True(t, res.Granted)
		assert.Equal(t, 10-(i+1), res.RemainingAfter)
	}

	res, err := ledger.TryConsume(context.Background(), accountID, "2026-08", 10)
	require.NoError(t, err)
	assert.False(t, res.Granted)
	assert.Equal(t, 0, res.RemainingAfter)

	used, err := ledger.CurrentUsage(context.Background(), accountID, "2026-08")
	require.NoError(t, err)
	assert.Equal(t, 10, used)
}

func TestMemoryLedgerConcurrentConsume(t *testing.T) {
	ledger := NewMemoryUsageLedger()
	accountID := uuid.New()

	const limit = 7
	const attempts = 50

	var wg sync.WaitGroup
	granted := make(chan bool, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := ledger.TryConsume(context.Background(), accountID, "2026-08", limit)
			assert.NoError(t, err)
			granted <- res.Granted
		}()
	}
	wg.Wait()
	close(granted)

	total := 0
	for g := range granted {
		if g {
			total++
		}
	}

	// Exactly the remaining budget is granted, never more
	assert.Equal(t, limit, total)

	used, err := ledger.CurrentUsage(context.Background(), accountID, "2026-08")
	require.NoError(t, err)
	assert.Equal(t, limit, used)
}

func TestMemoryLedgerKeysAreIndependent(t *testing.T) {
	ledger := NewMemoryUsageLedger()
	first := uuid.New()
	second := uuid.New()

	res, err := ledger.TryConsume(context.Background(), first, "2026-08", 1)
	require.NoError(t, err)
	require.True(t, res.Granted)

	// Same account, new period: fresh budget
	res, err = ledger.TryConsume(context.Background(), first, "2026-09", 1)
	require.NoError(t, err)
	assert.True(t, res.Granted)

	// Different account, same period: unaffected
	res, err = ledger.TryConsume(context.Background(), second, "2026-08", 1)
	require.NoError(t, err)
	assert.True(t, res.Granted)

	// Original key is spent
	res, err = ledger.TryConsume(context.Background(), first, "2026-08", 1)
	require.NoError(t, err)
	assert.False(t, res.Granted)
}

func TestMemoryLedgerZeroLimit(t *testing.T) {
	ledger := NewMemoryUsageLedger()

	res, err := ledger.TryConsume(context.Background(), uuid.New(), "2026-08", 0)
	require.NoError(t, err)
	assert.False(t, res.Granted)
	assert.Equal(t, 0, res.RemainingAfter)
}
