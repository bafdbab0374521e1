package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryUsageLedger is an in-process IUsageLedger for tests and keyless dev
// environments. One mutex over the whole table keeps every (account, period)
// key linearizable.
type MemoryUsageLedger struct {
	mu     sync.Mutex
	counts map[string]int
}

func NewMemoryUsageLedger() *MemoryUsageLedger {
	return &MemoryUsageLedger{
		counts: make(map[string]int),
	}
}

func ledgerKey(accountID uuid.UUID, periodKey string) string {
	return accountID.String() + ":" + periodKey
}

func (l *MemoryUsageLedger) CurrentUsage(_ context.Context, accountID uuid.UUID, periodKey string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.counts[ledgerKey(accountID, periodKey)], nil
}

func (l *MemoryUsageLedger) TryConsume(_ context.Context, accountID uuid.UUID, periodKey string, limit int) (ConsumeResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := ledgerKey(accountID, periodKey)
	used := l.counts[key]
	if used >= limit {
		return ConsumeResult{Granted: false, RemainingAfter: remaining(limit, used)}, nil
	}

	l.counts[key] = used + 1
	return ConsumeResult{Granted: true, RemainingAfter: remaining(limit, used+1)}, nil
}
