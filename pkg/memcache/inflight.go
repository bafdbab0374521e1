package mem

import (
	"sync"

	"github.com/google/uuid"
)

type InflightStore interface {
	// Begin marks a generation as in flight for the account. Returns false
	// if one is already running; the caller must reject with a busy error,
	// not queue.
	Begin(accountID uuid.UUID) bool

	// End releases the slot. Safe to call for an account with no active
	// generation.
	End(accountID uuid.UUID)

	Active(accountID uuid.UUID) bool
}

// InflightGuards is the process-wide table of single-flight generation
// guards. Advisory and in-memory only: a restart simply drops them.
type InflightGuards struct {
	mu     sync.Mutex
	active map[uuid.UUID]struct{}
}

func NewInflightGuards() *InflightGuards {
	return &InflightGuards{
		active: make(map[uuid.UUID]struct{}),
	}
}

func (g *InflightGuards) Begin(accountID uuid.UUID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.active[accountID]; exists {
		return false
	}
	g.active[accountID] = struct{}{}
	return true
}

func (g *InflightGuards) End(accountID uuid.UUID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.active, accountID)
}

func (g *InflightGuards) Active(accountID uuid.UUID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, exists := g.active[accountID]
	return exists
}
