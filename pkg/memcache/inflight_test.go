package mem

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestInflightGuardsSingleFlight(t *testing.T) {
	guards := NewInflightGuards()
	accountID := uuid.New()

	assert.True(t, guards.Begin(accountID))
	assert.True(t, guards.Active(accountID))

	// Second begin for the same account is refused
	assert.False(t, guards.Begin(accountID))

	// Other accounts are unaffected
	assert.True(t, guards.Begin(uuid.New()))

	guards.End(accountID)
	assert.False(t, guards.Active(accountID))
	assert.True(t, guards.Begin(accountID))
}

func TestInflightGuardsEndWithoutBegin(t *testing.T) {
	guards := NewInflightGuards()
	guards.End(uuid.New()) // must not panic
}

func TestInflightGuardsConcurrentBegin(t *testing.T) {
	guards := NewInflightGuards()
	accountID := uuid.New()

	const workers = 32
	var wg sync.WaitGroup
	wins := make(chan struct{}, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if guards.Begin(accountID) {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	assert.Len(t, wins, 1)
}
