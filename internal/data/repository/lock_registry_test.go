package repository_test

import (
	"sync"
	"testing"

	"seat-booking/internal/data/repository"

	"github.com/stretchr/testify/assert"
)

func TestLockForReturnsSameLockPerShow(t *testing.T) {
	registry := repository.NewLockRegistry()

	first := registry.LockFor("show-1")
	second := registry.LockFor("show-1")

	assert.Same(t, first, second)
}

func TestLockForDistinctShows(t *testing.T) {
	registry := repository.NewLockRegistry()

	assert.NotSame(t, registry.LockFor("show-1"), registry.LockFor("show-2"))
}

func TestLockForConcurrentFirstAccess(t *testing.T) {
	registry := repository.NewLockRegistry()

	const goroutines = 50
	locks := make([]*sync.RWMutex, goroutines)

	var start, done sync.WaitGroup
	start.Add(1)
	done.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer done.Done()
			start.Wait()
			locks[i] = registry.LockFor("show-1")
		}(i)
	}
	start.Done()
	done.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Same(t, locks[0], locks[i])
	}
}

func TestDistinctShowsDoNotContend(t *testing.T) {
	registry := repository.NewLockRegistry()

	first := registry.LockFor("show-1")
	first.Lock()
	defer first.Unlock()

	// Must not block even though show-1 is write-locked.
	second := registry.LockFor("show-2")
	second.Lock()
	second.Unlock()
}
