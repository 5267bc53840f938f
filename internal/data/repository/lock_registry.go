package repository

import "sync"

// LockRegistry hands out one read/write lock per show. Lock granularity is
// per show id: operations on different shows never contend.
type LockRegistry struct {
	mu    sync.Mutex
	locks map[string]*sync.RWMutex
}

func NewLockRegistry() *LockRegistry {
	return &LockRegistry{
		locks: make(map[string]*sync.RWMutex),
	}
}

// LockFor returns the lock for the given show, creating it on first use.
// Get-or-create happens under the registry mutex, so concurrent first
// access for the same show still yields exactly one lock. A sync.RWMutex
// admits concurrent readers but blocks new readers once a writer is
// waiting, so writers cannot be starved by a stream of availability reads.
func (r *LockRegistry) LockFor(showID string) *sync.RWMutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	lock, ok := r.locks[showID]
	if !ok {
		lock = &sync.RWMutex{}
		r.locks[showID] = lock
	}
	return lock
}
