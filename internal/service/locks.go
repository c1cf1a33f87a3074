package service

import (
	"sync"

	"github.com/google/uuid"
)

// voterLocks hands out one mutex per voter. Entries are dropped once no
// caller holds or waits on them.
type voterLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*voterLock
}

type voterLock struct {
	sync.Mutex
	refs int
}

func newVoterLocks() *voterLocks {
	return &voterLocks{locks: make(map[uuid.UUID]*voterLock)}
}

// lock blocks until the voter's mutex is held and returns its release func.
func (l *voterLocks) lock(voterID uuid.UUID) func() {
	l.mu.Lock()
	vl, ok := l.locks[voterID]
	if !ok {
		vl = &voterLock{}
		l.locks[voterID] = vl
	}
	vl.refs++
	l.mu.Unlock()

	vl.Lock()
	return func() {
		vl.Unlock()
		l.mu.Lock()
		vl.refs--
		if vl.refs == 0 {
			delete(l.locks, voterID)
		}
		l.mu.Unlock()
	}
}
