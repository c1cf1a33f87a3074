package voting

import (
	"sync"

	apperrors "voteverse-backend/internal/errors"

	"github.com/google/uuid"
)

type entry struct {
	mu      sync.Mutex
	session *Session
	owner   *Session // the session Put installed; never changes
}

// Store keeps one session per voter in memory. Operations on one voter's
// session are serialized; different voters proceed in parallel.
type Store struct {
	entries map[uuid.UUID]*entry
	mu      sync.RWMutex
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{entries: make(map[uuid.UUID]*entry)}
}

// Put installs a session, replacing any existing one for the voter.
func (s *Store) Put(session *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[session.VoterID()] = &entry{session: session, owner: session}
}

// Do runs fn against the voter's session while holding that session's lock.
func (s *Store) Do(voterID uuid.UUID, fn func(*Session) error) error {
	s.mu.RLock()
	e, ok := s.entries[voterID]
	s.mu.RUnlock()
	if !ok {
		return apperrors.ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session == nil {
		return apperrors.ErrSessionNotFound
	}
	return fn(e.session)
}

// Snapshot returns the current view of the voter's session.
func (s *Store) Snapshot(voterID uuid.UUID) (Snapshot, error) {
	var snap Snapshot
	err := s.Do(voterID, func(session *Session) error {
		snap = session.Snapshot()
		return nil
	})
	return snap, err
}

// Delete drops the voter's session. It reports whether one existed.
func (s *Store) Delete(voterID uuid.UUID) bool {
	s.mu.Lock()
	e, ok := s.entries[voterID]
	delete(s.entries, voterID)
	s.mu.Unlock()
	if ok {
		e.mu.Lock()
		e.session = nil
		e.mu.Unlock()
	}
	return ok
}

// Remove drops session if it is still the voter's current one. A session that
// was replaced by a later Put is left alone.
func (s *Store) Remove(session *Session) bool {
	s.mu.Lock()
	e, ok := s.entries[session.VoterID()]
	if !ok || e.owner != session {
		s.mu.Unlock()
		return false
	}
	delete(s.entries, session.VoterID())
	s.mu.Unlock()

	e.mu.Lock()
	e.session = nil
	e.mu.Unlock()
	return true
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
