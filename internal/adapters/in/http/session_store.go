package http

import (
	"sync"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/workflow"
)

// SessionStore keeps one workflow session per browser session, keyed by a
// server-issued session ID. The mutex guards the map only: each session is
// owned by a single user and is not accessed concurrently.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[kernel.UUID]*workflow.Session
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[kernel.UUID]*workflow.Session),
	}
}

// Create issues a new session ID with a fresh workflow session.
func (s *SessionStore) Create() (kernel.UUID, *workflow.Session) {
	id := kernel.NewUUID()
	session := workflow.NewSession()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = session

	return id, session
}

// Get returns the session for the given ID, if one exists.
func (s *SessionStore) Get(id kernel.UUID) (*workflow.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	return session, ok
}

// Delete removes a session. Deleting an unknown ID is a no-op.
func (s *SessionStore) Delete(id kernel.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
