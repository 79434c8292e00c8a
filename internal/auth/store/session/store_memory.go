package session

import (
	"context"
	"sync"
	"time"

	"rosterhub/internal/auth/models"
)

// InMemoryStore keeps sessions in a mutex-guarded map with lazy expiry:
// expired entries are evicted when read. State is lost on restart and not
// shared across instances, which is why production deployments use Redis.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	now      func() time.Time
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{
		sessions: make(map[string]models.Session),
		now:      time.Now,
	}
}

// WithClock overrides the time source, used by tests to force expiry.
func (s *InMemoryStore) WithClock(now func() time.Time) *InMemoryStore {
	s.now = now
	return s
}

func (s *InMemoryStore) Save(_ context.Context, session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = session
	return nil
}

func (s *InMemoryStore) Find(_ context.Context, token string) (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return models.Session{}, ErrNotFound
	}
	if session.Expired(s.now()) {
		delete(s.sessions, token)
		return models.Session{}, ErrNotFound
	}
	return session, nil
}

func (s *InMemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
