package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"rosterhub/internal/auth/models"
)

type SessionStoreSuite struct {
	suite.Suite
	store *InMemoryStore
}

func TestSessionStoreSuite(t *testing.T) {
	suite.Run(t, new(SessionStoreSuite))
}

func (s *SessionStoreSuite) SetupTest() {
	s.store = NewInMemory()
}

func makeSession(token string, ttl time.Duration) models.Session {
	now := time.Now()
	return models.Session{
		Token:     token,
		UserID:    42,
		Username:  "ada",
		Device:    "Firefox on Linux",
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func (s *SessionStoreSuite) TestFind() {
	s.Run("returns stored session when found", func() {
		sess := makeSession("tok-1", time.Hour)
		s.Require().NoError(s.store.Save(context.Background(), sess))

		found, err := s.store.Find(context.Background(), "tok-1")
		s.Require().NoError(err)
		s.Equal(sess, found)
	})

	s.Run("returns ErrNotFound for unknown token", func() {
		_, err := s.store.Find(context.Background(), "missing")
		s.Require().ErrorIs(err, ErrNotFound)
	})

	s.Run("expired session is indistinguishable from unknown", func() {
		clock := time.Now()
		store := NewInMemory().WithClock(func() time.Time { return clock })

		sess := makeSession("tok-2", time.Minute)
		s.Require().NoError(store.Save(context.Background(), sess))

		clock = clock.Add(2 * time.Minute)
		_, err := store.Find(context.Background(), "tok-2")
		s.Require().ErrorIs(err, ErrNotFound)
	})

	s.Run("expired session is evicted on read", func() {
		clock := time.Now()
		store := NewInMemory().WithClock(func() time.Time { return clock })

		s.Require().NoError(store.Save(context.Background(), makeSession("tok-3", time.Minute)))
		clock = clock.Add(2 * time.Minute)

		_, _ = store.Find(context.Background(), "tok-3")

		store.mu.RLock()
		_, stillThere := store.sessions["tok-3"]
		store.mu.RUnlock()
		s.False(stillThere)
	})
}

func (s *SessionStoreSuite) TestDelete() {
	s.Run("removes an existing session", func() {
		s.Require().NoError(s.store.Save(context.Background(), makeSession("tok-4", time.Hour)))
		s.Require().NoError(s.store.Delete(context.Background(), "tok-4"))

		_, err := s.store.Find(context.Background(), "tok-4")
		s.Require().ErrorIs(err, ErrNotFound)
	})

	s.Run("is idempotent for unknown tokens", func() {
		s.Require().NoError(s.store.Delete(context.Background(), "never-existed"))
		s.Require().NoError(s.store.Delete(context.Background(), "never-existed"))
	})
}
