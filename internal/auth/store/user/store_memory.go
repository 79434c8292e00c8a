package user

import (
	"context"
	"sync"
	"time"

	"rosterhub/internal/auth/models"
)

// InMemoryStore keeps accounts in a mutex-guarded map. It exists for tests
// and single-process development; production uses the Postgres store.
type InMemoryStore struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]models.User
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{users: make(map[int64]models.User)}
}

func (s *InMemoryStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username || (user.Email != "" && existing.Email == user.Email) {
			return ErrDuplicate
		}
	}

	s.nextID++
	user.ID = s.nextID
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	s.users[user.ID] = *user
	return nil
}

func (s *InMemoryStore) FindByUsername(_ context.Context, username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *InMemoryStore) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username || (email != "" && user.Email == email) {
			return true, nil
		}
	}
	return false, nil
}
