package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"rosterhub/internal/requests/models"
)

// InMemoryStore keeps requests in a mutex-guarded map for tests and
// development.
type InMemoryStore struct {
	mu       sync.RWMutex
	nextID   int64
	requests map[int64]models.Request
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{requests: make(map[int64]models.Request)}
}

func (s *InMemoryStore) Create(_ context.Context, request *models.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	request.ID = s.nextID
	if request.CreatedAt.IsZero() {
		request.CreatedAt = time.Now()
	}
	s.requests[request.ID] = *request
	return nil
}

func (s *InMemoryStore) List(_ context.Context) ([]models.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	requests := make([]models.Request, 0, len(s.requests))
	for _, request := range s.requests {
		requests = append(requests, request)
	}
	sort.Slice(requests, func(i, j int) bool { return requests[i].ID < requests[j].ID })
	return requests, nil
}
