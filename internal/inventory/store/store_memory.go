package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"rosterhub/internal/inventory/models"
)

// InMemoryStore keeps items in a mutex-guarded map for tests and development.
type InMemoryStore struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]models.Item
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{items: make(map[int64]models.Item)}
}

func (s *InMemoryStore) List(_ context.Context) ([]models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.Item, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *InMemoryStore) Get(_ context.Context, id int64) (models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return models.Item{}, ErrNotFound
	}
	return item, nil
}

func (s *InMemoryStore) Create(_ context.Context, item *models.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	item.ID = s.nextID
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	s.items[item.ID] = *item
	return nil
}

func (s *InMemoryStore) Update(_ context.Context, item models.Item) (models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.items[item.ID]
	if !ok {
		return models.Item{}, ErrNotFound
	}
	existing.Name = item.Name
	existing.Description = item.Description
	s.items[item.ID] = existing
	return existing, nil
}

func (s *InMemoryStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	delete(s.items, id)
	return nil
}
