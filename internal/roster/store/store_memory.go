package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"rosterhub/internal/roster/models"
)

// InMemoryStore keeps the roster in mutex-guarded maps for tests and
// development. It mirrors the Postgres store's aggregation semantics: titles
// in assignment order, empty string for people without assignments.
type InMemoryStore struct {
	mu            sync.RWMutex
	nextPersonID  int64
	nextServiceID int64
	people        map[int64]models.Person
	services      map[int64]models.Service
	assignments   []models.Assignment
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{
		people:   make(map[int64]models.Person),
		services: make(map[int64]models.Service),
	}
}

func (s *InMemoryStore) CreatePerson(_ context.Context, person *models.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextPersonID++
	person.ID = s.nextPersonID
	s.people[person.ID] = *person
	return nil
}

func (s *InMemoryStore) ListPeopleWithServices(_ context.Context) ([]models.PersonWithServices, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	assignments := make([]models.Assignment, len(s.assignments))
	copy(assignments, s.assignments)
	sort.SliceStable(assignments, func(i, j int) bool {
		return assignments[i].AssignedAt.Before(assignments[j].AssignedAt)
	})

	titlesByPerson := make(map[int64][]string)
	for _, a := range assignments {
		if svc, ok := s.services[a.ServiceID]; ok {
			titlesByPerson[a.PersonID] = append(titlesByPerson[a.PersonID], svc.Title)
		}
	}

	people := make([]models.PersonWithServices, 0, len(s.people))
	for _, person := range s.people {
		people = append(people, models.PersonWithServices{
			ID:       person.ID,
			Name:     person.Name,
			Email:    person.Email,
			Services: strings.Join(titlesByPerson[person.ID], TitleSeparator),
		})
	}
	sort.Slice(people, func(i, j int) bool { return people[i].ID < people[j].ID })
	return people, nil
}

func (s *InMemoryStore) CreateService(_ context.Context, service *models.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextServiceID++
	service.ID = s.nextServiceID
	s.services[service.ID] = *service
	return nil
}

func (s *InMemoryStore) ListServices(_ context.Context) ([]models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	services := make([]models.Service, 0, len(s.services))
	for _, svc := range s.services {
		services = append(services, svc)
	}
	sort.Slice(services, func(i, j int) bool { return services[i].ID < services[j].ID })
	return services, nil
}

func (s *InMemoryStore) Assign(_ context.Context, personID, serviceID int64, assignedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.people[personID]; !ok {
		return ErrMissingReference
	}
	if _, ok := s.services[serviceID]; !ok {
		return ErrMissingReference
	}

	for i, a := range s.assignments {
		if a.PersonID == personID && a.ServiceID == serviceID {
			s.assignments[i].AssignedAt = assignedAt
			return nil
		}
	}
	s.assignments = append(s.assignments, models.Assignment{
		PersonID:   personID,
		ServiceID:  serviceID,
		AssignedAt: assignedAt,
	})
	return nil
}
