// Package service holds the roster business rules. People and services are
// append-only: the observed contract has no update or delete for either, and
// that gap is deliberate, not filled in here.
package service

import (
	"context"
	"time"

	"github.com/asaskevich/govalidator"

	"rosterhub/internal/roster/models"
	"rosterhub/internal/roster/store"
	derrors "rosterhub/pkg/domain-errors"
)

type Service struct {
	roster store.Store
	now    func() time.Time
}

func New(roster store.Store) *Service {
	return &Service{roster: roster, now: time.Now}
}

// WithClock overrides the time source, used by tests to pin assignment order.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) CreatePerson(ctx context.Context, name, email string) (models.Person, error) {
	if name == "" || email == "" {
		return models.Person{}, derrors.New(derrors.CodeInvalidInput, "name and email are required")
	}
	if !govalidator.IsEmail(email) {
		return models.Person{}, derrors.New(derrors.CodeInvalidInput, "invalid email")
	}

	person := models.Person{Name: name, Email: email}
	if err := s.roster.CreatePerson(ctx, &person); err != nil {
		return models.Person{}, err
	}
	return person, nil
}

func (s *Service) ListPeople(ctx context.Context) ([]models.PersonWithServices, error) {
	return s.roster.ListPeopleWithServices(ctx)
}

func (s *Service) CreateService(ctx context.Context, title, description string) (models.Service, error) {
	if title == "" {
		return models.Service{}, derrors.New(derrors.CodeInvalidInput, "title is required")
	}

	svc := models.Service{Title: title, Description: description}
	if err := s.roster.CreateService(ctx, &svc); err != nil {
		return models.Service{}, err
	}
	return svc, nil
}

func (s *Service) ListServices(ctx context.Context) ([]models.Service, error) {
	return s.roster.ListServices(ctx)
}

// Assign records the person-service link, refreshing the timestamp when the
// pair already exists.
func (s *Service) Assign(ctx context.Context, personID, serviceID int64) error {
	return s.roster.Assign(ctx, personID, serviceID, s.now())
}
