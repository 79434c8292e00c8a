// Package store persists the volunteer roster: people, services, and the
// person-service link table.
package store

import (
	"context"
	"time"

	"rosterhub/internal/roster/models"
	derrors "rosterhub/pkg/domain-errors"
)

// TitleSeparator joins aggregated service titles in the people listing.
const TitleSeparator = ", "

var (
	// ErrMissingReference is returned when an assignment names a person or
	// service that does not exist; no link row may be created in that case.
	ErrMissingReference = derrors.New(derrors.CodeNotFound, "person or service not found")
)

type Store interface {
	// CreatePerson inserts the person and fills in the generated ID.
	CreatePerson(ctx context.Context, person *models.Person) error
	// ListPeopleWithServices returns every person ordered by id ascending,
	// each with their assigned service titles aggregated into one string in
	// assignment order ("" when none).
	ListPeopleWithServices(ctx context.Context) ([]models.PersonWithServices, error)
	// CreateService inserts the service and fills in the generated ID.
	CreateService(ctx context.Context, service *models.Service) error
	// ListServices returns all services ordered by id ascending.
	ListServices(ctx context.Context) ([]models.Service, error)
	// Assign upserts the link row, refreshing the assignment timestamp. Both
	// referents must exist or ErrMissingReference is returned.
	Assign(ctx context.Context, personID, serviceID int64, assignedAt time.Time) error
}
