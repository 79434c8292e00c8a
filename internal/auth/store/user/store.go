// Package user persists registered accounts. Implementations are
// interface-driven so the auth service can run against Postgres in production
// and the in-memory store in tests.
package user

import (
	"context"

	"rosterhub/internal/auth/models"
	derrors "rosterhub/pkg/domain-errors"
)

var (
	// ErrNotFound keeps storage-specific lookups consistent across
	// implementations.
	ErrNotFound = derrors.New(derrors.CodeNotFound, "user not found")
	// ErrDuplicate is returned when username or email is already taken.
	ErrDuplicate = derrors.New(derrors.CodeConflict, "username or email already exists")
)

type Store interface {
	// Create inserts the user and fills in the generated ID and CreatedAt.
	Create(ctx context.Context, user *models.User) error
	FindByUsername(ctx context.Context, username string) (models.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}
