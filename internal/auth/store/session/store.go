// Package session holds the pluggable session registry. The in-memory
// implementation serves tests and single-process development; the Redis
// implementation survives restarts and is shared across instances.
package session

import (
	"context"

	"rosterhub/internal/auth/models"
	derrors "rosterhub/pkg/domain-errors"
)

// ErrNotFound covers both unknown and expired tokens; callers must not be
// able to tell the two apart.
var ErrNotFound = derrors.New(derrors.CodeNotFound, "session not found")

type Store interface {
	Save(ctx context.Context, session models.Session) error
	// Find returns ErrNotFound for unknown and expired tokens alike.
	Find(ctx context.Context, token string) (models.Session, error)
	// Delete is idempotent; removing an unknown token is not an error.
	Delete(ctx context.Context, token string) error
}
