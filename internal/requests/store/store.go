// Package store persists help and donation requests. The log is append-only:
// requests are reviewed out of band and never edited through the API.
package store

import (
	"context"

	"rosterhub/internal/requests/models"
)

type Store interface {
	// Create inserts the request and fills in the generated ID and CreatedAt.
	Create(ctx context.Context, request *models.Request) error
	// List returns every request ordered by id ascending.
	List(ctx context.Context) ([]models.Request, error)
}
