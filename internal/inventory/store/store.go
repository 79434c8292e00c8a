// Package store persists inventory items.
package store

import (
	"context"

	"rosterhub/internal/inventory/models"
	derrors "rosterhub/pkg/domain-errors"
)

var ErrNotFound = derrors.New(derrors.CodeNotFound, "item not found")

type Store interface {
	// List returns all items ordered by id ascending.
	List(ctx context.Context) ([]models.Item, error)
	Get(ctx context.Context, id int64) (models.Item, error)
	// Create inserts the item and fills in the generated ID and CreatedAt.
	Create(ctx context.Context, item *models.Item) error
	// Update overwrites name and description unconditionally.
	Update(ctx context.Context, item models.Item) (models.Item, error)
	Delete(ctx context.Context, id int64) error
}
