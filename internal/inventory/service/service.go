// Package service holds the item business rules: required-name validation and
// full-overwrite update semantics.
package service

import (
	"context"

	"rosterhub/internal/inventory/models"
	"rosterhub/internal/inventory/store"
	derrors "rosterhub/pkg/domain-errors"
)

type Service struct {
	items store.Store
}

func New(items store.Store) *Service {
	return &Service{items: items}
}

func (s *Service) List(ctx context.Context) ([]models.Item, error) {
	return s.items.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (models.Item, error) {
	return s.items.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, name, description string, ownerID int64) (models.Item, error) {
	if name == "" {
		return models.Item{}, derrors.New(derrors.CodeInvalidInput, "name is required")
	}
	item := models.Item{Name: name, Description: description, OwnerID: ownerID}
	if err := s.items.Create(ctx, &item); err != nil {
		return models.Item{}, err
	}
	return item, nil
}

// Update overwrites both fields unconditionally; there is no partial update.
func (s *Service) Update(ctx context.Context, id int64, name, description string) (models.Item, error) {
	if name == "" {
		return models.Item{}, derrors.New(derrors.CodeInvalidInput, "name is required")
	}
	return s.items.Update(ctx, models.Item{ID: id, Name: name, Description: description})
}

// Delete removes the item and returns its id for the response payload.
func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	if err := s.items.Delete(ctx, id); err != nil {
		return 0, err
	}
	return id, nil
}
