// Package service holds the request-intake rules: requester and type are
// mandatory, the donation fields only make sense for donation requests and
// stay optional.
package service

import (
	"context"

	"rosterhub/internal/requests/models"
	"rosterhub/internal/requests/store"
	derrors "rosterhub/pkg/domain-errors"
)

type Service struct {
	requests store.Store
}

func New(requests store.Store) *Service {
	return &Service{requests: requests}
}

type CreateParams struct {
	Requester           string
	Type                string
	DonationName        string
	DonationDescription string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (models.Request, error) {
	if params.Requester == "" || params.Type == "" {
		return models.Request{}, derrors.New(derrors.CodeInvalidInput, "requester and type are required")
	}

	request := models.Request{
		Requester:           params.Requester,
		Type:                params.Type,
		DonationName:        params.DonationName,
		DonationDescription: params.DonationDescription,
	}
	if err := s.requests.Create(ctx, &request); err != nil {
		return models.Request{}, err
	}
	return request, nil
}

func (s *Service) List(ctx context.Context) ([]models.Request, error) {
	return s.requests.List(ctx)
}
