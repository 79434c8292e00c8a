package store

import (
	"context"
	"database/sql"
	"fmt"

	"rosterhub/internal/requests/models"
)

// PostgresStore persists requests in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, request *models.Request) error {
	query := `
		INSERT INTO requests (requester, request_type, donation_name, donation_description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := s.db.QueryRowContext(ctx, query,
		request.Requester, request.Type, request.DonationName, request.DonationDescription,
	).Scan(&request.ID, &request.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert request: %w", err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]models.Request, error) {
	query := `
		SELECT id, requester, request_type, donation_name, donation_description, created_at
		FROM requests
		ORDER BY id ASC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	requests := make([]models.Request, 0)
	for rows.Next() {
		var request models.Request
		err := rows.Scan(
			&request.ID, &request.Requester, &request.Type,
			&request.DonationName, &request.DonationDescription, &request.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		requests = append(requests, request)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate requests: %w", err)
	}
	return requests, nil
}
