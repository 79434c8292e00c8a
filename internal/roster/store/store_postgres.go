package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"rosterhub/internal/roster/models"
)

// foreignKeyViolation is the SQLSTATE raised when an assignment references a
// missing person or service.
const foreignKeyViolation = "23503"

// PostgresStore persists the roster in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) CreatePerson(ctx context.Context, person *models.Person) error {
	query := `
		INSERT INTO people (name, email)
		VALUES ($1, $2)
		RETURNING id
	`
	if err := s.db.QueryRowContext(ctx, query, person.Name, person.Email).Scan(&person.ID); err != nil {
		return fmt.Errorf("insert person: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListPeopleWithServices(ctx context.Context) ([]models.PersonWithServices, error) {
	// Left join keeps people without assignments in the result with an empty
	// services string; string_agg orders titles by assignment time.
	query := `
		SELECT p.id, p.name, p.email,
		       COALESCE(string_agg(s.title, $1 ORDER BY ps.assigned_at), '') AS services
		FROM people p
		LEFT JOIN people_services ps ON p.id = ps.person_id
		LEFT JOIN services s ON ps.service_id = s.id
		GROUP BY p.id, p.name, p.email
		ORDER BY p.id ASC
	`
	rows, err := s.db.QueryContext(ctx, query, TitleSeparator)
	if err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}
	defer rows.Close()

	people := make([]models.PersonWithServices, 0)
	for rows.Next() {
		var person models.PersonWithServices
		if err := rows.Scan(&person.ID, &person.Name, &person.Email, &person.Services); err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		people = append(people, person)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate people: %w", err)
	}
	return people, nil
}

func (s *PostgresStore) CreateService(ctx context.Context, service *models.Service) error {
	query := `
		INSERT INTO services (title, description)
		VALUES ($1, $2)
		RETURNING id
	`
	if err := s.db.QueryRowContext(ctx, query, service.Title, service.Description).Scan(&service.ID); err != nil {
		return fmt.Errorf("insert service: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListServices(ctx context.Context) ([]models.Service, error) {
	query := `
		SELECT id, title, description
		FROM services
		ORDER BY id ASC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	services := make([]models.Service, 0)
	for rows.Next() {
		var svc models.Service
		if err := rows.Scan(&svc.ID, &svc.Title, &svc.Description); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate services: %w", err)
	}
	return services, nil
}

func (s *PostgresStore) Assign(ctx context.Context, personID, serviceID int64, assignedAt time.Time) error {
	// The composite primary key makes re-assignment an upsert refreshing the
	// timestamp; foreign keys reject dangling references before any row is
	// written.
	query := `
		INSERT INTO people_services (person_id, service_id, assigned_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (person_id, service_id) DO UPDATE SET assigned_at = EXCLUDED.assigned_at
	`
	if _, err := s.db.ExecContext(ctx, query, personID, serviceID, assignedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return ErrMissingReference
		}
		return fmt.Errorf("assign service: %w", err)
	}
	return nil
}
