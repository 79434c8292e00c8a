package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"rosterhub/internal/inventory/models"
)

// PostgresStore persists items in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) List(ctx context.Context) ([]models.Item, error) {
	query := `
		SELECT id, name, description, owner_id, created_at
		FROM items
		ORDER BY id ASC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.OwnerID, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

func (s *PostgresStore) Get(ctx context.Context, id int64) (models.Item, error) {
	query := `
		SELECT id, name, description, owner_id, created_at
		FROM items
		WHERE id = $1
	`
	var item models.Item
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.Name, &item.Description, &item.OwnerID, &item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrNotFound
		}
		return models.Item{}, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

func (s *PostgresStore) Create(ctx context.Context, item *models.Item) error {
	query := `
		INSERT INTO items (name, description, owner_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := s.db.QueryRowContext(ctx, query, item.Name, item.Description, item.OwnerID).
		Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

func (s *PostgresStore) Update(ctx context.Context, item models.Item) (models.Item, error) {
	query := `
		UPDATE items
		SET name = $2, description = $3
		WHERE id = $1
		RETURNING id, name, description, owner_id, created_at
	`
	var updated models.Item
	err := s.db.QueryRowContext(ctx, query, item.ID, item.Name, item.Description).Scan(
		&updated.ID, &updated.Name, &updated.Description, &updated.OwnerID, &updated.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrNotFound
		}
		return models.Item{}, fmt.Errorf("update item: %w", err)
	}
	return updated, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete item rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
