package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/estate/internal/database"
	"github.com/MrJamesThe3rd/estate/internal/offering"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectColumns = `id, name, description, unit_price, created_at, updated_at`

func scanOffering(s scanner) (*offering.Offering, error) {
	var o offering.Offering
	if err := s.Scan(&o.ID, &o.Name, &o.Description, &o.UnitPrice, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}

	return &o, nil
}

func (s *Store) CreateOffering(ctx context.Context, o *offering.Offering) error {
	query := `
		INSERT INTO services (name, description, unit_price, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query, o.Name, o.Description, o.UnitPrice).
		Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating service: %w", err)
	}

	return nil
}

func (s *Store) GetOffering(ctx context.Context, id uuid.UUID) (*offering.Offering, error) {
	query := `SELECT ` + selectColumns + ` FROM services WHERE id = $1`

	o, err := scanOffering(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, offering.ErrNotFound
		}

		return nil, fmt.Errorf("getting service: %w", err)
	}

	return o, nil
}

func (s *Store) ListOfferings(ctx context.Context) ([]*offering.Offering, error) {
	query := `SELECT ` + selectColumns + ` FROM services ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing services: %w", err)
	}
	defer rows.Close()

	offerings := []*offering.Offering{}

	for rows.Next() {
		o, err := scanOffering(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning service: %w", err)
		}

		offerings = append(offerings, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating services: %w", err)
	}

	return offerings, nil
}

func (s *Store) UpdateOffering(ctx context.Context, id uuid.UUID, params offering.UpdateParams) (*offering.Offering, error) {
	query := `
		UPDATE services
		SET name = COALESCE($1, name),
			description = COALESCE($2, description),
			unit_price = COALESCE($3, unit_price),
			updated_at = NOW()
		WHERE id = $4
		RETURNING ` + selectColumns

	o, err := scanOffering(s.db.QueryRowContext(ctx, query, params.Name, params.Description, params.UnitPrice, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, offering.ErrNotFound
		}

		return nil, fmt.Errorf("updating service: %w", err)
	}

	return o, nil
}

func (s *Store) DeleteOffering(ctx context.Context, id uuid.UUID) (*offering.Offering, error) {
	query := `DELETE FROM services WHERE id = $1 RETURNING ` + selectColumns

	o, err := scanOffering(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, offering.ErrNotFound
		case database.IsForeignKeyViolation(err):
			return nil, offering.ErrInUse
		}

		return nil, fmt.Errorf("deleting service: %w", err)
	}

	return o, nil
}
