package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/estate/internal/building"
	"github.com/MrJamesThe3rd/estate/internal/database"
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

const selectColumns = `id, name, address, created_at, updated_at`

func scanBuilding(s scanner) (*building.Building, error) {
	var b building.Building
	if err := s.Scan(&b.ID, &b.Name, &b.Address, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}

	return &b, nil
}

func (s *Store) CreateBuilding(ctx context.Context, b *building.Building) error {
	query := `
		INSERT INTO buildings (name, address, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query, b.Name, b.Address).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating building: %w", err)
	}

	return nil
}

func (s *Store) GetBuilding(ctx context.Context, id uuid.UUID) (*building.Building, error) {
	query := `SELECT ` + selectColumns + ` FROM buildings WHERE id = $1`

	b, err := scanBuilding(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, building.ErrNotFound
		}

		return nil, fmt.Errorf("getting building: %w", err)
	}

	return b, nil
}

func (s *Store) ListBuildings(ctx context.Context) ([]*building.Building, error) {
	query := `SELECT ` + selectColumns + ` FROM buildings ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing buildings: %w", err)
	}
	defer rows.Close()

	buildings := []*building.Building{}

	for rows.Next() {
		b, err := scanBuilding(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning building: %w", err)
		}

		buildings = append(buildings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating buildings: %w", err)
	}

	return buildings, nil
}

func (s *Store) UpdateBuilding(ctx context.Context, id uuid.UUID, params building.UpdateParams) (*building.Building, error) {
	query := `
		UPDATE buildings
		SET name = COALESCE($1, name), address = COALESCE($2, address), updated_at = NOW()
		WHERE id = $3
		RETURNING ` + selectColumns

	b, err := scanBuilding(s.db.QueryRowContext(ctx, query, params.Name, params.Address, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, building.ErrNotFound
		}

		return nil, fmt.Errorf("updating building: %w", err)
	}

	return b, nil
}

func (s *Store) DeleteBuilding(ctx context.Context, id uuid.UUID) (*building.Building, error) {
	query := `DELETE FROM buildings WHERE id = $1 RETURNING ` + selectColumns

	b, err := scanBuilding(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, building.ErrNotFound
		case database.IsForeignKeyViolation(err):
			return nil, building.ErrInUse
		}

		return nil, fmt.Errorf("deleting building: %w", err)
	}

	return b, nil
}
