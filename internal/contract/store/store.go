package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/estate/internal/contract"
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

const selectColumns = `id, resident_id, document_path, status, created_at, updated_at`

func scanContract(s scanner) (*contract.Contract, error) {
	var (
		c      contract.Contract
		status string
	)

	if err := s.Scan(&c.ID, &c.ResidentID, &c.DocumentPath, &status, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}

	c.Status = contract.Status(status)

	return &c, nil
}

func (s *Store) CreateContract(ctx context.Context, c *contract.Contract) error {
	query := `
		INSERT INTO contracts (resident_id, document_path, status, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query, c.ResidentID, c.DocumentPath, string(c.Status)).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating contract: %w", err)
	}

	return nil
}

func (s *Store) GetContract(ctx context.Context, id uuid.UUID) (*contract.Contract, error) {
	query := `SELECT ` + selectColumns + ` FROM contracts WHERE id = $1`

	return s.one(ctx, "getting contract", query, id)
}

func (s *Store) ListContracts(ctx context.Context, filter contract.ListFilter) ([]*contract.Contract, error) {
	query := `SELECT ` + selectColumns + `
		FROM contracts
		WHERE ($1::uuid IS NULL OR resident_id = $1)
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, filter.ResidentID)
	if err != nil {
		return nil, fmt.Errorf("listing contracts: %w", err)
	}
	defer rows.Close()

	contracts := []*contract.Contract{}

	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning contract: %w", err)
		}

		contracts = append(contracts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contracts: %w", err)
	}

	return contracts, nil
}

func (s *Store) UpdateContract(ctx context.Context, id uuid.UUID, params contract.UpdateParams) (*contract.Contract, error) {
	query := `
		UPDATE contracts
		SET resident_id = COALESCE($1, resident_id),
			document_path = COALESCE($2, document_path),
			status = COALESCE($3, status),
			updated_at = NOW()
		WHERE id = $4
		RETURNING ` + selectColumns

	var status *string
	if params.Status != nil {
		status = new(string(*params.Status))
	}

	return s.one(ctx, "updating contract", query, params.ResidentID, params.DocumentPath, status, id)
}

func (s *Store) DeleteContract(ctx context.Context, id uuid.UUID) (*contract.Contract, error) {
	query := `DELETE FROM contracts WHERE id = $1 RETURNING ` + selectColumns

	return s.one(ctx, "deleting contract", query, id)
}

func (s *Store) ResidentExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var ok bool
	if err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM residents WHERE id = $1)`, id).Scan(&ok); err != nil {
		return false, fmt.Errorf("checking resident: %w", err)
	}

	return ok, nil
}

func (s *Store) one(ctx context.Context, op, query string, args ...any) (*contract.Contract, error) {
	c, err := scanContract(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, contract.ErrNotFound
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}
