package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/estate/internal/database"
	"github.com/MrJamesThe3rd/estate/internal/resident"
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

const selectColumns = `id, full_name, email, password, phone, role, refresh_token, created_at, updated_at`

// scanResident expects the column order of selectColumns.
func scanResident(s scanner) (*resident.Resident, error) {
	var r resident.Resident

	var role string

	var refresh sql.NullString

	if err := s.Scan(
		&r.ID, &r.FullName, &r.Email, &r.Password, &r.Phone, &role, &refresh,
		&r.CreatedAt, &r.UpdatedAt,
	); err != nil {
		return nil, err
	}

	r.Role = resident.Role(role)

	if refresh.Valid {
		r.RefreshToken = &refresh.String
	}

	return &r, nil
}

func (s *Store) CreateResident(ctx context.Context, r *resident.Resident) error {
	query := `
		INSERT INTO residents (full_name, email, password, phone, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query, r.FullName, r.Email, r.Password, r.Phone, r.Role).
		Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return resident.ErrEmailTaken
		}

		return fmt.Errorf("creating resident: %w", err)
	}

	return nil
}

func (s *Store) GetResident(ctx context.Context, id uuid.UUID) (*resident.Resident, error) {
	query := `SELECT ` + selectColumns + ` FROM residents WHERE id = $1`

	return s.getOne(ctx, "getting resident", query, id)
}

func (s *Store) GetResidentByEmail(ctx context.Context, email string) (*resident.Resident, error) {
	query := `SELECT ` + selectColumns + ` FROM residents WHERE email = $1`

	return s.getOne(ctx, "getting resident by email", query, email)
}

func (s *Store) getOne(ctx context.Context, op, query string, args ...any) (*resident.Resident, error) {
	r, err := scanResident(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, resident.ErrNotFound
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return r, nil
}

func (s *Store) ListResidents(ctx context.Context) ([]*resident.Resident, error) {
	query := `SELECT ` + selectColumns + ` FROM residents ORDER BY full_name ASC`

	return s.list(ctx, query)
}

func (s *Store) SearchResidents(ctx context.Context, q string) ([]*resident.Resident, error) {
	query := `SELECT ` + selectColumns + `
		FROM residents
		WHERE full_name ILIKE $1 OR email ILIKE $1 OR phone ILIKE $1
		ORDER BY full_name ASC`

	return s.list(ctx, query, "%"+escapeLike(q)+"%")
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]*resident.Resident, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing residents: %w", err)
	}
	defer rows.Close()

	residents := []*resident.Resident{}

	for rows.Next() {
		r, err := scanResident(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning resident: %w", err)
		}

		residents = append(residents, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating residents: %w", err)
	}

	return residents, nil
}

func (s *Store) UpdateResident(ctx context.Context, id uuid.UUID, params resident.UpdateParams) (*resident.Resident, error) {
	query := `
		UPDATE residents
		SET full_name = COALESCE($1, full_name),
			email = COALESCE($2, email),
			password = COALESCE($3, password),
			phone = COALESCE($4, phone),
			role = COALESCE($5, role),
			updated_at = NOW()
		WHERE id = $6
		RETURNING ` + selectColumns

	var role *string
	if params.Role != nil {
		role = new(string(*params.Role))
	}

	r, err := scanResident(s.db.QueryRowContext(ctx, query,
		params.FullName, params.Email, params.Password, params.Phone, role, id,
	))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, resident.ErrNotFound
		case database.IsUniqueViolation(err):
			return nil, resident.ErrEmailTaken
		}

		return nil, fmt.Errorf("updating resident: %w", err)
	}

	return r, nil
}

func (s *Store) DeleteResident(ctx context.Context, id uuid.UUID) (*resident.Resident, error) {
	query := `DELETE FROM residents WHERE id = $1 RETURNING ` + selectColumns

	return s.getOne(ctx, "deleting resident", query, id)
}

func (s *Store) SetRefreshToken(ctx context.Context, id uuid.UUID, hash *string) error {
	query := `UPDATE residents SET refresh_token = $1, updated_at = NOW() WHERE id = $2`

	res, err := s.db.ExecContext(ctx, query, hash, id)
	if err != nil {
		return fmt.Errorf("setting refresh token: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("setting refresh token: %w", err)
	}

	if n == 0 {
		return resident.ErrNotFound
	}

	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
