package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/estate/internal/apartment"
	"github.com/MrJamesThe3rd/estate/internal/database"
)

const (
	residentConstraint = "apartments_resident_id_key"
	roomConstraint     = "apartments_building_room_key"
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

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

const selectColumns = `id, room_number, area, building_id, resident_id, created_at, updated_at`

func scanApartment(s scanner) (*apartment.Apartment, error) {
	var a apartment.Apartment

	var residentID uuid.NullUUID

	if err := s.Scan(
		&a.ID, &a.RoomNumber, &a.Area, &a.BuildingID, &residentID, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if residentID.Valid {
		a.ResidentID = &residentID.UUID
	}

	return &a, nil
}

// mapWriteErr translates constraint violations raised by inserts and updates.
func mapWriteErr(op string, err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return apartment.ErrNotFound
	case database.IsUniqueViolation(err):
		switch database.ConstraintName(err) {
		case residentConstraint:
			return apartment.ErrResidentTaken
		case roomConstraint:
			return apartment.ErrRoomTaken
		}
	case database.IsForeignKeyViolation(err):
		return apartment.ErrBuildingNotFound
	}

	return fmt.Errorf("%s: %w", op, err)
}

func (s *Store) CreateApartment(ctx context.Context, a *apartment.Apartment) error {
	query := `
		INSERT INTO apartments (room_number, area, building_id, resident_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query, a.RoomNumber, a.Area, a.BuildingID, a.ResidentID).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return mapWriteErr("creating apartment", err)
	}

	return nil
}

func (s *Store) GetApartment(ctx context.Context, id uuid.UUID) (*apartment.Apartment, error) {
	query := `SELECT ` + selectColumns + ` FROM apartments WHERE id = $1`

	a, err := scanApartment(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apartment.ErrNotFound
		}

		return nil, fmt.Errorf("getting apartment: %w", err)
	}

	return a, nil
}

func (s *Store) ListApartments(ctx context.Context, filter apartment.ListFilter) ([]*apartment.Apartment, error) {
	query := `SELECT ` + selectColumns + `
		FROM apartments
		WHERE ($1::uuid IS NULL OR building_id = $1)
		ORDER BY building_id, room_number ASC`

	rows, err := s.db.QueryContext(ctx, query, filter.BuildingID)
	if err != nil {
		return nil, fmt.Errorf("listing apartments: %w", err)
	}
	defer rows.Close()

	apartments := []*apartment.Apartment{}

	for rows.Next() {
		a, err := scanApartment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning apartment: %w", err)
		}

		apartments = append(apartments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating apartments: %w", err)
	}

	return apartments, nil
}

func (s *Store) UpdateApartment(ctx context.Context, id uuid.UUID, params apartment.UpdateParams) (*apartment.Apartment, error) {
	query := `
		UPDATE apartments
		SET room_number = COALESCE($1, room_number),
			area = COALESCE($2, area),
			building_id = COALESCE($3, building_id),
			updated_at = NOW()
		WHERE id = $4
		RETURNING ` + selectColumns

	a, err := scanApartment(s.db.QueryRowContext(ctx, query, params.RoomNumber, params.Area, params.BuildingID, id))
	if err != nil {
		return nil, mapWriteErr("updating apartment", err)
	}

	return a, nil
}

func (s *Store) DeleteApartment(ctx context.Context, id uuid.UUID) (*apartment.Apartment, error) {
	query := `DELETE FROM apartments WHERE id = $1 RETURNING ` + selectColumns

	a, err := scanApartment(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apartment.ErrNotFound
		}

		return nil, fmt.Errorf("deleting apartment: %w", err)
	}

	return a, nil
}

func (s *Store) BuildingExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return exists(ctx, s.db, `SELECT EXISTS (SELECT 1 FROM buildings WHERE id = $1)`, id)
}

func (s *Store) ResidentExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return exists(ctx, s.db, `SELECT EXISTS (SELECT 1 FROM residents WHERE id = $1)`, id)
}

func exists(ctx context.Context, q querier, query string, id uuid.UUID) (bool, error) {
	var ok bool
	if err := q.QueryRowContext(ctx, query, id).Scan(&ok); err != nil {
		return false, fmt.Errorf("checking existence: %w", err)
	}

	return ok, nil
}

type assignTx struct {
	tx *sql.Tx
}

func (s *Store) BeginAssignment(ctx context.Context) (apartment.AssignTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning assignment tx: %w", err)
	}

	return &assignTx{tx: dbTx}, nil
}

func (atx *assignTx) Commit() error { return atx.tx.Commit() }

func (atx *assignTx) Rollback() error {
	if err := atx.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}

	return nil
}

func (atx *assignTx) LockApartment(ctx context.Context, id uuid.UUID) (*apartment.Apartment, error) {
	query := `SELECT ` + selectColumns + ` FROM apartments WHERE id = $1 FOR UPDATE`

	a, err := scanApartment(atx.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apartment.ErrNotFound
		}

		return nil, fmt.Errorf("locking apartment: %w", err)
	}

	return a, nil
}

// LockResident serializes concurrent assignments of the same resident to
// different apartments.
func (atx *assignTx) LockResident(ctx context.Context, residentID uuid.UUID) error {
	return database.AdvisoryLock(ctx, atx.tx, database.LockKey("resident-assignment", residentID.String()))
}

func (atx *assignTx) ResidentExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return exists(ctx, atx.tx, `SELECT EXISTS (SELECT 1 FROM residents WHERE id = $1)`, id)
}

func (atx *assignTx) FindByResident(ctx context.Context, residentID uuid.UUID) (*apartment.Apartment, error) {
	query := `SELECT ` + selectColumns + ` FROM apartments WHERE resident_id = $1`

	a, err := scanApartment(atx.tx.QueryRowContext(ctx, query, residentID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apartment.ErrNotFound
		}

		return nil, fmt.Errorf("finding apartment by resident: %w", err)
	}

	return a, nil
}

func (atx *assignTx) SetResident(ctx context.Context, id uuid.UUID, residentID *uuid.UUID) (*apartment.Apartment, error) {
	query := `
		UPDATE apartments SET resident_id = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + selectColumns

	a, err := scanApartment(atx.tx.QueryRowContext(ctx, query, residentID, id))
	if err != nil {
		return nil, mapWriteErr("setting resident", err)
	}

	return a, nil
}
