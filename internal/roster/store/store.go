package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/estate/internal/apartment"
	"github.com/MrJamesThe3rd/estate/internal/database"
	"github.com/MrJamesThe3rd/estate/internal/roster"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type importTx struct {
	tx *sql.Tx
}

// BeginImport opens a transaction holding the roster import lock.
func (s *Store) BeginImport(ctx context.Context) (roster.ImportTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning import tx: %w", err)
	}

	if err := database.AdvisoryLock(ctx, dbTx, database.LockKey("roster-import")); err != nil {
		_ = dbTx.Rollback()
		return nil, err
	}

	return &importTx{tx: dbTx}, nil
}

func (itx *importTx) Commit() error { return itx.tx.Commit() }

func (itx *importTx) Rollback() error {
	if err := itx.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}

	return nil
}

// Buildings maps each building's lookup key to its ID.
func (itx *importTx) Buildings(ctx context.Context) (map[string]uuid.UUID, error) {
	rows, err := itx.tx.QueryContext(ctx, `SELECT id, name FROM buildings`)
	if err != nil {
		return nil, fmt.Errorf("listing buildings: %w", err)
	}
	defer rows.Close()

	buildings := map[string]uuid.UUID{}

	for rows.Next() {
		var (
			id   uuid.UUID
			name string
		)

		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scanning building: %w", err)
		}

		buildings[roster.BuildingKey(name)] = id
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating buildings: %w", err)
	}

	return buildings, nil
}

func (itx *importTx) Rooms(ctx context.Context) (map[roster.RoomKey]bool, error) {
	rows, err := itx.tx.QueryContext(ctx, `SELECT building_id, room_number FROM apartments`)
	if err != nil {
		return nil, fmt.Errorf("listing rooms: %w", err)
	}
	defer rows.Close()

	rooms := map[roster.RoomKey]bool{}

	for rows.Next() {
		var key roster.RoomKey
		if err := rows.Scan(&key.BuildingID, &key.RoomNumber); err != nil {
			return nil, fmt.Errorf("scanning room: %w", err)
		}

		rooms[key] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rooms: %w", err)
	}

	return rooms, nil
}

func (itx *importTx) CreateApartment(ctx context.Context, a *apartment.Apartment) error {
	query := `
		INSERT INTO apartments (room_number, area, building_id, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := itx.tx.QueryRowContext(ctx, query, a.RoomNumber, a.Area, a.BuildingID).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)

	switch {
	case err == nil:
		return nil
	case database.IsUniqueViolation(err):
		return apartment.ErrRoomTaken
	case database.IsForeignKeyViolation(err):
		return apartment.ErrBuildingNotFound
	}

	return fmt.Errorf("creating apartment: %w", err)
}
