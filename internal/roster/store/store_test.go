package store_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/estate/internal/apartment"
	"github.com/MrJamesThe3rd/estate/internal/roster"
	"github.com/MrJamesThe3rd/estate/internal/roster/store"
)

func newStore(t *testing.T) (*store.Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return store.New(db), mock
}

func TestStore_Import_LocksThenLoadsLookups(t *testing.T) {
	s, mock := newStore(t)
	towerID := uuid.New()
	apartmentID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock($1)")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM buildings")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(towerID.String(), " Tower A "))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT building_id, room_number FROM apartments")).
		WillReturnRows(sqlmock.NewRows([]string{"building_id", "room_number"}).AddRow(towerID.String(), 101))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO apartments")).
		WithArgs(102, decimal.NewFromInt(40), towerID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(apartmentID.String(), now, now))
	mock.ExpectCommit()

	ctx := context.Background()

	tx, err := s.BeginImport(ctx)
	require.NoError(t, err)

	buildings, err := tx.Buildings(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]uuid.UUID{"tower a": towerID}, buildings)

	rooms, err := tx.Rooms(ctx)
	require.NoError(t, err)
	assert.True(t, rooms[roster.RoomKey{BuildingID: towerID, RoomNumber: 101}])

	a := &apartment.Apartment{RoomNumber: 102, Area: decimal.NewFromInt(40), BuildingID: towerID}
	require.NoError(t, tx.CreateApartment(ctx, a))
	assert.Equal(t, apartmentID, a.ID)

	require.NoError(t, tx.Commit())
	assert.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_BeginImport_LockFailureRollsBack(t *testing.T) {
	s, mock := newStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock($1)")).
		WillReturnError(errors.New("canceled"))
	mock.ExpectRollback()

	_, err := s.BeginImport(context.Background())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_CreateApartment_MapsRoomTaken(t *testing.T) {
	s, mock := newStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock($1)")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO apartments")).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "apartments_building_room_key"})

	tx, err := s.BeginImport(context.Background())
	require.NoError(t, err)

	err = tx.CreateApartment(context.Background(), &apartment.Apartment{RoomNumber: 1, Area: decimal.NewFromInt(1), BuildingID: uuid.New()})
	assert.ErrorIs(t, err, apartment.ErrRoomTaken)
}
