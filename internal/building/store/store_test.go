package store_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/estate/internal/building"
	"github.com/MrJamesThe3rd/estate/internal/building/store"
)

var columns = []string{"id", "name", "address", "created_at", "updated_at"}

func newStore(t *testing.T) (*store.Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return store.New(db), mock
}

func TestStore_GetBuilding(t *testing.T) {
	id := uuid.New()
	now := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)

	t.Run("Found", func(t *testing.T) {
		s, mock := newStore(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM buildings WHERE id = $1")).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(id.String(), "Tòa A", "1 Lê Lợi", now, now))

		b, err := s.GetBuilding(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, id, b.ID)
		assert.Equal(t, "Tòa A", b.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		s, mock := newStore(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM buildings WHERE id = $1")).
			WithArgs(id).
			WillReturnError(sql.ErrNoRows)

		_, err := s.GetBuilding(context.Background(), id)
		assert.ErrorIs(t, err, building.ErrNotFound)
	})
}

func TestStore_UpdateBuilding_PatchesWithCoalesce(t *testing.T) {
	s, mock := newStore(t)
	id := uuid.New()
	now := time.Now()
	name := "Tòa B"

	mock.ExpectQuery(regexp.QuoteMeta("SET name = COALESCE($1, name), address = COALESCE($2, address)")).
		WithArgs(name, nil, id).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(id.String(), name, "unchanged", now, now))

	b, err := s.UpdateBuilding(context.Background(), id, building.UpdateParams{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "unchanged", b.Address)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_DeleteBuilding_InUse(t *testing.T) {
	s, mock := newStore(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM buildings WHERE id = $1")).
		WithArgs(id).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	_, err := s.DeleteBuilding(context.Background(), id)
	assert.ErrorIs(t, err, building.ErrInUse)
}

func TestStore_ListBuildings_EmptyIsNotNil(t *testing.T) {
	s, mock := newStore(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM buildings ORDER BY name")).
		WillReturnRows(sqlmock.NewRows(columns))

	got, err := s.ListBuildings(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
