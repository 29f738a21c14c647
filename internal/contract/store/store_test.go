package store_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/estate/internal/contract"
	"github.com/MrJamesThe3rd/estate/internal/contract/store"
)

var columns = []string{"id", "resident_id", "document_path", "status", "created_at", "updated_at"}

func newStore(t *testing.T) (*store.Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return store.New(db), mock
}

func TestStore_ListContracts_ByResident(t *testing.T) {
	s, mock := newStore(t)
	residentID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE ($1::uuid IS NULL OR resident_id = $1)")).
		WithArgs(&residentID).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(uuid.NewString(), residentID.String(), "contracts/2024/a1.pdf", "active", now, now))

	got, err := s.ListContracts(context.Background(), contract.ListFilter{ResidentID: &residentID})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, residentID, got[0].ResidentID)
	assert.Equal(t, contract.StatusActive, got[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_UpdateContract_PassesStatusAsText(t *testing.T) {
	s, mock := newStore(t)
	id := uuid.New()
	now := time.Now()
	status := contract.StatusTerminated

	mock.ExpectQuery(regexp.QuoteMeta("status = COALESCE($3, status)")).
		WithArgs(nil, nil, "terminated", id).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(id.String(), uuid.NewString(), "contracts/a1.pdf", "terminated", now, now))

	c, err := s.UpdateContract(context.Background(), id, contract.UpdateParams{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, contract.StatusTerminated, c.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GetContract_NotFound(t *testing.T) {
	s, mock := newStore(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM contracts WHERE id = $1")).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetContract(context.Background(), id)
	assert.ErrorIs(t, err, contract.ErrNotFound)
}

func TestStore_ResidentExists(t *testing.T) {
	s, mock := newStore(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM residents WHERE id = $1)")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	ok, err := s.ResidentExists(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, ok)
}
