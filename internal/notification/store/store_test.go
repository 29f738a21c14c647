package store_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/estate/internal/notification"
	"github.com/MrJamesThe3rd/estate/internal/notification/store"
)

var columns = []string{"id", "message", "created_at", "updated_at"}

func newStore(t *testing.T) (*store.Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return store.New(db), mock
}

func TestStore_CreateNotification(t *testing.T) {
	s, mock := newStore(t)
	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO notifications")).
		WithArgs("Water off on Friday").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(id.String(), now, now))

	n := &notification.Notification{Message: "Water off on Friday"}
	require.NoError(t, s.CreateNotification(context.Background(), n))
	assert.Equal(t, id, n.ID)
	assert.Equal(t, now, n.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_UpdateNotification(t *testing.T) {
	id := uuid.New()

	t.Run("KeepsMessageWhenNil", func(t *testing.T) {
		s, mock := newStore(t)
		now := time.Now()
		mock.ExpectQuery(regexp.QuoteMeta("message = COALESCE($1, message)")).
			WithArgs(nil, id).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(id.String(), "unchanged", now, now))

		n, err := s.UpdateNotification(context.Background(), id, nil)
		require.NoError(t, err)
		assert.Equal(t, "unchanged", n.Message)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		s, mock := newStore(t)
		msg := "new"
		mock.ExpectQuery(regexp.QuoteMeta("UPDATE notifications")).
			WithArgs(msg, id).
			WillReturnError(sql.ErrNoRows)

		_, err := s.UpdateNotification(context.Background(), id, &msg)
		assert.ErrorIs(t, err, notification.ErrNotFound)
	})
}

func TestStore_DeleteNotification_WrapsDriverError(t *testing.T) {
	s, mock := newStore(t)
	id := uuid.New()
	boom := errors.New("connection reset")

	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM notifications WHERE id = $1")).
		WithArgs(id).
		WillReturnError(boom)

	_, err := s.DeleteNotification(context.Background(), id)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "deleting notification")
}
