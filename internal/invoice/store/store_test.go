package store_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/estate/internal/invoice"
	"github.com/MrJamesThe3rd/estate/internal/invoice/store"
)

func TestStore_MarkOverdue(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("WHERE status = 'PENDING' AND due_date < $1")).
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := store.New(db).MarkOverdue(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_ListInvoices_FiltersByStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	status := invoice.StatusOverdue

	mock.ExpectQuery(regexp.QuoteMeta("($2::text IS NULL OR status = $2)")).
		WithArgs(nil, "OVERDUE").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "apartment_id", "status", "due_date", "total_amount", "created_at", "updated_at",
		}))

	got, err := store.New(db).ListInvoices(context.Background(), invoice.ListFilter{Status: &status})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
