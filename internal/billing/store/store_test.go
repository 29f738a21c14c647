package store_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/estate/internal/billing"
	"github.com/MrJamesThe3rd/estate/internal/billing/store"
)

func newStore(t *testing.T) (*store.Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return store.New(db), mock
}

func TestStore_GetLineItem_JoinsServiceAndApartment(t *testing.T) {
	s, mock := newStore(t)
	id, invoiceID, subID, serviceID, aptID := uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("JOIN services sv ON sv.id = s.service_id WHERE d.id = $1")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "invoice_id", "subscription_id", "service_id", "name", "apartment_id",
			"quantity", "total", "created_at", "updated_at",
		}).AddRow(id.String(), invoiceID.String(), subID.String(), serviceID.String(), "Internet", aptID.String(),
			2, "200000.00", now, now))

	it, err := s.GetLineItem(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Internet", it.ServiceName)
	assert.Equal(t, aptID, it.ApartmentID)
	assert.True(t, decimal.NewFromInt(200000).Equal(it.Total))
}

func TestStore_Tx_PendingInvoiceLookup(t *testing.T) {
	s, mock := newStore(t)
	aptID := uuid.New()
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock($1)")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("status = 'PENDING' AND due_date >= $2 AND due_date < $3")).
		WithArgs(aptID, from, to).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	tx, err := s.Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, tx.LockApartment(context.Background(), aptID))

	_, err = tx.FindPendingInvoice(context.Background(), aptID, from, to)
	assert.ErrorIs(t, err, billing.ErrInvoiceNotFound)

	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Tx_DeleteMissingLineItem(t *testing.T) {
	s, mock := newStore(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM invoice_details WHERE id = $1")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	tx, err := s.Begin(context.Background())
	require.NoError(t, err)

	assert.ErrorIs(t, tx.DeleteLineItem(context.Background(), id), billing.ErrNotFound)
}
