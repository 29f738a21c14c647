package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/estate/internal/billing"
	"github.com/MrJamesThe3rd/estate/internal/database"
	"github.com/MrJamesThe3rd/estate/internal/invoice"
	"github.com/MrJamesThe3rd/estate/internal/offering"
	"github.com/MrJamesThe3rd/estate/internal/subscription"
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

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

const selectLineItem = `
	SELECT d.id, d.invoice_id, d.subscription_id, s.service_id, sv.name, i.apartment_id,
		d.quantity, d.total, d.created_at, d.updated_at
	FROM invoice_details d
	JOIN invoices i ON i.id = d.invoice_id
	JOIN subscriptions s ON s.id = d.subscription_id
	JOIN services sv ON sv.id = s.service_id`

func scanLineItem(s scanner) (*billing.LineItem, error) {
	var it billing.LineItem
	if err := s.Scan(
		&it.ID, &it.InvoiceID, &it.SubscriptionID, &it.ServiceID, &it.ServiceName, &it.ApartmentID,
		&it.Quantity, &it.Total, &it.CreatedAt, &it.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &it, nil
}

func getLineItem(ctx context.Context, q querier, id uuid.UUID) (*billing.LineItem, error) {
	it, err := scanLineItem(q.QueryRowContext(ctx, selectLineItem+` WHERE d.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, billing.ErrNotFound
		}

		return nil, fmt.Errorf("getting invoice detail: %w", err)
	}

	return it, nil
}

func listLineItems(ctx context.Context, q querier, invoiceID *uuid.UUID) ([]*billing.LineItem, error) {
	query := selectLineItem + `
		WHERE ($1::uuid IS NULL OR d.invoice_id = $1)
		ORDER BY d.created_at ASC`

	rows, err := q.QueryContext(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("listing invoice details: %w", err)
	}
	defer rows.Close()

	items := []*billing.LineItem{}

	for rows.Next() {
		it, err := scanLineItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning invoice detail: %w", err)
		}

		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoice details: %w", err)
	}

	return items, nil
}

func (s *Store) GetLineItem(ctx context.Context, id uuid.UUID) (*billing.LineItem, error) {
	return getLineItem(ctx, s.db, id)
}

func (s *Store) ListLineItems(ctx context.Context, filter billing.ListFilter) ([]*billing.LineItem, error) {
	return listLineItems(ctx, s.db, filter.InvoiceID)
}

type billingTx struct {
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context) (billing.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning billing tx: %w", err)
	}

	return &billingTx{tx: dbTx}, nil
}

func (btx *billingTx) Commit() error { return btx.tx.Commit() }

func (btx *billingTx) Rollback() error {
	if err := btx.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}

	return nil
}

// LockApartment serializes all billing of one apartment. Every line item
// mutation takes this lock before reading anything it will write.
func (btx *billingTx) LockApartment(ctx context.Context, apartmentID uuid.UUID) error {
	return database.AdvisoryLock(ctx, btx.tx, database.LockKey("apartment-billing", apartmentID.String()))
}

const selectSubscription = `SELECT id, apartment_id, service_id, frequency, next_billing_date, status, created_at, updated_at FROM subscriptions`

func scanSubscription(s scanner) (*subscription.Subscription, error) {
	var (
		sub       subscription.Subscription
		frequency string
		status    string
	)

	if err := s.Scan(
		&sub.ID, &sub.ApartmentID, &sub.ServiceID, &frequency, &sub.NextBillingDate, &status,
		&sub.CreatedAt, &sub.UpdatedAt,
	); err != nil {
		return nil, err
	}

	sub.Frequency = subscription.Frequency(frequency)
	sub.Status = subscription.Status(status)

	return &sub, nil
}

func (btx *billingTx) GetSubscription(ctx context.Context, id uuid.UUID) (*subscription.Subscription, error) {
	return btx.oneSubscription(ctx, selectSubscription+` WHERE id = $1`, id)
}

// FindSubscription returns the oldest subscription of the apartment to the
// service.
func (btx *billingTx) FindSubscription(ctx context.Context, apartmentID, serviceID uuid.UUID) (*subscription.Subscription, error) {
	query := selectSubscription + ` WHERE apartment_id = $1 AND service_id = $2 ORDER BY created_at ASC LIMIT 1`

	return btx.oneSubscription(ctx, query, apartmentID, serviceID)
}

func (btx *billingTx) oneSubscription(ctx context.Context, query string, args ...any) (*subscription.Subscription, error) {
	sub, err := scanSubscription(btx.tx.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, billing.ErrSubscriptionNotFound
		}

		return nil, fmt.Errorf("getting subscription: %w", err)
	}

	return sub, nil
}

func (btx *billingTx) SetNextBillingDate(ctx context.Context, subscriptionID uuid.UUID, next time.Time) error {
	query := `UPDATE subscriptions SET next_billing_date = $1, updated_at = NOW() WHERE id = $2`

	if _, err := btx.tx.ExecContext(ctx, query, next, subscriptionID); err != nil {
		return fmt.Errorf("advancing billing date: %w", err)
	}

	return nil
}

func (btx *billingTx) GetOffering(ctx context.Context, id uuid.UUID) (*offering.Offering, error) {
	query := `SELECT id, name, description, unit_price, created_at, updated_at FROM services WHERE id = $1`

	var o offering.Offering

	err := btx.tx.QueryRowContext(ctx, query, id).
		Scan(&o.ID, &o.Name, &o.Description, &o.UnitPrice, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, billing.ErrServiceNotFound
		}

		return nil, fmt.Errorf("getting service: %w", err)
	}

	return &o, nil
}

const selectInvoice = `SELECT id, apartment_id, status, due_date, total_amount, created_at, updated_at FROM invoices`

func (btx *billingTx) GetInvoice(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	return btx.oneInvoice(ctx, selectInvoice+` WHERE id = $1`, id)
}

// FindPendingInvoice returns the earliest pending invoice of the apartment
// due within [from, to).
func (btx *billingTx) FindPendingInvoice(ctx context.Context, apartmentID uuid.UUID, from, to time.Time) (*invoice.Invoice, error) {
	query := selectInvoice + `
		WHERE apartment_id = $1 AND status = 'PENDING' AND due_date >= $2 AND due_date < $3
		ORDER BY due_date ASC
		LIMIT 1`

	return btx.oneInvoice(ctx, query, apartmentID, from, to)
}

func (btx *billingTx) oneInvoice(ctx context.Context, query string, args ...any) (*invoice.Invoice, error) {
	var (
		inv    invoice.Invoice
		status string
	)

	err := btx.tx.QueryRowContext(ctx, query, args...).
		Scan(&inv.ID, &inv.ApartmentID, &status, &inv.DueDate, &inv.TotalAmount, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, billing.ErrInvoiceNotFound
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	inv.Status = invoice.Status(status)

	return &inv, nil
}

func (btx *billingTx) CreateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		INSERT INTO invoices (apartment_id, status, due_date, total_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := btx.tx.QueryRowContext(ctx, query, inv.ApartmentID, string(inv.Status), inv.DueDate, inv.TotalAmount).
		Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating invoice: %w", err)
	}

	return nil
}

func (btx *billingTx) SetInvoiceTotal(ctx context.Context, invoiceID uuid.UUID, total decimal.Decimal) error {
	query := `UPDATE invoices SET total_amount = $1, updated_at = NOW() WHERE id = $2`

	res, err := btx.tx.ExecContext(ctx, query, total, invoiceID)
	if err != nil {
		return fmt.Errorf("setting invoice total: %w", err)
	}

	return requireRow(res, billing.ErrInvoiceNotFound)
}

func (btx *billingTx) GetLineItem(ctx context.Context, id uuid.UUID) (*billing.LineItem, error) {
	return getLineItem(ctx, btx.tx, id)
}

func (btx *billingTx) ListInvoiceLineItems(ctx context.Context, invoiceID uuid.UUID) ([]*billing.LineItem, error) {
	return listLineItems(ctx, btx.tx, &invoiceID)
}

func (btx *billingTx) CreateLineItem(ctx context.Context, item *billing.LineItem) error {
	query := `
		INSERT INTO invoice_details (invoice_id, subscription_id, quantity, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := btx.tx.QueryRowContext(ctx, query, item.InvoiceID, item.SubscriptionID, item.Quantity, item.Total).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating invoice detail: %w", err)
	}

	return nil
}

func (btx *billingTx) UpdateLineItem(ctx context.Context, id uuid.UUID, quantity int, total decimal.Decimal) (*billing.LineItem, error) {
	query := `UPDATE invoice_details SET quantity = $1, total = $2, updated_at = NOW() WHERE id = $3`

	res, err := btx.tx.ExecContext(ctx, query, quantity, total, id)
	if err != nil {
		return nil, fmt.Errorf("updating invoice detail: %w", err)
	}

	if err := requireRow(res, billing.ErrNotFound); err != nil {
		return nil, err
	}

	return getLineItem(ctx, btx.tx, id)
}

func (btx *billingTx) DeleteLineItem(ctx context.Context, id uuid.UUID) error {
	res, err := btx.tx.ExecContext(ctx, `DELETE FROM invoice_details WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting invoice detail: %w", err)
	}

	return requireRow(res, billing.ErrNotFound)
}

func requireRow(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return notFound
	}

	return nil
}
