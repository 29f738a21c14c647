package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/estate/internal/payment"
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

const selectColumns = `id, invoice_id, amount, status, payment_date, created_at, updated_at`

func scanPayment(s scanner) (*payment.Payment, error) {
	var (
		p      payment.Payment
		status string
	)

	if err := s.Scan(&p.ID, &p.InvoiceID, &p.Amount, &status, &p.PaymentDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}

	p.Status = payment.Status(status)

	return &p, nil
}

func (s *Store) GetPayment(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	query := `SELECT ` + selectColumns + ` FROM payments WHERE id = $1`

	p, err := scanPayment(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payment.ErrNotFound
		}

		return nil, fmt.Errorf("getting payment: %w", err)
	}

	return p, nil
}

func (s *Store) ListPayments(ctx context.Context, filter payment.ListFilter) ([]*payment.Payment, error) {
	query := `SELECT ` + selectColumns + `
		FROM payments
		WHERE ($1::uuid IS NULL OR invoice_id = $1)
		ORDER BY payment_date DESC`

	rows, err := s.db.QueryContext(ctx, query, filter.InvoiceID)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}
	defer rows.Close()

	payments := []*payment.Payment{}

	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning payment: %w", err)
		}

		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating payments: %w", err)
	}

	return payments, nil
}

func (s *Store) UpdatePayment(ctx context.Context, id uuid.UUID, params payment.UpdateParams) (*payment.Payment, error) {
	query := `
		UPDATE payments
		SET amount = COALESCE($1, amount),
			status = COALESCE($2, status),
			payment_date = COALESCE($3, payment_date),
			updated_at = NOW()
		WHERE id = $4
		RETURNING ` + selectColumns

	var status *string
	if params.Status != nil {
		status = new(string(*params.Status))
	}

	p, err := scanPayment(s.db.QueryRowContext(ctx, query, params.Amount, status, params.PaymentDate, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payment.ErrNotFound
		}

		return nil, fmt.Errorf("updating payment: %w", err)
	}

	return p, nil
}

func (s *Store) DeletePayment(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	query := `DELETE FROM payments WHERE id = $1 RETURNING ` + selectColumns

	p, err := scanPayment(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, payment.ErrNotFound
		}

		return nil, fmt.Errorf("deleting payment: %w", err)
	}

	return p, nil
}

type payTx struct {
	tx *sql.Tx
}

func (s *Store) BeginPayment(ctx context.Context) (payment.PayTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning payment tx: %w", err)
	}

	return &payTx{tx: dbTx}, nil
}

func (ptx *payTx) Commit() error { return ptx.tx.Commit() }

func (ptx *payTx) Rollback() error {
	if err := ptx.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}

	return nil
}

func (ptx *payTx) LockInvoice(ctx context.Context, invoiceID uuid.UUID) error {
	var id uuid.UUID

	err := ptx.tx.QueryRowContext(ctx, `SELECT id FROM invoices WHERE id = $1 FOR UPDATE`, invoiceID).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return payment.ErrInvoiceNotFound
		}

		return fmt.Errorf("locking invoice: %w", err)
	}

	return nil
}

func (ptx *payTx) CreatePayment(ctx context.Context, p *payment.Payment) error {
	query := `
		INSERT INTO payments (invoice_id, amount, status, payment_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := ptx.tx.QueryRowContext(ctx, query, p.InvoiceID, p.Amount, string(p.Status), p.PaymentDate).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating payment: %w", err)
	}

	return nil
}

func (ptx *payTx) MarkInvoicePaid(ctx context.Context, invoiceID uuid.UUID) error {
	res, err := ptx.tx.ExecContext(ctx, `UPDATE invoices SET status = 'PAID', updated_at = NOW() WHERE id = $1`, invoiceID)
	if err != nil {
		return fmt.Errorf("marking invoice paid: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("marking invoice paid: %w", err)
	}

	if n == 0 {
		return payment.ErrInvoiceNotFound
	}

	return nil
}
