package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/estate/internal/invoice"
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

const selectColumns = `id, apartment_id, status, due_date, total_amount, created_at, updated_at`

func scanInvoice(s scanner) (*invoice.Invoice, error) {
	var (
		inv    invoice.Invoice
		status string
	)

	if err := s.Scan(&inv.ID, &inv.ApartmentID, &status, &inv.DueDate, &inv.TotalAmount, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
		return nil, err
	}

	inv.Status = invoice.Status(status)

	return &inv, nil
}

func (s *Store) CreateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		INSERT INTO invoices (apartment_id, status, due_date, total_amount, created_at, updated_at)
		VALUES ($1, $2, $3, 0, NOW(), NOW())
		RETURNING id, total_amount, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query, inv.ApartmentID, string(inv.Status), inv.DueDate).
		Scan(&inv.ID, &inv.TotalAmount, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating invoice: %w", err)
	}

	return nil
}

func (s *Store) GetInvoice(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	query := `SELECT ` + selectColumns + ` FROM invoices WHERE id = $1`

	inv, err := scanInvoice(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invoice.ErrNotFound
		}

		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	return inv, nil
}

func (s *Store) ListInvoices(ctx context.Context, filter invoice.ListFilter) ([]*invoice.Invoice, error) {
	query := `SELECT ` + selectColumns + `
		FROM invoices
		WHERE ($1::uuid IS NULL OR apartment_id = $1)
		  AND ($2::text IS NULL OR status = $2)
		ORDER BY due_date DESC`

	var status *string
	if filter.Status != nil {
		status = new(string(*filter.Status))
	}

	rows, err := s.db.QueryContext(ctx, query, filter.ApartmentID, status)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	invoices := []*invoice.Invoice{}

	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		invoices = append(invoices, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoices: %w", err)
	}

	return invoices, nil
}

func (s *Store) UpdateInvoice(ctx context.Context, id uuid.UUID, params invoice.UpdateParams) (*invoice.Invoice, error) {
	query := `
		UPDATE invoices
		SET status = COALESCE($1, status), due_date = COALESCE($2, due_date), updated_at = NOW()
		WHERE id = $3
		RETURNING ` + selectColumns

	var status *string
	if params.Status != nil {
		status = new(string(*params.Status))
	}

	inv, err := scanInvoice(s.db.QueryRowContext(ctx, query, status, params.DueDate, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invoice.ErrNotFound
		}

		return nil, fmt.Errorf("updating invoice: %w", err)
	}

	return inv, nil
}

func (s *Store) DeleteInvoice(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error) {
	query := `DELETE FROM invoices WHERE id = $1 RETURNING ` + selectColumns

	inv, err := scanInvoice(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invoice.ErrNotFound
		}

		return nil, fmt.Errorf("deleting invoice: %w", err)
	}

	return inv, nil
}

func (s *Store) ApartmentExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var ok bool
	if err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM apartments WHERE id = $1)`, id).Scan(&ok); err != nil {
		return false, fmt.Errorf("checking apartment: %w", err)
	}

	return ok, nil
}

func (s *Store) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE invoices SET status = 'OVERDUE', updated_at = NOW()
		WHERE status = 'PENDING' AND due_date < $1
	`

	res, err := s.db.ExecContext(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("marking overdue invoices: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("marking overdue invoices: %w", err)
	}

	return n, nil
}
