package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/estate/internal/apperr"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=payment
type Repository interface {
	GetPayment(ctx context.Context, id uuid.UUID) (*Payment, error)
	ListPayments(ctx context.Context, filter ListFilter) ([]*Payment, error)
	UpdatePayment(ctx context.Context, id uuid.UUID, params UpdateParams) (*Payment, error)
	DeletePayment(ctx context.Context, id uuid.UUID) (*Payment, error)
	BeginPayment(ctx context.Context) (PayTx, error)
}

// PayTx records a payment and settles its invoice atomically.
type PayTx interface {
	LockInvoice(ctx context.Context, invoiceID uuid.UUID) error
	CreatePayment(ctx context.Context, p *Payment) error
	MarkInvoicePaid(ctx context.Context, invoiceID uuid.UUID) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// WithClock replaces the time source used for payment dates.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

type ListFilter struct {
	InvoiceID *uuid.UUID
}

type CreateParams struct {
	InvoiceID uuid.UUID
	Amount    decimal.Decimal
}

// UpdateParams patches only the non-nil fields.
type UpdateParams struct {
	Amount      *decimal.Decimal
	Status      *Status
	PaymentDate *time.Time
}

// Create records a completed payment dated now and marks the invoice paid.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Payment, error) {
	tx, err := s.repo.BeginPayment(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := tx.LockInvoice(ctx, params.InvoiceID); err != nil {
		return nil, mapErr(err)
	}

	p := &Payment{
		InvoiceID:   params.InvoiceID,
		Amount:      params.Amount,
		Status:      StatusCompleted,
		PaymentDate: s.now(),
	}
	if err := tx.CreatePayment(ctx, p); err != nil {
		return nil, err
	}

	if err := tx.MarkInvoicePaid(ctx, params.InvoiceID); err != nil {
		return nil, mapErr(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing payment: %w", err)
	}

	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Payment, error) {
	p, err := s.repo.GetPayment(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}

	return p, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Payment, error) {
	return s.repo.ListPayments(ctx, filter)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Payment, error) {
	p, err := s.repo.UpdatePayment(ctx, id, params)
	if err != nil {
		return nil, mapErr(err)
	}

	return p, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*Payment, error) {
	p, err := s.repo.DeletePayment(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}

	return p, nil
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return apperr.Wrap(apperr.CodePaymentNotFound, err)
	case errors.Is(err, ErrInvoiceNotFound):
		return apperr.Wrap(apperr.CodeInvoiceNotFound, err)
	}

	return err
}
