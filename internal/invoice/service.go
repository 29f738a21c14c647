package invoice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/estate/internal/apperr"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice
type Repository interface {
	CreateInvoice(ctx context.Context, inv *Invoice) error
	GetInvoice(ctx context.Context, id uuid.UUID) (*Invoice, error)
	ListInvoices(ctx context.Context, filter ListFilter) ([]*Invoice, error)
	UpdateInvoice(ctx context.Context, id uuid.UUID, params UpdateParams) (*Invoice, error)
	DeleteInvoice(ctx context.Context, id uuid.UUID) (*Invoice, error)
	ApartmentExists(ctx context.Context, id uuid.UUID) (bool, error)
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type ListFilter struct {
	ApartmentID *uuid.UUID
	Status      *Status
}

type CreateParams struct {
	ApartmentID uuid.UUID
	DueDate     time.Time
	// Status defaults to PENDING.
	Status Status
}

// UpdateParams patches only the non-nil fields. The total is derived from
// line items and cannot be set directly.
type UpdateParams struct {
	Status  *Status
	DueDate *time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Invoice, error) {
	ok, err := s.repo.ApartmentExists(ctx, params.ApartmentID)
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, mapErr(ErrApartmentNotFound)
	}

	status := params.Status
	if status == "" {
		status = StatusPending
	}

	inv := &Invoice{
		ApartmentID: params.ApartmentID,
		Status:      status,
		DueDate:     params.DueDate,
	}
	if err := s.repo.CreateInvoice(ctx, inv); err != nil {
		return nil, mapErr(err)
	}

	return inv, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	inv, err := s.repo.GetInvoice(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}

	return inv, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Invoice, error) {
	return s.repo.ListInvoices(ctx, filter)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Invoice, error) {
	inv, err := s.repo.UpdateInvoice(ctx, id, params)
	if err != nil {
		return nil, mapErr(err)
	}

	return inv, nil
}

// Delete removes the invoice together with its line items and payments.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	inv, err := s.repo.DeleteInvoice(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}

	return inv, nil
}

// MarkOverdue flags every pending invoice due before now and returns how many
// changed.
func (s *Service) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	return s.repo.MarkOverdue(ctx, now)
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return apperr.Wrap(apperr.CodeInvoiceNotFound, err)
	case errors.Is(err, ErrApartmentNotFound):
		return apperr.Wrap(apperr.CodeApartmentNotFound, err)
	}

	return err
}
