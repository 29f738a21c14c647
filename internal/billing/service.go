package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/estate/internal/apperr"
	"github.com/MrJamesThe3rd/estate/internal/invoice"
	"github.com/MrJamesThe3rd/estate/internal/offering"
	"github.com/MrJamesThe3rd/estate/internal/subscription"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=billing
type Repository interface {
	GetLineItem(ctx context.Context, id uuid.UUID) (*LineItem, error)
	ListLineItems(ctx context.Context, filter ListFilter) ([]*LineItem, error)
	Begin(ctx context.Context) (Tx, error)
}

// Tx is the unit of work every line item mutation runs in. Lookups return
// the package's not-found sentinels. Rollback after Commit is a no-op.
type Tx interface {
	LockApartment(ctx context.Context, apartmentID uuid.UUID) error
	GetSubscription(ctx context.Context, id uuid.UUID) (*subscription.Subscription, error)
	FindSubscription(ctx context.Context, apartmentID uuid.UUID, serviceID uuid.UUID) (*subscription.Subscription, error)
	SetNextBillingDate(ctx context.Context, subscriptionID uuid.UUID, next time.Time) error
	GetOffering(ctx context.Context, id uuid.UUID) (*offering.Offering, error)
	GetInvoice(ctx context.Context, id uuid.UUID) (*invoice.Invoice, error)
	FindPendingInvoice(ctx context.Context, apartmentID uuid.UUID, from time.Time, to time.Time) (*invoice.Invoice, error)
	CreateInvoice(ctx context.Context, inv *invoice.Invoice) error
	SetInvoiceTotal(ctx context.Context, invoiceID uuid.UUID, total decimal.Decimal) error
	GetLineItem(ctx context.Context, id uuid.UUID) (*LineItem, error)
	ListInvoiceLineItems(ctx context.Context, invoiceID uuid.UUID) ([]*LineItem, error)
	CreateLineItem(ctx context.Context, item *LineItem) error
	UpdateLineItem(ctx context.Context, id uuid.UUID, quantity int, total decimal.Decimal) (*LineItem, error)
	DeleteLineItem(ctx context.Context, id uuid.UUID) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type ListFilter struct {
	InvoiceID *uuid.UUID
}

type CreateParams struct {
	Quantity       int
	ApartmentID    uuid.UUID
	SubscriptionID uuid.UUID
	// InvoiceID pins the line item to an invoice. When nil, the pending
	// invoice of the subscription's billing month is used or created.
	InvoiceID *uuid.UUID
}

// UpdateParams patches only the non-nil fields.
type UpdateParams struct {
	Quantity *int
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*LineItem, error) {
	item, err := s.repo.GetLineItem(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}

	return item, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*LineItem, error) {
	return s.repo.ListLineItems(ctx, filter)
}

// Create bills a subscription on an invoice, then brings the invoice total
// and the subscription's next billing date up to date. All of it commits
// together or not at all.
func (s *Service) Create(ctx context.Context, params CreateParams) (*LineItem, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := tx.LockApartment(ctx, params.ApartmentID); err != nil {
		return nil, err
	}

	sub, err := tx.GetSubscription(ctx, params.SubscriptionID)
	if err != nil {
		return nil, mapErr(err)
	}

	if sub.ApartmentID != params.ApartmentID {
		return nil, mapErr(ErrMismatch)
	}

	inv, err := resolveInvoice(ctx, tx, params, sub)
	if err != nil {
		return nil, mapErr(err)
	}

	svc, err := tx.GetOffering(ctx, sub.ServiceID)
	if err != nil {
		return nil, mapErr(err)
	}

	item := &LineItem{
		InvoiceID:      inv.ID,
		SubscriptionID: sub.ID,
		ServiceID:      svc.ID,
		ServiceName:    svc.Name,
		ApartmentID:    params.ApartmentID,
		Quantity:       params.Quantity,
		Total:          LineTotal(svc.UnitPrice, params.Quantity),
	}
	if err := tx.CreateLineItem(ctx, item); err != nil {
		return nil, err
	}

	if err := settle(ctx, tx, inv.ID, params.ApartmentID, sub.ServiceID); err != nil {
		return nil, mapErr(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing line item: %w", err)
	}

	return item, nil
}

// Update changes the quantity of a line item and reprices it at the
// service's current unit price.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*LineItem, error) {
	tx, item, err := s.beginFor(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	defer tx.Rollback()

	quantity := item.Quantity
	if params.Quantity != nil {
		quantity = *params.Quantity
	}

	svc, err := tx.GetOffering(ctx, item.ServiceID)
	if err != nil {
		return nil, mapErr(err)
	}

	updated, err := tx.UpdateLineItem(ctx, id, quantity, LineTotal(svc.UnitPrice, quantity))
	if err != nil {
		return nil, mapErr(err)
	}

	inv, err := tx.GetInvoice(ctx, item.InvoiceID)
	if err != nil {
		return nil, mapErr(err)
	}

	if err := settle(ctx, tx, inv.ID, inv.ApartmentID, item.ServiceID); err != nil {
		return nil, mapErr(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing line item: %w", err)
	}

	return updated, nil
}

// Delete removes a line item and returns it as it was.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*LineItem, error) {
	tx, item, err := s.beginFor(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	defer tx.Rollback()

	if err := tx.DeleteLineItem(ctx, id); err != nil {
		return nil, mapErr(err)
	}

	inv, err := tx.GetInvoice(ctx, item.InvoiceID)
	if err != nil {
		return nil, mapErr(err)
	}

	if err := settle(ctx, tx, inv.ID, inv.ApartmentID, item.ServiceID); err != nil {
		return nil, mapErr(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing line item: %w", err)
	}

	return item, nil
}

// beginFor opens a transaction locked on the line item's apartment and
// returns the item as read under that lock.
func (s *Service) beginFor(ctx context.Context, id uuid.UUID) (Tx, *LineItem, error) {
	pre, err := s.repo.GetLineItem(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.LockApartment(ctx, pre.ApartmentID); err != nil {
		tx.Rollback()
		return nil, nil, err
	}

	item, err := tx.GetLineItem(ctx, id)
	if err != nil {
		tx.Rollback()
		return nil, nil, err
	}

	return tx, item, nil
}

func resolveInvoice(ctx context.Context, tx Tx, params CreateParams, sub *subscription.Subscription) (*invoice.Invoice, error) {
	if params.InvoiceID != nil {
		inv, err := tx.GetInvoice(ctx, *params.InvoiceID)
		if err != nil {
			return nil, err
		}

		if inv.ApartmentID != params.ApartmentID {
			return nil, ErrMismatch
		}

		return inv, nil
	}

	from, to := BillingMonth(sub.NextBillingDate)

	inv, err := tx.FindPendingInvoice(ctx, params.ApartmentID, from, to)
	if err == nil {
		return inv, nil
	}

	if !errors.Is(err, ErrInvoiceNotFound) {
		return nil, err
	}

	inv = &invoice.Invoice{
		ApartmentID: params.ApartmentID,
		Status:      invoice.StatusPending,
		DueDate:     sub.NextBillingDate,
		TotalAmount: decimal.Zero,
	}
	if err := tx.CreateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

// settle recomputes the invoice total from its line items and advances the
// billing date of the apartment's subscription to the service.
func settle(ctx context.Context, tx Tx, invoiceID, apartmentID, serviceID uuid.UUID) error {
	items, err := tx.ListInvoiceLineItems(ctx, invoiceID)
	if err != nil {
		return err
	}

	if err := tx.SetInvoiceTotal(ctx, invoiceID, Sum(items)); err != nil {
		return err
	}

	sub, err := tx.FindSubscription(ctx, apartmentID, serviceID)
	if err != nil {
		return err
	}

	return tx.SetNextBillingDate(ctx, sub.ID, sub.Frequency.Advance(sub.NextBillingDate))
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return apperr.Wrap(apperr.CodeInvoiceDetailNotFound, err)
	case errors.Is(err, ErrInvoiceNotFound):
		return apperr.Wrap(apperr.CodeInvoiceNotFound, err)
	case errors.Is(err, ErrSubscriptionNotFound):
		return apperr.Wrap(apperr.CodeSubscriptionNotFound, err)
	case errors.Is(err, ErrServiceNotFound):
		return apperr.Wrap(apperr.CodeServiceNotFound, err)
	case errors.Is(err, ErrMismatch):
		return apperr.Wrap(apperr.CodeSubscriptionMismatch, err)
	}

	return err
}
