package subscription

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/estate/internal/apperr"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=subscription
type Repository interface {
	CreateSubscription(ctx context.Context, sub *Subscription) error
	GetSubscription(ctx context.Context, id uuid.UUID) (*Subscription, error)
	ListSubscriptions(ctx context.Context, filter ListFilter) ([]*Subscription, error)
	UpdateSubscription(ctx context.Context, id uuid.UUID, params UpdateParams) (*Subscription, error)
	DeleteSubscription(ctx context.Context, id uuid.UUID) (*Subscription, error)
	ApartmentExists(ctx context.Context, id uuid.UUID) (bool, error)
	ServiceExists(ctx context.Context, id uuid.UUID) (bool, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type ListFilter struct {
	ApartmentID *uuid.UUID
	ServiceID   *uuid.UUID
}

type CreateParams struct {
	ApartmentID     uuid.UUID
	ServiceID       uuid.UUID
	Frequency       Frequency
	NextBillingDate time.Time
}

// UpdateParams patches only the non-nil fields.
type UpdateParams struct {
	ApartmentID     *uuid.UUID
	ServiceID       *uuid.UUID
	Frequency       *Frequency
	NextBillingDate *time.Time
	Status          *Status
}

// Create stores a new active subscription after checking that both the
// apartment and the service exist.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Subscription, error) {
	if err := s.requireRefs(ctx, &params.ApartmentID, &params.ServiceID); err != nil {
		return nil, err
	}

	sub := &Subscription{
		ApartmentID:     params.ApartmentID,
		ServiceID:       params.ServiceID,
		Frequency:       params.Frequency,
		NextBillingDate: params.NextBillingDate,
		Status:          StatusActive,
	}
	if err := s.repo.CreateSubscription(ctx, sub); err != nil {
		return nil, mapErr(err)
	}

	return sub, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Subscription, error) {
	sub, err := s.repo.GetSubscription(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}

	return sub, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Subscription, error) {
	return s.repo.ListSubscriptions(ctx, filter)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Subscription, error) {
	if err := s.requireRefs(ctx, params.ApartmentID, params.ServiceID); err != nil {
		return nil, err
	}

	sub, err := s.repo.UpdateSubscription(ctx, id, params)
	if err != nil {
		return nil, mapErr(err)
	}

	return sub, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*Subscription, error) {
	sub, err := s.repo.DeleteSubscription(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}

	return sub, nil
}

func (s *Service) requireRefs(ctx context.Context, apartmentID, serviceID *uuid.UUID) error {
	if apartmentID != nil {
		ok, err := s.repo.ApartmentExists(ctx, *apartmentID)
		if err != nil {
			return err
		}

		if !ok {
			return mapErr(ErrApartmentNotFound)
		}
	}

	if serviceID != nil {
		ok, err := s.repo.ServiceExists(ctx, *serviceID)
		if err != nil {
			return err
		}

		if !ok {
			return mapErr(ErrServiceNotFound)
		}
	}

	return nil
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return apperr.Wrap(apperr.CodeSubscriptionNotFound, err)
	case errors.Is(err, ErrApartmentNotFound):
		return apperr.Wrap(apperr.CodeApartmentNotFound, err)
	case errors.Is(err, ErrServiceNotFound):
		return apperr.Wrap(apperr.CodeServiceNotFound, err)
	case errors.Is(err, ErrInUse):
		return apperr.Invalid("subscription is referenced by invoice details")
	}

	return err
}
