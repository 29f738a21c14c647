package offering

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/estate/internal/apperr"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=offering
type Repository interface {
	CreateOffering(ctx context.Context, o *Offering) error
	GetOffering(ctx context.Context, id uuid.UUID) (*Offering, error)
	ListOfferings(ctx context.Context) ([]*Offering, error)
	UpdateOffering(ctx context.Context, id uuid.UUID, params UpdateParams) (*Offering, error)
	DeleteOffering(ctx context.Context, id uuid.UUID) (*Offering, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name        string
	Description string
	UnitPrice   decimal.Decimal
}

// UpdateParams patches only the non-nil fields.
type UpdateParams struct {
	Name        *string
	Description *string
	UnitPrice   *decimal.Decimal
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Offering, error) {
	o := &Offering{
		Name:        params.Name,
		Description: params.Description,
		UnitPrice:   params.UnitPrice,
	}
	if err := s.repo.CreateOffering(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Offering, error) {
	o, err := s.repo.GetOffering(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}

	return o, nil
}

func (s *Service) List(ctx context.Context) ([]*Offering, error) {
	return s.repo.ListOfferings(ctx)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Offering, error) {
	o, err := s.repo.UpdateOffering(ctx, id, params)
	if err != nil {
		return nil, mapErr(err)
	}

	return o, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*Offering, error) {
	o, err := s.repo.DeleteOffering(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}

	return o, nil
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return apperr.Wrap(apperr.CodeServiceNotFound, err)
	case errors.Is(err, ErrInUse):
		return apperr.Invalid("service still has subscriptions")
	}

	return err
}
