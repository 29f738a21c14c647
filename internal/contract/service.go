package contract

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/estate/internal/apperr"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=contract
type Repository interface {
	CreateContract(ctx context.Context, c *Contract) error
	GetContract(ctx context.Context, id uuid.UUID) (*Contract, error)
	ListContracts(ctx context.Context, filter ListFilter) ([]*Contract, error)
	UpdateContract(ctx context.Context, id uuid.UUID, params UpdateParams) (*Contract, error)
	DeleteContract(ctx context.Context, id uuid.UUID) (*Contract, error)
	ResidentExists(ctx context.Context, id uuid.UUID) (bool, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type ListFilter struct {
	ResidentID *uuid.UUID
}

type CreateParams struct {
	ResidentID   uuid.UUID
	DocumentPath string
	// Status defaults to active.
	Status Status
}

// UpdateParams patches only the non-nil fields.
type UpdateParams struct {
	ResidentID   *uuid.UUID
	DocumentPath *string
	Status       *Status
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Contract, error) {
	if err := s.requireResident(ctx, params.ResidentID); err != nil {
		return nil, err
	}

	status := params.Status
	if status == "" {
		status = StatusActive
	}

	c := &Contract{
		ResidentID:   params.ResidentID,
		DocumentPath: params.DocumentPath,
		Status:       status,
	}
	if err := s.repo.CreateContract(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Contract, error) {
	c, err := s.repo.GetContract(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}

	return c, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Contract, error) {
	return s.repo.ListContracts(ctx, filter)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Contract, error) {
	if params.ResidentID != nil {
		if err := s.requireResident(ctx, *params.ResidentID); err != nil {
			return nil, err
		}
	}

	c, err := s.repo.UpdateContract(ctx, id, params)
	if err != nil {
		return nil, mapErr(err)
	}

	return c, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*Contract, error) {
	c, err := s.repo.DeleteContract(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}

	return c, nil
}

func (s *Service) requireResident(ctx context.Context, id uuid.UUID) error {
	ok, err := s.repo.ResidentExists(ctx, id)
	if err != nil {
		return err
	}

	if !ok {
		return mapErr(ErrResidentNotFound)
	}

	return nil
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return apperr.Wrap(apperr.CodeContractNotFound, err)
	case errors.Is(err, ErrResidentNotFound):
		return apperr.Wrap(apperr.CodeResidentNotFound, err)
	}

	return err
}
