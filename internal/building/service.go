package building

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/estate/internal/apperr"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=building
type Repository interface {
	CreateBuilding(ctx context.Context, b *Building) error
	GetBuilding(ctx context.Context, id uuid.UUID) (*Building, error)
	ListBuildings(ctx context.Context) ([]*Building, error)
	UpdateBuilding(ctx context.Context, id uuid.UUID, params UpdateParams) (*Building, error)
	DeleteBuilding(ctx context.Context, id uuid.UUID) (*Building, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name    string
	Address string
}

// UpdateParams patches only the non-nil fields.
type UpdateParams struct {
	Name    *string
	Address *string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Building, error) {
	b := &Building{
		Name:    params.Name,
		Address: params.Address,
	}
	if err := s.repo.CreateBuilding(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Building, error) {
	b, err := s.repo.GetBuilding(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}

	return b, nil
}

func (s *Service) List(ctx context.Context) ([]*Building, error) {
	return s.repo.ListBuildings(ctx)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Building, error) {
	b, err := s.repo.UpdateBuilding(ctx, id, params)
	if err != nil {
		return nil, mapErr(err)
	}

	return b, nil
}

// Delete removes the building and returns the deleted row.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*Building, error) {
	b, err := s.repo.DeleteBuilding(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}

	return b, nil
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return apperr.Wrap(apperr.CodeBuildingNotFound, err)
	case errors.Is(err, ErrInUse):
		return apperr.Invalid("building still has apartments")
	}

	return err
}
