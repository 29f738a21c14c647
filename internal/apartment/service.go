package apartment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/estate/internal/apperr"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=apartment
type Repository interface {
	CreateApartment(ctx context.Context, a *Apartment) error
	GetApartment(ctx context.Context, id uuid.UUID) (*Apartment, error)
	ListApartments(ctx context.Context, filter ListFilter) ([]*Apartment, error)
	UpdateApartment(ctx context.Context, id uuid.UUID, params UpdateParams) (*Apartment, error)
	DeleteApartment(ctx context.Context, id uuid.UUID) (*Apartment, error)
	BuildingExists(ctx context.Context, id uuid.UUID) (bool, error)
	ResidentExists(ctx context.Context, id uuid.UUID) (bool, error)
	BeginAssignment(ctx context.Context) (AssignTx, error)
}

// AssignTx is the transaction an assignment runs in. Rollback after Commit
// is a no-op.
type AssignTx interface {
	LockApartment(ctx context.Context, id uuid.UUID) (*Apartment, error)
	LockResident(ctx context.Context, residentID uuid.UUID) error
	ResidentExists(ctx context.Context, id uuid.UUID) (bool, error)
	FindByResident(ctx context.Context, residentID uuid.UUID) (*Apartment, error)
	SetResident(ctx context.Context, id uuid.UUID, residentID *uuid.UUID) (*Apartment, error)
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
	BuildingID *uuid.UUID
}

type CreateParams struct {
	RoomNumber int
	Area       decimal.Decimal
	BuildingID uuid.UUID
	ResidentID *uuid.UUID
}

// UpdateParams patches only the non-nil fields. The resident is changed
// through AssignResident only.
type UpdateParams struct {
	RoomNumber *int
	Area       *decimal.Decimal
	BuildingID *uuid.UUID
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Apartment, error) {
	if err := s.requireBuilding(ctx, params.BuildingID); err != nil {
		return nil, err
	}

	if params.ResidentID != nil {
		ok, err := s.repo.ResidentExists(ctx, *params.ResidentID)
		if err != nil {
			return nil, err
		}

		if !ok {
			return nil, mapErr(ErrResidentNotFound)
		}
	}

	a := &Apartment{
		RoomNumber: params.RoomNumber,
		Area:       params.Area,
		BuildingID: params.BuildingID,
		ResidentID: params.ResidentID,
	}
	if err := s.repo.CreateApartment(ctx, a); err != nil {
		return nil, mapErr(err)
	}

	return a, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Apartment, error) {
	a, err := s.repo.GetApartment(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}

	return a, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Apartment, error) {
	return s.repo.ListApartments(ctx, filter)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Apartment, error) {
	if params.BuildingID != nil {
		if err := s.requireBuilding(ctx, *params.BuildingID); err != nil {
			return nil, err
		}
	}

	a, err := s.repo.UpdateApartment(ctx, id, params)
	if err != nil {
		return nil, mapErr(err)
	}

	return a, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*Apartment, error) {
	a, err := s.repo.DeleteApartment(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}

	return a, nil
}

// AssignResident sets the apartment's resident, or clears it when residentID
// is nil. A resident lives in at most one apartment; assigning one who
// already lives elsewhere fails and leaves both apartments unchanged.
func (s *Service) AssignResident(ctx context.Context, id uuid.UUID, residentID *uuid.UUID) (*Apartment, error) {
	tx, err := s.repo.BeginAssignment(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	a, err := tx.LockApartment(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}

	if residentID != nil {
		if err := tx.LockResident(ctx, *residentID); err != nil {
			return nil, err
		}

		ok, err := tx.ResidentExists(ctx, *residentID)
		if err != nil {
			return nil, err
		}

		if !ok {
			return nil, mapErr(ErrResidentNotFound)
		}

		current, err := tx.FindByResident(ctx, *residentID)

		switch {
		case errors.Is(err, ErrNotFound):
		case err != nil:
			return nil, err
		case current.ID == a.ID:
			return a, nil
		default:
			return nil, mapErr(ErrResidentTaken)
		}
	}

	a, err = tx.SetResident(ctx, id, residentID)
	if err != nil {
		return nil, mapErr(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing assignment: %w", err)
	}

	return a, nil
}

func (s *Service) requireBuilding(ctx context.Context, id uuid.UUID) error {
	ok, err := s.repo.BuildingExists(ctx, id)
	if err != nil {
		return err
	}

	if !ok {
		return mapErr(ErrBuildingNotFound)
	}

	return nil
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return apperr.Wrap(apperr.CodeApartmentNotFound, err)
	case errors.Is(err, ErrBuildingNotFound):
		return apperr.Wrap(apperr.CodeBuildingNotFound, err)
	case errors.Is(err, ErrResidentNotFound):
		return apperr.Wrap(apperr.CodeResidentNotFound, err)
	case errors.Is(err, ErrResidentTaken):
		return apperr.Invalid("resident is already assigned to another apartment")
	case errors.Is(err, ErrRoomTaken):
		return apperr.Invalid("room number already exists in this building")
	}

	return err
}
