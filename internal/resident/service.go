package resident

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/estate/internal/apperr"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=resident
type Repository interface {
	CreateResident(ctx context.Context, r *Resident) error
	GetResident(ctx context.Context, id uuid.UUID) (*Resident, error)
	GetResidentByEmail(ctx context.Context, email string) (*Resident, error)
	ListResidents(ctx context.Context) ([]*Resident, error)
	SearchResidents(ctx context.Context, query string) ([]*Resident, error)
	UpdateResident(ctx context.Context, id uuid.UUID, params UpdateParams) (*Resident, error)
	DeleteResident(ctx context.Context, id uuid.UUID) (*Resident, error)
	SetRefreshToken(ctx context.Context, id uuid.UUID, hash *string) error
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
}

type Service struct {
	repo   Repository
	hasher PasswordHasher
}

func NewService(repo Repository, hasher PasswordHasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

// UpdateParams patches only the non-nil fields. Password is plain text and
// gets hashed before it is stored.
type UpdateParams struct {
	FullName *string
	Email    *string
	Password *string
	Phone    *string
	Role     *Role
}

func (s *Service) List(ctx context.Context) ([]*Resident, error) {
	return s.repo.ListResidents(ctx)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Resident, error) {
	r, err := s.repo.GetResident(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}

	return r, nil
}

// Search matches residents whose name, email or phone contains query,
// ignoring case.
func (s *Service) Search(ctx context.Context, query string) ([]*Resident, error) {
	return s.repo.SearchResidents(ctx, strings.TrimSpace(query))
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Resident, error) {
	if params.Password != nil {
		hash, err := s.hasher.Hash(*params.Password)
		if err != nil {
			return nil, apperr.Wrap(apperr.CodeHashingFailed, err)
		}

		params.Password = &hash
	}

	if params.Email != nil {
		email := NormalizeEmail(*params.Email)
		params.Email = &email
	}

	r, err := s.repo.UpdateResident(ctx, id, params)
	if err != nil {
		return nil, mapErr(err)
	}

	return r, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*Resident, error) {
	r, err := s.repo.DeleteResident(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}

	return r, nil
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return apperr.Wrap(apperr.CodeResidentNotFound, err)
	case errors.Is(err, ErrEmailTaken):
		return apperr.Wrap(apperr.CodeUserAlreadyExists, err)
	}

	return err
}

// NormalizeEmail is the canonical form emails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
