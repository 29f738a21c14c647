package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/estate/internal/apperr"
	"github.com/MrJamesThe3rd/estate/internal/resident"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=auth
type Repository interface {
	CreateResident(ctx context.Context, r *resident.Resident) error
	GetResident(ctx context.Context, id uuid.UUID) (*resident.Resident, error)
	GetResidentByEmail(ctx context.Context, email string) (*resident.Resident, error)
	SetRefreshToken(ctx context.Context, id uuid.UUID, hash *string) error
}

type Hasher interface {
	Hash(plain string) (string, error)
	Compare(hash string, plain string) bool
}

type Service struct {
	repo   Repository
	hasher Hasher
	issuer *Issuer
}

func NewService(repo Repository, hasher Hasher, issuer *Issuer) *Service {
	return &Service{repo: repo, hasher: hasher, issuer: issuer}
}

type RegisterParams struct {
	FullName string
	Email    string
	Password string
	Phone    string
}

// Register creates a resident account and signs it in.
func (s *Service) Register(ctx context.Context, params RegisterParams) (Tokens, error) {
	email := resident.NormalizeEmail(params.Email)

	_, err := s.repo.GetResidentByEmail(ctx, email)

	switch {
	case err == nil:
		return Tokens{}, apperr.New(apperr.CodeUserAlreadyExists)
	case !errors.Is(err, resident.ErrNotFound):
		return Tokens{}, err
	}

	hash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return Tokens{}, apperr.Wrap(apperr.CodeHashingFailed, err)
	}

	r := &resident.Resident{
		FullName: params.FullName,
		Email:    email,
		Password: hash,
		Phone:    params.Phone,
		Role:     resident.RoleResident,
	}
	if err := s.repo.CreateResident(ctx, r); err != nil {
		if errors.Is(err, resident.ErrEmailTaken) {
			return Tokens{}, apperr.Wrap(apperr.CodeUserAlreadyExists, err)
		}

		return Tokens{}, err
	}

	return s.rotate(ctx, r)
}

// Login checks the password and issues a fresh token pair, replacing any
// refresh token issued before.
func (s *Service) Login(ctx context.Context, email, password string) (Tokens, error) {
	r, err := s.repo.GetResidentByEmail(ctx, resident.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, resident.ErrNotFound) {
			return Tokens{}, apperr.Wrap(apperr.CodeUserNotFound, err)
		}

		return Tokens{}, err
	}

	if !s.hasher.Compare(r.Password, password) {
		return Tokens{}, apperr.New(apperr.CodeInvalidPassword)
	}

	return s.rotate(ctx, r)
}

// Refresh exchanges a valid refresh token for a new pair. Every rejection
// reads the same to the caller.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (Tokens, error) {
	p, err := s.issuer.Verify(refreshToken, TokenRefresh)
	if err != nil {
		return Tokens{}, apperr.Wrap(apperr.CodeAccessDenied, err)
	}

	r, err := s.repo.GetResident(ctx, p.ID)
	if err != nil {
		if errors.Is(err, resident.ErrNotFound) {
			return Tokens{}, apperr.Wrap(apperr.CodeAccessDenied, err)
		}

		return Tokens{}, err
	}

	if r.RefreshToken == nil || !s.hasher.Compare(*r.RefreshToken, digest(refreshToken)) {
		return Tokens{}, apperr.New(apperr.CodeAccessDenied)
	}

	return s.rotate(ctx, r)
}

// Logout forgets the stored refresh token so it can no longer be exchanged.
func (s *Service) Logout(ctx context.Context, residentID uuid.UUID) error {
	if err := s.repo.SetRefreshToken(ctx, residentID, nil); err != nil {
		if errors.Is(err, resident.ErrNotFound) {
			return apperr.Wrap(apperr.CodeUserNotFound, err)
		}

		return err
	}

	return nil
}

// Authenticate resolves an access token to its principal.
func (s *Service) Authenticate(accessToken string) (Principal, error) {
	return s.issuer.Verify(accessToken, TokenAccess)
}

func (s *Service) rotate(ctx context.Context, r *resident.Resident) (Tokens, error) {
	tokens, err := s.issuer.Issue(Principal{ID: r.ID, Email: r.Email, Role: r.Role})
	if err != nil {
		return Tokens{}, err
	}

	hash, err := s.hasher.Hash(digest(tokens.RefreshToken))
	if err != nil {
		return Tokens{}, apperr.Wrap(apperr.CodeHashingFailed, err)
	}

	if err := s.repo.SetRefreshToken(ctx, r.ID, &hash); err != nil {
		return Tokens{}, fmt.Errorf("storing refresh token: %w", err)
	}

	return tokens, nil
}

// digest shortens a token below bcrypt's 72 byte input limit.
func digest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
