package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/estate/internal/resident"
)

var ErrInvalidToken = errors.New("invalid token")

type TokenType string

const (
	TokenAccess  TokenType = "access"
	TokenRefresh TokenType = "refresh"
)

// Principal is the authenticated caller carried by a token.
type Principal struct {
	ID    uuid.UUID
	Email string
	Role  resident.Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == resident.RoleAdmin
}

type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type claims struct {
	Email     string        `json:"email"`
	Role      resident.Role `json:"role"`
	TokenType TokenType     `json:"token_type"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies HS256 tokens. Access and refresh tokens use
// separate secrets, so one can never pass as the other.
type Issuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

func NewIssuer(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}
}

// WithClock replaces the time source used for iat, exp and verification.
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	i.now = now
	return i
}

func (i *Issuer) Issue(p Principal) (Tokens, error) {
	access, err := i.sign(p, TokenAccess)
	if err != nil {
		return Tokens{}, err
	}

	refresh, err := i.sign(p, TokenRefresh)
	if err != nil {
		return Tokens{}, err
	}

	return Tokens{AccessToken: access, RefreshToken: refresh}, nil
}

// Verify parses token and checks its signature, expiry and type.
func (i *Issuer) Verify(token string, typ TokenType) (Principal, error) {
	secret, _ := i.params(typ)

	var c claims

	_, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(i.now), jwt.WithExpirationRequired())
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if c.TokenType != typ {
		return Principal{}, fmt.Errorf("%w: expected %s token", ErrInvalidToken, typ)
	}

	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	return Principal{ID: id, Email: c.Email, Role: c.Role}, nil
}

func (i *Issuer) sign(p Principal, typ TokenType) (string, error) {
	secret, ttl := i.params(typ)
	now := i.now()

	c := claims{
		Email:     p.Email,
		Role:      p.Role,
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   p.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("signing %s token: %w", typ, err)
	}

	return signed, nil
}

func (i *Issuer) params(typ TokenType) ([]byte, time.Duration) {
	if typ == TokenRefresh {
		return i.refreshSecret, i.refreshTTL
	}

	return i.accessSecret, i.accessTTL
}
