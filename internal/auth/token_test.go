package auth_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/estate/internal/auth"
	"github.com/MrJamesThe3rd/estate/internal/resident"
)

func newIssuer(now time.Time) *auth.Issuer {
	return auth.NewIssuer("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour).
		WithClock(func() time.Time { return now })
}

func TestIssuer_RoundTrip(t *testing.T) {
	now := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	p := auth.Principal{ID: uuid.New(), Email: "admin@example.com", Role: resident.RoleAdmin}

	tokens, err := newIssuer(now).Issue(p)
	require.NoError(t, err)
	assert.NotEqual(t, tokens.AccessToken, tokens.RefreshToken)

	got, err := newIssuer(now).Verify(tokens.AccessToken, auth.TokenAccess)
	require.NoError(t, err)
	assert.Equal(t, p, got)
	assert.True(t, got.IsAdmin())

	got, err = newIssuer(now).Verify(tokens.RefreshToken, auth.TokenRefresh)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
}

func TestIssuer_Rejects(t *testing.T) {
	now := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	p := auth.Principal{ID: uuid.New(), Role: resident.RoleResident}

	tokens, err := newIssuer(now).Issue(p)
	require.NoError(t, err)

	tests := []struct {
		name   string
		issuer *auth.Issuer
		token  string
		typ    auth.TokenType
	}{
		{name: "RefreshAsAccess", issuer: newIssuer(now), token: tokens.RefreshToken, typ: auth.TokenAccess},
		{name: "AccessAsRefresh", issuer: newIssuer(now), token: tokens.AccessToken, typ: auth.TokenRefresh},
		{name: "Expired", issuer: newIssuer(now.Add(16 * time.Minute)), token: tokens.AccessToken, typ: auth.TokenAccess},
		{name: "Garbage", issuer: newIssuer(now), token: "not.a.token", typ: auth.TokenAccess},
		{
			name:   "OtherSecret",
			issuer: auth.NewIssuer("other", "refresh-secret", time.Minute, time.Hour).WithClock(func() time.Time { return now }),
			token:  tokens.AccessToken,
			typ:    auth.TokenAccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.issuer.Verify(tt.token, tt.typ)
			assert.ErrorIs(t, err, auth.ErrInvalidToken)
		})
	}
}
