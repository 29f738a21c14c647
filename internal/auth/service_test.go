package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MrJamesThe3rd/estate/internal/apperr"
	"github.com/MrJamesThe3rd/estate/internal/auth"
	"github.com/MrJamesThe3rd/estate/internal/hashing"
	"github.com/MrJamesThe3rd/estate/internal/resident"
)

var testNow = time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)

func TestService_Register(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(m *auth.MockRepository, h *auth.MockHasher)
		wantCode  apperr.Code
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *auth.MockRepository, h *auth.MockHasher) {
				m.EXPECT().GetResidentByEmail(gomock.Any(), "an@example.com").Return(nil, resident.ErrNotFound)
				h.EXPECT().Hash("password1").Return("pw-hash", nil)
				m.EXPECT().
					CreateResident(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *resident.Resident) error {
						assert.Equal(t, resident.RoleResident, r.Role)
						assert.Equal(t, "pw-hash", r.Password)
						r.ID = uuid.New()
						return nil
					})
				h.EXPECT().Hash(gomock.Any()).Return("rt-hash", nil)
				m.EXPECT().SetRefreshToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCode: apperr.CodeSuccess,
		},
		{
			name: "EmailTaken",
			setupMock: func(m *auth.MockRepository, _ *auth.MockHasher) {
				m.EXPECT().GetResidentByEmail(gomock.Any(), "an@example.com").Return(&resident.Resident{}, nil)
			},
			wantCode: apperr.CodeUserAlreadyExists,
		},
		{
			name: "HashingFails",
			setupMock: func(m *auth.MockRepository, h *auth.MockHasher) {
				m.EXPECT().GetResidentByEmail(gomock.Any(), "an@example.com").Return(nil, resident.ErrNotFound)
				h.EXPECT().Hash("password1").Return("", errors.New("boom"))
			},
			wantCode: apperr.CodeHashingFailed,
		},
		{
			name: "LostRaceOnEmail",
			setupMock: func(m *auth.MockRepository, h *auth.MockHasher) {
				m.EXPECT().GetResidentByEmail(gomock.Any(), "an@example.com").Return(nil, resident.ErrNotFound)
				h.EXPECT().Hash("password1").Return("pw-hash", nil)
				m.EXPECT().CreateResident(gomock.Any(), gomock.Any()).Return(resident.ErrEmailTaken)
			},
			wantCode: apperr.CodeUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := auth.NewMockRepository(ctrl)
			hasher := auth.NewMockHasher(ctrl)
			tt.setupMock(repo, hasher)

			svc := auth.NewService(repo, hasher, newIssuer(testNow))

			tokens, err := svc.Register(context.Background(), auth.RegisterParams{
				FullName: "Nguyễn Văn An",
				Email:    " An@Example.com",
				Password: "password1",
			})
			assert.Equal(t, tt.wantCode, apperr.CodeOf(err))

			if tt.wantCode == apperr.CodeSuccess {
				assert.NotEmpty(t, tokens.AccessToken)
				assert.NotEmpty(t, tokens.RefreshToken)
			}
		})
	}
}

func TestService_Login(t *testing.T) {
	stored := &resident.Resident{ID: uuid.New(), Email: "an@example.com", Password: "pw-hash", Role: resident.RoleAdmin}

	type testCase struct {
		name      string
		setupMock func(m *auth.MockRepository, h *auth.MockHasher)
		wantCode  apperr.Code
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *auth.MockRepository, h *auth.MockHasher) {
				m.EXPECT().GetResidentByEmail(gomock.Any(), "an@example.com").Return(stored, nil)
				h.EXPECT().Compare("pw-hash", "password1").Return(true)
				h.EXPECT().Hash(gomock.Any()).Return("rt-hash", nil)
				m.EXPECT().SetRefreshToken(gomock.Any(), stored.ID, gomock.Any()).Return(nil)
			},
			wantCode: apperr.CodeSuccess,
		},
		{
			name: "UnknownUser",
			setupMock: func(m *auth.MockRepository, _ *auth.MockHasher) {
				m.EXPECT().GetResidentByEmail(gomock.Any(), "an@example.com").Return(nil, resident.ErrNotFound)
			},
			wantCode: apperr.CodeUserNotFound,
		},
		{
			name: "WrongPassword",
			setupMock: func(m *auth.MockRepository, h *auth.MockHasher) {
				m.EXPECT().GetResidentByEmail(gomock.Any(), "an@example.com").Return(stored, nil)
				h.EXPECT().Compare("pw-hash", "password1").Return(false)
			},
			wantCode: apperr.CodeInvalidPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := auth.NewMockRepository(ctrl)
			hasher := auth.NewMockHasher(ctrl)
			tt.setupMock(repo, hasher)

			svc := auth.NewService(repo, hasher, newIssuer(testNow))

			tokens, err := svc.Login(context.Background(), "an@example.com", "password1")
			assert.Equal(t, tt.wantCode, apperr.CodeOf(err))

			if tt.wantCode == apperr.CodeSuccess {
				p, err := svc.Authenticate(tokens.AccessToken)
				require.NoError(t, err)
				assert.Equal(t, stored.ID, p.ID)
				assert.True(t, p.IsAdmin())
			}
		})
	}
}

// TestService_RefreshRotation runs login, refresh and logout against real
// bcrypt to check the stored digest round trips.
func TestService_RefreshRotation(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := auth.NewMockRepository(ctrl)
	hasher := hashing.NewBcrypt(bcrypt.MinCost)

	pw, err := hasher.Hash("password1")
	require.NoError(t, err)

	r := &resident.Resident{ID: uuid.New(), Email: "an@example.com", Password: pw, Role: resident.RoleResident}

	repo.EXPECT().GetResidentByEmail(gomock.Any(), "an@example.com").Return(r, nil).AnyTimes()
	repo.EXPECT().GetResident(gomock.Any(), r.ID).Return(r, nil).AnyTimes()
	repo.EXPECT().
		SetRefreshToken(gomock.Any(), r.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, hash *string) error {
			r.RefreshToken = hash
			return nil
		}).
		AnyTimes()

	svc := auth.NewService(repo, hasher, newIssuer(testNow))
	ctx := context.Background()

	first, err := svc.Login(ctx, "an@example.com", "password1")
	require.NoError(t, err)
	require.NotNil(t, r.RefreshToken)

	second, err := svc.Refresh(ctx, first.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	_, err = svc.Refresh(ctx, first.RefreshToken)
	assert.Equal(t, apperr.CodeAccessDenied, apperr.CodeOf(err), "rotated token must not be reusable")

	_, err = svc.Refresh(ctx, second.AccessToken)
	assert.Equal(t, apperr.CodeAccessDenied, apperr.CodeOf(err))

	require.NoError(t, svc.Logout(ctx, r.ID))
	assert.Nil(t, r.RefreshToken)

	_, err = svc.Refresh(ctx, second.RefreshToken)
	assert.Equal(t, apperr.CodeAccessDenied, apperr.CodeOf(err))
}

func TestService_Refresh_UnknownResidentIsDenied(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := auth.NewMockRepository(ctrl)
	issuer := newIssuer(testNow)

	p := auth.Principal{ID: uuid.New(), Role: resident.RoleResident}
	tokens, err := issuer.Issue(p)
	require.NoError(t, err)

	repo.EXPECT().GetResident(gomock.Any(), p.ID).Return(nil, resident.ErrNotFound)

	_, err = auth.NewService(repo, auth.NewMockHasher(ctrl), issuer).Refresh(context.Background(), tokens.RefreshToken)
	assert.Equal(t, apperr.CodeAccessDenied, apperr.CodeOf(err))
}

func TestPrincipalContext(t *testing.T) {
	_, ok := auth.PrincipalFrom(context.Background())
	assert.False(t, ok)

	p := auth.Principal{ID: uuid.New()}
	got, ok := auth.PrincipalFrom(auth.WithPrincipal(context.Background(), p))
	assert.True(t, ok)
	assert.Equal(t, p, got)
}
