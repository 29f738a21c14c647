package resident_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/estate/internal/apperr"
	"github.com/MrJamesThe3rd/estate/internal/resident"
)

func TestService_Get(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		repoErr  error
		wantCode apperr.Code
	}{
		{name: "Success", wantCode: apperr.CodeSuccess},
		{name: "NotFound", repoErr: resident.ErrNotFound, wantCode: apperr.CodeResidentNotFound},
		{name: "RepoError", repoErr: errors.New("db error"), wantCode: apperr.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := resident.NewMockRepository(ctrl)

			var ret *resident.Resident
			if tt.repoErr == nil {
				ret = &resident.Resident{ID: id}
			}

			repo.EXPECT().GetResident(gomock.Any(), id).Return(ret, tt.repoErr)

			got, err := resident.NewService(repo, nil).Get(context.Background(), id)
			assert.Equal(t, tt.wantCode, apperr.CodeOf(err))

			if tt.wantCode == apperr.CodeSuccess {
				require.NotNil(t, got)
				assert.Equal(t, id, got.ID)
			}
		})
	}
}

func TestService_Update(t *testing.T) {
	id := uuid.New()

	type testCase struct {
		name      string
		params    resident.UpdateParams
		setupMock func(m *resident.MockRepository, h *resident.MockPasswordHasher)
		wantCode  apperr.Code
	}

	tests := []testCase{
		{
			name:   "HashesPasswordAndNormalizesEmail",
			params: resident.UpdateParams{Password: new("secret123"), Email: new("  An@Example.COM ")},
			setupMock: func(m *resident.MockRepository, h *resident.MockPasswordHasher) {
				h.EXPECT().Hash("secret123").Return("hashed", nil)
				m.EXPECT().
					UpdateResident(gomock.Any(), id, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ uuid.UUID, p resident.UpdateParams) (*resident.Resident, error) {
						assert.Equal(t, "hashed", *p.Password)
						assert.Equal(t, "an@example.com", *p.Email)
						return &resident.Resident{ID: id, Email: *p.Email}, nil
					})
			},
			wantCode: apperr.CodeSuccess,
		},
		{
			name:   "HashingFails",
			params: resident.UpdateParams{Password: new("secret123")},
			setupMock: func(_ *resident.MockRepository, h *resident.MockPasswordHasher) {
				h.EXPECT().Hash("secret123").Return("", errors.New("boom"))
			},
			wantCode: apperr.CodeHashingFailed,
		},
		{
			name:   "EmailTaken",
			params: resident.UpdateParams{Email: new("b@example.com")},
			setupMock: func(m *resident.MockRepository, _ *resident.MockPasswordHasher) {
				m.EXPECT().UpdateResident(gomock.Any(), id, gomock.Any()).Return(nil, resident.ErrEmailTaken)
			},
			wantCode: apperr.CodeUserAlreadyExists,
		},
		{
			name:   "NotFound",
			params: resident.UpdateParams{FullName: new("Nguyễn Văn An")},
			setupMock: func(m *resident.MockRepository, _ *resident.MockPasswordHasher) {
				m.EXPECT().UpdateResident(gomock.Any(), id, gomock.Any()).Return(nil, resident.ErrNotFound)
			},
			wantCode: apperr.CodeResidentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := resident.NewMockRepository(ctrl)
			hasher := resident.NewMockPasswordHasher(ctrl)
			tt.setupMock(repo, hasher)

			_, err := resident.NewService(repo, hasher).Update(context.Background(), id, tt.params)
			assert.Equal(t, tt.wantCode, apperr.CodeOf(err))
		})
	}
}

func TestService_Search_TrimsQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := resident.NewMockRepository(ctrl)

	repo.EXPECT().SearchResidents(gomock.Any(), "an").Return([]*resident.Resident{}, nil)

	got, err := resident.NewService(repo, nil).Search(context.Background(), "  an ")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "an@example.com", resident.NormalizeEmail(" An@Example.com\t"))
}
