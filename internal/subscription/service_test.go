package subscription_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/estate/internal/apperr"
	"github.com/MrJamesThe3rd/estate/internal/subscription"
)

func TestService_Create(t *testing.T) {
	aptID := uuid.New()
	serviceID := uuid.New()
	next := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	type testCase struct {
		name      string
		setupMock func(m *subscription.MockRepository)
		wantCode  apperr.Code
	}

	tests := []testCase{
		{
			name: "StoresActive",
			setupMock: func(m *subscription.MockRepository) {
				m.EXPECT().ApartmentExists(gomock.Any(), aptID).Return(true, nil)
				m.EXPECT().ServiceExists(gomock.Any(), serviceID).Return(true, nil)
				m.EXPECT().
					CreateSubscription(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, sub *subscription.Subscription) error {
						assert.Equal(t, subscription.StatusActive, sub.Status)
						return nil
					})
			},
			wantCode: apperr.CodeSuccess,
		},
		{
			name: "ApartmentMissing",
			setupMock: func(m *subscription.MockRepository) {
				m.EXPECT().ApartmentExists(gomock.Any(), aptID).Return(false, nil)
			},
			wantCode: apperr.CodeApartmentNotFound,
		},
		{
			name: "ServiceMissing",
			setupMock: func(m *subscription.MockRepository) {
				m.EXPECT().ApartmentExists(gomock.Any(), aptID).Return(true, nil)
				m.EXPECT().ServiceExists(gomock.Any(), serviceID).Return(false, nil)
			},
			wantCode: apperr.CodeServiceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := subscription.NewMockRepository(ctrl)
			tt.setupMock(repo)

			got, err := subscription.NewService(repo).Create(context.Background(), subscription.CreateParams{
				ApartmentID:     aptID,
				ServiceID:       serviceID,
				Frequency:       subscription.FrequencyMonthly,
				NextBillingDate: next,
			})
			assert.Equal(t, tt.wantCode, apperr.CodeOf(err))

			if tt.wantCode == apperr.CodeSuccess {
				require.NotNil(t, got)
				assert.Equal(t, next, got.NextBillingDate)
			}
		})
	}
}

func TestService_Update_PartialSkipsRefChecks(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := subscription.NewMockRepository(ctrl)
	id := uuid.New()
	status := subscription.StatusInactive

	repo.EXPECT().
		UpdateSubscription(gomock.Any(), id, subscription.UpdateParams{Status: &status}).
		Return(&subscription.Subscription{ID: id, Status: status}, nil)

	got, err := subscription.NewService(repo).Update(context.Background(), id, subscription.UpdateParams{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, subscription.StatusInactive, got.Status)
}

func TestService_Delete_InUse(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := subscription.NewMockRepository(ctrl)
	id := uuid.New()

	repo.EXPECT().DeleteSubscription(gomock.Any(), id).Return(nil, subscription.ErrInUse)

	_, err := subscription.NewService(repo).Delete(context.Background(), id)
	assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))
}
