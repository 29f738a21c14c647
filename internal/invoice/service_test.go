package invoice_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/estate/internal/apperr"
	"github.com/MrJamesThe3rd/estate/internal/invoice"
)

func TestService_Create(t *testing.T) {
	aptID := uuid.New()
	due := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	type testCase struct {
		name       string
		status     invoice.Status
		exists     bool
		wantStatus invoice.Status
		wantCode   apperr.Code
	}

	tests := []testCase{
		{name: "DefaultsToPending", exists: true, wantStatus: invoice.StatusPending, wantCode: apperr.CodeSuccess},
		{name: "KeepsGivenStatus", status: invoice.StatusPaid, exists: true, wantStatus: invoice.StatusPaid, wantCode: apperr.CodeSuccess},
		{name: "ApartmentMissing", wantCode: apperr.CodeApartmentNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := invoice.NewMockRepository(ctrl)

			repo.EXPECT().ApartmentExists(gomock.Any(), aptID).Return(tt.exists, nil)

			if tt.exists {
				repo.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(nil)
			}

			got, err := invoice.NewService(repo).Create(context.Background(), invoice.CreateParams{
				ApartmentID: aptID,
				DueDate:     due,
				Status:      tt.status,
			})
			assert.Equal(t, tt.wantCode, apperr.CodeOf(err))

			if tt.wantCode == apperr.CodeSuccess {
				require.NotNil(t, got)
				assert.Equal(t, tt.wantStatus, got.Status)
				assert.True(t, got.TotalAmount.IsZero())
			}
		})
	}
}

func TestService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := invoice.NewMockRepository(ctrl)
	id := uuid.New()

	repo.EXPECT().GetInvoice(gomock.Any(), id).Return(nil, invoice.ErrNotFound)

	_, err := invoice.NewService(repo).Get(context.Background(), id)
	assert.Equal(t, apperr.CodeInvoiceNotFound, apperr.CodeOf(err))
}

func TestStatus_Outstanding(t *testing.T) {
	assert.True(t, invoice.StatusPending.Outstanding())
	assert.True(t, invoice.StatusOverdue.Outstanding())
	assert.False(t, invoice.StatusPaid.Outstanding())
}
