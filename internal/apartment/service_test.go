package apartment_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/estate/internal/apartment"
	"github.com/MrJamesThe3rd/estate/internal/apperr"
)

func TestService_Create(t *testing.T) {
	buildingID := uuid.New()
	residentID := uuid.New()

	type testCase struct {
		name      string
		params    apartment.CreateParams
		setupMock func(m *apartment.MockRepository)
		wantCode  apperr.Code
	}

	tests := []testCase{
		{
			name:   "Success",
			params: apartment.CreateParams{RoomNumber: 101, Area: decimal.NewFromFloat(45.5), BuildingID: buildingID},
			setupMock: func(m *apartment.MockRepository) {
				m.EXPECT().BuildingExists(gomock.Any(), buildingID).Return(true, nil)
				m.EXPECT().CreateApartment(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCode: apperr.CodeSuccess,
		},
		{
			name:   "BuildingMissing",
			params: apartment.CreateParams{RoomNumber: 101, Area: decimal.NewFromInt(40), BuildingID: buildingID},
			setupMock: func(m *apartment.MockRepository) {
				m.EXPECT().BuildingExists(gomock.Any(), buildingID).Return(false, nil)
			},
			wantCode: apperr.CodeBuildingNotFound,
		},
		{
			name: "ResidentMissing",
			params: apartment.CreateParams{
				RoomNumber: 101, Area: decimal.NewFromInt(40), BuildingID: buildingID, ResidentID: &residentID,
			},
			setupMock: func(m *apartment.MockRepository) {
				m.EXPECT().BuildingExists(gomock.Any(), buildingID).Return(true, nil)
				m.EXPECT().ResidentExists(gomock.Any(), residentID).Return(false, nil)
			},
			wantCode: apperr.CodeResidentNotFound,
		},
		{
			name: "ResidentTaken",
			params: apartment.CreateParams{
				RoomNumber: 101, Area: decimal.NewFromInt(40), BuildingID: buildingID, ResidentID: &residentID,
			},
			setupMock: func(m *apartment.MockRepository) {
				m.EXPECT().BuildingExists(gomock.Any(), buildingID).Return(true, nil)
				m.EXPECT().ResidentExists(gomock.Any(), residentID).Return(true, nil)
				m.EXPECT().CreateApartment(gomock.Any(), gomock.Any()).Return(apartment.ErrResidentTaken)
			},
			wantCode: apperr.CodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := apartment.NewMockRepository(ctrl)
			tt.setupMock(repo)

			got, err := apartment.NewService(repo).Create(context.Background(), tt.params)
			assert.Equal(t, tt.wantCode, apperr.CodeOf(err))

			if tt.wantCode == apperr.CodeSuccess {
				require.NotNil(t, got)
				assert.Equal(t, 101, got.RoomNumber)
			}
		})
	}
}

func TestService_AssignResident(t *testing.T) {
	aptID := uuid.New()
	otherID := uuid.New()
	residentID := uuid.New()

	type testCase struct {
		name       string
		residentID *uuid.UUID
		setupTx    func(tx *apartment.MockAssignTx)
		wantCode   apperr.Code
	}

	tests := []testCase{
		{
			name:       "Assigns",
			residentID: &residentID,
			setupTx: func(tx *apartment.MockAssignTx) {
				tx.EXPECT().LockApartment(gomock.Any(), aptID).Return(&apartment.Apartment{ID: aptID}, nil)
				tx.EXPECT().LockResident(gomock.Any(), residentID).Return(nil)
				tx.EXPECT().ResidentExists(gomock.Any(), residentID).Return(true, nil)
				tx.EXPECT().FindByResident(gomock.Any(), residentID).Return(nil, apartment.ErrNotFound)
				tx.EXPECT().SetResident(gomock.Any(), aptID, &residentID).
					Return(&apartment.Apartment{ID: aptID, ResidentID: &residentID}, nil)
				tx.EXPECT().Commit().Return(nil)
			},
			wantCode: apperr.CodeSuccess,
		},
		{
			name:       "SameApartmentIsNoOp",
			residentID: &residentID,
			setupTx: func(tx *apartment.MockAssignTx) {
				tx.EXPECT().LockApartment(gomock.Any(), aptID).
					Return(&apartment.Apartment{ID: aptID, ResidentID: &residentID}, nil)
				tx.EXPECT().LockResident(gomock.Any(), residentID).Return(nil)
				tx.EXPECT().ResidentExists(gomock.Any(), residentID).Return(true, nil)
				tx.EXPECT().FindByResident(gomock.Any(), residentID).
					Return(&apartment.Apartment{ID: aptID, ResidentID: &residentID}, nil)
			},
			wantCode: apperr.CodeSuccess,
		},
		{
			name:       "AssignedElsewhere",
			residentID: &residentID,
			setupTx: func(tx *apartment.MockAssignTx) {
				tx.EXPECT().LockApartment(gomock.Any(), aptID).Return(&apartment.Apartment{ID: aptID}, nil)
				tx.EXPECT().LockResident(gomock.Any(), residentID).Return(nil)
				tx.EXPECT().ResidentExists(gomock.Any(), residentID).Return(true, nil)
				tx.EXPECT().FindByResident(gomock.Any(), residentID).
					Return(&apartment.Apartment{ID: otherID, ResidentID: &residentID}, nil)
			},
			wantCode: apperr.CodeValidation,
		},
		{
			name:       "ResidentMissing",
			residentID: &residentID,
			setupTx: func(tx *apartment.MockAssignTx) {
				tx.EXPECT().LockApartment(gomock.Any(), aptID).Return(&apartment.Apartment{ID: aptID}, nil)
				tx.EXPECT().LockResident(gomock.Any(), residentID).Return(nil)
				tx.EXPECT().ResidentExists(gomock.Any(), residentID).Return(false, nil)
			},
			wantCode: apperr.CodeResidentNotFound,
		},
		{
			name:       "ApartmentMissing",
			residentID: &residentID,
			setupTx: func(tx *apartment.MockAssignTx) {
				tx.EXPECT().LockApartment(gomock.Any(), aptID).Return(nil, apartment.ErrNotFound)
			},
			wantCode: apperr.CodeApartmentNotFound,
		},
		{
			name: "Unassigns",
			setupTx: func(tx *apartment.MockAssignTx) {
				tx.EXPECT().LockApartment(gomock.Any(), aptID).
					Return(&apartment.Apartment{ID: aptID, ResidentID: &residentID}, nil)
				tx.EXPECT().SetResident(gomock.Any(), aptID, nil).Return(&apartment.Apartment{ID: aptID}, nil)
				tx.EXPECT().Commit().Return(nil)
			},
			wantCode: apperr.CodeSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := apartment.NewMockRepository(ctrl)
			tx := apartment.NewMockAssignTx(ctrl)

			repo.EXPECT().BeginAssignment(gomock.Any()).Return(tx, nil)
			tx.EXPECT().Rollback().Return(nil)
			tt.setupTx(tx)

			got, err := apartment.NewService(repo).AssignResident(context.Background(), aptID, tt.residentID)
			assert.Equal(t, tt.wantCode, apperr.CodeOf(err))

			if tt.wantCode == apperr.CodeSuccess {
				require.NotNil(t, got)
				assert.Equal(t, aptID, got.ID)
				assert.Equal(t, tt.residentID, got.ResidentID)
			}
		})
	}
}

func TestService_Update_ChecksNewBuilding(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := apartment.NewMockRepository(ctrl)
	buildingID := uuid.New()

	repo.EXPECT().BuildingExists(gomock.Any(), buildingID).Return(false, nil)

	_, err := apartment.NewService(repo).Update(context.Background(), uuid.New(), apartment.UpdateParams{BuildingID: &buildingID})
	assert.Equal(t, apperr.CodeBuildingNotFound, apperr.CodeOf(err))
}
