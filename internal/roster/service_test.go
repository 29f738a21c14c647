package roster_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/estate/internal/apartment"
	"github.com/MrJamesThe3rd/estate/internal/apperr"
	"github.com/MrJamesThe3rd/estate/internal/roster"
)

func TestService_Import(t *testing.T) {
	towerID := uuid.New()

	type testCase struct {
		name          string
		content       string
		existingRooms map[roster.RoomKey]bool
		setupTx       func(tx *roster.MockImportTx)
		wantCode      apperr.Code
		wantCreated   int
		wantConflicts []string
	}

	tests := []testCase{
		{
			name:    "CreatesEveryRow",
			content: "Building;Room;Area\ntower;101;40\nTOWER ;102;42,5\n",
			setupTx: func(tx *roster.MockImportTx) {
				tx.EXPECT().CreateApartment(gomock.Any(), gomock.Any()).Return(nil).Times(2)
				tx.EXPECT().Commit().Return(nil)
			},
			wantCode:    apperr.CodeSuccess,
			wantCreated: 2,
		},
		{
			name:          "ConflictsRollBackEverything",
			content:       "Building;Room;Area\nTower;101;40\nAnnex;5;30\nTower;102;40\nTower;102;41\nTower;0;20\nTower;103;0\n",
			existingRooms: map[roster.RoomKey]bool{{BuildingID: towerID, RoomNumber: 101}: true},
			wantCode:      apperr.CodeValidation,
			wantConflicts: []string{
				"room already exists",
				"unknown building",
				"room already exists",
				"room number must be positive",
				"area must be positive",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := roster.NewMockRepository(ctrl)

			tx := roster.NewMockImportTx(ctrl)
			rooms := tt.existingRooms
			if rooms == nil {
				rooms = map[roster.RoomKey]bool{}
			}

			repo.EXPECT().BeginImport(gomock.Any()).Return(tx, nil)
			tx.EXPECT().Buildings(gomock.Any()).Return(map[string]uuid.UUID{"tower": towerID}, nil)
			tx.EXPECT().Rooms(gomock.Any()).Return(rooms, nil)
			tx.EXPECT().Rollback().Return(nil)

			if tt.setupTx != nil {
				tt.setupTx(tx)
			}

			got, err := roster.NewService(repo).Import(context.Background(), strings.NewReader(tt.content))
			assert.Equal(t, tt.wantCode, apperr.CodeOf(err))

			if tt.wantCode == apperr.CodeSuccess {
				require.NoError(t, err)
				assert.Len(t, got.Created, tt.wantCreated)
				assert.Empty(t, got.Conflicts)

				for _, a := range got.Created {
					assert.Equal(t, towerID, a.BuildingID)
					assert.Nil(t, a.ResidentID)
				}

				return
			}

			var appErr *apperr.Error
			require.True(t, errors.As(err, &appErr))

			result, ok := appErr.Data.(*roster.Result)
			require.True(t, ok)
			assert.Empty(t, result.Created)

			reasons := make([]string, 0, len(result.Conflicts))
			for _, c := range result.Conflicts {
				reasons = append(reasons, c.Reason)
			}

			assert.Equal(t, tt.wantConflicts, reasons)
		})
	}
}

func TestService_Import_ConcurrentRoomIsValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := roster.NewMockRepository(ctrl)
	tx := roster.NewMockImportTx(ctrl)
	towerID := uuid.New()

	repo.EXPECT().BeginImport(gomock.Any()).Return(tx, nil)
	tx.EXPECT().Buildings(gomock.Any()).Return(map[string]uuid.UUID{"tower": towerID}, nil)
	tx.EXPECT().Rooms(gomock.Any()).Return(map[roster.RoomKey]bool{}, nil)
	tx.EXPECT().CreateApartment(gomock.Any(), gomock.Any()).Return(apartment.ErrRoomTaken)
	tx.EXPECT().Rollback().Return(nil)

	_, err := roster.NewService(repo).Import(context.Background(), strings.NewReader("Building;Room;Area\nTower;1;30\n"))
	assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))
}

func TestService_Import_ParseFailureOpensNoTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := roster.NewMockRepository(ctrl)

	_, err := roster.NewService(repo).Import(context.Background(), strings.NewReader("Building;Room;Area\nTower;x;40\n"))
	assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))
}

func TestService_Import_BeginFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := roster.NewMockRepository(ctrl)

	repo.EXPECT().BeginImport(gomock.Any()).Return(nil, errors.New("db down"))

	_, err := roster.NewService(repo).Import(context.Background(), strings.NewReader("Building;Room;Area\nTower;1;30\n"))
	assert.Equal(t, apperr.CodeInternal, apperr.CodeOf(err))
}
