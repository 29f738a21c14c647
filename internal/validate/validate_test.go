package validate_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/estate/internal/apperr"
	"github.com/MrJamesThe3rd/estate/internal/validate"
)

type registerRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=resident admin"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name       string
		in         registerRequest
		wantFields []string
	}{
		{
			name: "Valid",
			in:   registerRequest{FullName: "Nguyen Van A", Email: "a@example.com", Password: "12345678"},
		},
		{
			name:       "MissingAndShort",
			in:         registerRequest{Email: "not-an-email", Password: "123"},
			wantFields: []string{"fullName", "email", "password"},
		},
		{
			name:       "BadRole",
			in:         registerRequest{FullName: "B", Email: "b@example.com", Password: "12345678", Role: "owner"},
			wantFields: []string{"role"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := validate.Struct(tt.in)

			if len(tt.wantFields) == 0 {
				assert.True(t, res.Valid())
				assert.NoError(t, res.Err())

				return
			}

			require.False(t, res.Valid())

			var fields []string
			for _, v := range res.Violations {
				fields = append(fields, v.Field)
			}

			assert.Equal(t, tt.wantFields, fields)
			assert.ErrorIs(t, res.Err(), apperr.ErrValidation)
		})
	}
}

type apartmentRequest struct {
	RoomNumber int             `json:"roomNumber" validate:"gt=0"`
	Area       decimal.Decimal `json:"area" validate:"gt=0"`
	BuildingID uuid.UUID       `json:"buildingId" validate:"required"`
}

func TestStruct_DecimalAndUUID(t *testing.T) {
	ok := validate.Struct(apartmentRequest{RoomNumber: 101, Area: decimal.RequireFromString("45.5"), BuildingID: uuid.New()})
	assert.True(t, ok.Valid())

	bad := validate.Struct(apartmentRequest{RoomNumber: 0, Area: decimal.Zero})
	require.Len(t, bad.Violations, 3)
	assert.Equal(t, "roomNumber", bad.Violations[0].Field)
	assert.Equal(t, "area", bad.Violations[1].Field)
	assert.Equal(t, "buildingId", bad.Violations[2].Field)
}
