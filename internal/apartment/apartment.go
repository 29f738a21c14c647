package apartment

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound         = errors.New("apartment not found")
	ErrBuildingNotFound = errors.New("building not found")
	ErrResidentNotFound = errors.New("resident not found")
	// ErrResidentTaken is returned when the resident already lives in
	// another apartment.
	ErrResidentTaken = errors.New("resident already assigned")
	ErrRoomTaken     = errors.New("room number already used in building")
)

type Apartment struct {
	ID         uuid.UUID       `json:"id"`
	RoomNumber int             `json:"roomNumber"`
	Area       decimal.Decimal `json:"area"`
	BuildingID uuid.UUID       `json:"buildingId"`
	ResidentID *uuid.UUID      `json:"residentId"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// Occupied reports whether a resident is assigned.
func (a *Apartment) Occupied() bool {
	return a.ResidentID != nil
}
