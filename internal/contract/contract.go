package contract

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound         = errors.New("contract not found")
	ErrResidentNotFound = errors.New("resident not found")
)

type Status string

const (
	StatusActive     Status = "active"
	StatusExpired    Status = "expired"
	StatusTerminated Status = "terminated"
)

// Contract is a signed lease document of a resident.
type Contract struct {
	ID           uuid.UUID `json:"id"`
	ResidentID   uuid.UUID `json:"residentId"`
	DocumentPath string    `json:"documentPath"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
