package offering

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("service not found")
	// ErrInUse is returned when subscriptions still reference the service.
	ErrInUse = errors.New("service has subscriptions")
)

// Offering is a billable service (electricity, water, parking...) with a
// price per unit.
type Offering struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
