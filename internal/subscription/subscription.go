package subscription

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("subscription not found")
	ErrApartmentNotFound = errors.New("apartment not found")
	ErrServiceNotFound   = errors.New("service not found")
	// ErrInUse is returned when invoice line items still reference the
	// subscription.
	ErrInUse = errors.New("subscription has invoice details")
)

type Frequency string

const (
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

// Advance returns the billing date that follows t. Unknown frequencies leave
// t unchanged. Month overflow follows time.AddDate, so Jan 31 advances to
// Mar 2 (or Mar 3 in a non-leap year).
func (f Frequency) Advance(t time.Time) time.Time {
	switch f {
	case FrequencyMonthly:
		return t.AddDate(0, 1, 0)
	case FrequencyQuarterly:
		return t.AddDate(0, 3, 0)
	case FrequencyYearly:
		return t.AddDate(1, 0, 0)
	}

	return t
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusPending  Status = "pending"
)

// Subscription binds a service to an apartment and tracks when it is next
// billed.
type Subscription struct {
	ID              uuid.UUID `json:"id"`
	ApartmentID     uuid.UUID `json:"apartmentId"`
	ServiceID       uuid.UUID `json:"serviceId"`
	Frequency       Frequency `json:"frequency"`
	NextBillingDate time.Time `json:"nextBillingDate"`
	Status          Status    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
