package invoice

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound          = errors.New("invoice not found")
	ErrApartmentNotFound = errors.New("apartment not found")
)

type Status string

const (
	StatusPending Status = "PENDING"
	StatusPaid    Status = "PAID"
	StatusOverdue Status = "OVERDUE"
)

// Outstanding reports whether the invoice still counts as debt.
func (s Status) Outstanding() bool {
	return s == StatusPending || s == StatusOverdue
}

// Invoice is the bill of one apartment for a period. TotalAmount is the sum
// of its line item totals.
type Invoice struct {
	ID          uuid.UUID       `json:"id"`
	ApartmentID uuid.UUID       `json:"apartmentId"`
	Status      Status          `json:"status"`
	DueDate     time.Time       `json:"dueDate"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
