package billing

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound             = errors.New("invoice detail not found")
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrServiceNotFound      = errors.New("service not found")
	// ErrMismatch is returned when the subscription or the target invoice
	// belongs to another apartment.
	ErrMismatch = errors.New("subscription does not belong to apartment")
)

// LineItem is one billed service on an invoice. ServiceID, ServiceName and
// ApartmentID are read through the subscription, service and invoice.
type LineItem struct {
	ID             uuid.UUID       `json:"id"`
	InvoiceID      uuid.UUID       `json:"invoiceId"`
	SubscriptionID uuid.UUID       `json:"subscriptionId"`
	ServiceID      uuid.UUID       `json:"serviceId"`
	ServiceName    string          `json:"serviceName"`
	ApartmentID    uuid.UUID       `json:"apartmentId"`
	Quantity       int             `json:"quantity"`
	Total          decimal.Decimal `json:"total"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// LineTotal is unitPrice × quantity, or zero when the quantity is not
// positive or the price is negative.
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	if quantity <= 0 || unitPrice.IsNegative() {
		return decimal.Zero
	}

	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// Sum adds up the totals of items.
func Sum(items []*LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Total)
	}

	return total
}

// BillingMonth returns the calendar month containing t as [from, to).
func BillingMonth(t time.Time) (from, to time.Time) {
	from = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return from, from.AddDate(0, 1, 0)
}
