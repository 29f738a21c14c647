package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/estate/internal/invoice"
)

type Debt struct {
	InvoiceID     uuid.UUID       `json:"invoiceId"`
	Apartment     string          `json:"apartment"`
	Building      string          `json:"building"`
	Resident      string          `json:"resident"`
	Amount        decimal.Decimal `json:"amount"`
	Status        invoice.Status  `json:"status"`
	DueDate       time.Time       `json:"dueDate"`
	OverdueMonths int             `json:"overdueMonths"`
}

// Debts lists outstanding invoices, longest overdue first.
func Debts(d Dataset, now time.Time) []Debt {
	idx := newIndex(d)
	debts := []Debt{}

	for _, inv := range d.Invoices {
		if !inv.Status.Outstanding() {
			continue
		}

		debt := Debt{
			InvoiceID:     inv.ID,
			Apartment:     Unknown,
			Building:      Unknown,
			Resident:      Unknown,
			Amount:        inv.TotalAmount,
			Status:        inv.Status,
			DueDate:       inv.DueDate,
			OverdueMonths: OverdueMonths(inv.DueDate, now),
		}

		if a, ok := idx.apartments[inv.ApartmentID]; ok {
			debt.Apartment = fmt.Sprintf("%d", a.RoomNumber)

			if b, ok := idx.buildings[a.BuildingID]; ok {
				debt.Building = b.Name
			}

			if a.ResidentID != nil {
				if r, ok := idx.residents[*a.ResidentID]; ok {
					debt.Resident = r.FullName
				}
			}
		}

		debts = append(debts, debt)
	}

	sort.SliceStable(debts, func(i, j int) bool {
		if debts[i].OverdueMonths != debts[j].OverdueMonths {
			return debts[i].OverdueMonths > debts[j].OverdueMonths
		}

		return debts[i].DueDate.Before(debts[j].DueDate)
	})

	return debts
}

// OverdueMonths counts whole 30-day periods since due; never negative.
func OverdueMonths(due, now time.Time) int {
	days := int(now.Sub(due).Hours() / 24)
	if days < 0 {
		return 0
	}

	return days / 30
}
