// Package report computes the dashboard statistics. Every function is pure
// over a fetched Dataset and an explicit reference time.
package report

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/estate/internal/apartment"
	"github.com/MrJamesThe3rd/estate/internal/billing"
	"github.com/MrJamesThe3rd/estate/internal/building"
	"github.com/MrJamesThe3rd/estate/internal/invoice"
	"github.com/MrJamesThe3rd/estate/internal/offering"
	"github.com/MrJamesThe3rd/estate/internal/payment"
	"github.com/MrJamesThe3rd/estate/internal/resident"
	"github.com/MrJamesThe3rd/estate/internal/subscription"
)

// Unknown labels a reference that does not resolve within the dataset.
const Unknown = "Unknown"

// Dataset is one consistent fetch of every collection the dashboard joins.
type Dataset struct {
	Apartments    []*apartment.Apartment
	Buildings     []*building.Building
	Residents     []*resident.Resident
	Subscriptions []*subscription.Subscription
	Services      []*offering.Offering
	Invoices      []*invoice.Invoice
	LineItems     []*billing.LineItem
	Payments      []*payment.Payment
}

// Dashboard is every report computed at one instant.
type Dashboard struct {
	GeneratedAt   time.Time       `json:"generatedAt"`
	Occupancy     Occupancy       `json:"occupancy"`
	Buildings     []BuildingStats `json:"buildings"`
	Revenue       Revenue         `json:"revenue"`
	MonthlyGrowth float64         `json:"monthlyGrowth"`
	Debts         []Debt          `json:"debts"`
	Services      []ServiceStats  `json:"services"`
	Payments      []PaymentMonth  `json:"payments"`
	Growth        []GrowthPoint   `json:"growth"`
}

// GrowthWindow is the number of months Build reports growth for.
const GrowthWindow = 6

func Build(d Dataset, now time.Time) *Dashboard {
	// Step back from the first so Mar 31 does not normalize to Mar 2.
	prev := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
	growth := Growth(RevenueIn(d, now.Year(), now.Month()), RevenueIn(d, prev.Year(), prev.Month()))

	return &Dashboard{
		GeneratedAt:   now,
		Occupancy:     ComputeOccupancy(d),
		Buildings:     BuildingOccupancy(d),
		Revenue:       MonthlyRevenue(d, now.Year()),
		MonthlyGrowth: growth,
		Debts:         Debts(d, now),
		Services:      ServiceUsage(d),
		Payments:      PaymentAnalytics(d),
		Growth:        GrowthMetrics(d, now, GrowthWindow),
	}
}

// index holds lookups shared by the joins.
type index struct {
	apartments map[uuid.UUID]*apartment.Apartment
	buildings  map[uuid.UUID]*building.Building
	residents  map[uuid.UUID]*resident.Resident
	invoices   map[uuid.UUID]*invoice.Invoice
}

func newIndex(d Dataset) *index {
	idx := &index{
		apartments: make(map[uuid.UUID]*apartment.Apartment, len(d.Apartments)),
		buildings:  make(map[uuid.UUID]*building.Building, len(d.Buildings)),
		residents:  make(map[uuid.UUID]*resident.Resident, len(d.Residents)),
		invoices:   make(map[uuid.UUID]*invoice.Invoice, len(d.Invoices)),
	}

	for _, a := range d.Apartments {
		idx.apartments[a.ID] = a
	}

	for _, b := range d.Buildings {
		idx.buildings[b.ID] = b
	}

	for _, r := range d.Residents {
		idx.residents[r.ID] = r
	}

	for _, inv := range d.Invoices {
		idx.invoices[inv.ID] = inv
	}

	return idx
}

// counted reports whether a payment contributes to revenue.
func counted(p *payment.Payment) bool {
	return p.Status != payment.StatusFailed
}

// percent returns part/whole as a percentage rounded to two places, 0 when
// whole is 0.
func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}

	return round2(float64(part) / float64(whole) * 100)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func divide(sum decimal.Decimal, n int) decimal.Decimal {
	if n == 0 {
		return decimal.Zero
	}

	return sum.Div(decimal.NewFromInt(int64(n))).Round(2)
}
