package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/MrJamesThe3rd/estate/internal/apartment"
	"github.com/MrJamesThe3rd/estate/internal/billing"
	"github.com/MrJamesThe3rd/estate/internal/building"
	"github.com/MrJamesThe3rd/estate/internal/invoice"
	"github.com/MrJamesThe3rd/estate/internal/offering"
	"github.com/MrJamesThe3rd/estate/internal/payment"
	"github.com/MrJamesThe3rd/estate/internal/report"
	"github.com/MrJamesThe3rd/estate/internal/resident"
	"github.com/MrJamesThe3rd/estate/internal/subscription"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// fixture is two buildings, three apartments (two occupied), one service and
// a mix of invoices and payments.
type fixture struct {
	data                   report.Dataset
	sunrise, annex         *building.Building
	alice, bob             *resident.Resident
	a101, a102, a201       *apartment.Apartment
	water                  *offering.Offering
	paid, pending, overdue *invoice.Invoice
}

func newFixture() *fixture {
	f := &fixture{}

	f.sunrise = &building.Building{ID: uuid.New(), Name: "Sunrise", CreatedAt: date(2024, 1, 5)}
	f.annex = &building.Building{ID: uuid.New(), Name: "Annex", CreatedAt: date(2024, 4, 1)}

	f.alice = &resident.Resident{ID: uuid.New(), FullName: "Alice", CreatedAt: date(2024, 2, 1)}
	f.bob = &resident.Resident{ID: uuid.New(), FullName: "Bob", CreatedAt: date(2024, 5, 20)}

	f.a101 = &apartment.Apartment{ID: uuid.New(), RoomNumber: 101, BuildingID: f.sunrise.ID, ResidentID: &f.alice.ID, CreatedAt: date(2024, 1, 10)}
	f.a102 = &apartment.Apartment{ID: uuid.New(), RoomNumber: 102, BuildingID: f.sunrise.ID, CreatedAt: date(2024, 1, 10)}
	f.a201 = &apartment.Apartment{ID: uuid.New(), RoomNumber: 201, BuildingID: f.annex.ID, ResidentID: &f.bob.ID, CreatedAt: date(2024, 4, 2)}

	f.water = &offering.Offering{ID: uuid.New(), Name: "Water", UnitPrice: dec("100000")}

	f.paid = &invoice.Invoice{ID: uuid.New(), ApartmentID: f.a101.ID, Status: invoice.StatusPaid, DueDate: date(2024, 5, 10), TotalAmount: dec("200000")}
	f.pending = &invoice.Invoice{ID: uuid.New(), ApartmentID: f.a201.ID, Status: invoice.StatusPending, DueDate: date(2024, 6, 1), TotalAmount: dec("150000")}
	f.overdue = &invoice.Invoice{ID: uuid.New(), ApartmentID: f.a102.ID, Status: invoice.StatusOverdue, DueDate: date(2024, 3, 1), TotalAmount: dec("90000")}

	sub := &subscription.Subscription{ID: uuid.New(), ApartmentID: f.a101.ID, ServiceID: f.water.ID, Status: subscription.StatusActive}
	idle := &subscription.Subscription{ID: uuid.New(), ApartmentID: f.a201.ID, ServiceID: f.water.ID, Status: subscription.StatusInactive}

	f.data = report.Dataset{
		Apartments:    []*apartment.Apartment{f.a101, f.a102, f.a201},
		Buildings:     []*building.Building{f.sunrise, f.annex},
		Residents:     []*resident.Resident{f.alice, f.bob},
		Subscriptions: []*subscription.Subscription{sub, idle},
		Services:      []*offering.Offering{f.water},
		Invoices:      []*invoice.Invoice{f.paid, f.pending, f.overdue},
		LineItems: []*billing.LineItem{
			{ID: uuid.New(), InvoiceID: f.paid.ID, ServiceID: f.water.ID, Quantity: 2, Total: dec("200000")},
			{ID: uuid.New(), InvoiceID: f.pending.ID, ServiceID: f.water.ID, Quantity: 1, Total: dec("100000")},
		},
		Payments: []*payment.Payment{
			{ID: uuid.New(), InvoiceID: f.paid.ID, Amount: dec("200000"), Status: payment.StatusCompleted, PaymentDate: date(2024, 5, 10)},
			{ID: uuid.New(), InvoiceID: f.pending.ID, Amount: dec("50000"), Status: payment.StatusCompleted, PaymentDate: date(2024, 6, 3)},
			{ID: uuid.New(), InvoiceID: f.pending.ID, Amount: dec("99999"), Status: payment.StatusFailed, PaymentDate: date(2024, 6, 4)},
		},
	}

	return f
}

func TestComputeOccupancy(t *testing.T) {
	f := newFixture()

	got := report.ComputeOccupancy(f.data)
	assert.Equal(t, report.Occupancy{Total: 3, Occupied: 2, Vacant: 1, Rate: 66.67}, got)

	assert.Equal(t, report.Occupancy{}, report.ComputeOccupancy(report.Dataset{}))
}

func TestBuildingOccupancy(t *testing.T) {
	f := newFixture()

	got := report.BuildingOccupancy(f.data)
	require.Len(t, got, 2)

	annex, sunrise := got[0], got[1]

	assert.Equal(t, "Annex", annex.Name)
	assert.Equal(t, 1, annex.Total)
	assert.Equal(t, 100.0, annex.Rate)
	assert.True(t, dec("50000").Equal(annex.Revenue), "failed payment excluded")

	assert.Equal(t, "Sunrise", sunrise.Name)
	assert.Equal(t, 2, sunrise.Total)
	assert.Equal(t, 1, sunrise.Occupied)
	assert.Equal(t, 50.0, sunrise.Rate)
	assert.True(t, dec("200000").Equal(sunrise.Revenue))
	assert.True(t, dec("200000").Equal(sunrise.AverageRevenue))
}

func TestMonthlyRevenue(t *testing.T) {
	f := newFixture()

	got := report.MonthlyRevenue(f.data, 2024)
	assert.True(t, dec("200000").Equal(got.Months[4]))
	assert.True(t, dec("50000").Equal(got.Months[5]))
	assert.True(t, decimal.Zero.Equal(got.Months[0]))
	assert.True(t, dec("250000").Equal(got.Total))

	assert.True(t, report.MonthlyRevenue(f.data, 2023).Total.IsZero())
}

func TestGrowth(t *testing.T) {
	tests := []struct {
		name              string
		current, previous string
		want              float64
	}{
		{name: "Increase", current: "150", previous: "100", want: 50},
		{name: "Decrease", current: "50000", previous: "200000", want: -75},
		{name: "NoPrevious", current: "100", previous: "0", want: 0},
		{name: "Rounded", current: "2", previous: "3", want: -33.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, report.Growth(dec(tt.current), dec(tt.previous)))
		})
	}
}

func TestDebts(t *testing.T) {
	f := newFixture()
	now := date(2024, 6, 15)

	got := report.Debts(f.data, now)
	require.Len(t, got, 2)

	assert.Equal(t, f.overdue.ID, got[0].InvoiceID)
	assert.Equal(t, "Sunrise", got[0].Building)
	assert.Equal(t, "102", got[0].Apartment)
	assert.Equal(t, report.Unknown, got[0].Resident)
	assert.Equal(t, 3, got[0].OverdueMonths)

	assert.Equal(t, f.pending.ID, got[1].InvoiceID)
	assert.Equal(t, "Bob", got[1].Resident)
	assert.Equal(t, 0, got[1].OverdueMonths)
}

func TestDebts_UnknownApartment(t *testing.T) {
	inv := &invoice.Invoice{ID: uuid.New(), ApartmentID: uuid.New(), Status: invoice.StatusPending, DueDate: date(2024, 1, 1)}

	got := report.Debts(report.Dataset{Invoices: []*invoice.Invoice{inv}}, date(2024, 1, 2))
	require.Len(t, got, 1)
	assert.Equal(t, report.Unknown, got[0].Apartment)
	assert.Equal(t, report.Unknown, got[0].Building)
	assert.Equal(t, report.Unknown, got[0].Resident)
}

func TestOverdueMonths(t *testing.T) {
	due := date(2024, 1, 1)

	assert.Equal(t, 0, report.OverdueMonths(due, date(2023, 12, 1)))
	assert.Equal(t, 0, report.OverdueMonths(due, date(2024, 1, 30)))
	assert.Equal(t, 1, report.OverdueMonths(due, date(2024, 1, 31)))
	assert.Equal(t, 2, report.OverdueMonths(due, date(2024, 3, 1)))
}

func TestServiceUsage(t *testing.T) {
	f := newFixture()

	got := report.ServiceUsage(f.data)
	require.Len(t, got, 1)
	assert.Equal(t, "Water", got[0].Name)
	assert.True(t, dec("300000").Equal(got[0].Revenue))
	assert.Equal(t, 2, got[0].LineItems)
	assert.Equal(t, 1.5, got[0].AverageQuantity)
	assert.Equal(t, 1, got[0].Active)
	assert.Equal(t, 1, got[0].Inactive)
}

func TestPaymentAnalytics(t *testing.T) {
	f := newFixture()

	got := report.PaymentAnalytics(f.data)
	require.Len(t, got, 2)

	assert.Equal(t, "2024-05", got[0].Month)
	assert.Equal(t, 1, got[0].Count)
	assert.Equal(t, 1, got[0].OnTime)
	assert.Equal(t, 0, got[0].Late)

	assert.Equal(t, "2024-06", got[1].Month)
	assert.Equal(t, 1, got[1].Count, "failed payment excluded")
	assert.Equal(t, 1, got[1].Late)
	assert.True(t, dec("50000").Equal(got[1].Average))
}

func TestGrowthMetrics(t *testing.T) {
	f := newFixture()

	got := report.GrowthMetrics(f.data, date(2024, 5, 15), 3)
	require.Len(t, got, 3)

	assert.Equal(t, report.GrowthPoint{Month: "2024-03", Residents: 1, Buildings: 1, Apartments: 2}, got[0])
	assert.Equal(t, report.GrowthPoint{Month: "2024-04", Residents: 1, Buildings: 2, Apartments: 3}, got[1])
	assert.Equal(t, report.GrowthPoint{Month: "2024-05", Residents: 2, Buildings: 2, Apartments: 3}, got[2])

	assert.Empty(t, report.GrowthMetrics(f.data, date(2024, 5, 15), 0))
}

func TestBuild(t *testing.T) {
	f := newFixture()
	now := date(2024, 6, 15)

	dash := report.Build(f.data, now)

	assert.Equal(t, now, dash.GeneratedAt)
	assert.Equal(t, 2024, dash.Revenue.Year)
	assert.Equal(t, -75.0, dash.MonthlyGrowth)
	assert.Len(t, dash.Growth, report.GrowthWindow)
	assert.Len(t, dash.Debts, 2)
}

func TestBuild_MonthlyGrowthAtMonthEnd(t *testing.T) {
	invoiceID := uuid.New()
	d := report.Dataset{
		Payments: []*payment.Payment{
			{ID: uuid.New(), InvoiceID: invoiceID, Amount: dec("100"), Status: payment.StatusCompleted, PaymentDate: date(2024, 2, 10)},
			{ID: uuid.New(), InvoiceID: invoiceID, Amount: dec("150"), Status: payment.StatusCompleted, PaymentDate: date(2024, 3, 10)},
		},
	}

	tests := []struct {
		name string
		now  time.Time
	}{
		{name: "MidMonth", now: date(2024, 3, 15)},
		{name: "LastDayAfterShortMonth", now: date(2024, 3, 31)},
		{name: "DayAfterLeapDay", now: date(2024, 3, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 50.0, report.Build(d, tt.now).MonthlyGrowth)
		})
	}
}

func TestWriteXLSX(t *testing.T) {
	f := newFixture()
	dash := report.Build(f.data, date(2024, 6, 15))

	var buf bytes.Buffer
	require.NoError(t, report.WriteXLSX(&buf, dash))

	book, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer book.Close()

	assert.Equal(t, []string{
		report.SheetOccupancy, report.SheetBuildings, report.SheetRevenue, report.SheetDebts,
		report.SheetServices, report.SheetPayments, report.SheetGrowth,
	}, book.GetSheetList())

	rows, err := book.GetRows(report.SheetDebts)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Building", rows[0][0])
	assert.Equal(t, "Sunrise", rows[1][0])
	assert.Equal(t, "3", rows[1][6])

	revenue, err := book.GetRows(report.SheetRevenue)
	require.NoError(t, err)
	assert.Len(t, revenue, 14)
	assert.Equal(t, "Total", revenue[13][0])
}
