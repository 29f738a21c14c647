package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the exported workbook, in order.
const (
	SheetOccupancy = "Occupancy"
	SheetBuildings = "Buildings"
	SheetRevenue   = "Revenue"
	SheetDebts     = "Debts"
	SheetServices  = "Services"
	SheetPayments  = "Payments"
	SheetGrowth    = "Growth"
)

// WriteXLSX writes one sheet per report.
func WriteXLSX(w io.Writer, dash *Dashboard) error {
	f := excelize.NewFile()
	defer f.Close()

	sheets := []struct {
		name    string
		headers []any
		rows    [][]any
	}{
		{SheetOccupancy, []any{"Total", "Occupied", "Vacant", "Rate %"}, occupancyRows(dash)},
		{SheetBuildings, []any{"Building", "Apartments", "Occupied", "Rate %", "Revenue", "Avg revenue"}, buildingRows(dash)},
		{SheetRevenue, []any{"Month", "Revenue"}, revenueRows(dash)},
		{SheetDebts, []any{"Building", "Apartment", "Resident", "Amount", "Status", "Due date", "Months overdue"}, debtRows(dash)},
		{SheetServices, []any{"Service", "Revenue", "Line items", "Avg quantity", "Active", "Inactive"}, serviceRows(dash)},
		{SheetPayments, []any{"Month", "Count", "Amount", "Average", "On time", "Late"}, paymentRows(dash)},
		{SheetGrowth, []any{"Month", "Residents", "Buildings", "Apartments"}, growthRows(dash)},
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	for i, s := range sheets {
		idx, err := f.NewSheet(s.name)
		if err != nil {
			return fmt.Errorf("creating sheet %s: %w", s.name, err)
		}

		if i == 0 {
			f.SetActiveSheet(idx)
		}

		if err := f.SetSheetRow(s.name, "A1", &s.headers); err != nil {
			return fmt.Errorf("writing %s header: %w", s.name, err)
		}

		last, _ := excelize.CoordinatesToCellName(len(s.headers), 1)
		_ = f.SetCellStyle(s.name, "A1", last, header)

		for r, row := range s.rows {
			cell, _ := excelize.CoordinatesToCellName(1, r+2)
			if err := f.SetSheetRow(s.name, cell, &row); err != nil {
				return fmt.Errorf("writing %s row %d: %w", s.name, r+1, err)
			}
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}

	return nil
}

func occupancyRows(d *Dashboard) [][]any {
	o := d.Occupancy
	return [][]any{{o.Total, o.Occupied, o.Vacant, o.Rate}}
}

func buildingRows(d *Dashboard) [][]any {
	rows := make([][]any, 0, len(d.Buildings))
	for _, b := range d.Buildings {
		rows = append(rows, []any{b.Name, b.Total, b.Occupied, b.Rate, b.Revenue.InexactFloat64(), b.AverageRevenue.InexactFloat64()})
	}

	return rows
}

func revenueRows(d *Dashboard) [][]any {
	rows := make([][]any, 0, len(d.Revenue.Months)+1)
	for i, m := range d.Revenue.Months {
		rows = append(rows, []any{fmt.Sprintf("%d-%02d", d.Revenue.Year, i+1), m.InexactFloat64()})
	}

	return append(rows, []any{"Total", d.Revenue.Total.InexactFloat64()})
}

func debtRows(d *Dashboard) [][]any {
	rows := make([][]any, 0, len(d.Debts))
	for _, debt := range d.Debts {
		rows = append(rows, []any{
			debt.Building, debt.Apartment, debt.Resident, debt.Amount.InexactFloat64(),
			string(debt.Status), debt.DueDate.Format("2006-01-02"), debt.OverdueMonths,
		})
	}

	return rows
}

func serviceRows(d *Dashboard) [][]any {
	rows := make([][]any, 0, len(d.Services))
	for _, s := range d.Services {
		rows = append(rows, []any{s.Name, s.Revenue.InexactFloat64(), s.LineItems, s.AverageQuantity, s.Active, s.Inactive})
	}

	return rows
}

func paymentRows(d *Dashboard) [][]any {
	rows := make([][]any, 0, len(d.Payments))
	for _, p := range d.Payments {
		rows = append(rows, []any{p.Month, p.Count, p.Amount.InexactFloat64(), p.Average.InexactFloat64(), p.OnTime, p.Late})
	}

	return rows
}

func growthRows(d *Dashboard) [][]any {
	rows := make([][]any, 0, len(d.Growth))
	for _, g := range d.Growth {
		rows = append(rows, []any{g.Month, g.Residents, g.Buildings, g.Apartments})
	}

	return rows
}
