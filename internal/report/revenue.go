package report

import (
	"time"

	"github.com/shopspring/decimal"
)

type Revenue struct {
	Year   int                 `json:"year"`
	Months [12]decimal.Decimal `json:"months"`
	Total  decimal.Decimal     `json:"total"`
}

// MonthlyRevenue buckets non-failed payments of year by payment month.
func MonthlyRevenue(d Dataset, year int) Revenue {
	r := Revenue{Year: year, Total: decimal.Zero}
	for i := range r.Months {
		r.Months[i] = decimal.Zero
	}

	for _, p := range d.Payments {
		if !counted(p) || p.PaymentDate.Year() != year {
			continue
		}

		m := p.PaymentDate.Month() - 1
		r.Months[m] = r.Months[m].Add(p.Amount)
		r.Total = r.Total.Add(p.Amount)
	}

	return r
}

// RevenueIn sums non-failed payments made in the given month.
func RevenueIn(d Dataset, year int, month time.Month) decimal.Decimal {
	return MonthlyRevenue(d, year).Months[month-1]
}

// Growth is the percentage change from previous to current, 0 when previous
// is 0.
func Growth(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		return 0
	}

	return round2(current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).InexactFloat64())
}
