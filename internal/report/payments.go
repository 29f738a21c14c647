package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

const monthLayout = "2006-01"

type PaymentMonth struct {
	Month   string          `json:"month"`
	Count   int             `json:"count"`
	Amount  decimal.Decimal `json:"amount"`
	Average decimal.Decimal `json:"average"`
	OnTime  int             `json:"onTime"`
	Late    int             `json:"late"`
}

// PaymentAnalytics groups non-failed payments by month. A payment is on time
// when made on or before its invoice's due date; payments of unknown
// invoices count as late.
func PaymentAnalytics(d Dataset) []PaymentMonth {
	idx := newIndex(d)
	months := map[string]*PaymentMonth{}

	for _, p := range d.Payments {
		if !counted(p) {
			continue
		}

		key := p.PaymentDate.Format(monthLayout)

		m, ok := months[key]
		if !ok {
			m = &PaymentMonth{Month: key, Amount: decimal.Zero}
			months[key] = m
		}

		m.Count++
		m.Amount = m.Amount.Add(p.Amount)

		if inv, ok := idx.invoices[p.InvoiceID]; ok && !day(p.PaymentDate).After(day(inv.DueDate)) {
			m.OnTime++
		} else {
			m.Late++
		}
	}

	out := make([]PaymentMonth, 0, len(months))

	for _, m := range months {
		m.Average = divide(m.Amount, m.Count)
		out = append(out, *m)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })

	return out
}

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
