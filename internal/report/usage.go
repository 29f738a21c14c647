package report

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/estate/internal/subscription"
)

type ServiceStats struct {
	ServiceID       uuid.UUID       `json:"serviceId"`
	Name            string          `json:"name"`
	Revenue         decimal.Decimal `json:"revenue"`
	LineItems       int             `json:"lineItems"`
	AverageQuantity float64         `json:"averageQuantity"`
	Active          int             `json:"active"`
	Inactive        int             `json:"inactive"`
}

// ServiceUsage reports billed revenue and subscription counts per service,
// ordered by revenue descending.
func ServiceUsage(d Dataset) []ServiceStats {
	stats := make(map[uuid.UUID]*ServiceStats, len(d.Services))
	quantities := make(map[uuid.UUID]int, len(d.Services))

	for _, s := range d.Services {
		stats[s.ID] = &ServiceStats{ServiceID: s.ID, Name: s.Name, Revenue: decimal.Zero}
	}

	for _, li := range d.LineItems {
		s, ok := stats[li.ServiceID]
		if !ok {
			continue
		}

		s.Revenue = s.Revenue.Add(li.Total)
		s.LineItems++
		quantities[li.ServiceID] += li.Quantity
	}

	for _, sub := range d.Subscriptions {
		s, ok := stats[sub.ServiceID]
		if !ok {
			continue
		}

		switch sub.Status {
		case subscription.StatusActive:
			s.Active++
		case subscription.StatusInactive:
			s.Inactive++
		}
	}

	out := make([]ServiceStats, 0, len(stats))

	for id, s := range stats {
		if s.LineItems > 0 {
			s.AverageQuantity = round2(float64(quantities[id]) / float64(s.LineItems))
		}

		out = append(out, *s)
	}

	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Revenue.Cmp(out[j].Revenue); c != 0 {
			return c > 0
		}

		return out[i].Name < out[j].Name
	})

	return out
}
