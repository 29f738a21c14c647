package report

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Occupancy struct {
	Total    int     `json:"total"`
	Occupied int     `json:"occupied"`
	Vacant   int     `json:"vacant"`
	Rate     float64 `json:"rate"`
}

func ComputeOccupancy(d Dataset) Occupancy {
	var o Occupancy

	for _, a := range d.Apartments {
		o.Total++

		if a.Occupied() {
			o.Occupied++
		}
	}

	o.Vacant = o.Total - o.Occupied
	o.Rate = percent(o.Occupied, o.Total)

	return o
}

type BuildingStats struct {
	BuildingID     uuid.UUID       `json:"buildingId"`
	Name           string          `json:"name"`
	Total          int             `json:"total"`
	Occupied       int             `json:"occupied"`
	Rate           float64         `json:"rate"`
	Revenue        decimal.Decimal `json:"revenue"`
	AverageRevenue decimal.Decimal `json:"averageRevenue"`
}

// BuildingOccupancy reports occupancy and collected revenue per building,
// ordered by name. Revenue follows payment → invoice → apartment → building.
func BuildingOccupancy(d Dataset) []BuildingStats {
	idx := newIndex(d)
	stats := make(map[uuid.UUID]*BuildingStats, len(d.Buildings))

	for _, b := range d.Buildings {
		stats[b.ID] = &BuildingStats{BuildingID: b.ID, Name: b.Name, Revenue: decimal.Zero}
	}

	for _, a := range d.Apartments {
		s, ok := stats[a.BuildingID]
		if !ok {
			continue
		}

		s.Total++

		if a.Occupied() {
			s.Occupied++
		}
	}

	for _, p := range d.Payments {
		if !counted(p) {
			continue
		}

		inv, ok := idx.invoices[p.InvoiceID]
		if !ok {
			continue
		}

		a, ok := idx.apartments[inv.ApartmentID]
		if !ok {
			continue
		}

		if s, ok := stats[a.BuildingID]; ok {
			s.Revenue = s.Revenue.Add(p.Amount)
		}
	}

	out := make([]BuildingStats, 0, len(stats))

	for _, s := range stats {
		s.Rate = percent(s.Occupied, s.Total)
		s.AverageRevenue = divide(s.Revenue, s.Occupied)
		out = append(out, *s)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}

		return out[i].BuildingID.String() < out[j].BuildingID.String()
	})

	return out
}
