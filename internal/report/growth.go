package report

import "time"

type GrowthPoint struct {
	Month      string `json:"month"`
	Residents  int    `json:"residents"`
	Buildings  int    `json:"buildings"`
	Apartments int    `json:"apartments"`
}

// GrowthMetrics counts the records that existed at the end of each of the
// last months months, oldest first, ending with the month of now.
func GrowthMetrics(d Dataset, now time.Time, months int) []GrowthPoint {
	if months <= 0 {
		return []GrowthPoint{}
	}

	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	points := make([]GrowthPoint, 0, months)

	for i := months - 1; i >= 0; i-- {
		month := start.AddDate(0, -i, 0)
		end := month.AddDate(0, 1, 0)

		p := GrowthPoint{Month: month.Format(monthLayout)}

		for _, r := range d.Residents {
			if r.CreatedAt.Before(end) {
				p.Residents++
			}
		}

		for _, b := range d.Buildings {
			if b.CreatedAt.Before(end) {
				p.Buildings++
			}
		}

		for _, a := range d.Apartments {
			if a.CreatedAt.Before(end) {
				p.Apartments++
			}
		}

		points = append(points, p)
	}

	return points
}
