package domain

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// HourAverage is the mean footfall observed at a site during one hour of the
// day, rounded to the nearest visitor.
type HourAverage struct {
	Hour            int `json:"hour"`
	AverageFootfall int `json:"average_footfall"`
}

// DefaultTopHours is how many ranked hours TopHours returns when the caller
// does not ask for a specific count.
const DefaultTopHours = 5

// TopHours ranks a site's hours of the day by average footfall, descending,
// with ties broken by ascending hour so the order is deterministic. A site
// with no observations yields an empty result, not an error. k ≤ 0 selects
// DefaultTopHours.
func TopHours(c Corpus, location string, k int) []HourAverage {
	if k <= 0 {
		k = DefaultTopHours
	}

	byHour := make(map[int][]float64)
	for i := range c {
		if c[i].Location != location {
			continue
		}
		byHour[c[i].Hour] = append(byHour[c[i].Hour], float64(c[i].Footfall))
	}

	averages := make([]HourAverage, 0, len(byHour))
	for hour, samples := range byHour {
		averages = append(averages, HourAverage{
			Hour:            hour,
			AverageFootfall: int(math.Round(stat.Mean(samples, nil))),
		})
	}

	sort.Slice(averages, func(i, j int) bool {
		if averages[i].AverageFootfall != averages[j].AverageFootfall {
			return averages[i].AverageFootfall > averages[j].AverageFootfall
		}
		return averages[i].Hour < averages[j].Hour
	})

	if len(averages) > k {
		averages = averages[:k]
	}
	return averages
}
