package river

import (
	"math"
	"time"
)

// trendWindow is the maximum number of trailing history points the slope is
// fitted over.
const trendWindow = 10

// Project extrapolates history into a fixed number of daily future points,
// starting one day after the last observation. This is a straight-line
// trend for display only, not a hydrological forecast: no clamping, no
// seasonal terms, no uncertainty bounds. Empty history yields an empty
// projection rather than a fabricated baseline.
func Project(history []Observation, days int) []Observation {
	if len(history) == 0 || days <= 0 {
		return []Observation{}
	}

	k := trendWindow
	if len(history) < k {
		k = len(history)
	}

	window := history[len(history)-k:]
	last := window[len(window)-1]

	slope := 0.0
	if k > 1 {
		slope = (last.Value - window[0].Value) / float64(k-1)
	}

	projection := make([]Observation, 0, days)
	for i := 1; i <= days; i++ {
		projection = append(projection, Observation{
			Timestamp: last.Timestamp.Add(time.Duration(i) * 24 * time.Hour),
			Value:     round2(last.Value + slope*float64(i)),
		})
	}
	return projection
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
