// Package trend classifies a metric history as rising, falling or stable.
package trend

import (
	"math"
	"sort"
	"time"
)

type Label string

const (
	Rising  Label = "rising"
	Falling Label = "falling"
	Stable  Label = "stable"
)

// Metric tells Classify which direction counts as improvement.
type Metric int

const (
	// Rating is higher-is-better (UTR).
	Rating Metric = iota
	// Ranking is lower-is-better (national ranking).
	Ranking
)

const (
	ratingThreshold  = 0.5
	rankingThreshold = 2
)

type Point struct {
	Date  time.Time
	Value float64
}

// Classify compares the latest point with the earliest one. The magnitude is
// the plain endpoint difference: rounded to two decimals for ratings, a whole
// number for rankings. Fewer than two points is always stable with 0.
func Classify(metric Metric, points []Point) (Label, float64) {
	if len(points) < 2 {
		return Stable, 0
	}

	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	delta := sorted[len(sorted)-1].Value - sorted[0].Value

	switch metric {
	case Ranking:
		delta = math.Round(delta)
		switch {
		case delta <= -rankingThreshold:
			return Rising, delta
		case delta >= rankingThreshold:
			return Falling, delta
		}
		return Stable, delta
	default:
		delta = math.Round(delta*100) / 100
		switch {
		case delta >= ratingThreshold:
			return Rising, delta
		case delta <= -ratingThreshold:
			return Falling, delta
		}
		return Stable, delta
	}
}
