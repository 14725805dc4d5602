package scoring

import (
	"math"

	"github.com/misterclayt0n/regimen/internal/models"
)

// The helpers below expect logs ordered newest first, as storage returns them.

// AverageScore is the integer mean of the logs' percents.
func AverageScore(logs []*models.DayLog) int {
	if len(logs) == 0 {
		return 0
	}
	total := 0
	for _, l := range logs {
		total += Percent(DailyScore(l))
	}
	return total / len(logs)
}

// WeeklyAverage averages the newest seven logs.
func WeeklyAverage(logs []*models.DayLog) int {
	return AverageScore(logs[:min(len(logs), 7)])
}

type Trend struct {
	Change float64 `json:"change"` // Absolute kg difference.
	Gain   bool    `json:"gain"`
}

// WeightTrend compares the newest and oldest weights among the newest seven
// weighed logs. It reports false with fewer than two weights.
func WeightTrend(logs []*models.DayLog) (Trend, bool) {
	var weights []float64
	for _, l := range logs {
		if l.Weight == nil {
			continue
		}
		weights = append(weights, *l.Weight)
		if len(weights) == 7 {
			break
		}
	}
	if len(weights) < 2 {
		return Trend{}, false
	}
	diff := weights[0] - weights[len(weights)-1]
	return Trend{Change: math.Abs(diff), Gain: diff >= 0}, true
}

type WeightPoint struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

// WeightSeries returns up to 14 recorded weights, oldest first.
func WeightSeries(logs []*models.DayLog) []WeightPoint {
	var points []WeightPoint
	for _, l := range logs {
		if l.Weight == nil {
			continue
		}
		points = append(points, WeightPoint{Date: l.Date, Weight: *l.Weight})
		if len(points) == 14 {
			break
		}
	}
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
	return points
}
