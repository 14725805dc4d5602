// Package scoring reduces a day log to its weighted completion score.
package scoring

import (
	"github.com/misterclayt0n/regimen/internal/catalog"
	"github.com/misterclayt0n/regimen/internal/models"
)

// Category weights in percent; they sum to 100.
const (
	mealWeight       = 40
	supplementWeight = 25
	advancedWeight   = 15
	waterWeight      = 10
	sleepWeight      = 10
)

type SleepStatus int

const (
	SleepInsufficient SleepStatus = iota // Under 6h or over 9h.
	SleepAcceptable                      // 6h to 7h.
	SleepOptimal                         // 7h to 9h.
)

func (s SleepStatus) String() string {
	switch s {
	case SleepOptimal:
		return "optimal"
	case SleepAcceptable:
		return "acceptable"
	}
	return "insufficient"
}

type Band int

const (
	BandPoor Band = iota
	BandFair
	BandGood
)

func (b Band) String() string {
	switch b {
	case BandGood:
		return "good"
	case BandFair:
		return "fair"
	}
	return "poor"
}

// Breakdown holds each category's 0..1 sub-score.
type Breakdown struct {
	Meals               float64 `json:"meals"`
	Supplements         float64 `json:"supplements"`
	AdvancedSupplements float64 `json:"advanced_supplements"`
	Water               float64 `json:"water"`
	Sleep               float64 `json:"sleep"`
}

func ratio(done, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total)
}

func SleepStatusFor(hours float64) SleepStatus {
	switch {
	case hours >= catalog.SleepMinGoal && hours <= catalog.SleepMaxGoal:
		return SleepOptimal
	case hours >= catalog.SleepMinOK && hours < catalog.SleepMinGoal:
		return SleepAcceptable
	}
	return SleepInsufficient
}

func sleepScore(hours float64) float64 {
	switch SleepStatusFor(hours) {
	case SleepOptimal:
		return 1.0
	case SleepAcceptable:
		return 0.7
	}
	return 0.3
}

// WaterProgress is the share of the daily water goal reached, capped at 1.
func WaterProgress(litres float64) float64 {
	return min(max(litres, 0)/catalog.WaterGoal, 1.0)
}

// BreakdownOf computes the per category sub-scores.
func BreakdownOf(log *models.DayLog) Breakdown {
	return Breakdown{
		Meals:               ratio(log.MealCounts()),
		Supplements:         ratio(log.SupplementCounts()),
		AdvancedSupplements: ratio(log.AdvancedSupplementCounts()),
		Water:               WaterProgress(log.WaterIntake),
		Sleep:               sleepScore(log.SleepHours),
	}
}

// Total combines the sub-scores with the category weights.
func (b Breakdown) Total() float64 {
	sum := mealWeight*b.Meals +
		supplementWeight*b.Supplements +
		advancedWeight*b.AdvancedSupplements +
		waterWeight*b.Water +
		sleepWeight*b.Sleep
	return sum / 100
}

// DailyScore is the weighted completion of a day in 0..1. Empty categories
// contribute nothing.
func DailyScore(log *models.DayLog) float64 {
	return BreakdownOf(log).Total()
}

// Percent truncates a score to a whole percentage. The epsilon absorbs
// float noise so that e.g. 0.65 does not display as 64.
func Percent(score float64) int {
	return int(score*100 + 1e-9)
}

func BandFor(percent int) Band {
	switch {
	case percent >= 80:
		return BandGood
	case percent >= 50:
		return BandFair
	}
	return BandPoor
}
