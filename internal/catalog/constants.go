// Package catalog holds the fixed regimen tables: day types, meals,
// supplements and the week-gated advanced supplements.
package catalog

const (
	CycleWeeks = 8
	CycleDays  = CycleWeeks * 7

	WaterGoal    = 3.0 // Litres.
	SleepMinGoal = 7.0 // Hours.
	SleepMaxGoal = 9.0
	SleepMinOK   = 6.0

	CaloriesGoal = 2280
	ProteinGoal  = 316 // Grams.
	CarbsGoal    = 120
	FatGoal      = 60
)

// BloodWorkWeeks are the weeks after the cycle start when blood work is due.
// Week 12 is a post-cycle check.
var BloodWorkWeeks = []int{4, 8, 12}

func ClampWeek(week int) int {
	return clamp(week, 1, CycleWeeks)
}

func ClampDay(day int) int {
	return clamp(day, 1, CycleDays)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
