package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/misterclayt0n/regimen/internal/catalog"
	"github.com/misterclayt0n/regimen/internal/utils"
)

// Cycle is one 8 week dosing period. Every derived value takes now
// explicitly and is clamped into range.
type Cycle struct {
	ID        string    `json:"id"`
	StartDate time.Time `json:"start_date"`
	IsActive  bool      `json:"is_active"`
}

type Milestone struct {
	Week  int       `json:"week"`
	Date  time.Time `json:"date"`
	Label string    `json:"label"`
}

type WeekStatus int

const (
	WeekUpcoming WeekStatus = iota
	WeekCurrent
	WeekPast
)

func NewCycle(start time.Time) *Cycle {
	return &Cycle{
		ID:        uuid.New().String(),
		StartDate: start,
		IsActive:  true,
	}
}

func (c *Cycle) daysElapsed(now time.Time) int {
	return utils.DaysBetween(c.StartDate, now)
}

// CurrentDay is in 1..56.
func (c *Cycle) CurrentDay(now time.Time) int {
	return catalog.ClampDay(c.daysElapsed(now) + 1)
}

// CurrentWeek is in 1..8.
func (c *Cycle) CurrentWeek(now time.Time) int {
	days := c.daysElapsed(now)
	if days < 0 {
		return 1
	}
	return catalog.ClampWeek(days/7 + 1)
}

func (c *Cycle) Progress(now time.Time) float64 {
	return float64(c.CurrentDay(now)) / float64(catalog.CycleDays)
}

func (c *Cycle) DaysRemaining(now time.Time) int {
	return max(catalog.CycleDays-c.CurrentDay(now), 0)
}

func (c *Cycle) EndDate() time.Time {
	return c.StartDate.AddDate(0, 0, catalog.CycleDays)
}

func (c *Cycle) IsCompleted(now time.Time) bool {
	return !now.Before(c.EndDate())
}

// BloodWorkDates returns the week 4, 8 and 12 checkpoints.
func (c *Cycle) BloodWorkDates() []Milestone {
	labels := map[int]string{4: "mid-cycle", 8: "end of cycle", 12: "post-cycle"}
	out := make([]Milestone, 0, len(catalog.BloodWorkWeeks))
	for _, w := range catalog.BloodWorkWeeks {
		out = append(out, Milestone{
			Week:  w,
			Date:  c.StartDate.AddDate(0, 0, 7*w),
			Label: fmt.Sprintf("Blood work W%d (%s)", w, labels[w]),
		})
	}
	return out
}

// Status places a cycle week relative to the current one.
func (c *Cycle) Status(week int, now time.Time) WeekStatus {
	current := c.CurrentWeek(now)
	switch {
	case week < current:
		return WeekPast
	case week == current:
		return WeekCurrent
	}
	return WeekUpcoming
}
