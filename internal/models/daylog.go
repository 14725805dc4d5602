package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/misterclayt0n/regimen/internal/catalog"
	"github.com/misterclayt0n/regimen/internal/regimen"
	"github.com/misterclayt0n/regimen/internal/utils"
)

// DayLog is the per-date aggregate. It owns its item collections; callers
// address items by ID through the log.
type DayLog struct {
	ID                  string                           `json:"id"`
	Date                string                           `json:"date"` // YYYY-MM-DD
	DayType             catalog.DayType                  `json:"day_type"`
	CycleWeek           int                              `json:"cycle_week"` // Captured at creation.
	WaterIntake         float64                          `json:"water_intake"`
	SleepHours          float64                          `json:"sleep_hours"`
	Weight              *float64                         `json:"weight"`
	Meals               []regimen.MealItem               `json:"meals"`
	Supplements         []regimen.SupplementItem         `json:"supplements"`
	AdvancedSupplements []regimen.AdvancedSupplementItem `json:"advanced_supplements"`
}

// MealSlot is one (meal, time) pair of a day's schedule.
type MealSlot struct {
	Kind          catalog.MealKind `json:"kind"`
	ScheduledTime string           `json:"scheduled_time"`
}

// NewDayLog creates the log for date and generates its items. This is the
// only place items are created.
func NewDayLog(date time.Time, dayType catalog.DayType, cycleWeek int) *DayLog {
	week := catalog.ClampWeek(cycleWeek)
	plan := regimen.Generate(dayType, week)
	return &DayLog{
		ID:                  uuid.New().String(),
		Date:                utils.DateKey(date),
		DayType:             dayType,
		CycleWeek:           week,
		Meals:               plan.Meals,
		Supplements:         plan.Supplements,
		AdvancedSupplements: plan.AdvancedSupplements,
	}
}

func (d *DayLog) completion(itemID string) *regimen.Completion {
	for i := range d.Meals {
		if d.Meals[i].ID == itemID {
			return &d.Meals[i].Completion
		}
	}
	for i := range d.Supplements {
		if d.Supplements[i].ID == itemID {
			return &d.Supplements[i].Completion
		}
	}
	for i := range d.AdvancedSupplements {
		if d.AdvancedSupplements[i].ID == itemID {
			return &d.AdvancedSupplements[i].Completion
		}
	}
	return nil
}

// HasItem reports whether itemID belongs to this log.
func (d *DayLog) HasItem(itemID string) bool {
	return d.completion(itemID) != nil
}

// Toggle flips an item's completion. It returns false if the log has no
// item with that ID.
func (d *DayLog) Toggle(itemID string, now time.Time) bool {
	c := d.completion(itemID)
	if c == nil {
		return false
	}
	c.Toggle(now)
	return true
}

// AddWater adjusts the intake by delta litres, never going below zero.
func (d *DayLog) AddWater(delta float64) {
	d.WaterIntake = max(0, d.WaterIntake+delta)
}

func (d *DayLog) SetSleepHours(h float64) {
	d.SleepHours = max(0, h)
}

// SetWeight records the weight in kg; nil clears it.
func (d *DayLog) SetWeight(w *float64) {
	if w == nil {
		d.Weight = nil
		return
	}
	v := *w
	d.Weight = &v
}

// ChangeDayType reschedules the existing meals for the new day type. It
// does not add or drop meals: a rest day switched to training keeps no
// pre/post training items, and a training day switched to rest keeps them
// with an empty time.
func (d *DayLog) ChangeDayType(dt catalog.DayType) {
	d.DayType = dt
	for i := range d.Meals {
		at, _ := d.Meals[i].Kind.ScheduledTime(dt)
		d.Meals[i].ScheduledTime = at
	}
}

// Reset clears every check-off and metric. The item set is kept as is.
func (d *DayLog) Reset() {
	for i := range d.Meals {
		d.Meals[i].Clear()
	}
	for i := range d.Supplements {
		d.Supplements[i].Clear()
	}
	for i := range d.AdvancedSupplements {
		d.AdvancedSupplements[i].Clear()
	}
	d.WaterIntake = 0
	d.SleepHours = 0
	d.Weight = nil
}

func (d *DayLog) MealCounts() (completed, total int) {
	for _, m := range d.Meals {
		if m.Completed {
			completed++
		}
	}
	return completed, len(d.Meals)
}

func (d *DayLog) SupplementCounts() (completed, total int) {
	for _, s := range d.Supplements {
		if s.Completed {
			completed++
		}
	}
	return completed, len(d.Supplements)
}

func (d *DayLog) AdvancedSupplementCounts() (completed, total int) {
	for _, a := range d.AdvancedSupplements {
		if a.Completed {
			completed++
		}
	}
	return completed, len(d.AdvancedSupplements)
}

// MealSchedule lists the meals that have a time slot, in display order.
func (d *DayLog) MealSchedule() []MealSlot {
	out := make([]MealSlot, 0, len(d.Meals))
	for _, m := range d.Meals {
		if m.ScheduledTime == "" {
			continue
		}
		out = append(out, MealSlot{Kind: m.Kind, ScheduledTime: m.ScheduledTime})
	}
	return out
}

// Day parses the date key back into local midnight.
func (d *DayLog) Day() (time.Time, error) {
	return utils.ParseDate(d.Date)
}
