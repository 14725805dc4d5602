// Package reminders computes the reminder schedule for a day. Delivering
// the reminders is left to the caller.
package reminders

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/misterclayt0n/regimen/internal/catalog"
	"github.com/misterclayt0n/regimen/internal/models"
	"github.com/misterclayt0n/regimen/internal/utils"
)

const (
	supplementDelay = 30 * time.Minute
	mealLead        = 15 * time.Minute
	bloodWorkLead   = 2
	bloodWorkHour   = 9
)

var waterHours = []int{10, 12, 14, 16, 18}

type Reminder struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Body    string    `json:"body"`
	At      time.Time `json:"at"`
	Repeats bool      `json:"repeats"` // Daily at the same clock time.
}

// Plan lists the reminders for the log's date, sorted by time. Daily
// reminders are placed on that date. Blood work reminders already in the
// past are left out. log and cycle may be nil.
func Plan(s utils.Settings, log *models.DayLog, cycle *models.Cycle, now time.Time) ([]Reminder, error) {
	if !s.NotificationsEnabled {
		return nil, nil
	}

	day := utils.StartOfDay(now)
	if log != nil {
		d, err := log.Day()
		if err != nil {
			return nil, err
		}
		day = d
	}

	morning, err := utils.ClockOn(day, s.MorningReminder)
	if err != nil {
		return nil, fmt.Errorf("morning reminder: %w", err)
	}
	evening, err := utils.ClockOn(day, s.EveningReminder)
	if err != nil {
		return nil, fmt.Errorf("evening reminder: %w", err)
	}

	plan := []Reminder{
		{
			ID:      "morning-reminder",
			Title:   "Good morning 💪",
			Body:    "Don't forget your morning supplements.",
			At:      morning,
			Repeats: true,
		},
		{
			ID:      "evening-reminder",
			Title:   "End of day check 📊",
			Body:    "Did you track every meal and supplement today?",
			At:      evening,
			Repeats: true,
		},
		{
			ID:      "supplement-reminder",
			Title:   "Today's supplements 💊",
			Body:    "Time to take " + advancedNames() + ".",
			At:      morning.Add(supplementDelay),
			Repeats: true,
		},
	}

	for _, h := range waterHours {
		plan = append(plan, Reminder{
			ID:      fmt.Sprintf("water-reminder-%d", h),
			Title:   "Hydration 💧",
			Body:    fmt.Sprintf("Drink some water. Goal: %.0f L a day.", catalog.WaterGoal),
			At:      time.Date(day.Year(), day.Month(), day.Day(), h, 0, 0, 0, day.Location()),
			Repeats: true,
		})
	}

	if log != nil {
		for _, m := range log.Meals {
			if m.ScheduledTime == "" {
				continue
			}
			at, err := utils.ClockOn(day, m.ScheduledTime)
			if err != nil {
				continue
			}
			plan = append(plan, Reminder{
				ID:    "meal-" + string(m.Kind),
				Title: m.Kind.DisplayName() + " 🍽️",
				Body:  "Get ready: " + truncate(m.Kind.Content(), 50),
				At:    at.Add(-mealLead),
			})
		}
	}

	if cycle != nil {
		for _, ms := range cycle.BloodWorkDates() {
			d := ms.Date.AddDate(0, 0, -bloodWorkLead)
			at := time.Date(d.Year(), d.Month(), d.Day(), bloodWorkHour, 0, 0, 0, d.Location())
			if at.Before(now) {
				continue
			}
			plan = append(plan, Reminder{
				ID:    fmt.Sprintf("bloodwork-w%d", ms.Week),
				Title: fmt.Sprintf("Blood work W%d 🩸", ms.Week),
				Body:  ms.Label + " is in 2 days.",
				At:    at,
			})
		}
	}

	sort.SliceStable(plan, func(i, j int) bool {
		if !plan[i].At.Equal(plan[j].At) {
			return plan[i].At.Before(plan[j].At)
		}
		return plan[i].ID < plan[j].ID
	})
	return plan, nil
}

func advancedNames() string {
	names := make([]string, 0, len(catalog.AdvancedSupplementKinds))
	for _, k := range catalog.AdvancedSupplementKinds {
		names = append(names, k.DisplayName())
	}
	return strings.Join(names, ", ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
