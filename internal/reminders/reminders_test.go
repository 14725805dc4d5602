package reminders_test

import (
	"testing"
	"time"

	"github.com/misterclayt0n/regimen/internal/catalog"
	"github.com/misterclayt0n/regimen/internal/models"
	"github.com/misterclayt0n/regimen/internal/reminders"
	"github.com/misterclayt0n/regimen/internal/utils"
)

var now = time.Date(2024, 1, 29, 6, 0, 0, 0, time.Local)

func enabled() utils.Settings {
	s := utils.DefaultSettings()
	s.NotificationsEnabled = true
	return s
}

func byID(plan []reminders.Reminder) map[string]reminders.Reminder {
	out := make(map[string]reminders.Reminder, len(plan))
	for _, r := range plan {
		out[r.ID] = r
	}
	return out
}

func TestDisabledPlanIsEmpty(t *testing.T) {
	log := models.NewDayLog(now, catalog.DayEvening, 1)
	plan, err := reminders.Plan(utils.DefaultSettings(), log, models.NewCycle(now), now)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	if len(plan) != 0 {
		t.Fatalf("expected no reminders when notifications are off, got %d", len(plan))
	}
}

func TestPlanForTrainingDay(t *testing.T) {
	log := models.NewDayLog(now, catalog.DayEvening, 1)
	cycle := models.NewCycle(utils.StartOfDay(now))

	plan, err := reminders.Plan(enabled(), log, cycle, now)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	// 3 daily + 5 water + 8 meals + 3 blood work.
	if len(plan) != 19 {
		t.Fatalf("expected 19 reminders, got %d", len(plan))
	}
	for i := 1; i < len(plan); i++ {
		if plan[i].At.Before(plan[i-1].At) {
			t.Fatalf("plan not sorted at %d: %v before %v", i, plan[i].At, plan[i-1].At)
		}
	}

	got := byID(plan)
	clock := func(id string) string { return got[id].At.Format("2006-01-02 15:04") }

	cases := map[string]string{
		"morning-reminder":    "2024-01-29 07:00",
		"supplement-reminder": "2024-01-29 07:30",
		"evening-reminder":    "2024-01-29 21:00",
		"water-reminder-14":   "2024-01-29 14:00",
		"meal-MEAL_1":         "2024-01-29 06:45",
		"meal-PRE_TRAINING":   "2024-01-29 19:35",
		"meal-BEFORE_SLEEP":   "2024-01-29 23:15",
		"bloodwork-w4":        "2024-02-24 09:00",
		"bloodwork-w12":       "2024-04-20 09:00",
	}
	for id, want := range cases {
		if _, ok := got[id]; !ok {
			t.Fatalf("missing reminder %s", id)
		}
		if clock(id) != want {
			t.Fatalf("%s at %s, want %s", id, clock(id), want)
		}
	}
	if !got["water-reminder-10"].Repeats || got["meal-MEAL_2"].Repeats || got["bloodwork-w8"].Repeats {
		t.Fatalf("unexpected repeat flags")
	}
}

func TestPlanSkipsUnscheduledMealsAndPastBloodWork(t *testing.T) {
	log := models.NewDayLog(now, catalog.DayEvening, 1)
	log.ChangeDayType(catalog.DayRest)
	cycle := models.NewCycle(time.Date(2023, 12, 1, 0, 0, 0, 0, time.Local))

	plan, err := reminders.Plan(enabled(), log, cycle, now)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	got := byID(plan)
	if _, ok := got["meal-PRE_TRAINING"]; ok {
		t.Fatalf("meals without a time slot must not be planned")
	}
	if _, ok := got["bloodwork-w4"]; ok {
		t.Fatalf("past blood work must be skipped")
	}
	if _, ok := got["bloodwork-w8"]; ok {
		t.Fatalf("past blood work must be skipped")
	}
	if _, ok := got["bloodwork-w12"]; !ok {
		t.Fatalf("expected the week 12 reminder")
	}
}

func TestTiesSortByID(t *testing.T) {
	s := enabled()
	s.MorningReminder = "06:15"
	log := models.NewDayLog(now, catalog.DayEvening, 1)

	plan, err := reminders.Plan(s, log, nil, now)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	// Meal 1 at 07:00 and the supplement reminder both land on 06:45.
	if plan[0].ID != "morning-reminder" || plan[1].ID != "meal-MEAL_1" || plan[2].ID != "supplement-reminder" {
		t.Fatalf("unexpected order: %s, %s, %s", plan[0].ID, plan[1].ID, plan[2].ID)
	}
}

func TestInvalidReminderTime(t *testing.T) {
	s := enabled()
	s.EveningReminder = "9pm"
	if _, err := reminders.Plan(s, nil, nil, now); err == nil {
		t.Fatalf("expected an error for a malformed reminder time")
	}
}
