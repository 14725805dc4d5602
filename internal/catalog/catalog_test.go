package catalog_test

import (
	"testing"
	"time"

	"github.com/misterclayt0n/regimen/internal/catalog"
)

func TestParseDayTypeFallsBackToEvening(t *testing.T) {
	t.Parallel()
	cases := map[string]catalog.DayType{
		"EVENING":    catalog.DayEvening,
		"rest":       catalog.DayRest,
		" Midday ":   catalog.DayMidday,
		"REPOS":      catalog.DayRest,
		"APRÈS-MIDI": catalog.DayAfternoon,
		"":           catalog.DayEvening,
		"garbage":    catalog.DayEvening,
	}
	for raw, want := range cases {
		if got := catalog.ParseDayType(raw); got != want {
			t.Fatalf("ParseDayType(%q) = %s, want %s", raw, got, want)
		}
	}
	if _, ok := catalog.LookupDayType("garbage"); ok {
		t.Fatalf("expected lookup of unknown day type to fail")
	}
}

func TestDefaultDayTypeByWeekday(t *testing.T) {
	t.Parallel()
	// 2024-01-01 is a Monday.
	want := []catalog.DayType{
		catalog.DayEvening,   // Mon
		catalog.DayRest,      // Tue
		catalog.DayEvening,   // Wed
		catalog.DayEvening,   // Thu
		catalog.DayMidday,    // Fri
		catalog.DayAfternoon, // Sat
		catalog.DayRest,      // Sun
	}
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, w := range want {
		d := start.AddDate(0, 0, i)
		if got := catalog.DefaultDayType(d); got != w {
			t.Fatalf("%s: expected %s, got %s", d.Weekday(), w, got)
		}
	}
}

func TestMealScheduleTable(t *testing.T) {
	t.Parallel()
	if got, ok := catalog.PreTraining.ScheduledTime(catalog.DayEvening); !ok || got != "19:50" {
		t.Fatalf("expected evening pre-training at 19:50, got %q %v", got, ok)
	}
	if got, _ := catalog.Meal1.ScheduledTime(catalog.DayRest); got != "08:00" {
		t.Fatalf("expected rest meal 1 at 08:00, got %q", got)
	}
	if got, _ := catalog.PostTraining.ScheduledTime(catalog.DayMidday); got != "13:45" {
		t.Fatalf("expected midday post-training at 13:45, got %q", got)
	}
	for _, k := range []catalog.MealKind{catalog.PreTraining, catalog.PostTraining} {
		if _, ok := k.ScheduledTime(catalog.DayRest); ok {
			t.Fatalf("%s should have no rest-day time", k)
		}
		if k.IsAvailable(catalog.DayRest) {
			t.Fatalf("%s should not be available on rest days", k)
		}
	}
	for _, dt := range catalog.DayTypes {
		for _, k := range catalog.MealKinds {
			_, ok := k.ScheduledTime(dt)
			if ok != k.IsAvailable(dt) {
				t.Fatalf("%s/%s: table and availability disagree", dt, k)
			}
		}
	}
}

func TestSupplementSlotsTotalNine(t *testing.T) {
	t.Parallel()
	total := 0
	for _, k := range catalog.SupplementKinds {
		total += len(k.TimingSlots())
	}
	if total != 9 {
		t.Fatalf("expected 9 supplement slots, got %d", total)
	}
	if n := len(catalog.FishOil.TimingSlots()); n != 3 {
		t.Fatalf("expected fish oil in 3 slots, got %d", n)
	}
	if catalog.ParseSupplementKind("unknown") != catalog.Zinc {
		t.Fatalf("expected unknown supplement to decode to zinc")
	}
}

func TestAdvancedDosageByWeek(t *testing.T) {
	t.Parallel()
	type want struct {
		dose   string
		active bool
	}
	cases := []struct {
		kind catalog.AdvancedSupplementKind
		week int
		want want
	}{
		{catalog.RAD140, 1, want{"10mg", true}},
		{catalog.RAD140, 4, want{"10mg", true}},
		{catalog.RAD140, 5, want{"15mg", true}},
		{catalog.Cardarine, 8, want{"20mg", true}},
		{catalog.Albuterol, 2, want{"4mg", true}},
		{catalog.Albuterol, 3, want{"8mg", true}},
		{catalog.Albuterol, 6, want{"8mg", true}},
		{catalog.Albuterol, 7, want{"10mg", true}},
		{catalog.Enclomiphene, 4, want{"", false}},
		{catalog.Enclomiphene, 5, want{"12.5mg", true}},
		// Out of range weeks are clamped.
		{catalog.RAD140, 0, want{"10mg", true}},
		{catalog.Albuterol, 12, want{"10mg", true}},
	}
	for _, c := range cases {
		dose, ok := c.kind.Dosage(c.week)
		if dose != c.want.dose || ok != c.want.active || c.kind.IsActive(c.week) != c.want.active {
			t.Fatalf("%s week %d: got (%q, %v), want %+v", c.kind, c.week, dose, ok, c.want)
		}
	}
}
