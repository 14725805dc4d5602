package utils

import (
	"testing"
	"time"
)

func TestDaysBetweenCountsCalendarDays(t *testing.T) {
	start := time.Date(2024, 1, 1, 22, 30, 0, 0, time.UTC)
	cases := []struct {
		to   time.Time
		want int
	}{
		{time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC), 0},
		{time.Date(2024, 1, 2, 0, 1, 0, 0, time.UTC), 1},
		{time.Date(2024, 1, 29, 9, 0, 0, 0, time.UTC), 28},
		{time.Date(2023, 12, 31, 9, 0, 0, 0, time.UTC), -1},
	}
	for _, c := range cases {
		if got := DaysBetween(start, c.to); got != c.want {
			t.Fatalf("DaysBetween(%v, %v) = %d, want %d", start, c.to, got, c.want)
		}
	}
}

func TestDaysBetweenAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	a := time.Date(2024, 3, 30, 12, 0, 0, 0, loc)
	b := time.Date(2024, 4, 1, 0, 30, 0, 0, loc)
	if got := DaysBetween(a, b); got != 2 {
		t.Fatalf("expected 2 days across DST change, got %d", got)
	}
}

func TestParseDateFormats(t *testing.T) {
	for _, in := range []string{"2024-02-07", "07/02/24"} {
		got, err := ParseDate(in)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", in, err)
		}
		if DateKey(got) != "2024-02-07" {
			t.Fatalf("ParseDate(%q) = %s", in, DateKey(got))
		}
	}
	if _, err := ParseDate("tomorrow"); err == nil {
		t.Fatalf("expected error for invalid date")
	}
}

func TestClockOn(t *testing.T) {
	day := time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)
	got, err := ClockOn(day, "19:50")
	if err != nil {
		t.Fatalf("ClockOn: %v", err)
	}
	if got.Hour() != 19 || got.Minute() != 50 || got.Day() != 10 {
		t.Fatalf("unexpected clock placement %v", got)
	}
	if _, err := ClockOn(day, "—"); err == nil {
		t.Fatalf("expected error for placeholder time")
	}
}
