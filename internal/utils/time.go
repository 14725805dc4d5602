package utils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar key used for day logs.
const DateLayout = "2006-01-02"

// Loc is the zone calendar days are cut in. The CLI installs the configured
// timezone with SetLocation.
var Loc = time.Local

// SetLocation loads and installs the named zone ("" and "Local" keep time.Local).
func SetLocation(name string) error {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "Local") {
		Loc = time.Local
		return nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("Failed to load location %s: %w", name, err)
	}
	Loc = loc
	return nil
}

// DateKey formats t as a YYYY-MM-DD key in its own zone.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate accepts YYYY-MM-DD or DD/MM/YY and returns local midnight.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.ParseInLocation(DateLayout, s, Loc)
	if err != nil {
		t, err = time.ParseInLocation("02/01/06", s, Loc)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}

// StartOfDay truncates t to midnight in t's zone.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween counts calendar days from a to b, reading both in a's zone.
// It is negative when b is before a.
func DaysBetween(a, b time.Time) int {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.In(a.Location()).Date()
	from := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	to := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// ClockOn places an HH:MM clock reading on the calendar day of date.
func ClockOn(date time.Time, clock string) (time.Time, error) {
	c, err := time.Parse("15:04", strings.TrimSpace(clock))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q (expected HH:MM)", clock)
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, c.Hour(), c.Minute(), 0, 0, date.Location()), nil
}
