package catalog

import (
	"strings"
	"time"
)

// DayType classifies a calendar day by its training slot.
type DayType string

const (
	DayEvening   DayType = "EVENING"   // Training at 20:00 (Monday, Wednesday, Thursday).
	DayMidday    DayType = "MIDDAY"    // Training at 12:30 (Friday).
	DayAfternoon DayType = "AFTERNOON" // Training at 17:00 (Saturday).
	DayRest      DayType = "REST"      // Tuesday, Sunday.
)

var DayTypes = []DayType{DayEvening, DayMidday, DayAfternoon, DayRest}

// Raw values written by older exports.
var legacyDayTypes = map[string]DayType{
	"SOIR":       DayEvening,
	"MIDI":       DayMidday,
	"APRÈS-MIDI": DayAfternoon,
	"APRES-MIDI": DayAfternoon,
	"REPOS":      DayRest,
}

// ParseDayType decodes a stored or user supplied day type.
// Anything it does not recognise falls back to DayEvening.
func ParseDayType(raw string) DayType {
	dt, ok := LookupDayType(raw)
	if !ok {
		return DayEvening
	}
	return dt
}

// LookupDayType is ParseDayType without the fallback.
func LookupDayType(raw string) (DayType, bool) {
	key := strings.ToUpper(strings.TrimSpace(raw))
	for _, dt := range DayTypes {
		if string(dt) == key {
			return dt, true
		}
	}
	if dt, ok := legacyDayTypes[key]; ok {
		return dt, true
	}
	return "", false
}

// DefaultDayType is the weekday-derived day type for date.
func DefaultDayType(date time.Time) DayType {
	switch date.Weekday() {
	case time.Monday, time.Wednesday, time.Thursday:
		return DayEvening
	case time.Friday:
		return DayMidday
	case time.Saturday:
		return DayAfternoon
	default:
		return DayRest
	}
}

func (d DayType) DisplayName() string {
	switch d {
	case DayEvening:
		return "Evening (20:00)"
	case DayMidday:
		return "Midday (12:30)"
	case DayAfternoon:
		return "Afternoon (17:00)"
	case DayRest:
		return "Rest"
	}
	return string(d)
}

// TrainingTime returns the session start, or false on rest days.
func (d DayType) TrainingTime() (string, bool) {
	switch d {
	case DayEvening:
		return "20:00", true
	case DayMidday:
		return "12:30", true
	case DayAfternoon:
		return "17:00", true
	}
	return "", false
}
