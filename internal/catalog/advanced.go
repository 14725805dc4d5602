package catalog

import "strings"

type AdvancedSupplementKind string

const (
	RAD140       AdvancedSupplementKind = "RAD_140"
	Cardarine    AdvancedSupplementKind = "CARDARINE"
	Albuterol    AdvancedSupplementKind = "ALBUTEROL"
	Enclomiphene AdvancedSupplementKind = "ENCLOMIPHENE"
)

var AdvancedSupplementKinds = []AdvancedSupplementKind{RAD140, Cardarine, Albuterol, Enclomiphene}

// AdvancedTiming is shared by every advanced supplement.
const AdvancedTiming = "On waking"

// ParseAdvancedSupplementKind decodes a stored kind, defaulting to RAD140.
func ParseAdvancedSupplementKind(raw string) AdvancedSupplementKind {
	key := AdvancedSupplementKind(strings.ToUpper(strings.TrimSpace(raw)))
	for _, k := range AdvancedSupplementKinds {
		if k == key {
			return k
		}
	}
	return RAD140
}

func (a AdvancedSupplementKind) DisplayName() string {
	switch a {
	case RAD140:
		return "RAD-140"
	case Cardarine:
		return "Cardarine"
	case Albuterol:
		return "Albuterol"
	case Enclomiphene:
		return "Enclomiphene"
	}
	return string(a)
}

func (a AdvancedSupplementKind) Icon() string {
	switch a {
	case RAD140:
		return "bolt.circle"
	case Cardarine:
		return "flame"
	case Albuterol:
		return "wind"
	case Enclomiphene:
		return "arrow.up.heart"
	}
	return ""
}

// Dosage returns the dose for a cycle week, or false when the compound is
// not taken that week. Weeks are clamped into 1..8 first.
func (a AdvancedSupplementKind) Dosage(week int) (string, bool) {
	week = ClampWeek(week)
	switch a {
	case RAD140:
		if week <= 4 {
			return "10mg", true
		}
		return "15mg", true
	case Cardarine:
		return "20mg", true
	case Albuterol:
		switch {
		case week <= 2:
			return "4mg", true
		case week <= 6:
			return "8mg", true
		default:
			return "10mg", true
		}
	case Enclomiphene:
		if week >= 5 {
			return "12.5mg", true
		}
	}
	return "", false
}

func (a AdvancedSupplementKind) IsActive(week int) bool {
	_, ok := a.Dosage(week)
	return ok
}
