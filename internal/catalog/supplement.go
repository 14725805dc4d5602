package catalog

import "strings"

type TimingSlot string

const (
	SlotMorning TimingSlot = "MORNING"
	SlotMidday  TimingSlot = "MIDDAY"
	SlotEvening TimingSlot = "EVENING"
)

// ParseTimingSlot decodes a stored slot, defaulting to SlotMorning.
func ParseTimingSlot(raw string) TimingSlot {
	switch TimingSlot(strings.ToUpper(strings.TrimSpace(raw))) {
	case SlotMidday:
		return SlotMidday
	case SlotEvening:
		return SlotEvening
	}
	return SlotMorning
}

func (s TimingSlot) DisplayName() string {
	switch s {
	case SlotMidday:
		return "Midday"
	case SlotEvening:
		return "Evening"
	}
	return "Morning"
}

type SupplementKind string

const (
	Zinc      SupplementKind = "ZINC"
	VitaminD3 SupplementKind = "VIT_D3"
	FishOil   SupplementKind = "FISH_OIL"
	NAC       SupplementKind = "NAC"
	Taurine   SupplementKind = "TAURINE"
	Magnesium SupplementKind = "MAGNESIUM"
)

var SupplementKinds = []SupplementKind{Zinc, VitaminD3, FishOil, NAC, Taurine, Magnesium}

type supplementInfo struct {
	name   string
	dosage string
	slots  []TimingSlot
	icon   string
	note   string
}

var supplements = map[SupplementKind]supplementInfo{
	Zinc:      {"Zinc (picolinate)", "25-30mg", []TimingSlot{SlotEvening}, "pill", "Before sleep"},
	VitaminD3: {"Vitamin D3", "5000-10000 UI", []TimingSlot{SlotMorning}, "sun.max", "With avocado (Meal 2)"},
	FishOil:   {"Fish oil (omega 3)", "2 capsules", []TimingSlot{SlotMorning, SlotMidday, SlotEvening}, "drop", ""},
	NAC:       {"NAC", "500mg", []TimingSlot{SlotMorning, SlotEvening}, "cross.vial", ""},
	Taurine:   {"Taurine", "3-5g", []TimingSlot{SlotMorning}, "bolt", ""},
	Magnesium: {"Magnesium B6", "1 dose", []TimingSlot{SlotEvening}, "moon.stars", "Before sleep"},
}

// ParseSupplementKind decodes a stored kind, defaulting to Zinc.
func ParseSupplementKind(raw string) SupplementKind {
	key := SupplementKind(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := supplements[key]; ok {
		return key
	}
	return Zinc
}

func (s SupplementKind) DisplayName() string { return supplements[s].name }
func (s SupplementKind) Dosage() string      { return supplements[s].dosage }
func (s SupplementKind) Icon() string        { return supplements[s].icon }

// Note is an optional intake hint.
func (s SupplementKind) Note() (string, bool) {
	n := supplements[s].note
	return n, n != ""
}

// TimingSlots returns a copy of the slots the supplement is taken in.
func (s SupplementKind) TimingSlots() []TimingSlot {
	return append([]TimingSlot(nil), supplements[s].slots...)
}
