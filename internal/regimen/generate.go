// Package regimen builds the list of items due on a day.
package regimen

import (
	"github.com/google/uuid"
	"github.com/misterclayt0n/regimen/internal/catalog"
)

// Plan is the generated item set for one day.
type Plan struct {
	Meals               []MealItem
	Supplements         []SupplementItem
	AdvancedSupplements []AdvancedSupplementItem
}

// Generate derives the meals, supplements and advanced supplements for a
// day type and cycle week. Items come out in catalog order with fresh IDs.
func Generate(dayType catalog.DayType, cycleWeek int) Plan {
	var plan Plan

	for _, kind := range catalog.MealKinds {
		if !kind.IsAvailable(dayType) {
			continue
		}
		at, _ := kind.ScheduledTime(dayType)
		plan.Meals = append(plan.Meals, MealItem{
			ID:            uuid.New().String(),
			Kind:          kind,
			ScheduledTime: at,
		})
	}

	for _, kind := range catalog.SupplementKinds {
		for _, slot := range kind.TimingSlots() {
			plan.Supplements = append(plan.Supplements, SupplementItem{
				ID:     uuid.New().String(),
				Kind:   kind,
				Slot:   slot,
				Dosage: kind.Dosage(),
			})
		}
	}

	for _, kind := range catalog.AdvancedSupplementKinds {
		dosage, ok := kind.Dosage(cycleWeek)
		if !ok {
			continue
		}
		plan.AdvancedSupplements = append(plan.AdvancedSupplements, AdvancedSupplementItem{
			ID:     uuid.New().String(),
			Kind:   kind,
			Dosage: dosage,
		})
	}

	return plan
}
