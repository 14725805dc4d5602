package regimen

import (
	"time"

	"github.com/misterclayt0n/regimen/internal/catalog"
)

// Completion is the check-off state shared by every item.
type Completion struct {
	Completed   bool       `json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at"`
}

// Toggle flips the flag and stamps or clears CompletedAt with it.
func (c *Completion) Toggle(now time.Time) {
	c.Completed = !c.Completed
	if c.Completed {
		stamp := now
		c.CompletedAt = &stamp
	} else {
		c.CompletedAt = nil
	}
}

func (c *Completion) Clear() {
	c.Completed = false
	c.CompletedAt = nil
}

type MealItem struct {
	ID            string           `json:"id"`
	Kind          catalog.MealKind `json:"kind"`
	ScheduledTime string           `json:"scheduled_time"` // HH:MM, empty when the day type has no slot.
	Completion
}

type SupplementItem struct {
	ID     string                 `json:"id"`
	Kind   catalog.SupplementKind `json:"kind"`
	Slot   catalog.TimingSlot     `json:"timing_slot"`
	Dosage string                 `json:"dosage"`
	Completion
}

type AdvancedSupplementItem struct {
	ID     string                         `json:"id"`
	Kind   catalog.AdvancedSupplementKind `json:"kind"`
	Dosage string                         `json:"dosage"`
	Completion
}
