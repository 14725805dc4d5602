package tracker

import "github.com/misterclayt0n/regimen/internal/models"

type EventKind string

const (
	EventSuccess EventKind = "success"
	EventWarning EventKind = "warning"
)

// Event describes a finished mutation. Log is nil for events that are not
// about a single day.
type Event struct {
	Kind    EventKind      `json:"kind"`
	Action  string         `json:"action"`
	Date    string         `json:"date,omitempty"`
	Score   float64        `json:"score"`
	Percent int            `json:"percent"`
	Log     *models.DayLog `json:"day_log,omitempty"`
}

// Feedback receives an event after each successful mutation.
type Feedback interface {
	Notify(Event)
}

type FeedbackFunc func(Event)

func (f FeedbackFunc) Notify(e Event) { f(e) }

// Discard drops every event.
var Discard Feedback = FeedbackFunc(func(Event) {})
