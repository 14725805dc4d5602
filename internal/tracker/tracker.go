// Package tracker runs the day log lifecycle on top of a Store. It is the
// only writer: every mutation loads one aggregate, changes it and saves it
// back while holding the tracker's lock. Feedback is sent once the lock is
// released, so a slow sink never holds up other callers.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/misterclayt0n/regimen/internal/catalog"
	"github.com/misterclayt0n/regimen/internal/models"
	"github.com/misterclayt0n/regimen/internal/scoring"
	"github.com/misterclayt0n/regimen/internal/utils"
)

var (
	ErrItemNotFound = errors.New("item not found")
	ErrDayNotFound  = errors.New("day log not found")
)

// Store is the persistence port. internal/storage implements it.
type Store interface {
	ActiveCycle(ctx context.Context) (*models.Cycle, error)
	ActivateCycle(ctx context.Context, c *models.Cycle) error
	SaveCycle(ctx context.Context, c *models.Cycle) error
	DayLogByDate(ctx context.Context, date string) (*models.DayLog, error)
	SaveDayLog(ctx context.Context, log *models.DayLog) error
	DeleteDayLog(ctx context.Context, date string) error
	ListDayLogs(ctx context.Context, limit int) ([]*models.DayLog, error)
	DayLogsBetween(ctx context.Context, from, to string) ([]*models.DayLog, error)
	DeleteAll(ctx context.Context) error
}

type Tracker struct {
	store    Store
	feedback Feedback
	Now      func() time.Time

	mu sync.Mutex
}

// New returns a tracker writing to store. fb may be nil.
func New(store Store, fb Feedback) *Tracker {
	if fb == nil {
		fb = Discard
	}
	return &Tracker{
		store:    store,
		feedback: fb,
		Now:      func() time.Time { return time.Now().In(utils.Loc) },
	}
}

func key(date time.Time) string {
	return utils.DateKey(date.In(utils.Loc))
}

// activeCycle returns the active cycle, starting one now if there is none.
// Callers hold mu.
func (t *Tracker) activeCycle(ctx context.Context, now time.Time) (*models.Cycle, error) {
	c, err := t.store.ActiveCycle(ctx)
	if err != nil {
		return nil, err
	}
	if c != nil {
		return c, nil
	}
	c = models.NewCycle(now)
	if err := t.store.ActivateCycle(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// day fetches or creates the log for date. Callers hold mu.
func (t *Tracker) day(ctx context.Context, date time.Time) (*models.DayLog, error) {
	log, err := t.store.DayLogByDate(ctx, key(date))
	if err != nil {
		return nil, err
	}
	if log != nil {
		return log, nil
	}

	now := t.Now()
	cycle, err := t.activeCycle(ctx, now)
	if err != nil {
		return nil, err
	}
	local := date.In(utils.Loc)
	log = models.NewDayLog(local, catalog.DefaultDayType(local), cycle.CurrentWeek(now))
	if err := t.store.SaveDayLog(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

// Day returns the log for date, creating it with the weekday's default day
// type and the active cycle's current week when it does not exist yet.
func (t *Tracker) Day(ctx context.Context, date time.Time) (*models.DayLog, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.day(ctx, date)
}

// mutate loads the log for date, applies fn and saves the result. fn
// returns the kind of feedback to emit.
func (t *Tracker) mutate(ctx context.Context, date time.Time, action string, fn func(log *models.DayLog, now time.Time) (EventKind, error)) (*models.DayLog, error) {
	log, kind, err := t.apply(ctx, date, action, fn)
	if err != nil {
		return nil, err
	}
	t.notify(kind, action, log)
	return log, nil
}

func (t *Tracker) apply(ctx context.Context, date time.Time, action string, fn func(log *models.DayLog, now time.Time) (EventKind, error)) (*models.DayLog, EventKind, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	log, err := t.day(ctx, date)
	if err != nil {
		return nil, "", err
	}
	kind, err := fn(log, t.Now())
	if err != nil {
		return nil, "", err
	}
	if err := t.store.SaveDayLog(ctx, log); err != nil {
		return nil, "", fmt.Errorf("Failed to %s: %w", action, err)
	}
	return log, kind, nil
}

// locked runs fn while holding mu.
func (t *Tracker) locked(fn func() error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn()
}

func (t *Tracker) notify(kind EventKind, action string, log *models.DayLog) {
	score := scoring.DailyScore(log)
	t.feedback.Notify(Event{
		Kind:    kind,
		Action:  action,
		Date:    log.Date,
		Score:   score,
		Percent: scoring.Percent(score),
		Log:     log,
	})
}

// Toggle flips one item's completion on date.
func (t *Tracker) Toggle(ctx context.Context, date time.Time, itemID string) (*models.DayLog, error) {
	return t.mutate(ctx, date, "toggle item", func(log *models.DayLog, now time.Time) (EventKind, error) {
		if !log.Toggle(itemID, now) {
			return "", fmt.Errorf("%s on %s: %w", itemID, log.Date, ErrItemNotFound)
		}
		if isCompleted(log, itemID) {
			return EventSuccess, nil
		}
		return EventWarning, nil
	})
}

func isCompleted(log *models.DayLog, itemID string) bool {
	for _, m := range log.Meals {
		if m.ID == itemID {
			return m.Completed
		}
	}
	for _, s := range log.Supplements {
		if s.ID == itemID {
			return s.Completed
		}
	}
	for _, a := range log.AdvancedSupplements {
		if a.ID == itemID {
			return a.Completed
		}
	}
	return false
}

// AddWater adjusts the day's water intake by delta litres.
func (t *Tracker) AddWater(ctx context.Context, date time.Time, delta float64) (*models.DayLog, error) {
	return t.mutate(ctx, date, "update water", func(log *models.DayLog, _ time.Time) (EventKind, error) {
		log.AddWater(delta)
		return EventSuccess, nil
	})
}

func (t *Tracker) SetSleep(ctx context.Context, date time.Time, hours float64) (*models.DayLog, error) {
	return t.mutate(ctx, date, "update sleep", func(log *models.DayLog, _ time.Time) (EventKind, error) {
		log.SetSleepHours(hours)
		return EventSuccess, nil
	})
}

// SetWeight records the day's weight; nil clears it.
func (t *Tracker) SetWeight(ctx context.Context, date time.Time, kg *float64) (*models.DayLog, error) {
	return t.mutate(ctx, date, "update weight", func(log *models.DayLog, _ time.Time) (EventKind, error) {
		log.SetWeight(kg)
		return EventSuccess, nil
	})
}

func (t *Tracker) ChangeDayType(ctx context.Context, date time.Time, dt catalog.DayType) (*models.DayLog, error) {
	return t.mutate(ctx, date, "change day type", func(log *models.DayLog, _ time.Time) (EventKind, error) {
		log.ChangeDayType(dt)
		return EventSuccess, nil
	})
}

// Reset clears the day's check-offs and metrics.
func (t *Tracker) Reset(ctx context.Context, date time.Time) (*models.DayLog, error) {
	return t.mutate(ctx, date, "reset day", func(log *models.DayLog, _ time.Time) (EventKind, error) {
		log.Reset()
		return EventWarning, nil
	})
}

// Delete removes the log for date. A later Day call recreates it fresh.
func (t *Tracker) Delete(ctx context.Context, date time.Time) error {
	k := key(date)
	err := t.locked(func() error {
		log, err := t.store.DayLogByDate(ctx, k)
		if err != nil {
			return err
		}
		if log == nil {
			return fmt.Errorf("%s: %w", k, ErrDayNotFound)
		}
		return t.store.DeleteDayLog(ctx, k)
	})
	if err != nil {
		return err
	}
	t.feedback.Notify(Event{Kind: EventWarning, Action: "delete day", Date: k})
	return nil
}

// ActiveCycle returns the active cycle, starting one today if none exists.
func (t *Tracker) ActiveCycle(ctx context.Context) (*models.Cycle, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.activeCycle(ctx, t.Now())
}

// StartNewCycle ends the current cycle and starts a new one now.
func (t *Tracker) StartNewCycle(ctx context.Context) (*models.Cycle, error) {
	var c *models.Cycle
	err := t.locked(func() error {
		c = models.NewCycle(t.Now())
		return t.store.ActivateCycle(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	t.feedback.Notify(Event{Kind: EventSuccess, Action: "start cycle", Date: key(c.StartDate)})
	return c, nil
}

// SetCycleStart moves the active cycle's start date. Logs keep the week
// they were created with.
func (t *Tracker) SetCycleStart(ctx context.Context, start time.Time) (*models.Cycle, error) {
	var c *models.Cycle
	err := t.locked(func() error {
		var err error
		c, err = t.activeCycle(ctx, t.Now())
		if err != nil {
			return err
		}
		c.StartDate = utils.StartOfDay(start.In(utils.Loc))
		return t.store.SaveCycle(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	t.feedback.Notify(Event{Kind: EventSuccess, Action: "edit cycle start", Date: key(c.StartDate)})
	return c, nil
}

// DeleteAllData removes every log and cycle.
func (t *Tracker) DeleteAllData(ctx context.Context) error {
	if err := t.locked(func() error { return t.store.DeleteAll(ctx) }); err != nil {
		return err
	}
	t.feedback.Notify(Event{Kind: EventWarning, Action: "delete all data"})
	return nil
}
