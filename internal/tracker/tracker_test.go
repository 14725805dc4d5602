package tracker_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/misterclayt0n/regimen/internal/catalog"
	"github.com/misterclayt0n/regimen/internal/storage"
	"github.com/misterclayt0n/regimen/internal/tracker"
)

// Monday.
var now = time.Date(2024, 1, 29, 10, 0, 0, 0, time.Local)

type recorder struct {
	mu     sync.Mutex
	events []tracker.Event
}

func (r *recorder) Notify(e tracker.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) last(t *testing.T) tracker.Event {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		t.Fatalf("expected an event")
	}
	return r.events[len(r.events)-1]
}

func newTracker(t *testing.T) (*tracker.Tracker, *storage.Storage, *recorder) {
	t.Helper()
	st, err := storage.Open("file:" + filepath.Join(t.TempDir(), "regimen.db"))
	if err != nil {
		t.Fatalf("open storage: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	rec := &recorder{}
	tr := tracker.New(st, rec)
	tr.Now = func() time.Time { return now }
	return tr, st, rec
}

func TestDayCreatesOnceWithDefaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tr, st, _ := newTracker(t)

	log, err := tr.Day(ctx, now)
	if err != nil {
		t.Fatalf("day: %v", err)
	}
	if log.Date != "2024-01-29" || log.DayType != catalog.DayEvening || log.CycleWeek != 1 {
		t.Fatalf("unexpected new log: date=%s type=%s week=%d", log.Date, log.DayType, log.CycleWeek)
	}
	if len(log.Meals) != 8 || len(log.Supplements) != 9 || len(log.AdvancedSupplements) != 3 {
		t.Fatalf("unexpected item counts: %d/%d/%d", len(log.Meals), len(log.Supplements), len(log.AdvancedSupplements))
	}

	c, err := st.ActiveCycle(ctx)
	if err != nil || c == nil {
		t.Fatalf("expected a cycle started on first use, got %v, %v", c, err)
	}
	if c.CurrentDay(now) != 1 {
		t.Fatalf("expected first-use cycle to start today, got day %d", c.CurrentDay(now))
	}

	again, err := tr.Day(ctx, now.Add(5*time.Hour))
	if err != nil {
		t.Fatalf("day again: %v", err)
	}
	if again.ID != log.ID {
		t.Fatalf("expected the same log for the same date")
	}

	sunday, err := tr.Day(ctx, now.AddDate(0, 0, -1))
	if err != nil {
		t.Fatalf("sunday: %v", err)
	}
	if sunday.DayType != catalog.DayRest || len(sunday.Meals) != 6 {
		t.Fatalf("expected a rest day with 6 meals, got %s with %d", sunday.DayType, len(sunday.Meals))
	}
}

func TestNewLogCapturesCurrentWeek(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tr, _, _ := newTracker(t)

	early, err := tr.Day(ctx, now.AddDate(0, 0, -2))
	if err != nil {
		t.Fatalf("day: %v", err)
	}

	if _, err := tr.SetCycleStart(ctx, now.AddDate(0, 0, -30)); err != nil {
		t.Fatalf("set cycle start: %v", err)
	}

	log, err := tr.Day(ctx, now)
	if err != nil {
		t.Fatalf("day: %v", err)
	}
	if log.CycleWeek != 5 || len(log.AdvancedSupplements) != 4 {
		t.Fatalf("expected week 5 with 4 advanced supplements, got week %d with %d", log.CycleWeek, len(log.AdvancedSupplements))
	}

	reloaded, err := tr.Day(ctx, now.AddDate(0, 0, -2))
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.CycleWeek != early.CycleWeek {
		t.Fatalf("existing log week changed from %d to %d", early.CycleWeek, reloaded.CycleWeek)
	}
}

func TestToggleEmitsScoredFeedback(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tr, _, rec := newTracker(t)

	log, err := tr.Day(ctx, now)
	if err != nil {
		t.Fatalf("day: %v", err)
	}
	id := log.Meals[0].ID

	log, err = tr.Toggle(ctx, now, id)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !log.Meals[0].Completed || log.Meals[0].CompletedAt == nil || !log.Meals[0].CompletedAt.Equal(now) {
		t.Fatalf("expected meal completed at now, got %+v", log.Meals[0])
	}
	e := rec.last(t)
	// 1/8 of the meal weight plus the sleep floor.
	if e.Kind != tracker.EventSuccess || e.Date != "2024-01-29" || e.Percent != 8 {
		t.Fatalf("unexpected event: %+v", e)
	}

	reloaded, _ := tr.Day(ctx, now)
	if !reloaded.Meals[0].Completed {
		t.Fatalf("toggle was not persisted")
	}

	if _, err := tr.Toggle(ctx, now, id); err != nil {
		t.Fatalf("untoggle: %v", err)
	}
	if e := rec.last(t); e.Kind != tracker.EventWarning || e.Percent != 3 {
		t.Fatalf("unexpected event after untoggle: %+v", e)
	}
}

func TestToggleUnknownItem(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tr, _, rec := newTracker(t)

	if _, err := tr.Toggle(ctx, now, "nope"); !errors.Is(err, tracker.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
	if len(rec.events) != 0 {
		t.Fatalf("failed toggle must not emit feedback, got %+v", rec.events)
	}

	// An item from another day is unknown here too.
	other, _ := tr.Day(ctx, now.AddDate(0, 0, 1))
	if _, err := tr.Toggle(ctx, now, other.Meals[0].ID); !errors.Is(err, tracker.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound for foreign item, got %v", err)
	}
}

func TestMetricsAndReset(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tr, _, _ := newTracker(t)

	if _, err := tr.AddWater(ctx, now, 2.5); err != nil {
		t.Fatalf("water: %v", err)
	}
	if _, err := tr.AddWater(ctx, now, -4); err != nil {
		t.Fatalf("water: %v", err)
	}
	if _, err := tr.SetSleep(ctx, now, 8); err != nil {
		t.Fatalf("sleep: %v", err)
	}
	kg := 80.4
	log, err := tr.SetWeight(ctx, now, &kg)
	if err != nil {
		t.Fatalf("weight: %v", err)
	}
	if log.WaterIntake != 0 || log.SleepHours != 8 || log.Weight == nil || *log.Weight != 80.4 {
		t.Fatalf("unexpected metrics: %+v", log)
	}

	log, err = tr.ChangeDayType(ctx, now, catalog.DayMidday)
	if err != nil {
		t.Fatalf("day type: %v", err)
	}
	if log.DayType != catalog.DayMidday || log.Meals[4].Kind != catalog.PreTraining || log.Meals[4].ScheduledTime != "12:20" {
		t.Fatalf("unexpected day type change: %s %+v", log.DayType, log.Meals[4])
	}

	tr.Toggle(ctx, now, log.Supplements[0].ID)
	log, err = tr.Reset(ctx, now)
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if log.SleepHours != 0 || log.Weight != nil || log.Supplements[0].Completed {
		t.Fatalf("reset left state behind: %+v", log)
	}
	if log.DayType != catalog.DayMidday {
		t.Fatalf("reset must keep the day type")
	}
}

func TestDeleteThenRecreate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tr, _, _ := newTracker(t)

	if err := tr.Delete(ctx, now); !errors.Is(err, tracker.ErrDayNotFound) {
		t.Fatalf("expected ErrDayNotFound, got %v", err)
	}

	first, _ := tr.Day(ctx, now)
	tr.Toggle(ctx, now, first.Meals[0].ID)
	if err := tr.Delete(ctx, now); err != nil {
		t.Fatalf("delete: %v", err)
	}
	fresh, err := tr.Day(ctx, now)
	if err != nil {
		t.Fatalf("recreate: %v", err)
	}
	if fresh.ID == first.ID || fresh.Meals[0].Completed {
		t.Fatalf("expected a fresh log after delete")
	}
}

func TestStartNewCycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tr, st, _ := newTracker(t)

	old, err := tr.ActiveCycle(ctx)
	if err != nil {
		t.Fatalf("active cycle: %v", err)
	}
	started, err := tr.StartNewCycle(ctx)
	if err != nil {
		t.Fatalf("new cycle: %v", err)
	}
	if started.ID == old.ID {
		t.Fatalf("expected a new cycle")
	}

	cycles, err := st.ListCycles(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	active := 0
	for _, c := range cycles {
		if c.IsActive {
			active++
			if c.ID != started.ID {
				t.Fatalf("wrong cycle active: %s", c.ID)
			}
		}
	}
	if active != 1 {
		t.Fatalf("expected exactly one active cycle, got %d", active)
	}
}

func TestHistoryAndDeleteAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tr, _, _ := newTracker(t)

	for i, kg := range []float64{82, 81.5, 81} {
		w := kg
		if _, err := tr.SetWeight(ctx, now.AddDate(0, 0, i), &w); err != nil {
			t.Fatalf("weight: %v", err)
		}
	}

	h, err := tr.History(ctx)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(h.Days) != 3 || h.Days[0].Date != "2024-01-31" {
		t.Fatalf("expected 3 days newest first, got %+v", h.Days)
	}
	if h.Average != 3 || h.WeeklyAverage != 3 || h.Days[0].Band != "poor" {
		t.Fatalf("unexpected averages: %+v", h)
	}
	if h.WeightTrend == nil || h.WeightTrend.Gain || h.WeightTrend.Change != 1 {
		t.Fatalf("expected 1kg loss, got %+v", h.WeightTrend)
	}
	if len(h.WeightSeries) != 3 || h.WeightSeries[0].Weight != 82 {
		t.Fatalf("unexpected series: %+v", h.WeightSeries)
	}

	if err := tr.DeleteAllData(ctx); err != nil {
		t.Fatalf("delete all: %v", err)
	}
	h, _ = tr.History(ctx)
	if len(h.Days) != 0 || h.WeightTrend != nil {
		t.Fatalf("expected empty history, got %+v", h)
	}
}

func TestNewCycleStartsAtCreationInstant(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tr, _, _ := newTracker(t)

	c, err := tr.StartNewCycle(ctx)
	if err != nil {
		t.Fatalf("new cycle: %v", err)
	}
	if !c.StartDate.Equal(now) {
		t.Fatalf("expected the cycle to start at %v, got %v", now, c.StartDate)
	}
	end := now.AddDate(0, 0, catalog.CycleDays)
	if c.IsCompleted(end.Add(-time.Hour)) {
		t.Fatalf("cycle completed an hour before its end")
	}
	if !c.IsCompleted(end) {
		t.Fatalf("expected cycle completed at %v", end)
	}

	active, err := tr.ActiveCycle(ctx)
	if err != nil {
		t.Fatalf("active cycle: %v", err)
	}
	if !active.StartDate.Equal(now) {
		t.Fatalf("stored start changed: %v", active.StartDate)
	}
}

// blockingFeedback holds the first event until release is closed.
type blockingFeedback struct {
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func (b *blockingFeedback) Notify(tracker.Event) {
	first := false
	b.once.Do(func() { first = true })
	if !first {
		return
	}
	close(b.entered)
	<-b.release
}

func TestSlowFeedbackDoesNotBlockOtherCalls(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st, err := storage.Open("file:" + filepath.Join(t.TempDir(), "regimen.db"))
	if err != nil {
		t.Fatalf("open storage: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	fb := &blockingFeedback{entered: make(chan struct{}), release: make(chan struct{})}
	tr := tracker.New(st, fb)
	tr.Now = func() time.Time { return now }

	waterDone := make(chan error, 1)
	go func() {
		_, err := tr.AddWater(ctx, now, 1)
		waterDone <- err
	}()

	select {
	case <-fb.entered:
	case <-time.After(5 * time.Second):
		t.Fatalf("feedback was never called")
	}

	dayDone := make(chan error, 1)
	go func() {
		_, err := tr.SetSleep(ctx, now.AddDate(0, 0, 1), 7)
		dayDone <- err
	}()
	select {
	case err := <-dayDone:
		if err != nil {
			t.Fatalf("set sleep: %v", err)
		}
	case <-time.After(5 * time.Second):
		close(fb.release)
		t.Fatalf("a pending notification blocked another mutation")
	}

	close(fb.release)
	if err := <-waterDone; err != nil {
		t.Fatalf("add water: %v", err)
	}
}
