package tracker

import (
	"context"
	"time"

	"github.com/misterclayt0n/regimen/internal/catalog"
	"github.com/misterclayt0n/regimen/internal/models"
	"github.com/misterclayt0n/regimen/internal/scoring"
)

// DaySummary is one row of the history list.
type DaySummary struct {
	Date      string          `json:"date"`
	DayType   catalog.DayType `json:"day_type"`
	CycleWeek int             `json:"cycle_week"`
	Percent   int             `json:"percent"`
	Band      string          `json:"band"`
	Weight    *float64        `json:"weight"`
}

type History struct {
	Days          []DaySummary          `json:"days"` // Newest first.
	WeeklyAverage int                   `json:"weekly_average"`
	Average       int                   `json:"average"`
	WeightTrend   *scoring.Trend        `json:"weight_trend"`
	WeightSeries  []scoring.WeightPoint `json:"weight_series"`
}

// History summarizes every stored log.
func (t *Tracker) History(ctx context.Context) (*History, error) {
	logs, err := t.store.ListDayLogs(ctx, 0)
	if err != nil {
		return nil, err
	}

	h := &History{
		Days:          make([]DaySummary, 0, len(logs)),
		WeeklyAverage: scoring.WeeklyAverage(logs),
		Average:       scoring.AverageScore(logs),
		WeightSeries:  scoring.WeightSeries(logs),
	}
	if trend, ok := scoring.WeightTrend(logs); ok {
		h.WeightTrend = &trend
	}
	for _, l := range logs {
		p := scoring.Percent(scoring.DailyScore(l))
		h.Days = append(h.Days, DaySummary{
			Date:      l.Date,
			DayType:   l.DayType,
			CycleWeek: l.CycleWeek,
			Percent:   p,
			Band:      scoring.BandFor(p).String(),
			Weight:    l.Weight,
		})
	}
	return h, nil
}

// Between returns the stored logs dated from..to inclusive, oldest first.
// Missing days are not created.
func (t *Tracker) Between(ctx context.Context, from, to time.Time) ([]*models.DayLog, error) {
	return t.store.DayLogsBetween(ctx, key(from), key(to))
}
