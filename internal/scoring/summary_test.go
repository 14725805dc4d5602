package scoring_test

import (
	"testing"

	"github.com/misterclayt0n/regimen/internal/catalog"
	"github.com/misterclayt0n/regimen/internal/models"
	"github.com/misterclayt0n/regimen/internal/scoring"
)

func weighed(t *testing.T, kg float64) *models.DayLog {
	t.Helper()
	l := newLog(t, catalog.DayRest, 1)
	l.SetWeight(&kg)
	return l
}

func TestAverages(t *testing.T) {
	t.Parallel()
	if scoring.AverageScore(nil) != 0 || scoring.WeeklyAverage(nil) != 0 {
		t.Fatalf("expected 0 averages for no logs")
	}

	var logs []*models.DayLog
	// Seven perfect days followed by three untouched ones (3% each).
	for i := 0; i < 7; i++ {
		l := newLog(t, catalog.DayEvening, 1)
		complete(l, len(l.Meals), len(l.Supplements), len(l.AdvancedSupplements))
		l.AddWater(3)
		l.SetSleepHours(8)
		logs = append(logs, l)
	}
	for i := 0; i < 3; i++ {
		logs = append(logs, newLog(t, catalog.DayEvening, 1))
	}

	if got := scoring.WeeklyAverage(logs); got != 100 {
		t.Fatalf("expected weekly average 100, got %d", got)
	}
	if got := scoring.AverageScore(logs); got != 70 {
		t.Fatalf("expected overall average 70, got %d", got)
	}
}

func TestWeightTrend(t *testing.T) {
	t.Parallel()
	if _, ok := scoring.WeightTrend([]*models.DayLog{weighed(t, 80)}); ok {
		t.Fatalf("expected no trend from a single weight")
	}

	logs := []*models.DayLog{
		weighed(t, 79.0),
		newLog(t, catalog.DayRest, 1),
		weighed(t, 80.0),
		weighed(t, 81.5),
	}
	trend, ok := scoring.WeightTrend(logs)
	if !ok {
		t.Fatalf("expected a trend")
	}
	if trend.Gain || trend.Change != 2.5 {
		t.Fatalf("expected a 2.5kg loss, got %+v", trend)
	}
}

func TestWeightSeriesOldestFirst(t *testing.T) {
	t.Parallel()
	var logs []*models.DayLog
	for i := 0; i < 20; i++ {
		logs = append(logs, weighed(t, 100-float64(i)))
	}
	series := scoring.WeightSeries(logs)
	if len(series) != 14 {
		t.Fatalf("expected 14 points, got %d", len(series))
	}
	if series[0].Weight != 87 || series[13].Weight != 100 {
		t.Fatalf("expected oldest first, got first=%v last=%v", series[0], series[13])
	}
}
