package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/regimen/internal/catalog"
	"github.com/misterclayt0n/regimen/internal/models"
	"github.com/misterclayt0n/regimen/internal/scoring"
	"github.com/misterclayt0n/regimen/internal/utils"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's score, cycle position, averages, streak and daily targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, st, err := openTracker()
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		now := tr.Now()
		today, err := tr.Day(ctx, now)
		if err != nil {
			return fmt.Errorf("failed to load today: %w", err)
		}
		cycle, err := tr.ActiveCycle(ctx)
		if err != nil {
			return fmt.Errorf("failed to load cycle: %w", err)
		}
		h, err := tr.History(ctx)
		if err != nil {
			return fmt.Errorf("failed to retrieve history: %w", err)
		}

		logs, err := tr.Between(ctx, now.AddDate(0, 0, -catalog.CycleDays), now)
		if err != nil {
			return fmt.Errorf("failed to retrieve recent days: %w", err)
		}

		printBoxedHeader("STATUS")

		printMetric("Today", scoreColor(scoring.Percent(scoring.DailyScore(today))))
		printMetric("Cycle", fmt.Sprintf("day %d/%d, week %d/%d", cycle.CurrentDay(now), catalog.CycleDays, cycle.CurrentWeek(now), catalog.CycleWeeks))
		printMetric("Weekly average", scoreColor(h.WeeklyAverage))
		printMetric("Good day streak", fmt.Sprintf("%d days", computeDayStreak(logs, now)))
		if next, ok := nextBloodWork(cycle, now); ok {
			printMetric("Next blood work", fmt.Sprintf("%s (%s)", next.Date.Format("02 Jan 2006"), next.Label))
		}
		fmt.Println()

		header := color.New(color.FgGreen, color.Bold).Sprintf("Daily targets:")
		fmt.Println(header)
		for _, t := range []struct {
			name  string
			value string
		}{
			{"Calories", fmt.Sprintf("%d kcal", catalog.CaloriesGoal)},
			{"Protein", fmt.Sprintf("%d g", catalog.ProteinGoal)},
			{"Carbs", fmt.Sprintf("%d g", catalog.CarbsGoal)},
			{"Fat", fmt.Sprintf("%d g", catalog.FatGoal)},
			{"Water", fmt.Sprintf("%.1f L", catalog.WaterGoal)},
			{"Sleep", fmt.Sprintf("%.0f-%.0f h", catalog.SleepMinGoal, catalog.SleepMaxGoal)},
		} {
			fmt.Printf("  • %s: %s\n", color.New(color.FgMagenta, color.Bold).Sprint(t.name), t.value)
		}
		fmt.Println()

		return nil
	},
}

// printBoxedHeader prints the title in a Unicode box with a fixed width.
func printBoxedHeader(title string) {
	width := 40
	cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()
	border := strings.Repeat("═", width)
	fmt.Println(cyanBold("╔" + border + "╗"))
	fmt.Println(cyanBold("║" + centerText2(title, width) + "║"))
	fmt.Println(cyanBold("╚" + border + "╝"))
}

func centerText2(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-n-padding)
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(label string, value interface{}) {
	yellowBold := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Printf("  %s: %v\n", yellowBold(label), value)
}

// computeDayStreak counts consecutive days in the good band, ending today.
// Today only breaks the streak once it is over, so an unfinished day counts
// from yesterday.
func computeDayStreak(logs []*models.DayLog, now time.Time) int {
	good := make(map[string]bool)
	for _, l := range logs {
		good[l.Date] = scoring.BandFor(scoring.Percent(scoring.DailyScore(l))) == scoring.BandGood
	}

	day := now
	if !good[utils.DateKey(day)] {
		day = day.AddDate(0, 0, -1)
	}
	streak := 0
	for good[utils.DateKey(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

func nextBloodWork(c *models.Cycle, now time.Time) (models.Milestone, bool) {
	for _, m := range c.BloodWorkDates() {
		if !m.Date.Before(utils.StartOfDay(now)) {
			return m, true
		}
	}
	return models.Milestone{}, false
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
