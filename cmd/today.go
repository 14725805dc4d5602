package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/regimen/internal/catalog"
	"github.com/misterclayt0n/regimen/internal/models"
	"github.com/misterclayt0n/regimen/internal/regimen"
	"github.com/misterclayt0n/regimen/internal/scoring"
	"github.com/misterclayt0n/regimen/internal/utils"
	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the day's meals, supplements, metrics and score",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, st, err := openTracker()
		if err != nil {
			return err
		}
		defer st.Close()

		date, err := targetDate(tr)
		if err != nil {
			return err
		}
		log, err := tr.Day(context.Background(), date)
		if err != nil {
			return fmt.Errorf("Failed to load day: %w", err)
		}
		settings, err := utils.LoadSettings()
		if err != nil {
			return err
		}

		printDay(log, settings.HideAdvancedSupplements)
		return nil
	},
}

func checkbox(c regimen.Completion) string {
	if c.Completed {
		return color.New(color.FgGreen, color.Bold).Sprint("[x]")
	}
	return "[ ]"
}

func printDay(log *models.DayLog, hideAdvanced bool) {
	day, _ := log.Day()
	printBoxedHeader(day.Format("Monday 02 Jan 2006"))

	cyan := color.New(color.FgCyan).SprintFunc()
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	printMetric("Day type", log.DayType.DisplayName())
	printMetric("Cycle week", fmt.Sprintf("%d/%d", log.CycleWeek, catalog.CycleWeeks))
	fmt.Println()

	done, total := log.MealCounts()
	fmt.Println(green(fmt.Sprintf("Meals (%d/%d)", done, total)))
	for i, m := range log.Meals {
		at := m.ScheduledTime
		if at == "" {
			at = "  —  "
		}
		fmt.Printf("  %2d. %s %s  %s %s\n", i+1, checkbox(m.Completion), cyan(at), m.Kind.DisplayName(), faint(m.Kind.Content()))
	}
	fmt.Println()

	done, total = log.SupplementCounts()
	fmt.Println(green(fmt.Sprintf("Supplements (%d/%d)", done, total)))
	for i, s := range log.Supplements {
		line := fmt.Sprintf("  %2d. %s %-8s %s %s", i+1, checkbox(s.Completion), cyan(s.Slot.DisplayName()), s.Kind.DisplayName(), s.Dosage)
		if note, ok := s.Kind.Note(); ok {
			line += " " + faint("("+note+")")
		}
		fmt.Println(line)
	}
	fmt.Println()

	if !hideAdvanced {
		done, total = log.AdvancedSupplementCounts()
		fmt.Println(green(fmt.Sprintf("Advanced supplements (%d/%d) · %s", done, total, catalog.AdvancedTiming)))
		for i, a := range log.AdvancedSupplements {
			fmt.Printf("  %2d. %s %s %s\n", i+1, checkbox(a.Completion), a.Kind.DisplayName(), a.Dosage)
		}
		fmt.Println()
	}

	b := scoring.BreakdownOf(log)
	weight := "not recorded"
	if log.Weight != nil {
		weight = fmt.Sprintf("%.1f kg", *log.Weight)
	}
	printMetric("Water", fmt.Sprintf("%.2f / %.1f L (%d%%)", log.WaterIntake, catalog.WaterGoal, scoring.Percent(b.Water)))
	printMetric("Sleep", fmt.Sprintf("%.1f h (%s)", log.SleepHours, scoring.SleepStatusFor(log.SleepHours)))
	printMetric("Weight", weight)
	fmt.Println()

	printMetric("Score", scoreColor(scoring.Percent(b.Total())))
}

func init() {
	rootCmd.AddCommand(todayCmd)
	addDateFlag(todayCmd)
}
