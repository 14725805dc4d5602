package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/regimen/internal/catalog"
	"github.com/misterclayt0n/regimen/internal/models"
	"github.com/spf13/cobra"
)

var assumeYes bool

var cycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Show the cycle timeline, progress and blood work dates",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, st, err := openTracker()
		if err != nil {
			return err
		}
		defer st.Close()

		c, err := tr.ActiveCycle(context.Background())
		if err != nil {
			return fmt.Errorf("Failed to load cycle: %w", err)
		}
		printCycle(c, tr.Now())
		return nil
	},
}

func printCycle(c *models.Cycle, now time.Time) {
	printBoxedHeader("CYCLE")
	printMetric("Started", c.StartDate.Format("Mon, 02 Jan 2006"))
	printMetric("Ends", c.EndDate().Format("Mon, 02 Jan 2006"))
	printMetric("Day", fmt.Sprintf("%d/%d", c.CurrentDay(now), catalog.CycleDays))
	printMetric("Week", fmt.Sprintf("%d/%d", c.CurrentWeek(now), catalog.CycleWeeks))
	printMetric("Days remaining", c.DaysRemaining(now))
	if c.IsCompleted(now) {
		printMetric("Status", color.New(color.FgGreen, color.Bold).Sprint("completed"))
	}
	fmt.Println()

	// Progress bar plus one cell per week.
	width := 40
	filled := int(c.Progress(now) * float64(width))
	fmt.Printf("  %s%s %d%%\n", color.GreenString(strings.Repeat("█", filled)), strings.Repeat("░", width-filled), int(c.Progress(now)*100))

	var weeks []string
	for w := 1; w <= catalog.CycleWeeks; w++ {
		label := fmt.Sprintf("W%d", w)
		switch c.Status(w, now) {
		case models.WeekPast:
			label = color.New(color.FgGreen).Sprint(label)
		case models.WeekCurrent:
			label = color.New(color.FgCyan, color.Bold, color.Underline).Sprint(label)
		default:
			label = color.New(color.Faint).Sprint(label)
		}
		weeks = append(weeks, label)
	}
	fmt.Println("  " + strings.Join(weeks, " "))
	fmt.Println()

	fmt.Println(color.New(color.FgGreen, color.Bold).Sprint("Blood work:"))
	for _, m := range c.BloodWorkDates() {
		mark := " "
		if m.Date.Before(now) {
			mark = "✓"
		}
		fmt.Printf("  %s %s  %s\n", mark, m.Date.Format("02 Jan 2006"), m.Label)
	}
}

var newCycleCmd = &cobra.Command{
	Use:   "new-cycle",
	Short: "End the current cycle and start a new one today",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !assumeYes && !confirm("Start a new 8 week cycle today?") {
			fmt.Println("Aborted.")
			return nil
		}

		tr, st, err := openTracker()
		if err != nil {
			return err
		}
		defer st.Close()

		if _, err := tr.StartNewCycle(context.Background()); err != nil {
			return fmt.Errorf("Failed to start cycle: %w", err)
		}
		return nil
	},
}

var cycleStartCmd = &cobra.Command{
	Use:   "cycle-start [date]",
	Short: "Change the start date of the current cycle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, st, err := openTracker()
		if err != nil {
			return err
		}
		defer st.Close()

		start, err := parseDateArg(tr, args[0])
		if err != nil {
			return err
		}

		c, err := tr.SetCycleStart(context.Background(), start)
		if err != nil {
			return fmt.Errorf("Failed to update cycle start: %w", err)
		}
		printMetric("Week", fmt.Sprintf("%d/%d", c.CurrentWeek(tr.Now()), catalog.CycleWeeks))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cycleCmd)
	rootCmd.AddCommand(newCycleCmd)
	rootCmd.AddCommand(cycleStartCmd)
	newCycleCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")
}
