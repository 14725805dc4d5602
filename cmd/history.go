package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var historyLimit int

// historyCmd lists past days with their score, newest first.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display past days with their score, averages and weight trend",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, st, err := openTracker()
		if err != nil {
			return err
		}
		defer st.Close()

		h, err := tr.History(context.Background())
		if err != nil {
			return fmt.Errorf("failed to retrieve history: %w", err)
		}

		printBoxedHeader("HISTORY")
		printMetric("Weekly average", scoreColor(h.WeeklyAverage))
		printMetric("Overall average", scoreColor(h.Average))
		if h.WeightTrend != nil {
			dir := "lost"
			if h.WeightTrend.Gain {
				dir = "gained"
			}
			printMetric("Weight trend", fmt.Sprintf("%.1f kg %s", h.WeightTrend.Change, dir))
		}
		fmt.Println()

		if len(h.Days) == 0 {
			fmt.Println("No days logged yet.")
			return nil
		}

		days := h.Days
		if historyLimit > 0 && len(days) > historyLimit {
			days = days[:historyLimit]
		}
		faint := color.New(color.Faint).SprintFunc()
		for _, d := range days {
			weight := ""
			if d.Weight != nil {
				weight = fmt.Sprintf("%.1f kg", *d.Weight)
			}
			fmt.Printf("  %s  %-10s %s  %s %s\n",
				d.Date,
				d.DayType.DisplayName(),
				faint(fmt.Sprintf("W%d", d.CycleWeek)),
				scoreColor(d.Percent),
				weight,
			)
		}

		if len(h.WeightSeries) > 1 {
			fmt.Println()
			fmt.Println(color.New(color.FgGreen, color.Bold).Sprint("Weight:"))
			for _, p := range h.WeightSeries {
				fmt.Printf("  • %s: %.1f kg\n", p.Date, p.Weight)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 30, "Number of days to list (0 for all)")
}
