package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/misterclayt0n/regimen/internal/models"
	"github.com/misterclayt0n/regimen/internal/scoring"
	"github.com/misterclayt0n/regimen/internal/utils"
	"github.com/spf13/cobra"
)

// details is a flag to enable per day details.
var details bool

// calendarCmd prints the month grid. Logged days are coloured by score band.
var calendarCmd = &cobra.Command{
	Use:   "calendar [month] [year]",
	Short: "Display a calendar of logged days coloured by score",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, st, err := openTracker()
		if err != nil {
			return err
		}
		defer st.Close()

		// Determine month and year (default to current month/year).
		now := tr.Now()
		month := now.Month()
		year := now.Year()
		if len(args) >= 1 {
			m, err := strconv.Atoi(args[0])
			if err != nil || m < 1 || m > 12 {
				return fmt.Errorf("invalid month: %s", args[0])
			}
			month = time.Month(m)
		}
		if len(args) == 2 {
			y, err := strconv.Atoi(args[1])
			if err != nil || y < 1 {
				return fmt.Errorf("invalid year: %s", args[1])
			}
			year = y
		}

		firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, utils.Loc)
		lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

		logs, err := tr.Between(context.Background(), firstOfMonth, lastOfMonth)
		if err != nil {
			return fmt.Errorf("failed to get day logs: %w", err)
		}
		logsByDay := make(map[int]*models.DayLog)
		for _, l := range logs {
			d, err := l.Day()
			if err != nil {
				continue
			}
			logsByDay[d.Day()] = l
		}

		bandColors := map[scoring.Band]func(a ...interface{}) string{
			scoring.BandGood: color.New(color.FgGreen, color.Bold).SprintFunc(),
			scoring.BandFair: color.New(color.FgYellow).SprintFunc(),
			scoring.BandPoor: color.New(color.FgRed).SprintFunc(),
		}

		header := fmt.Sprintf("%s %d", month.String(), year)
		fmt.Println(centerText(header, 20))
		fmt.Println("Su Mo Tu We Th Fr Sa")

		// Weekday of the first day (0 = Sunday).
		weekday := int(firstOfMonth.Weekday())
		for i := 0; i < weekday; i++ {
			fmt.Print("   ")
		}

		for day := 1; day <= lastOfMonth.Day(); day++ {
			dayStr := fmt.Sprintf("%2d", day)
			if l, ok := logsByDay[day]; ok {
				band := scoring.BandFor(scoring.Percent(scoring.DailyScore(l)))
				dayStr = bandColors[band](dayStr)
			}
			fmt.Printf("%s ", dayStr)
			weekday++
			if weekday%7 == 0 {
				fmt.Println()
			}
		}
		fmt.Print("\n\n")

		fmt.Println("Legend:")
		fmt.Printf("  %s: %s\n", bandColors[scoring.BandGood]("██"), "80% and above")
		fmt.Printf("  %s: %s\n", bandColors[scoring.BandFair]("██"), "50% to 79%")
		fmt.Printf("  %s: %s\n", bandColors[scoring.BandPoor]("██"), "below 50%")

		if details && len(logs) > 0 {
			fmt.Println("\nDay Details:")
			for _, l := range logs {
				d, _ := l.Day()
				meals, mealTotal := l.MealCounts()
				sups, supTotal := l.SupplementCounts()
				fmt.Printf("  %s  %-10s meals %d/%d  supplements %d/%d  water %.1fL  sleep %.1fh  %s\n",
					d.Format("Mon, 02 Jan"),
					l.DayType.DisplayName(),
					meals, mealTotal,
					sups, supTotal,
					l.WaterIntake,
					l.SleepHours,
					scoreColor(scoring.Percent(scoring.DailyScore(l))),
				)
			}
		}

		return nil
	},
}

// centerText centers the given string in a field of the specified width.
func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s
}

func init() {
	rootCmd.AddCommand(calendarCmd)
	calendarCmd.Flags().BoolVarP(&details, "details", "v", false, "Print per day details")
}
