package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/misterclayt0n/regimen/internal/catalog"
	"github.com/spf13/cobra"
)

var dayTypeCmd = &cobra.Command{
	Use:   "day-type [evening|midday|afternoon|rest]",
	Short: "Change the day type and reschedule its meals",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dt, ok := catalog.LookupDayType(args[0])
		if !ok {
			return fmt.Errorf("unknown day type %q", args[0])
		}

		tr, st, err := openTracker()
		if err != nil {
			return err
		}
		defer st.Close()

		date, err := targetDate(tr)
		if err != nil {
			return err
		}
		log, err := tr.ChangeDayType(context.Background(), date, dt)
		if err != nil {
			return fmt.Errorf("Failed to change day type: %w", err)
		}
		for _, slot := range log.MealSchedule() {
			fmt.Printf("  • %s %s\n", slot.ScheduledTime, slot.Kind.DisplayName())
		}
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Uncheck every item and clear water, sleep and weight for the day",
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
		if _, err := tr.Reset(context.Background(), date); err != nil {
			return fmt.Errorf("Failed to reset day: %w", err)
		}
		return nil
	},
}

var deleteDayCmd = &cobra.Command{
	Use:   "delete-day [date]",
	Short: "Delete a day log and all its items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, st, err := openTracker()
		if err != nil {
			return err
		}
		defer st.Close()

		date, err := parseDateArg(tr, args[0])
		if err != nil {
			return err
		}

		if err := tr.Delete(context.Background(), date); err != nil {
			return fmt.Errorf("Failed to delete day: %w", err)
		}
		return nil
	},
}

// confirm asks a yes/no question on stdin.
func confirm(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func init() {
	rootCmd.AddCommand(dayTypeCmd)
	addDateFlag(dayTypeCmd)
	rootCmd.AddCommand(resetCmd)
	addDateFlag(resetCmd)
	rootCmd.AddCommand(deleteDayCmd)
}
