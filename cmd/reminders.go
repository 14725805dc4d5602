package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/misterclayt0n/regimen/internal/reminders"
	"github.com/misterclayt0n/regimen/internal/utils"
	"github.com/spf13/cobra"
)

var remindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "List the reminders planned for a day",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := utils.LoadSettings()
		if err != nil {
			return err
		}
		if !settings.NotificationsEnabled {
			fmt.Println("Notifications are disabled. Enable them with: regimen settings set notifications true")
			return nil
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
		ctx := context.Background()
		log, err := tr.Day(ctx, date)
		if err != nil {
			return fmt.Errorf("Failed to load day: %w", err)
		}
		cycle, err := tr.ActiveCycle(ctx)
		if err != nil {
			return fmt.Errorf("Failed to load cycle: %w", err)
		}

		plan, err := reminders.Plan(settings, log, cycle, tr.Now())
		if err != nil {
			return err
		}

		printBoxedHeader("REMINDERS")
		cyan := color.New(color.FgCyan).SprintFunc()
		faint := color.New(color.Faint).SprintFunc()
		for _, r := range plan {
			when := r.At.Format("15:04")
			if utils.DateKey(r.At) != log.Date {
				when = r.At.Format("02 Jan 15:04")
			}
			repeat := ""
			if r.Repeats {
				repeat = faint(" (daily)")
			}
			fmt.Printf("  %s  %s%s\n      %s\n", cyan(when), r.Title, repeat, faint(r.Body))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(remindersCmd)
	addDateFlag(remindersCmd)
}
