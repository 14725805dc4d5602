package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/misterclayt0n/regimen/internal/models"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [meal|supplement|advanced] [n]",
	Short: "Toggle item n of a category, as numbered by 'today'",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid item number: %s", args[1])
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

		id, label, err := itemAt(log, args[0], n)
		if err != nil {
			return err
		}
		if _, err := tr.Toggle(ctx, date, id); err != nil {
			return fmt.Errorf("Failed to toggle %s: %w", label, err)
		}
		return nil
	},
}

// itemAt resolves a 1-based position within a category to an item ID.
func itemAt(log *models.DayLog, category string, n int) (id, label string, err error) {
	i := n - 1
	switch strings.ToLower(category) {
	case "meal", "meals", "m":
		if i < len(log.Meals) {
			return log.Meals[i].ID, log.Meals[i].Kind.DisplayName(), nil
		}
		return "", "", fmt.Errorf("meal %d does not exist (the day has %d)", n, len(log.Meals))
	case "supplement", "supplements", "s":
		if i < len(log.Supplements) {
			s := log.Supplements[i]
			return s.ID, s.Kind.DisplayName() + " (" + s.Slot.DisplayName() + ")", nil
		}
		return "", "", fmt.Errorf("supplement %d does not exist (the day has %d)", n, len(log.Supplements))
	case "advanced", "a":
		if i < len(log.AdvancedSupplements) {
			return log.AdvancedSupplements[i].ID, log.AdvancedSupplements[i].Kind.DisplayName(), nil
		}
		return "", "", fmt.Errorf("advanced supplement %d does not exist (the day has %d)", n, len(log.AdvancedSupplements))
	}
	return "", "", fmt.Errorf("unknown category %q (use meal, supplement or advanced)", category)
}

func init() {
	rootCmd.AddCommand(checkCmd)
	addDateFlag(checkCmd)
}
