package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/misterclayt0n/regimen/internal/utils"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := utils.LoadSettings()
		if err != nil {
			return err
		}
		printBoxedHeader("SETTINGS")
		printMetric("notifications", s.NotificationsEnabled)
		printMetric("hide-advanced", s.HideAdvancedSupplements)
		printMetric("morning", s.MorningReminder)
		printMetric("evening", s.EveningReminder)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [notifications|hide-advanced|morning|evening] [value]",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := utils.LoadSettings()
		if err != nil {
			return err
		}
		if err := applySetting(&s, args[0], args[1]); err != nil {
			return err
		}
		if err := utils.SaveSettings(s); err != nil {
			return fmt.Errorf("Failed to save settings: %w", err)
		}
		fmt.Printf("✅ %s set to %s\n", args[0], args[1])
		return nil
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := utils.ClearSettings(); err != nil {
			return fmt.Errorf("Failed to clear settings: %w", err)
		}
		fmt.Println("✅ Settings restored to defaults")
		return nil
	},
}

func applySetting(s *utils.Settings, key, value string) error {
	switch strings.ToLower(key) {
	case "notifications":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value %q for %s (use true or false)", value, key)
		}
		s.NotificationsEnabled = b
	case "hide-advanced":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value %q for %s (use true or false)", value, key)
		}
		s.HideAdvancedSupplements = b
	case "morning":
		s.MorningReminder = value
	case "evening":
		s.EveningReminder = value
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return s.Validate()
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
}
