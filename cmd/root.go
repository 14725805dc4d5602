package cmd

import (
	"strings"
	"time"

	"github.com/misterclayt0n/regimen/internal/config"
	"github.com/misterclayt0n/regimen/internal/storage"
	"github.com/misterclayt0n/regimen/internal/tracker"
	"github.com/misterclayt0n/regimen/internal/utils"
	"github.com/spf13/cobra"
)

// dateFlag selects the day a command works on. Empty means today.
var dateFlag string

var rootCmd = &cobra.Command{
	Use:   "regimen",
	Short: "Daily meal, supplement and recovery tracker for an 8 week cycle",
}

func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the config file and installs the configured timezone.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if err := utils.SetLocation(cfg.App.Timezone); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openTracker opens the configured database and wraps it in a tracker that
// prints feedback to the terminal. Callers close the storage.
func openTracker() (*tracker.Tracker, *storage.Storage, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	st, err := storage.Open(cfg.DB.DSN())
	if err != nil {
		return nil, nil, err
	}
	return tracker.New(st, cliFeedback{}), st, nil
}

// targetDate resolves --date against the tracker's clock.
func targetDate(tr *tracker.Tracker) (time.Time, error) {
	if dateFlag == "" {
		return tr.Now(), nil
	}
	return parseDateArg(tr, dateFlag)
}

// parseDateArg reads a date in the configured zone. It takes the tracker so
// it can only run after openTracker has installed that zone.
func parseDateArg(tr *tracker.Tracker, s string) (time.Time, error) {
	if strings.EqualFold(strings.TrimSpace(s), "today") {
		return tr.Now(), nil
	}
	return utils.ParseDate(s)
}

func addDateFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&dateFlag, "date", "d", "", "Day to act on (e.g. 2024-01-29 or 29/01/24, default today)")
}
