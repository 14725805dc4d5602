package cmd

import (
	"context"
	"fmt"

	"github.com/misterclayt0n/regimen/internal/utils"
	"github.com/spf13/cobra"
)

var wipeSettings bool

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete every day log and cycle",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !assumeYes && !confirm("Delete all logged days and cycles? This cannot be undone") {
			fmt.Println("Aborted.")
			return nil
		}

		tr, st, err := openTracker()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := tr.DeleteAllData(context.Background()); err != nil {
			return fmt.Errorf("Failed to delete data: %w", err)
		}
		if wipeSettings {
			if err := utils.ClearSettings(); err != nil {
				return fmt.Errorf("Failed to clear settings: %w", err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(wipeCmd)
	wipeCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")
	wipeCmd.Flags().BoolVar(&wipeSettings, "settings", false, "Also restore the default settings")
}
