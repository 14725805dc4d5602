package cmd

import (
	"context"
	"fmt"

	"github.com/misterclayt0n/regimen/internal/storage"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [output-file]",
	Short: "Export all the database data to a TOML file",
	Args:  cobra.RangeArgs(0, 1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFile, err := storage.GetDBExportPath()
		if err != nil {
			return err
		}
		if len(args) == 1 {
			outputFile = args[0]
		}

		_, st, err := openTracker()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.ExportToFile(context.Background(), outputFile); err != nil {
			return fmt.Errorf("error exporting database: %w", err)
		}

		fmt.Printf("✅ Database exported successfully to %s\n", outputFile)
		return nil
	},
}

var buildDBCmd = &cobra.Command{
	Use:   "build-db [dump-file]",
	Short: "Replace the database contents with the given TOML dump file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st, err := openTracker()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.ImportFromFile(context.Background(), args[0]); err != nil {
			return fmt.Errorf("Failed to build database: %w", err)
		}
		fmt.Println("✅ Database built successfully from TOML dump.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(buildDBCmd)
}
