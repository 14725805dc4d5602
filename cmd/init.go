package cmd

import (
	"fmt"

	"github.com/misterclayt0n/regimen/internal/storage"
	"github.com/spf13/cobra"
)

var initSetupCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database and its tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// Open creates the schema.
		st, err := storage.Open(cfg.DB.DSN())
		if err != nil {
			return fmt.Errorf("Failed to initialize database: %w", err)
		}
		defer st.Close()

		fmt.Printf("✅ Database initialized successfully at %s\n", cfg.DB.ConnectionString)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initSetupCmd)
}
