package cmd

import (
	"log"

	"github.com/misterclayt0n/regimen/internal/server"
	"github.com/misterclayt0n/regimen/internal/storage"
	"github.com/misterclayt0n/regimen/internal/tracker"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API with live updates over WebSocket",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if serveAddr != "" {
			cfg.Server.Addr = serveAddr
		}

		st, err := storage.Open(cfg.DB.DSN())
		if err != nil {
			return err
		}
		defer st.Close()

		hub := server.NewHub()
		tr := tracker.New(st, hub)
		srv := server.New(tr, hub, cfg.Server)

		log.Printf("Allowed origins: %v", cfg.Server.AllowedOrigins)
		return srv.Run(cfg.Server.Addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "Listen address (default from config, :8080)")
}
