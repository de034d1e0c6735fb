package cmd

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/arunsketh/energy/internal/api"
	"github.com/arunsketh/energy/internal/config"
)

// serveCmd starts the HTTP server hosting the API and the web dashboard.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the comparison API and web dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromEnv()
		mux := api.NewMux(cfg)

		addr := ":" + cfg.Port
		log.Printf("energycompare listening on %s", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Fatalf("server failed: %v", err)
		}
		return nil
	},
}
