package cmd

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/config"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/oracle"
)

// serveCmd runs the bundled inference stub so the assessment can be
// exercised without the real backend.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a local inference service stub",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromEnv()
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		r := chi.NewRouter()
		r.Mount("/api", oracle.New().Handler())

		fmt.Printf("inference stub listening on %s\n", cfg.ListenAddr)
		return http.ListenAndServe(cfg.ListenAddr, r)
	},
}
