package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/api"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/app"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/config"
	"github.com/Tima-Dawwa/Dermatology-Smart-Expert-System/internal/session"
)

// runApp resolves configuration, builds the session store, and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg := config.FromEnv()
	if base, _ := cmd.Flags().GetString("api-base"); base != "" {
		cfg.APIBase = base
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	client := api.NewClient(cfg.APIBase, &http.Client{Timeout: cfg.Timeout})
	store := session.NewStore(client)
	return app.Run(store)
}
