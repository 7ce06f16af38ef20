package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dermassist",
	Short: "Guided dermatology assessment in the terminal",
	Long:  "DermAssist walks a patient through a sequential skin assessment against a remote inference service and presents the resulting diagnosis.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("api-base", "", "Base URL of the inference service (overrides DERMASSIST_API_BASE)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
