package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "amortizer",
	Short: "Loan amortization schedules",
	Long:  "Build amortization schedules with extra payments and recasts, from the command line or over HTTP.",
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
