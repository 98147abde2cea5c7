// Package cmd implements the CLI commands for warmane-trade using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "warmane-trade",
	Short: "warmane-trade — extract auction listings from actioneer snapshots",
	Long: `warmane-trade turns saved actioneer HTML snapshots into CSV files,
one row per auction listing.

Usage:
  warmane-trade extract [flags]`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
