// Package cmd provides the CLI commands for energy-compare.
package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "energycompare",
	Short: "Estimate and compare household electricity tariff costs",
	Long: `energycompare estimates a household's yearly electricity cost from
monthly day/night consumption and tariff rates, and compares it against a
set of reference tariffs.

Examples:
  energycompare serve
  energycompare compare --day-units 392 --night-units 49 \
    --day-rate 22.21 --night-rate 15.80 --standing 57.74`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(compareCmd)
}
