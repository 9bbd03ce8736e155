package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "taxengine",
	Short: "Income aggregation and slab tax computation engine",
	Long: `taxengine aggregates per-category income records for a taxpayer,
applies a progressive slab table with cess, and produces the tax summary
(gross income, taxable income, liability, and amount due or refundable).`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(computeCmd)
	rootCmd.AddCommand(recomputeCmd)
	rootCmd.AddCommand(regimeCmd)
	rootCmd.AddCommand(exampleCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
