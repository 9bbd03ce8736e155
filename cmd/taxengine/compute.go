package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/filemytax/tax-engine/internal/calculation"
	"github.com/filemytax/tax-engine/internal/config"
	"github.com/filemytax/tax-engine/internal/domain"
	"github.com/filemytax/tax-engine/internal/output"
	"github.com/filemytax/tax-engine/internal/store"
)

var (
	computeInput      string
	computeRegimeFile string
	computeRegime     string
	computeFormat     string
)

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "Compute a tax summary from an income snapshot file",
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := config.LoadSnapshot(computeInput)
		if err != nil {
			return err
		}

		regime, err := resolveRegime(computeRegimeFile, computeRegime)
		if err != nil {
			return err
		}

		calculator, err := calculation.NewSlabCalculator(regime)
		if err != nil {
			return err
		}

		mem := store.FromSnapshot(snap)
		aggregator := calculation.NewIncomeAggregator(mem, regime)
		engine := calculation.NewComputationEngine(mem, mem, aggregator, calculator, nil, nil)

		summary, err := engine.Recompute(cmd.Context(), snap.Taxpayer.ID)
		if err != nil {
			return err
		}

		return emit(summary, computeFormat)
	},
}

func init() {
	computeCmd.Flags().StringVarP(&computeInput, "input", "i", "", "income snapshot YAML file (required)")
	computeCmd.Flags().StringVar(&computeRegimeFile, "regime-file", "", "regime configuration YAML file (default: built-in new regime)")
	computeCmd.Flags().StringVar(&computeRegime, "regime", "new", "regime name to select from the regime file")
	computeCmd.Flags().StringVarP(&computeFormat, "format", "f", "console", "output format: console or json")
	computeCmd.MarkFlagRequired("input")
}

// resolveRegime loads the named regime from a file, or falls back to the
// built-in new-regime table when no file is given.
func resolveRegime(file, name string) (domain.TaxRegime, error) {
	if file == "" {
		if name != "" && name != "new" {
			return domain.TaxRegime{}, fmt.Errorf("regime %q requires --regime-file; only the built-in new regime is available without one", name)
		}
		return config.DefaultNewRegime(), nil
	}
	regimes, err := config.NewRegimeParser().LoadFromFile(file)
	if err != nil {
		return domain.TaxRegime{}, err
	}
	return regimes.Regime(name)
}

func emit(summary *domain.TaxSummary, format string) error {
	formatter := output.GetFormatterByName(format)
	if formatter == nil {
		return fmt.Errorf("unknown output format %q", format)
	}
	data, err := formatter.Format(summary)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	if err == nil && len(data) > 0 && data[len(data)-1] != '\n' {
		fmt.Println()
	}
	return err
}
