package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/filemytax/tax-engine/internal/calculation"
	"github.com/filemytax/tax-engine/internal/store"
)

var (
	recomputeTaxpayer   string
	recomputeRegimeFile string
	recomputeRegime     string
	recomputeFormat     string
	recomputeNoCache    bool
)

var recomputeCmd = &cobra.Command{
	Use:   "recompute",
	Short: "Recompute and persist a taxpayer's summary from the live stores",
	Long: `recompute reads the taxpayer's category records from Postgres
(DATABASE_URL), recomputes the tax summary, upserts it into the summary
table, and refreshes the Redis cache (REDIS_URL). A .env file in the working
directory is honored.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Missing .env is fine; env vars may come from the environment.
		_ = godotenv.Load()

		logger := calculation.SlogLogger{L: slog.New(slog.NewTextHandler(os.Stderr, nil))}

		regime, err := resolveRegime(recomputeRegimeFile, recomputeRegime)
		if err != nil {
			return err
		}
		calculator, err := calculation.NewSlabCalculator(regime)
		if err != nil {
			return err
		}

		pg, err := store.OpenPostgres("")
		if err != nil {
			return err
		}
		defer pg.Close()

		writer := &store.CachedSummaryStore{Durable: pg, Logger: logger}
		if !recomputeNoCache {
			cache, err := store.OpenSummaryCache("")
			if err != nil {
				logger.Warnf("summary cache unavailable, continuing without it: %v", err)
			} else {
				defer cache.Close()
				writer.Cache = cache
			}
		}

		aggregator := calculation.NewIncomeAggregator(pg, regime, calculation.WithLogger(logger))
		engine := calculation.NewComputationEngine(pg, pg, aggregator, calculator, writer, logger)

		summary, err := engine.Recompute(cmd.Context(), recomputeTaxpayer)
		if err != nil {
			return err
		}

		return emit(summary, recomputeFormat)
	},
}

func init() {
	recomputeCmd.Flags().StringVarP(&recomputeTaxpayer, "taxpayer", "t", "", "taxpayer identifier (required)")
	recomputeCmd.Flags().StringVar(&recomputeRegimeFile, "regime-file", "", "regime configuration YAML file (default: built-in new regime)")
	recomputeCmd.Flags().StringVar(&recomputeRegime, "regime", "new", "regime name to select from the regime file")
	recomputeCmd.Flags().StringVarP(&recomputeFormat, "format", "f", "console", "output format: console or json")
	recomputeCmd.Flags().BoolVar(&recomputeNoCache, "no-cache", false, "skip the Redis summary cache")
	recomputeCmd.MarkFlagRequired("taxpayer")
}
