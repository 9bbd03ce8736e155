package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/filemytax/tax-engine/internal/domain"
)

// TaxpayerLookup resolves a taxpayer identifier. Unlike category fetches,
// a failure here is systemic and propagates to the caller.
type TaxpayerLookup interface {
	Taxpayer(ctx context.Context, taxpayerID string) (*domain.Taxpayer, error)
}

// PaidTaxReader supplies the already-paid tax total (advance tax,
// self-assessment, TDS credits) aggregated across the year.
type PaidTaxReader interface {
	TaxesPaid(ctx context.Context, taxpayerID string) (decimal.Decimal, error)
}

// SummaryWriter persists a freshly computed summary. Implementations may
// fan out to a database and a cache.
type SummaryWriter interface {
	SaveSummary(ctx context.Context, summary *domain.TaxSummary) error
}

// ComputationEngine runs the full recompute for one taxpayer: aggregate
// gross income, apply the slab calculator, stamp taxpayer metadata, and
// persist the result. The whole operation commits atomically: nothing is
// persisted unless aggregation and calculation both complete.
type ComputationEngine struct {
	taxpayers  TaxpayerLookup
	paid       PaidTaxReader
	aggregator *IncomeAggregator
	calculator *SlabCalculator
	summaries  SummaryWriter
	logger     Logger
	now        func() time.Time
}

// NewComputationEngine wires the engine. summaries may be nil for callers
// that only want the computed value (e.g. the offline CLI path).
func NewComputationEngine(taxpayers TaxpayerLookup, paid PaidTaxReader, aggregator *IncomeAggregator, calculator *SlabCalculator, summaries SummaryWriter, logger Logger) *ComputationEngine {
	if logger == nil {
		logger = NopLogger{}
	}
	return &ComputationEngine{
		taxpayers:  taxpayers,
		paid:       paid,
		aggregator: aggregator,
		calculator: calculator,
		summaries:  summaries,
		logger:     logger,
		now:        time.Now,
	}
}

// Recompute produces and persists a fresh TaxSummary for the taxpayer.
// Safe to invoke on every save of any category record: the computation is
// idempotent and always rebuilds from the source records.
func (ce *ComputationEngine) Recompute(ctx context.Context, taxpayerID string) (*domain.TaxSummary, error) {
	taxpayer, err := ce.taxpayers.Taxpayer(ctx, taxpayerID)
	if err != nil {
		return nil, fmt.Errorf("taxpayer lookup: %w", err)
	}

	grossIncome, err := ce.aggregator.GrossIncome(ctx, taxpayerID)
	if err != nil {
		return nil, fmt.Errorf("income aggregation: %w", err)
	}

	taxPaid, err := ce.paid.TaxesPaid(ctx, taxpayerID)
	if err != nil {
		return nil, fmt.Errorf("taxes paid lookup: %w", err)
	}

	summary, err := ce.calculator.Compute(grossIncome, taxPaid)
	if err != nil {
		return nil, fmt.Errorf("tax computation: %w", err)
	}
	summary.TaxpayerID = taxpayer.ID
	summary.FinancialYear = taxpayer.FinancialYear
	summary.ITRType = taxpayer.ITRType
	summary.ComputedAt = ce.now().UTC()

	// A cancelled caller must not leave a partially derived summary behind.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if ce.summaries != nil {
		if err := ce.summaries.SaveSummary(ctx, summary); err != nil {
			return nil, fmt.Errorf("persist summary: %w", err)
		}
	}

	ce.logger.Infof("taxpayer %s: gross %s, liability %s, due %s", taxpayer.ID, summary.GrossIncome, summary.TaxLiability, summary.TaxDue)
	return summary, nil
}
