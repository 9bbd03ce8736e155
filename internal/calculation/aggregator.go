package calculation

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/filemytax/tax-engine/internal/domain"
	"github.com/filemytax/tax-engine/pkg/money"
)

// CategoryReader is the read-only view of the per-category income records.
// Each method returns (nil, nil) when the taxpayer has no record for that
// category; that is the normal "no data yet" case, not an error.
type CategoryReader interface {
	Interest(ctx context.Context, taxpayerID string) (*domain.InterestIncome, error)
	CapitalGains(ctx context.Context, taxpayerID string) ([]domain.CapitalGain, error)
	Deemed(ctx context.Context, taxpayerID string) (*domain.DeemedIncome, error)
	Dividends(ctx context.Context, taxpayerID string) (*domain.DividendIncome, error)
	Rent(ctx context.Context, taxpayerID string) (*domain.RentalIncome, error)
	Professional(ctx context.Context, taxpayerID string) (*domain.ProfessionalIncome, error)
	Business(ctx context.Context, taxpayerID string) (*domain.BusinessIncome, error)
	ProfitLoss(ctx context.Context, taxpayerID string) (*domain.ProfitLoss, error)
	TDS(ctx context.Context, taxpayerID string) (*domain.TDSRecord, error)
}

// DefaultFetchTimeout bounds each category fetch so one slow source cannot
// stall the whole aggregation.
const DefaultFetchTimeout = 3 * time.Second

// categoryRule pairs a category tag with the fetch-and-extract function that
// yields the category's usable contribution. The table is iterated
// uniformly; adding a category is adding a row.
type categoryRule struct {
	tag   string
	fetch func(ctx context.Context, taxpayerID string) (decimal.Decimal, error)
}

// IncomeAggregator folds every income category into a single non-negative
// gross income. The usable-amount policy is applied per category: missing
// records and losses contribute zero, positive amounts count exactly, and
// the TDS balance counts only above the regime's exemption threshold.
type IncomeAggregator struct {
	fetchTimeout time.Duration
	logger       Logger
	rules        []categoryRule
}

// AggregatorOption configures an IncomeAggregator
type AggregatorOption func(*IncomeAggregator)

// WithFetchTimeout overrides the per-category fetch timeout
func WithFetchTimeout(d time.Duration) AggregatorOption {
	return func(a *IncomeAggregator) { a.fetchTimeout = d }
}

// WithLogger sets the aggregator's logger
func WithLogger(l Logger) AggregatorOption {
	return func(a *IncomeAggregator) { a.logger = l }
}

// NewIncomeAggregator builds the ordered category table over a reader. The
// regime supplies the TDS exemption threshold.
func NewIncomeAggregator(reader CategoryReader, regime domain.TaxRegime, opts ...AggregatorOption) *IncomeAggregator {
	a := &IncomeAggregator{
		fetchTimeout: DefaultFetchTimeout,
		logger:       NopLogger{},
	}
	tdsThreshold := regime.TDSExemptionThreshold

	a.rules = []categoryRule{
		{"interest", func(ctx context.Context, id string) (decimal.Decimal, error) {
			rec, err := reader.Interest(ctx, id)
			if err != nil || rec == nil {
				return decimal.Zero, err
			}
			total := decimal.Zero
			for _, e := range rec.Entries {
				total = total.Add(money.PositiveOrZero(e.Amount))
			}
			return total, nil
		}},
		{"capital_gains", func(ctx context.Context, id string) (decimal.Decimal, error) {
			gains, err := reader.CapitalGains(ctx, id)
			if err != nil {
				return decimal.Zero, err
			}
			total := decimal.Zero
			for _, g := range gains {
				total = total.Add(money.PositiveOrZero(g.TotalProfit))
			}
			return total, nil
		}},
		{"deemed", func(ctx context.Context, id string) (decimal.Decimal, error) {
			rec, err := reader.Deemed(ctx, id)
			if err != nil || rec == nil {
				return decimal.Zero, err
			}
			return money.PositiveOrZero(rec.ShortTerm).Add(money.PositiveOrZero(rec.LongTerm)), nil
		}},
		{"dividends", func(ctx context.Context, id string) (decimal.Decimal, error) {
			rec, err := reader.Dividends(ctx, id)
			if err != nil || rec == nil {
				return decimal.Zero, err
			}
			return money.PositiveOrZero(rec.TotalAmount), nil
		}},
		{"rent", func(ctx context.Context, id string) (decimal.Decimal, error) {
			rec, err := reader.Rent(ctx, id)
			if err != nil || rec == nil {
				return decimal.Zero, err
			}
			return money.PositiveOrZero(rec.NetTaxableIncome), nil
		}},
		{"professional", func(ctx context.Context, id string) (decimal.Decimal, error) {
			rec, err := reader.Professional(ctx, id)
			if err != nil || rec == nil {
				return decimal.Zero, err
			}
			return money.PositiveOrZero(rec.Revenue), nil
		}},
		{"business", func(ctx context.Context, id string) (decimal.Decimal, error) {
			rec, err := reader.Business(ctx, id)
			if err != nil || rec == nil {
				return decimal.Zero, err
			}
			return money.PositiveOrZero(rec.CashProfit.Add(rec.DigitalProfit)), nil
		}},
		{"profit_loss", func(ctx context.Context, id string) (decimal.Decimal, error) {
			rec, err := reader.ProfitLoss(ctx, id)
			if err != nil || rec == nil {
				return decimal.Zero, err
			}
			return money.PositiveOrZero(rec.Total), nil
		}},
		{"tds", func(ctx context.Context, id string) (decimal.Decimal, error) {
			rec, err := reader.TDS(ctx, id)
			if err != nil || rec == nil {
				return decimal.Zero, err
			}
			return money.ThresholdExcess(rec.Balance, tdsThreshold), nil
		}},
	}

	for _, opt := range opts {
		opt(a)
	}
	return a
}

// GrossIncome fetches every category concurrently and sums the usable
// contributions. A failing or timed-out category is logged and contributes
// zero; only caller cancellation aborts the aggregation, so a returned
// total is always complete with respect to the categories that answered.
func (a *IncomeAggregator) GrossIncome(ctx context.Context, taxpayerID string) (decimal.Decimal, error) {
	contributions := make([]decimal.Decimal, len(a.rules))

	g, gctx := errgroup.WithContext(ctx)
	for i, rule := range a.rules {
		i, rule := i, rule
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(gctx, a.fetchTimeout)
			defer cancel()

			amount, err := rule.fetch(fctx, taxpayerID)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				a.logger.Warnf("category %s: fetch failed for taxpayer %s, contributing zero: %v", rule.tag, taxpayerID, err)
				contributions[i] = decimal.Zero
				return nil
			}
			contributions[i] = amount
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return decimal.Zero, err
	}

	gross := decimal.Zero
	for i, c := range contributions {
		if c.IsPositive() {
			a.logger.Debugf("category %s: contributes %s", a.rules[i].tag, c)
		}
		gross = gross.Add(c)
	}
	return gross, nil
}
