package calculation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/filemytax/tax-engine/internal/domain"
	"github.com/filemytax/tax-engine/pkg/money"
)

// ErrNegativeIncome marks a negative gross income reaching the calculator.
// The aggregator guarantees non-negative totals, so this only fires on a
// caller bug; the input is rejected rather than coerced.
var ErrNegativeIncome = errors.New("gross income must not be negative")

// SlabCalculator computes slab tax, cess, and the net due/refund position
// for one tax regime. It is pure: no I/O, deterministic for fixed inputs.
type SlabCalculator struct {
	regime domain.TaxRegime
}

// NewSlabCalculator validates the regime and returns a calculator for it
func NewSlabCalculator(regime domain.TaxRegime) (*SlabCalculator, error) {
	if err := regime.Validate(); err != nil {
		return nil, err
	}
	return &SlabCalculator{regime: regime}, nil
}

// Regime returns the regime the calculator was built with
func (sc *SlabCalculator) Regime() domain.TaxRegime {
	return sc.regime
}

// Compute produces a TaxSummary from an aggregated gross income and the tax
// already paid during the year:
//
//  1. taxable income = gross rounded to the nearest 10
//  2. income tax     = marginal walk over the slab table
//  3. cess           = income tax × cess rate
//  4. liability      = (tax + cess) rounded to the nearest 10
//  5. due            = liability − paid  (negative means refund)
func (sc *SlabCalculator) Compute(grossIncome, taxPaid decimal.Decimal) (*domain.TaxSummary, error) {
	if grossIncome.IsNegative() {
		return nil, fmt.Errorf("%w: got %s", ErrNegativeIncome, grossIncome)
	}

	taxableIncome := money.RoundToNearestTen(grossIncome)
	incomeTax := sc.slabTax(taxableIncome)
	cess := incomeTax.Mul(sc.regime.CessRate)
	liability := money.RoundToNearestTen(incomeTax.Add(cess))

	return &domain.TaxSummary{
		GrossIncome:            grossIncome,
		TaxableIncome:          taxableIncome,
		IncomeTaxAtNormalRates: incomeTax,
		HealthAndEducationCess: cess,
		TaxLiability:           liability,
		TaxPaid:                taxPaid,
		TaxDue:                 liability.Sub(taxPaid),
	}, nil
}

// slabTax walks the ordered slab table and taxes the slice of income inside
// each slab at that slab's rate, stopping once the taxable income falls
// within the current slab. The last slab is unbounded and acts as the top
// marginal rate.
func (sc *SlabCalculator) slabTax(taxableIncome decimal.Decimal) decimal.Decimal {
	totalTax := decimal.Zero
	prevLimit := decimal.Zero

	for _, slab := range sc.regime.Slabs {
		if taxableIncome.LessThanOrEqual(prevLimit) {
			break
		}
		upper := taxableIncome
		if !slab.Unbounded() {
			upper = decimal.Min(taxableIncome, slab.UpTo)
		}
		incomeInSlab := upper.Sub(prevLimit)
		if incomeInSlab.GreaterThan(decimal.Zero) {
			totalTax = totalTax.Add(incomeInSlab.Mul(slab.Rate))
		}
		if slab.Unbounded() {
			break
		}
		prevLimit = slab.UpTo
	}

	return totalTax
}
