package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filemytax/tax-engine/internal/config"
	"github.com/filemytax/tax-engine/internal/domain"
)

func newRegimeCalculator(t *testing.T) *SlabCalculator {
	t.Helper()
	calc, err := NewSlabCalculator(config.DefaultNewRegime())
	require.NoError(t, err)
	return calc
}

func TestSlabTaxComputation(t *testing.T) {
	calc := newRegimeCalculator(t)

	tests := []struct {
		name              string
		grossIncome       decimal.Decimal
		taxPaid           decimal.Decimal
		expectedTaxable   decimal.Decimal
		expectedTax       decimal.Decimal
		expectedCess      decimal.Decimal
		expectedLiability decimal.Decimal
		expectedDue       decimal.Decimal
	}{
		{
			name:              "zero income",
			grossIncome:       decimal.Zero,
			taxPaid:           decimal.Zero,
			expectedTaxable:   decimal.Zero,
			expectedTax:       decimal.Zero,
			expectedCess:      decimal.Zero,
			expectedLiability: decimal.Zero,
			expectedDue:       decimal.Zero,
		},
		{
			name:              "income entirely in nil slabs",
			grossIncome:       decimal.NewFromInt(280000),
			taxPaid:           decimal.Zero,
			expectedTaxable:   decimal.NewFromInt(280000),
			expectedTax:       decimal.Zero,
			expectedCess:      decimal.Zero,
			expectedLiability: decimal.Zero,
			expectedDue:       decimal.Zero,
		},
		{
			name:              "marginal slices across two taxed slabs",
			grossIncome:       decimal.NewFromInt(600000),
			taxPaid:           decimal.Zero,
			expectedTaxable:   decimal.NewFromInt(600000),
			expectedTax:       decimal.NewFromInt(20000), // 200000*0.05 + 100000*0.10
			expectedCess:      decimal.NewFromInt(800),   // 20000 * 0.04
			expectedLiability: decimal.NewFromInt(20800),
			expectedDue:       decimal.NewFromInt(20800),
		},
		{
			name:              "20 percent slice above 1250000 taxed marginally only",
			grossIncome:       decimal.NewFromInt(1300000),
			taxPaid:           decimal.Zero,
			expectedTaxable:   decimal.NewFromInt(1300000),
			expectedTax:       decimal.NewFromInt(132500), // 10000+25000+37500+50000+10000
			expectedCess:      decimal.NewFromInt(5300),
			expectedLiability: decimal.NewFromInt(137800),
			expectedDue:       decimal.NewFromInt(137800),
		},
		{
			name:              "top unbounded slab",
			grossIncome:       decimal.NewFromInt(2000000),
			taxPaid:           decimal.Zero,
			expectedTaxable:   decimal.NewFromInt(2000000),
			expectedTax:       decimal.NewFromInt(322500), // 172500 to 15L + 500000*0.30
			expectedCess:      decimal.NewFromInt(12900),
			expectedLiability: decimal.NewFromInt(335400),
			expectedDue:       decimal.NewFromInt(335400),
		},
		{
			name:              "gross rounds to taxable before slab walk",
			grossIncome:       decimal.NewFromInt(600004),
			taxPaid:           decimal.Zero,
			expectedTaxable:   decimal.NewFromInt(600000),
			expectedTax:       decimal.NewFromInt(20000),
			expectedCess:      decimal.NewFromInt(800),
			expectedLiability: decimal.NewFromInt(20800),
			expectedDue:       decimal.NewFromInt(20800),
		},
		{
			name:              "liability rounds to nearest ten",
			grossIncome:       decimal.NewFromInt(312344),
			taxPaid:           decimal.Zero,
			expectedTaxable:   decimal.NewFromInt(312340),
			expectedTax:       decimal.NewFromInt(617),     // 12340 * 0.05
			expectedCess:      decimal.NewFromFloat(24.68), // 617 * 0.04
			expectedLiability: decimal.NewFromInt(640),     // 641.68 rounds down to 640
			expectedDue:       decimal.NewFromInt(640),
		},
		{
			name:              "refund when paid exceeds liability",
			grossIncome:       decimal.NewFromInt(200000),
			taxPaid:           decimal.NewFromInt(5000),
			expectedTaxable:   decimal.NewFromInt(200000),
			expectedTax:       decimal.Zero,
			expectedCess:      decimal.Zero,
			expectedLiability: decimal.Zero,
			expectedDue:       decimal.NewFromInt(-5000),
		},
		{
			name:              "due nets against paid",
			grossIncome:       decimal.NewFromInt(600000),
			taxPaid:           decimal.NewFromInt(12000),
			expectedTaxable:   decimal.NewFromInt(600000),
			expectedTax:       decimal.NewFromInt(20000),
			expectedCess:      decimal.NewFromInt(800),
			expectedLiability: decimal.NewFromInt(20800),
			expectedDue:       decimal.NewFromInt(8800),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := calc.Compute(tt.grossIncome, tt.taxPaid)
			require.NoError(t, err)

			assert.True(t, tt.grossIncome.Equal(summary.GrossIncome), "gross: got %s", summary.GrossIncome)
			assert.True(t, tt.expectedTaxable.Equal(summary.TaxableIncome), "taxable: got %s", summary.TaxableIncome)
			assert.True(t, tt.expectedTax.Equal(summary.IncomeTaxAtNormalRates), "tax: got %s", summary.IncomeTaxAtNormalRates)
			assert.True(t, tt.expectedCess.Equal(summary.HealthAndEducationCess), "cess: got %s", summary.HealthAndEducationCess)
			assert.True(t, tt.expectedLiability.Equal(summary.TaxLiability), "liability: got %s", summary.TaxLiability)
			assert.True(t, tt.expectedDue.Equal(summary.TaxDue), "due: got %s", summary.TaxDue)
		})
	}
}

func TestTaxableAndLiabilityAreMultiplesOfTen(t *testing.T) {
	calc := newRegimeCalculator(t)
	ten := decimal.NewFromInt(10)

	for _, gross := range []int64{1, 49, 123456, 312344, 555555, 999999, 1234567, 7654321} {
		summary, err := calc.Compute(decimal.NewFromInt(gross), decimal.Zero)
		require.NoError(t, err)
		assert.True(t, summary.TaxableIncome.Mod(ten).IsZero(), "taxable %s not a multiple of 10", summary.TaxableIncome)
		assert.True(t, summary.TaxLiability.Mod(ten).IsZero(), "liability %s not a multiple of 10", summary.TaxLiability)
	}
}

func TestNegativeGrossIncomeRejected(t *testing.T) {
	calc := newRegimeCalculator(t)

	_, err := calc.Compute(decimal.NewFromInt(-1), decimal.Zero)
	assert.ErrorIs(t, err, ErrNegativeIncome)
}

func TestNewSlabCalculatorRejectsInvalidRegime(t *testing.T) {
	regime := config.DefaultNewRegime()
	// Swap two limits so they are no longer increasing
	regime.Slabs[1], regime.Slabs[2] = regime.Slabs[2], regime.Slabs[1]

	_, err := NewSlabCalculator(regime)
	assert.ErrorIs(t, err, domain.ErrInvalidRegime)
}

func TestComputeIsDeterministic(t *testing.T) {
	calc := newRegimeCalculator(t)

	first, err := calc.Compute(decimal.NewFromInt(1300000), decimal.NewFromInt(100000))
	require.NoError(t, err)
	second, err := calc.Compute(decimal.NewFromInt(1300000), decimal.NewFromInt(100000))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
