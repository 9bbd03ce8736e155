package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxSummary is the flat record produced by a full recompute. It is a
// derived value, never a source of truth: every change to any category
// record triggers a full recompute from the source records, and a stale
// summary is safe to discard and regenerate.
type TaxSummary struct {
	TaxpayerID    string        `json:"taxpayer_id"`
	FinancialYear FinancialYear `json:"financial_year"`
	ITRType       string        `json:"itr_type,omitempty"`

	GrossIncome            decimal.Decimal `json:"gross_income"`
	TaxableIncome          decimal.Decimal `json:"taxable_income"`
	IncomeTaxAtNormalRates decimal.Decimal `json:"income_tax_at_normal_rates"`
	HealthAndEducationCess decimal.Decimal `json:"health_and_education_cess"`
	TaxLiability           decimal.Decimal `json:"tax_liability"`
	TaxPaid                decimal.Decimal `json:"tax_paid"`
	// TaxDue is signed: negative means a refund is owed to the taxpayer.
	TaxDue decimal.Decimal `json:"tax_due"`

	ComputedAt time.Time `json:"computed_at,omitempty"`
}
