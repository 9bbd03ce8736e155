package money

import (
	"github.com/shopspring/decimal"
)

var ten = decimal.NewFromInt(10)

// PositiveOrZero floors a signed amount at zero. Losses within an income
// category never offset other categories, so every category contribution
// passes through this before summation.
func PositiveOrZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// RoundToNearestTen rounds to the nearest multiple of ten, ties away from
// zero. Taxable income and final tax liability both use this policy.
func RoundToNearestTen(d decimal.Decimal) decimal.Decimal {
	return d.Div(ten).Round(0).Mul(ten)
}

// ThresholdExcess returns the amount by which balance exceeds threshold,
// floored at zero. Used for the TDS statutory exemption rule.
func ThresholdExcess(balance, threshold decimal.Decimal) decimal.Decimal {
	return PositiveOrZero(balance.Sub(threshold))
}

// Min returns the smaller of two amounts
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the larger of two amounts
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Rupees formats an amount for display with two decimal places
func Rupees(d decimal.Decimal) string {
	return "₹" + d.StringFixed(2)
}
