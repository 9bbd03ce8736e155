package domain

import (
	"github.com/shopspring/decimal"
)

// Per-category income records as persisted by the platform's CRUD layer.
// Amounts are signed; a missing record for any category means "no data yet"
// and must be treated as a zero contribution, never as an error.

// Asset types distinguished by the capital-gains category
const (
	AssetStock      = "stock"
	AssetMutualFund = "mutual_fund"
	AssetForeign    = "foreign_asset"
	AssetLand       = "land"
	AssetBond       = "bond"
	AssetGold       = "gold"
	AssetRSU        = "rsu"
)

// InterestEntry is one interest-bearing instrument (savings account, FD, ...)
type InterestEntry struct {
	Source string          `yaml:"source,omitempty" json:"source,omitempty"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
}

// InterestIncome holds all interest instruments declared by a taxpayer
type InterestIncome struct {
	TaxpayerID string          `yaml:"taxpayer_id,omitempty" json:"taxpayer_id,omitempty"`
	Entries    []InterestEntry `yaml:"entries" json:"entries"`
}

// CapitalGain is the realized profit for one asset type
type CapitalGain struct {
	TaxpayerID  string          `yaml:"taxpayer_id,omitempty" json:"taxpayer_id,omitempty"`
	AssetType   string          `yaml:"asset_type" json:"asset_type"`
	TotalProfit decimal.Decimal `yaml:"total_profit" json:"total_profit"`
}

// DeemedIncome carries the short/long-term deemed capital amounts that are
// declared directly rather than derived from per-asset records
type DeemedIncome struct {
	TaxpayerID string          `yaml:"taxpayer_id,omitempty" json:"taxpayer_id,omitempty"`
	ShortTerm  decimal.Decimal `yaml:"short_term" json:"short_term"`
	LongTerm   decimal.Decimal `yaml:"long_term" json:"long_term"`
}

// DividendIncome is the year's dividend total
type DividendIncome struct {
	TaxpayerID  string          `yaml:"taxpayer_id,omitempty" json:"taxpayer_id,omitempty"`
	TotalAmount decimal.Decimal `yaml:"total_amount" json:"total_amount"`
}

// RentalIncome is the net taxable income from house property
type RentalIncome struct {
	TaxpayerID       string          `yaml:"taxpayer_id,omitempty" json:"taxpayer_id,omitempty"`
	NetTaxableIncome decimal.Decimal `yaml:"net_taxable_income" json:"net_taxable_income"`
}

// ProfessionalIncome is gross professional revenue
type ProfessionalIncome struct {
	TaxpayerID string          `yaml:"taxpayer_id,omitempty" json:"taxpayer_id,omitempty"`
	Revenue    decimal.Decimal `yaml:"revenue" json:"revenue"`
}

// BusinessIncome is presumptive business profit, split by receipt mode.
// The two components are summed before the usable-amount rule applies.
type BusinessIncome struct {
	TaxpayerID    string          `yaml:"taxpayer_id,omitempty" json:"taxpayer_id,omitempty"`
	CashProfit    decimal.Decimal `yaml:"cash_profit" json:"cash_profit"`
	DigitalProfit decimal.Decimal `yaml:"digital_profit" json:"digital_profit"`
}

// ProfitLoss is the generic profit-and-loss statement total
type ProfitLoss struct {
	TaxpayerID string          `yaml:"taxpayer_id,omitempty" json:"taxpayer_id,omitempty"`
	Total      decimal.Decimal `yaml:"total" json:"total"`
}

// TDSRecord carries the tax-deducted-at-source balance; only the excess over
// the regime's exemption threshold counts toward gross income
type TDSRecord struct {
	TaxpayerID string          `yaml:"taxpayer_id,omitempty" json:"taxpayer_id,omitempty"`
	Balance    decimal.Decimal `yaml:"balance" json:"balance"`
}

// IncomeSnapshot bundles a taxpayer with every category record, as loaded
// from a snapshot file for offline computation. Nil pointers mean the
// category has no record.
type IncomeSnapshot struct {
	Taxpayer     Taxpayer            `yaml:"taxpayer" json:"taxpayer"`
	Interest     *InterestIncome     `yaml:"interest,omitempty" json:"interest,omitempty"`
	CapitalGains []CapitalGain       `yaml:"capital_gains,omitempty" json:"capital_gains,omitempty"`
	Deemed       *DeemedIncome       `yaml:"deemed,omitempty" json:"deemed,omitempty"`
	Dividends    *DividendIncome     `yaml:"dividends,omitempty" json:"dividends,omitempty"`
	Rent         *RentalIncome       `yaml:"rent,omitempty" json:"rent,omitempty"`
	Professional *ProfessionalIncome `yaml:"professional,omitempty" json:"professional,omitempty"`
	Business     *BusinessIncome     `yaml:"business,omitempty" json:"business,omitempty"`
	ProfitLoss   *ProfitLoss         `yaml:"profit_loss,omitempty" json:"profit_loss,omitempty"`
	TDS          *TDSRecord          `yaml:"tds,omitempty" json:"tds,omitempty"`
	TaxesPaid    decimal.Decimal     `yaml:"taxes_paid" json:"taxes_paid"`
}
