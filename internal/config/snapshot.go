package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/filemytax/tax-engine/internal/domain"
)

// LoadSnapshot reads an income snapshot file: one taxpayer plus whatever
// category records exist for them. Absent categories are simply omitted
// from the document.
func LoadSnapshot(filename string) (*domain.IncomeSnapshot, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var snap domain.IncomeSnapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ValidateSnapshot(&snap); err != nil {
		return nil, fmt.Errorf("snapshot validation failed: %w", err)
	}

	return &snap, nil
}

// ExampleSnapshot returns a filled-in snapshot a user can dump and edit to
// get started with the compute command.
func ExampleSnapshot() *domain.IncomeSnapshot {
	return &domain.IncomeSnapshot{
		Taxpayer: domain.Taxpayer{
			ID:            "tp-1001",
			PAN:           "ABCDE1234F",
			Name:          "Asha Verma",
			ITRType:       "ITR-2",
			FinancialYear: domain.NewFinancialYear(2024),
		},
		Interest: &domain.InterestIncome{Entries: []domain.InterestEntry{
			{Source: "savings", Amount: decimal.NewFromInt(18000)},
			{Source: "fixed_deposit", Amount: decimal.NewFromInt(42000)},
		}},
		CapitalGains: []domain.CapitalGain{
			{AssetType: domain.AssetStock, TotalProfit: decimal.NewFromInt(75000)},
			{AssetType: domain.AssetMutualFund, TotalProfit: decimal.NewFromInt(-12000)},
		},
		Dividends: &domain.DividendIncome{TotalAmount: decimal.NewFromInt(9500)},
		Rent:      &domain.RentalIncome{NetTaxableIncome: decimal.NewFromInt(240000)},
		TDS:       &domain.TDSRecord{Balance: decimal.NewFromInt(64000)},
		TaxesPaid: decimal.NewFromInt(21000),
	}
}

// ValidateSnapshot checks the snapshot is internally consistent
func ValidateSnapshot(snap *domain.IncomeSnapshot) error {
	if snap.Taxpayer.ID == "" {
		return fmt.Errorf("taxpayer id is required")
	}
	if snap.Taxpayer.FinancialYear != "" && !snap.Taxpayer.FinancialYear.Valid() {
		return fmt.Errorf("financial year %q is not of the form YYYY-YY", snap.Taxpayer.FinancialYear)
	}
	if snap.TaxesPaid.IsNegative() {
		return fmt.Errorf("taxes_paid cannot be negative")
	}
	for i, cg := range snap.CapitalGains {
		if cg.AssetType == "" {
			return fmt.Errorf("capital_gains[%d]: asset_type is required", i)
		}
	}
	return nil
}
