package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/filemytax/tax-engine/internal/domain"
)

// RegimeFile is the on-disk format: one or more named regimes
type RegimeFile struct {
	Regimes []domain.TaxRegime `yaml:"regimes"`
}

// RegimeParser handles parsing of regime configuration files
type RegimeParser struct{}

// NewRegimeParser creates a new regime parser
func NewRegimeParser() *RegimeParser {
	return &RegimeParser{}
}

// LoadFromFile loads and validates every regime in a YAML file
func (rp *RegimeParser) LoadFromFile(filename string) (*RegimeFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var file RegimeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := rp.ValidateFile(&file); err != nil {
		return nil, fmt.Errorf("regime validation failed: %w", err)
	}

	return &file, nil
}

// ValidateFile validates the loaded regime file
func (rp *RegimeParser) ValidateFile(file *RegimeFile) error {
	if len(file.Regimes) == 0 {
		return fmt.Errorf("no regimes provided")
	}

	seen := make(map[string]bool, len(file.Regimes))
	for i, regime := range file.Regimes {
		if regime.Name == "" {
			return fmt.Errorf("regime %d: name is required", i)
		}
		if seen[regime.Name] {
			return fmt.Errorf("regime %q defined twice", regime.Name)
		}
		seen[regime.Name] = true
		if err := regime.Validate(); err != nil {
			return fmt.Errorf("regime %q: %w", regime.Name, err)
		}
	}
	return nil
}

// Regime selects a regime by name from the file
func (f *RegimeFile) Regime(name string) (domain.TaxRegime, error) {
	for _, r := range f.Regimes {
		if r.Name == name {
			return r, nil
		}
	}
	return domain.TaxRegime{}, fmt.Errorf("regime %q not found", name)
}

// DefaultNewRegime returns the built-in new-regime slab table used when no
// regime file is supplied: nil tax to 3L, then 5/10/15/20/20/30 percent
// marginal slices, 4% cess, and the 50000 TDS exemption threshold.
func DefaultNewRegime() domain.TaxRegime {
	return domain.TaxRegime{
		Name: "new",
		Slabs: []domain.Slab{
			{UpTo: decimal.NewFromInt(250000), Rate: decimal.Zero},
			{UpTo: decimal.NewFromInt(300000), Rate: decimal.Zero},
			{UpTo: decimal.NewFromInt(500000), Rate: decimal.NewFromFloat(0.05)},
			{UpTo: decimal.NewFromInt(750000), Rate: decimal.NewFromFloat(0.10)},
			{UpTo: decimal.NewFromInt(1000000), Rate: decimal.NewFromFloat(0.15)},
			{UpTo: decimal.NewFromInt(1250000), Rate: decimal.NewFromFloat(0.20)},
			{UpTo: decimal.NewFromInt(1500000), Rate: decimal.NewFromFloat(0.20)},
			{Rate: decimal.NewFromFloat(0.30)},
		},
		CessRate:              decimal.NewFromFloat(0.04),
		TDSExemptionThreshold: decimal.NewFromInt(50000),
	}
}
