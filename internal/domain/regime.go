package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidRegime marks a malformed slab table or cess configuration.
// A regime failing validation must never be used for computation.
var ErrInvalidRegime = errors.New("invalid tax regime")

// Slab is one bracket of a progressive tax table. UpTo is the inclusive
// upper limit of the bracket; a zero UpTo marks the final, unbounded slab.
// The rate applies only to the slice of income inside the bracket.
type Slab struct {
	UpTo decimal.Decimal `yaml:"up_to" json:"up_to"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// Unbounded reports whether this is the open-ended top slab
func (s Slab) Unbounded() bool {
	return s.UpTo.IsZero()
}

// TaxRegime is the immutable rate configuration for one regime and year:
// the slab table, the health-and-education cess rate, and the TDS exemption
// threshold used by the aggregator.
type TaxRegime struct {
	Name                  string          `yaml:"name" json:"name"`
	Slabs                 []Slab          `yaml:"slabs" json:"slabs"`
	CessRate              decimal.Decimal `yaml:"cess_rate" json:"cess_rate"`
	TDSExemptionThreshold decimal.Decimal `yaml:"tds_exemption_threshold" json:"tds_exemption_threshold"`
}

// Validate checks the structural invariants: at least one slab, strictly
// increasing finite limits, non-decreasing and non-negative rates, exactly
// one unbounded slab in the last position, and a cess rate in [0, 1).
func (r TaxRegime) Validate() error {
	if len(r.Slabs) == 0 {
		return fmt.Errorf("%w: no slabs defined", ErrInvalidRegime)
	}

	one := decimal.NewFromInt(1)
	prevLimit := decimal.Zero
	prevRate := decimal.Decimal{}
	for i, s := range r.Slabs {
		last := i == len(r.Slabs)-1
		if s.Unbounded() && !last {
			return fmt.Errorf("%w: slab %d has no upper limit but is not the last slab", ErrInvalidRegime, i)
		}
		if last && !s.Unbounded() {
			return fmt.Errorf("%w: last slab must be unbounded", ErrInvalidRegime)
		}
		if !s.Unbounded() && s.UpTo.LessThanOrEqual(prevLimit) {
			return fmt.Errorf("%w: slab limits must be strictly increasing (slab %d)", ErrInvalidRegime, i)
		}
		if s.Rate.IsNegative() || s.Rate.GreaterThanOrEqual(one) {
			return fmt.Errorf("%w: slab %d rate %s out of range", ErrInvalidRegime, i, s.Rate)
		}
		if i > 0 && s.Rate.LessThan(prevRate) {
			return fmt.Errorf("%w: slab rates must be non-decreasing (slab %d)", ErrInvalidRegime, i)
		}
		if !s.Unbounded() {
			prevLimit = s.UpTo
		}
		prevRate = s.Rate
	}

	if r.CessRate.IsNegative() || r.CessRate.GreaterThanOrEqual(one) {
		return fmt.Errorf("%w: cess rate %s out of range", ErrInvalidRegime, r.CessRate)
	}
	if r.TDSExemptionThreshold.IsNegative() {
		return fmt.Errorf("%w: TDS exemption threshold must not be negative", ErrInvalidRegime)
	}
	return nil
}
