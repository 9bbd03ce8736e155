package domain

import (
	"fmt"
	"regexp"
)

// FinancialYear labels an April–March assessment period, e.g. "2024-25".
type FinancialYear string

var fyPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// NewFinancialYear builds the label for the year starting in April of startYear
func NewFinancialYear(startYear int) FinancialYear {
	return FinancialYear(fmt.Sprintf("%04d-%02d", startYear, (startYear+1)%100))
}

// Valid reports whether the label has the YYYY-YY form
func (fy FinancialYear) Valid() bool {
	return fyPattern.MatchString(string(fy))
}

func (fy FinancialYear) String() string {
	return string(fy)
}

// Taxpayer identifies one filer. The identifier and ITR type are assigned by
// the surrounding platform (auth / return-selection layers); this core only
// carries them through to the summary.
type Taxpayer struct {
	ID            string        `yaml:"id" json:"id"`
	PAN           string        `yaml:"pan,omitempty" json:"pan,omitempty"`
	Name          string        `yaml:"name,omitempty" json:"name,omitempty"`
	ITRType       string        `yaml:"itr_type,omitempty" json:"itr_type,omitempty"`
	FinancialYear FinancialYear `yaml:"financial_year" json:"financial_year"`
}
