package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/filemytax/tax-engine/internal/domain"
	"github.com/filemytax/tax-engine/pkg/money"
)

// ConsoleFormatter renders a human-readable summary table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(summary *domain.TaxSummary) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Tax Summary")
	if summary.TaxpayerID != "" {
		fmt.Fprintf(&buf, " — taxpayer %s", summary.TaxpayerID)
	}
	if summary.FinancialYear != "" {
		fmt.Fprintf(&buf, " (FY %s)", summary.FinancialYear)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf)

	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Gross Income\t%s\n", money.Rupees(summary.GrossIncome))
	fmt.Fprintf(w, "Taxable Income\t%s\n", money.Rupees(summary.TaxableIncome))
	fmt.Fprintf(w, "Income Tax at Normal Rates\t%s\n", money.Rupees(summary.IncomeTaxAtNormalRates))
	fmt.Fprintf(w, "Health & Education Cess\t%s\n", money.Rupees(summary.HealthAndEducationCess))
	fmt.Fprintf(w, "Tax Liability\t%s\n", money.Rupees(summary.TaxLiability))
	fmt.Fprintf(w, "Tax Paid\t%s\n", money.Rupees(summary.TaxPaid))
	if summary.TaxDue.IsNegative() {
		fmt.Fprintf(w, "Refund Due\t%s\n", money.Rupees(summary.TaxDue.Neg()))
	} else {
		fmt.Fprintf(w, "Tax Due\t%s\n", money.Rupees(summary.TaxDue))
	}
	if summary.ITRType != "" {
		fmt.Fprintf(w, "ITR Type\t%s\n", summary.ITRType)
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
