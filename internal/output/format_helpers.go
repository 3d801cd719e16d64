package output

import (
	"strconv"

	"github.com/roigo/roi-calculator/internal/domain"
	money "github.com/roigo/roi-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency renders a decimal amount with a dollar prefix.
func FormatCurrency(d decimal.Decimal) string {
	return money.NewMoneyFromDecimal(d).Format()
}

// FormatPercentage renders a fraction (0.10) as a percentage ("10.00%").
func FormatPercentage(d decimal.Decimal) string {
	return d.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

// FormatIRR renders the IRR outcome, keeping a failed search visibly
// different from a real 0% rate.
func FormatIRR(irr domain.IRROutcome) string {
	if !irr.Converged {
		return "non-convergent"
	}
	return FormatPercentage(irr.Rate)
}

// FormatPayback renders the payback period in months, or "never".
func FormatPayback(p domain.PaybackPeriod) string {
	if !p.Achieved {
		return "never"
	}
	return p.Months.StringFixed(1) + " months"
}

func intToString(v int) string {
	return strconv.Itoa(v)
}
