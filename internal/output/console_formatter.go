package output

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/roigo/roi-calculator/internal/domain"
)

// ConsoleFormatter provides a human-readable text summary of the report.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	in := report.Inputs
	res := report.Result

	fmt.Fprintln(&buf, "ROI ANALYSIS REPORT")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Process: %s\n", in.ProcessName)
	fmt.Fprintf(&buf, "Scope:   %s h/week x %d people @ %s/h, %s automated\n",
		in.WeeklyHours.StringFixed(1), in.TeamSize, FormatCurrency(in.HourlyRate), in.AutomationPercentage.StringFixed(0)+"%")
	fmt.Fprintf(&buf, "Horizon: %d months, discount %s, inflation %s\n",
		in.TimeframeMonths, FormatPercentage(in.DiscountRateAnnual), FormatPercentage(in.InflationRateAnnual))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "FINANCIAL METRICS")
	fmt.Fprintf(&buf, "  Net Present Value:     %s\n", FormatCurrency(res.NetPresentValue))
	fmt.Fprintf(&buf, "  Internal Rate of Return: %s\n", FormatIRR(res.InternalRateOfReturn))
	fmt.Fprintf(&buf, "  Payback Period:        %s\n", FormatPayback(res.Payback))
	fmt.Fprintf(&buf, "  Total Cost of Ownership: %s\n", FormatCurrency(res.TotalCostOfOwnership))
	fmt.Fprintf(&buf, "  Return on Investment:  %s%%\n", res.ReturnOnInvestmentPercent.StringFixed(1))
	fmt.Fprintf(&buf, "  Profitability Index:   %s\n", res.ProfitabilityIndex.StringFixed(2))
	fmt.Fprintf(&buf, "  Benefit/Cost Ratio:    %s\n", res.BenefitCostRatio.StringFixed(2))
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "CONFIDENCE: %d/100\n", res.ConfidenceScore)
	factors := make([]string, 0, len(res.ConfidenceBreakdown))
	for name := range res.ConfidenceBreakdown {
		factors = append(factors, name)
	}
	sort.Strings(factors)
	for _, name := range factors {
		fmt.Fprintf(&buf, "  %-26s %s\n", name, res.ConfidenceBreakdown[name].StringFixed(2))
	}
	fmt.Fprintln(&buf)

	if len(res.Sensitivity) > 0 {
		fmt.Fprintln(&buf, "SENSITIVITY (tornado order)")
		for _, v := range res.Sensitivity {
			fmt.Fprintf(&buf, "  %-24s impact %s (ROI %s%% .. %s%%)\n",
				v.Name, v.Impact.StringFixed(1), v.LowROIPercent.StringFixed(1), v.HighROIPercent.StringFixed(1))
		}
		fmt.Fprintln(&buf)
	}

	if len(res.Warnings) > 0 {
		fmt.Fprintln(&buf, "WARNINGS")
		for _, w := range res.Warnings {
			fmt.Fprintf(&buf, "  - %s\n", w)
		}
		fmt.Fprintln(&buf)
	}
	if len(res.Limitations) > 0 {
		fmt.Fprintln(&buf, "LIMITATIONS")
		for _, l := range res.Limitations {
			fmt.Fprintf(&buf, "  - %s\n", l)
		}
	}

	return buf.Bytes(), nil
}
