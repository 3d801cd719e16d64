package domain

import (
	"github.com/shopspring/decimal"
)

// IRROutcome is a tagged result of the internal-rate-of-return solver.
// A failed search is distinguishable from a genuine 0% rate: Converged is
// false and Reason describes why the search stopped.
type IRROutcome struct {
	Converged bool            `json:"converged"`
	Rate      decimal.Decimal `json:"rate"`
	Reason    string          `json:"reason,omitempty"`
}

// ConvergedIRR builds a successful outcome.
func ConvergedIRR(rate decimal.Decimal) IRROutcome {
	return IRROutcome{Converged: true, Rate: rate}
}

// NonConvergentIRR builds a failed outcome with the stopping reason.
func NonConvergentIRR(reason string) IRROutcome {
	return IRROutcome{Reason: reason}
}

// PaybackPeriod is the (possibly fractional) month at which cumulative cash
// flow first turns non-negative. Achieved is false when that never happens
// within the timeframe; Months is meaningless in that case.
type PaybackPeriod struct {
	Achieved bool            `json:"achieved"`
	Months   decimal.Decimal `json:"months"`
}

// SensitivityVariable records one variable's contribution to the tornado
// analysis: the ROI at the low and high perturbation and the absolute
// spread between them.
type SensitivityVariable struct {
	Name           string          `json:"name"`
	BaseValue      decimal.Decimal `json:"base_value"`
	LowValue       decimal.Decimal `json:"low_value"`
	HighValue      decimal.Decimal `json:"high_value"`
	LowROIPercent  decimal.Decimal `json:"low_roi_percent"`
	HighROIPercent decimal.Decimal `json:"high_roi_percent"`
	Impact         decimal.Decimal `json:"impact"`
}

// ROIResult is the complete investment-analysis report for one calculation.
// It is constructed once per Calculate call and never mutated afterwards;
// the engine keeps no reference to it.
type ROIResult struct {
	NetPresentValue           decimal.Decimal `json:"net_present_value"`
	InternalRateOfReturn      IRROutcome      `json:"internal_rate_of_return"`
	Payback                   PaybackPeriod   `json:"payback_period"`
	TotalCostOfOwnership      decimal.Decimal `json:"total_cost_of_ownership"`
	ReturnOnInvestmentPercent decimal.Decimal `json:"return_on_investment_percent"`
	ProfitabilityIndex        decimal.Decimal `json:"profitability_index"`
	BenefitCostRatio          decimal.Decimal `json:"benefit_cost_ratio"`

	ConfidenceScore     int                        `json:"confidence_score"`
	ConfidenceBreakdown map[string]decimal.Decimal `json:"confidence_breakdown"`

	// Sensitivity is sorted by Impact descending (tornado order).
	Sensitivity []SensitivityVariable `json:"sensitivity"`

	Warnings    []string `json:"warnings"`
	Limitations []string `json:"limitations"`
}

// Report bundles the result with the normalized inputs and the full
// cash-flow schedule it was derived from. The schedule is not part of
// ROIResult itself; formatters and exports consume it from here.
type Report struct {
	Inputs   NormalizedInputs `json:"inputs"`
	CashFlow []CashFlowEntry  `json:"cash_flow"`
	Result   ROIResult        `json:"result"`
}
