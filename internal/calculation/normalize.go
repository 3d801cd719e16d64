package calculation

import (
	"github.com/roigo/roi-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	hundred    = decimal.NewFromInt(100)
	twelve     = decimal.NewFromInt(12)
	fiftyTwo   = decimal.NewFromInt(52)
	minusOne   = decimal.NewFromInt(-1)
	maxWeekHrs = decimal.NewFromInt(168)
)

// Normalize fills unset optional fields with the documented defaults,
// records which fields were defaulted, and validates the result. Defaults
// are applied exactly once; re-normalizing NormalizedInputs.AsInputs()
// yields an identical record with nothing marked defaulted.
func Normalize(in domain.ROIInputs) (*domain.NormalizedInputs, error) {
	n := &domain.NormalizedInputs{
		ProcessName:          in.ProcessName,
		WeeklyHours:          in.WeeklyHours,
		TeamSize:             in.TeamSize,
		HourlyRate:           in.HourlyRate,
		AutomationPercentage: in.AutomationPercentage,
		ImplementationCost:   in.ImplementationCost,
		HistoricalBasis:      in.HistoricalBasis,
		IndustryBenchmark:    in.IndustryBenchmark,
		Defaulted:            map[string]bool{},
	}

	if in.TimeframeMonths != nil {
		n.TimeframeMonths = *in.TimeframeMonths
	} else {
		n.TimeframeMonths = domain.DefaultTimeframeMonths
		n.Defaulted[domain.FieldTimeframeMonths] = true
	}
	if in.DiscountRateAnnual != nil {
		n.DiscountRateAnnual = *in.DiscountRateAnnual
	} else {
		n.DiscountRateAnnual = domain.DefaultDiscountRateAnnual
		n.Defaulted[domain.FieldDiscountRateAnnual] = true
	}
	if in.InflationRateAnnual != nil {
		n.InflationRateAnnual = *in.InflationRateAnnual
	} else {
		n.InflationRateAnnual = domain.DefaultInflationRateAnnual
		n.Defaulted[domain.FieldInflationRateAnnual] = true
	}
	if in.MaintenanceCostAnnual != nil {
		n.MaintenanceCostAnnual = *in.MaintenanceCostAnnual
	} else {
		n.MaintenanceCostAnnual = domain.DefaultMaintenanceCostAnnual
		n.Defaulted[domain.FieldMaintenanceCostAnnual] = true
	}
	if in.RiskFactor != nil {
		n.RiskFactor = *in.RiskFactor
	} else {
		n.RiskFactor = domain.DefaultRiskFactor
		n.Defaulted[domain.FieldRiskFactor] = true
	}

	if err := validate(n); err != nil {
		return nil, err
	}
	return n, nil
}

func validate(n *domain.NormalizedInputs) error {
	if n.TimeframeMonths <= 0 {
		return domain.NewInvalidInput(domain.FieldTimeframeMonths, "must be a positive number of months, got %d", n.TimeframeMonths)
	}
	if n.DiscountRateAnnual.LessThanOrEqual(minusOne) {
		return domain.NewInvalidInput(domain.FieldDiscountRateAnnual, "must be greater than -1 for discounting, got %s", n.DiscountRateAnnual)
	}
	if n.WeeklyHours.IsNegative() {
		return domain.NewInvalidInput(domain.FieldWeeklyHours, "cannot be negative, got %s", n.WeeklyHours)
	}
	if n.WeeklyHours.GreaterThan(maxWeekHrs) {
		return domain.NewInvalidInput(domain.FieldWeeklyHours, "cannot exceed 168 hours per week, got %s", n.WeeklyHours)
	}
	if n.TeamSize < 0 {
		return domain.NewInvalidInput(domain.FieldTeamSize, "cannot be negative, got %d", n.TeamSize)
	}
	if n.HourlyRate.IsNegative() {
		return domain.NewInvalidInput(domain.FieldHourlyRate, "cannot be negative, got %s", n.HourlyRate)
	}
	if n.AutomationPercentage.IsNegative() || n.AutomationPercentage.GreaterThan(hundred) {
		return domain.NewInvalidInput(domain.FieldAutomationPercentage, "must be between 0 and 100, got %s", n.AutomationPercentage)
	}
	if n.ImplementationCost.IsNegative() {
		return domain.NewInvalidInput(domain.FieldImplementationCost, "cannot be negative, got %s", n.ImplementationCost)
	}
	if n.MaintenanceCostAnnual.IsNegative() {
		return domain.NewInvalidInput(domain.FieldMaintenanceCostAnnual, "cannot be negative, got %s", n.MaintenanceCostAnnual)
	}
	if !n.RiskFactor.IsPositive() {
		return domain.NewInvalidInput(domain.FieldRiskFactor, "must be positive, got %s", n.RiskFactor)
	}

	// Zero investment makes ROI and the profitability index undefined.
	// The all-zero case additionally means there is nothing to analyze.
	if n.ImplementationCost.IsZero() {
		if AnnualBenefit(n).IsZero() {
			return domain.NewInvalidInput(domain.FieldImplementationCost, "degenerate scenario: total investment and total benefit are both zero")
		}
		return domain.NewInvalidInput(domain.FieldImplementationCost, "total investment is zero; ROI and profitability index are undefined")
	}
	return nil
}

// AnnualBenefit returns the first-year labor saving before inflation:
// weeklyHours x 52 x teamSize x hourlyRate x automation fraction.
func AnnualBenefit(n *domain.NormalizedInputs) decimal.Decimal {
	return n.WeeklyHours.
		Mul(fiftyTwo).
		Mul(decimal.NewFromInt(int64(n.TeamSize))).
		Mul(n.HourlyRate).
		Mul(n.AutomationPercentage.Div(hundred))
}
