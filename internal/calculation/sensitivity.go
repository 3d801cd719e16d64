package calculation

import (
	"math"
	"sort"
	"sync"

	"github.com/roigo/roi-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultSensitivityVariables is the standard tornado candidate set.
var DefaultSensitivityVariables = []string{
	domain.FieldAutomationPercentage,
	domain.FieldHourlyRate,
	domain.FieldImplementationCost,
	domain.FieldTimeframeMonths,
}

// DefaultSensitivityRange is the standard perturbation, +/-20%.
var DefaultSensitivityRange = decimal.NewFromFloat(0.20)

// AnalyzeSensitivity perturbs each variable to base*(1-range) and
// base*(1+range), re-runs the full normalize/project/metrics pipeline on
// each derived record, and ranks variables by the absolute ROI spread.
// Every sweep is independent, so they fan out on goroutines into
// pre-indexed slots; the returned list is sorted by impact descending with
// a name tiebreak, so the tornado order is deterministic regardless of
// completion order.
func AnalyzeSensitivity(base *domain.NormalizedInputs, variables []string, rng decimal.Decimal, logger Logger) []domain.SensitivityVariable {
	if logger == nil {
		logger = NopLogger{}
	}
	if len(variables) == 0 {
		variables = DefaultSensitivityVariables
	}
	if !rng.IsPositive() {
		rng = DefaultSensitivityRange
	}

	results := make([]domain.SensitivityVariable, len(variables))
	var wg sync.WaitGroup
	for i, name := range variables {
		wg.Add(1)
		go func(slot int, field string) {
			defer wg.Done()
			results[slot] = sweepVariable(base, field, rng, logger)
		}(i, name)
	}
	wg.Wait()

	// Unknown or unsweepable variables come back with an empty name.
	ranked := results[:0]
	for _, r := range results {
		if r.Name != "" {
			ranked = append(ranked, r)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if !ranked[i].Impact.Equal(ranked[j].Impact) {
			return ranked[i].Impact.GreaterThan(ranked[j].Impact)
		}
		return ranked[i].Name < ranked[j].Name
	})
	return ranked
}

func sweepVariable(base *domain.NormalizedInputs, field string, rng decimal.Decimal, logger Logger) domain.SensitivityVariable {
	baseValue, ok := variableValue(base, field)
	if !ok {
		logger.Warnf("sensitivity: unknown variable %q, skipping", field)
		return domain.SensitivityVariable{}
	}

	one := decimal.NewFromInt(1)
	low, lowValue, okLow := perturbedROI(base, field, one.Sub(rng), logger)
	high, highValue, okHigh := perturbedROI(base, field, one.Add(rng), logger)
	if !okLow || !okHigh {
		return domain.SensitivityVariable{}
	}

	return domain.SensitivityVariable{
		Name:           field,
		BaseValue:      baseValue,
		LowValue:       lowValue,
		HighValue:      highValue,
		LowROIPercent:  low,
		HighROIPercent: high,
		Impact:         high.Sub(low).Abs(),
	}
}

// perturbedROI scales one field of a derived copy of the base inputs and
// runs it through the same pipeline the primary result used. Sensitivity
// never re-implements the math; it composes it.
func perturbedROI(base *domain.NormalizedInputs, field string, factor decimal.Decimal, logger Logger) (roi, value decimal.Decimal, ok bool) {
	in := base.AsInputs()
	value, ok = scaleVariable(&in, field, factor)
	if !ok {
		return decimal.Zero, decimal.Zero, false
	}

	n, err := Normalize(in)
	if err != nil {
		logger.Warnf("sensitivity: %s at factor %s rejected: %v", field, factor, err)
		return decimal.Zero, decimal.Zero, false
	}
	metrics, err := ComputeMetrics(n, ProjectCashFlows(n))
	if err != nil {
		logger.Warnf("sensitivity: %s at factor %s failed: %v", field, factor, err)
		return decimal.Zero, decimal.Zero, false
	}
	return metrics.ReturnOnInvestmentPercent, value, true
}

// variableValue reads the base value of a sweepable field.
func variableValue(n *domain.NormalizedInputs, field string) (decimal.Decimal, bool) {
	switch field {
	case domain.FieldWeeklyHours:
		return n.WeeklyHours, true
	case domain.FieldTeamSize:
		return decimal.NewFromInt(int64(n.TeamSize)), true
	case domain.FieldHourlyRate:
		return n.HourlyRate, true
	case domain.FieldAutomationPercentage:
		return n.AutomationPercentage, true
	case domain.FieldImplementationCost:
		return n.ImplementationCost, true
	case domain.FieldTimeframeMonths:
		return decimal.NewFromInt(int64(n.TimeframeMonths)), true
	case domain.FieldDiscountRateAnnual:
		return n.DiscountRateAnnual, true
	case domain.FieldInflationRateAnnual:
		return n.InflationRateAnnual, true
	case domain.FieldMaintenanceCostAnnual:
		return n.MaintenanceCostAnnual, true
	}
	return decimal.Zero, false
}

// scaleVariable applies the perturbation factor to one field in place and
// returns the resulting value. Integer fields round to the nearest whole
// unit with a floor of 1; automation clamps into [0, 100] so the derived
// record stays valid.
func scaleVariable(in *domain.ROIInputs, field string, factor decimal.Decimal) (decimal.Decimal, bool) {
	switch field {
	case domain.FieldWeeklyHours:
		in.WeeklyHours = in.WeeklyHours.Mul(factor)
		return in.WeeklyHours, true
	case domain.FieldTeamSize:
		scaled := scaleInt(in.TeamSize, factor)
		in.TeamSize = scaled
		return decimal.NewFromInt(int64(scaled)), true
	case domain.FieldHourlyRate:
		in.HourlyRate = in.HourlyRate.Mul(factor)
		return in.HourlyRate, true
	case domain.FieldAutomationPercentage:
		v := in.AutomationPercentage.Mul(factor)
		if v.GreaterThan(hundred) {
			v = hundred
		}
		if v.IsNegative() {
			v = decimal.Zero
		}
		in.AutomationPercentage = v
		return v, true
	case domain.FieldImplementationCost:
		in.ImplementationCost = in.ImplementationCost.Mul(factor)
		return in.ImplementationCost, true
	case domain.FieldTimeframeMonths:
		scaled := scaleInt(*in.TimeframeMonths, factor)
		in.TimeframeMonths = &scaled
		return decimal.NewFromInt(int64(scaled)), true
	case domain.FieldDiscountRateAnnual:
		v := in.DiscountRateAnnual.Mul(factor)
		in.DiscountRateAnnual = &v
		return v, true
	case domain.FieldInflationRateAnnual:
		v := in.InflationRateAnnual.Mul(factor)
		in.InflationRateAnnual = &v
		return v, true
	case domain.FieldMaintenanceCostAnnual:
		v := in.MaintenanceCostAnnual.Mul(factor)
		in.MaintenanceCostAnnual = &v
		return v, true
	}
	return decimal.Zero, false
}

func scaleInt(v int, factor decimal.Decimal) int {
	scaled := int(math.Round(factor.Mul(decimal.NewFromInt(int64(v))).InexactFloat64()))
	if scaled < 1 {
		scaled = 1
	}
	return scaled
}
