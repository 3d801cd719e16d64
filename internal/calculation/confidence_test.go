package calculation

import (
	"testing"

	"github.com/roigo/roi-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fullQualityInputs is a request that maxes out every confidence factor.
func fullQualityInputs() domain.ROIInputs {
	timeframe := 36
	in := baseInputs()
	in.TimeframeMonths = &timeframe
	in.HistoricalBasis = true
	in.IndustryBenchmark = &domain.IndustryBenchmark{
		Industry:             "finance",
		AutomationPercentage: in.AutomationPercentage,
		HourlyRate:           in.HourlyRate,
	}
	return in
}

func TestConfidencePerfectInputsScoreHundred(t *testing.T) {
	n := mustNormalize(t, fullQualityInputs())
	est := EstimateConfidence(n, DefaultConfidenceConfig(), true)

	assert.Equal(t, 100, est.Score)
	for _, factor := range []string{
		FactorCompleteness,
		FactorDataQuality,
		FactorHistoricalBasis,
		FactorIndustryAlignment,
		FactorAssumptionDocumentation,
	} {
		v, ok := est.Breakdown[factor]
		require.True(t, ok, "missing factor %s", factor)
		assert.True(t, v.Equal(decimal.NewFromInt(1)), "factor %s = %s", factor, v)
	}
}

func TestConfidenceEstimatedInputs(t *testing.T) {
	// Timeframe defaulted, no historical basis, no benchmark:
	// 0.30*5/6 + 0.25 + 0.20*0.4 + 0.15*0.5 + 0.10 = 0.755.
	n := mustNormalize(t, baseInputs())
	est := EstimateConfidence(n, DefaultConfidenceConfig(), true)

	assert.InDelta(t, 75.5, float64(est.Score), 0.51)
	assert.True(t, est.Breakdown[FactorHistoricalBasis].Equal(decimal.NewFromFloat(0.4)))
	assert.True(t, est.Breakdown[FactorIndustryAlignment].Equal(decimal.NewFromFloat(0.5)))
}

func TestConfidenceDataQualityPenalty(t *testing.T) {
	risk := decimal.NewFromInt(5) // far outside the plausible band
	in := fullQualityInputs()
	in.RiskFactor = &risk
	n := mustNormalize(t, in)

	est := EstimateConfidence(n, DefaultConfidenceConfig(), true)
	assert.True(t, est.Breakdown[FactorDataQuality].Equal(decimal.NewFromFloat(0.75)),
		"data quality %s", est.Breakdown[FactorDataQuality])
	assert.Less(t, est.Score, 100)
}

func TestConfidenceBenchmarkDeviation(t *testing.T) {
	in := fullQualityInputs()
	in.IndustryBenchmark = &domain.IndustryBenchmark{
		Industry:             "finance",
		AutomationPercentage: decimal.NewFromInt(30), // base 60: 100% deviation
		HourlyRate:           in.HourlyRate,          // exact match
	}
	n := mustNormalize(t, in)

	est := EstimateConfidence(n, DefaultConfidenceConfig(), true)
	// Mean of (1.0 deviation, 0.0 deviation) -> closeness 0.5.
	assert.True(t, est.Breakdown[FactorIndustryAlignment].Equal(decimal.NewFromFloat(0.5)),
		"alignment %s", est.Breakdown[FactorIndustryAlignment])
}

func TestConfidenceUndocumentedAssumptions(t *testing.T) {
	n := mustNormalize(t, fullQualityInputs())
	est := EstimateConfidence(n, DefaultConfidenceConfig(), false)

	assert.True(t, est.Breakdown[FactorAssumptionDocumentation].IsZero())
	assert.Equal(t, 90, est.Score)
}

func TestConfidenceScoreBounds(t *testing.T) {
	cases := []domain.ROIInputs{
		baseInputs(),
		fullQualityInputs(),
		moderateInputs(),
	}
	// Worst plausible: estimates only, everything defaulted that can be.
	worst := domain.ROIInputs{
		ProcessName:          "x",
		WeeklyHours:          decimal.NewFromFloat(0.5),
		TeamSize:             1,
		HourlyRate:           decimal.NewFromInt(1), // below the plausible band
		AutomationPercentage: decimal.NewFromInt(1),
		ImplementationCost:   decimal.NewFromInt(100),
	}
	cases = append(cases, worst)

	for _, in := range cases {
		n := mustNormalize(t, in)
		est := EstimateConfidence(n, DefaultConfidenceConfig(), true)
		assert.GreaterOrEqual(t, est.Score, 0)
		assert.LessOrEqual(t, est.Score, 100)
	}
}
