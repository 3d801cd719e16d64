package calculation

import (
	"math"

	"github.com/roigo/roi-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Factor names used as keys in the confidence breakdown.
const (
	FactorCompleteness            = "completeness"
	FactorDataQuality             = "data_quality"
	FactorHistoricalBasis         = "historical_basis"
	FactorIndustryAlignment       = "industry_alignment"
	FactorAssumptionDocumentation = "assumption_documentation"
)

// Canonical factor weights. They sum to 1.
const (
	weightCompleteness            = 0.30
	weightDataQuality             = 0.25
	weightHistoricalBasis         = 0.20
	weightIndustryAlignment       = 0.15
	weightAssumptionDocumentation = 0.10
)

// ConfidenceConfig holds the tunable plausibility bands and fallback
// constants used by the estimator.
type ConfidenceConfig struct {
	// Plausible band for hourly cost rates.
	HourlyRateMin decimal.Decimal
	HourlyRateMax decimal.Decimal
	// Team sizes above this are treated as implausible for a single process.
	TeamSizeMax int
	// Risk factors above this flag the scenario as implausible.
	RiskFactorMax decimal.Decimal
	// Factor value when inputs are estimates rather than measured data.
	NonHistoricalScore float64
	// Factor value when no industry benchmark was supplied.
	NoBenchmarkAlignment float64
}

// DefaultConfidenceConfig returns the standard bands.
func DefaultConfidenceConfig() ConfidenceConfig {
	return ConfidenceConfig{
		HourlyRateMin:        decimal.NewFromInt(5),
		HourlyRateMax:        decimal.NewFromInt(500),
		TeamSizeMax:          500,
		RiskFactorMax:        decimal.NewFromInt(2),
		NonHistoricalScore:   0.4,
		NoBenchmarkAlignment: 0.5,
	}
}

// ConfidenceEstimate is the weighted reliability score for one calculation,
// with the raw per-factor values (0..1) for the report breakdown.
type ConfidenceEstimate struct {
	Score     int
	Breakdown map[string]decimal.Decimal
}

// coreFields are the six inputs whose presence drives the completeness
// factor.
var coreFields = []string{
	domain.FieldProcessName,
	domain.FieldWeeklyHours,
	domain.FieldTeamSize,
	domain.FieldHourlyRate,
	domain.FieldAutomationPercentage,
	domain.FieldTimeframeMonths,
}

// EstimateConfidence scores result reliability from input quality alone.
// It never looks at the cash-flow math. documented reports whether every
// defaulted field is surfaced to the caller in the result; the engine's
// assembler always does this, so it passes true.
func EstimateConfidence(n *domain.NormalizedInputs, cfg ConfidenceConfig, documented bool) ConfidenceEstimate {
	completeness := completenessFactor(n)
	quality := dataQualityFactor(n, cfg)

	historical := cfg.NonHistoricalScore
	if n.HistoricalBasis {
		historical = 1.0
	}

	alignment := cfg.NoBenchmarkAlignment
	if n.IndustryBenchmark != nil {
		alignment = benchmarkCloseness(n, n.IndustryBenchmark)
	}

	documentation := 0.0
	if documented {
		documentation = 1.0
	}

	weighted := weightCompleteness*completeness +
		weightDataQuality*quality +
		weightHistoricalBasis*historical +
		weightIndustryAlignment*alignment +
		weightAssumptionDocumentation*documentation

	score := int(math.Round(100 * weighted))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return ConfidenceEstimate{
		Score: score,
		Breakdown: map[string]decimal.Decimal{
			FactorCompleteness:            factorValue(completeness),
			FactorDataQuality:             factorValue(quality),
			FactorHistoricalBasis:         factorValue(historical),
			FactorIndustryAlignment:       factorValue(alignment),
			FactorAssumptionDocumentation: factorValue(documentation),
		},
	}
}

// completenessFactor is the fraction of the six core fields the caller
// actually supplied. Required fields count as provided when non-zero;
// timeframe counts as provided when it was not defaulted.
func completenessFactor(n *domain.NormalizedInputs) float64 {
	provided := 0
	for _, field := range coreFields {
		switch field {
		case domain.FieldProcessName:
			if n.ProcessName != "" {
				provided++
			}
		case domain.FieldWeeklyHours:
			if n.WeeklyHours.IsPositive() {
				provided++
			}
		case domain.FieldTeamSize:
			if n.TeamSize > 0 {
				provided++
			}
		case domain.FieldHourlyRate:
			if n.HourlyRate.IsPositive() {
				provided++
			}
		case domain.FieldAutomationPercentage:
			if n.AutomationPercentage.IsPositive() {
				provided++
			}
		case domain.FieldTimeframeMonths:
			if !n.WasDefaulted(domain.FieldTimeframeMonths) {
				provided++
			}
		}
	}
	return float64(provided) / float64(len(coreFields))
}

// dataQualityFactor is the fraction of plausibility checks that pass.
// Range validation already rejected hard errors; these bands catch values
// that are legal but suspicious.
func dataQualityFactor(n *domain.NormalizedInputs, cfg ConfidenceConfig) float64 {
	checks := 0
	passed := 0

	checks++
	if n.HourlyRate.GreaterThanOrEqual(cfg.HourlyRateMin) && n.HourlyRate.LessThanOrEqual(cfg.HourlyRateMax) {
		passed++
	}
	checks++
	if n.TeamSize > 0 && n.TeamSize <= cfg.TeamSizeMax {
		passed++
	}
	checks++
	if n.WeeklyHours.IsPositive() && n.WeeklyHours.LessThanOrEqual(maxWeekHrs) {
		passed++
	}
	checks++
	if n.RiskFactor.LessThanOrEqual(cfg.RiskFactorMax) {
		passed++
	}

	return float64(passed) / float64(checks)
}

// benchmarkCloseness measures how near the inputs sit to the industry
// benchmark: 1 at an exact match, falling linearly to 0 at 100% relative
// deviation, averaged over the benchmarked fields.
func benchmarkCloseness(n *domain.NormalizedInputs, b *domain.IndustryBenchmark) float64 {
	var devs []float64
	if b.AutomationPercentage.IsPositive() {
		devs = append(devs, relativeDeviation(n.AutomationPercentage, b.AutomationPercentage))
	}
	if b.HourlyRate.IsPositive() {
		devs = append(devs, relativeDeviation(n.HourlyRate, b.HourlyRate))
	}
	if len(devs) == 0 {
		return 0.5
	}
	var sum float64
	for _, d := range devs {
		sum += d
	}
	closeness := 1 - sum/float64(len(devs))
	if closeness < 0 {
		return 0
	}
	return closeness
}

func relativeDeviation(value, reference decimal.Decimal) float64 {
	dev := value.Sub(reference).Abs().Div(reference).InexactFloat64()
	if dev > 1 {
		return 1
	}
	return dev
}

func factorValue(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(4)
}
