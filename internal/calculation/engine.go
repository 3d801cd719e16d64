package calculation

import (
	"fmt"

	"github.com/roigo/roi-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// EngineConfig holds the policy knobs for a calculation engine. The zero
// value is not usable; start from DefaultEngineConfig.
type EngineConfig struct {
	// Timeframes beyond this many months get a projection-uncertainty
	// warning and a confidence ceiling.
	LongHorizonMonths int
	// Confidence score ceiling applied on long horizons, regardless of the
	// weighted score.
	LongHorizonConfidenceCap int

	SensitivityVariables []string
	SensitivityRange     decimal.Decimal

	Confidence ConfidenceConfig
}

// DefaultEngineConfig returns the standard policy.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		LongHorizonMonths:        120,
		LongHorizonConfidenceCap: 60,
		SensitivityVariables:     DefaultSensitivityVariables,
		SensitivityRange:         DefaultSensitivityRange,
		Confidence:               DefaultConfidenceConfig(),
	}
}

// Engine runs the full ROI pipeline: normalize, project, metrics,
// confidence, sensitivity, assemble. It holds only immutable config and a
// logger, so a single instance is safe for concurrent callers; every
// Calculate call owns its own inputs, schedule and result.
type Engine struct {
	Config EngineConfig
	Logger Logger
}

// NewEngine creates an engine with the default policy and a no-op logger.
func NewEngine() *Engine {
	return NewEngineWithConfig(DefaultEngineConfig())
}

// NewEngineWithConfig creates an engine with custom policy.
func NewEngineWithConfig(cfg EngineConfig) *Engine {
	return &Engine{Config: cfg, Logger: NopLogger{}}
}

// SetLogger sets the engine logger. Nil installs the no-op logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Options carries per-call overrides for the sensitivity sweep.
type Options struct {
	SensitivityVariables []string
	SensitivityRange     decimal.Decimal
}

// Calculate is the engine's single public operation: one normalized input
// record in, one immutable report out. The only error it returns is a
// validation failure (domain.InvalidInputError); every other condition is
// downgraded to a warning inside the result.
func (e *Engine) Calculate(inputs domain.ROIInputs, opts *Options) (*domain.ROIResult, error) {
	report, err := e.CalculateReport(inputs, opts)
	if err != nil {
		return nil, err
	}
	return &report.Result, nil
}

// CalculateReport runs the same pipeline as Calculate but also returns the
// normalized inputs and the full cash-flow schedule for formatters and
// exports.
func (e *Engine) CalculateReport(inputs domain.ROIInputs, opts *Options) (*domain.Report, error) {
	n, err := Normalize(inputs)
	if err != nil {
		return nil, err
	}
	e.Logger.Debugf("normalized inputs for %q: %d months, %d defaulted fields",
		n.ProcessName, n.TimeframeMonths, len(n.Defaulted))

	schedule := ProjectCashFlows(n)
	metrics, err := ComputeMetrics(n, schedule)
	if err != nil {
		return nil, err
	}
	if !metrics.InternalRateOfReturn.Converged {
		e.Logger.Warnf("IRR search failed for %q: %s", n.ProcessName, metrics.InternalRateOfReturn.Reason)
	}

	confidence := EstimateConfidence(n, e.Config.Confidence, true)

	variables := e.Config.SensitivityVariables
	rng := e.Config.SensitivityRange
	if opts != nil {
		if len(opts.SensitivityVariables) > 0 {
			variables = opts.SensitivityVariables
		}
		if opts.SensitivityRange.IsPositive() {
			rng = opts.SensitivityRange
		}
	}
	sensitivity := AnalyzeSensitivity(n, variables, rng, e.Logger)

	result := e.assembleResult(n, metrics, confidence, sensitivity)
	return &domain.Report{Inputs: *n, CashFlow: schedule, Result: *result}, nil
}

// assembleResult merges metrics, confidence and sensitivity into the final
// report and applies the warning/limitation policy.
func (e *Engine) assembleResult(n *domain.NormalizedInputs, m *Metrics, confidence ConfidenceEstimate, sensitivity []domain.SensitivityVariable) *domain.ROIResult {
	var warnings []string

	if n.AutomationPercentage.IsZero() {
		warnings = append(warnings, "automation percentage is 0, so the projected benefit is zero; review the automation assumption for this process")
	}

	score := confidence.Score
	if n.TimeframeMonths > e.Config.LongHorizonMonths {
		warnings = append(warnings, fmt.Sprintf("timeframe of %d months exceeds the %d-month planning horizon; projections this far out carry significant uncertainty", n.TimeframeMonths, e.Config.LongHorizonMonths))
		if score > e.Config.LongHorizonConfidenceCap {
			score = e.Config.LongHorizonConfidenceCap
		}
	}

	if !m.Payback.Achieved {
		warnings = append(warnings, fmt.Sprintf("cumulative cash flow never turns positive within %d months; the investment does not pay back over this timeframe", n.TimeframeMonths))
	}
	if !m.InternalRateOfReturn.Converged {
		warnings = append(warnings, fmt.Sprintf("IRR could not be determined: %s", m.InternalRateOfReturn.Reason))
	}

	var limitations []string
	for _, field := range n.DefaultedFields() {
		limitations = append(limitations, fmt.Sprintf("%s was not provided; the default assumption was used", field))
	}

	return &domain.ROIResult{
		NetPresentValue:           m.NetPresentValue,
		InternalRateOfReturn:      m.InternalRateOfReturn,
		Payback:                   m.Payback,
		TotalCostOfOwnership:      m.TotalCostOfOwnership,
		ReturnOnInvestmentPercent: m.ReturnOnInvestmentPercent,
		ProfitabilityIndex:        m.ProfitabilityIndex,
		BenefitCostRatio:          m.BenefitCostRatio,
		ConfidenceScore:           score,
		ConfidenceBreakdown:       confidence.Breakdown,
		Sensitivity:               sensitivity,
		Warnings:                  warnings,
		Limitations:               limitations,
	}
}
