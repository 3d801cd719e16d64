package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Canonical field names, matching the YAML wire names. These are used for
// defaulted-field tracking, confidence scoring, sensitivity variable
// selection and client-facing validation errors.
const (
	FieldProcessName           = "process_name"
	FieldWeeklyHours           = "weekly_hours"
	FieldTeamSize              = "team_size"
	FieldHourlyRate            = "hourly_rate"
	FieldAutomationPercentage  = "automation_percentage"
	FieldImplementationCost    = "implementation_cost"
	FieldTimeframeMonths       = "timeframe_months"
	FieldDiscountRateAnnual    = "discount_rate_annual"
	FieldInflationRateAnnual   = "inflation_rate_annual"
	FieldMaintenanceCostAnnual = "maintenance_cost_annual"
	FieldRiskFactor            = "risk_factor"
)

// Defaults applied by the normalizer when the caller leaves the
// corresponding optional field unset. All rates are annual fractions
// (0.10 = 10%), never raw percentages.
const DefaultTimeframeMonths = 24

var (
	DefaultDiscountRateAnnual    = decimal.NewFromFloat(0.10)
	DefaultInflationRateAnnual   = decimal.NewFromFloat(0.03)
	DefaultMaintenanceCostAnnual = decimal.Zero
	DefaultRiskFactor            = decimal.NewFromInt(1)
)

// IndustryBenchmark carries reference values for the caller's industry,
// used only for confidence scoring (industry alignment factor).
type IndustryBenchmark struct {
	Industry             string          `yaml:"industry" json:"industry"`
	AutomationPercentage decimal.Decimal `yaml:"automation_percentage" json:"automation_percentage"`
	HourlyRate           decimal.Decimal `yaml:"hourly_rate" json:"hourly_rate"`
}

// ROIInputs is the canonical calculation request. Required analytic fields
// are plain values; optional fields are pointers so "absent" is
// distinguishable from an explicit zero and the normalizer can record which
// assumptions it filled in.
type ROIInputs struct {
	ProcessName          string          `yaml:"process_name" json:"process_name"`
	WeeklyHours          decimal.Decimal `yaml:"weekly_hours" json:"weekly_hours"`
	TeamSize             int             `yaml:"team_size" json:"team_size"`
	HourlyRate           decimal.Decimal `yaml:"hourly_rate" json:"hourly_rate"`
	AutomationPercentage decimal.Decimal `yaml:"automation_percentage" json:"automation_percentage"`
	ImplementationCost   decimal.Decimal `yaml:"implementation_cost" json:"implementation_cost"`

	TimeframeMonths       *int             `yaml:"timeframe_months,omitempty" json:"timeframe_months,omitempty"`
	DiscountRateAnnual    *decimal.Decimal `yaml:"discount_rate_annual,omitempty" json:"discount_rate_annual,omitempty"`
	InflationRateAnnual   *decimal.Decimal `yaml:"inflation_rate_annual,omitempty" json:"inflation_rate_annual,omitempty"`
	MaintenanceCostAnnual *decimal.Decimal `yaml:"maintenance_cost_annual,omitempty" json:"maintenance_cost_annual,omitempty"`
	RiskFactor            *decimal.Decimal `yaml:"risk_factor,omitempty" json:"risk_factor,omitempty"`

	// HistoricalBasis is set by the caller when the figures come from
	// measured process data rather than estimates.
	HistoricalBasis   bool               `yaml:"historical_basis" json:"historical_basis"`
	IndustryBenchmark *IndustryBenchmark `yaml:"industry_benchmark,omitempty" json:"industry_benchmark,omitempty"`
}

// NormalizedInputs is a fully populated, validated request. Defaulted
// records which optional fields took a default rather than a caller value.
type NormalizedInputs struct {
	ProcessName           string          `json:"process_name"`
	WeeklyHours           decimal.Decimal `json:"weekly_hours"`
	TeamSize              int             `json:"team_size"`
	HourlyRate            decimal.Decimal `json:"hourly_rate"`
	AutomationPercentage  decimal.Decimal `json:"automation_percentage"`
	ImplementationCost    decimal.Decimal `json:"implementation_cost"`
	TimeframeMonths       int             `json:"timeframe_months"`
	DiscountRateAnnual    decimal.Decimal `json:"discount_rate_annual"`
	InflationRateAnnual   decimal.Decimal `json:"inflation_rate_annual"`
	MaintenanceCostAnnual decimal.Decimal `json:"maintenance_cost_annual"`
	RiskFactor            decimal.Decimal `json:"risk_factor"`

	HistoricalBasis   bool               `json:"historical_basis"`
	IndustryBenchmark *IndustryBenchmark `json:"industry_benchmark,omitempty"`

	Defaulted map[string]bool `json:"defaulted"`
}

// WasDefaulted reports whether the named field was filled with a default.
func (n *NormalizedInputs) WasDefaulted(field string) bool {
	return n.Defaulted[field]
}

// DefaultedFields returns the defaulted field names in sorted order so
// downstream warning/limitation text is deterministic.
func (n *NormalizedInputs) DefaultedFields() []string {
	fields := make([]string, 0, len(n.Defaulted))
	for f := range n.Defaulted {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// AsInputs converts back to a raw request with every optional field set
// explicitly, so re-normalizing a derived record (sensitivity sweeps) does
// not re-apply defaults or change the defaulted bookkeeping semantics.
func (n *NormalizedInputs) AsInputs() ROIInputs {
	timeframe := n.TimeframeMonths
	discount := n.DiscountRateAnnual
	inflation := n.InflationRateAnnual
	maintenance := n.MaintenanceCostAnnual
	risk := n.RiskFactor
	return ROIInputs{
		ProcessName:           n.ProcessName,
		WeeklyHours:           n.WeeklyHours,
		TeamSize:              n.TeamSize,
		HourlyRate:            n.HourlyRate,
		AutomationPercentage:  n.AutomationPercentage,
		ImplementationCost:    n.ImplementationCost,
		TimeframeMonths:       &timeframe,
		DiscountRateAnnual:    &discount,
		InflationRateAnnual:   &inflation,
		MaintenanceCostAnnual: &maintenance,
		RiskFactor:            &risk,
		HistoricalBasis:       n.HistoricalBasis,
		IndustryBenchmark:     n.IndustryBenchmark,
	}
}
