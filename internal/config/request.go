package config

import (
	"fmt"
	"os"

	"github.com/roigo/roi-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// RequestOptions carries the sensitivity overrides of a request file.
type RequestOptions struct {
	SensitivityVariables []string         `yaml:"sensitivity_variables,omitempty" json:"sensitivity_variables,omitempty"`
	SensitivityRange     *decimal.Decimal `yaml:"sensitivity_range,omitempty" json:"sensitivity_range,omitempty"`
}

// CalculationRequest is the YAML document the CLI feeds the engine.
type CalculationRequest struct {
	Inputs  domain.ROIInputs `yaml:"inputs" json:"inputs"`
	Options RequestOptions   `yaml:"options,omitempty" json:"options,omitempty"`
}

// RequestParser handles parsing of calculation request files.
type RequestParser struct{}

// NewRequestParser creates a new request parser.
func NewRequestParser() *RequestParser {
	return &RequestParser{}
}

// LoadFromFile loads a calculation request from a YAML file.
func (rp *RequestParser) LoadFromFile(filename string) (*CalculationRequest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var req CalculationRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := rp.ValidateRequest(&req); err != nil {
		return nil, fmt.Errorf("request validation failed: %w", err)
	}
	return &req, nil
}

// ValidateRequest checks the request's shape. Deep semantic validation
// (zero investment, degenerate scenarios) is the engine's job; this layer
// only rejects documents that are structurally wrong.
func (rp *RequestParser) ValidateRequest(req *CalculationRequest) error {
	if req.Inputs.ProcessName == "" {
		return fmt.Errorf("inputs.process_name is required")
	}
	if req.Inputs.WeeklyHours.IsNegative() {
		return fmt.Errorf("inputs.weekly_hours cannot be negative")
	}
	if req.Inputs.TeamSize < 0 {
		return fmt.Errorf("inputs.team_size cannot be negative")
	}
	if req.Inputs.HourlyRate.IsNegative() {
		return fmt.Errorf("inputs.hourly_rate cannot be negative")
	}
	if req.Options.SensitivityRange != nil {
		r := *req.Options.SensitivityRange
		if !r.IsPositive() || r.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			return fmt.Errorf("options.sensitivity_range must be between 0 and 1 (exclusive), got %s", r)
		}
	}
	return nil
}

// CreateExampleRequest returns a fully populated example request,
// suitable for writing out as a template.
func (rp *RequestParser) CreateExampleRequest() *CalculationRequest {
	timeframe := 36
	discount := decimal.NewFromFloat(0.10)
	inflation := decimal.NewFromFloat(0.03)
	maintenance := decimal.NewFromInt(6000)
	risk := decimal.NewFromInt(1)
	sensRange := decimal.NewFromFloat(0.20)

	return &CalculationRequest{
		Inputs: domain.ROIInputs{
			ProcessName:           "Invoice processing",
			WeeklyHours:           decimal.NewFromInt(25),
			TeamSize:              3,
			HourlyRate:            decimal.NewFromInt(45),
			AutomationPercentage:  decimal.NewFromInt(70),
			ImplementationCost:    decimal.NewFromInt(85000),
			TimeframeMonths:       &timeframe,
			DiscountRateAnnual:    &discount,
			InflationRateAnnual:   &inflation,
			MaintenanceCostAnnual: &maintenance,
			RiskFactor:            &risk,
			HistoricalBasis:       true,
			IndustryBenchmark: &domain.IndustryBenchmark{
				Industry:             "financial services",
				AutomationPercentage: decimal.NewFromInt(65),
				HourlyRate:           decimal.NewFromInt(50),
			},
		},
		Options: RequestOptions{
			SensitivityRange: &sensRange,
		},
	}
}

// WriteExampleRequest writes the example request as YAML to path.
func (rp *RequestParser) WriteExampleRequest(path string) error {
	data, err := yaml.Marshal(rp.CreateExampleRequest())
	if err != nil {
		return fmt.Errorf("failed to marshal example request: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
