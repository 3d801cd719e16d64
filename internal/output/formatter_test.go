package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/roigo/roi-calculator/internal/calculation"
	"github.com/roigo/roi-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport(t *testing.T) *domain.Report {
	t.Helper()
	timeframe := 24
	in := domain.ROIInputs{
		ProcessName:          "ticket triage",
		WeeklyHours:          decimal.NewFromInt(15),
		TeamSize:             2,
		HourlyRate:           decimal.NewFromInt(55),
		AutomationPercentage: decimal.NewFromInt(40),
		ImplementationCost:   decimal.NewFromInt(60000),
		TimeframeMonths:      &timeframe,
	}
	engine := calculation.NewEngine()
	report, err := engine.CalculateReport(in, nil)
	require.NoError(t, err)
	return report
}

func TestGetFormatterByName(t *testing.T) {
	assert.NotNil(t, GetFormatterByName("console"))
	assert.NotNil(t, GetFormatterByName("json"))
	assert.NotNil(t, GetFormatterByName("csv"))
	// Aliases and case.
	assert.NotNil(t, GetFormatterByName("TEXT"))
	assert.NotNil(t, GetFormatterByName(" Console "))
	assert.Nil(t, GetFormatterByName("pdf"))
}

func TestConsoleFormatter(t *testing.T) {
	report := sampleReport(t)
	data, err := ConsoleFormatter{}.Format(report)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "ROI ANALYSIS REPORT")
	assert.Contains(t, text, "ticket triage")
	assert.Contains(t, text, "Net Present Value")
	assert.Contains(t, text, "CONFIDENCE")
	assert.Contains(t, text, "SENSITIVITY")
	// Defaulted fields must be surfaced.
	assert.Contains(t, text, "LIMITATIONS")
	assert.Contains(t, text, "discount_rate_annual")
}

func TestJSONFormatterRoundTrips(t *testing.T) {
	report := sampleReport(t)
	data, err := JSONFormatter{}.Format(report)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "inputs")
	assert.Contains(t, decoded, "cash_flow")
	assert.Contains(t, decoded, "result")
}

func TestCSVFormatterSchedule(t *testing.T) {
	report := sampleReport(t)
	data, err := CSVFormatter{}.Format(report)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	// Header plus one row per period 0..24.
	require.Len(t, lines, 26)
	assert.Equal(t, "Period,Inflow,Outflow,NetCashFlow,CumulativeCashFlow,PresentValue", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "0,0.00,60000.00,-60000.00,-60000.00,-60000.00"))
}
