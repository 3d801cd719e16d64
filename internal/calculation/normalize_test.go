package calculation

import (
	"testing"

	"github.com/roigo/roi-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// baseInputs returns a valid request with only required fields set.
func baseInputs() domain.ROIInputs {
	return domain.ROIInputs{
		ProcessName:          "invoice processing",
		WeeklyHours:          decimal.NewFromInt(20),
		TeamSize:             4,
		HourlyRate:           decimal.NewFromInt(50),
		AutomationPercentage: decimal.NewFromInt(60),
		ImplementationCost:   decimal.NewFromInt(40000),
	}
}

func TestNormalizeAppliesDefaults(t *testing.T) {
	n, err := Normalize(baseInputs())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultTimeframeMonths, n.TimeframeMonths)
	assert.True(t, n.DiscountRateAnnual.Equal(domain.DefaultDiscountRateAnnual))
	assert.True(t, n.InflationRateAnnual.Equal(domain.DefaultInflationRateAnnual))
	assert.True(t, n.MaintenanceCostAnnual.IsZero())
	assert.True(t, n.RiskFactor.Equal(decimal.NewFromInt(1)))

	for _, field := range []string{
		domain.FieldTimeframeMonths,
		domain.FieldDiscountRateAnnual,
		domain.FieldInflationRateAnnual,
		domain.FieldMaintenanceCostAnnual,
		domain.FieldRiskFactor,
	} {
		assert.True(t, n.WasDefaulted(field), "expected %s to be recorded as defaulted", field)
	}
}

func TestNormalizeKeepsProvidedValues(t *testing.T) {
	in := baseInputs()
	timeframe := 36
	discount := decimal.NewFromFloat(0.08)
	in.TimeframeMonths = &timeframe
	in.DiscountRateAnnual = &discount

	n, err := Normalize(in)
	require.NoError(t, err)

	assert.Equal(t, 36, n.TimeframeMonths)
	assert.True(t, n.DiscountRateAnnual.Equal(discount))
	assert.False(t, n.WasDefaulted(domain.FieldTimeframeMonths))
	assert.False(t, n.WasDefaulted(domain.FieldDiscountRateAnnual))
	// The untouched optionals still default.
	assert.True(t, n.WasDefaulted(domain.FieldInflationRateAnnual))
}

func TestNormalizeValidation(t *testing.T) {
	negativeOnePointOne := decimal.NewFromFloat(-1.1)
	zeroMonths := 0

	tests := []struct {
		name      string
		mutate    func(*domain.ROIInputs)
		wantField string
	}{
		{
			name:      "non-positive timeframe",
			mutate:    func(in *domain.ROIInputs) { in.TimeframeMonths = &zeroMonths },
			wantField: domain.FieldTimeframeMonths,
		},
		{
			name:      "discount rate at or below -1",
			mutate:    func(in *domain.ROIInputs) { in.DiscountRateAnnual = &negativeOnePointOne },
			wantField: domain.FieldDiscountRateAnnual,
		},
		{
			name:      "automation above 100",
			mutate:    func(in *domain.ROIInputs) { in.AutomationPercentage = decimal.NewFromInt(120) },
			wantField: domain.FieldAutomationPercentage,
		},
		{
			name:      "negative automation",
			mutate:    func(in *domain.ROIInputs) { in.AutomationPercentage = decimal.NewFromInt(-5) },
			wantField: domain.FieldAutomationPercentage,
		},
		{
			name:      "negative hourly rate",
			mutate:    func(in *domain.ROIInputs) { in.HourlyRate = decimal.NewFromInt(-10) },
			wantField: domain.FieldHourlyRate,
		},
		{
			name:      "weekly hours beyond a week",
			mutate:    func(in *domain.ROIInputs) { in.WeeklyHours = decimal.NewFromInt(200) },
			wantField: domain.FieldWeeklyHours,
		},
		{
			name:      "zero implementation cost",
			mutate:    func(in *domain.ROIInputs) { in.ImplementationCost = decimal.Zero },
			wantField: domain.FieldImplementationCost,
		},
		{
			name: "degenerate all-zero scenario",
			mutate: func(in *domain.ROIInputs) {
				in.ImplementationCost = decimal.Zero
				in.AutomationPercentage = decimal.Zero
			},
			wantField: domain.FieldImplementationCost,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baseInputs()
			tt.mutate(&in)
			_, err := Normalize(in)
			require.Error(t, err)
			assert.True(t, domain.IsInvalidInput(err), "expected InvalidInputError, got %T", err)
			var iie *domain.InvalidInputError
			require.ErrorAs(t, err, &iie)
			assert.Equal(t, tt.wantField, iie.Field)
		})
	}
}

func TestNormalizeRoundTripAsInputs(t *testing.T) {
	n, err := Normalize(baseInputs())
	require.NoError(t, err)

	again, err := Normalize(n.AsInputs())
	require.NoError(t, err)

	// Re-normalizing explicit values must not re-apply defaults.
	assert.Empty(t, again.Defaulted)
	assert.Equal(t, n.TimeframeMonths, again.TimeframeMonths)
	assert.True(t, n.DiscountRateAnnual.Equal(again.DiscountRateAnnual))
	assert.True(t, n.MaintenanceCostAnnual.Equal(again.MaintenanceCostAnnual))
}

func TestAnnualBenefit(t *testing.T) {
	n, err := Normalize(baseInputs())
	require.NoError(t, err)

	// 20 h x 52 weeks x 4 people x $50 x 60% = 124800
	assert.True(t, AnnualBenefit(n).Equal(decimal.NewFromInt(124800)),
		"got %s", AnnualBenefit(n))
}
