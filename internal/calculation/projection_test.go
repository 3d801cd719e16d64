package calculation

import (
	"math"
	"testing"

	"github.com/roigo/roi-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNormalize(t *testing.T, in domain.ROIInputs) *domain.NormalizedInputs {
	t.Helper()
	n, err := Normalize(in)
	require.NoError(t, err)
	return n
}

func TestProjectCashFlowsShape(t *testing.T) {
	timeframe := 36
	in := baseInputs()
	in.TimeframeMonths = &timeframe
	n := mustNormalize(t, in)

	schedule := ProjectCashFlows(n)
	require.Len(t, schedule, 37)
	for i, e := range schedule {
		assert.Equal(t, i, e.Period)
	}
}

func TestProjectCashFlowsInitialEntry(t *testing.T) {
	n := mustNormalize(t, baseInputs())
	schedule := ProjectCashFlows(n)

	first := schedule[0]
	assert.True(t, first.NetCashFlow.Equal(n.ImplementationCost.Neg()))
	assert.True(t, first.CumulativeCashFlow.Equal(first.NetCashFlow))
	// Period 0 is undiscounted.
	assert.True(t, first.PresentValue.Equal(first.NetCashFlow))
	assert.True(t, first.Inflow.IsZero())
	assert.True(t, first.Outflow.Equal(n.ImplementationCost))
}

func TestProjectCashFlowsCompounding(t *testing.T) {
	timeframe := 24
	inflation := decimal.NewFromFloat(0.03)
	discount := decimal.NewFromFloat(0.10)
	in := baseInputs()
	in.TimeframeMonths = &timeframe
	in.InflationRateAnnual = &inflation
	in.DiscountRateAnnual = &discount
	n := mustNormalize(t, in)

	schedule := ProjectCashFlows(n)
	monthlyBenefit := AnnualBenefit(n).Div(decimal.NewFromInt(12)).InexactFloat64()

	for m := 1; m <= timeframe; m++ {
		years := float64(m) / 12
		wantInflow := monthlyBenefit * math.Pow(1.03, years)
		assert.InDelta(t, wantInflow, schedule[m].Inflow.InexactFloat64(), 1e-6, "inflow month %d", m)

		wantPV := schedule[m].NetCashFlow.InexactFloat64() / math.Pow(1.10, years)
		assert.InDelta(t, wantPV, schedule[m].PresentValue.InexactFloat64(), 1e-6, "present value month %d", m)
	}
}

func TestProjectCashFlowsCumulativeRunningSum(t *testing.T) {
	maintenance := decimal.NewFromInt(12000)
	in := baseInputs()
	in.MaintenanceCostAnnual = &maintenance
	n := mustNormalize(t, in)

	schedule := ProjectCashFlows(n)
	running := decimal.Zero
	for _, e := range schedule {
		running = running.Add(e.NetCashFlow)
		assert.True(t, running.Equal(e.CumulativeCashFlow), "cumulative mismatch at period %d", e.Period)
	}
}

func TestProjectCashFlowsZeroAutomation(t *testing.T) {
	maintenance := decimal.NewFromInt(2400)
	in := baseInputs()
	in.AutomationPercentage = decimal.Zero
	in.MaintenanceCostAnnual = &maintenance
	n := mustNormalize(t, in)

	schedule := ProjectCashFlows(n)
	wantNet := decimal.NewFromInt(-200) // -2400/12
	for _, e := range schedule[1:] {
		assert.True(t, e.Inflow.IsZero(), "period %d should have no inflow", e.Period)
		assert.True(t, e.NetCashFlow.Equal(wantNet), "period %d net should be -200, got %s", e.Period, e.NetCashFlow)
	}
}
