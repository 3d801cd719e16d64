package calculation

import (
	"math"

	"github.com/roigo/roi-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ProjectCashFlows builds the monthly cash-flow schedule for periods
// 0..TimeframeMonths. Period 0 is the investment outflow, undiscounted.
// Months 1..N carry the inflation-compounded benefit net of maintenance,
// discounted back to period 0. The returned slice always has exactly
// TimeframeMonths+1 entries in period order.
//
// Compounding uses fractional-year exponents ((1+r)^(m/12)), which decimal
// Pow cannot express, so the factors are computed in float64 and the cash
// amounts stay decimal.
func ProjectCashFlows(n *domain.NormalizedInputs) []domain.CashFlowEntry {
	entries := make([]domain.CashFlowEntry, 0, n.TimeframeMonths+1)

	investment := n.ImplementationCost
	initial := domain.CashFlowEntry{
		Period:             0,
		Inflow:             decimal.Zero,
		Outflow:            investment,
		NetCashFlow:        investment.Neg(),
		CumulativeCashFlow: investment.Neg(),
		PresentValue:       investment.Neg(),
	}
	entries = append(entries, initial)

	monthlyBenefit := AnnualBenefit(n).Div(twelve)
	monthlyMaintenance := n.MaintenanceCostAnnual.Div(twelve)
	inflation := n.InflationRateAnnual.InexactFloat64()
	discount := n.DiscountRateAnnual.InexactFloat64()

	cumulative := initial.NetCashFlow
	for m := 1; m <= n.TimeframeMonths; m++ {
		years := float64(m) / 12

		inflationAdjustment := decimal.NewFromFloat(math.Pow(1+inflation, years))
		inflow := monthlyBenefit.Mul(inflationAdjustment)
		net := inflow.Sub(monthlyMaintenance)
		cumulative = cumulative.Add(net)

		discountFactor := decimal.NewFromFloat(math.Pow(1+discount, years))
		pv := net.Div(discountFactor)

		entries = append(entries, domain.CashFlowEntry{
			Period:             m,
			Inflow:             inflow,
			Outflow:            monthlyMaintenance,
			NetCashFlow:        net,
			CumulativeCashFlow: cumulative,
			PresentValue:       pv,
		})
	}

	return entries
}
