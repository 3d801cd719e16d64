package calculation

import (
	"fmt"
	"math"

	"github.com/roigo/roi-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Newton-Raphson bounds for the IRR search. Rates outside
// (irrMinRate, irrMaxRate) are treated as unsolvable rather than clamped.
const (
	irrMaxIterations = 100
	irrTolerance     = 1e-5
	irrMinRate       = -0.99
	irrMaxRate       = 10.0
)

// Metrics holds every figure derived from a single cash-flow schedule.
type Metrics struct {
	NetPresentValue           decimal.Decimal
	InternalRateOfReturn      domain.IRROutcome
	Payback                   domain.PaybackPeriod
	TotalCostOfOwnership      decimal.Decimal
	ReturnOnInvestmentPercent decimal.Decimal
	ProfitabilityIndex        decimal.Decimal
	BenefitCostRatio          decimal.Decimal
}

// ComputeMetrics derives all financial metrics from the schedule produced
// by ProjectCashFlows. The schedule must include the period-0 investment
// entry. A zero total investment is rejected up front since ROI and the
// profitability index divide by it.
func ComputeMetrics(n *domain.NormalizedInputs, schedule []domain.CashFlowEntry) (*Metrics, error) {
	if len(schedule) == 0 {
		return nil, fmt.Errorf("empty cash-flow schedule")
	}
	investment := schedule[0].NetCashFlow.Neg()
	if !investment.IsPositive() {
		return nil, domain.NewInvalidInput(domain.FieldImplementationCost, "total investment is zero; ROI and profitability index are undefined")
	}

	var npv, totalNet, totalInflow, totalOutflow decimal.Decimal
	for _, e := range schedule {
		npv = npv.Add(e.PresentValue)
		totalInflow = totalInflow.Add(e.Inflow)
		totalOutflow = totalOutflow.Add(e.Outflow)
		if e.Period >= 1 {
			totalNet = totalNet.Add(e.NetCashFlow)
		}
	}

	months := decimal.NewFromInt(int64(n.TimeframeMonths))
	tco := n.ImplementationCost.Add(n.MaintenanceCostAnnual.Div(twelve).Mul(months))

	m := &Metrics{
		NetPresentValue:           npv,
		InternalRateOfReturn:      solveIRR(schedule),
		Payback:                   findPayback(schedule),
		TotalCostOfOwnership:      tco,
		ReturnOnInvestmentPercent: totalNet.Sub(investment).Div(investment).Mul(hundred),
		ProfitabilityIndex:        npv.Add(investment).Div(investment),
	}
	if totalOutflow.IsPositive() {
		m.BenefitCostRatio = totalInflow.Div(totalOutflow)
	}
	return m, nil
}

// solveIRR finds the annual rate at which the schedule's NPV is zero using
// Newton-Raphson iteration. The search runs in float64: the objective needs
// fractional-month powers and a derivative, neither of which decimal
// arithmetic can express. A flat slope, a rate escaping the solvable
// domain, or exhausting the iteration budget all yield a non-convergent
// outcome that callers can tell apart from a genuine 0% rate.
func solveIRR(schedule []domain.CashFlowEntry) domain.IRROutcome {
	flows := make([]float64, len(schedule))
	for i, e := range schedule {
		flows[i] = e.NetCashFlow.InexactFloat64()
	}
	investment := -flows[0]
	years := float64(len(flows)-1) / 12
	if investment <= 0 || years <= 0 {
		return domain.NonConvergentIRR("schedule has no investment to return on")
	}

	var totalNet float64
	for _, f := range flows[1:] {
		totalNet += f
	}
	rate := totalNet / investment / years
	if outsideIRRDomain(rate) {
		return domain.NonConvergentIRR(fmt.Sprintf("initial guess %.4f is outside the solvable domain (%.2f, %.2f)", rate, irrMinRate, irrMaxRate))
	}

	for i := 0; i < irrMaxIterations; i++ {
		npv := irrNPV(flows, rate)
		if math.Abs(npv) < irrTolerance {
			return domain.ConvergedIRR(decimal.NewFromFloat(rate))
		}
		deriv := irrDerivative(flows, rate)
		if math.Abs(deriv) < irrTolerance {
			return domain.NonConvergentIRR(fmt.Sprintf("NPV slope vanished at rate %.4f after %d iterations", rate, i))
		}
		rate -= npv / deriv
		if outsideIRRDomain(rate) {
			return domain.NonConvergentIRR(fmt.Sprintf("rate left the solvable domain (%.2f, %.2f) after %d iterations", irrMinRate, irrMaxRate, i+1))
		}
	}
	return domain.NonConvergentIRR(fmt.Sprintf("no convergence within %d iterations", irrMaxIterations))
}

func outsideIRRDomain(rate float64) bool {
	return math.IsNaN(rate) || rate < irrMinRate || rate > irrMaxRate
}

// irrNPV evaluates the schedule's NPV at an annual rate, discounting each
// month by (1+rate)^(t/12).
func irrNPV(flows []float64, rate float64) float64 {
	var v float64
	for t, f := range flows {
		v += f / math.Pow(1+rate, float64(t)/12)
	}
	return v
}

// irrDerivative is dNPV/drate: sum of -f_t * (t/12) / (1+rate)^(t/12 + 1).
func irrDerivative(flows []float64, rate float64) float64 {
	var d float64
	for t, f := range flows {
		ty := float64(t) / 12
		d -= f * ty / math.Pow(1+rate, ty+1)
	}
	return d
}

// findPayback locates the first period where cumulative cash flow is
// non-negative and interpolates linearly inside that month. No crossover
// within the horizon means the investment never pays back.
func findPayback(schedule []domain.CashFlowEntry) domain.PaybackPeriod {
	for p, e := range schedule {
		if e.CumulativeCashFlow.Sign() < 0 {
			continue
		}
		if p == 0 {
			return domain.PaybackPeriod{Achieved: true, Months: decimal.Zero}
		}
		prev := schedule[p-1].CumulativeCashFlow
		if e.NetCashFlow.IsZero() {
			// Crossed without inflow this month; the boundary is the month itself.
			return domain.PaybackPeriod{Achieved: true, Months: decimal.NewFromInt(int64(p))}
		}
		fraction := prev.Abs().Div(e.NetCashFlow)
		months := decimal.NewFromInt(int64(p - 1)).Add(fraction)
		return domain.PaybackPeriod{Achieved: true, Months: months}
	}
	return domain.PaybackPeriod{}
}
