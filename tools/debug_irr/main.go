// Command debug_irr prints the Newton-Raphson iteration trace for a sample
// scenario, useful when the solver reports non-convergence unexpectedly.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/roigo/roi-calculator/internal/calculation"
	"github.com/roigo/roi-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

func main() {
	timeframe := 36
	discount := decimal.NewFromFloat(0.10)
	in := domain.ROIInputs{
		ProcessName:          "debug",
		WeeklyHours:          decimal.NewFromInt(10),
		TeamSize:             1,
		HourlyRate:           decimal.NewFromInt(60),
		AutomationPercentage: decimal.NewFromInt(50),
		ImplementationCost:   decimal.NewFromInt(30000),
		TimeframeMonths:      &timeframe,
		DiscountRateAnnual:   &discount,
	}

	n, err := calculation.Normalize(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "normalize: %v\n", err)
		os.Exit(1)
	}
	schedule := calculation.ProjectCashFlows(n)

	flows := make([]float64, len(schedule))
	for i, e := range schedule {
		flows[i] = e.NetCashFlow.InexactFloat64()
	}
	investment := -flows[0]
	var totalNet float64
	for _, f := range flows[1:] {
		totalNet += f
	}
	rate := totalNet / investment / (float64(len(flows)-1) / 12)
	fmt.Printf("initial guess: %.6f\n", rate)

	for i := 0; i < 100; i++ {
		npv := npvAt(flows, rate)
		deriv := derivAt(flows, rate)
		fmt.Printf("iter %3d  rate=%.8f  npv=%.6f  dnpv=%.6f\n", i, rate, npv, deriv)
		if math.Abs(npv) < 1e-5 {
			fmt.Printf("converged: %.8f\n", rate)
			return
		}
		if math.Abs(deriv) < 1e-5 {
			fmt.Println("flat slope, giving up")
			return
		}
		rate -= npv / deriv
		if math.IsNaN(rate) || rate < -0.99 || rate > 10 {
			fmt.Printf("left domain at %.6f\n", rate)
			return
		}
	}
	fmt.Println("no convergence in 100 iterations")
}

func npvAt(flows []float64, rate float64) float64 {
	var v float64
	for t, f := range flows {
		v += f / math.Pow(1+rate, float64(t)/12)
	}
	return v
}

func derivAt(flows []float64, rate float64) float64 {
	var d float64
	for t, f := range flows {
		ty := float64(t) / 12
		d -= f * ty / math.Pow(1+rate, ty+1)
	}
	return d
}
