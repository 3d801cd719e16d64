package output

import (
	"bytes"
	"encoding/csv"

	"github.com/roigo/roi-calculator/internal/domain"
)

// CSVFormatter exports the monthly cash-flow schedule, one row per period.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"Period", "Inflow", "Outflow", "NetCashFlow", "CumulativeCashFlow", "PresentValue"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, e := range report.CashFlow {
		row := []string{
			intToString(e.Period),
			e.Inflow.StringFixed(2),
			e.Outflow.StringFixed(2),
			e.NetCashFlow.StringFixed(2),
			e.CumulativeCashFlow.StringFixed(2),
			e.PresentValue.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
