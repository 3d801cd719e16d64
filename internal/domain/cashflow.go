package domain

import (
	"github.com/shopspring/decimal"
)

// CashFlowEntry represents the cash position for a single month. Period 0
// carries the investment: NetCashFlow = -totalInvestment and PresentValue
// equals NetCashFlow undiscounted, since t = 0.
type CashFlowEntry struct {
	Period             int             `json:"period"`
	Inflow             decimal.Decimal `json:"inflow"`
	Outflow            decimal.Decimal `json:"outflow"`
	NetCashFlow        decimal.Decimal `json:"net_cash_flow"`
	CumulativeCashFlow decimal.Decimal `json:"cumulative_cash_flow"`
	PresentValue       decimal.Decimal `json:"present_value"`
}
