package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

type LargestExpense struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// FinancialOverview is the aggregate over one owner's transactions in a date
// window. The zero value is the degraded "no data" result the report path
// falls back to on any failure.
type FinancialOverview struct {
	TotalIncome    decimal.Decimal `json:"totalIncome"`
	TotalExpense   decimal.Decimal `json:"totalExpense"`
	NetSavings     decimal.Decimal `json:"netSavings"`
	LargestExpense LargestExpense  `json:"largestExpense"`
}

// Stat is one dashboard card (balance / income / expenses for the current
// month).
type Stat struct {
	Title       string `json:"title"`
	Value       string `json:"value"`
	Change      string `json:"change"`
	Trend       string `json:"trend"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}
