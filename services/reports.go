package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Alejandro-Val/FinanceTracker/models"
	"github.com/Alejandro-Val/FinanceTracker/utils"
)

// ReportService computes aggregate figures over a user's transactions.
//
// The overview path never returns an error: any failure degrades to the
// zero-valued structure so the report view renders "no data" instead of
// crashing. Real errors are only visible in the logs.
type ReportService struct {
	DB       *sql.DB
	Resolver *OptionResolver
}

func NewReportService(db *sql.DB, resolver *OptionResolver) *ReportService {
	return &ReportService{DB: db, Resolver: resolver}
}

// overviewRow is one scanned transaction: just the fields the accumulator
// needs.
type overviewRow struct {
	Type       string
	Amount     decimal.Decimal
	CategoryID string
}

// overviewAccumulator folds scanned rows into the overview figures. The
// largest expense uses a strictly-greater comparison, so on equal amounts
// the first row encountered wins; scan order is whatever the store returns.
// resolveName is called once per new maximum, not per row.
type overviewAccumulator struct {
	overview    models.FinancialOverview
	resolveName func(categoryID string) string
}

func (a *overviewAccumulator) add(row overviewRow) {
	switch row.Type {
	case models.TypeIncome:
		a.overview.TotalIncome = a.overview.TotalIncome.Add(row.Amount)
	case models.TypeExpense:
		a.overview.TotalExpense = a.overview.TotalExpense.Add(row.Amount)

		if row.Amount.GreaterThan(a.overview.LargestExpense.Amount) {
			a.overview.LargestExpense.Amount = row.Amount
			a.overview.LargestExpense.Name = a.resolveName(row.CategoryID)
		}
	}
}

func (a *overviewAccumulator) result() models.FinancialOverview {
	a.overview.NetSavings = a.overview.TotalIncome.Sub(a.overview.TotalExpense)
	return a.overview
}

// ComputeOverview scans the owner's transactions with date in [from, to]
// inclusive and returns income/expense/savings totals plus the single
// largest expense with its category name resolved.
func (s *ReportService) ComputeOverview(ctx context.Context, ownerID string, dateRange models.DateRange) models.FinancialOverview {
	acc := &overviewAccumulator{
		resolveName: func(categoryID string) string {
			opt, err := s.Resolver.Category(ctx, categoryID)
			if err != nil {
				utils.SafeError("resolve largest-expense category %s: %v", categoryID, err)
				return ""
			}
			if opt == nil {
				// Dangling reference: keep the amount, leave the name empty.
				return ""
			}
			return opt.Label
		},
	}

	rows, err := s.DB.QueryContext(ctx, `
		SELECT type, amount, category_id
		FROM transactions
		WHERE owner_id = $1 AND date >= $2 AND date <= $3
	`, ownerID, dateRange.From, dateRange.To)
	if err != nil {
		utils.SafeError("overview scan for user %s: %v", ownerID, err)
		return models.FinancialOverview{}
	}
	defer rows.Close()

	for rows.Next() {
		var row overviewRow
		if err := rows.Scan(&row.Type, &row.Amount, &row.CategoryID); err != nil {
			utils.SafeError("overview scan row for user %s: %v", ownerID, err)
			return models.FinancialOverview{}
		}
		acc.add(row)
	}
	if err := rows.Err(); err != nil {
		utils.SafeError("overview scan for user %s: %v", ownerID, err)
		return models.FinancialOverview{}
	}

	return acc.result()
}

// MonthlyStats builds the dashboard stat cards for the current month.
func (s *ReportService) MonthlyStats(ctx context.Context, ownerID string) []models.Stat {
	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	endOfMonth := time.Date(now.Year(), now.Month()+1, 0, 23, 59, 59, 0, now.Location())

	overview := s.ComputeOverview(ctx, ownerID, models.DateRange{From: startOfMonth, To: endOfMonth})
	balance := overview.NetSavings

	trend := "up"
	if balance.IsNegative() {
		trend = "down"
	}

	return []models.Stat{
		{
			Title:       "Monthly Balance",
			Value:       fmt.Sprintf("$%s", balance.StringFixed(2)),
			Change:      "0%",
			Trend:       trend,
			Icon:        "DollarSign",
			Description: "Current account balance",
		},
		{
			Title:       "Monthly Income",
			Value:       fmt.Sprintf("$%s", overview.TotalIncome.StringFixed(2)),
			Change:      "0%",
			Trend:       "up",
			Icon:        "ArrowUpRight",
			Description: "This month's income",
		},
		{
			Title:       "Monthly Expenses",
			Value:       fmt.Sprintf("$%s", overview.TotalExpense.StringFixed(2)),
			Change:      "0%",
			Trend:       "down",
			Icon:        "ArrowDownLeft",
			Description: "This month's expenses",
		},
	}
}
