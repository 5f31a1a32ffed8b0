package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Alejandro-Val/FinanceTracker/models"
)

func staticResolver(names map[string]string) func(string) string {
	return func(id string) string {
		return names[id]
	}
}

func TestOverviewAccumulator_EmptySet(t *testing.T) {
	acc := &overviewAccumulator{resolveName: staticResolver(nil)}

	overview := acc.result()

	if !overview.TotalIncome.IsZero() {
		t.Errorf("TotalIncome = %s, want 0", overview.TotalIncome)
	}
	if !overview.TotalExpense.IsZero() {
		t.Errorf("TotalExpense = %s, want 0", overview.TotalExpense)
	}
	if !overview.NetSavings.IsZero() {
		t.Errorf("NetSavings = %s, want 0", overview.NetSavings)
	}
	if overview.LargestExpense.Name != "" || !overview.LargestExpense.Amount.IsZero() {
		t.Errorf("LargestExpense = %+v, want empty", overview.LargestExpense)
	}
}

func TestOverviewAccumulator_Scenario(t *testing.T) {
	acc := &overviewAccumulator{
		resolveName: staticResolver(map[string]string{
			"cat-rent": "Rent",
			"cat-food": "Food",
		}),
	}

	acc.add(overviewRow{Type: "income", Amount: decimal.NewFromInt(1000)})
	acc.add(overviewRow{Type: "expense", Amount: decimal.NewFromInt(300), CategoryID: "cat-rent"})
	acc.add(overviewRow{Type: "expense", Amount: decimal.NewFromInt(150), CategoryID: "cat-food"})

	overview := acc.result()

	if !overview.TotalIncome.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("TotalIncome = %s, want 1000", overview.TotalIncome)
	}
	if !overview.TotalExpense.Equal(decimal.NewFromInt(450)) {
		t.Errorf("TotalExpense = %s, want 450", overview.TotalExpense)
	}
	if !overview.NetSavings.Equal(decimal.NewFromInt(550)) {
		t.Errorf("NetSavings = %s, want 550", overview.NetSavings)
	}
	if overview.LargestExpense.Name != "Rent" {
		t.Errorf("LargestExpense.Name = %q, want Rent", overview.LargestExpense.Name)
	}
	if !overview.LargestExpense.Amount.Equal(decimal.NewFromInt(300)) {
		t.Errorf("LargestExpense.Amount = %s, want 300", overview.LargestExpense.Amount)
	}
}

func TestOverviewAccumulator_NetSavingsConsistency(t *testing.T) {
	cases := []struct {
		name string
		rows []overviewRow
	}{
		{"income only", []overviewRow{{Type: "income", Amount: decimal.NewFromInt(200)}}},
		{"expense only", []overviewRow{{Type: "expense", Amount: decimal.NewFromInt(75), CategoryID: "c"}}},
		{"mixed", []overviewRow{
			{Type: "income", Amount: decimal.NewFromFloat(10.50)},
			{Type: "expense", Amount: decimal.NewFromFloat(4.25), CategoryID: "c"},
			{Type: "income", Amount: decimal.NewFromInt(3)},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			acc := &overviewAccumulator{resolveName: staticResolver(nil)}
			for _, row := range tc.rows {
				acc.add(row)
			}

			overview := acc.result()
			want := overview.TotalIncome.Sub(overview.TotalExpense)
			if !overview.NetSavings.Equal(want) {
				t.Errorf("NetSavings = %s, want income - expense = %s", overview.NetSavings, want)
			}
		})
	}
}

func TestOverviewAccumulator_LargestExpenseTieBreak(t *testing.T) {
	acc := &overviewAccumulator{
		resolveName: staticResolver(map[string]string{
			"first":  "First",
			"second": "Second",
		}),
	}

	// Equal amounts: the first one encountered wins.
	acc.add(overviewRow{Type: "expense", Amount: decimal.NewFromInt(100), CategoryID: "first"})
	acc.add(overviewRow{Type: "expense", Amount: decimal.NewFromInt(100), CategoryID: "second"})

	overview := acc.result()
	if overview.LargestExpense.Name != "First" {
		t.Errorf("LargestExpense.Name = %q, want First", overview.LargestExpense.Name)
	}
}

func TestOverviewAccumulator_ResolvesPerNewMaximumOnly(t *testing.T) {
	calls := 0
	acc := &overviewAccumulator{
		resolveName: func(id string) string {
			calls++
			return id
		},
	}

	acc.add(overviewRow{Type: "expense", Amount: decimal.NewFromInt(50), CategoryID: "a"})
	acc.add(overviewRow{Type: "expense", Amount: decimal.NewFromInt(40), CategoryID: "b"}) // not a new max
	acc.add(overviewRow{Type: "expense", Amount: decimal.NewFromInt(60), CategoryID: "c"})
	acc.add(overviewRow{Type: "income", Amount: decimal.NewFromInt(999)}) // income never resolves

	if calls != 2 {
		t.Errorf("resolveName called %d times, want 2 (once per new maximum)", calls)
	}
}

func TestOverviewAccumulator_DanglingCategoryKeepsAmount(t *testing.T) {
	// A deleted category resolves to an empty name; the amount still counts.
	acc := &overviewAccumulator{resolveName: staticResolver(nil)}

	acc.add(overviewRow{Type: "expense", Amount: decimal.NewFromInt(80), CategoryID: "gone"})

	overview := acc.result()
	if overview.LargestExpense.Name != "" {
		t.Errorf("LargestExpense.Name = %q, want empty", overview.LargestExpense.Name)
	}
	if !overview.LargestExpense.Amount.Equal(decimal.NewFromInt(80)) {
		t.Errorf("LargestExpense.Amount = %s, want 80", overview.LargestExpense.Amount)
	}
	if !overview.TotalExpense.Equal(decimal.NewFromInt(80)) {
		t.Errorf("TotalExpense = %s, want 80", overview.TotalExpense)
	}
}

func TestOverviewAccumulator_UnknownTypeIgnored(t *testing.T) {
	acc := &overviewAccumulator{resolveName: staticResolver(nil)}

	acc.add(overviewRow{Type: "transfer", Amount: decimal.NewFromInt(500)})

	overview := acc.result()
	if !overview.TotalIncome.IsZero() || !overview.TotalExpense.IsZero() {
		t.Errorf("unknown type changed totals: %+v", overview)
	}
}

func TestZeroOverviewIsDegradedResult(t *testing.T) {
	// The report path returns this on any failure; it must marshal as all
	// zeroes rather than nulls.
	var overview models.FinancialOverview
	if !overview.TotalIncome.IsZero() || !overview.NetSavings.IsZero() {
		t.Error("zero FinancialOverview should carry zero decimals")
	}
}
