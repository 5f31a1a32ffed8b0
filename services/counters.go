package services

import (
	"context"
	"database/sql"

	"github.com/Alejandro-Val/FinanceTracker/utils"
)

// CounterService applies atomic increments to the cached transaction_count
// on categories and accounts. Each call applies exactly one delta; duplicate
// suppression is the caller's job. Adjusting a row that no longer exists is
// a no-op, not an error.
type CounterService struct {
	DB *sql.DB
}

func NewCounterService(db *sql.DB) *CounterService {
	return &CounterService{DB: db}
}

// AdjustCategory adds delta to a category's transaction_count.
func (s *CounterService) AdjustCategory(ctx context.Context, categoryID string, delta int) error {
	return s.adjust(ctx, "category",
		`UPDATE transaction_categories SET transaction_count = transaction_count + $2 WHERE id = $1`,
		categoryID, delta)
}

// AdjustAccount adds delta to an account's transaction_count.
func (s *CounterService) AdjustAccount(ctx context.Context, accountID string, delta int) error {
	return s.adjust(ctx, "account",
		`UPDATE transaction_accounts SET transaction_count = transaction_count + $2 WHERE id = $1`,
		accountID, delta)
}

func (s *CounterService) adjust(ctx context.Context, kind, query, id string, delta int) error {
	result, err := s.DB.ExecContext(ctx, query, id, delta)
	if err != nil {
		return err
	}

	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		utils.SafeDebug("counter adjust on missing %s %s (delta %d), skipped", kind, id, delta)
	}

	return nil
}

// ReportDrift compares each cached counter against the true count of
// referencing transactions and logs any divergence. It does not repair
// anything; counters are best-effort and drift is expected to be rare.
func (s *CounterService) ReportDrift(ctx context.Context) {
	queries := map[string]string{
		"category": `
			SELECT c.id, c.transaction_count, COUNT(t.id)
			FROM transaction_categories c
			LEFT JOIN transactions t ON t.category_id = c.id
			GROUP BY c.id, c.transaction_count
			HAVING c.transaction_count != COUNT(t.id)`,
		"account": `
			SELECT a.id, a.transaction_count, COUNT(t.id)
			FROM transaction_accounts a
			LEFT JOIN transactions t ON t.account_id = a.id
			GROUP BY a.id, a.transaction_count
			HAVING a.transaction_count != COUNT(t.id)`,
	}

	for kind, query := range queries {
		rows, err := s.DB.QueryContext(ctx, query)
		if err != nil {
			utils.SafeError("drift check (%s) failed: %v", kind, err)
			continue
		}

		for rows.Next() {
			var id string
			var cached, actual int
			if err := rows.Scan(&id, &cached, &actual); err != nil {
				continue
			}
			utils.SafeWarn("counter drift on %s %s: cached=%d actual=%d", kind, id, cached, actual)
		}
		rows.Close()
	}
}
