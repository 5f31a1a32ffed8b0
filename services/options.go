package services

import (
	"context"
	"database/sql"

	"github.com/Alejandro-Val/FinanceTracker/models"
)

// OptionResolver projects referenced categories/accounts/statuses into
// display-friendly {value, label} options. A reference to a row that no
// longer exists resolves to nil, never to an error: callers treat nil as
// unknown/deleted.
type OptionResolver struct {
	DB *sql.DB
}

func NewOptionResolver(db *sql.DB) *OptionResolver {
	return &OptionResolver{DB: db}
}

// Category resolves a category reference, or nil if it dangles.
func (r *OptionResolver) Category(ctx context.Context, id string) (*models.Option, error) {
	var opt models.Option
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name FROM transaction_categories WHERE id = $1
	`, id).Scan(&opt.Value, &opt.Label)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, &models.StoreError{Op: "resolve category", Err: err}
	}
	return &opt, nil
}

// Account resolves an account reference, or nil if it dangles.
func (r *OptionResolver) Account(ctx context.Context, id string) (*models.Option, error) {
	var opt models.Option
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, institution, color FROM transaction_accounts WHERE id = $1
	`, id).Scan(&opt.Value, &opt.Label, &opt.Institution, &opt.Color)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, &models.StoreError{Op: "resolve account", Err: err}
	}
	return &opt, nil
}

// Status resolves a status reference, or nil if it dangles.
func (r *OptionResolver) Status(ctx context.Context, id string) (*models.Option, error) {
	var opt models.Option
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name FROM transaction_statuses WHERE id = $1
	`, id).Scan(&opt.Value, &opt.Label)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, &models.StoreError{Op: "resolve status", Err: err}
	}
	return &opt, nil
}

// CategoryOptions returns a user's categories as select options, grouped by
// transaction type.
func (r *OptionResolver) CategoryOptions(ctx context.Context, ownerID string) (*models.CategoryOptions, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, type FROM transaction_categories WHERE owner_id = $1 ORDER BY name
	`, ownerID)
	if err != nil {
		return nil, &models.StoreError{Op: "list category options", Err: err}
	}
	defer rows.Close()

	options := &models.CategoryOptions{
		Income:  []models.Option{},
		Expense: []models.Option{},
	}

	for rows.Next() {
		var opt models.Option
		var txType string
		if err := rows.Scan(&opt.Value, &opt.Label, &txType); err != nil {
			return nil, &models.StoreError{Op: "scan category option", Err: err}
		}
		switch txType {
		case models.TypeIncome:
			options.Income = append(options.Income, opt)
		case models.TypeExpense:
			options.Expense = append(options.Expense, opt)
		}
	}

	return options, rows.Err()
}

// AccountOptions returns a user's accounts as select options.
func (r *OptionResolver) AccountOptions(ctx context.Context, ownerID string) ([]models.Option, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, institution, color FROM transaction_accounts WHERE owner_id = $1 ORDER BY name
	`, ownerID)
	if err != nil {
		return nil, &models.StoreError{Op: "list account options", Err: err}
	}
	defer rows.Close()

	options := []models.Option{}
	for rows.Next() {
		var opt models.Option
		if err := rows.Scan(&opt.Value, &opt.Label, &opt.Institution, &opt.Color); err != nil {
			return nil, &models.StoreError{Op: "scan account option", Err: err}
		}
		options = append(options, opt)
	}

	return options, rows.Err()
}

// StatusOptions returns the global status list as select options.
func (r *OptionResolver) StatusOptions(ctx context.Context) ([]models.Option, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name FROM transaction_statuses ORDER BY name
	`)
	if err != nil {
		return nil, &models.StoreError{Op: "list status options", Err: err}
	}
	defer rows.Close()

	options := []models.Option{}
	for rows.Next() {
		var opt models.Option
		if err := rows.Scan(&opt.Value, &opt.Label); err != nil {
			return nil, &models.StoreError{Op: "scan status option", Err: err}
		}
		options = append(options, opt)
	}

	return options, rows.Err()
}
