package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Transaction is a single ledger record. Amount is stored unsigned; the sign
// is derived from Type on display. Category/Account/Status are weak
// references: the Option projections are nil when the referenced row no
// longer exists.
type Transaction struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    *Option         `json:"category"`
	Account     *Option         `json:"account"`
	Status      *Option         `json:"status"`
	OwnerID     string          `json:"owner_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type CreateTransactionRequest struct {
	Date        time.Time       `json:"date" binding:"required"`
	Description string          `json:"description"`
	Type        string          `json:"type" binding:"required"`
	Amount      decimal.Decimal `json:"amount"`
	CategoryID  string          `json:"category_id" binding:"required"`
	AccountID   string          `json:"account_id" binding:"required"`
	StatusID    string          `json:"status_id" binding:"required"`
}

// Validate rejects malformed input before any write is issued.
func (r *CreateTransactionRequest) Validate() error {
	if r.Type != TypeIncome && r.Type != TypeExpense {
		return &ValidationError{Field: "type", Reason: "must be income or expense"}
	}
	if r.Amount.IsNegative() {
		return &ValidationError{Field: "amount", Reason: "must not be negative"}
	}
	return nil
}

// UpdateTransactionRequest overwrites a record's mutable fields. The caller
// supplies the previous category/account ids so the store can tell whether
// either reference changed and move the counters accordingly.
type UpdateTransactionRequest struct {
	Date               time.Time       `json:"date" binding:"required"`
	Description        string          `json:"description"`
	Type               string          `json:"type" binding:"required"`
	Amount             decimal.Decimal `json:"amount"`
	CategoryID         string          `json:"category_id" binding:"required"`
	AccountID          string          `json:"account_id" binding:"required"`
	StatusID           string          `json:"status_id" binding:"required"`
	PreviousCategoryID string          `json:"previous_category_id"`
	PreviousAccountID  string          `json:"previous_account_id"`
}

func (r *UpdateTransactionRequest) Validate() error {
	c := CreateTransactionRequest{Type: r.Type, Amount: r.Amount}
	return c.Validate()
}
