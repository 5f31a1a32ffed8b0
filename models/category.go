package models

// Category groups transactions of one type. TransactionCount is a cached
// tally of live transactions referencing this category, maintained
// incrementally by the ledger; it can drift if a counter write fails after
// the primary write succeeded.
type Category struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Type             string `json:"type"`
	Icon             string `json:"icon"`
	Color            string `json:"color"`
	TransactionCount int    `json:"transaction_count"`
	OwnerID          string `json:"owner_id"`
}

type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Type  string `json:"type" binding:"required"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

func (r *CreateCategoryRequest) Validate() error {
	if r.Type != TypeIncome && r.Type != TypeExpense {
		return &ValidationError{Field: "type", Reason: "must be income or expense"}
	}
	return nil
}
