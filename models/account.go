package models

// Account carries the same cached TransactionCount as Category, with the
// same drift caveat.
type Account struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Institution      string `json:"institution"`
	Color            string `json:"color"`
	TransactionCount int    `json:"transaction_count"`
	OwnerID          string `json:"owner_id"`
}

type CreateAccountRequest struct {
	Name        string `json:"name" binding:"required"`
	Institution string `json:"institution"`
	Color       string `json:"color"`
}
