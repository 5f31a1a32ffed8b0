package models

// Option is the denormalized {value, label} projection of a referenced
// category/account/status, used by the UI for selects and display. It is
// never persisted.
type Option struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Institution string `json:"institution,omitempty"`
	Color       string `json:"color,omitempty"`
}

// CategoryOptions groups a user's category options by transaction type.
type CategoryOptions struct {
	Income  []Option `json:"income"`
	Expense []Option `json:"expense"`
}
