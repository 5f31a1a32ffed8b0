package models

// Status is global reference data (Completed/Pending/Cancelled), not scoped
// per user.
type Status struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
