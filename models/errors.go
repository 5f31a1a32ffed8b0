package models

import "fmt"

// ============================================================================
// ERROR TAXONOMY
// ============================================================================
// ValidationError: malformed input, rejected before any write.
// ReferenceError:  a category/account/status id that does not resolve.
// NotFoundError:   the target record is missing on update/delete.
// StoreError:      underlying persistence failure.
// ============================================================================

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

type ReferenceError struct {
	Collection string
	ID         string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %q does not resolve", e.Collection, e.ID)
}

type NotFoundError struct {
	Collection string
	ID         string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Collection, e.ID)
}

type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
