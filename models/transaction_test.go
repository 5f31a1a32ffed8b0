package models

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCreateTransactionRequest_Validate(t *testing.T) {
	valid := CreateTransactionRequest{
		Type:   TypeExpense,
		Amount: decimal.NewFromFloat(12.50),
	}

	t.Run("valid request", func(t *testing.T) {
		req := valid
		if err := req.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("income type", func(t *testing.T) {
		req := valid
		req.Type = TypeIncome
		if err := req.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		req := valid
		req.Type = "transfer"

		err := req.Validate()
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("got %v, want ValidationError", err)
		}
		if validationErr.Field != "type" {
			t.Errorf("Field = %q, want type", validationErr.Field)
		}
	})

	t.Run("negative amount", func(t *testing.T) {
		req := valid
		req.Amount = decimal.NewFromInt(-1)

		err := req.Validate()
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("got %v, want ValidationError", err)
		}
		if validationErr.Field != "amount" {
			t.Errorf("Field = %q, want amount", validationErr.Field)
		}
	})

	t.Run("zero amount is allowed", func(t *testing.T) {
		req := valid
		req.Amount = decimal.Zero
		if err := req.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestUpdateTransactionRequest_Validate(t *testing.T) {
	req := UpdateTransactionRequest{
		Type:   "invalid",
		Amount: decimal.NewFromInt(10),
	}

	var validationErr *ValidationError
	if !errors.As(req.Validate(), &validationErr) {
		t.Error("update validation should reuse the create rules")
	}
}

func TestErrorTaxonomy(t *testing.T) {
	t.Run("store error unwraps", func(t *testing.T) {
		inner := errors.New("connection refused")
		err := &StoreError{Op: "insert transaction", Err: inner}
		if !errors.Is(err, inner) {
			t.Error("StoreError should unwrap to the inner error")
		}
	})

	t.Run("messages name the offending reference", func(t *testing.T) {
		err := &ReferenceError{Collection: "category", ID: "cat-1"}
		if err.Error() != `category "cat-1" does not resolve` {
			t.Errorf("unexpected message: %s", err.Error())
		}
	})
}
