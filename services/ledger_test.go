package services

import "testing"

func TestNewCounterMove(t *testing.T) {
	t.Run("unchanged reference yields no move", func(t *testing.T) {
		_, changed := newCounterMove("cat-a", "cat-a")
		if changed {
			t.Error("same id should not produce a counter move")
		}
	})

	t.Run("changed reference moves one count", func(t *testing.T) {
		move, changed := newCounterMove("cat-a", "cat-b")
		if !changed {
			t.Fatal("different ids should produce a counter move")
		}
		if move.Dec != "cat-a" {
			t.Errorf("Dec = %q, want cat-a", move.Dec)
		}
		if move.Inc != "cat-b" {
			t.Errorf("Inc = %q, want cat-b", move.Inc)
		}
	})

	t.Run("category and account toggles are independent", func(t *testing.T) {
		// Only the category changed: the account side must stay untouched.
		_, categoryChanged := newCounterMove("cat-a", "cat-b")
		_, accountChanged := newCounterMove("acc-1", "acc-1")

		if !categoryChanged {
			t.Error("category toggle should fire")
		}
		if accountChanged {
			t.Error("account toggle should not fire")
		}
	})
}

func TestNewLedgerService(t *testing.T) {
	service := NewLedgerService(nil, nil, nil, nil)
	if service == nil {
		t.Fatal("NewLedgerService should return a non-nil service")
	}
	if service.DB != nil || service.Counters != nil {
		t.Error("NewLedgerService should keep nil collaborators nil")
	}
}
