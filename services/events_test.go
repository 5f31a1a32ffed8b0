package services

import (
	"testing"
	"time"
)

func receiveEvent(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case e, ok := <-ch:
		if !ok {
			t.Fatal("channel closed before an event arrived")
		}
		return e
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestBroker_DeliversToOwner(t *testing.T) {
	broker := NewBroker()
	events, cancel := broker.Subscribe("user-1")
	defer cancel()

	broker.Publish(Event{Collection: CollectionTransactions, Action: ActionCreated, ID: "tx-1", OwnerID: "user-1"})

	e := receiveEvent(t, events)
	if e.ID != "tx-1" || e.Action != ActionCreated {
		t.Errorf("got %+v, want tx-1 created", e)
	}
}

func TestBroker_FiltersOtherOwners(t *testing.T) {
	broker := NewBroker()
	events, cancel := broker.Subscribe("user-1")
	defer cancel()

	broker.Publish(Event{Collection: CollectionTransactions, Action: ActionCreated, ID: "tx-other", OwnerID: "user-2"})

	select {
	case e := <-events:
		t.Errorf("received another owner's event: %+v", e)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBroker_CollectionFilter(t *testing.T) {
	broker := NewBroker()
	events, cancel := broker.Subscribe("user-1", CollectionCategories)
	defer cancel()

	broker.Publish(Event{Collection: CollectionTransactions, Action: ActionCreated, ID: "tx-1", OwnerID: "user-1"})
	broker.Publish(Event{Collection: CollectionCategories, Action: ActionUpdated, ID: "cat-1", OwnerID: "user-1"})

	e := receiveEvent(t, events)
	if e.Collection != CollectionCategories {
		t.Errorf("got collection %q, want %q", e.Collection, CollectionCategories)
	}
}

func TestBroker_PublishOrderWithinSubscription(t *testing.T) {
	broker := NewBroker()
	events, cancel := broker.Subscribe("user-1")
	defer cancel()

	ids := []string{"tx-1", "tx-2", "tx-3"}
	for _, id := range ids {
		broker.Publish(Event{Collection: CollectionTransactions, Action: ActionCreated, ID: id, OwnerID: "user-1"})
	}

	for _, want := range ids {
		if got := receiveEvent(t, events).ID; got != want {
			t.Fatalf("out of order: got %q, want %q", got, want)
		}
	}
}

func TestBroker_CancelClosesAndIsIdempotent(t *testing.T) {
	broker := NewBroker()
	events, cancel := broker.Subscribe("user-1")

	cancel()
	cancel() // second call must be a safe no-op

	if _, ok := <-events; ok {
		t.Error("channel should be closed after cancel")
	}

	// A publish after cancel must not panic or deliver.
	broker.Publish(Event{Collection: CollectionTransactions, Action: ActionDeleted, ID: "tx-1", OwnerID: "user-1"})
}

func TestBroker_SlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	broker := NewBroker()
	_, cancel := broker.Subscribe("user-1")
	defer cancel()

	done := make(chan struct{})
	go func() {
		// Overflow the subscription buffer without draining it.
		for i := 0; i < 200; i++ {
			broker.Publish(Event{Collection: CollectionTransactions, Action: ActionCreated, ID: "tx", OwnerID: "user-1"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publisher blocked on a slow subscriber")
	}
}
