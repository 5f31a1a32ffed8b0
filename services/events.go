package services

import (
	"sync"
)

// Event collections.
const (
	CollectionTransactions = "transactions"
	CollectionCategories   = "categories"
	CollectionAccounts     = "accounts"
)

// Event actions.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Event is one change notification pushed to subscribers of an owner's data.
type Event struct {
	Collection string `json:"collection"`
	Action     string `json:"action"`
	ID         string `json:"id"`
	OwnerID    string `json:"owner_id"`
}

type subscriber struct {
	ownerID     string
	collections map[string]bool // empty means all
	ch          chan Event
}

// Broker fans mutation events out to per-owner subscribers. Delivery within
// one subscription follows publish order; nothing is guaranteed across
// independent subscriptions. A slow subscriber whose buffer is full drops
// events rather than blocking publishers.
type Broker struct {
	mu          sync.RWMutex
	subscribers map[int]*subscriber
	nextID      int
}

func NewBroker() *Broker {
	return &Broker{
		subscribers: make(map[int]*subscriber),
	}
}

// Subscribe registers interest in an owner's changes, optionally narrowed to
// specific collections. The returned cancel func releases the subscription
// and closes the channel; it is safe to call more than once but releases
// exactly once.
func (b *Broker) Subscribe(ownerID string, collections ...string) (<-chan Event, func()) {
	set := make(map[string]bool, len(collections))
	for _, c := range collections {
		set[c] = true
	}

	sub := &subscriber{
		ownerID:     ownerID,
		collections: set,
		ch:          make(chan Event, 64),
	}

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subscribers[id] = sub
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subscribers, id)
			b.mu.Unlock()
			close(sub.ch)
		})
	}

	return sub.ch, cancel
}

// Publish delivers an event to every matching subscriber.
func (b *Broker) Publish(e Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sub := range b.subscribers {
		if sub.ownerID != e.OwnerID {
			continue
		}
		if len(sub.collections) > 0 && !sub.collections[e.Collection] {
			continue
		}
		select {
		case sub.ch <- e:
		default:
			// Buffer full: drop rather than block the mutation path.
		}
	}
}
