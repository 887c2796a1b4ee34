// Package feed turns Postgres NOTIFY payloads into a fan-out stream of change
// events that websocket clients subscribe to.
package feed

import (
	"sync"

	"github.com/pairspace/loveos/internal/models"
)

// subscriberBuffer bounds how many undelivered events a slow subscriber may
// hold before further events are dropped for it. Dropping is safe: consumers
// refetch on any event, so a burst collapses into the events that do arrive.
const subscriberBuffer = 16

// Hub fans change events out to subscribers. Safe for concurrent use.
type Hub struct {
	mu   sync.Mutex
	subs map[chan models.ChangeEvent]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[chan models.ChangeEvent]struct{})}
}

// Subscribe registers a new subscriber and returns its event channel plus a
// cancel function. Cancel is idempotent and closes the channel.
func (h *Hub) Subscribe() (<-chan models.ChangeEvent, func()) {
	ch := make(chan models.ChangeEvent, subscriberBuffer)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Broadcast delivers ev to every subscriber, dropping it for subscribers
// whose buffer is full.
func (h *Hub) Broadcast(ev models.ChangeEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Len reports the current number of subscribers.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
