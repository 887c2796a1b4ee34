// Package listview implements the live collection controller: load a feature's
// entries from the remote store, keep them fresh by refetching on every change
// notification, and release the subscription on teardown.
package listview

import (
	"context"
	"sync"

	"github.com/pairspace/loveos/internal/client/store"
	"github.com/pairspace/loveos/internal/common"
	"github.com/pairspace/loveos/internal/models"
)

type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// FetchFunc loads the full collection with the controller's original query
// parameters baked in.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// SubscribeFunc opens a change feed delivering events for all tables; the
// controller filters for its own.
type SubscribeFunc func(ctx context.Context, onEvent func(models.ChangeEvent)) (store.UnsubscribeFunc, error)

// Controller owns one feature's collection. Reconciliation is always discard
// and refetch, never an incremental merge. All methods are safe for
// concurrent use; change events arrive on the subscription goroutine.
type Controller[T any] struct {
	table     string
	fetch     FetchFunc[T]
	subscribe SubscribeFunc

	mu          sync.Mutex
	state       State
	items       []T
	err         error
	generation  uint64
	torn        bool
	unsubscribe store.UnsubscribeFunc
	onUpdate    func()
}

func NewController[T any](table string, fetch FetchFunc[T], subscribe SubscribeFunc) *Controller[T] {
	return &Controller[T]{table: table, fetch: fetch, subscribe: subscribe}
}

// OnUpdate registers a callback invoked after every state transition out of
// loading. Must be set before Initialize.
func (c *Controller[T]) OnUpdate(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUpdate = fn
}

// Initialize fetches the collection. On failure the collection is left empty
// and the controller enters the error state; the caller reports it, nothing
// retries automatically.
func (c *Controller[T]) Initialize(ctx context.Context) error {
	c.mu.Lock()
	if c.torn {
		c.mu.Unlock()
		return common.ErrControllerTornDown
	}
	c.generation++
	gen := c.generation
	c.state = StateLoading
	c.mu.Unlock()

	items, err := c.fetch(ctx)

	c.mu.Lock()
	// A result arriving after teardown or after a newer fetch started must
	// not touch the controller.
	if c.torn || c.generation != gen {
		c.mu.Unlock()
		return err
	}
	if err != nil {
		c.state = StateError
		c.items = nil
		c.err = err
	} else {
		c.state = StateReady
		c.items = items
		c.err = nil
	}
	notify := c.onUpdate
	c.mu.Unlock()

	if notify != nil {
		notify()
	}
	return err
}

// Subscribe opens the change feed. Every event for the controller's table,
// whatever its kind, triggers one full re-run of Initialize.
func (c *Controller[T]) Subscribe(ctx context.Context) error {
	c.mu.Lock()
	if c.torn {
		c.mu.Unlock()
		return common.ErrControllerTornDown
	}
	if c.unsubscribe != nil {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	unsubscribe, err := c.subscribe(ctx, func(ev models.ChangeEvent) {
		if ev.Table != c.table {
			return
		}
		_ = c.Initialize(ctx)
	})
	if err != nil {
		return err
	}

	c.mu.Lock()
	if c.torn {
		c.mu.Unlock()
		unsubscribe()
		return common.ErrControllerTornDown
	}
	if c.unsubscribe != nil {
		// A concurrent Subscribe won the race; keep its feed and drop ours.
		c.mu.Unlock()
		unsubscribe()
		return nil
	}
	c.unsubscribe = unsubscribe
	c.mu.Unlock()
	return nil
}

// Teardown closes the subscription and marks the controller terminal. Safe
// from any state and idempotent; results of in-flight fetches resolving after
// this call are discarded.
func (c *Controller[T]) Teardown() {
	c.mu.Lock()
	c.torn = true
	c.generation++
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	c.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Items returns the current collection. Empty in every state but ready.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items
}

// Err returns the fetch error when the controller is in the error state.
func (c *Controller[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}
