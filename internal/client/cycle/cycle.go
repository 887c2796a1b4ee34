// Package cycle drives the timer-based cyclic displays: nickname rotation and
// the anniversary countdown refresh. The tick source is replaceable so tests
// never sleep.
package cycle

import (
	"sync"
	"time"
)

// Advance returns the next index in a ring of n items. A ring of zero or one
// item never advances.
func Advance(index, n int) int {
	if n <= 0 {
		return 0
	}
	return (index + 1) % n
}

// TickSource returns a tick channel and a stop function releasing it.
type TickSource func(interval time.Duration) (<-chan time.Time, func())

func defaultTickSource(interval time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(interval)
	return t.C, t.Stop
}

// Cycler steps an index through a ring on every tick and reports each step.
type Cycler struct {
	n        int
	interval time.Duration
	source   TickSource

	mu    sync.Mutex
	index int
	stop  func()
	done  chan struct{}
}

func NewCycler(n int, interval time.Duration) *Cycler {
	return &Cycler{n: n, interval: interval, source: defaultTickSource}
}

// WithTickSource replaces the timer, for tests. Must be called before Start.
func (c *Cycler) WithTickSource(source TickSource) *Cycler {
	c.source = source
	return c
}

// Index returns the current position in the ring.
func (c *Cycler) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Start begins ticking and invokes onChange with each new index. Calling
// Start on a running cycler is a no-op.
func (c *Cycler) Start(onChange func(index int)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stop != nil {
		return
	}

	ticks, stop := c.source(c.interval)
	done := make(chan struct{})
	c.stop = stop
	c.done = done

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticks:
				c.mu.Lock()
				c.index = Advance(c.index, c.n)
				next := c.index
				c.mu.Unlock()
				if onChange != nil {
					onChange(next)
				}
			}
		}
	}()
}

// Stop halts the timer. Must be called on teardown without exception, from
// any state; safe to call twice.
func (c *Cycler) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stop == nil {
		return
	}
	c.stop()
	close(c.done)
	c.stop = nil
	c.done = nil
}
