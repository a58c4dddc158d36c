package live

import (
	"context"
	"errors"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/core"
)

// ErrClosed is returned by Await once the cell's scope has ended
var ErrClosed = errors.New("live: cell closed")

// Cell is a broadcast state holder over a Source. Every subscriber first
// receives the current value, then conflated updates (latest wins).
// The upstream Source runs according to the cell's Started policy.
type Cell[T any] struct {
	name    string
	scope   context.Context
	source  Source[T]
	started Started
	logger  coreport.Logger
	detach  func() bool

	mu         sync.Mutex
	value      T
	subs       map[uint64]chan T
	nextID     uint64
	running    bool
	cancel     context.CancelFunc
	generation uint64
	stopTimer  *time.Timer
	starts     int
	published  bool // upstream has emitted since its last start
	closed     bool
}

// NewCell creates a cell seeded with initial. The cell and its subscriptions
// end when scope is done.
func NewCell[T any](
	scope context.Context,
	name string,
	source Source[T],
	started Started,
	initial T,
	logger coreport.Logger,
) *Cell[T] {
	c := &Cell[T]{
		name:    name,
		scope:   scope,
		source:  source,
		started: started,
		logger:  logger,
		value:   initial,
		subs:    make(map[uint64]chan T),
	}

	if started.IsEager() {
		c.mu.Lock()
		c.startLocked()
		c.mu.Unlock()
	}

	c.detach = context.AfterFunc(scope, c.shutdown)

	return c
}

// Close ends the cell before its scope does. Short-lived cells call it so
// the scope does not keep them reachable.
func (c *Cell[T]) Close() {
	c.detach()
	c.shutdown()
}

// Value returns the most recent value
func (c *Cell[T]) Value() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Subscribe attaches a subscriber until ctx is done. The returned channel
// holds the current value immediately and is closed when the subscription
// ends.
func (c *Cell[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		close(ch)
		return ch
	}

	id := c.nextID
	c.nextID++
	c.subs[id] = ch
	ch <- c.value

	if !c.started.IsEager() {
		if c.stopTimer != nil {
			c.stopTimer.Stop()
			c.stopTimer = nil
		}
		if !c.running {
			c.startLocked()
		}
	}
	c.mu.Unlock()

	context.AfterFunc(ctx, func() { c.unsubscribe(id) })

	return ch
}

// Await subscribes until the running upstream has emitted at least once and
// returns the current value. A cell that has already emitted answers at once.
func (c *Cell[T]) Await(ctx context.Context) (T, error) {
	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch := c.Subscribe(subCtx)
	for {
		if v, ok := c.freshValue(); ok {
			return v, nil
		}

		select {
		case _, ok := <-ch:
			if !ok {
				var zero T
				return zero, ErrClosed
			}
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
}

func (c *Cell[T]) freshValue() (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value, c.published && !c.closed
}

// Subscribers returns the number of attached subscribers
func (c *Cell[T]) Subscribers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}

// Active reports whether the upstream Source is currently running
func (c *Cell[T]) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Starts returns how many times the upstream has been started
func (c *Cell[T]) Starts() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.starts
}

func (c *Cell[T]) unsubscribe(id uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch, ok := c.subs[id]
	if !ok {
		return
	}
	delete(c.subs, id)
	close(ch)

	if c.started.IsEager() || len(c.subs) > 0 || !c.running {
		return
	}

	grace := c.started.StopTimeout()
	if grace == 0 {
		c.stopLocked()
		return
	}

	var timer *time.Timer
	timer = time.AfterFunc(grace, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.stopTimer != timer {
			return
		}
		c.stopTimer = nil
		if len(c.subs) == 0 {
			c.stopLocked()
		}
	})
	c.stopTimer = timer
}

// startLocked launches the upstream; c.mu must be held
func (c *Cell[T]) startLocked() {
	ctx, cancel := context.WithCancel(c.scope)
	c.generation++
	gen := c.generation
	c.running = true
	c.published = false
	c.cancel = cancel
	c.starts++

	c.logger.Debug("Live cell started", map[string]any{
		"cell":   c.name,
		"starts": c.starts,
	})

	go func() {
		defer cancel()

		err := c.source(ctx, func(v T) { c.publish(gen, v) })
		if err != nil && ctx.Err() == nil {
			c.logger.Error("Live cell upstream failed", map[string]any{
				"cell":  c.name,
				"error": err.Error(),
			})
		}

		c.mu.Lock()
		if c.generation == gen && c.running {
			c.running = false
			c.cancel = nil
		}
		c.mu.Unlock()
	}()
}

// stopLocked cancels the upstream; c.mu must be held
func (c *Cell[T]) stopLocked() {
	if !c.running {
		return
	}
	c.cancel()
	c.cancel = nil
	c.running = false
	c.generation++

	c.logger.Debug("Live cell stopped", map[string]any{"cell": c.name})
}

func (c *Cell[T]) publish(gen uint64, v T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || gen != c.generation || !c.running {
		return
	}
	c.value = v
	c.published = true

	for _, ch := range c.subs {
		select {
		case <-ch:
		default:
		}
		ch <- v
	}
}

func (c *Cell[T]) shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	if c.stopTimer != nil {
		c.stopTimer.Stop()
		c.stopTimer = nil
	}
	c.stopLocked()
	for id, ch := range c.subs {
		close(ch)
		delete(c.subs, id)
	}
}
