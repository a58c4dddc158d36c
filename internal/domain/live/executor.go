package live

import (
	"context"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/core"
)

// Task is one unit of background work
type Task func(ctx context.Context) error

type queuedTask struct {
	name string
	fn   Task
}

// Executor runs submitted tasks one at a time, in submission order, on a
// background goroutine. Store writes go through it so callers never block on
// I/O and store ids follow submission order. A full queue sheds new tasks.
type Executor struct {
	logger      coreport.Logger
	taskTimeout time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan queuedTask
	done   chan struct{}
}

// NewExecutor starts an executor with the given queue capacity. A zero
// taskTimeout leaves tasks unbounded.
func NewExecutor(logger coreport.Logger, capacity int, taskTimeout time.Duration) *Executor {
	if capacity <= 0 {
		capacity = 1
	}

	e := &Executor{
		logger:      logger,
		taskTimeout: taskTimeout,
		queue:       make(chan queuedTask, capacity),
		done:        make(chan struct{}),
	}

	go e.run()

	return e
}

// Submit queues fn and returns immediately. It reports false, and the task
// is dropped, if the queue is full or the executor has been shut down.
func (e *Executor) Submit(name string, fn Task) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.closed {
		e.logger.Warn("Task rejected by stopped executor", map[string]any{
			"task": name,
		})
		return false
	}

	select {
	case e.queue <- queuedTask{name: name, fn: fn}:
		return true
	default:
		e.logger.Warn("Background queue full, task dropped", map[string]any{
			"task":     name,
			"capacity": cap(e.queue),
		})
		return false
	}
}

// Drain waits until every task submitted before the call has finished.
// Unlike Submit it waits for room in a full queue.
func (e *Executor) Drain(ctx context.Context) error {
	barrier := make(chan struct{})
	queued, err := e.enqueue(ctx, queuedTask{name: "drain", fn: func(context.Context) error {
		close(barrier)
		return nil
	}})
	if err != nil || !queued {
		// not queued: shutdown already drained the queue
		return err
	}

	select {
	case <-barrier:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *Executor) enqueue(ctx context.Context, t queuedTask) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.closed {
		return false, nil
	}

	select {
	case e.queue <- t:
		return true, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// Shutdown stops accepting tasks, finishes the queued ones and returns
func (e *Executor) Shutdown() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		<-e.done
		return
	}
	e.closed = true
	close(e.queue)
	e.mu.Unlock()

	<-e.done
	e.logger.Info("Background executor shut down", nil)
}

func (e *Executor) run() {
	defer close(e.done)

	for t := range e.queue {
		e.execute(t)
	}
}

func (e *Executor) execute(t queuedTask) {
	ctx := context.Background()
	if e.taskTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.taskTimeout)
		defer cancel()
	}

	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("Background task panicked", map[string]any{
				"task":  t.name,
				"panic": r,
			})
		}
	}()

	if err := t.fn(ctx); err != nil {
		e.logger.Error("Background task failed", map[string]any{
			"task":  t.name,
			"error": err.Error(),
		})
	}
}
