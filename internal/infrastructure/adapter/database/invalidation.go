package database

import (
	"context"
	"sync"

	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/pocket-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/live"
)

const invalidationCallback = "wallet:invalidate"

type observer struct {
	tables  map[string]struct{}
	changes chan struct{}
}

// InvalidationTracker tells live queries when a table they read has been
// written. Signals are coalesced: an observer that has not consumed the
// previous signal will not queue another.
type InvalidationTracker struct {
	mu        sync.Mutex
	observers map[uint64]*observer
	nextID    uint64
	done      chan struct{}
	closed    bool
}

// NewInvalidationTracker creates an open tracker
func NewInvalidationTracker() *InvalidationTracker {
	return &InvalidationTracker{
		observers: make(map[uint64]*observer),
		done:      make(chan struct{}),
	}
}

// Observe registers interest in the given tables. The returned channel
// receives a signal after every committed write to one of them; the stop
// function unregisters the observer.
func (t *InvalidationTracker) Observe(tables ...string) (<-chan struct{}, func()) {
	o := &observer{
		tables:  make(map[string]struct{}, len(tables)),
		changes: make(chan struct{}, 1),
	}
	for _, table := range tables {
		o.tables[table] = struct{}{}
	}

	t.mu.Lock()
	id := t.nextID
	t.nextID++
	t.observers[id] = o
	t.mu.Unlock()

	return o.changes, func() {
		t.mu.Lock()
		delete(t.observers, id)
		t.mu.Unlock()
	}
}

// Notify signals every observer of the given tables
func (t *InvalidationTracker) Notify(tables ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}

	for _, o := range t.observers {
		for _, table := range tables {
			if _, ok := o.tables[table]; !ok {
				continue
			}
			select {
			case o.changes <- struct{}{}:
			default:
			}
			break
		}
	}
}

// Observers returns the number of registered observers
func (t *InvalidationTracker) Observers() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.observers)
}

// Done is closed when the tracker's store is closed
func (t *InvalidationTracker) Done() <-chan struct{} {
	return t.done
}

// Close ends every live query bound to this tracker
func (t *InvalidationTracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return
	}
	t.closed = true
	close(t.done)
}

// Register hooks the tracker into db so that committed creates, updates and
// deletes notify observers of the written table
func (t *InvalidationTracker) Register(db *gorm.DB) error {
	notify := func(tx *gorm.DB) {
		if tx.Error != nil || tx.Statement.Table == "" {
			return
		}
		t.Notify(tx.Statement.Table)
	}

	cb := db.Callback()
	if err := cb.Create().After("gorm:commit_or_rollback_transaction").Register(invalidationCallback, notify); err != nil {
		return err
	}
	if err := cb.Update().After("gorm:commit_or_rollback_transaction").Register(invalidationCallback, notify); err != nil {
		return err
	}
	return cb.Delete().After("gorm:commit_or_rollback_transaction").Register(invalidationCallback, notify)
}

// LiveQuery turns query into a live.Source: the query runs immediately and
// again after every change to table, until ctx is done or the store closes.
func LiveQuery[T any](tracker *InvalidationTracker, table string, query func(ctx context.Context) (T, error)) live.Source[T] {
	return func(ctx context.Context, emit func(T)) error {
		changes, stop := tracker.Observe(table)
		defer stop()

		for {
			select {
			case <-tracker.Done():
				return errs.ErrStoreClosed
			default:
			}

			result, err := query(ctx)
			if err != nil {
				return err
			}
			emit(result)

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tracker.Done():
				return errs.ErrStoreClosed
			case <-changes:
			}
		}
	}
}
