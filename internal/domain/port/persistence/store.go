package persistence

import "context"

// Store is an open record store exposing its query objects
type Store interface {
	Transactions() TransactionRepository
	Events() EventRepository
	Close() error
}

// StoreProvider hands out the process-wide store
type StoreProvider interface {
	// Get returns the open store, opening it on first use. Every call
	// returns the same instance until ClearAndRecreate.
	Get(ctx context.Context) (Store, error)

	// ClearAndRecreate closes the store, deletes its backing data and opens
	// a fresh empty store
	ClearAndRecreate(ctx context.Context) (Store, error)
}
