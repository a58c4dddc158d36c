package repository

import (
	coreport "github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/database"
)

// Store bundles the query objects of one open connection
type Store struct {
	conn         *database.Connection
	transactions *TransactionRepository
	events       *EventRepository
}

var _ persistence.Store = (*Store)(nil)

// NewStore creates the query objects over conn
func NewStore(conn *database.Connection, logger coreport.Logger, timeProvider coreport.TimeProvider) *Store {
	return &Store{
		conn:         conn,
		transactions: NewTransactionRepository(conn, logger, timeProvider),
		events:       NewEventRepository(conn, logger),
	}
}

// Builder returns a database.StoreBuilder producing Stores
func Builder(logger coreport.Logger, timeProvider coreport.TimeProvider) database.StoreBuilder {
	return func(conn *database.Connection) persistence.Store {
		return NewStore(conn, logger, timeProvider)
	}
}

// Transactions returns the transaction queries
func (s *Store) Transactions() persistence.TransactionRepository {
	return s.transactions
}

// Events returns the event queries
func (s *Store) Events() persistence.EventRepository {
	return s.events
}

// Close closes the underlying connection
func (s *Store) Close() error {
	return s.conn.Close()
}
