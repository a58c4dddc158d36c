package usecase

import (
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/entity"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/live"
)

// TransactionHistory exposes the transaction table as observable view state
type TransactionHistory interface {
	// AllTransactions returns the shared cell holding every transaction,
	// newest first. Starts empty.
	AllTransactions() *live.Cell[[]*entity.Transaction]

	// LatestTransaction returns the shared cell holding the newest
	// transaction, nil while there is none
	LatestTransaction() *live.Cell[*entity.Transaction]

	// TransactionByID returns a new cell tracking one transaction, nil while
	// it does not exist
	TransactionByID(id int64) *live.Cell[*entity.Transaction]

	// Insert stores the transaction in the background and returns at once.
	// Failures are logged, not reported.
	Insert(transaction *entity.Transaction)
}

// ActivityLog exposes the audit event table as observable view state
type ActivityLog interface {
	// Events returns the shared cell holding every event, newest first
	Events() *live.Cell[[]*entity.Event]

	// LogEvent records an event stamped with the current time, in the
	// background
	LogEvent(eventType, route string)

	// Clear deletes every event in the background
	Clear()
}
