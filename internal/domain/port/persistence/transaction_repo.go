package persistence

import (
	"context"

	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/entity"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/live"
)

// TransactionRepository defines the queries over the transaction table.
// Records are append-only: there is no update or delete.
type TransactionRepository interface {
	// Insert stores a new transaction and returns its store-assigned id.
	// The row is stored as given; no field validation happens here.
	//
	// Possible errors:
	// - ErrStorage: If the write fails
	// - ErrStoreClosed: If the store was closed
	Insert(ctx context.Context, transaction *entity.Transaction) (int64, error)

	// AllTransactions streams every transaction, newest first, re-emitting
	// after each committed write to the table
	AllTransactions() live.Source[[]*entity.Transaction]

	// TransactionByID streams the transaction with the given id, or nil while
	// no such row exists
	TransactionByID(id int64) live.Source[*entity.Transaction]

	// LatestTransaction streams the newest transaction, or nil when the table
	// is empty
	LatestTransaction() live.Source[*entity.Transaction]
}
