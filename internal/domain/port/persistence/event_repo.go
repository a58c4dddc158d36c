package persistence

import (
	"context"

	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/entity"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/live"
)

// EventRepository defines the queries over the audit event table
type EventRepository interface {
	// Insert stores an event, replacing any row with the same id
	Insert(ctx context.Context, event *entity.Event) (int64, error)

	// All streams every event, newest first
	All() live.Source[[]*entity.Event]

	// Clear deletes every event
	Clear(ctx context.Context) error
}
