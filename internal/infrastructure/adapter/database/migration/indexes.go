package migration

import (
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/core"
)

// orderingIndexes back the newest-first listings. Both statements are valid
// on SQLite and PostgreSQL.
var orderingIndexes = []struct {
	name string
	sql  string
}{
	{
		name: "idx_transactions_timestamp_id",
		sql:  `CREATE INDEX IF NOT EXISTS idx_transactions_timestamp_id ON transactions (timestamp DESC, id DESC)`,
	},
	{
		name: "idx_events_timestamp_id",
		sql:  `CREATE INDEX IF NOT EXISTS idx_events_timestamp_id ON events (timestamp DESC, id DESC)`,
	},
}

// IndexManager creates the secondary indexes of the store
type IndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewIndexManager creates a new index manager
func NewIndexManager(db *gorm.DB, logger coreport.Logger) *IndexManager {
	return &IndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateIndexes creates every ordering index that does not exist yet
func (m *IndexManager) CreateIndexes() error {
	for _, idx := range orderingIndexes {
		if err := m.db.Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Debug("Store indexes ready", map[string]any{"count": len(orderingIndexes)})
	return nil
}
