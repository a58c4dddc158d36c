package database

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"sync"

	coreport "github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/database/migration"
)

// StoreBuilder wraps an open, migrated connection into a store. The store
// owns the connection and closes it in Close.
type StoreBuilder func(conn *Connection) persistence.Store

// Manager owns the process-wide store. The store is opened lazily on first
// use and every caller shares the same instance.
type Manager struct {
	config       *Config
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	build        StoreBuilder

	mu    sync.Mutex
	store persistence.Store
	conn  *Connection
}

var _ persistence.StoreProvider = (*Manager)(nil)

// NewManager creates a new database manager
func NewManager(config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider, build StoreBuilder) *Manager {
	return &Manager{
		config:       config,
		logger:       logger,
		timeProvider: timeProvider,
		build:        build,
	}
}

// Get returns the store, opening and migrating it on first use
func (m *Manager) Get(ctx context.Context) (persistence.Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.getLocked(ctx)
}

// ClearAndRecreate discards the store and its data and opens a fresh empty
// one. Failures while tearing down are logged and ignored; only a failure to
// open the new store is returned.
func (m *Manager) ClearAndRecreate(ctx context.Context) (persistence.Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Warn("Clearing and recreating store", map[string]any{
		"driver": m.config.Driver,
	})

	if m.config.Driver == DriverPostgres {
		m.dropTablesLocked(ctx)
	}

	m.closeLocked()

	if m.config.Driver == DriverSQLite {
		m.deleteStoreFiles()
	}

	return m.getLocked(ctx)
}

// Close closes the store if it is open
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.store == nil {
		return nil
	}

	err := m.store.Close()
	m.store = nil
	m.conn = nil
	return err
}

// Config returns the configuration the manager opens stores with
func (m *Manager) Config() *Config {
	return m.config
}

func (m *Manager) getLocked(ctx context.Context) (persistence.Store, error) {
	if m.store != nil {
		return m.store, nil
	}

	conn, err := Connect(ctx, m.config, m.logger, m.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := migration.NewMigrationManager(conn.DB, m.logger, m.timeProvider).Migrate(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}

	m.conn = conn
	m.store = m.build(conn)
	return m.store, nil
}

func (m *Manager) closeLocked() {
	if m.store == nil {
		return
	}

	if err := m.store.Close(); err != nil {
		m.logger.Debug("Ignoring store close failure", map[string]any{"error": err.Error()})
	}
	m.store = nil
	m.conn = nil
}

// dropTablesLocked empties a shared server database, which has no files to
// delete
func (m *Manager) dropTablesLocked(ctx context.Context) {
	conn := m.conn
	if conn == nil {
		var err error
		conn, err = Connect(ctx, m.config, m.logger, m.timeProvider)
		if err != nil {
			m.logger.Debug("Ignoring connect failure before drop", map[string]any{"error": err.Error()})
			return
		}
		defer conn.Close()
	}

	if err := migration.NewMigrationManager(conn.DB, m.logger, m.timeProvider).DropAll(ctx); err != nil {
		m.logger.Debug("Ignoring drop failure", map[string]any{"error": err.Error()})
	}
}

func (m *Manager) deleteStoreFiles() {
	for _, path := range m.config.StoreFiles() {
		err := os.Remove(path)
		switch {
		case err == nil:
			m.logger.Debug("Deleted store file", map[string]any{"path": path})
		case errors.Is(err, fs.ErrNotExist):
		default:
			m.logger.Debug("Ignoring store file delete failure", map[string]any{
				"path":  path,
				"error": err.Error(),
			})
		}
	}
}
