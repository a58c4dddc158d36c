package database

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/time"
)

// connStore is a minimal store exposing its connection to the tests
type connStore struct {
	persistence.Store
	conn *Connection
}

func (s *connStore) Close() error { return s.conn.Close() }

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	config := NewTestConfig(t.TempDir())
	if config.Driver != DriverSQLite {
		t.Skip("manager file tests need the sqlite driver")
	}

	m := NewManager(config, logger.NewNoopLogger(), timeprovider.NewRealTimeProvider(), func(conn *Connection) persistence.Store {
		return &connStore{conn: conn}
	})
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func storeConn(t *testing.T, s persistence.Store) *Connection {
	t.Helper()
	cs, ok := s.(*connStore)
	require.True(t, ok)
	return cs.conn
}

func TestManager_Get(t *testing.T) {
	t.Run("Returns the same instance", func(t *testing.T) {
		m := newTestManager(t)

		first, err := m.Get(context.Background())
		require.NoError(t, err)
		second, err := m.Get(context.Background())
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.FileExists(t, m.Config().Path())
	})

	t.Run("Concurrent first callers share one instance", func(t *testing.T) {
		m := newTestManager(t)

		const callers = 8
		stores := make([]persistence.Store, callers)
		var wg sync.WaitGroup
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				s, err := m.Get(context.Background())
				assert.NoError(t, err)
				stores[i] = s
			}(i)
		}
		wg.Wait()

		for _, s := range stores[1:] {
			assert.Same(t, stores[0], s)
		}
	})

	t.Run("Creates schema with current version", func(t *testing.T) {
		m := newTestManager(t)

		s, err := m.Get(context.Background())
		require.NoError(t, err)

		conn := storeConn(t, s)
		version, err := migration.NewMigrationManager(conn.DB, logger.NewNoopLogger(), timeprovider.NewRealTimeProvider()).
			CurrentVersion(context.Background())
		require.NoError(t, err)
		assert.Equal(t, migration.SchemaVersion, version)
	})

	t.Run("Invalid configuration fails", func(t *testing.T) {
		m := newTestManager(t)
		invalid := *m.config
		invalid.QueryTimeout = 0
		m.config = &invalid

		_, err := m.Get(context.Background())
		assert.ErrorContains(t, err, "invalid database configuration")
	})
}

func TestManager_ClearAndRecreate(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	old, err := m.Get(ctx)
	require.NoError(t, err)
	oldConn := storeConn(t, old)
	require.NoError(t, oldConn.DB.Create(&model.Event{Type: "visit", Route: "home", Timestamp: 1}).Error)

	legacy := filepath.Join(m.Config().DataDir, LegacyFileName)
	require.NoError(t, os.WriteFile(legacy, []byte("stale"), 0o600))

	fresh, err := m.ClearAndRecreate(ctx)
	require.NoError(t, err)

	assert.NotSame(t, old, fresh)
	assert.NoFileExists(t, legacy)

	select {
	case <-oldConn.Tracker.Done():
	default:
		t.Fatal("old store was not closed")
	}

	var count int64
	require.NoError(t, storeConn(t, fresh).DB.Model(&model.Event{}).Count(&count).Error)
	assert.Zero(t, count)

	again, err := m.Get(ctx)
	require.NoError(t, err)
	assert.Same(t, fresh, again)
}

func TestManager_ClearAndRecreateWithoutOpenStore(t *testing.T) {
	m := newTestManager(t)

	s, err := m.ClearAndRecreate(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestManager_Close(t *testing.T) {
	m := newTestManager(t)

	assert.NoError(t, m.Close(), "closing an unopened manager is a no-op")

	first, err := m.Get(context.Background())
	require.NoError(t, err)
	require.NoError(t, m.Close())

	second, err := m.Get(context.Background())
	require.NoError(t, err)
	assert.NotSame(t, first, second, "a closed store is reopened")
}
