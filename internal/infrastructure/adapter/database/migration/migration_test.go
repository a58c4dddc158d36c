package migration

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/model"
	timeprovider "github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/time"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func newTestMigrationManager(db *gorm.DB) *MigrationManager {
	return NewMigrationManager(db, logger.NewNoopLogger(), timeprovider.NewRealTimeProvider())
}

func TestMigrate_FreshStore(t *testing.T) {
	db := openTestDB(t)
	m := newTestMigrationManager(db)
	ctx := context.Background()

	version, err := m.CurrentVersion(ctx)
	require.NoError(t, err)
	assert.Zero(t, version)

	require.NoError(t, m.Migrate(ctx))

	version, err = m.CurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion, version)

	for _, table := range model.AllModels() {
		assert.True(t, db.Migrator().HasTable(table))
	}
	assert.True(t, db.Migrator().HasIndex(&model.Transaction{}, "idx_transactions_timestamp_id"))
}

func TestMigrate_CurrentStoreKeepsData(t *testing.T) {
	db := openTestDB(t)
	m := newTestMigrationManager(db)
	ctx := context.Background()

	require.NoError(t, m.Migrate(ctx))
	require.NoError(t, db.Create(&model.Event{Type: "visit", Route: "home", Timestamp: 1}).Error)

	require.NoError(t, m.Migrate(ctx))

	var count int64
	require.NoError(t, db.Model(&model.Event{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestMigrate_VersionMismatchDiscardsData(t *testing.T) {
	db := openTestDB(t)
	m := newTestMigrationManager(db)
	ctx := context.Background()

	require.NoError(t, m.Migrate(ctx))
	require.NoError(t, db.Create(&model.Event{Type: "visit", Route: "home", Timestamp: 1}).Error)
	require.NoError(t, db.Create(&model.SchemaVersion{Version: SchemaVersion - 1}).Error)

	require.NoError(t, m.Migrate(ctx))

	var count int64
	require.NoError(t, db.Model(&model.Event{}).Count(&count).Error)
	assert.Zero(t, count)

	version, err := m.CurrentVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion, version)
}

func TestMigrate_UntaggedTablesAreRebuilt(t *testing.T) {
	db := openTestDB(t)
	m := newTestMigrationManager(db)
	ctx := context.Background()

	require.NoError(t, db.Exec("CREATE TABLE events (id INTEGER PRIMARY KEY, legacy TEXT)").Error)

	require.NoError(t, m.Migrate(ctx))

	assert.True(t, db.Migrator().HasColumn(&model.Event{}, "route"))
	assert.False(t, db.Migrator().HasColumn(&model.Event{}, "legacy"))
}

func TestDropAll(t *testing.T) {
	db := openTestDB(t)
	m := newTestMigrationManager(db)
	ctx := context.Background()

	require.NoError(t, m.Migrate(ctx))
	require.NoError(t, m.DropAll(ctx))

	for _, table := range model.AllModels() {
		assert.False(t, db.Migrator().HasTable(table))
	}
}
