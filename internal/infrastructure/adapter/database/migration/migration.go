package migration

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/model"
)

// SchemaVersion is the schema tag this build expects. A store built with any
// other tag is discarded and rebuilt empty.
const SchemaVersion = 5

// MigrationManager checks the schema tag of a store and (re)builds its tables
type MigrationManager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	indexes      *IndexManager
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		indexes:      NewIndexManager(db, logger),
	}
}

// Migrate brings the store to SchemaVersion. A fresh store gets the schema
// created; a store with a different tag, or with tables but no tag, loses
// all its data and is rebuilt.
func (m *MigrationManager) Migrate(ctx context.Context) error {
	db := m.db.WithContext(ctx)
	migrator := db.Migrator()

	current, err := m.CurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	if current == SchemaVersion && m.tablesExist(migrator) {
		m.logger.Debug("Store schema is current", map[string]any{"version": current})
		return nil
	}

	if current != 0 || m.anyTableExists(migrator) {
		m.logger.Warn("Store schema mismatch, discarding existing data", map[string]any{
			"found_version":    current,
			"expected_version": SchemaVersion,
		})
		if err := m.DropAll(ctx); err != nil {
			return err
		}
	}

	if err := db.AutoMigrate(model.AllModels()...); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if err := m.indexes.CreateIndexes(); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	if err := m.setVersion(ctx, SchemaVersion, "Created schema"); err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}

	m.logger.Info("Store schema created", map[string]any{"version": SchemaVersion})
	return nil
}

// DropAll drops every table the store owns
func (m *MigrationManager) DropAll(ctx context.Context) error {
	if err := m.db.WithContext(ctx).Migrator().DropTable(model.AllModels()...); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	return nil
}

// CurrentVersion returns the recorded schema tag, or 0 when none is recorded
func (m *MigrationManager) CurrentVersion(ctx context.Context) (int, error) {
	if ctx.Err() != nil {
		return 0, ctx.Err()
	}

	db := m.db.WithContext(ctx)
	if !db.Migrator().HasTable(&model.SchemaVersion{}) {
		return 0, nil
	}

	var version model.SchemaVersion
	if err := db.Order("id desc").First(&version).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return version.Version, nil
}

func (m *MigrationManager) setVersion(ctx context.Context, version int, details string) error {
	return m.db.WithContext(ctx).Create(&model.SchemaVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}).Error
}

func (m *MigrationManager) tablesExist(migrator gorm.Migrator) bool {
	for _, table := range model.AllModels() {
		if !migrator.HasTable(table) {
			return false
		}
	}
	return true
}

func (m *MigrationManager) anyTableExists(migrator gorm.Migrator) bool {
	for _, table := range model.AllModels() {
		if migrator.HasTable(table) {
			return true
		}
	}
	return false
}
