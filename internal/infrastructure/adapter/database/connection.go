package database

import (
	"context"
	"fmt"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/core"
)

// Connection holds an open database, its configuration and the tracker that
// drives live queries over it
type Connection struct {
	DB      *gorm.DB
	Config  *Config
	Tracker *InvalidationTracker

	monitor *StoreMonitor
	logger  coreport.Logger
}

// Connect opens the database described by config, retrying transient
// failures, and registers the invalidation hooks
func Connect(ctx context.Context, config *Config, logger coreport.Logger, timeProvider coreport.TimeProvider) (*Connection, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	logger.Info("Connecting to database", map[string]any{
		"driver": config.Driver,
		"target": describeTarget(config),
	})

	if config.Driver == DriverSQLite && config.DataDir != "" {
		if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	gormConfig := &gorm.Config{
		Logger:  NewDatabaseLogger(logger, timeProvider, config.LogLevel, config.SlowThreshold),
		NowFunc: timeProvider.Now,
	}

	retry := RetryConfig{
		MaxRetries:    config.RetryAttempts,
		RetryInterval: config.RetryDelay,
		MaxInterval:   4 * config.RetryDelay,
		JitterFactor:  0.2,
	}

	var db *gorm.DB
	err := RetryOnTransientError(ctx, retry, func() error {
		var openErr error
		db, openErr = gorm.Open(dialector(config), gormConfig)
		if openErr != nil {
			return openErr
		}

		sqlDB, openErr := db.DB()
		if openErr != nil {
			return openErr
		}

		pingCtx, cancel := context.WithTimeout(ctx, config.QueryTimeout)
		defer cancel()
		if openErr = sqlDB.PingContext(pingCtx); openErr != nil {
			_ = sqlDB.Close()
		}
		return openErr
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(config.ConnMaxLifetime)

	tracker := NewInvalidationTracker()
	if err := tracker.Register(db); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to register invalidation hooks: %w", err)
	}

	conn := &Connection{
		DB:      db,
		Config:  config,
		Tracker: tracker,
		logger:  logger,
	}

	if config.MonitorInterval > 0 {
		conn.monitor = NewStoreMonitor(conn, logger)
		if err := conn.monitor.Start(config.MonitorInterval); err != nil {
			logger.Warn("Failed to start store monitoring", map[string]any{"error": err.Error()})
			conn.monitor = nil
		}
	}

	logger.Info("Successfully connected to database", map[string]any{
		"driver":         config.Driver,
		"target":         describeTarget(config),
		"max_open_conns": config.MaxOpenConns,
		"query_timeout":  config.QueryTimeout.String(),
	})

	return conn, nil
}

// WithTimeout returns a context bounded by the configured query timeout
func (c *Connection) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.Config.QueryTimeout)
}

// Close ends live queries and closes the database
func (c *Connection) Close() error {
	c.Tracker.Close()

	if c.monitor != nil {
		c.monitor.Stop()
	}

	sqlDB, err := c.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	c.logger.Info("Closing database connection", map[string]any{
		"driver": c.Config.Driver,
	})
	return sqlDB.Close()
}

func dialector(config *Config) gorm.Dialector {
	if config.Driver == DriverPostgres {
		return postgres.Open(config.DSN())
	}
	return sqlite.Open(config.DSN())
}

func describeTarget(config *Config) string {
	if config.Driver == DriverSQLite {
		return config.Path()
	}
	return fmt.Sprintf("%s:%d/%s", config.Host, config.Port, config.Database)
}

// sleepContext waits for d or until ctx is done
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
