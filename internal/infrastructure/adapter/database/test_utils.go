package database

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/database/migration"
	timeprovider "github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/time"
)

// NewTestConfig returns a store configuration for tests. SQLite files go to
// dir; setting TEST_DB_DRIVER=postgres points the tests at a server instead.
func NewTestConfig(dir string) *Config {
	config := &Config{
		Driver:          getEnvOrDefault("TEST_DB_DRIVER", DriverSQLite),
		DataDir:         dir,
		FileName:        DefaultFileName,
		LegacyNames:     []string{LegacyFileName},
		Host:            getEnvOrDefault("TEST_DB_HOST", "localhost"),
		Port:            getEnvIntOrDefault("TEST_DB_PORT", 5432),
		Username:        getEnvOrDefault("TEST_DB_USERNAME", "postgres"),
		Password:        getEnvOrDefault("TEST_DB_PASSWORD", "postgres"),
		Database:        getEnvOrDefault("TEST_DB_DATABASE", "pocket_wallet_test"),
		SSLMode:         getEnvOrDefault("TEST_DB_SSL_MODE", "disable"),
		MaxOpenConns:    4,
		MaxIdleConns:    2,
		ConnMaxLifetime: 5 * time.Minute,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "silent",
		RetryAttempts:   1,
		RetryDelay:      10 * time.Millisecond,
	}
	return config
}

// NewTestConnection opens and migrates a fresh store in a temporary
// directory. The connection is closed when the test ends.
func NewTestConnection(t *testing.T, logger coreport.Logger) *Connection {
	t.Helper()

	config := NewTestConfig(t.TempDir())
	timeProvider := timeprovider.NewRealTimeProvider()

	conn, err := Connect(context.Background(), config, logger, timeProvider)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	migrations := migration.NewMigrationManager(conn.DB, logger, timeProvider)
	if config.Driver == DriverPostgres {
		if err := migrations.DropAll(context.Background()); err != nil {
			t.Fatalf("Failed to reset test database: %v", err)
		}
	}
	if err := migrations.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if err := conn.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	return conn
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
