package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/database"
)

func TestLoadConfigFrom_Defaults(t *testing.T) {
	cfg, err := LoadConfigFrom(Test, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Zero(t, cfg.Server.WriteTimeout)
	assert.Equal(t, database.DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, database.DefaultFileName, cfg.Store.FileName)
	assert.Equal(t, []string{database.LegacyFileName}, cfg.Store.LegacyNames)
	assert.Equal(t, 5*time.Second, cfg.Store.QueryTimeout)
	assert.Equal(t, 200*time.Millisecond, cfg.Store.SlowThreshold)
	assert.Equal(t, 5000*time.Millisecond, cfg.View.StopTimeout)
	assert.Equal(t, 256, cfg.View.QueueCapacity)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFrom_FileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
server:
  port: 9000
store:
  dataDir: /var/lib/wallet
  queryTimeout: 3
view:
  stopTimeoutMs: 1500
logger:
  level: warn
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "staging.yaml"), yaml, 0o600))

	t.Setenv("WALLET_SERVER_PORT", "9100")
	t.Setenv("WALLET_VIEW_STOPTIMEOUTMS", "2500")

	cfg, err := LoadConfigFrom("staging", dir)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port, "environment wins over the file")
	assert.Equal(t, "/var/lib/wallet", cfg.Store.DataDir)
	assert.Equal(t, 3*time.Second, cfg.Store.QueryTimeout)
	assert.Equal(t, 2500*time.Millisecond, cfg.View.StopTimeout)
	assert.Equal(t, "warn", cfg.Logger.Level)

	assert.Error(t, cfg.Validate(), "staging is not a known environment")
}

func TestLoadConfigFrom_RejectsDurationWithUnit(t *testing.T) {
	t.Setenv("WALLET_STORE_QUERYTIMEOUT", "5s")

	_, err := LoadConfigFrom(Test, t.TempDir())
	assert.Error(t, err)
}

func TestConfig_DatabaseConfig(t *testing.T) {
	cfg, err := LoadConfigFrom(Test, t.TempDir())
	require.NoError(t, err)
	cfg.Store.DataDir = t.TempDir()

	dbConfig := cfg.DatabaseConfig()

	assert.Equal(t, cfg.Store.Driver, dbConfig.Driver)
	assert.Equal(t, filepath.Join(cfg.Store.DataDir, database.DefaultFileName), dbConfig.Path())
	assert.Equal(t, cfg.Store.QueryTimeout, dbConfig.QueryTimeout)
	assert.Equal(t, cfg.Store.RetryAttempts, dbConfig.RetryAttempts)
	assert.NoError(t, dbConfig.Validate())
}

func TestConfig_DatabaseConfigFromEnvironment(t *testing.T) {
	t.Setenv("WALLET_STORE_DRIVER", database.DriverPostgres)
	t.Setenv("WALLET_STORE_HOST", "db.internal")
	t.Setenv("WALLET_STORE_PORT", "6543")
	t.Setenv("WALLET_STORE_USERNAME", "wallet")
	t.Setenv("WALLET_STORE_DATABASE", "pocket")
	t.Setenv("WALLET_STORE_QUERYTIMEOUT", "9")

	cfg, err := LoadConfigFrom(Test, t.TempDir())
	require.NoError(t, err)

	dbConfig := cfg.DatabaseConfig()
	assert.Equal(t, database.DriverPostgres, dbConfig.Driver)
	assert.Equal(t, "db.internal", dbConfig.Host)
	assert.Equal(t, 6543, dbConfig.Port)
	assert.Equal(t, "wallet", dbConfig.Username)
	assert.Equal(t, "pocket", dbConfig.Database)
	assert.Equal(t, 9*time.Second, dbConfig.QueryTimeout)
	assert.NoError(t, dbConfig.Validate())
}

func TestConfig_Validate(t *testing.T) {
	cfg, err := LoadConfigFrom(Test, t.TempDir())
	require.NoError(t, err)

	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())

	cfg.Server.Port = 8080
	cfg.Store.Driver = "mysql"
	assert.Error(t, cfg.Validate())

	cfg.Store.Driver = database.DriverPostgres
	cfg.Store.Host = "localhost"
	cfg.Store.Username = "wallet"
	cfg.Store.Database = "wallet"
	assert.NoError(t, cfg.Validate())
}

func TestDevelopmentConfigFile(t *testing.T) {
	cfg, err := LoadConfigFrom(Development, filepath.Join("..", "..", "..", "configs"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, 60*time.Second, cfg.Store.MonitorInterval)
	assert.NoError(t, cfg.Validate())
}
