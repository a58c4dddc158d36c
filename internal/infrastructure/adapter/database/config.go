package database

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"
)

// Supported drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Store file names
const (
	DefaultFileName = "phonepe.db"
	LegacyFileName  = "phonepe_v5.db"
)

// sqliteSidecars are the suffixes of files SQLite keeps next to the database
var sqliteSidecars = []string{"-wal", "-shm", "-journal"}

// Config represents database configuration
type Config struct {
	Driver string

	// SQLite
	DataDir     string
	FileName    string
	LegacyNames []string

	// Postgres
	Host     string
	Port     int
	Username string
	Password string
	Database string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	QueryTimeout    time.Duration
	SlowThreshold   time.Duration
	MonitorInterval time.Duration
	LogLevel        string
	RetryAttempts   int
	RetryDelay      time.Duration
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverSQLite:
		if c.FileName == "" {
			return errors.New("database file name is required")
		}
		if filepath.Base(c.FileName) != c.FileName {
			return fmt.Errorf("database file name must not contain a directory: %s", c.FileName)
		}
	case DriverPostgres:
		if c.Host == "" {
			return errors.New("database host is required")
		}
		if c.Port <= 0 || c.Port > 65535 {
			return fmt.Errorf("invalid port number: %d", c.Port)
		}
		if c.Username == "" {
			return errors.New("database username is required")
		}
		if c.Database == "" {
			return errors.New("database name is required")
		}

		validSSLModes := map[string]bool{
			"disable":     true,
			"require":     true,
			"verify-ca":   true,
			"verify-full": true,
			"prefer":      true,
		}
		if !validSSLModes[c.SSLMode] {
			return fmt.Errorf("invalid SSL mode: %s", c.SSLMode)
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Driver)
	}

	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("max open connections must be positive, got: %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns < 0 {
		return fmt.Errorf("max idle connections must be non-negative, got: %d", c.MaxIdleConns)
	}
	if c.QueryTimeout <= 0 {
		return errors.New("query timeout must be positive")
	}
	if c.RetryAttempts < 1 {
		return fmt.Errorf("retry attempts must be at least 1, got: %d", c.RetryAttempts)
	}

	validLogLevels := map[string]bool{
		"silent": true,
		"debug":  true,
		"info":   true,
		"warn":   true,
		"error":  true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	return nil
}

// Path returns the canonical SQLite database file path
func (c *Config) Path() string {
	return filepath.Join(c.DataDir, c.FileName)
}

// StoreFiles lists every file that may hold store data: the canonical file,
// the legacy names and their SQLite sidecars
func (c *Config) StoreFiles() []string {
	names := append([]string{c.FileName}, c.LegacyNames...)

	files := make([]string, 0, len(names)*(1+len(sqliteSidecars)))
	for _, name := range names {
		base := filepath.Join(c.DataDir, name)
		files = append(files, base)
		for _, suffix := range sqliteSidecars {
			files = append(files, base+suffix)
		}
	}
	return files
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	if c.Driver == DriverSQLite {
		return c.Path() + "?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on"
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
	)
}
