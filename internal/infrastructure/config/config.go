package config

import (
	"time"

	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/database"
)

// Config holds all configuration for the application
type Config struct {
	Environment string       `mapstructure:"environment"`
	Server      ServerConfig `mapstructure:"server"`
	Store       StoreConfig  `mapstructure:"store"`
	View        ViewConfig   `mapstructure:"view"`
	Logger      LoggerConfig `mapstructure:"logger"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds; 0 keeps streams open
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// StoreConfig contains record store settings
type StoreConfig struct {
	Driver          string        `mapstructure:"driver"`
	DataDir         string        `mapstructure:"dataDir"`
	FileName        string        `mapstructure:"fileName"`
	LegacyNames     []string      `mapstructure:"legacyNames"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	SlowThreshold   time.Duration `mapstructure:"slowThreshold"`   // milliseconds
	MonitorInterval time.Duration `mapstructure:"monitorInterval"` // seconds; 0 disables
	LogLevel        string        `mapstructure:"logLevel"`
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// ViewConfig contains view-state settings
type ViewConfig struct {
	StopTimeout   time.Duration `mapstructure:"stopTimeoutMs"` // milliseconds
	ReadTimeout   time.Duration `mapstructure:"readTimeout"`   // seconds
	QueueCapacity int           `mapstructure:"queueCapacity"`
	TaskTimeout   time.Duration `mapstructure:"taskTimeout"` // seconds; 0 leaves writes unbounded
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level string `mapstructure:"level"`
}

// IsProduction reports whether the production environment is selected
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

// DatabaseConfig builds the store connection settings
func (c *Config) DatabaseConfig() *database.Config {
	s := c.Store
	return &database.Config{
		Driver:          s.Driver,
		DataDir:         s.DataDir,
		FileName:        s.FileName,
		LegacyNames:     s.LegacyNames,
		Host:            s.Host,
		Port:            s.Port,
		Username:        s.Username,
		Password:        s.Password,
		Database:        s.Database,
		SSLMode:         s.SSLMode,
		MaxOpenConns:    s.MaxOpenConns,
		MaxIdleConns:    s.MaxIdleConns,
		ConnMaxLifetime: s.ConnMaxLifetime,
		QueryTimeout:    s.QueryTimeout,
		SlowThreshold:   s.SlowThreshold,
		MonitorInterval: s.MonitorInterval,
		LogLevel:        s.LogLevel,
		RetryAttempts:   s.RetryAttempts,
		RetryDelay:      s.RetryDelay,
	}
}
