package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/database"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override, e.g. WALLET_STORE_DRIVER
const EnvPrefix = "WALLET"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./configs/.env",
	"../.env",
	"../../.env",
}

// LoadConfig loads configuration for the environment named by WALLET_ENV
func LoadConfig() (*Config, error) {
	// A missing .env file is normal outside development
	_ = loadDotEnvFile()

	return LoadConfigFrom(getEnvironment(), ConfigPaths...)
}

// LoadConfigFrom reads <env>.yaml from the first path that has it.
// A missing file leaves the defaults in place; environment variables
// override both.
func LoadConfigFrom(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		rawDurationHook,
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&config, decodeHook); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("could not load %s: %w", path, err)
		}
		return nil
	}
	return errors.New("no .env file found in search paths")
}

// setDefaults sets default values for every setting. Each key needs a
// default so AutomaticEnv can override it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)
	v.SetDefault("server.writeTimeout", 0)
	v.SetDefault("server.idleTimeout", 60)
	v.SetDefault("server.readHeaderTimeout", 10)
	v.SetDefault("server.shutdownTimeout", 10)

	v.SetDefault("store.driver", database.DriverSQLite)
	v.SetDefault("store.dataDir", "data")
	v.SetDefault("store.fileName", database.DefaultFileName)
	v.SetDefault("store.legacyNames", []string{database.LegacyFileName})
	v.SetDefault("store.host", "")
	v.SetDefault("store.port", 5432)
	v.SetDefault("store.username", "")
	v.SetDefault("store.password", "")
	v.SetDefault("store.database", "")
	v.SetDefault("store.sslMode", "disable")
	v.SetDefault("store.maxOpenConns", 4)
	v.SetDefault("store.maxIdleConns", 2)
	v.SetDefault("store.connMaxLifetime", 30)
	v.SetDefault("store.queryTimeout", 5)
	v.SetDefault("store.slowThreshold", 200)
	v.SetDefault("store.monitorInterval", 0)
	v.SetDefault("store.logLevel", "warn")
	v.SetDefault("store.retryAttempts", 3)
	v.SetDefault("store.retryDelay", 1)

	v.SetDefault("view.stopTimeoutMs", 5000)
	v.SetDefault("view.readTimeout", 5)
	v.SetDefault("view.queueCapacity", 256)
	v.SetDefault("view.taskTimeout", 0)

	v.SetDefault("logger.level", "info")
}

// getEnvironment determines the environment from WALLET_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// rawDurationHook passes numeric strings from the environment to duration
// fields as plain numbers; processDurations applies the units
func rawDurationHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(time.Duration(0)) || from.Kind() != reflect.String {
		return data, nil
	}

	n, err := strconv.ParseInt(strings.TrimSpace(data.(string)), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("duration settings take a plain number, got %q", data)
	}
	return n, nil
}

// processDurations converts the raw numbers read for duration fields into
// their units
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Store.ConnMaxLifetime = time.Duration(config.Store.ConnMaxLifetime) * time.Minute
	config.Store.QueryTimeout = time.Duration(config.Store.QueryTimeout) * time.Second
	config.Store.SlowThreshold = time.Duration(config.Store.SlowThreshold) * time.Millisecond
	config.Store.MonitorInterval = time.Duration(config.Store.MonitorInterval) * time.Second
	config.Store.RetryDelay = time.Duration(config.Store.RetryDelay) * time.Second

	config.View.StopTimeout = time.Duration(config.View.StopTimeout) * time.Millisecond
	config.View.ReadTimeout = time.Duration(config.View.ReadTimeout) * time.Second
	config.View.TaskTimeout = time.Duration(config.View.TaskTimeout) * time.Second
}

// Validate checks the settings the store does not validate itself
func (c *Config) Validate() error {
	var missing []string

	if c.Server.Port <= 0 {
		missing = append(missing, "server.port")
	}
	if c.Server.ShutdownTimeout <= 0 {
		missing = append(missing, "server.shutdownTimeout")
	}
	if c.View.StopTimeout < 0 {
		missing = append(missing, "view.stopTimeoutMs")
	}
	if c.View.QueueCapacity <= 0 {
		missing = append(missing, "view.queueCapacity")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing or invalid configurations: %v", missing)
	}

	switch c.Environment {
	case Development, Production, Test:
	default:
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			c.Environment, Development, Production, Test)
	}

	if err := c.DatabaseConfig().Validate(); err != nil {
		return fmt.Errorf("invalid store configuration: %w", err)
	}
	return nil
}
