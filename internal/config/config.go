// Package config provides configuration management for the ledger server.
// Values come from built-in defaults, an optional YAML file, and environment
// variables (a .env file in the working directory is loaded first), in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config represents the server configuration.
type Config struct {
	Port       int           `yaml:"port"`
	StaticPath string        `yaml:"static_path"`
	CORSOrigin string        `yaml:"cors_origin"`
	Storage    StorageConfig `yaml:"storage"`
	Log        LogConfig     `yaml:"log"`
	Metrics    MetricsConfig `yaml:"metrics"`
	Categories []string      `yaml:"categories"`
}

// StorageConfig selects and configures the expense store.
type StorageConfig struct {
	Driver      string `yaml:"driver"`
	DBPath      string `yaml:"db_path"`
	DatabaseURL string `yaml:"database_url"`
	// Migrate applies the embedded Postgres migrations at startup.
	Migrate bool `yaml:"migrate"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Port:       8080,
		StaticPath: "./static",
		CORSOrigin: "*",
		Storage: StorageConfig{
			Driver:  DriverSQLite,
			DBPath:  "./data/expenses.db",
			Migrate: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{Enabled: true},
		Categories: []string{"Food", "Travel", "Utilities", "Entertainment", "Other"},
	}
}

// Load builds the configuration. path names a YAML file; when empty,
// CONFIG_FILE is consulted, and when that is unset no file is read.
func Load(path string) (*Config, error) {
	// Try to load .env from current directory (ignore error if not found)
	_ = godotenv.Load()

	cfg := Default()

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT: %w", err)
		}
		c.Port = port
	}

	c.StaticPath = getEnvOrDefault("STATIC_PATH", c.StaticPath)
	c.CORSOrigin = getEnvOrDefault("CORS_ORIGIN", c.CORSOrigin)
	c.Storage.Driver = strings.ToLower(getEnvOrDefault("STORAGE_DRIVER", c.Storage.Driver))
	c.Storage.DBPath = getEnvOrDefault("DB_PATH", c.Storage.DBPath)
	c.Storage.DatabaseURL = getEnvOrDefault("DATABASE_URL", c.Storage.DatabaseURL)
	c.Log.Level = getEnvOrDefault("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnvOrDefault("LOG_FORMAT", c.Log.Format)

	var err error
	if c.Storage.Migrate, err = parseBoolEnv("DB_MIGRATE", c.Storage.Migrate); err != nil {
		return err
	}
	if c.Metrics.Enabled, err = parseBoolEnv("METRICS_ENABLED", c.Metrics.Enabled); err != nil {
		return err
	}
	return nil
}

// Validate checks that the configuration can start a server.
func (c *Config) Validate() error {
	var errs []error

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}

	switch c.Storage.Driver {
	case DriverSQLite:
		if c.Storage.DBPath == "" {
			errs = append(errs, errors.New("DB_PATH is required for the sqlite driver"))
		}
	case DriverPostgres:
		if c.Storage.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required for the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage driver %q", c.Storage.Driver))
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}

	return errors.Join(errs...)
}

// getEnvOrDefault returns the value of the environment variable or a default value if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
