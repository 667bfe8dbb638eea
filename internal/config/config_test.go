package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"PORT", "STATIC_PATH", "CORS_ORIGIN", "STORAGE_DRIVER", "DB_PATH", "DATABASE_URL",
	"DB_MIGRATE", "LOG_LEVEL", "LOG_FORMAT", "METRICS_ENABLED", "CONFIG_FILE",
}

// clearEnv isolates a test from the caller's environment and any .env file.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Precedence(t *testing.T) {
	clearEnv(t)

	path := writeFile(t, `
port: 9000
storage:
  driver: postgres
  database_url: postgres://file/db
log:
  level: debug
categories: [Rent, Other]
`)
	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port, "file overrides default")
	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "postgres://env/db", cfg.Storage.DatabaseURL, "env overrides file")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format, "unset keys keep defaults")
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, []string{"Rent", "Other"}, cfg.Categories)
}

func TestLoad_ConfigFileFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", writeFile(t, "static_path: /srv/www\n"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/srv/www", cfg.StaticPath)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.WriteFile(".env", []byte("LOG_FORMAT=json\n"), 0o600))
	// godotenv does not override variables that are already set, even empty ones.
	require.NoError(t, os.Unsetenv("LOG_FORMAT"))
	t.Cleanup(func() { _ = os.Unsetenv("LOG_FORMAT") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		file string
	}{
		{name: "bad port", env: map[string]string{"PORT": "eighty"}},
		{name: "bad bool", env: map[string]string{"METRICS_ENABLED": "maybe"}},
		{name: "bad yaml", file: "port: [1, 2"},
		{name: "missing file", env: map[string]string{"CONFIG_FILE": "/does/not/exist.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.file != "" {
				path = writeFile(t, tt.file)
			}

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "port zero", mutate: func(c *Config) { c.Port = 0 }, wantErr: "out of range"},
		{name: "unknown driver", mutate: func(c *Config) { c.Storage.Driver = "mongo" }, wantErr: `unknown storage driver "mongo"`},
		{name: "postgres without url", mutate: func(c *Config) { c.Storage.Driver = DriverPostgres }, wantErr: "DATABASE_URL is required"},
		{name: "sqlite without path", mutate: func(c *Config) { c.Storage.DBPath = "" }, wantErr: "DB_PATH is required"},
		{name: "bad log format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: "unknown log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
