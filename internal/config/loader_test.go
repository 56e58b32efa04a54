package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goran-ethernal/ShadowLogs/pkg/config"
	"github.com/stretchr/testify/require"
)

func TestLoadFromYAML(t *testing.T) {
	cfg, err := LoadFromYAML("../../config.example.yaml")
	if err != nil {
		t.Fatalf("failed to load YAML config: %v", err)
	}

	validateConfig(t, cfg, "YAML")
}

func TestLoadFromJSON(t *testing.T) {
	cfg, err := LoadFromJSON("../../config.example.json")
	if err != nil {
		t.Fatalf("failed to load JSON config: %v", err)
	}

	validateConfig(t, cfg, "JSON")
}

func TestLoadFromTOML(t *testing.T) {
	cfg, err := LoadFromTOML("../../config.example.toml")
	if err != nil {
		t.Fatalf("failed to load TOML config: %v", err)
	}

	validateConfig(t, cfg, "TOML")
}

func TestLoadFromFile_YAML(t *testing.T) {
	cfg, err := LoadFromFile("../../config.example.yaml")
	if err != nil {
		t.Fatalf("failed to auto-load YAML config: %v", err)
	}

	validateConfig(t, cfg, "auto-detected YAML")
}

func TestLoadFromFile_JSON(t *testing.T) {
	cfg, err := LoadFromFile("../../config.example.json")
	if err != nil {
		t.Fatalf("failed to auto-load JSON config: %v", err)
	}

	validateConfig(t, cfg, "auto-detected JSON")
}

func TestLoadFromFile_TOML(t *testing.T) {
	cfg, err := LoadFromFile("../../config.example.toml")
	if err != nil {
		t.Fatalf("failed to auto-load TOML config: %v", err)
	}

	validateConfig(t, cfg, "auto-detected TOML")
}

func TestLoadFromFile_UnsupportedFormat(t *testing.T) {
	_, err := LoadFromFile("config.txt")
	require.Contains(t, err.Error(), "unsupported config file format")
}

// validateConfig checks that the loaded config has expected values
func validateConfig(t *testing.T, cfg *config.Config, format string) {
	t.Helper()

	require.Equal(t, "http://localhost:8545", cfg.Chain.RPCURL, "[%s] chain.rpc_url", format)
	require.NotNil(t, cfg.Chain.Retry, "[%s] chain.retry should be set", format)
	require.Equal(t, 5, cfg.Chain.Retry.MaxAttempts, "[%s] chain.retry.max_attempts", format)
	require.Equal(t, time.Second, cfg.Chain.Retry.InitialBackoff.Duration, "[%s] chain.retry.initial_backoff", format)

	require.Equal(t, config.DriverSQLite, cfg.DB.Driver, "[%s] db.driver", format)
	require.NotEmpty(t, cfg.DB.Path, "[%s] db.path should not be empty", format)
	require.True(t, cfg.DB.ReadOnly, "[%s] db.read_only", format)

	// Check defaults were applied
	require.NotEmpty(t, cfg.DB.Synchronous, "[%s] db.synchronous should have default value", format)
	require.NotZero(t, cfg.DB.MaxOpenConnections, "[%s] db.max_open_connections should have default value", format)
	require.NotZero(t, cfg.Server.IdleTimeout.Duration, "[%s] server.idle_timeout should have default value", format)

	require.Equal(t, ":8546", cfg.Server.ListenAddress, "[%s] server.listen_address", format)
	require.True(t, cfg.Server.CORS.Enabled, "[%s] server.cors.enabled", format)
	require.Equal(t, []string{"*"}, cfg.Server.CORS.AllowedOrigins, "[%s] server.cors.allowed_origins", format)

	require.Equal(t, 30*time.Second, cfg.Query.Timeout.Duration, "[%s] query.timeout", format)
	require.Equal(t, 4, cfg.Query.MaxConcurrency, "[%s] query.max_concurrency", format)
	require.Equal(t, uint64(10000), cfg.Query.MaxBlockRange, "[%s] query.max_block_range", format)
	require.Equal(t, 10000, cfg.Query.MaxResults, "[%s] query.max_results", format)

	require.NotNil(t, cfg.Logging, "[%s] logging should be set", format)
	require.Equal(t, "debug", cfg.Logging.GetComponentLevel("block-resolver"), "[%s] block-resolver level", format)
	require.Equal(t, "info", cfg.Logging.GetComponentLevel("log-query"), "[%s] log-query level", format)

	require.NotNil(t, cfg.Metrics, "[%s] metrics should be set", format)
	require.True(t, cfg.Metrics.Enabled, "[%s] metrics.enabled", format)
}

func TestLoadFromFile_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	// rpc_url missing
	require.NoError(t, os.WriteFile(path, []byte("db:\n  path: ./shadow.db\n"), 0o600))

	_, err := LoadFromFile(path)
	require.ErrorContains(t, err, "chain.rpc_url is required")
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorContains(t, err, "failed to read config file")
}

func TestLoadFromFile_Minimal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	require.NoError(t, os.WriteFile(path,
		[]byte(`{"chain":{"rpc_url":"http://node:8545"},"db":{"path":"./shadow.db"}}`), 0o600))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	require.Equal(t, config.DriverSQLite, cfg.DB.Driver)
	require.Equal(t, ":8545", cfg.Server.ListenAddress)
	require.Equal(t, "/", cfg.Server.PathPrefix)
	require.Equal(t, 30*time.Second, cfg.Query.Timeout.Duration)
	require.Equal(t, 1, cfg.Query.MaxConcurrency)
	require.Zero(t, cfg.Query.MaxBlockRange)
	require.Nil(t, cfg.Chain.Retry)
	require.Nil(t, cfg.Metrics)
	require.NotNil(t, cfg.Logging)
	require.Equal(t, "info", cfg.Logging.DefaultLevel)
}
