package config

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/goran-ethernal/ShadowLogs/internal/common"
	"github.com/goran-ethernal/ShadowLogs/internal/logger"
)

const (
	// DriverSQLite selects the SQLite log store backend.
	DriverSQLite = "sqlite"
	// DriverPostgres selects the Postgres log store backend.
	DriverPostgres = "postgres"
)

// Config represents the complete configuration for the shadow log service.
type Config struct {
	// Chain contains the canonical chain data source configuration
	Chain ChainConfig `yaml:"chain" json:"chain" toml:"chain"`

	// DB contains the log store configuration
	DB DatabaseConfig `yaml:"db" json:"db" toml:"db"`

	// Server contains the JSON-RPC server configuration
	Server ServerConfig `yaml:"server" json:"server" toml:"server"`

	// Query contains limits applied to shadow_getLogs requests
	Query QueryConfig `yaml:"query" json:"query" toml:"query"`

	// Logging contains logging configuration
	Logging *LoggingConfig `yaml:"logging,omitempty" json:"logging,omitempty" toml:"logging,omitempty"`

	// Metrics contains Prometheus metrics configuration
	Metrics *MetricsConfig `yaml:"metrics,omitempty" json:"metrics,omitempty" toml:"metrics,omitempty"`
}

// ChainConfig represents the configuration of the canonical chain data source.
type ChainConfig struct {
	// RPCURL is the Ethereum RPC endpoint used to resolve block hashes and tags
	RPCURL string `yaml:"rpc_url" json:"rpc_url" toml:"rpc_url"`

	// Retry contains RPC retry configuration with exponential backoff
	Retry *RetryConfig `yaml:"retry,omitempty" json:"retry,omitempty" toml:"retry,omitempty"`
}

// ApplyDefaults sets default values for optional chain configuration fields.
func (c *ChainConfig) ApplyDefaults() {
	if c.Retry != nil {
		c.Retry.ApplyDefaults()
	}
}

// RetryConfig represents RPC retry configuration with exponential backoff.
type RetryConfig struct {
	// MaxAttempts is the maximum number of attempts (including initial request)
	MaxAttempts int `yaml:"max_attempts" json:"max_attempts" toml:"max_attempts"`

	// InitialBackoff is the initial backoff duration before first retry
	InitialBackoff common.Duration `yaml:"initial_backoff" json:"initial_backoff" toml:"initial_backoff"`

	// MaxBackoff is the maximum backoff duration
	MaxBackoff common.Duration `yaml:"max_backoff" json:"max_backoff" toml:"max_backoff"`

	// BackoffMultiplier is the multiplier for exponential backoff
	BackoffMultiplier float64 `yaml:"backoff_multiplier" json:"backoff_multiplier" toml:"backoff_multiplier"`
}

// ApplyDefaults sets default values for retry configuration.
func (r *RetryConfig) ApplyDefaults() {
	if r.MaxAttempts == 0 {
		r.MaxAttempts = 5
	}
	if r.InitialBackoff.Duration == 0 {
		r.InitialBackoff = common.NewDuration(1 * time.Second)
	}
	if r.MaxBackoff.Duration == 0 {
		r.MaxBackoff = common.NewDuration(30 * time.Second) //nolint:mnd
	}
	if r.BackoffMultiplier == 0 {
		r.BackoffMultiplier = 2.0
	}
}

// DatabaseConfig represents the log store configuration.
type DatabaseConfig struct {
	// Driver selects the backend: "sqlite" (default) or "postgres"
	Driver string `yaml:"driver" json:"driver" toml:"driver"`

	// Path is the file path to the SQLite database
	Path string `yaml:"path" json:"path" toml:"path"`

	// DSN is the Postgres connection string, only used with the postgres driver
	DSN string `yaml:"dsn" json:"dsn" toml:"dsn"`

	// ReadOnly opens the SQLite database in read-only mode
	ReadOnly bool `yaml:"read_only" json:"read_only" toml:"read_only"`

	// JournalMode sets the SQLite journal mode (e.g., "WAL", "DELETE")
	// WAL mode is recommended since the replay pipeline writes concurrently
	JournalMode string `yaml:"journal_mode" json:"journal_mode" toml:"journal_mode"`

	// Synchronous sets the synchronization level ("FULL", "NORMAL", "OFF")
	Synchronous string `yaml:"synchronous" json:"synchronous" toml:"synchronous"`

	// BusyTimeout is the time in milliseconds to wait when the database is locked
	BusyTimeout int `yaml:"busy_timeout" json:"busy_timeout" toml:"busy_timeout"`

	// CacheSize is the size of the page cache (negative = KB, positive = pages)
	CacheSize int `yaml:"cache_size" json:"cache_size" toml:"cache_size"`

	// MaxOpenConnections is the maximum number of open database connections
	MaxOpenConnections int `yaml:"max_open_connections" json:"max_open_connections" toml:"max_open_connections"`

	// MaxIdleConnections is the maximum number of idle connections in the pool
	MaxIdleConnections int `yaml:"max_idle_connections" json:"max_idle_connections" toml:"max_idle_connections"`
}

// ApplyDefaults sets default values for optional database configuration fields.
func (d *DatabaseConfig) ApplyDefaults() {
	if d.Driver == "" {
		d.Driver = DriverSQLite
	}
	if d.JournalMode == "" {
		d.JournalMode = "WAL"
	}
	if d.Synchronous == "" {
		d.Synchronous = "NORMAL"
	}
	if d.BusyTimeout == 0 {
		d.BusyTimeout = 5000
	}
	if d.CacheSize == 0 {
		d.CacheSize = 10000
	}
	if d.MaxOpenConnections == 0 {
		d.MaxOpenConnections = 25
	}
	if d.MaxIdleConnections == 0 {
		d.MaxIdleConnections = 5
	}
}

// Validate checks if the database configuration is valid.
func (d *DatabaseConfig) Validate() error {
	switch d.Driver {
	case DriverSQLite:
		if d.Path == "" {
			return fmt.Errorf("db.path is required for the sqlite driver")
		}
	case DriverPostgres:
		if d.DSN == "" {
			return fmt.Errorf("db.dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("db.driver must be one of: %s, %s", DriverSQLite, DriverPostgres)
	}

	validJournalModes := []string{"WAL", "DELETE", "TRUNCATE", "PERSIST", "MEMORY"}
	if d.JournalMode != "" && !slices.Contains(validJournalModes, d.JournalMode) {
		return fmt.Errorf("db.journal_mode must be one of: %s", strings.Join(validJournalModes, ", "))
	}

	if d.Synchronous != "" && d.Synchronous != "FULL" &&
		d.Synchronous != "NORMAL" && d.Synchronous != "OFF" {
		return fmt.Errorf("db.synchronous must be one of: FULL, NORMAL, OFF")
	}

	return nil
}

// ServerConfig configures the JSON-RPC HTTP server.
type ServerConfig struct {
	// ListenAddress is the address to bind the server to ("host:port" or ":port")
	ListenAddress string `yaml:"listen_address" json:"listen_address" toml:"listen_address"`

	// PathPrefix is the HTTP path on which JSON-RPC requests are served
	PathPrefix string `yaml:"path_prefix" json:"path_prefix" toml:"path_prefix"`

	// ReadTimeout is the maximum duration for reading the entire request
	ReadTimeout common.Duration `yaml:"read_timeout" json:"read_timeout" toml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the response
	WriteTimeout common.Duration `yaml:"write_timeout" json:"write_timeout" toml:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next request
	IdleTimeout common.Duration `yaml:"idle_timeout" json:"idle_timeout" toml:"idle_timeout"`

	// CORS contains cross-origin settings
	CORS CORSConfig `yaml:"cors" json:"cors" toml:"cors"`
}

// CORSConfig configures cross-origin resource sharing.
type CORSConfig struct {
	// Enabled turns on the CORS middleware
	Enabled bool `yaml:"enabled" json:"enabled" toml:"enabled"`

	// AllowedOrigins lists the origins allowed to call the server ("*" allows any)
	AllowedOrigins []string `yaml:"allowed_origins" json:"allowed_origins" toml:"allowed_origins"`
}

// ApplyDefaults sets default values for optional server configuration fields.
func (s *ServerConfig) ApplyDefaults() {
	if s.ListenAddress == "" {
		s.ListenAddress = ":8545"
	}
	if s.PathPrefix == "" {
		s.PathPrefix = "/"
	}
	if s.ReadTimeout.Duration == 0 {
		s.ReadTimeout = common.NewDuration(30 * time.Second) //nolint:mnd
	}
	if s.WriteTimeout.Duration == 0 {
		s.WriteTimeout = common.NewDuration(30 * time.Second) //nolint:mnd
	}
	if s.IdleTimeout.Duration == 0 {
		s.IdleTimeout = common.NewDuration(120 * time.Second) //nolint:mnd
	}
	if s.CORS.Enabled && len(s.CORS.AllowedOrigins) == 0 {
		s.CORS.AllowedOrigins = []string{"*"}
	}
}

// Validate checks if the server configuration is valid.
func (s *ServerConfig) Validate() error {
	if s.ListenAddress == "" {
		return fmt.Errorf("server.listen_address is required")
	}
	if s.PathPrefix != "" && s.PathPrefix[0] != '/' {
		return fmt.Errorf(`server.path_prefix %q does not contain leading "/"`, s.PathPrefix)
	}
	if strings.ContainsAny(s.PathPrefix, "?#") {
		return fmt.Errorf("server.path_prefix %q contains URL meta-characters", s.PathPrefix)
	}
	return nil
}

// QueryConfig bounds the work a single shadow_getLogs request may do.
type QueryConfig struct {
	// Timeout is the maximum duration of the store query for one filter object
	Timeout common.Duration `yaml:"timeout" json:"timeout" toml:"timeout"`

	// MaxConcurrency is the number of filter objects of one request executed in parallel
	MaxConcurrency int `yaml:"max_concurrency" json:"max_concurrency" toml:"max_concurrency"`

	// MaxBlockRange caps to_block - from_block + 1 per filter object (0 = unlimited)
	MaxBlockRange uint64 `yaml:"max_block_range" json:"max_block_range" toml:"max_block_range"`

	// MaxResults caps the number of logs returned per request (0 = unlimited)
	MaxResults int `yaml:"max_results" json:"max_results" toml:"max_results"`
}

// ApplyDefaults sets default values for optional query configuration fields.
func (q *QueryConfig) ApplyDefaults() {
	if q.Timeout.Duration == 0 {
		q.Timeout = common.NewDuration(30 * time.Second) //nolint:mnd
	}
	if q.MaxConcurrency == 0 {
		q.MaxConcurrency = 1
	}
}

// Validate checks if the query configuration is valid.
func (q *QueryConfig) Validate() error {
	if q.Timeout.Duration < 0 {
		return fmt.Errorf("query.timeout must not be negative")
	}
	if q.MaxConcurrency < 0 {
		return fmt.Errorf("query.max_concurrency must not be negative")
	}
	if q.MaxResults < 0 {
		return fmt.Errorf("query.max_results must not be negative")
	}
	return nil
}

// LoggingConfig configures logging behavior with per-component log levels.
type LoggingConfig struct {
	// DefaultLevel is the default log level for all components
	// Options: "debug", "info", "warn", "error"
	DefaultLevel string `yaml:"default_level" json:"default_level" toml:"default_level"`

	// Development enables development mode (stack traces, console encoder)
	Development bool `yaml:"development" json:"development" toml:"development"`

	// ComponentLevels sets log levels for specific components
	// Available components:
	//   - rpc-server: JSON-RPC server
	//   - block-resolver: Block hash/tag/number resolution
	//   - log-query: shadow_getLogs execution
	//   - log-store: Log storage layer
	//   - chain-client: Canonical chain RPC client
	//   - metrics: Metrics server
	ComponentLevels map[string]string `yaml:"component_levels,omitempty" json:"component_levels,omitempty" toml:"component_levels,omitempty"` //nolint:lll
}

// ApplyDefaults sets default values for optional logging configuration fields.
func (l *LoggingConfig) ApplyDefaults() {
	if l.DefaultLevel == "" {
		l.DefaultLevel = "info"
	}
	if l.ComponentLevels == nil {
		l.ComponentLevels = make(map[string]string)
	}
}

// Validate checks if the logging configuration is valid.
func (l *LoggingConfig) Validate() error {
	if l.DefaultLevel != "" {
		if _, valid := logger.ValidLogLevels[common.ToLowerWithTrim(l.DefaultLevel)]; !valid {
			return fmt.Errorf("logging.default_level: must be one of: debug, info, warn, error")
		}
	}

	for component, level := range l.ComponentLevels {
		if _, validComponent := common.AllComponents[common.ToLowerWithTrim(component)]; !validComponent {
			return fmt.Errorf("logging.component_levels: unknown component '%s'", component)
		}

		if _, valid := logger.ValidLogLevels[common.ToLowerWithTrim(level)]; !valid {
			return fmt.Errorf("logging.component_levels[%s]: must be one of: debug, info, warn, error", component)
		}
	}

	return nil
}

// GetComponentLevel returns the log level for a specific component.
// Falls back to DefaultLevel if no component-specific level is set.
func (l *LoggingConfig) GetComponentLevel(component string) string {
	if l == nil {
		return "info"
	}
	if level, ok := l.ComponentLevels[component]; ok {
		return common.ToLowerWithTrim(level)
	}
	return l.GetDefaultLevel()
}

// GetDefaultLevel returns the default log level.
func (l *LoggingConfig) GetDefaultLevel() string {
	if l == nil || l.DefaultLevel == "" {
		return "info"
	}
	return common.ToLowerWithTrim(l.DefaultLevel)
}

// IsDevelopment returns whether development mode is enabled.
func (l *LoggingConfig) IsDevelopment() bool {
	return l != nil && l.Development
}

// MetricsConfig configures Prometheus metrics exposition.
type MetricsConfig struct {
	// Enabled controls whether metrics collection and HTTP endpoint are active
	Enabled bool `yaml:"enabled" json:"enabled" toml:"enabled"`

	// ListenAddress is the address to bind the metrics HTTP server to
	// Format: "host:port" or ":port"
	ListenAddress string `yaml:"listen_address" json:"listen_address" toml:"listen_address"`

	// Path is the HTTP path where metrics are exposed
	Path string `yaml:"path" json:"path" toml:"path"`
}

// ApplyDefaults sets default values for optional metrics configuration fields.
func (m *MetricsConfig) ApplyDefaults() {
	if m.ListenAddress == "" {
		m.ListenAddress = ":9090"
	}
	if m.Path == "" {
		m.Path = "/metrics"
	}
}

// Validate checks if the metrics configuration is valid.
func (m *MetricsConfig) Validate() error {
	if m.Enabled {
		if m.ListenAddress == "" {
			return fmt.Errorf("listen_address is required when metrics are enabled")
		}
		if m.Path == "" {
			return fmt.Errorf("path is required when metrics are enabled")
		}
		if m.Path[0] != '/' {
			return fmt.Errorf("path must start with '/'")
		}
	}
	return nil
}

// ApplyDefaults sets default values for optional configuration fields.
func (c *Config) ApplyDefaults() {
	c.Chain.ApplyDefaults()
	c.DB.ApplyDefaults()
	c.Server.ApplyDefaults()
	c.Query.ApplyDefaults()

	// Logging is always present so component loggers can be built from it
	if c.Logging == nil {
		c.Logging = &LoggingConfig{}
	}
	c.Logging.ApplyDefaults()

	if c.Metrics != nil {
		c.Metrics.ApplyDefaults()
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Chain.RPCURL == "" {
		return fmt.Errorf("chain.rpc_url is required")
	}

	if err := c.DB.Validate(); err != nil {
		return err
	}

	if err := c.Server.Validate(); err != nil {
		return err
	}

	if err := c.Query.Validate(); err != nil {
		return err
	}

	if c.Logging != nil {
		if err := c.Logging.Validate(); err != nil {
			return err
		}
	}

	if c.Metrics != nil {
		if err := c.Metrics.Validate(); err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
	}

	return nil
}
