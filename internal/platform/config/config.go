// Package config loads the todo server's settings from layered YAML files
// and APP_ environment variables, then validates them.
package config

import "time"

// Config is the full server configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Session   SessionConfig   `koanf:"session"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds listener and timeout settings. RequestTimeout bounds a
// single handler; ShutdownTimeout bounds the drain on exit.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	RequestTimeout  time.Duration `koanf:"request_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Session store backends.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// SessionConfig covers the session cookie and where session state lives.
// A zero CleanupInterval turns the expired-session sweeper off.
type SessionConfig struct {
	CookieName      string               `koanf:"cookie_name"`
	MaxAge          time.Duration        `koanf:"max_age"`
	Secure          bool                 `koanf:"secure"`
	Store           string               `koanf:"store"`
	SQLitePath      string               `koanf:"sqlite_path"`
	CleanupInterval time.Duration        `koanf:"cleanup_interval"`
	CircuitBreaker  CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// CircuitBreakerConfig tunes the breaker in front of the session store.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig limits requests per client. Zero RequestsPerSecond turns
// limiting off.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
