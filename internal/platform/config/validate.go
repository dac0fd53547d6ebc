package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// problems collects every validation failure so one run reports them all.
type problems []error

func (p *problems) addf(format string, args ...any) {
	*p = append(*p, fmt.Errorf(format, args...))
}

func (p *problems) positive(key string, d time.Duration) {
	if d <= 0 {
		p.addf("%s must be positive, got %s", key, d)
	}
}

// Validate checks every section and joins the failures.
func (c *Config) Validate() error {
	var p problems
	c.Server.check(&p)
	c.Log.check(&p)
	c.Session.check(&p)
	c.RateLimit.check(&p)
	c.Telemetry.check(&p)
	return errors.Join(p...)
}

func (s *ServerConfig) check(p *problems) {
	if s.Port < 1 || s.Port > 65535 {
		p.addf("server.port must be between 1 and 65535, got %d", s.Port)
	}
	p.positive("server.read_timeout", s.ReadTimeout)
	p.positive("server.write_timeout", s.WriteTimeout)
	p.positive("server.request_timeout", s.RequestTimeout)
	p.positive("server.shutdown_timeout", s.ShutdownTimeout)
	if s.IdleTimeout < 0 {
		p.addf("server.idle_timeout must not be negative, got %s", s.IdleTimeout)
	}
}

func (l *LogConfig) check(p *problems) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		p.addf("log.level must be debug, info, warn or error; got %q", l.Level)
	}
	if l.Format != "json" && l.Format != "text" {
		p.addf("log.format must be json or text; got %q", l.Format)
	}
}

func (s *SessionConfig) check(p *problems) {
	probe := http.Cookie{Name: s.CookieName, Value: "x"}
	if err := probe.Valid(); err != nil {
		p.addf("session.cookie_name %q is not a valid cookie name", s.CookieName)
	}
	p.positive("session.max_age", s.MaxAge)

	switch s.Store {
	case StoreMemory:
	case StoreSQLite:
		if s.SQLitePath == "" {
			p.addf("session.sqlite_path must be set when store is sqlite")
		}
	default:
		p.addf("session.store must be memory or sqlite; got %q", s.Store)
	}

	if s.CleanupInterval < 0 {
		p.addf("session.cleanup_interval must not be negative, got %s", s.CleanupInterval)
	}

	cb := s.CircuitBreaker
	if cb.MaxFailures < 1 {
		p.addf("session.circuit_breaker.max_failures must be at least 1, got %d", cb.MaxFailures)
	}
	p.positive("session.circuit_breaker.timeout", cb.Timeout)
	if cb.HalfOpenLimit < 1 {
		p.addf("session.circuit_breaker.half_open_limit must be at least 1, got %d", cb.HalfOpenLimit)
	}
}

func (r *RateLimitConfig) check(p *problems) {
	switch {
	case r.RequestsPerSecond < 0:
		p.addf("rate_limit.requests_per_second must not be negative, got %g", r.RequestsPerSecond)
	case r.RequestsPerSecond > 0 && r.Burst < 1:
		p.addf("rate_limit.burst must be at least 1 when limiting is on, got %d", r.Burst)
	}
}

func (t *TelemetryConfig) check(p *problems) {
	if !t.Enabled {
		return
	}
	switch t.Exporter {
	case "stdout":
	case "otlp":
		if t.Endpoint == "" {
			p.addf("telemetry.endpoint must be set when exporter is otlp")
		}
	default:
		p.addf("telemetry.exporter must be stdout or otlp; got %q", t.Exporter)
	}
	if t.ServiceName == "" {
		p.addf("telemetry.service_name must be set when telemetry is enabled")
	}
}
