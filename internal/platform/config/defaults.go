package config

const (
	defaultServerPort = 8080

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 20.0
	defaultRateLimitBurst = 40
)

// defaults seeds every known key so environment overrides can be matched
// against it.
func defaults() map[string]any {
	return map[string]any{
		"server.host":             "0.0.0.0",
		"server.port":             defaultServerPort,
		"server.read_timeout":     "5s",
		"server.write_timeout":    "10s",
		"server.idle_timeout":     "120s",
		"server.request_timeout":  "5s",
		"server.shutdown_timeout": "15s",

		"log.level":  "info",
		"log.format": "json",

		"session.cookie_name":                     "todos-session-id",
		"session.max_age":                         "744h", // 31 days
		"session.secure":                          false,
		"session.store":                           StoreMemory,
		"session.sqlite_path":                     "todos.db",
		"session.cleanup_interval":                "10m",
		"session.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"session.circuit_breaker.timeout":         "30s",
		"session.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"rate_limit.requests_per_second": defaultRateLimitRPS,
		"rate_limit.burst":               defaultRateLimitBurst,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todos",
	}
}
