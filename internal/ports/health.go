package ports

import "context"

// HealthChecker reports whether a dependency can serve requests, such as
// the session store behind its circuit breaker.
type HealthChecker interface {
	// Name identifies the component in readiness output ("session-store").
	Name() string

	// HealthCheck returns nil when healthy. It must honor ctx deadlines.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry is what the readiness probe consults.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll returns each component's check result by name.
	CheckAll(ctx context.Context) map[string]error
}
