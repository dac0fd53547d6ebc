package sessionstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/go-todos/internal/domain"
	"github.com/jsamuelsen11/go-todos/internal/domain/session"
	"github.com/jsamuelsen11/go-todos/internal/platform/config"
	"github.com/jsamuelsen11/go-todos/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-todos/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.SessionStore  = (*ResilientStore)(nil)
	_ ports.HealthChecker = (*ResilientStore)(nil)
)

// ResilientStore decorates a SessionStore with a circuit breaker, tracing,
// and metrics. When the breaker is open, calls fail fast with an error
// wrapping domain.ErrUnavailable.
//
// The processing order for every call is:
//
//	Metrics → Circuit Breaker → OTEL Span → Store
type ResilientStore struct {
	next    ports.SessionStore
	name    string
	breaker *gobreaker.CircuitBreaker[struct{}]
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewResilientStore wraps next. The name labels spans, metrics, and the
// health check (e.g., "memory", "sqlite"). If metrics is nil, metric
// recording is skipped.
func NewResilientStore(
	next ports.SessionStore,
	name string,
	cfg *config.CircuitBreakerConfig,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *ResilientStore {
	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "session-store-" + name,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			// A canceled request says nothing about the store's health.
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &ResilientStore{
		next:    next,
		name:    name,
		breaker: cb,
		metrics: metrics,
		logger:  logger,
	}
}

// Load delegates to the wrapped store.
func (s *ResilientStore) Load(ctx context.Context, id string) (*session.State, error) {
	var state *session.State
	err := s.do(ctx, "load", func(ctx context.Context) error {
		var err error
		state, err = s.next.Load(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

// Save delegates to the wrapped store.
func (s *ResilientStore) Save(ctx context.Context, id string, state *session.State) error {
	return s.do(ctx, "save", func(ctx context.Context) error {
		return s.next.Save(ctx, id, state)
	})
}

// Delete delegates to the wrapped store.
func (s *ResilientStore) Delete(ctx context.Context, id string) error {
	return s.do(ctx, "delete", func(ctx context.Context) error {
		return s.next.Delete(ctx, id)
	})
}

// DeleteExpired delegates to the wrapped store.
func (s *ResilientStore) DeleteExpired(ctx context.Context) (int, error) {
	var n int
	err := s.do(ctx, "delete_expired", func(ctx context.Context) error {
		var err error
		n, err = s.next.DeleteExpired(ctx)
		return err
	})
	return n, err
}

// Name returns the health check identifier.
func (s *ResilientStore) Name() string {
	return "session-store"
}

// HealthCheck reports the breaker state, then defers to the wrapped store
// when it has its own check.
//
// State mapping:
//   - "closed": store is operating normally.
//   - "half-open": breaker is probing recovery; reported as degraded.
//   - "open": store is failing and calls are rejected.
func (s *ResilientStore) HealthCheck(ctx context.Context) error {
	switch state := s.breaker.State(); state {
	case gobreaker.StateClosed:
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("session store %s: degraded (circuit breaker half-open)", s.name)
	case gobreaker.StateOpen:
		return fmt.Errorf("session store %s: failing (circuit breaker open)", s.name)
	default:
		return fmt.Errorf("session store %s: unknown circuit breaker state %v", s.name, state)
	}

	if hc, ok := s.next.(ports.HealthChecker); ok {
		return hc.HealthCheck(ctx)
	}
	return nil
}

func (s *ResilientStore) do(ctx context.Context, op string, fn func(context.Context) error) error {
	start := time.Now()

	_, err := s.breaker.Execute(func() (struct{}, error) {
		spanCtx, span := s.startSpan(ctx, op)
		defer span.End()

		err := fn(spanCtx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return struct{}{}, err
	})

	s.recordMetrics(ctx, op, start, err)

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("session store %s %s: %w: %w", s.name, op, domain.ErrUnavailable, err)
	}
	return err
}

func (s *ResilientStore) startSpan(ctx context.Context, op string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("sessionstore")
	return tracer.Start(ctx, "session."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			telemetry.AttrStore.String(s.name),
			telemetry.AttrOperation.String(op),
		),
	)
}

func (s *ResilientStore) recordMetrics(ctx context.Context, op string, start time.Time, err error) {
	result := telemetry.ResultSuccess
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		result = telemetry.ResultCircuitOpen
	case err != nil:
		result = telemetry.ResultError
	}
	s.metrics.RecordStoreOp(ctx, s.name, op, result, time.Since(start))
}

// toUint32 safely converts a non-negative int to uint32, clamping at the
// uint32 maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
