package telemetry

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// Metric results.
const (
	ResultSuccess     = "success"
	ResultError       = "error"
	ResultCircuitOpen = "circuit_open"
)

// Metrics holds the instruments the server records on. A nil *Metrics
// records nothing.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	SessionStoreDuration  metric.Float64Histogram
	SessionStoreTotal     metric.Int64Counter
	SessionsExpiredTotal  metric.Int64Counter
}

// NewMetrics registers every instrument on a meter named after the service.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(serviceName)
	m := &Metrics{}
	var err error

	if m.ServerRequestDuration, err = meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Duration of incoming HTTP requests"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, instrumentErr("http.server.request.duration", err)
	}
	if m.ServerRequestTotal, err = meter.Int64Counter("http.server.request.total",
		metric.WithDescription("Incoming HTTP requests"),
		metric.WithUnit("{request}"),
	); err != nil {
		return nil, instrumentErr("http.server.request.total", err)
	}
	if m.SessionStoreDuration, err = meter.Float64Histogram("session.store.duration",
		metric.WithDescription("Duration of session store operations"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, instrumentErr("session.store.duration", err)
	}
	if m.SessionStoreTotal, err = meter.Int64Counter("session.store.total",
		metric.WithDescription("Session store operations"),
		metric.WithUnit("{operation}"),
	); err != nil {
		return nil, instrumentErr("session.store.total", err)
	}
	if m.SessionsExpiredTotal, err = meter.Int64Counter("session.expired.total",
		metric.WithDescription("Expired sessions removed by the sweeper"),
		metric.WithUnit("{session}"),
	); err != nil {
		return nil, instrumentErr("session.expired.total", err)
	}

	return m, nil
}

// RecordRequest records one served HTTP request. An empty route is recorded
// as "unmatched" so unknown paths do not explode label cardinality.
func (m *Metrics) RecordRequest(ctx context.Context, method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	result := ResultSuccess
	if status >= http.StatusBadRequest {
		result = ResultError
	}

	attrs := metric.WithAttributes(
		AttrHTTPMethod.String(method),
		AttrHTTPRoute.String(route),
		AttrHTTPStatus.Int(status),
		AttrResult.String(result),
	)
	m.ServerRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	m.ServerRequestTotal.Add(ctx, 1, attrs)
}

// RecordStoreOp records one session store call against the named backend.
func (m *Metrics) RecordStoreOp(ctx context.Context, store, op, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		AttrStore.String(store),
		AttrOperation.String(op),
		AttrResult.String(result),
	)
	m.SessionStoreDuration.Record(ctx, elapsed.Seconds(), attrs)
	m.SessionStoreTotal.Add(ctx, 1, attrs)
}

// RecordExpired counts sessions removed by one sweep.
func (m *Metrics) RecordExpired(ctx context.Context, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.SessionsExpiredTotal.Add(ctx, int64(n))
}

func instrumentErr(name string, err error) error {
	return fmt.Errorf("creating %s: %w", name, err)
}
