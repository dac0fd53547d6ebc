// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The middleware chain processes requests in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → RateLimit → Timeout → Session → Handler
//
// Each middleware is a func(http.Handler) http.Handler; the router installs
// them in this order.
package middleware

import "net/http"

// statusRecorder remembers what a handler sent so the recovery, otel, and
// logging middleware can report it after the fact.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	bytes       int64
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w}
}

// Status is the status sent to the client. A handler that never wrote
// anything reports 200, which is what net/http sends for it.
func (rec *statusRecorder) Status() int {
	if rec.status == 0 {
		return http.StatusOK
	}
	return rec.status
}

// Written reports whether the status line has gone out.
func (rec *statusRecorder) Written() bool {
	return rec.wroteHeader
}

// WriteHeader records code. Repeated calls are dropped instead of reaching
// net/http, which would log "superfluous WriteHeader".
func (rec *statusRecorder) WriteHeader(code int) {
	if rec.wroteHeader {
		return
	}
	rec.status = code
	rec.wroteHeader = true
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	if !rec.wroteHeader {
		rec.WriteHeader(http.StatusOK)
	}
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rec *statusRecorder) Unwrap() http.ResponseWriter {
	return rec.ResponseWriter
}
