package sessionstore

import (
	"context"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/go-todos/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-todos/internal/ports"
)

// Sweeper periodically removes expired sessions from a store.
type Sweeper struct {
	store    ports.SessionStore
	interval time.Duration
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// NewSweeper creates a Sweeper. A nil metrics only logs counts.
func NewSweeper(store ports.SessionStore, interval time.Duration, metrics *telemetry.Metrics, logger *slog.Logger) *Sweeper {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Sweeper{
		store:    store,
		interval: interval,
		metrics:  metrics,
		logger:   logger,
	}
}

// Run sweeps every interval until ctx is done. A non-positive interval
// returns immediately.
func (s *Sweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep runs one pass and returns the number of sessions removed. Failures
// are logged and reported as zero.
func (s *Sweeper) Sweep(ctx context.Context) int {
	n, err := s.store.DeleteExpired(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "expired session sweep failed", slog.Any("error", err))
		return 0
	}
	if n == 0 {
		return 0
	}

	s.metrics.RecordExpired(ctx, n)
	s.logger.InfoContext(ctx, "expired sessions removed", slog.Int("count", n))
	return n
}
