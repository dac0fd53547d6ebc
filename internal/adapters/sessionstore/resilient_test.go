package sessionstore

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/jsamuelsen11/go-todos/internal/domain"
	"github.com/jsamuelsen11/go-todos/internal/domain/session"
	"github.com/jsamuelsen11/go-todos/internal/platform/config"
	"github.com/jsamuelsen11/go-todos/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-todos/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func breakerConfig(maxFailures int) *config.CircuitBreakerConfig {
	return &config.CircuitBreakerConfig{
		MaxFailures:   maxFailures,
		Timeout:       time.Minute,
		HalfOpenLimit: 1,
	}
}

func TestResilientStore_Delegates(t *testing.T) {
	t.Parallel()

	next := mocks.NewMockSessionStore(t)
	metrics, err := telemetry.NewMetrics(noop.NewMeterProvider(), "test")
	require.NoError(t, err)
	store := NewResilientStore(next, "memory", breakerConfig(3), metrics, discardLogger())
	ctx := context.Background()

	want := session.NewState()
	next.EXPECT().Load(mock.Anything, "s1").Return(want, nil).Once()
	next.EXPECT().Save(mock.Anything, "s1", want).Return(nil).Once()
	next.EXPECT().Delete(mock.Anything, "s1").Return(nil).Once()
	next.EXPECT().DeleteExpired(mock.Anything).Return(4, nil).Once()

	got, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	require.Same(t, want, got)
	require.NoError(t, store.Save(ctx, "s1", want))
	require.NoError(t, store.Delete(ctx, "s1"))

	n, err := store.DeleteExpired(ctx)
	require.NoError(t, err)
	require.Equal(t, 4, n)
}

func TestResilientStore_PassesThroughErrors(t *testing.T) {
	t.Parallel()

	next := mocks.NewMockSessionStore(t)
	store := NewResilientStore(next, "sqlite", breakerConfig(3), nil, discardLogger())

	boom := errors.New("disk I/O error")
	next.EXPECT().Load(mock.Anything, "s1").Return(nil, boom).Once()

	_, err := store.Load(context.Background(), "s1")
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, domain.ErrUnavailable)
}

func TestResilientStore_OpensAfterConsecutiveFailures(t *testing.T) {
	t.Parallel()

	next := mocks.NewMockSessionStore(t)
	store := NewResilientStore(next, "sqlite", breakerConfig(2), nil, discardLogger())
	ctx := context.Background()

	boom := errors.New("database is locked")
	next.EXPECT().Save(mock.Anything, "s1", mock.Anything).Return(boom).Times(2)

	require.ErrorIs(t, store.Save(ctx, "s1", session.NewState()), boom)
	require.ErrorIs(t, store.Save(ctx, "s1", session.NewState()), boom)

	// The breaker is open: the wrapped store is not called again.
	err := store.Save(ctx, "s1", session.NewState())
	require.ErrorIs(t, err, domain.ErrUnavailable)

	_, err = store.Load(ctx, "s1")
	require.ErrorIs(t, err, domain.ErrUnavailable)

	require.Error(t, store.HealthCheck(ctx))
}

func TestResilientStore_CanceledContextDoesNotTrip(t *testing.T) {
	t.Parallel()

	next := mocks.NewMockSessionStore(t)
	store := NewResilientStore(next, "memory", breakerConfig(1), nil, discardLogger())

	next.EXPECT().Load(mock.Anything, "s1").Return(nil, context.Canceled).Once()
	next.EXPECT().Load(mock.Anything, "s1").Return(session.NewState(), nil).Once()

	_, err := store.Load(context.Background(), "s1")
	require.ErrorIs(t, err, context.Canceled)

	_, err = store.Load(context.Background(), "s1")
	require.NoError(t, err)
}

func TestResilientStore_HealthCheck(t *testing.T) {
	t.Parallel()

	t.Run("closed breaker without inner checker is healthy", func(t *testing.T) {
		t.Parallel()
		store := NewResilientStore(NewMemoryStore(time.Hour), "memory", breakerConfig(1), nil, discardLogger())
		require.Equal(t, "session-store", store.Name())
		require.NoError(t, store.HealthCheck(context.Background()))
	})

	t.Run("closed breaker defers to inner checker", func(t *testing.T) {
		t.Parallel()
		db := NewTestDB(t)
		store := NewResilientStore(NewSQLiteStore(db, time.Hour), "sqlite", breakerConfig(1), nil, discardLogger())
		require.NoError(t, store.HealthCheck(context.Background()))

		require.NoError(t, db.Close())
		require.Error(t, store.HealthCheck(context.Background()))
	})
}

func TestToUint32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int
		want uint32
	}{
		{-1, 0},
		{0, 0},
		{1, 1},
		{1 << 40, 1<<32 - 1},
	}
	for _, tt := range tests {
		if got := toUint32(tt.in); got != tt.want {
			t.Errorf("toUint32(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
