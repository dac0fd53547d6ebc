package main

import (
	"context"
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/go-todos/internal/adapters/http"
	"github.com/jsamuelsen11/go-todos/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-todos/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-todos/internal/adapters/http/views"
	"github.com/jsamuelsen11/go-todos/internal/adapters/sessionstore"
	"github.com/jsamuelsen11/go-todos/internal/app"
	"github.com/jsamuelsen11/go-todos/internal/platform/config"
	"github.com/jsamuelsen11/go-todos/internal/platform/health"
	"github.com/jsamuelsen11/go-todos/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-todos/internal/ports"
)

// openSessionStore opens the configured backend behind the circuit breaker.
// The returned func releases the backend.
func openSessionStore(
	ctx context.Context,
	cfg *config.Config,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) (*sessionstore.ResilientStore, func(), error) {
	sc := cfg.Session

	if sc.Store != config.StoreSQLite {
		store := sessionstore.NewMemoryStore(sc.MaxAge)
		return sessionstore.NewResilientStore(store, config.StoreMemory, &sc.CircuitBreaker, metrics, logger), func() {}, nil
	}

	db, err := sessionstore.OpenSQLite(sc.SQLitePath)
	if err != nil {
		return nil, nil, err
	}
	if err := db.RunMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	logger.Info("session database ready", slog.String("path", sc.SQLitePath))

	release := func() {
		if err := db.Close(); err != nil {
			logger.Error("closing session database", slog.Any("error", err))
		}
	}
	store := sessionstore.NewSQLiteStore(db, sc.MaxAge)
	return sessionstore.NewResilientStore(store, config.StoreSQLite, &sc.CircuitBreaker, metrics, logger), release, nil
}

// provide registers the lazily built part of the graph: service, views,
// handlers, router and server.
func provide(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (ports.TodoListService, error) {
		return app.NewTodoListService(do.MustInvoke[*sessionstore.ResilientStore](i), logger), nil
	})

	do.Provide(injector, func(do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.WithCheckTimeout(cfg.Server.RequestTimeout)), nil
	})

	do.Provide(injector, func(do.Injector) (*views.Renderer, error) {
		return views.New()
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TodoListHandler, error) {
		return handlers.NewTodoListHandler(
			do.MustInvoke[ports.TodoListService](i),
			do.MustInvoke[*views.Renderer](i),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		lists := do.MustInvoke[*handlers.TodoListHandler](i)
		probes := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		sessions := middleware.Session(middleware.SessionCookie{
			Name:   cfg.Session.CookieName,
			MaxAge: cfg.Session.MaxAge,
			Secure: cfg.Session.Secure,
		})

		return adapthttp.NewRouter(lists, probes, sessions,
			middleware.Recovery(logger, lists.RenderError),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.RateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})
}
