// Package main runs the todo list server: it loads the profile's config,
// wires the app with samber/do, and serves until SIGINT or SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/go-todos/internal/adapters/http"
	"github.com/jsamuelsen11/go-todos/internal/adapters/sessionstore"
	"github.com/jsamuelsen11/go-todos/internal/platform/config"
	"github.com/jsamuelsen11/go-todos/internal/platform/logging"
	"github.com/jsamuelsen11/go-todos/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-todos/internal/ports"
)

const flushTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "todos: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE must name a file in configs/ (local, prod)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer flush(otel, logger)

	store, closeStore, err := openSessionStore(ctx, cfg, otel.Metrics, logger)
	if err != nil {
		return fmt.Errorf("opening session store: %w", err)
	}
	defer closeStore()

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)
	do.ProvideValue(injector, store)
	provide(injector, cfg, logger)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("wiring server: %w", err)
	}
	do.MustInvoke[ports.HealthRegistry](injector).Register(store)

	var background sync.WaitGroup
	background.Go(func() {
		sessionstore.NewSweeper(store, cfg.Session.CleanupInterval, otel.Metrics, logger).Run(ctx)
	})

	logger.Info("starting todo server",
		slog.String("profile", profile),
		slog.String("session_store", cfg.Session.Store),
		slog.Bool("telemetry", otel.Enabled()),
	)
	err = server.Run(ctx)

	// The sweeper only stops on cancel, so end it even when Run failed.
	stop()
	background.Wait()

	if err != nil {
		return err
	}
	logger.Info("shutdown complete")
	return nil
}

func flush(otel *telemetry.Providers, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	if err := otel.Shutdown(ctx); err != nil {
		logger.Error("flushing telemetry", slog.Any("error", err))
	}
}
