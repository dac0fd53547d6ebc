// Package logging builds the service's slog logger and carries it through
// request contexts.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger)
//	logging.FromContext(ctx).InfoContext(ctx, "todo list created")
//
// Failures are logged with the operation, the entity ids, and the error:
//
//	logger.ErrorContext(ctx, "operation failed",
//	    slog.String("operation", "ToggleTodo"),
//	    slog.Int64("list_id", listID),
//	    logging.Session(sessionID),
//	    slog.Any("error", err),
//	)
//
// Session ids never appear verbatim: Session logs a fingerprint, and any
// value under SessionIDKey is redacted.
package logging

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"strings"
)

type contextKey struct{}

// SessionKey is the attribute key for session fingerprints.
const SessionKey = "session"

// New creates a logger. level accepts any name slog understands ("debug",
// "INFO", "warn+2"); anything else means info. format "text" selects the
// text handler and everything else JSON. Debug output includes the source
// location.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler
	if strings.EqualFold(format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler)
}

// WithLogger returns a new context with the given logger stored in it.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// Session returns an attribute identifying a session by a short digest of
// its id. Lines from one visitor can be grouped without the log holding a
// usable cookie value.
func Session(id string) slog.Attr {
	if id == "" {
		return slog.String(SessionKey, "")
	}
	sum := sha256.Sum256([]byte(id))
	return slog.String(SessionKey, hex.EncodeToString(sum[:6]))
}

func parseLevel(level string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
