package ports

import (
	"context"

	"github.com/jsamuelsen11/go-todos/internal/domain/session"
)

// SessionStore defines the store port for per-session state.
// Implemented by the session adapters; called by the application layer.
// Session IDs are opaque strings minted by the HTTP adapter.
type SessionStore interface {
	// Load returns the state stored under id. An unknown or expired id
	// yields an empty state, not an error.
	Load(ctx context.Context, id string) (*session.State, error)

	// Save replaces the state stored under id and refreshes its expiry.
	Save(ctx context.Context, id string, state *session.State) error

	// Delete removes the state stored under id. Deleting an unknown id
	// is not an error.
	Delete(ctx context.Context, id string) error

	// DeleteExpired removes every expired session and returns how many
	// were removed.
	DeleteExpired(ctx context.Context) (int, error)
}
