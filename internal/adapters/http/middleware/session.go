package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type sessionIDKey struct{}

// WithSessionID returns a new context carrying the session id.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, id)
}

// SessionIDFromContext returns the session id set by the Session middleware,
// or "" if there is none.
func SessionIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey{}).(string); ok {
		return id
	}
	return ""
}

// SessionCookie configures the session cookie.
type SessionCookie struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

// Session returns middleware that identifies the visitor by an opaque UUIDv4
// cookie. A missing or malformed cookie gets a fresh id. The cookie is
// rewritten on every response so its expiry slides with activity.
func Session(cookie SessionCookie) func(http.Handler) http.Handler {
	maxAge := int(cookie.MaxAge / time.Second)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := readSessionID(r, cookie.Name)
			if id == "" {
				id = uuid.NewString()
			}

			http.SetCookie(w, &http.Cookie{
				Name:     cookie.Name,
				Value:    id,
				Path:     "/",
				MaxAge:   maxAge,
				HttpOnly: true,
				Secure:   cookie.Secure,
				SameSite: http.SameSiteLaxMode,
			})

			next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), id)))
		})
	}
}

// readSessionID returns the canonical form of the cookie's UUIDv4 value, or
// "" when the cookie is absent or not a version 4 UUID.
func readSessionID(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	id, err := uuid.Parse(c.Value)
	if err != nil || id.Version() != 4 {
		return ""
	}
	return id.String()
}
