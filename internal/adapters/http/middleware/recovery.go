package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/go-todos/internal/adapters/http/dto"
)

// errPanic is what the client is told about a recovered panic. The panic
// value and stack only go to the log.
var errPanic = errors.New("internal server error")

// ErrorRenderer writes an error response for err.
type ErrorRenderer func(w http.ResponseWriter, r *http.Request, err error)

// Recovery returns middleware that turns a handler panic into a 500 written
// by render, unless the handler had already started its response. A nil
// render writes RFC 9457 problem+json. http.ErrAbortHandler is re-raised so
// net/http can abort the connection quietly.
func Recovery(logger *slog.Logger, render ErrorRenderer) func(http.Handler) http.Handler {
	if render == nil {
		render = dto.WriteErrorResponse
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sr := newStatusRecorder(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Bool("response_started", sr.Written()),
				)

				if !sr.Written() {
					render(sr, r, errPanic)
				}
			}()

			next.ServeHTTP(sr, r)
		})
	}
}
