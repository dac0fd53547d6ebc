// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-todos/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-todos/internal/adapters/http/views"
)

// NewRouter registers the todo list pages, the stylesheet, and the health
// probes. Middleware is applied globally in the order given. The sessions
// middleware wraps only the page routes so probes and static files never
// mint a session.
func NewRouter(
	listHandler *handlers.TodoListHandler,
	healthHandler *handlers.HealthHandler,
	sessions func(http.Handler) http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(listHandler.NotFound)

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)
	r.Handle("/static/*", views.Static())

	r.Group(func(r chi.Router) {
		if sessions != nil {
			r.Use(sessions)
		}

		r.Get("/", listHandler.Index)
		r.Get("/lists", listHandler.Lists)
		r.Get("/lists/new", listHandler.NewList)
		r.Post("/lists", listHandler.CreateList)

		r.Route("/lists/{listID}", func(r chi.Router) {
			r.Get("/", listHandler.ShowList)
			r.Get("/edit", listHandler.EditList)
			r.Post("/edit", listHandler.UpdateList)
			r.Post("/destroy", listHandler.DestroyList)
			r.Post("/complete_all", listHandler.CompleteAll)
			r.Post("/todos", listHandler.CreateTodo)
			r.Post("/todos/{todoID}/toggle", listHandler.ToggleTodo)
		})
	})

	return r
}
