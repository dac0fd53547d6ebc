package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-todos/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-todos/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-todos/internal/adapters/http/views"
	"github.com/jsamuelsen11/go-todos/internal/ports"
	"github.com/jsamuelsen11/go-todos/mocks"
)

const testSessionID = "0b6c9a54-6a53-4f0e-9b3a-2d7f5c1e8a90"

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// newRequest builds a request carrying the test session id.
func newRequest(method, target string, form url.Values) *http.Request {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	return req.WithContext(middleware.WithSessionID(req.Context(), testSessionID))
}

func newTodoListHandler(t *testing.T) (*handlers.TodoListHandler, *mocks.MockTodoListService) {
	t.Helper()
	renderer, err := views.New()
	if err != nil {
		t.Fatalf("views.New() error = %v", err)
	}
	svc := mocks.NewMockTodoListService(t)
	return handlers.NewTodoListHandler(svc, renderer), svc
}

func listPage() *ports.ListPage {
	return &ports.ListPage{
		List: ports.ListSummary{ID: 1, Title: "Groceries", Size: 1, Remaining: 1},
	}
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

func requireRedirect(t *testing.T, rec *httptest.ResponseRecorder, status int, location string) {
	t.Helper()
	requireStatus(t, rec, status)
	if got := rec.Header().Get("Location"); got != location {
		t.Errorf("Location = %q, want %q", got, location)
	}
}

func requireBodyContains(t *testing.T, rec *httptest.ResponseRecorder, parts ...string) {
	t.Helper()
	body := rec.Body.String()
	for _, p := range parts {
		if !strings.Contains(body, p) {
			t.Errorf("body missing %q; body = %s", p, body)
		}
	}
}
