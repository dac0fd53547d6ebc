package http_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/go-todos/internal/adapters/http"
	"github.com/jsamuelsen11/go-todos/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-todos/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-todos/internal/adapters/http/views"
	"github.com/jsamuelsen11/go-todos/internal/domain/todo"
	"github.com/jsamuelsen11/go-todos/internal/domain/todolist"
	"github.com/jsamuelsen11/go-todos/internal/ports"
	"github.com/jsamuelsen11/go-todos/mocks"
)

const testCookieName = "todos.sid"

type testRouter struct {
	http.Handler
	svc      *mocks.MockTodoListService
	registry *mocks.MockHealthRegistry
}

func newTestRouter(t *testing.T, mws ...func(http.Handler) http.Handler) testRouter {
	t.Helper()
	renderer, err := views.New()
	if err != nil {
		t.Fatalf("views.New() error = %v", err)
	}
	svc := mocks.NewMockTodoListService(t)
	registry := mocks.NewMockHealthRegistry(t)

	router := adapthttp.NewRouter(
		handlers.NewTodoListHandler(svc, renderer),
		handlers.NewHealthHandler(registry),
		middleware.Session(middleware.SessionCookie{Name: testCookieName}),
		mws...,
	)
	return testRouter{Handler: router, svc: svc, registry: registry}
}

func TestRouter_PageRoutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method     string
		path       string
		expect     func(svc *mocks.MockTodoListService)
		wantStatus int
		wantLoc    string
	}{
		{
			method: http.MethodGet, path: "/",
			wantStatus: http.StatusFound, wantLoc: "/lists",
		},
		{
			method: http.MethodGet, path: "/lists",
			expect: func(svc *mocks.MockTodoListService) {
				svc.EXPECT().Lists(mock.Anything, mock.Anything).Return(&ports.ListsPage{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			method: http.MethodGet, path: "/lists/new",
			expect: func(svc *mocks.MockTodoListService) {
				svc.EXPECT().ConsumeFlash(mock.Anything, mock.Anything).Return(nil, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			method: http.MethodPost, path: "/lists",
			expect: func(svc *mocks.MockTodoListService) {
				svc.EXPECT().CreateList(mock.Anything, mock.Anything, "").Return(&todolist.TodoList{ID: 1}, nil)
			},
			wantStatus: http.StatusSeeOther, wantLoc: "/lists",
		},
		{
			method: http.MethodGet, path: "/lists/4",
			expect: func(svc *mocks.MockTodoListService) {
				svc.EXPECT().List(mock.Anything, mock.Anything, int64(4)).Return(&ports.ListPage{List: ports.ListSummary{ID: 4}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			method: http.MethodGet, path: "/lists/4/edit",
			expect: func(svc *mocks.MockTodoListService) {
				svc.EXPECT().List(mock.Anything, mock.Anything, int64(4)).Return(&ports.ListPage{List: ports.ListSummary{ID: 4}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			method: http.MethodPost, path: "/lists/4/edit",
			expect: func(svc *mocks.MockTodoListService) {
				svc.EXPECT().RenameList(mock.Anything, mock.Anything, int64(4), "").Return(&todolist.TodoList{ID: 4}, nil)
			},
			wantStatus: http.StatusSeeOther, wantLoc: "/lists/4",
		},
		{
			method: http.MethodPost, path: "/lists/4/destroy",
			expect: func(svc *mocks.MockTodoListService) {
				svc.EXPECT().DestroyList(mock.Anything, mock.Anything, int64(4)).Return(nil)
			},
			wantStatus: http.StatusSeeOther, wantLoc: "/lists",
		},
		{
			method: http.MethodPost, path: "/lists/4/todos",
			expect: func(svc *mocks.MockTodoListService) {
				svc.EXPECT().AddTodo(mock.Anything, mock.Anything, int64(4), "").Return(&todo.Todo{ID: 1}, nil)
			},
			wantStatus: http.StatusSeeOther, wantLoc: "/lists/4",
		},
		{
			method: http.MethodPost, path: "/lists/4/todos/9/toggle",
			expect: func(svc *mocks.MockTodoListService) {
				svc.EXPECT().ToggleTodo(mock.Anything, mock.Anything, int64(4), int64(9)).Return(&todo.Todo{ID: 9}, nil)
			},
			wantStatus: http.StatusSeeOther, wantLoc: "/lists/4",
		},
		{
			method: http.MethodPost, path: "/lists/4/complete_all",
			expect: func(svc *mocks.MockTodoListService) {
				svc.EXPECT().CompleteAll(mock.Anything, mock.Anything, int64(4)).Return(nil)
			},
			wantStatus: http.StatusSeeOther, wantLoc: "/lists/4",
		},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			t.Parallel()
			router := newTestRouter(t)
			if tt.expect != nil {
				tt.expect(router.svc)
			}

			var req *http.Request
			if tt.method == http.MethodPost {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(""))
				req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d; body = %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if got := rec.Header().Get("Location"); got != tt.wantLoc {
				t.Errorf("Location = %q, want %q", got, tt.wantLoc)
			}
			if !strings.Contains(rec.Header().Get("Set-Cookie"), testCookieName+"=") {
				t.Errorf("Set-Cookie = %q, want a %s cookie", rec.Header().Get("Set-Cookie"), testCookieName)
			}
		})
	}
}

func TestRouter_SessionIDReachesService(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	const sid = "6f1c2d3e-4b5a-4c6d-8e7f-901a2b3c4d5e"
	router.svc.EXPECT().Lists(mock.Anything, sid).Return(&ports.ListsPage{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/lists", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: sid})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_ProbesAndStaticHaveNoSession(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)
	router.registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	for _, path := range []string{"/health/live", "/health/ready", "/static/style.css"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		if rec.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want %d", path, rec.Code, http.StatusOK)
		}
		if c := rec.Header().Get("Set-Cookie"); c != "" {
			t.Errorf("GET %s Set-Cookie = %q, want none", path, c)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}
	router := newTestRouter(t, testMW)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	for _, path := range []string{"/nonexistent", "/lists/1/unknown"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		if rec.Code != http.StatusNotFound {
			t.Errorf("GET %s status = %d, want %d", path, rec.Code, http.StatusNotFound)
		}
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/lists", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestRouter_FullPipeline(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	router := newTestRouter(t,
		middleware.Recovery(logger, nil),
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.OpenTelemetry(nil),
		middleware.Logging(logger),
		middleware.RateLimit(100, 10),
		middleware.Timeout(5*time.Second),
	)
	router.svc.EXPECT().Lists(mock.Anything, mock.Anything).Return(&ports.ListsPage{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/lists", nil)
	req.Header.Set("X-Request-ID", "pipeline-req")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("X-Request-ID"); got != "pipeline-req" {
		t.Errorf("X-Request-ID = %q, want %q", got, "pipeline-req")
	}
	if got := rec.Header().Get("X-Correlation-ID"); got != "pipeline-req" {
		t.Errorf("X-Correlation-ID = %q, want the request id", got)
	}
	if !strings.Contains(rec.Header().Get("Set-Cookie"), testCookieName+"=") {
		t.Error("response missing session cookie")
	}

	logOutput := buf.String()
	if !strings.Contains(logOutput, `"msg":"request completed"`) || !strings.Contains(logOutput, `"route":"/lists"`) {
		t.Errorf("access log missing or unrouted: %s", logOutput)
	}
}
