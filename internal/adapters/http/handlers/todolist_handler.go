// Package handlers provides the HTTP handlers for the todo list pages and
// health probes.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/go-todos/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-todos/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/go-todos/internal/adapters/http/views"
	"github.com/jsamuelsen11/go-todos/internal/domain"
	"github.com/jsamuelsen11/go-todos/internal/platform/logging"
	"github.com/jsamuelsen11/go-todos/internal/ports"
)

// Error page messages.
const (
	msgNotFound    = "The page you requested could not be found."
	msgUnavailable = "Your lists are temporarily unavailable. Please try again shortly."
	msgBadRequest  = "The form could not be read. Please try again."
	msgServerError = "Something went wrong. Please try again."
)

var errNoSession = errors.New("request has no session id")

// TodoListHandler serves the todo list pages. Successful form posts redirect
// with 303; rejected input re-renders the form with 422.
type TodoListHandler struct {
	svc   ports.TodoListService
	views *views.Renderer
}

// NewTodoListHandler creates a TodoListHandler.
func NewTodoListHandler(svc ports.TodoListService, renderer *views.Renderer) *TodoListHandler {
	return &TodoListHandler{svc: svc, views: renderer}
}

// Index handles GET /.
func (h *TodoListHandler) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/lists", http.StatusFound)
}

// Lists handles GET /lists.
func (h *TodoListHandler) Lists(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	page, err := h.svc.Lists(r.Context(), sid)
	if err != nil {
		h.RenderError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, views.PageLists, dto.NewListsView(page))
}

// NewList handles GET /lists/new.
func (h *TodoListHandler) NewList(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	flash, err := h.svc.ConsumeFlash(r.Context(), sid)
	if err != nil {
		h.RenderError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, views.PageNewList, dto.ListFormView{
		Page: dto.Page{Title: "New List", Flash: dto.ToFlashViews(flash)},
	})
}

// CreateList handles POST /lists.
func (h *TodoListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	form, err := dto.DecodeListForm(w, r)
	if err != nil {
		h.renderBadRequest(w, r, err)
		return
	}

	if _, err := h.svc.CreateList(r.Context(), sid, form.Title); err != nil {
		if domain.IsUserError(err) {
			h.render(w, r, http.StatusUnprocessableEntity, views.PageNewList, dto.ListFormView{
				Page:      dto.Page{Title: "New List", Errors: domain.Messages(err)},
				ListTitle: form.Title,
			})
			return
		}
		h.RenderError(w, r, err)
		return
	}
	seeOther(w, r, "/lists")
}

// ShowList handles GET /lists/{listID}.
func (h *TodoListHandler) ShowList(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	listID, err := parseID(r, paramListID)
	if err != nil {
		h.RenderError(w, r, err)
		return
	}

	page, err := h.svc.List(r.Context(), sid, listID)
	if err != nil {
		h.RenderError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, views.PageList, dto.NewListView(page))
}

// EditList handles GET /lists/{listID}/edit.
func (h *TodoListHandler) EditList(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	listID, err := parseID(r, paramListID)
	if err != nil {
		h.RenderError(w, r, err)
		return
	}

	page, err := h.svc.List(r.Context(), sid, listID)
	if err != nil {
		h.RenderError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, views.PageEditList, dto.ListFormView{
		Page:      dto.Page{Title: "Edit List", Flash: dto.ToFlashViews(page.Flash)},
		ListID:    page.List.ID,
		ListTitle: page.List.Title,
	})
}

// UpdateList handles POST /lists/{listID}/edit.
func (h *TodoListHandler) UpdateList(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	listID, err := parseID(r, paramListID)
	if err != nil {
		h.RenderError(w, r, err)
		return
	}
	form, err := dto.DecodeListForm(w, r)
	if err != nil {
		h.renderBadRequest(w, r, err)
		return
	}

	if _, err := h.svc.RenameList(r.Context(), sid, listID, form.Title); err != nil {
		if domain.IsUserError(err) {
			h.render(w, r, http.StatusUnprocessableEntity, views.PageEditList, dto.ListFormView{
				Page:      dto.Page{Title: "Edit List", Errors: domain.Messages(err)},
				ListID:    listID,
				ListTitle: form.Title,
			})
			return
		}
		h.RenderError(w, r, err)
		return
	}
	seeOther(w, r, listURL(listID))
}

// DestroyList handles POST /lists/{listID}/destroy.
func (h *TodoListHandler) DestroyList(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	listID, err := parseID(r, paramListID)
	if err != nil {
		h.RenderError(w, r, err)
		return
	}

	if err := h.svc.DestroyList(r.Context(), sid, listID); err != nil {
		h.RenderError(w, r, err)
		return
	}
	seeOther(w, r, "/lists")
}

// CreateTodo handles POST /lists/{listID}/todos. A rejected title re-renders
// the list page with the submitted text.
func (h *TodoListHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	listID, err := parseID(r, paramListID)
	if err != nil {
		h.RenderError(w, r, err)
		return
	}
	form, err := dto.DecodeTodoForm(w, r)
	if err != nil {
		h.renderBadRequest(w, r, err)
		return
	}

	_, err = h.svc.AddTodo(r.Context(), sid, listID, form.Title)
	if err == nil {
		seeOther(w, r, listURL(listID))
		return
	}
	if !domain.IsUserError(err) {
		h.RenderError(w, r, err)
		return
	}

	page, listErr := h.svc.List(r.Context(), sid, listID)
	if listErr != nil {
		h.RenderError(w, r, listErr)
		return
	}
	view := dto.NewListView(page)
	view.Errors = domain.Messages(err)
	view.TodoTitle = form.Title
	h.render(w, r, http.StatusUnprocessableEntity, views.PageList, view)
}

// ToggleTodo handles POST /lists/{listID}/todos/{todoID}/toggle.
func (h *TodoListHandler) ToggleTodo(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	listID, err := parseID(r, paramListID)
	if err != nil {
		h.RenderError(w, r, err)
		return
	}
	todoID, err := parseID(r, paramTodoID)
	if err != nil {
		h.RenderError(w, r, err)
		return
	}

	if _, err := h.svc.ToggleTodo(r.Context(), sid, listID, todoID); err != nil {
		h.RenderError(w, r, err)
		return
	}
	seeOther(w, r, listURL(listID))
}

// CompleteAll handles POST /lists/{listID}/complete_all.
func (h *TodoListHandler) CompleteAll(w http.ResponseWriter, r *http.Request) {
	sid, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	listID, err := parseID(r, paramListID)
	if err != nil {
		h.RenderError(w, r, err)
		return
	}

	if err := h.svc.CompleteAll(r.Context(), sid, listID); err != nil {
		h.RenderError(w, r, err)
		return
	}
	seeOther(w, r, listURL(listID))
}

// NotFound renders the not-found page for unmatched routes.
func (h *TodoListHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.RenderError(w, r, domain.ErrNotFound)
}

// RenderError writes err as an error page, or as problem+json for clients
// that ask for JSON. Server-side failures are logged.
func (h *TodoListHandler) RenderError(w http.ResponseWriter, r *http.Request, err error) {
	status := dto.StatusFor(err)
	if status >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}

	if wantsJSON(r) {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	msg := msgServerError
	switch status {
	case http.StatusNotFound:
		msg = msgNotFound
	case http.StatusServiceUnavailable:
		msg = msgUnavailable
	case http.StatusBadRequest:
		msg = msgBadRequest
	}
	h.renderErrorPage(w, r, status, msg)
}

func (h *TodoListHandler) renderBadRequest(w http.ResponseWriter, r *http.Request, err error) {
	if wantsJSON(r) {
		dto.WriteProblem(w, r, http.StatusBadRequest, err)
		return
	}
	h.renderErrorPage(w, r, http.StatusBadRequest, msgBadRequest)
}

func (h *TodoListHandler) renderErrorPage(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.render(w, r, status, views.PageError, dto.ErrorView{
		Page:    dto.Page{Title: http.StatusText(status)},
		Status:  status,
		Message: msg,
	})
}

// render writes a page, falling back to plain text if the template fails.
func (h *TodoListHandler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	if err := h.views.Render(w, status, page, data); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to render page",
			slog.String("page", page),
			slog.Any("error", err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// sessionID returns the id set by the session middleware. Its absence is a
// wiring error and answered with 500.
func (h *TodoListHandler) sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	sid := middleware.SessionIDFromContext(r.Context())
	if sid == "" {
		h.RenderError(w, r, errNoSession)
		return "", false
	}
	return sid, true
}
