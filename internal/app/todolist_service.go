// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"

	appctx "github.com/jsamuelsen11/go-todos/internal/app/context"
	"github.com/jsamuelsen11/go-todos/internal/domain"
	"github.com/jsamuelsen11/go-todos/internal/domain/session"
	"github.com/jsamuelsen11/go-todos/internal/domain/todo"
	"github.com/jsamuelsen11/go-todos/internal/domain/todolist"
	"github.com/jsamuelsen11/go-todos/internal/platform/logging"
	"github.com/jsamuelsen11/go-todos/internal/ports"
)

// Flash messages queued after a successful mutation.
const (
	FlashListCreated  = "The todo list has been created."
	FlashListRenamed  = "The todo list title has been updated."
	FlashListDeleted  = "The todo list has been deleted."
	FlashTodoCreated  = "The todo has been created."
	FlashTodoDone     = "Your task has been marked done."
	FlashTodoUndone   = "Your task has been marked undone."
	FlashAllTodosDone = "All tasks have been marked done."
)

// Compile-time check that TodoListService implements ports.TodoListService.
var _ ports.TodoListService = (*TodoListService)(nil)

// TodoListService implements ports.TodoListService on top of a SessionStore.
// Each call loads the session, applies one change to a copy, and saves the
// copy through the request context's commit queue.
type TodoListService struct {
	store  ports.SessionStore
	logger *slog.Logger
}

// NewTodoListService creates a TodoListService. A nil logger discards output.
func NewTodoListService(store ports.SessionStore, logger *slog.Logger) *TodoListService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TodoListService{
		store:  store,
		logger: logger,
	}
}

// Lists returns every list sorted for display.
func (s *TodoListService) Lists(ctx context.Context, sessionID string) (*ports.ListsPage, error) {
	s.logger.InfoContext(ctx, "listing todo lists")

	var page ports.ListsPage
	err := s.view(ctx, sessionID, func(state *session.State) error {
		for _, l := range todolist.SortLists(state.Lists.All()) {
			page.Lists = append(page.Lists, summarize(l))
		}
		page.Flash = state.TakeFlash()
		return nil
	})
	if err != nil {
		s.logFailure(ctx, "Lists", sessionID, err)
		return nil, err
	}
	return &page, nil
}

// List returns one list with its todos sorted for display.
func (s *TodoListService) List(ctx context.Context, sessionID string, listID int64) (*ports.ListPage, error) {
	s.logger.InfoContext(ctx, "fetching todo list", slog.Int64("list_id", listID))

	var page ports.ListPage
	err := s.view(ctx, sessionID, func(state *session.State) error {
		l, err := state.Lists.Find(listID)
		if err != nil {
			return err
		}
		page.List = summarize(l)
		for _, t := range todolist.SortTodos(l) {
			page.Todos = append(page.Todos, *t)
		}
		page.Flash = state.TakeFlash()
		return nil
	})
	if err != nil {
		s.logFailure(ctx, "List", sessionID, err, slog.Int64("list_id", listID))
		return nil, err
	}
	return &page, nil
}

// CreateList creates a list and queues a success flash.
func (s *TodoListService) CreateList(ctx context.Context, sessionID, title string) (*todolist.TodoList, error) {
	s.logger.InfoContext(ctx, "creating todo list")

	var created *todolist.TodoList
	err := s.mutate(ctx, sessionID, func(state *session.State) error {
		l, err := state.Lists.Create(title)
		if err != nil {
			return err
		}
		created = l.Clone()
		state.AddFlash(session.FlashSuccess, FlashListCreated)
		return nil
	})
	if err != nil {
		s.logFailure(ctx, "CreateList", sessionID, err)
		return nil, err
	}
	return created, nil
}

// RenameList changes a list's title and queues a success flash.
func (s *TodoListService) RenameList(ctx context.Context, sessionID string, listID int64, title string) (*todolist.TodoList, error) {
	s.logger.InfoContext(ctx, "renaming todo list", slog.Int64("list_id", listID))

	var renamed *todolist.TodoList
	err := s.mutate(ctx, sessionID, func(state *session.State) error {
		l, err := state.Lists.Rename(listID, title)
		if err != nil {
			return err
		}
		renamed = l.Clone()
		state.AddFlash(session.FlashSuccess, FlashListRenamed)
		return nil
	})
	if err != nil {
		s.logFailure(ctx, "RenameList", sessionID, err, slog.Int64("list_id", listID))
		return nil, err
	}
	return renamed, nil
}

// DestroyList removes a list and queues a success flash.
func (s *TodoListService) DestroyList(ctx context.Context, sessionID string, listID int64) error {
	s.logger.InfoContext(ctx, "deleting todo list", slog.Int64("list_id", listID))

	err := s.mutate(ctx, sessionID, func(state *session.State) error {
		if err := state.Lists.Destroy(listID); err != nil {
			return err
		}
		state.AddFlash(session.FlashSuccess, FlashListDeleted)
		return nil
	})
	if err != nil {
		s.logFailure(ctx, "DestroyList", sessionID, err, slog.Int64("list_id", listID))
	}
	return err
}

// AddTodo appends a todo to a list. An unknown list is reported before an
// invalid title.
func (s *TodoListService) AddTodo(ctx context.Context, sessionID string, listID int64, title string) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "creating todo", slog.Int64("list_id", listID))

	var created *todo.Todo
	err := s.mutate(ctx, sessionID, func(state *session.State) error {
		l, err := state.Lists.Find(listID)
		if err != nil {
			return err
		}
		t, err := todo.New(title)
		if err != nil {
			return err
		}
		created = l.Add(t).Clone()
		state.AddFlash(session.FlashSuccess, FlashTodoCreated)
		return nil
	})
	if err != nil {
		s.logFailure(ctx, "AddTodo", sessionID, err, slog.Int64("list_id", listID))
		return nil, err
	}
	return created, nil
}

// ToggleTodo flips a todo's done flag.
func (s *TodoListService) ToggleTodo(ctx context.Context, sessionID string, listID, todoID int64) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "toggling todo",
		slog.Int64("list_id", listID),
		slog.Int64("todo_id", todoID),
	)

	var toggled *todo.Todo
	err := s.mutate(ctx, sessionID, func(state *session.State) error {
		l, err := state.Lists.Find(listID)
		if err != nil {
			return err
		}
		t, err := l.FindByID(todoID)
		if err != nil {
			return err
		}
		msg := FlashTodoUndone
		if t.Toggle() {
			msg = FlashTodoDone
		}
		toggled = t.Clone()
		state.AddFlash(session.FlashSuccess, msg)
		return nil
	})
	if err != nil {
		s.logFailure(ctx, "ToggleTodo", sessionID, err,
			slog.Int64("list_id", listID),
			slog.Int64("todo_id", todoID),
		)
		return nil, err
	}
	return toggled, nil
}

// CompleteAll marks every todo in a list done.
func (s *TodoListService) CompleteAll(ctx context.Context, sessionID string, listID int64) error {
	s.logger.InfoContext(ctx, "completing all todos", slog.Int64("list_id", listID))

	err := s.mutate(ctx, sessionID, func(state *session.State) error {
		l, err := state.Lists.Find(listID)
		if err != nil {
			return err
		}
		l.MarkAllDone()
		state.AddFlash(session.FlashSuccess, FlashAllTodosDone)
		return nil
	})
	if err != nil {
		s.logFailure(ctx, "CompleteAll", sessionID, err, slog.Int64("list_id", listID))
	}
	return err
}

// ConsumeFlash returns and clears the pending flash messages.
func (s *TodoListService) ConsumeFlash(ctx context.Context, sessionID string) ([]session.Flash, error) {
	var flash []session.Flash
	err := s.view(ctx, sessionID, func(state *session.State) error {
		flash = state.TakeFlash()
		return nil
	})
	if err != nil {
		s.logFailure(ctx, "ConsumeFlash", sessionID, err)
		return nil, err
	}
	return flash, nil
}

// mutate runs fn against a copy of the session state and saves the copy.
// Nothing is saved when fn fails.
func (s *TodoListService) mutate(ctx context.Context, sessionID string, fn func(*session.State) error) error {
	rc := appctx.New(ctx)

	prev, err := s.sessionProvider(sessionID).Get(rc)
	if err != nil {
		return err
	}

	next := prev.Clone()
	if err := fn(next); err != nil {
		return err
	}

	return s.commit(ctx, rc, sessionID, prev, next)
}

// view runs fn against a copy of the session state. The copy is saved only
// when fn consumed flash messages.
func (s *TodoListService) view(ctx context.Context, sessionID string, fn func(*session.State) error) error {
	rc := appctx.New(ctx)

	prev, err := s.sessionProvider(sessionID).Get(rc)
	if err != nil {
		return err
	}

	next := prev.Clone()
	if err := fn(next); err != nil {
		return err
	}
	if len(prev.Flash) == len(next.Flash) {
		return nil
	}

	return s.commit(ctx, rc, sessionID, prev, next)
}

func (s *TodoListService) commit(ctx context.Context, rc *appctx.RequestContext, sessionID string, prev, next *session.State) error {
	save := &saveSessionAction{
		store:     s.store,
		sessionID: sessionID,
		next:      next,
		prev:      prev,
	}
	if err := rc.Stage(sessionKey(sessionID), next, save); err != nil {
		return err
	}
	return rc.Commit(ctx)
}

func (s *TodoListService) sessionProvider(sessionID string) *appctx.DataProvider[*session.State] {
	return appctx.NewDataProvider(sessionKey(sessionID), func(ctx context.Context) (*session.State, error) {
		state, err := s.store.Load(ctx, sessionID)
		if err != nil {
			return nil, fmt.Errorf("loading session: %w", err)
		}
		return state, nil
	})
}

// logFailure logs unexpected errors at ERROR. Rejected input is expected
// traffic and only logged at INFO.
func (s *TodoListService) logFailure(ctx context.Context, operation, sessionID string, err error, attrs ...any) {
	args := append([]any{
		slog.String("operation", operation),
		logging.Session(sessionID),
		slog.Any("error", err),
	}, attrs...)
	if domain.IsUserError(err) {
		s.logger.InfoContext(ctx, "request rejected", args...)
		return
	}
	s.logger.ErrorContext(ctx, "operation failed", args...)
}

func sessionKey(id string) string {
	return "session:" + id
}

func summarize(l *todolist.TodoList) ports.ListSummary {
	return ports.ListSummary{
		ID:        l.ID,
		Title:     l.Title,
		Size:      l.Size(),
		Remaining: l.Remaining(),
		Done:      l.IsDone(),
	}
}

// saveSessionAction writes next on commit and restores prev on rollback.
type saveSessionAction struct {
	store     ports.SessionStore
	sessionID string
	next      *session.State
	prev      *session.State
}

func (a *saveSessionAction) Execute(ctx context.Context) error {
	return a.store.Save(ctx, a.sessionID, a.next)
}

func (a *saveSessionAction) Rollback(ctx context.Context) error {
	return a.store.Save(ctx, a.sessionID, a.prev)
}

func (a *saveSessionAction) Description() string {
	return "save session"
}
