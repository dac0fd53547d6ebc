package ports

import (
	"context"

	"github.com/jsamuelsen11/go-todos/internal/domain/session"
	"github.com/jsamuelsen11/go-todos/internal/domain/todo"
	"github.com/jsamuelsen11/go-todos/internal/domain/todolist"
)

// TodoListService defines the service port for the todo list use cases.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every call is scoped to one session: it loads that session's lists, applies
// at most one mutation, and saves the result.
//
// Mutations return errors.Join of *domain.ValidationError and
// *domain.DuplicateTitleError when the input is rejected, and wrap
// domain.ErrNotFound for unknown list or todo ids.
type TodoListService interface {
	// Lists returns every list in display order and consumes pending flash
	// messages.
	Lists(ctx context.Context, sessionID string) (*ListsPage, error)

	// List returns one list with its todos in display order and consumes
	// pending flash messages.
	// Returns domain.ErrNotFound if the list does not exist.
	List(ctx context.Context, sessionID string, listID int64) (*ListPage, error)

	// CreateList creates a list with the given title.
	CreateList(ctx context.Context, sessionID, title string) (*todolist.TodoList, error)

	// RenameList changes a list's title. Renaming to the current title succeeds.
	RenameList(ctx context.Context, sessionID string, listID int64, title string) (*todolist.TodoList, error)

	// DestroyList removes a list and all of its todos.
	DestroyList(ctx context.Context, sessionID string, listID int64) error

	// AddTodo creates a todo at the end of a list.
	AddTodo(ctx context.Context, sessionID string, listID int64, title string) (*todo.Todo, error)

	// ToggleTodo flips a todo between done and undone.
	ToggleTodo(ctx context.Context, sessionID string, listID, todoID int64) (*todo.Todo, error)

	// CompleteAll marks every todo in a list done.
	CompleteAll(ctx context.Context, sessionID string, listID int64) error

	// ConsumeFlash returns and clears pending flash messages, for pages that
	// render no session data of their own.
	ConsumeFlash(ctx context.Context, sessionID string) ([]session.Flash, error)
}

// ListSummary is one row of the lists page.
type ListSummary struct {
	ID        int64
	Title     string
	Size      int
	Remaining int
	Done      bool
}

// ListsPage holds the data for the lists page.
type ListsPage struct {
	Lists []ListSummary
	Flash []session.Flash
}

// ListPage holds the data for a single list page.
type ListPage struct {
	List  ListSummary
	Todos []todo.Todo
	Flash []session.Flash
}
