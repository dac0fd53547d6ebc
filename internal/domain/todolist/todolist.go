// Package todolist defines the TodoList aggregate, the per-session Collection
// of lists, and the display orderings for both.
package todolist

import (
	"fmt"

	"github.com/jsamuelsen11/go-todos/internal/domain"
	"github.com/jsamuelsen11/go-todos/internal/domain/todo"
)

// User-facing messages for list title failures.
const (
	MsgTitleRequired = "The list title is required."
	MsgTitleLength   = "List title must be between 1 and 100 characters."
	MsgTitleUnique   = "List title must be unique."
)

var titleMessages = domain.TitleMessages{
	Required: MsgTitleRequired,
	TooLong:  MsgTitleLength,
}

// TodoList is an ordered sequence of todos with a title. The todo order is
// insertion order; use SortTodos for display order.
type TodoList struct {
	ID    int64
	Title string
	todos []*todo.Todo
}

// Restore rebuilds a TodoList from stored fields without validation. The
// todos slice is taken as-is, in insertion order.
func Restore(id int64, title string, todos []*todo.Todo) *TodoList {
	return &TodoList{ID: id, Title: title, todos: todos}
}

// ValidateTitle trims title and checks its length against the list rules.
// Uniqueness is a collection concern, see Collection.Create.
func ValidateTitle(title string) (string, error) {
	return domain.ValidateTitle(title, titleMessages)
}

// Add appends t and assigns it the next id: one more than the largest id in
// the list, or 1 when the list is empty.
func (l *TodoList) Add(t *todo.Todo) *todo.Todo {
	var maxID int64
	for _, existing := range l.todos {
		maxID = max(maxID, existing.ID)
	}
	t.ID = maxID + 1
	l.todos = append(l.todos, t)
	return t
}

// Remove deletes the todo with the given id.
func (l *TodoList) Remove(todoID int64) error {
	for i, t := range l.todos {
		if t.ID == todoID {
			l.todos = append(l.todos[:i], l.todos[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("todo %d in list %d: %w", todoID, l.ID, domain.ErrNotFound)
}

// FindByID returns the todo with the given id.
func (l *TodoList) FindByID(todoID int64) (*todo.Todo, error) {
	for _, t := range l.todos {
		if t.ID == todoID {
			return t, nil
		}
	}
	return nil, fmt.Errorf("todo %d in list %d: %w", todoID, l.ID, domain.ErrNotFound)
}

// MarkAllDone marks every todo in the list done.
func (l *TodoList) MarkAllDone() {
	for _, t := range l.todos {
		t.MarkDone()
	}
}

// IsDone reports whether the list has at least one todo and all of them are
// done. An empty list is not done.
func (l *TodoList) IsDone() bool {
	if len(l.todos) == 0 {
		return false
	}
	for _, t := range l.todos {
		if !t.IsDone() {
			return false
		}
	}
	return true
}

// Size returns the number of todos.
func (l *TodoList) Size() int { return len(l.todos) }

// Remaining returns the number of todos not yet done.
func (l *TodoList) Remaining() int {
	n := 0
	for _, t := range l.todos {
		if !t.IsDone() {
			n++
		}
	}
	return n
}

// Todos returns the todos in insertion order. The slice is a copy; the
// elements are shared with the list.
func (l *TodoList) Todos() []*todo.Todo {
	out := make([]*todo.Todo, len(l.todos))
	copy(out, l.todos)
	return out
}

// Clone returns a deep copy of the list.
func (l *TodoList) Clone() *TodoList {
	todos := make([]*todo.Todo, len(l.todos))
	for i, t := range l.todos {
		todos[i] = t.Clone()
	}
	return &TodoList{ID: l.ID, Title: l.Title, todos: todos}
}
