// Package todo defines the Todo entity: a single task with a title and a
// done/undone state, owned by exactly one todo list.
package todo

import (
	"github.com/jsamuelsen11/go-todos/internal/domain"
)

// Title messages shown when a todo title is out of bounds. The original form
// reports both cases with the same sentence.
var titleMessages = domain.TitleMessages{
	Required: "Todo title must be between 1 and 100 characters.",
	TooLong:  "Todo title must be between 1 and 100 characters.",
}

// Todo represents a task item. ID is assigned by the owning list and never
// changes afterwards.
type Todo struct {
	ID    int64
	Title string
	Done  bool
}

// New validates title and returns an undone Todo with no ID. The list assigns
// the ID when the todo is added.
func New(title string) (*Todo, error) {
	trimmed, err := ValidateTitle(title)
	if err != nil {
		return nil, err
	}
	return &Todo{Title: trimmed}, nil
}

// Restore rebuilds a Todo from stored fields without validation.
func Restore(id int64, title string, done bool) *Todo {
	return &Todo{ID: id, Title: title, Done: done}
}

// ValidateTitle trims title and checks its length against the todo rules.
func ValidateTitle(title string) (string, error) {
	return domain.ValidateTitle(title, titleMessages)
}

// MarkDone sets the todo as done. Idempotent.
func (t *Todo) MarkDone() { t.Done = true }

// MarkUndone sets the todo as not done. Idempotent.
func (t *Todo) MarkUndone() { t.Done = false }

// Toggle flips the done state and returns the new state.
func (t *Todo) Toggle() bool {
	t.Done = !t.Done
	return t.Done
}

// IsDone reports whether the todo is done.
func (t *Todo) IsDone() bool { return t.Done }

// Clone returns an independent copy.
func (t *Todo) Clone() *Todo {
	c := *t
	return &c
}
