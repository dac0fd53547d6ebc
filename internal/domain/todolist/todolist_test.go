package todolist

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/go-todos/internal/domain"
	"github.com/jsamuelsen11/go-todos/internal/domain/todo"
)

func mustTodo(t *testing.T, title string) *todo.Todo {
	t.Helper()
	td, err := todo.New(title)
	if err != nil {
		t.Fatalf("todo.New(%q) error = %v", title, err)
	}
	return td
}

func TestTodoList_AddAssignsSequentialIDs(t *testing.T) {
	t.Parallel()

	list := Restore(1, "Work", nil)
	for i, title := range []string{"Email", "Call", "Review"} {
		got := list.Add(mustTodo(t, title))
		if want := int64(i + 1); got.ID != want {
			t.Errorf("Add(%q).ID = %d, want %d", title, got.ID, want)
		}
	}
	if list.Size() != 3 {
		t.Errorf("Size() = %d, want 3", list.Size())
	}
}

func TestTodoList_AddAfterRemoveNeverReusesLiveID(t *testing.T) {
	t.Parallel()

	list := Restore(1, "Work", nil)
	list.Add(mustTodo(t, "a"))
	list.Add(mustTodo(t, "b"))
	list.Add(mustTodo(t, "c"))

	if err := list.Remove(2); err != nil {
		t.Fatalf("Remove(2) error = %v", err)
	}
	if got := list.Add(mustTodo(t, "d")); got.ID != 4 {
		t.Errorf("Add after removing middle ID = %d, want 4", got.ID)
	}

	seen := map[int64]bool{}
	for _, td := range list.Todos() {
		if seen[td.ID] {
			t.Errorf("duplicate todo id %d", td.ID)
		}
		seen[td.ID] = true
	}
}

func TestTodoList_AddStartsAfterRestoredMax(t *testing.T) {
	t.Parallel()

	list := Restore(1, "Work", []*todo.Todo{
		todo.Restore(7, "x", false),
		todo.Restore(3, "y", true),
	})
	if got := list.Add(mustTodo(t, "z")); got.ID != 8 {
		t.Errorf("Add().ID = %d, want 8", got.ID)
	}
}

func TestTodoList_FindByID(t *testing.T) {
	t.Parallel()

	list := Restore(1, "Work", nil)
	added := list.Add(mustTodo(t, "Email"))

	got, err := list.FindByID(added.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got != added {
		t.Errorf("FindByID() = %+v, want %+v", got, added)
	}

	_, err = list.FindByID(99)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("FindByID(99) error = %v, want ErrNotFound", err)
	}
}

func TestTodoList_RemoveMissing(t *testing.T) {
	t.Parallel()

	list := Restore(1, "Work", nil)
	list.Add(mustTodo(t, "Email"))

	err := list.Remove(42)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Remove(42) error = %v, want ErrNotFound", err)
	}
	if list.Size() != 1 {
		t.Errorf("Size() = %d, want 1 (unchanged)", list.Size())
	}
}

func TestTodoList_MarkAllDone(t *testing.T) {
	t.Parallel()

	list := Restore(1, "Work", []*todo.Todo{
		todo.Restore(1, "a", false),
		todo.Restore(2, "b", true),
		todo.Restore(3, "c", false),
	})
	list.MarkAllDone()

	for _, td := range list.Todos() {
		if !td.IsDone() {
			t.Errorf("todo %d Done = false after MarkAllDone", td.ID)
		}
	}
	if list.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", list.Remaining())
	}
}

func TestTodoList_IsDone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		todos []*todo.Todo
		want  bool
	}{
		{
			name:  "empty list is not done",
			todos: nil,
			want:  false,
		},
		{
			name:  "one undone",
			todos: []*todo.Todo{todo.Restore(1, "a", false)},
			want:  false,
		},
		{
			name:  "mixed",
			todos: []*todo.Todo{todo.Restore(1, "a", true), todo.Restore(2, "b", false)},
			want:  false,
		},
		{
			name:  "all done",
			todos: []*todo.Todo{todo.Restore(1, "a", true), todo.Restore(2, "b", true)},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			list := Restore(1, "Work", tt.todos)
			if got := list.IsDone(); got != tt.want {
				t.Errorf("IsDone() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTodoList_TodosIsCopy(t *testing.T) {
	t.Parallel()

	list := Restore(1, "Work", nil)
	list.Add(mustTodo(t, "a"))

	got := list.Todos()
	got[0] = todo.Restore(9, "intruder", false)

	if list.Todos()[0].Title != "a" {
		t.Errorf("Todos() exposes internal slice, got %+v", list.Todos()[0])
	}
}

func TestTodoList_Clone(t *testing.T) {
	t.Parallel()

	list := Restore(1, "Work", []*todo.Todo{todo.Restore(1, "a", false)})
	c := list.Clone()
	c.MarkAllDone()
	c.Title = "Other"

	if list.Title != "Work" || list.Todos()[0].Done {
		t.Errorf("original mutated through clone: title=%q done=%v", list.Title, list.Todos()[0].Done)
	}
}
