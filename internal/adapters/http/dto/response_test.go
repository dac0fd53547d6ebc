package dto_test

import (
	"testing"

	"github.com/jsamuelsen11/go-todos/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-todos/internal/domain/session"
	"github.com/jsamuelsen11/go-todos/internal/domain/todo"
	"github.com/jsamuelsen11/go-todos/internal/ports"
)

func TestNewListsView(t *testing.T) {
	t.Parallel()

	page := &ports.ListsPage{
		Lists: []ports.ListSummary{
			{ID: 2, Title: "Home", Size: 3, Remaining: 1},
			{ID: 1, Title: "Work", Size: 1, Remaining: 0, Done: true},
		},
		Flash: []session.Flash{{Kind: session.FlashSuccess, Message: "The todo list has been created."}},
	}

	got := dto.NewListsView(page)

	if got.Title != "Todo Lists" {
		t.Errorf("Title = %q, want %q", got.Title, "Todo Lists")
	}
	if len(got.Lists) != 2 || got.Lists[0].Title != "Home" || !got.Lists[1].Done {
		t.Errorf("Lists = %+v, want order and done flags preserved", got.Lists)
	}
	if len(got.Flash) != 1 || got.Flash[0].Kind != "success" {
		t.Errorf("Flash = %+v, want one success message", got.Flash)
	}
}

func TestNewListsView_Empty(t *testing.T) {
	t.Parallel()

	got := dto.NewListsView(&ports.ListsPage{})
	if got.Lists == nil || len(got.Lists) != 0 {
		t.Errorf("Lists = %v, want empty non-nil slice", got.Lists)
	}
	if got.Flash != nil {
		t.Errorf("Flash = %v, want nil", got.Flash)
	}
}

func TestNewListView(t *testing.T) {
	t.Parallel()

	page := &ports.ListPage{
		List: ports.ListSummary{ID: 4, Title: "Work", Size: 2, Remaining: 1},
		Todos: []todo.Todo{
			{ID: 2, Title: "Call"},
			{ID: 1, Title: "Email", Done: true},
		},
	}

	got := dto.NewListView(page)

	if got.Title != "Work" || got.List.ID != 4 {
		t.Errorf("view = %+v, want title and id from the list", got)
	}
	want := []dto.TodoRow{{ID: 2, Title: "Call"}, {ID: 1, Title: "Email", Done: true}}
	if len(got.Todos) != len(want) {
		t.Fatalf("Todos = %+v, want %+v", got.Todos, want)
	}
	for i := range want {
		if got.Todos[i] != want[i] {
			t.Errorf("Todos[%d] = %+v, want %+v", i, got.Todos[i], want[i])
		}
	}
}
