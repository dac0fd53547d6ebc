package todolist

import (
	"cmp"
	"slices"
	"strings"

	"github.com/jsamuelsen11/go-todos/internal/domain/todo"
)

// SortLists returns a new slice with not-done lists first, then by title
// ignoring case. Ties keep their input order. The input is not modified.
func SortLists(lists []*TodoList) []*TodoList {
	out := slices.Clone(lists)
	slices.SortStableFunc(out, func(a, b *TodoList) int {
		return compare(a.IsDone(), b.IsDone(), a.Title, b.Title)
	})
	return out
}

// SortTodos returns the list's todos with undone todos first, then by title
// ignoring case. Ties keep insertion order. The list is not modified.
func SortTodos(list *TodoList) []*todo.Todo {
	out := list.Todos()
	slices.SortStableFunc(out, func(a, b *todo.Todo) int {
		return compare(a.IsDone(), b.IsDone(), a.Title, b.Title)
	})
	return out
}

func compare(aDone, bDone bool, aTitle, bTitle string) int {
	if aDone != bDone {
		if aDone {
			return 1
		}
		return -1
	}
	return cmp.Compare(strings.ToLower(aTitle), strings.ToLower(bTitle))
}
