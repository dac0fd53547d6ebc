package dto

import (
	"fmt"
	"net/http"
)

// Form field names posted by the list and todo forms.
const (
	FieldListTitle = "todoListTitle"
	FieldTodoTitle = "todoTitle"
)

// MaxFormBytes caps a urlencoded form body.
const MaxFormBytes = 64 << 10

// ListForm is the body of the new-list and edit-list forms.
type ListForm struct {
	Title string
}

// TodoForm is the body of the new-todo form.
type TodoForm struct {
	Title string
}

// DecodeListForm reads a ListForm from a urlencoded body. The title is
// returned as submitted; trimming and validation belong to the domain.
func DecodeListForm(w http.ResponseWriter, r *http.Request) (ListForm, error) {
	if err := parseForm(w, r); err != nil {
		return ListForm{}, err
	}
	return ListForm{Title: r.PostForm.Get(FieldListTitle)}, nil
}

// DecodeTodoForm reads a TodoForm from a urlencoded body.
func DecodeTodoForm(w http.ResponseWriter, r *http.Request) (TodoForm, error) {
	if err := parseForm(w, r); err != nil {
		return TodoForm{}, err
	}
	return TodoForm{Title: r.PostForm.Get(FieldTodoTitle)}, nil
}

func parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxFormBytes)
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("parsing form: %w", err)
	}
	return nil
}
