// Package dto provides the form decoders, HTML view models, and RFC 9457
// Problem Details responses of the inbound HTTP adapter.
package dto

import (
	"github.com/jsamuelsen11/go-todos/internal/domain/session"
	"github.com/jsamuelsen11/go-todos/internal/ports"
)

// FlashView is one flash message as rendered.
type FlashView struct {
	Kind    string
	Message string
}

// Page carries what the layout renders around every view.
type Page struct {
	Title  string
	Flash  []FlashView
	Errors []string
}

// ListRow is one list as shown on the lists page and list header.
type ListRow struct {
	ID        int64
	Title     string
	Size      int
	Remaining int
	Done      bool
}

// TodoRow is one todo as shown on a list page.
type TodoRow struct {
	ID    int64
	Title string
	Done  bool
}

// ListsView is the lists page.
type ListsView struct {
	Page
	Lists []ListRow
}

// ListView is a single list page. TodoTitle refills the new-todo field after
// a rejected submission.
type ListView struct {
	Page
	List      ListRow
	Todos     []TodoRow
	TodoTitle string
}

// ListFormView backs the new-list and edit-list forms. ListID is zero for a
// new list.
type ListFormView struct {
	Page
	ListID    int64
	ListTitle string
}

// ErrorView is the not-found and generic error page.
type ErrorView struct {
	Page
	Status  int
	Message string
}

// NewListsView converts a service page to its view model.
func NewListsView(p *ports.ListsPage) ListsView {
	v := ListsView{
		Page:  Page{Title: "Todo Lists", Flash: ToFlashViews(p.Flash)},
		Lists: make([]ListRow, 0, len(p.Lists)),
	}
	for _, l := range p.Lists {
		v.Lists = append(v.Lists, toListRow(l))
	}
	return v
}

// NewListView converts a service page to its view model.
func NewListView(p *ports.ListPage) ListView {
	v := ListView{
		Page:  Page{Title: p.List.Title, Flash: ToFlashViews(p.Flash)},
		List:  toListRow(p.List),
		Todos: make([]TodoRow, 0, len(p.Todos)),
	}
	for _, t := range p.Todos {
		v.Todos = append(v.Todos, TodoRow{ID: t.ID, Title: t.Title, Done: t.Done})
	}
	return v
}

// ToFlashViews converts session flash messages for rendering.
func ToFlashViews(flash []session.Flash) []FlashView {
	if len(flash) == 0 {
		return nil
	}
	out := make([]FlashView, len(flash))
	for i, f := range flash {
		out[i] = FlashView{Kind: string(f.Kind), Message: f.Message}
	}
	return out
}

func toListRow(s ports.ListSummary) ListRow {
	return ListRow{
		ID:        s.ID,
		Title:     s.Title,
		Size:      s.Size,
		Remaining: s.Remaining,
		Done:      s.Done,
	}
}
