package todolist

import (
	"errors"
	"fmt"

	"github.com/jsamuelsen11/go-todos/internal/domain"
)

// Collection is the ordered set of lists owned by one session. Titles are
// unique within a collection.
type Collection struct {
	lists []*TodoList
}

// NewCollection returns a collection holding lists in the given order.
func NewCollection(lists ...*TodoList) *Collection {
	return &Collection{lists: lists}
}

// Create validates title and appends a new empty list with the next id.
// Every applicable failure is returned, joined: a *domain.ValidationError for
// length and a *domain.DuplicateTitleError when a sibling has the same title.
// The collection is unchanged on error.
func (c *Collection) Create(title string) (*TodoList, error) {
	trimmed, err := c.checkTitle(title, 0)
	if err != nil {
		return nil, err
	}

	var maxID int64
	for _, l := range c.lists {
		maxID = max(maxID, l.ID)
	}
	list := &TodoList{ID: maxID + 1, Title: trimmed}
	c.lists = append(c.lists, list)
	return list, nil
}

// Find returns the list with the given id.
func (c *Collection) Find(id int64) (*TodoList, error) {
	for _, l := range c.lists {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, fmt.Errorf("list %d: %w", id, domain.ErrNotFound)
}

// Rename sets the title of the list with the given id. The uniqueness check
// skips the list itself, so renaming a list to its current title succeeds.
func (c *Collection) Rename(id int64, title string) (*TodoList, error) {
	list, err := c.Find(id)
	if err != nil {
		return nil, err
	}

	trimmed, err := c.checkTitle(title, id)
	if err != nil {
		return nil, err
	}
	list.Title = trimmed
	return list, nil
}

// Destroy removes the list with the given id along with its todos.
func (c *Collection) Destroy(id int64) error {
	for i, l := range c.lists {
		if l.ID == id {
			c.lists = append(c.lists[:i], c.lists[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("list %d: %w", id, domain.ErrNotFound)
}

// All returns the lists in creation order. The slice is a copy.
func (c *Collection) All() []*TodoList {
	out := make([]*TodoList, len(c.lists))
	copy(out, c.lists)
	return out
}

// Len returns the number of lists.
func (c *Collection) Len() int { return len(c.lists) }

// TitleTaken reports whether a list other than exceptID already uses title.
// Comparison is exact after trimming.
func (c *Collection) TitleTaken(title string, exceptID int64) bool {
	title = domain.NormalizeTitle(title)
	for _, l := range c.lists {
		if l.ID != exceptID && l.Title == title {
			return true
		}
	}
	return false
}

func (c *Collection) checkTitle(title string, exceptID int64) (string, error) {
	trimmed, verr := ValidateTitle(title)

	var errs []error
	if verr != nil {
		errs = append(errs, verr)
	}
	if trimmed != "" && c.TitleTaken(trimmed, exceptID) {
		errs = append(errs, &domain.DuplicateTitleError{Title: trimmed, Message: MsgTitleUnique})
	}
	if len(errs) > 0 {
		return "", errors.Join(errs...)
	}
	return trimmed, nil
}
