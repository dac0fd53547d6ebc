// Package session defines the per-visitor state carried between requests: the
// visitor's todo lists and any pending flash messages.
package session

import (
	"github.com/jsamuelsen11/go-todos/internal/domain/todolist"
)

// FlashKind classifies a flash message for display.
type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
	FlashInfo    FlashKind = "info"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Kind    FlashKind
	Message string
}

// State is everything stored for one session.
type State struct {
	Lists *todolist.Collection
	Flash []Flash
}

// NewState returns an empty state.
func NewState() *State {
	return &State{Lists: todolist.NewCollection()}
}

// AddFlash queues a message for the next render.
func (s *State) AddFlash(kind FlashKind, message string) {
	s.Flash = append(s.Flash, Flash{Kind: kind, Message: message})
}

// TakeFlash returns the queued messages and clears the queue.
func (s *State) TakeFlash() []Flash {
	out := s.Flash
	s.Flash = nil
	return out
}

// Clone returns a deep copy, so the original can serve as a rollback snapshot
// while the copy is mutated.
func (s *State) Clone() *State {
	lists := s.Lists.All()
	copied := make([]*todolist.TodoList, len(lists))
	for i, l := range lists {
		copied[i] = l.Clone()
	}

	var flash []Flash
	if len(s.Flash) > 0 {
		flash = make([]Flash, len(s.Flash))
		copy(flash, s.Flash)
	}
	return &State{Lists: todolist.NewCollection(copied...), Flash: flash}
}
