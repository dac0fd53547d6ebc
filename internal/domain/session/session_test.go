package session

import (
	"testing"

	"github.com/jsamuelsen11/go-todos/internal/domain/todo"
)

func TestNewState_Empty(t *testing.T) {
	t.Parallel()

	s := NewState()
	if s.Lists == nil || s.Lists.Len() != 0 {
		t.Fatalf("NewState().Lists = %v, want empty collection", s.Lists)
	}
	if len(s.Flash) != 0 {
		t.Errorf("NewState().Flash = %v, want empty", s.Flash)
	}
}

func TestState_TakeFlashClears(t *testing.T) {
	t.Parallel()

	s := NewState()
	s.AddFlash(FlashSuccess, "one")
	s.AddFlash(FlashError, "two")

	got := s.TakeFlash()
	if len(got) != 2 || got[0].Message != "one" || got[1].Kind != FlashError {
		t.Errorf("TakeFlash() = %+v, want [one two]", got)
	}
	if again := s.TakeFlash(); len(again) != 0 {
		t.Errorf("second TakeFlash() = %+v, want empty", again)
	}
}

func TestState_CloneIsDeep(t *testing.T) {
	t.Parallel()

	orig := NewState()
	list, err := orig.Lists.Create("Work")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	td, _ := todo.New("Email")
	list.Add(td)
	orig.AddFlash(FlashSuccess, "created")

	c := orig.Clone()
	cl, _ := c.Lists.Find(list.ID)
	cl.MarkAllDone()
	cl.Title = "Changed"
	_, _ = c.Lists.Create("Home")
	c.Flash[0].Message = "mutated"

	if orig.Lists.Len() != 1 {
		t.Errorf("original Lists.Len() = %d, want 1", orig.Lists.Len())
	}
	ol, _ := orig.Lists.Find(list.ID)
	if ol.Title != "Work" || ol.IsDone() {
		t.Errorf("original list mutated: title=%q done=%v", ol.Title, ol.IsDone())
	}
	if orig.Flash[0].Message != "created" {
		t.Errorf("original flash mutated: %q", orig.Flash[0].Message)
	}
}
