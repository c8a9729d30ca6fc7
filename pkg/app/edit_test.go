package app

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"tableflip.dev/dayboard/pkg/board"
	"tableflip.dev/dayboard/pkg/form"
	"tableflip.dev/dayboard/pkg/task"
)

func TestEditInPlaceUpdatesFields(t *testing.T) {
	s := newTestService(t)
	id := mustCreate(t, s, form.Input{Kind: "todo", Title: "pay rent", Date: dateOffset(0)})
	if err := s.Comment(id, "first of the month"); err != nil {
		t.Fatalf("Comment: %v", err)
	}

	err := s.Edit(id, form.Input{
		Kind:        "todo",
		Title:       "pay rent early",
		Description: "transfer before noon",
		Date:        dateOffset(0),
		Tags:        []string{"home"},
	})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}

	todo, _ := s.Board.Todo(id)
	if todo.Title != "pay rent early" {
		t.Fatalf("title = %q", todo.Title)
	}
	if todo.Description != "transfer before noon" {
		t.Fatalf("description = %q", todo.Description)
	}
	if len(todo.Comments) != 1 || todo.Comments[0] != "first of the month" {
		t.Fatalf("comments lost on edit: %v", todo.Comments)
	}
	if todo.Status != task.StatusToDo {
		t.Fatalf("status = %q", todo.Status)
	}
}

func TestEditRelocatesTodoAcrossBuckets(t *testing.T) {
	s := newTestService(t)
	id := mustCreate(t, s, form.Input{Kind: "todo", Title: "errand", Date: dateOffset(0)})

	if err := s.Edit(id, form.Input{Kind: "todo", Title: "errand", Date: dateOffset(5)}); err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if v, _ := s.Board.ViewOf(id); v != board.ViewWeek {
		t.Fatalf("edited todo in %q, want week", v)
	}

	// The relocation survives a reload.
	reloaded, err := New(s.Persistence, zap.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if v, _ := reloaded.Board.ViewOf(id); v != board.ViewWeek {
		t.Fatalf("after reload todo in %q, want week", v)
	}
}

func TestEditUnresolvableDateStaysPut(t *testing.T) {
	s := newTestService(t)
	id := mustCreate(t, s, form.Input{Kind: "todo", Title: "errand", Date: dateOffset(0)})

	// The edit applies but the card keeps its container.
	if err := s.Edit(id, form.Input{Kind: "todo", Title: "errand later", Date: dateOffset(30)}); err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if v, _ := s.Board.ViewOf(id); v != board.ViewToday {
		t.Fatalf("todo moved to %q on unresolvable date", v)
	}
	todo, _ := s.Board.Todo(id)
	if todo.Title != "errand later" {
		t.Fatalf("field edit should still apply, title = %q", todo.Title)
	}
}

func TestEditConvertsTodoToReminder(t *testing.T) {
	s := newTestService(t)
	id := mustCreate(t, s, form.Input{Kind: "todo", Title: "call landlord", Date: dateOffset(0)})
	if err := s.Comment(id, "ask about the lease"); err != nil {
		t.Fatalf("Comment: %v", err)
	}

	err := s.Edit(id, form.Input{Kind: "reminder", Title: "call landlord", Date: dateOffset(2), Time: "10:00"})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}

	if _, ok := s.Board.Todo(id); ok {
		t.Fatalf("todo instance should cease to exist")
	}
	r, ok := s.Board.Reminder(id)
	if !ok {
		t.Fatalf("converted reminder missing")
	}
	if r.Status != task.StatusPending {
		t.Fatalf("converted status = %q", r.Status)
	}
	if len(r.Comments) != 1 || r.Comments[0] != "ask about the lease" {
		t.Fatalf("comments lost in conversion: %v", r.Comments)
	}
	if v, _ := s.Board.ViewOf(id); v != board.ViewReminders {
		t.Fatalf("converted reminder in %q", v)
	}
}

func TestEditConvertsReminderToHabit(t *testing.T) {
	s := newTestService(t)
	id := mustCreate(t, s, form.Input{Kind: "reminder", Title: "water plants", Date: dateOffset(1), Time: "08:00"})

	if err := s.Edit(id, form.Input{Kind: "habit", Title: "water plants"}); err != nil {
		t.Fatalf("Edit: %v", err)
	}

	h, ok := s.Board.Habit(id)
	if !ok {
		t.Fatalf("converted habit missing")
	}
	if h.Streak != 0 || h.Checked {
		t.Fatalf("converted habit should start fresh: streak=%d checked=%v", h.Streak, h.Checked)
	}
	if v, _ := s.Board.ViewOf(id); v != board.ViewHabits {
		t.Fatalf("converted habit in %q", v)
	}
}

func TestEditConversionToUnplaceableTodoRejected(t *testing.T) {
	s := newTestService(t)
	id := mustCreate(t, s, form.Input{Kind: "reminder", Title: "standup", Date: dateOffset(1), Time: "09:30"})

	err := s.Edit(id, form.Input{Kind: "todo", Title: "standup", Date: dateOffset(20)})
	if !errors.Is(err, ErrDateUnplaceable) {
		t.Fatalf("expected ErrDateUnplaceable, got %v", err)
	}

	// Full no-op: the reminder is untouched.
	r, ok := s.Board.Reminder(id)
	if !ok {
		t.Fatalf("reminder gone after rejected conversion")
	}
	if r.Date != dateOffset(1) {
		t.Fatalf("reminder mutated: %+v", r)
	}
	if v, _ := s.Board.ViewOf(id); v != board.ViewReminders {
		t.Fatalf("reminder in %q after rejected conversion", v)
	}
}

func TestEditUnknownCard(t *testing.T) {
	s := newTestService(t)
	err := s.Edit("todo-0-missing", form.Input{Kind: "todo", Title: "x", Date: dateOffset(0)})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
