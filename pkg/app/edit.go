package app

import (
	"fmt"

	"tableflip.dev/dayboard/pkg/board"
	"tableflip.dev/dayboard/pkg/bucket"
	"tableflip.dev/dayboard/pkg/form"
	"tableflip.dev/dayboard/pkg/task"
)

// Edit applies a field-value set to a card. The input's kind is the target
// variant: when it differs from the card's current variant the engine
// converts, building a new entity of the target kind around the same id and
// comments and replacing the old instance. When the kind is unchanged the
// fields are updated in place, and a todo whose edited date resolves to a
// different bucket relocates there.
//
// Validation failures and unplaceable conversion targets reject the edit
// before any state changes; the card stays in its current container.
func (s *Service) Edit(id string, in form.Input) error {
	if err := in.Validate(); err != nil {
		return err
	}

	current, ok := s.Board.Kind(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	target := in.TargetKind()
	if target == current {
		return s.editInPlace(id, in, current)
	}
	return s.convert(id, in, target)
}

func (s *Service) editInPlace(id string, in form.Input, kind task.Kind) error {
	switch kind {
	case task.KindHabit:
		h, _ := s.Board.Habit(id)
		h.Core = coreKeepingComments(in, h.Core)

	case task.KindReminder:
		r, _ := s.Board.Reminder(id)
		r.Core = coreKeepingComments(in, r.Core)
		r.Date = in.Date

	case task.KindTodo:
		t, _ := s.Board.Todo(id)
		t.Core = coreKeepingComments(in, t.Core)
		t.Date = in.Date
		if t.Status == task.StatusToDo {
			s.rebucket(id, t)
		}
	}
	return s.save()
}

// rebucket relocates an open todo when its date resolves to a different
// bucket than the one holding it. An unresolvable date leaves the card
// where it is; edits never orphan.
func (s *Service) rebucket(id string, t *task.Todo) {
	day, err := task.ParseDate(t.Date)
	if err != nil {
		return
	}
	v, ok := board.ViewForBucket(bucket.Resolve(day, s.now()))
	if !ok {
		return
	}
	if current, _ := s.Board.ViewOf(id); current != v {
		_ = s.Board.MoveToEnd(id, v)
	}
}

// convert swaps the card for a new entity of the target kind, reusing the
// id and comments. Streak, status, and origin take the target's defaults.
func (s *Service) convert(id string, in form.Input, target task.Kind) error {
	core, err := s.CoreOf(id)
	if err != nil {
		return err
	}
	next := coreKeepingComments(in, *core)

	switch target {
	case task.KindHabit:
		h := task.NewHabit(next)
		if err := s.Board.Remove(id); err != nil {
			return err
		}
		return s.saveAfter(s.Board.AddHabit(h, board.ViewHabits))

	case task.KindReminder:
		r := task.NewReminder(next, in.Date)
		if err := s.Board.Remove(id); err != nil {
			return err
		}
		return s.saveAfter(s.Board.AddReminder(r, board.ViewReminders))

	case task.KindTodo:
		// Resolve the bucket before touching the board so an unplaceable
		// date is a clean rejection.
		v, err := s.todoView(in.Date)
		if err != nil {
			return err
		}
		t := task.NewTodo(next, in.Date)
		if err := s.Board.Remove(id); err != nil {
			return err
		}
		return s.saveAfter(s.Board.AddTodo(t, v))
	}

	return fmt.Errorf("app: unsupported kind %q", in.Kind)
}

func (s *Service) saveAfter(err error) error {
	if err != nil {
		return err
	}
	return s.save()
}

// coreKeepingComments builds the edited core, preserving the card's id and
// its append-only comment sequence.
func coreKeepingComments(in form.Input, old task.Core) task.Core {
	core := in.Core(old.ID)
	core.Comments = old.Comments
	return core
}
