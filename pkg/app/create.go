package app

import (
	"fmt"

	"tableflip.dev/dayboard/pkg/board"
	"tableflip.dev/dayboard/pkg/bucket"
	"tableflip.dev/dayboard/pkg/form"
	"tableflip.dev/dayboard/pkg/task"
)

// Create builds a new card from validated form input, places it in its
// view, and persists. It returns the generated card id.
//
// A todo dated outside the planning window is rejected before any state
// changes; stale dates only ever arise in storage through the passage of
// time, and those are dropped on load instead.
func (s *Service) Create(in form.Input) (string, error) {
	if err := in.Validate(); err != nil {
		return "", err
	}

	switch in.TargetKind() {
	case task.KindHabit:
		h := task.NewHabit(in.Core(""))
		if err := s.Board.AddHabit(h, board.ViewHabits); err != nil {
			return "", err
		}
		return h.ID, s.save()

	case task.KindReminder:
		r := task.NewReminder(in.Core(""), in.Date)
		if err := s.Board.AddReminder(r, board.ViewReminders); err != nil {
			return "", err
		}
		return r.ID, s.save()

	case task.KindTodo:
		v, err := s.todoView(in.Date)
		if err != nil {
			return "", err
		}
		t := task.NewTodo(in.Core(""), in.Date)
		if err := s.Board.AddTodo(t, v); err != nil {
			return "", err
		}
		return t.ID, s.save()
	}

	return "", fmt.Errorf("app: unsupported kind %q", in.Kind)
}

// todoView resolves a todo date to its bucket view.
func (s *Service) todoView(date string) (board.View, error) {
	day, err := task.ParseDate(date)
	if err != nil {
		return "", fmt.Errorf("app: invalid date %q: %w", date, err)
	}
	v, ok := board.ViewForBucket(bucket.Resolve(day, s.now()))
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrDateUnplaceable, date)
	}
	return v, nil
}
