package app

import (
	"fmt"

	"go.uber.org/zap"

	"tableflip.dev/dayboard/pkg/board"
	"tableflip.dev/dayboard/pkg/bucket"
	"tableflip.dev/dayboard/pkg/task"
)

// Check marks a habit done for today and extends its streak. Checking an
// already-checked habit is a no-op.
func (s *Service) Check(id string) error {
	h, ok := s.Board.Habit(id)
	if !ok {
		return s.wrongKind(id, ErrNotHabit)
	}
	if !h.Check() {
		return nil
	}
	return s.save()
}

// Uncheck clears a habit's daily check. The streak is left unchanged; there
// is no transition that decrements it.
func (s *Service) Uncheck(id string) error {
	h, ok := s.Board.Habit(id)
	if !ok {
		return s.wrongKind(id, ErrNotHabit)
	}
	if !h.Uncheck() {
		return nil
	}
	return s.save()
}

// Complete finishes a reminder or todo.
//
// Completing a reminder converts it into a completed todo dated today with
// origin=reminder, carrying the id; the reminder instance ceases to exist.
// Completing a todo moves it to the completed view, whatever its origin.
func (s *Service) Complete(id string) error {
	if r, ok := s.Board.Reminder(id); ok {
		if r.Status != task.StatusPending {
			return nil
		}
		converted := r.CompleteAsTodo(task.FormatDate(s.now()))
		if err := s.replaceWithTodo(id, converted, board.ViewCompleted); err != nil {
			return err
		}
		if s.Log != nil {
			s.Log.Debug("reminder completed as todo", zap.String("id", id))
		}
		return s.save()
	}

	if t, ok := s.Board.Todo(id); ok {
		if t.Status == task.StatusCompleted {
			return nil
		}
		t.Status = task.StatusCompleted
		if err := s.Board.MoveToEnd(id, board.ViewCompleted); err != nil {
			return err
		}
		return s.save()
	}

	return s.wrongKind(id, ErrNotCompletable)
}

// Uncomplete reopens a completed todo. A todo that originated as a reminder
// converts back into a pending reminder with the same id; a direct todo
// returns to To Do and is re-resolved into its bucket, relocating only when
// the resolved bucket differs from its current container.
func (s *Service) Uncomplete(id string) error {
	t, ok := s.Board.Todo(id)
	if !ok {
		if _, isHabit := s.Board.Habit(id); isHabit {
			return ErrNotCompletable
		}
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if t.Origin == task.OriginReminder {
		restored := t.RevertToReminder()
		if err := s.Board.Remove(id); err != nil {
			return err
		}
		if err := s.Board.AddReminder(restored, board.ViewReminders); err != nil {
			return err
		}
		return s.save()
	}

	t.Status = task.StatusToDo
	if day, err := task.ParseDate(t.Date); err == nil {
		if v, ok := board.ViewForBucket(bucket.Resolve(day, s.now())); ok {
			if current, _ := s.Board.ViewOf(id); current != v {
				if err := s.Board.MoveToEnd(id, v); err != nil {
					return err
				}
			}
		}
	}
	return s.save()
}

// Delete soft-deletes any card: its status becomes Deleted and it moves to
// the trash view, excluded from active counts and notification matching but
// still enumerable until a destructive clear.
func (s *Service) Delete(id string) error {
	switch {
	case s.markDeleted(id):
		if err := s.Board.MoveToEnd(id, board.ViewTrash); err != nil {
			return err
		}
		return s.save()
	default:
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
}

func (s *Service) markDeleted(id string) bool {
	if h, ok := s.Board.Habit(id); ok {
		h.Status = task.StatusDeleted
		return true
	}
	if r, ok := s.Board.Reminder(id); ok {
		r.Status = task.StatusDeleted
		return true
	}
	if t, ok := s.Board.Todo(id); ok {
		t.Status = task.StatusDeleted
		return true
	}
	return false
}

// replaceWithTodo atomically swaps the card with the given id for a todo in
// the target view, keeping the id unique across the board.
func (s *Service) replaceWithTodo(id string, t *task.Todo, v board.View) error {
	if err := s.Board.Remove(id); err != nil {
		return err
	}
	return s.Board.AddTodo(t, v)
}

func (s *Service) wrongKind(id string, kindErr error) error {
	if _, ok := s.Board.Kind(id); ok {
		return kindErr
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}
