// Package app implements the card lifecycle engine: status and variant
// transitions, edits, deletion, comments, and manual reordering. It wraps
// the board and persistence so CLIs and UIs can share logic.
//
// Every mutation is synchronous and either fully applies or fully no-ops;
// the snapshot saved after a mutation always reflects its completed effect.
package app

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/dayboard/pkg/board"
	"tableflip.dev/dayboard/pkg/notify"
	"tableflip.dev/dayboard/pkg/store"
	"tableflip.dev/dayboard/pkg/task"
)

var (
	// ErrNotFound indicates no card carries the given id.
	ErrNotFound = errors.New("app: card not found")

	// ErrNotHabit indicates a habit-only transition on another variant.
	ErrNotHabit = errors.New("app: card is not a habit")

	// ErrNotCompletable indicates complete/uncomplete on a habit, which is
	// checked instead.
	ErrNotCompletable = errors.New("app: habits are checked, not completed")

	// ErrDateUnplaceable indicates a todo date outside every active bucket.
	ErrDateUnplaceable = errors.New("app: date falls outside the planning window")
)

// Service is the lifecycle engine over one board.
type Service struct {
	Board       *board.Board
	Persistence store.Persistence
	Log         *zap.Logger

	// Now is the clock, overridable for tests. Defaults to time.Now.
	Now func() time.Time
}

// New restores the board from persistence and wraps it in a service.
func New(p store.Persistence, log *zap.Logger) (*Service, error) {
	if p == nil {
		return nil, errors.New("app: no persistence configured")
	}
	b, err := p.Restore()
	if err != nil {
		return nil, fmt.Errorf("app: restore board: %w", err)
	}
	return &Service{Board: b, Persistence: p, Log: log}, nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// save persists the whole board. Called after every completed mutation.
func (s *Service) save() error {
	if s.Persistence == nil {
		return errors.New("app: no persistence configured")
	}
	if err := s.Persistence.Save(s.Board); err != nil {
		return fmt.Errorf("app: save: %w", err)
	}
	return nil
}

// Comment appends a note to a card. Empty or whitespace-only input is a
// no-op, not an error.
func (s *Service) Comment(id, text string) error {
	core, err := s.CoreOf(id)
	if err != nil {
		return err
	}
	if !core.AddComment(text) {
		return nil
	}
	return s.save()
}

// Move relocates a card before refID in the given view (or to its end when
// refID is empty) and persists the new traversal order.
func (s *Service) Move(id, refID string, v board.View) error {
	if err := s.Board.MoveBefore(id, refID, v); err != nil {
		return err
	}
	return s.save()
}

// Drop relocates a card to the position a pointer drop resolves to, given
// the rendered boxes of the target view's remaining cards (the dragged card
// excluded) in traversal order, and persists the order.
func (s *Service) Drop(id string, v board.View, p board.Point, boxes []board.Box) error {
	index := board.DropIndex(v, p, boxes)
	if err := s.Board.InsertAt(id, v, index); err != nil {
		return err
	}
	return s.save()
}

// Stats reports the active counts for a planning view.
func (s *Service) Stats(v board.View) board.Stats {
	return s.Board.StatsFor(v, s.now())
}

// PendingReminders returns the reminders the notification collaborator
// matches against the clock.
func (s *Service) PendingReminders() []*task.Reminder {
	var out []*task.Reminder
	for _, r := range s.Board.RemindersIn(board.ViewReminders) {
		if r.Status == task.StatusPending {
			out = append(out, r)
		}
	}
	return out
}

// UpcomingReminders returns the pending reminders within lead of their
// moment right now.
func (s *Service) UpcomingReminders(lead time.Duration) []notify.Upcoming {
	return notify.UpcomingReminders(s.PendingReminders(), s.now(), lead)
}

// CoreOf returns the shared card fields for any variant holding the id.
func (s *Service) CoreOf(id string) (*task.Core, error) {
	if h, ok := s.Board.Habit(id); ok {
		return &h.Core, nil
	}
	if r, ok := s.Board.Reminder(id); ok {
		return &r.Core, nil
	}
	if t, ok := s.Board.Todo(id); ok {
		return &t.Core, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}
