package store

import (
	"time"

	"go.uber.org/zap"

	"tableflip.dev/dayboard/pkg/board"
	"tableflip.dev/dayboard/pkg/bucket"
	"tableflip.dev/dayboard/pkg/task"
	"tableflip.dev/dayboard/pkg/timeutil"
)

// Snapshot is the single persisted record: every live card grouped by
// variant, in view traversal order, plus the calendar date of the save. It
// round-trips the whole board; there is no incremental write.
type Snapshot struct {
	Habits        []*task.Habit    `json:"habits"`
	Reminders     []*task.Reminder `json:"reminders"`
	Todos         []*task.Todo     `json:"todos"`
	LastResetDate string           `json:"lastResetDate"`
}

// BuildSnapshot serializes the board. Views are walked in a fixed order and
// each view in its current traversal order, so manual reordering survives
// the round trip without a stored position field.
func BuildSnapshot(b *board.Board, now time.Time) *Snapshot {
	s := &Snapshot{LastResetDate: task.FormatDate(now)}
	for _, v := range board.AllViews() {
		s.Habits = append(s.Habits, b.HabitsIn(v)...)
		s.Reminders = append(s.Reminders, b.RemindersIn(v)...)
		s.Todos = append(s.Todos, b.TodosIn(v)...)
	}
	return s
}

// Restore reconstructs a board from the snapshot.
//
// When the stored reset date is not today every habit's checked flag is
// cleared; streaks are preserved (day rollover is a display reset). Todos
// are re-resolved against today's buckets; a todo whose date falls outside
// every active view is dropped from the restored state and will not survive
// the next save.
func (s *Snapshot) Restore(now time.Time, log *zap.Logger) *board.Board {
	b := board.New()
	sameDay := s.sameResetDay(now)

	for _, h := range s.Habits {
		if h == nil || h.ID == "" {
			continue
		}
		if !sameDay {
			h.Checked = false
		}
		v := board.ViewHabits
		if h.Status == task.StatusDeleted {
			v = board.ViewTrash
		}
		_ = b.AddHabit(h, v)
	}

	for _, r := range s.Reminders {
		if r == nil || r.ID == "" {
			continue
		}
		v := board.ViewReminders
		if r.Status == task.StatusDeleted {
			v = board.ViewTrash
		}
		_ = b.AddReminder(r, v)
	}

	for _, t := range s.Todos {
		if t == nil || t.ID == "" {
			continue
		}
		v, ok := placeTodo(t, now)
		if !ok {
			if log != nil {
				log.Warn("dropping todo outside the planning window",
					zap.String("id", t.ID),
					zap.String("title", t.Title),
					zap.String("date", t.Date))
			}
			continue
		}
		_ = b.AddTodo(t, v)
	}

	return b
}

func (s *Snapshot) sameResetDay(now time.Time) bool {
	stored, err := task.ParseDate(s.LastResetDate)
	if err != nil {
		return false
	}
	return timeutil.SameDay(stored, now)
}

func placeTodo(t *task.Todo, now time.Time) (board.View, bool) {
	switch t.Status {
	case task.StatusDeleted:
		return board.ViewTrash, true
	case task.StatusCompleted:
		return board.ViewCompleted, true
	}
	day, err := task.ParseDate(t.Date)
	if err != nil {
		return "", false
	}
	return board.ViewForBucket(bucket.Resolve(day, now))
}
