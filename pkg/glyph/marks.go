package glyph

import (
	"fmt"

	"tableflip.dev/dayboard/pkg/task"
)

// Glyph pairs a terminal symbol with the card state it marks.
type Glyph struct {
	Symbol  string
	Meaning string
}

const (
	escape     = "\x1b"
	resetCode  = 0
	boldCode   = 1
	italicCode = 3
	strikeCode = 9
)

// Strike renders in with terminal strikethrough escapes.
func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

// Bold renders in with terminal bold escapes.
func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func (g Glyph) String() string {
	return g.Symbol
}

var (
	habit     = Glyph{Symbol: "↻", Meaning: "habit"}
	checked   = Glyph{Symbol: "✔", Meaning: "habit checked today"}
	pending   = Glyph{Symbol: "◷", Meaning: "reminder pending"}
	open      = Glyph{Symbol: "●", Meaning: "todo open"}
	completed = Glyph{Symbol: "✘", Meaning: "completed"}
	deleted   = Glyph{Symbol: "⦵", Meaning: "deleted"}
)

// ForHabit returns the mark for a habit's current state.
func ForHabit(h *task.Habit) Glyph {
	switch {
	case h.Status == task.StatusDeleted:
		return deleted
	case h.Checked:
		return checked
	default:
		return habit
	}
}

// ForReminder returns the mark for a reminder's current state.
func ForReminder(r *task.Reminder) Glyph {
	switch r.Status {
	case task.StatusDeleted:
		return deleted
	case task.StatusCompleted:
		return completed
	default:
		return pending
	}
}

// ForTodo returns the mark for a todo's current state.
func ForTodo(t *task.Todo) Glyph {
	switch t.Status {
	case task.StatusDeleted:
		return deleted
	case task.StatusCompleted:
		return completed
	default:
		return open
	}
}

// Legend returns every mark with its meaning, for help output.
func Legend() []Glyph {
	return []Glyph{habit, checked, pending, open, completed, deleted}
}
