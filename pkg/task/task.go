// Package task defines the three activity variants tracked by dayboard:
// recurring habits, time-bound reminders, and dated todos.
//
// Each variant carries the shared card fields through Core and adds only the
// fields it owns. A reminder can become a todo (and back) without losing its
// identity; conversions build a fresh variant value around the same Core so
// an id never refers to two shapes at once.
package task

import (
	"strings"
	"time"
)

// Kind identifies an activity variant.
type Kind string

const (
	// KindHabit is a recurring activity with a streak and a daily check.
	KindHabit Kind = "habit"

	// KindReminder is a time-bound activity awaiting its moment.
	KindReminder Kind = "reminder"

	// KindTodo is a dated activity placed into a planning bucket.
	KindTodo Kind = "todo"
)

// AllKinds returns the supported activity kinds.
func AllKinds() []Kind {
	return []Kind{KindHabit, KindReminder, KindTodo}
}

// ParseKind converts a string to a Kind, case-insensitively.
func ParseKind(raw string) (Kind, bool) {
	k := Kind(strings.ToLower(strings.TrimSpace(raw)))
	for _, candidate := range AllKinds() {
		if candidate == k {
			return candidate, true
		}
	}
	return "", false
}

// Status is the lifecycle state of an activity.
type Status string

const (
	// StatusActive marks a habit that has not been deleted.
	StatusActive Status = "Active"

	// StatusPending marks a reminder whose moment has not passed.
	StatusPending Status = "Pending"

	// StatusToDo marks an open todo.
	StatusToDo Status = "To Do"

	// StatusCompleted marks a finished reminder or todo.
	StatusCompleted Status = "Completed"

	// StatusDeleted is the terminal soft-delete state. Deleted activities
	// stay enumerable in the trash until a destructive clear.
	StatusDeleted Status = "Deleted"
)

// Origin records whether a todo was created directly or converted from a
// completed reminder. It decides what un-completing the todo restores.
type Origin string

const (
	// OriginTodo is a todo created directly.
	OriginTodo Origin = "todo"

	// OriginReminder is a todo produced by completing a reminder.
	OriginReminder Origin = "reminder"
)

// LayoutISO is the calendar date wire format used throughout the snapshot.
const LayoutISO = "2006-01-02"

// ParseDate parses a snapshot calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(LayoutISO, strings.TrimSpace(s), time.Local)
}

// FormatDate renders t as a snapshot calendar date.
func FormatDate(t time.Time) string {
	return t.Format(LayoutISO)
}

// Core holds the fields every variant carries. Lists and tags are opaque
// names referencing an external catalog; the engine never validates them.
type Core struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Time        string   `json:"time,omitempty"`
	Lists       []string `json:"lists"`
	Tags        []string `json:"tags"`
	Comments    []string `json:"comments"`
}

// AddComment appends a note to the comment sequence. Comments are append
// only; empty or whitespace-only input is ignored and reported as false.
func (c *Core) AddComment(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	c.Comments = append(c.Comments, text)
	return true
}

// Habit is a recurring activity. It has no date; it lives permanently in the
// habits view until deleted.
type Habit struct {
	Core
	Streak  int    `json:"streak"`
	Checked bool   `json:"checked"`
	Status  Status `json:"status,omitempty"`
}

// NewHabit builds a habit around the given core, generating an id when the
// core does not supply one.
func NewHabit(c Core) *Habit {
	if c.ID == "" {
		c.ID = NewID(KindHabit)
	}
	return &Habit{Core: c, Status: StatusActive}
}

// Check marks today's completion and extends the streak. Checking an
// already-checked habit is a no-op; the streak never decrements.
func (h *Habit) Check() bool {
	if h.Checked {
		return false
	}
	h.Checked = true
	h.Streak++
	return true
}

// Uncheck clears today's completion. The streak is left untouched.
func (h *Habit) Uncheck() bool {
	if !h.Checked {
		return false
	}
	h.Checked = false
	return true
}

// Reminder is a time-bound activity matched against the clock for upcoming
// notification detection while Pending.
type Reminder struct {
	Core
	Date   string `json:"date"`
	Status Status `json:"status"`
}

// NewReminder builds a pending reminder around the given core.
func NewReminder(c Core, date string) *Reminder {
	if c.ID == "" {
		c.ID = NewID(KindReminder)
	}
	return &Reminder{Core: c, Date: date, Status: StatusPending}
}

// CompleteAsTodo converts the reminder into a completed todo dated today.
// The core (and with it the id and comments) carries over; the caller must
// drop the reminder so the id refers to exactly one entity.
func (r *Reminder) CompleteAsTodo(today string) *Todo {
	return &Todo{
		Core:   r.Core,
		Date:   today,
		Status: StatusCompleted,
		Origin: OriginReminder,
	}
}

// Todo is a dated activity assigned to a planning bucket.
type Todo struct {
	Core
	Date   string `json:"date"`
	Status Status `json:"status"`
	Origin Origin `json:"origin"`
}

// NewTodo builds an open todo around the given core.
func NewTodo(c Core, date string) *Todo {
	if c.ID == "" {
		c.ID = NewID(KindTodo)
	}
	return &Todo{Core: c, Date: date, Status: StatusToDo, Origin: OriginTodo}
}

// RevertToReminder undoes a reminder-completion conversion, restoring a
// pending reminder with the same core. The inverse of CompleteAsTodo.
func (t *Todo) RevertToReminder() *Reminder {
	return &Reminder{Core: t.Core, Date: t.Date, Status: StatusPending}
}
