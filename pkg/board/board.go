package board

import (
	"errors"
	"fmt"

	"tableflip.dev/dayboard/pkg/task"
)

var (
	// ErrNotFound indicates no card carries the given id.
	ErrNotFound = errors.New("board: card not found")

	// ErrDuplicateID indicates a card with the given id already exists.
	ErrDuplicateID = errors.New("board: duplicate card id")
)

// Board holds every live card and its view assignment. Ids are unique across
// the union of all variants; order within a view is the traversal order that
// persistence round-trips.
type Board struct {
	habits    map[string]*task.Habit
	reminders map[string]*task.Reminder
	todos     map[string]*task.Todo
	views     map[string]View
	order     map[View][]string
}

// New returns an empty board.
func New() *Board {
	b := &Board{
		habits:    make(map[string]*task.Habit),
		reminders: make(map[string]*task.Reminder),
		todos:     make(map[string]*task.Todo),
		views:     make(map[string]View),
		order:     make(map[View][]string),
	}
	for _, v := range AllViews() {
		b.order[v] = nil
	}
	return b
}

// AddHabit places a habit at the end of the given view.
func (b *Board) AddHabit(h *task.Habit, v View) error {
	if h == nil || h.ID == "" {
		return fmt.Errorf("board: habit requires an id")
	}
	if err := b.claim(h.ID, v); err != nil {
		return err
	}
	b.habits[h.ID] = h
	return nil
}

// AddReminder places a reminder at the end of the given view.
func (b *Board) AddReminder(r *task.Reminder, v View) error {
	if r == nil || r.ID == "" {
		return fmt.Errorf("board: reminder requires an id")
	}
	if err := b.claim(r.ID, v); err != nil {
		return err
	}
	b.reminders[r.ID] = r
	return nil
}

// AddTodo places a todo at the end of the given view.
func (b *Board) AddTodo(t *task.Todo, v View) error {
	if t == nil || t.ID == "" {
		return fmt.Errorf("board: todo requires an id")
	}
	if err := b.claim(t.ID, v); err != nil {
		return err
	}
	b.todos[t.ID] = t
	return nil
}

func (b *Board) claim(id string, v View) error {
	if _, ok := b.views[id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	b.views[id] = v
	b.order[v] = append(b.order[v], id)
	return nil
}

// Remove drops the card with the given id from the board entirely.
func (b *Board) Remove(id string) error {
	v, ok := b.views[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(b.views, id)
	delete(b.habits, id)
	delete(b.reminders, id)
	delete(b.todos, id)
	b.order[v] = withoutID(b.order[v], id)
	return nil
}

// Habit returns the habit with the given id, if present.
func (b *Board) Habit(id string) (*task.Habit, bool) {
	h, ok := b.habits[id]
	return h, ok
}

// Reminder returns the reminder with the given id, if present.
func (b *Board) Reminder(id string) (*task.Reminder, bool) {
	r, ok := b.reminders[id]
	return r, ok
}

// Todo returns the todo with the given id, if present.
func (b *Board) Todo(id string) (*task.Todo, bool) {
	t, ok := b.todos[id]
	return t, ok
}

// Kind reports the variant of the card with the given id.
func (b *Board) Kind(id string) (task.Kind, bool) {
	switch {
	case b.habits[id] != nil:
		return task.KindHabit, true
	case b.reminders[id] != nil:
		return task.KindReminder, true
	case b.todos[id] != nil:
		return task.KindTodo, true
	default:
		return "", false
	}
}

// ViewOf reports which view currently holds the card.
func (b *Board) ViewOf(id string) (View, bool) {
	v, ok := b.views[id]
	return v, ok
}

// IDs returns the ordered card ids of a view.
func (b *Board) IDs(v View) []string {
	ids := b.order[v]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// Len reports the number of cards in a view.
func (b *Board) Len(v View) int {
	return len(b.order[v])
}

// Size reports the total number of cards on the board.
func (b *Board) Size() int {
	return len(b.views)
}

// HabitsIn returns the habits of a view in traversal order.
func (b *Board) HabitsIn(v View) []*task.Habit {
	var out []*task.Habit
	for _, id := range b.order[v] {
		if h, ok := b.habits[id]; ok {
			out = append(out, h)
		}
	}
	return out
}

// RemindersIn returns the reminders of a view in traversal order.
func (b *Board) RemindersIn(v View) []*task.Reminder {
	var out []*task.Reminder
	for _, id := range b.order[v] {
		if r, ok := b.reminders[id]; ok {
			out = append(out, r)
		}
	}
	return out
}

// TodosIn returns the todos of a view in traversal order.
func (b *Board) TodosIn(v View) []*task.Todo {
	var out []*task.Todo
	for _, id := range b.order[v] {
		if t, ok := b.todos[id]; ok {
			out = append(out, t)
		}
	}
	return out
}

func withoutID(ids []string, id string) []string {
	for i, candidate := range ids {
		if candidate == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
