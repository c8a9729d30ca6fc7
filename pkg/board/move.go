package board

import "fmt"

// Axis selects which pointer coordinate decides a drop position. Habit and
// reminder strips lay cards out horizontally; the bucket, completed, and
// trash lists are vertical.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Axis returns the drag axis for the view's layout.
func (v View) Axis() Axis {
	switch v {
	case ViewHabits, ViewReminders:
		return Horizontal
	default:
		return Vertical
	}
}

// Point is a pointer position reported by the drag source.
type Point struct {
	X float64
	Y float64
}

// Box is the rendered bounds of a sibling card.
type Box struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

func (box Box) midpoint(a Axis) float64 {
	if a == Horizontal {
		return box.Left + box.Width/2
	}
	return box.Top + box.Height/2
}

// InsertionIndex returns the position at which a dragged card lands: just
// before the first sibling whose midpoint lies beyond the pointer, or at the
// end when the pointer has passed every midpoint. Midpoints must be in
// sibling traversal order.
func InsertionIndex(pointer float64, midpoints []float64) int {
	for i, mid := range midpoints {
		if pointer < mid {
			return i
		}
	}
	return len(midpoints)
}

// DropIndex computes the insertion index for a pointer drop over a view,
// given the rendered boxes of the view's cards in traversal order.
func DropIndex(v View, p Point, boxes []Box) int {
	axis := v.Axis()
	pointer := p.Y
	if axis == Horizontal {
		pointer = p.X
	}
	midpoints := make([]float64, len(boxes))
	for i, box := range boxes {
		midpoints[i] = box.midpoint(axis)
	}
	return InsertionIndex(pointer, midpoints)
}

// MoveBefore relocates a card within or across views, inserting it
// immediately before refID. An empty refID appends to the end of the view.
// Order is an emergent property of membership plus traversal sequence, so a
// caller persisting after the move round-trips the new arrangement.
func (b *Board) MoveBefore(id, refID string, v View) error {
	current, ok := b.views[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	if refID != "" {
		refView, ok := b.views[refID]
		if !ok {
			return fmt.Errorf("%w: %s", ErrNotFound, refID)
		}
		if refView != v {
			return fmt.Errorf("board: reference card %s is not in view %s", refID, v)
		}
	}

	// Remove before locating refID so a move within one view lands in the
	// right place regardless of the cards' relative positions.
	b.order[current] = withoutID(b.order[current], id)
	index := len(b.order[v])
	if refID != "" {
		index = indexOf(b.order[v], refID)
	}
	b.order[v] = insertAt(b.order[v], index, id)
	b.views[id] = v
	return nil
}

// InsertAt relocates a card to an explicit position in a view, as computed
// by DropIndex for pointer-driven drops.
func (b *Board) InsertAt(id string, v View, index int) error {
	if _, ok := b.views[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	current := b.views[id]
	b.order[current] = withoutID(b.order[current], id)
	if index < 0 {
		index = 0
	}
	if index > len(b.order[v]) {
		index = len(b.order[v])
	}
	b.order[v] = insertAt(b.order[v], index, id)
	b.views[id] = v
	return nil
}

// MoveToEnd relocates a card to the end of a view.
func (b *Board) MoveToEnd(id string, v View) error {
	return b.MoveBefore(id, "", v)
}

func indexOf(ids []string, id string) int {
	for i, candidate := range ids {
		if candidate == id {
			return i
		}
	}
	return len(ids)
}

func insertAt(ids []string, index int, id string) []string {
	ids = append(ids, "")
	copy(ids[index+1:], ids[index:])
	ids[index] = id
	return ids
}
