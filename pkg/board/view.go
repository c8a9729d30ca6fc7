// Package board is the in-memory system of record for dayboard: every live
// card, keyed by id, plus an ordered id sequence per view. The rendering
// layer is a projection of the board; persistence snapshots it and restores
// it. A card belongs to exactly one view at any instant.
package board

import (
	"fmt"
	"strings"

	"tableflip.dev/dayboard/pkg/bucket"
)

// View names a card container. The three bucket views hold open todos; the
// strip views hold habits and reminders; completed and trash collect
// finished and soft-deleted cards of any kind.
type View string

const (
	ViewHabits    View = "habits"
	ViewReminders View = "reminders"
	ViewToday     View = "today"
	ViewTomorrow  View = "tomorrow"
	ViewWeek      View = "week"
	ViewCompleted View = "completed"
	ViewTrash     View = "trash"
)

// AllViews returns every view in snapshot traversal order.
func AllViews() []View {
	return []View{
		ViewHabits,
		ViewReminders,
		ViewToday,
		ViewTomorrow,
		ViewWeek,
		ViewCompleted,
		ViewTrash,
	}
}

// ParseView converts a string to a View or returns an error for unknown
// values.
func ParseView(raw string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(raw)))
	for _, candidate := range AllViews() {
		if candidate == v {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("board: unknown view %q", raw)
}

// ViewForBucket maps an active planning bucket to its view. The None bucket
// has no view.
func ViewForBucket(b bucket.Bucket) (View, bool) {
	switch b {
	case bucket.Today:
		return ViewToday, true
	case bucket.Tomorrow:
		return ViewTomorrow, true
	case bucket.Week:
		return ViewWeek, true
	default:
		return "", false
	}
}
