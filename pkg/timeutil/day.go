// Package timeutil holds the small calendar and clock helpers shared by the
// bucket resolver and the notification matcher.
package timeutil

import "time"

// Midnight normalizes t to the start of its local calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	return Midnight(a).Equal(Midnight(b))
}
