// Package bucket maps calendar dates to the named planning views.
//
// Resolution is a pure function of (date, now): the date and the current
// moment are both normalized to local midnight before comparison, so a card
// edited at 23:59 and re-resolved at 00:01 moves buckets the same way a
// fresh page load would move it.
package bucket

import (
	"time"

	"tableflip.dev/dayboard/pkg/timeutil"
)

// Bucket names an active planning view for a dated card.
type Bucket string

const (
	// Today holds cards dated the current calendar day.
	Today Bucket = "today"

	// Tomorrow holds cards dated the next calendar day.
	Tomorrow Bucket = "tomorrow"

	// Week holds cards dated after tomorrow up to seven days out.
	Week Bucket = "week"

	// None means the date falls outside every active view. Cards resolving
	// to None are dropped from the restored state on load.
	None Bucket = ""
)

// Resolve places a calendar date into its planning bucket relative to now.
func Resolve(date, now time.Time) Bucket {
	day := timeutil.Midnight(date)
	today := timeutil.Midnight(now)
	tomorrow := today.AddDate(0, 0, 1)
	weekLimit := today.AddDate(0, 0, 7)

	switch {
	case day.Equal(today):
		return Today
	case day.Equal(tomorrow):
		return Tomorrow
	case day.After(tomorrow) && !day.After(weekLimit):
		return Week
	default:
		return None
	}
}
