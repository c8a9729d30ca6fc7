// Package notify selects the pending reminders worth surfacing right now.
// It owns the matching only; presentation (popup, sound) belongs to the
// consumer.
package notify

import (
	"time"

	"tableflip.dev/dayboard/pkg/task"
	"tableflip.dev/dayboard/pkg/timeutil"
)

// Upcoming pairs a pending reminder with its resolved moment.
type Upcoming struct {
	Reminder *task.Reminder
	At       time.Time
}

// UpcomingReminders returns the pending reminders whose moment falls within
// [at-lead, at) of now. Reminders without a parseable date and clock value
// never match; that is a quiet skip, not an error.
func UpcomingReminders(reminders []*task.Reminder, now time.Time, lead time.Duration) []Upcoming {
	var out []Upcoming
	for _, r := range reminders {
		if r == nil || r.Status != task.StatusPending {
			continue
		}
		at, ok := momentOf(r, now)
		if !ok {
			continue
		}
		notifyFrom := at.Add(-lead)
		if !now.Before(notifyFrom) && now.Before(at) {
			out = append(out, Upcoming{Reminder: r, At: at})
		}
	}
	return out
}

func momentOf(r *task.Reminder, now time.Time) (time.Time, bool) {
	day, err := task.ParseDate(r.Date)
	if err != nil {
		return time.Time{}, false
	}
	offset, err := timeutil.ParseClock(r.Time)
	if err != nil {
		return time.Time{}, false
	}
	return timeutil.Midnight(day.In(now.Location())).Add(offset), true
}
