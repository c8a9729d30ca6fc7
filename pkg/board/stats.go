package board

import (
	"time"

	"tableflip.dev/dayboard/pkg/bucket"
	"tableflip.dev/dayboard/pkg/task"
	"tableflip.dev/dayboard/pkg/timeutil"
)

// Stats summarizes the active workload for one planning view. Completed and
// deleted cards never count toward the active totals; Completed reports the
// completed view's population on its own.
type Stats struct {
	Habits    int
	Reminders int
	Todos     int
	Completed int
}

// Total is the active card count for the view.
func (s Stats) Total() int {
	return s.Habits + s.Reminders + s.Todos
}

// StatsFor counts the cards relevant to a planning view at the given moment.
// Habits have no date and only show on the today view. Reminders and todos
// are matched by date: exact day for today and tomorrow, the seven-day
// window for week.
func (b *Board) StatsFor(v View, now time.Time) Stats {
	var s Stats
	s.Completed = len(b.order[ViewCompleted])

	if v == ViewToday {
		for _, h := range b.HabitsIn(ViewHabits) {
			if h.Status != task.StatusDeleted {
				s.Habits++
			}
		}
	}

	for _, r := range b.RemindersIn(ViewReminders) {
		if r.Status != task.StatusPending {
			continue
		}
		if dateMatchesView(r.Date, v, now) {
			s.Reminders++
		}
	}

	for _, view := range []View{ViewToday, ViewTomorrow, ViewWeek} {
		for _, t := range b.TodosIn(view) {
			if t.Status != task.StatusToDo {
				continue
			}
			if dateMatchesView(t.Date, v, now) {
				s.Todos++
			}
		}
	}

	return s
}

func dateMatchesView(date string, v View, now time.Time) bool {
	day, err := task.ParseDate(date)
	if err != nil {
		return false
	}
	today := timeutil.Midnight(now)
	switch v {
	case ViewToday:
		return timeutil.SameDay(day, today)
	case ViewTomorrow:
		return timeutil.SameDay(day, today.AddDate(0, 0, 1))
	case ViewWeek:
		return bucket.Resolve(day, now) == bucket.Week ||
			timeutil.SameDay(day, today.AddDate(0, 0, 1))
	default:
		return false
	}
}
