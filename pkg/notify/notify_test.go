package notify

import (
	"testing"
	"time"

	"tableflip.dev/dayboard/pkg/task"
)

func reminder(title, date, clock string) *task.Reminder {
	return task.NewReminder(task.Core{Title: title, Time: clock}, date)
}

func TestUpcomingRemindersWindow(t *testing.T) {
	// 09:10, watching for reminders due within 30 minutes.
	now := time.Date(2026, time.September, 1, 9, 10, 0, 0, time.Local)
	lead := 30 * time.Minute

	inWindow := reminder("standup", "2026-09-01", "09:30")
	tooFar := reminder("lunch", "2026-09-01", "12:00")
	passed := reminder("earlier", "2026-09-01", "09:00")
	otherDay := reminder("tomorrow", "2026-09-02", "09:15")

	ups := UpcomingReminders(
		[]*task.Reminder{inWindow, tooFar, passed, otherDay}, now, lead)

	if len(ups) != 1 {
		t.Fatalf("got %d upcoming, want 1", len(ups))
	}
	if ups[0].Reminder.Title != "standup" {
		t.Fatalf("matched %q", ups[0].Reminder.Title)
	}
	want := time.Date(2026, time.September, 1, 9, 30, 0, 0, time.Local)
	if !ups[0].At.Equal(want) {
		t.Fatalf("At = %v, want %v", ups[0].At, want)
	}
}

func TestUpcomingRemindersWindowEdges(t *testing.T) {
	lead := 30 * time.Minute
	r := reminder("standup", "2026-09-01", "09:30")

	// Exactly lead before the moment: included.
	at := time.Date(2026, time.September, 1, 9, 0, 0, 0, time.Local)
	if got := UpcomingReminders([]*task.Reminder{r}, at, lead); len(got) != 1 {
		t.Fatalf("window opening should match")
	}

	// Exactly at the moment: the window has closed.
	at = time.Date(2026, time.September, 1, 9, 30, 0, 0, time.Local)
	if got := UpcomingReminders([]*task.Reminder{r}, at, lead); len(got) != 0 {
		t.Fatalf("moment itself should not match")
	}
}

func TestUpcomingRemindersSkipsNonPending(t *testing.T) {
	now := time.Date(2026, time.September, 1, 9, 10, 0, 0, time.Local)

	done := reminder("done", "2026-09-01", "09:30")
	done.Status = task.StatusCompleted

	if got := UpcomingReminders([]*task.Reminder{done, nil}, now, 30*time.Minute); len(got) != 0 {
		t.Fatalf("non-pending reminders should never match")
	}
}

func TestUpcomingRemindersSkipsUnparseable(t *testing.T) {
	now := time.Date(2026, time.September, 1, 9, 10, 0, 0, time.Local)

	noClock := reminder("no clock", "2026-09-01", "")
	badClock := reminder("bad clock", "2026-09-01", "around nine")
	badDate := reminder("bad date", "soonish", "09:30")

	got := UpcomingReminders([]*task.Reminder{noClock, badClock, badDate}, now, time.Hour)
	if len(got) != 0 {
		t.Fatalf("unparseable reminders should be quietly skipped, got %d", len(got))
	}
}
