package store

import (
	"testing"
	"time"

	"github.com/peterbourgon/diskv/v3"
	"go.uber.org/zap"

	"tableflip.dev/dayboard/pkg/board"
	"tableflip.dev/dayboard/pkg/task"
)

func testPersistence(t *testing.T, now time.Time) *persistence {
	t.Helper()
	p := &persistence{
		d: diskv.New(diskv.Options{
			BasePath:     t.TempDir(),
			CacheSizeMax: 1024 * 1024,
		}),
		log: zap.NewNop(),
		now: func() time.Time { return now },
	}
	p.basePath = p.d.BasePath
	return p
}

func seedBoard(t *testing.T) (*board.Board, *task.Habit, *task.Reminder, *task.Todo) {
	t.Helper()
	b := board.New()

	h := task.NewHabit(task.Core{Title: "stretch"})
	h.Check()
	if err := b.AddHabit(h, board.ViewHabits); err != nil {
		t.Fatalf("AddHabit: %v", err)
	}

	r := task.NewReminder(task.Core{Title: "standup", Time: "09:30"}, "2026-09-02")
	if err := b.AddReminder(r, board.ViewReminders); err != nil {
		t.Fatalf("AddReminder: %v", err)
	}

	todo := task.NewTodo(task.Core{Title: "pay rent"}, "2026-09-01")
	if err := b.AddTodo(todo, board.ViewToday); err != nil {
		t.Fatalf("AddTodo: %v", err)
	}

	return b, h, r, todo
}

func TestSaveRestoreRoundTrip(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.Local)
	p := testPersistence(t, now)
	b, h, r, todo := seedBoard(t)

	if err := p.Save(b); err != nil {
		t.Fatalf("Save: %v", err)
	}
	restored, err := p.Restore()
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}

	if restored.Size() != 3 {
		t.Fatalf("restored size = %d, want 3", restored.Size())
	}

	gotHabit, ok := restored.Habit(h.ID)
	if !ok {
		t.Fatalf("habit missing after round trip")
	}
	if !gotHabit.Checked || gotHabit.Streak != 1 {
		t.Fatalf("habit state lost: checked=%v streak=%d", gotHabit.Checked, gotHabit.Streak)
	}

	if _, ok := restored.Reminder(r.ID); !ok {
		t.Fatalf("reminder missing after round trip")
	}

	gotTodo, ok := restored.Todo(todo.ID)
	if !ok {
		t.Fatalf("todo missing after round trip")
	}
	if v, _ := restored.ViewOf(gotTodo.ID); v != board.ViewToday {
		t.Fatalf("todo restored into %q, want today", v)
	}
}

func TestRestorePreservesManualOrder(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.Local)
	p := testPersistence(t, now)

	b := board.New()
	var ids []string
	for _, title := range []string{"first", "second", "third"} {
		todo := task.NewTodo(task.Core{Title: title}, "2026-09-01")
		_ = b.AddTodo(todo, board.ViewToday)
		ids = append(ids, todo.ID)
	}
	// Manual reorder: third card to the front.
	if err := b.MoveBefore(ids[2], ids[0], board.ViewToday); err != nil {
		t.Fatalf("MoveBefore: %v", err)
	}

	if err := p.Save(b); err != nil {
		t.Fatalf("Save: %v", err)
	}
	restored, err := p.Restore()
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}

	got := restored.IDs(board.ViewToday)
	want := []string{ids[2], ids[0], ids[1]}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order after round trip = %v, want %v", got, want)
		}
	}
}

func TestRestoreDayRolloverClearsChecks(t *testing.T) {
	saveDay := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.Local)
	p := testPersistence(t, saveDay)
	b, h, _, _ := seedBoard(t)

	if err := p.Save(b); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Load the next day.
	p.now = func() time.Time {
		return time.Date(2026, time.September, 2, 8, 0, 0, 0, time.Local)
	}
	restored, err := p.Restore()
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}

	got, _ := restored.Habit(h.ID)
	if got.Checked {
		t.Fatalf("rollover should clear the check")
	}
	if got.Streak != 1 {
		t.Fatalf("rollover changed the streak to %d", got.Streak)
	}
}

func TestRestoreSameDayKeepsChecks(t *testing.T) {
	saveDay := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.Local)
	p := testPersistence(t, saveDay)
	b, h, _, _ := seedBoard(t)

	if err := p.Save(b); err != nil {
		t.Fatalf("Save: %v", err)
	}

	p.now = func() time.Time {
		return time.Date(2026, time.September, 1, 22, 0, 0, 0, time.Local)
	}
	restored, err := p.Restore()
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}

	got, _ := restored.Habit(h.ID)
	if !got.Checked {
		t.Fatalf("same-day load should keep the check")
	}
}

func TestRestoreDropsStaleTodos(t *testing.T) {
	saveDay := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.Local)
	p := testPersistence(t, saveDay)

	b := board.New()
	stale := task.NewTodo(task.Core{Title: "expired"}, "2026-09-01")
	_ = b.AddTodo(stale, board.ViewToday)
	alive := task.NewTodo(task.Core{Title: "still good"}, "2026-09-12")
	_ = b.AddTodo(alive, board.ViewWeek)

	if err := p.Save(b); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Ten days later the first todo's date resolves to no bucket and the
	// second has slid from the week list to today.
	p.now = func() time.Time {
		return time.Date(2026, time.September, 12, 9, 0, 0, 0, time.Local)
	}
	restored, err := p.Restore()
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}

	if _, ok := restored.Todo(stale.ID); ok {
		t.Fatalf("stale todo should be dropped on load")
	}
	if v, _ := restored.ViewOf(alive.ID); v != board.ViewToday {
		t.Fatalf("surviving todo in %q, want today", v)
	}

	// The drop becomes durable on the next save.
	if err := p.Save(restored); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	again, err := p.Restore()
	if err != nil {
		t.Fatalf("second Restore: %v", err)
	}
	if _, ok := again.Todo(stale.ID); ok {
		t.Fatalf("stale todo resurfaced after the second round trip")
	}
}

func TestRestoreCompletedAndDeletedPlacement(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.Local)
	p := testPersistence(t, now)

	b := board.New()

	done := task.NewTodo(task.Core{Title: "done"}, "2026-08-01")
	done.Status = task.StatusCompleted
	_ = b.AddTodo(done, board.ViewCompleted)

	gone := task.NewHabit(task.Core{Title: "gone"})
	gone.Status = task.StatusDeleted
	_ = b.AddHabit(gone, board.ViewTrash)

	if err := p.Save(b); err != nil {
		t.Fatalf("Save: %v", err)
	}
	restored, err := p.Restore()
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}

	// Completed and deleted cards keep their placement regardless of date.
	if v, _ := restored.ViewOf(done.ID); v != board.ViewCompleted {
		t.Fatalf("completed todo in %q", v)
	}
	if v, _ := restored.ViewOf(gone.ID); v != board.ViewTrash {
		t.Fatalf("deleted habit in %q", v)
	}
}

func TestRestoreMissingSnapshotIsEmptyBoard(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.Local)
	p := testPersistence(t, now)

	restored, err := p.Restore()
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if restored.Size() != 0 {
		t.Fatalf("missing snapshot should restore empty, got %d cards", restored.Size())
	}
}

func TestRestoreCorruptSnapshotIsEmptyBoard(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.Local)
	p := testPersistence(t, now)

	if err := p.d.Write(snapshotKey, []byte("{not json")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	restored, err := p.Restore()
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if restored.Size() != 0 {
		t.Fatalf("corrupt snapshot should restore empty, got %d cards", restored.Size())
	}
}

func TestClearErasesEverything(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.Local)
	p := testPersistence(t, now)
	b, _, _, _ := seedBoard(t)

	if err := p.Save(b); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := p.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	restored, err := p.Restore()
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if restored.Size() != 0 {
		t.Fatalf("board should be empty after clear")
	}
}

func TestCatalogRoundTrip(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.Local)
	p := testPersistence(t, now)

	c, err := p.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	c.AddList("groceries")
	c.AddTag("home")
	if err := p.SaveCatalog(c); err != nil {
		t.Fatalf("SaveCatalog: %v", err)
	}

	again, err := p.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if !again.HasList("groceries") || !again.HasTag("home") {
		t.Fatalf("catalog lost names: %+v", again)
	}
}
