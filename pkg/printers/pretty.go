package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"tableflip.dev/dayboard/pkg/glyph"
	"tableflip.dev/dayboard/pkg/task"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("todo-1767225600000-a1b2c3d4  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" card")
	default:
		_, _ = c.Println(" cards")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Print(" none\n\n")
}

func (pp *PrettyPrint) id(id string) {
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	_, _ = y.Print(id)
	if pad := len(spacing) - len(id); pad > 0 {
		_, _ = y.Print(strings.Repeat(" ", pad))
	}
}

// Habits prints a habit strip. Checked habits show their mark and streak;
// deleted habits are struck through.
func (pp *PrettyPrint) Habits(habits ...*task.Habit) {
	if len(habits) == 0 {
		pp.none()
		return
	}

	t := color.New()
	s := color.New(color.Faint)

	for _, h := range habits {
		if pp.ShowID {
			pp.id(h.ID)
		}
		title := h.Title
		if h.Status == task.StatusDeleted {
			title = glyph.Strike(title)
		}
		_, _ = t.Printf("%s %s", glyph.ForHabit(h), title)
		if h.Streak > 0 {
			_, _ = s.Printf("  🔥%d", h.Streak)
		}
		_, _ = t.Println("")
	}
	_, _ = t.Println("")
}

// Reminders prints a reminder strip with the card's date and clock time.
func (pp *PrettyPrint) Reminders(reminders ...*task.Reminder) {
	if len(reminders) == 0 {
		pp.none()
		return
	}

	t := color.New()
	d := color.New(color.Faint)

	for _, r := range reminders {
		if pp.ShowID {
			pp.id(r.ID)
		}
		title := r.Title
		if r.Status == task.StatusDeleted {
			title = glyph.Strike(title)
		}
		_, _ = t.Printf("%s %s", glyph.ForReminder(r), title)
		if r.Date != "" {
			_, _ = d.Printf("  %s", r.Date)
		}
		if r.Time != "" {
			_, _ = d.Printf(" %s", r.Time)
		}
		_, _ = t.Println("")
	}
	_, _ = t.Println("")
}

// Todos prints a todo list. Completed cards are struck through.
func (pp *PrettyPrint) Todos(todos ...*task.Todo) {
	if len(todos) == 0 {
		pp.none()
		return
	}

	t := color.New()
	d := color.New(color.Faint)

	for _, card := range todos {
		if pp.ShowID {
			pp.id(card.ID)
		}
		title := card.Title
		switch card.Status {
		case task.StatusCompleted, task.StatusDeleted:
			title = glyph.Strike(title)
		}
		_, _ = t.Printf("%s %s", glyph.ForTodo(card), title)
		if card.Date != "" {
			_, _ = d.Printf("  %s", card.Date)
		}
		if len(card.Tags) > 0 {
			_, _ = d.Printf("  #%s", strings.Join(card.Tags, " #"))
		}
		_, _ = t.Println("")
	}
	_, _ = t.Println("")
}

// Comments prints a card's comment thread.
func (pp *PrettyPrint) Comments(comments ...string) {
	if len(comments) == 0 {
		pp.none()
		return
	}

	c := color.New(color.Italic)
	for _, comment := range comments {
		if pp.ShowID {
			_, _ = c.Print(spacing)
		}
		_, _ = c.Printf("⁃ %s\n", comment)
	}
	_, _ = c.Println("")
}

// Legend prints the card marks and their meanings.
func (pp *PrettyPrint) Legend() {
	t := color.New()
	for _, g := range glyph.Legend() {
		_, _ = t.Printf("%s  %s\n", g.Symbol, g.Meaning)
	}
	_, _ = t.Println("")
}
