package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"tableflip.dev/dayboard/pkg/board"
	"tableflip.dev/dayboard/pkg/catalog"
	"tableflip.dev/dayboard/pkg/notify"
)

// Stats prints the count summary for a view.
func (pp *PrettyPrint) Stats(v board.View, s board.Stats) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("View"), bold.Sprint("Habits"), bold.Sprint("Reminders"), bold.Sprint("Todos"), bold.Sprint("Completed"), bold.Sprint("Total"))
	tbl.AddRow(string(v), s.Habits, s.Reminders, s.Todos, s.Completed, s.Total())
	fmt.Println(tbl)
	fmt.Println("")
}

// Catalog prints the known list and tag names.
func (pp *PrettyPrint) Catalog(c *catalog.Catalog) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Lists"), bold.Sprint("Tags"))
	rows := len(c.Lists)
	if len(c.Tags) > rows {
		rows = len(c.Tags)
	}
	for i := 0; i < rows; i++ {
		list, tag := "", ""
		if i < len(c.Lists) {
			list = c.Lists[i]
		}
		if i < len(c.Tags) {
			tag = "#" + c.Tags[i]
		}
		tbl.AddRow(list, tag)
	}
	fmt.Println(tbl)
	fmt.Println("")
}

// Upcoming prints reminders entering their notification window.
func (pp *PrettyPrint) Upcoming(ups ...notify.Upcoming) {
	if len(ups) == 0 {
		pp.none()
		return
	}

	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("At"), bold.Sprint("Reminder"))
	for _, up := range ups {
		tbl.AddRow(up.At.Format("15:04"), up.Reminder.Title)
	}
	fmt.Println(tbl)
	fmt.Println("")
}
