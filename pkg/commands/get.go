package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/dayboard/pkg/app"
	"tableflip.dev/dayboard/pkg/board"
	"tableflip.dev/dayboard/pkg/commands/options"
	"tableflip.dev/dayboard/pkg/printers"
)

func addGet(topLevel *cobra.Command) {
	vo := &options.ViewOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get [view]",
		Short: "Get the cards of a view, or the whole board",
		Example: `
dayboard get
dayboard get today
dayboard get trash --show-id
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				vo.View = args[0]
			}
			return nil
		},
		ValidArgs: viewNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := newService()
			if err != nil {
				return output.HandleError(err)
			}

			pp := &printers.PrettyPrint{ShowID: io.ShowID}

			if vo.All || (vo.View == "" && len(args) == 0) {
				for _, v := range board.AllViews() {
					printView(pp, s, v)
				}
				return nil
			}

			v, err := vo.GetView()
			if err != nil {
				return output.HandleError(err)
			}
			printView(pp, s, v)
			return nil
		},
	}

	options.AddAllViewsArg(cmd, vo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func viewNames() []string {
	names := make([]string, 0, len(board.AllViews()))
	for _, v := range board.AllViews() {
		names = append(names, string(v))
	}
	return names
}

// printView renders one view. The strip views hold a single variant; the
// completed and trash views can hold a mix.
func printView(pp *printers.PrettyPrint, s *app.Service, v board.View) {
	pp.TitleWithCount(title(v), s.Board.Len(v))

	if s.Board.Len(v) == 0 {
		pp.Todos()
		return
	}

	if habits := s.Board.HabitsIn(v); len(habits) > 0 {
		pp.Habits(habits...)
	}
	if reminders := s.Board.RemindersIn(v); len(reminders) > 0 {
		pp.Reminders(reminders...)
	}
	if todos := s.Board.TodosIn(v); len(todos) > 0 {
		pp.Todos(todos...)
	}
}

func title(v board.View) string {
	name := string(v)
	if name == "" {
		return name
	}
	return string(name[0]-'a'+'A') + name[1:]
}
