package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/dayboard/pkg/commands/options"
	"tableflip.dev/dayboard/pkg/task"
)

func addAdd(topLevel *cobra.Command) {
	fo := &options.FormOptions{}

	cmd := &cobra.Command{
		Use:   "add [kind] [title]",
		Short: "Add a habit, reminder, or todo",
		Example: `
dayboard add habit drink water
dayboard add reminder standup --date=2026-09-02 --time=09:30
dayboard add todo pay rent --date=2026-09-02 --tag=home
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a kind: habit, reminder, or todo")
			}
			if len(args) < 2 {
				return errors.New("requires a title")
			}
			fo.Kind = args[0]
			fo.TitleFromArgs(args[1:])
			return nil
		},
		ValidArgs: []string{string(task.KindHabit), string(task.KindReminder), string(task.KindTodo)},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := newService()
			if err != nil {
				return output.HandleError(err)
			}

			id, err := s.Create(fo.Input())
			if err != nil {
				return output.HandleError(err)
			}
			if err := s.RegisterNames(fo.Lists, fo.Tags); err != nil {
				return output.HandleError(err)
			}

			fmt.Println(id)
			return nil
		},
	}

	options.AddFormArgs(cmd, fo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
