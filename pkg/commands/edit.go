package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/dayboard/pkg/commands/options"
)

func addEdit(topLevel *cobra.Command) {
	fo := &options.FormOptions{}

	cmd := &cobra.Command{
		Use:   "edit [id] [kind] [title]",
		Short: "Edit a card's fields, or convert it to another kind",
		Long: "Edit a card's fields. Giving a different kind converts the card, " +
			"keeping its id and comments; a todo whose new date lands in a " +
			"different bucket moves there.",
		Example: `
dayboard edit todo-1767225600000-a1b2c3d4 todo pay rent early --date=2026-09-01
dayboard edit todo-1767225600000-a1b2c3d4 reminder pay rent --date=2026-09-01 --time=09:00
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a card id and a kind")
			}
			if len(args) < 3 {
				return errors.New("requires a title")
			}
			fo.Kind = args[1]
			fo.TitleFromArgs(args[2:])
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := newService()
			if err != nil {
				return output.HandleError(err)
			}
			if err := s.Edit(args[0], fo.Input()); err != nil {
				return output.HandleError(err)
			}
			return output.HandleError(s.RegisterNames(fo.Lists, fo.Tags))
		},
	}

	options.AddFormArgs(cmd, fo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
