package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/dayboard/pkg/commands/options"
)

func addMove(topLevel *cobra.Command) {
	vo := &options.ViewOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "move [id]",
		Short: "Reorder a card, or move it to another view",
		Long: "Move a card within its view or into another one. The new order " +
			"is whatever position the card lands in; it persists with the board.",
		Example: `
dayboard move todo-1767225600000-a1b2c3d4 --before todo-1767225700000-e5f6a7b8
dayboard move todo-1767225600000-a1b2c3d4 --view tomorrow
`,
		Args: requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := newService()
			if err != nil {
				return output.HandleError(err)
			}

			v, err := vo.GetView()
			if err != nil {
				return output.HandleError(err)
			}
			if vo.View == "" {
				// Stay in the card's current view when none was named.
				if current, ok := s.Board.ViewOf(args[0]); ok {
					v = current
				}
			}
			return output.HandleError(s.Move(args[0], io.Before, v))
		},
	}

	options.AddViewArgs(cmd, vo)
	options.AddBeforeArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
