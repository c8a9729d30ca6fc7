package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/dayboard/pkg/commands/options"
	"tableflip.dev/dayboard/pkg/printers"
)

func addComment(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "comment [id] [text]",
		Short: "Append a comment to a card, or show its comments",
		Example: `
dayboard comment todo-1767225600000-a1b2c3d4 waiting on the landlord
dayboard comment todo-1767225600000-a1b2c3d4
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a card id")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := newService()
			if err != nil {
				return output.HandleError(err)
			}

			if len(args) > 1 {
				return output.HandleError(s.Comment(args[0], strings.Join(args[1:], " ")))
			}

			core, err := s.CoreOf(args[0])
			if err != nil {
				return output.HandleError(err)
			}
			pp := &printers.PrettyPrint{}
			pp.Title(core.Title)
			pp.Comments(core.Comments...)
			return nil
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
