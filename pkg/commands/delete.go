package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/dayboard/pkg/commands/options"
)

func addDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Move a card to the trash",
		Long:  "Move a card to the trash. The card stays visible there until the board is cleared.",
		Example: `
dayboard delete habit-1767225600000-a1b2c3d4
`,
		Args: requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := newService()
			if err != nil {
				return output.HandleError(err)
			}
			return output.HandleError(s.Delete(args[0]))
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
