package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/dayboard/pkg/commands/options"
)

func addComplete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "complete [id]",
		Short: "Complete a reminder or todo",
		Long: "Complete a reminder or todo. A completed reminder becomes a " +
			"completed todo dated today and remembers where it came from, so " +
			"uncompleting it restores the reminder.",
		Example: `
dayboard complete todo-1767225600000-a1b2c3d4
`,
		Args: requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := newService()
			if err != nil {
				return output.HandleError(err)
			}
			return output.HandleError(s.Complete(args[0]))
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addUncomplete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "uncomplete [id]",
		Short: "Reopen a completed todo",
		Long: "Reopen a completed todo. A todo that came from a reminder turns " +
			"back into a pending reminder; a directly created todo returns to " +
			"the bucket its date resolves to.",
		Args: requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := newService()
			if err != nil {
				return output.HandleError(err)
			}
			return output.HandleError(s.Uncomplete(args[0]))
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
