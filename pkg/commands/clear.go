package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/dayboard/pkg/commands/options"
)

func addClear(topLevel *cobra.Command) {
	confirmed := false

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Erase the entire board and catalog",
		Long:  "Erase the entire board and catalog. This is destructive and cannot be undone; it requires --yes.",
		Example: `
dayboard clear --yes
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return errors.New("refusing to clear without --yes")
			}
			s, _, err := newService()
			if err != nil {
				return output.HandleError(err)
			}
			return output.HandleError(s.Persistence.Clear())
		},
	}

	cmd.Flags().BoolVar(&confirmed, "yes", false, "Confirm erasing everything.")
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
