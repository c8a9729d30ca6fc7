package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/dayboard/pkg/commands/options"
)

func addCheck(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "check [id]",
		Short: "Check off a habit for today",
		Long:  "Check off a habit for today, extending its streak. Checking an already checked habit changes nothing.",
		Example: `
dayboard check habit-1767225600000-a1b2c3d4
`,
		Args: requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := newService()
			if err != nil {
				return output.HandleError(err)
			}
			return output.HandleError(s.Check(args[0]))
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addUncheck(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "uncheck [id]",
		Short: "Clear a habit's check for today",
		Long:  "Clear a habit's check for today. The streak keeps its value.",
		Args:  requireID,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := newService()
			if err != nil {
				return output.HandleError(err)
			}
			return output.HandleError(s.Uncheck(args[0]))
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func requireID(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("requires exactly one card id")
	}
	return nil
}
