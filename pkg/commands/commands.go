package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/dayboard/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "dayboard",
		Short: base.Wrap80("Habits, reminders, and todos on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddDebugArg(cmd, output)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addCheck(topLevel)
	addUncheck(topLevel)
	addComplete(topLevel)
	addUncomplete(topLevel)
	addDelete(topLevel)
	addComment(topLevel)
	addEdit(topLevel)
	addMove(topLevel)
	addStatus(topLevel)
	addNotify(topLevel)
	addList(topLevel)
	addTag(topLevel)
	addClear(topLevel)
	addVersion(topLevel)
}
