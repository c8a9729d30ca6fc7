package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/dayboard/pkg/board"
	"tableflip.dev/dayboard/pkg/commands/options"
	"tableflip.dev/dayboard/pkg/printers"
)

func addStatus(topLevel *cobra.Command) {
	vo := &options.ViewOptions{}

	cmd := &cobra.Command{
		Use:   "status [view]",
		Short: "Count the cards relevant to a view",
		Long: "Count the cards relevant to a view. The today count includes " +
			"active habits; deleted cards are never counted.",
		Example: `
dayboard status
dayboard status week
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

			pp := &printers.PrettyPrint{}

			if vo.All {
				for _, v := range board.AllViews() {
					pp.Stats(v, s.Stats(v))
				}
				return nil
			}

			v, err := vo.GetView()
			if err != nil {
				return output.HandleError(err)
			}
			pp.Stats(v, s.Stats(v))
			return nil
		},
	}

	options.AddAllViewsArg(cmd, vo)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
