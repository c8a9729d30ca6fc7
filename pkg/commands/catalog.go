package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/dayboard/pkg/app"
	"tableflip.dev/dayboard/pkg/commands/options"
	"tableflip.dev/dayboard/pkg/printers"
)

func addList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "list [name]",
		Short: "Record a list name, or show the catalog",
		Example: `
dayboard list groceries
dayboard list
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := newService()
			if err != nil {
				return output.HandleError(err)
			}

			if len(args) > 0 {
				return output.HandleError(s.RegisterNames([]string{strings.Join(args, " ")}, nil))
			}
			return output.HandleError(printCatalog(s))
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addTag(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "tag [name]",
		Short: "Record a tag name, or show the catalog",
		Example: `
dayboard tag home
dayboard tag
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("tag names are a single word")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := newService()
			if err != nil {
				return output.HandleError(err)
			}

			if len(args) > 0 {
				return output.HandleError(s.RegisterNames(nil, args))
			}
			return output.HandleError(printCatalog(s))
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func printCatalog(s *app.Service) error {
	c, err := s.Catalog()
	if err != nil {
		return err
	}
	pp := &printers.PrettyPrint{}
	pp.Catalog(c)
	return nil
}
