package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/dayboard/pkg/form"
)

// FormOptions
type FormOptions struct {
	Kind        string
	Title       string
	Description string
	Date        string
	Time        string
	Lists       []string
	Tags        []string
}

func AddFormArgs(cmd *cobra.Command, o *FormOptions) {
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Longer text for the card.")
	cmd.Flags().StringVar(&o.Date, "date", "",
		`Calendar date for a todo or reminder, example: --date="2026-09-02".`)
	cmd.Flags().StringVar(&o.Time, "time", "",
		`Clock time for a reminder, example: --time="14:30".`)
	cmd.Flags().StringSliceVarP(&o.Lists, "list", "l", nil,
		"Assign the card to a list. Repeatable.")
	cmd.Flags().StringSliceVarP(&o.Tags, "tag", "t", nil,
		"Tag the card. Repeatable.")
}

// TitleFromArgs joins the trailing arguments into the card title.
func (o *FormOptions) TitleFromArgs(args []string) {
	o.Title = strings.Join(args, " ")
}

func (o *FormOptions) Input() form.Input {
	return form.Input{
		Kind:        o.Kind,
		Title:       o.Title,
		Description: o.Description,
		Date:        o.Date,
		Time:        o.Time,
		Lists:       o.Lists,
		Tags:        o.Tags,
	}
}
