package options

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/dayboard/pkg/board"
)

// ViewOptions
type ViewOptions struct {
	View string
	All  bool
}

func AddViewArgs(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().StringVarP(&o.View, "view", "v", "",
		"Limit to one view: habits, reminders, today, tomorrow, week, completed, trash.")
}

func AddAllViewsArg(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().BoolVarP(&o.All, "all", "a", false,
		"Include every view.")
}

// GetView resolves the selected view name, defaulting to today.
func (o *ViewOptions) GetView() (board.View, error) {
	if o.View == "" {
		return board.ViewToday, nil
	}
	v, err := board.ParseView(o.View)
	if err != nil {
		names := make([]string, 0, len(board.AllViews()))
		for _, candidate := range board.AllViews() {
			names = append(names, string(candidate))
		}
		return "", fmt.Errorf("unknown view %q, expected one of: %s", o.View, strings.Join(names, ", "))
	}
	return v, nil
}
