package options

import (
	"github.com/spf13/cobra"
)

// IDOptions
type IDOptions struct {
	ShowID bool
	Before string
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each card.")
}

func AddBeforeArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().StringVar(&o.Before, "before", "",
		"Insert the card immediately before this card id. Empty appends to the end.")
}
