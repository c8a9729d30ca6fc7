package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/dayboard/pkg/timeutil"
)

// NotifyOptions
type NotifyOptions struct {
	LeadString string
	Watch      bool
	Interval   time.Duration
}

func AddNotifyArgs(cmd *cobra.Command, o *NotifyOptions) {
	cmd.Flags().StringVar(&o.LeadString, "lead", "",
		`How far ahead of a reminder to surface it, example: --lead="30m".`)
	cmd.Flags().BoolVarP(&o.Watch, "watch", "w", false,
		"Keep running and sweep for upcoming reminders on an interval.")
	cmd.Flags().DurationVar(&o.Interval, "interval", time.Minute,
		"Sweep interval when watching.")
}

// GetLead parses the lead flag, falling back to the configured default.
func (o *NotifyOptions) GetLead(fallback time.Duration) (time.Duration, error) {
	if o.LeadString == "" {
		if fallback > 0 {
			return fallback, nil
		}
		return timeutil.DefaultLead, nil
	}
	return timeutil.ParseLead(o.LeadString)
}
