package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/dayboard/pkg/board"
	"tableflip.dev/dayboard/pkg/commands/options"
	"tableflip.dev/dayboard/pkg/notify"
	"tableflip.dev/dayboard/pkg/printers"
	"tableflip.dev/dayboard/pkg/task"
)

func addNotify(topLevel *cobra.Command) {
	no := &options.NotifyOptions{}

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Show reminders entering their notification window",
		Long: "Show pending reminders whose moment is within the lead time. " +
			"With --watch, keep sweeping on an interval until interrupted.",
		Example: `
dayboard notify
dayboard notify --lead=1h
dayboard notify --watch --interval=30s
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cfg, err := newService()
			if err != nil {
				return output.HandleError(err)
			}

			lead, err := no.GetLead(cfg.NotificationLead())
			if err != nil {
				return output.HandleError(err)
			}

			pp := &printers.PrettyPrint{}

			if !no.Watch {
				pp.Upcoming(s.UpcomingReminders(lead)...)
				return nil
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			sweeper := &notify.Sweeper{
				Interval: no.Interval,
				Lead:     lead,
				Log:      s.Log,
				Source: func(ctx context.Context) ([]*task.Reminder, error) {
					// Re-read the snapshot so edits from other processes
					// surface without restarting the watch.
					b, err := s.Persistence.Restore()
					if err != nil {
						return nil, err
					}
					var pending []*task.Reminder
					for _, r := range b.RemindersIn(board.ViewReminders) {
						if r.Status == task.StatusPending {
							pending = append(pending, r)
						}
					}
					return pending, nil
				},
				OnUpcoming: func(ups []notify.Upcoming) {
					pp.Upcoming(ups...)
				},
			}
			return output.HandleError(sweeper.Run(ctx))
		},
	}

	options.AddNotifyArgs(cmd, no)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
