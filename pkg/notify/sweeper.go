package notify

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/dayboard/pkg/task"
)

// DefaultInterval is how often the sweeper re-evaluates pending reminders.
const DefaultInterval = time.Minute

// Sweeper periodically matches pending reminders against the clock and
// hands the hits to OnUpcoming. Each sweep runs to completion before the
// next is scheduled; there is no overlap.
type Sweeper struct {
	// Interval between sweeps. Defaults to DefaultInterval.
	Interval time.Duration

	// Lead is how far ahead of a reminder's moment it starts matching.
	Lead time.Duration

	// Source supplies the current pending reminders on every sweep.
	Source func(ctx context.Context) ([]*task.Reminder, error)

	// OnUpcoming receives the matches of a sweep. Only called when at
	// least one reminder matched.
	OnUpcoming func(upcoming []Upcoming)

	// Now is the clock, overridable for tests. Defaults to time.Now.
	Now func() time.Time

	Log *zap.Logger
}

// Run sweeps immediately and then on every interval tick until ctx is
// cancelled. A failing Source is logged and retried on the next tick.
func (s *Sweeper) Run(ctx context.Context) error {
	if s.Source == nil {
		return errors.New("notify: sweeper requires a source")
	}

	interval := s.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	s.sweep(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	reminders, err := s.Source(ctx)
	if err != nil {
		if s.Log != nil {
			s.Log.Warn("reminder sweep failed", zap.Error(err))
		}
		return
	}

	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}

	upcoming := UpcomingReminders(reminders, now, s.Lead)
	if len(upcoming) > 0 && s.OnUpcoming != nil {
		s.OnUpcoming(upcoming)
	}
}
