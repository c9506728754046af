package reveal

import (
	"context"
	"time"
)

// PollInterval is the coarse re-evaluation cadence. The phase windows are
// tens of seconds wide, so a few seconds of lag is invisible.
const PollInterval = 5 * time.Second

// Poll calls fn with the current time immediately and then on every tick
// until ctx is cancelled. The visibility windows are wall-clock driven, not
// event driven, so the display has to be recomputed periodically.
func Poll(ctx context.Context, interval time.Duration, fn func(now time.Time)) {
	if interval <= 0 {
		interval = PollInterval
	}
	fn(time.Now())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			fn(now)
		}
	}
}
