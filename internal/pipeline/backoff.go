package pipeline

import (
	"context"
	"time"

	sharedretry "github.com/couchcryptid/storm-data-shared/retry"
	"github.com/jonboulle/clockwork"
)

const (
	initialBackoff = 200 * time.Millisecond
	maxBackoff     = 5 * time.Second
)

// backoff is a doubling retry delay capped at max. Not safe for concurrent use;
// the pipeline loop owns it.
type backoff struct {
	clock   clockwork.Clock
	initial time.Duration
	max     time.Duration
	current time.Duration
}

func newBackoff(clock clockwork.Clock, initial, maxDelay time.Duration) *backoff {
	return &backoff{clock: clock, initial: initial, max: maxDelay, current: initial}
}

func (b *backoff) reset() { b.current = b.initial }

// wait sleeps for the current delay and then doubles it. Returns false if ctx
// ended first. The sleep runs on the injected clock rather than
// sharedretry.SleepWithContext so fake clocks can drive it.
func (b *backoff) wait(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	if b.current > 0 {
		timer := b.clock.NewTimer(b.current)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return false
		case <-timer.Chan():
		}
	}
	b.current = sharedretry.NextBackoff(b.current, b.max)
	return true
}
