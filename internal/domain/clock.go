package domain

import (
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
)

// clockBox lets an interface value live behind an atomic pointer; Engine reads
// the clock from HTTP handlers and the pipeline at the same time.
type clockBox struct{ c clockwork.Clock }

var activeClock atomic.Pointer[clockBox]

func init() { SetClock(nil) }

// SetClock swaps the time source used by Engine. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		c = clockwork.NewRealClock()
	}
	activeClock.Store(&clockBox{c: c})
}

// Now reads the clock installed by SetClock.
func Now() time.Time {
	return activeClock.Load().c.Now()
}
