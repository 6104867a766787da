package proc

import (
	"context"
	"time"
)

// Ticker is called once before every simulated unit of work. Returning an
// error stops the scheduling pass before the unit is consumed.
type Ticker interface {
	Tick(ctx context.Context) error
}

// TickerFunc adapts a function to the Ticker interface.
type TickerFunc func(ctx context.Context) error

// Tick calls f(ctx).
func (f TickerFunc) Tick(ctx context.Context) error { return f(ctx) }

// NoDelay runs units back to back. It still honours cancellation.
var NoDelay Ticker = TickerFunc(func(ctx context.Context) error {
	return ctx.Err()
})

// Interval returns a Ticker that waits d before each unit.
// A non-positive d behaves like NoDelay.
func Interval(d time.Duration) Ticker {
	if d <= 0 {
		return NoDelay
	}
	return TickerFunc(func(ctx context.Context) error {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		}
	})
}
