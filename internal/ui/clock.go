package ui

import "time"

// Clock invokes a callback once per second until stopped. It backs the
// cosmetic wall-clock display; stopping it on view teardown is mandatory so
// no ticker leaks across navigations.
type Clock struct {
	ticker *time.Ticker
	done   chan struct{}
}

// NewClock starts a clock ticking every interval.
func NewClock(interval time.Duration, tick func(time.Time)) *Clock {
	c := &Clock{
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}
	go func() {
		for {
			select {
			case t := <-c.ticker.C:
				tick(t)
			case <-c.done:
				return
			}
		}
	}()
	return c
}

// Stop halts the ticker and releases the goroutine. Safe to call once.
func (c *Clock) Stop() {
	c.ticker.Stop()
	close(c.done)
}
