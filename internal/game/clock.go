package game

import "time"

// Tick counts simulation steps since a level started.
type Tick int64

// Clock counts ticks and converts wall-time intervals at a fixed tick rate.
// All cooldowns are compared in ticks so results do not depend on the
// platform's real frame pacing.
type Clock struct {
	now  Tick
	rate int
}

// NewClock returns a clock at tick 0 running at rate ticks per second.
func NewClock(rate int) *Clock {
	if rate <= 0 {
		rate = 60
	}
	return &Clock{rate: rate}
}

// Now returns the current tick.
func (c *Clock) Now() Tick {
	return c.now
}

// Advance moves the clock forward one tick.
func (c *Clock) Advance() {
	c.now++
}

// Ticks converts a duration to whole ticks, rounding up so a cooldown
// never ends early.
func (c *Clock) Ticks(d time.Duration) Tick {
	scaled := d * time.Duration(c.rate)
	return Tick((scaled + time.Second - 1) / time.Second)
}
