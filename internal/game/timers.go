package game

import "time"

// countdown is a frame-delta timer. It fires once when the remaining time
// crosses zero and stays idle until reset. Pausing the session simply stops
// ticking, so paused time never counts against a countdown.
type countdown struct {
	remaining time.Duration
	running   bool
}

func (c *countdown) set(d time.Duration) {
	c.remaining = d
	c.running = d > 0
}

func (c *countdown) stop() {
	c.running = false
	c.remaining = 0
}

// tick advances the countdown and reports whether it fired on this tick.
func (c *countdown) tick(dt time.Duration) bool {
	if !c.running {
		return false
	}
	c.remaining -= dt
	if c.remaining <= 0 {
		c.running = false
		return true
	}
	return false
}

func (c *countdown) active() bool { return c.running }

// stopwatch accumulates elapsed time while its owner lets it run. The
// powerup gate uses one so suspended stretches simply do not accumulate.
type stopwatch struct {
	elapsed time.Duration
}

func (s *stopwatch) add(dt time.Duration) { s.elapsed += dt }

func (s *stopwatch) reset() { s.elapsed = 0 }

func (s *stopwatch) total() time.Duration { return s.elapsed }
