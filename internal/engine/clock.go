package engine

import "time"

// TimerConfig describes a scheduled callback.
type TimerConfig struct {
	Delay    time.Duration
	Loop     bool // Fire every Delay until removed
	Callback func()
}

// TimerEvent is a callback scheduled on a scene clock.
type TimerEvent struct {
	delay    time.Duration
	elapsed  time.Duration
	loop     bool
	callback func()
	fired    int
	removed  bool
}

// Remove cancels the timer. Safe to call from its own callback.
func (t *TimerEvent) Remove() {
	t.removed = true
}

// Removed reports whether the timer was cancelled or has completed.
func (t *TimerEvent) Removed() bool {
	return t.removed
}

// Fired returns how many times the callback has run.
func (t *TimerEvent) Fired() int {
	return t.fired
}

// Remaining returns the time until the next firing.
func (t *TimerEvent) Remaining() time.Duration {
	return t.delay - t.elapsed
}

// Clock drives scene timers. It only advances when its scene updates,
// so timers stop while the scene is paused.
type Clock struct {
	now     time.Duration
	events  []*TimerEvent
	pending []*TimerEvent
}

// NewClock creates a clock at time zero.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the scene time elapsed since the clock was created or reset.
func (c *Clock) Now() time.Duration {
	return c.now
}

// AddEvent schedules a timer. Timers added from a callback start on the next update.
func (c *Clock) AddEvent(cfg TimerConfig) *TimerEvent {
	t := &TimerEvent{
		delay:    cfg.Delay,
		loop:     cfg.Loop,
		callback: cfg.Callback,
	}
	c.pending = append(c.pending, t)
	return t
}

// DelayedCall runs fn once after delay.
func (c *Clock) DelayedCall(delay time.Duration, fn func()) *TimerEvent {
	return c.AddEvent(TimerConfig{Delay: delay, Callback: fn})
}

// Update advances the clock and fires due timers in scheduling order.
func (c *Clock) Update(dt time.Duration) {
	c.now += dt

	if len(c.pending) > 0 {
		c.events = append(c.events, c.pending...)
		c.pending = c.pending[:0]
	}

	for _, t := range c.events {
		if t.removed {
			continue
		}
		t.elapsed += dt
		for !t.removed && t.elapsed >= t.delay {
			t.fired++
			if t.callback != nil {
				t.callback()
			}
			if !t.loop || t.delay <= 0 {
				t.removed = true
				break
			}
			t.elapsed -= t.delay
		}
	}

	live := c.events[:0]
	for _, t := range c.events {
		if !t.removed {
			live = append(live, t)
		}
	}
	clear(c.events[len(live):])
	c.events = live
}

// Len returns the number of scheduled timers.
func (c *Clock) Len() int {
	return len(c.events) + len(c.pending)
}

// RemoveAll cancels every timer and resets time to zero.
func (c *Clock) RemoveAll() {
	for _, t := range c.events {
		t.removed = true
	}
	for _, t := range c.pending {
		t.removed = true
	}
	c.events = nil
	c.pending = nil
	c.now = 0
}
