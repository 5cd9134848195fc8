// Package frameclock provides a single frame tick stream for everything that
// animates in the program. Ticks are only scheduled while at least one
// subscriber is active.
//
// A Clock is owned by the bubbletea model and used from its Update loop
// only.
package frameclock

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// DefaultFrameRate is used when New is given a non-positive rate.
const DefaultFrameRate = 60

// TickMsg carries the timestamp of one frame. Gen identifies the tick stream
// that scheduled it.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

// Clock fans frame ticks out to subscribers.
type Clock struct {
	interval time.Duration
	subs     []*Subscription
	gen      uint64
	running  bool
}

// Subscription is a registered frame callback. The zero value is inactive.
type Subscription struct {
	clock *Clock
	fn    func(time.Time)
}

// New returns a stopped clock ticking frameRate times per second.
// Non-positive rates fall back to DefaultFrameRate.
func New(frameRate int) *Clock {
	if frameRate <= 0 {
		frameRate = DefaultFrameRate
	}
	return &Clock{interval: time.Second / time.Duration(frameRate)}
}

// Interval is the time between ticks.
func (c *Clock) Interval() time.Duration { return c.interval }

// Active reports whether any subscriber is registered.
func (c *Clock) Active() bool { return len(c.subs) > 0 }

// Subscribe registers fn to run on every tick. The returned command starts
// the tick stream when it is not already running; it is nil otherwise.
func (c *Clock) Subscribe(fn func(time.Time)) (*Subscription, tea.Cmd) {
	s := &Subscription{clock: c, fn: fn}
	c.subs = append(c.subs, s)
	if c.running {
		return s, nil
	}
	c.running = true
	c.gen++
	return s, c.schedule()
}

// Tick delivers msg to the current subscribers. Ticks from a stream that
// has since stopped are dropped and Tick reports false.
func (c *Clock) Tick(msg TickMsg) bool {
	if !c.running || msg.Gen != c.gen {
		return false
	}
	// Callbacks may unsubscribe.
	for _, s := range append([]*Subscription(nil), c.subs...) {
		if s.clock != nil && s.fn != nil {
			s.fn(msg.Time)
		}
	}
	return true
}

// Cmd schedules the next tick while subscribers remain.
func (c *Clock) Cmd() tea.Cmd {
	if !c.running {
		return nil
	}
	return c.schedule()
}

func (c *Clock) schedule() tea.Cmd {
	gen := c.gen
	return tea.Tick(c.interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}

func (c *Clock) remove(s *Subscription) {
	for i, sub := range c.subs {
		if sub == s {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			break
		}
	}
	if len(c.subs) == 0 {
		c.running = false
	}
}

// Unsubscribe stops callbacks. It is safe to call more than once and on a
// nil subscription.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.clock == nil {
		return
	}
	c := s.clock
	s.clock = nil
	c.remove(s)
}

// Active reports whether the subscription still receives ticks.
func (s *Subscription) Active() bool { return s != nil && s.clock != nil }
