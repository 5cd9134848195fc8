package scroll

import (
	"math"
	"time"

	"github.com/daptify14/keynav/internal/animator"
	"github.com/daptify14/keynav/internal/geom"
	"github.com/daptify14/keynav/internal/input"
)

// Passive deceleration after a fling. Velocity decays as e^(-momentumDecay·t)
// and stops below momentumStopSpeed.
const (
	momentumDecay     = 4.0
	momentumStopSpeed = 2.0
)

// Scroller owns a scroll offset and animates it in response to key input,
// direct dragging and flings.
type Scroller struct {
	geometry    Geometry
	metrics     Metrics
	offset      geom.Point
	anim        *animator.Animator
	interacting bool
	momentum    momentum
}

// NewScroller returns a scroller at the minimum legal offset.
func NewScroller(g Geometry, m Metrics, opts ...animator.Option) *Scroller {
	lo, _ := g.OffsetRange()
	return &Scroller{
		geometry: g,
		metrics:  m,
		offset:   lo,
		anim:     animator.New(opts...),
	}
}

// Offset is the current scroll offset.
func (s *Scroller) Offset() geom.Point { return s.offset }

// Geometry returns the bounds, content size and insets in use.
func (s *Scroller) Geometry() Geometry { return s.geometry }

// Metrics returns the reference metrics used to scale jumps.
func (s *Scroller) Metrics() Metrics { return s.metrics }

// Interacting reports whether a drag is in progress.
func (s *Scroller) Interacting() bool { return s.interacting }

// Animating reports whether a targeted animation is in flight.
func (s *Scroller) Animating() bool { return s.anim.Animating() }

// Decelerating reports whether momentum from a released drag is decaying.
func (s *Scroller) Decelerating() bool { return s.momentum.active }

// VisibleRect is the content-space rectangle shown at the current offset.
func (s *Scroller) VisibleRect() geom.Rect { return s.geometry.VisibleRect(s.offset) }

// Target is the offset the scroller comes to rest at when no further input
// arrives during an animation. Passive deceleration has no fixed target and
// reports the current offset.
func (s *Scroller) Target() geom.Point { return s.base() }

// Active reports whether Tick still has work to do.
func (s *Scroller) Active() bool {
	return s.anim.Animating() || s.momentum.active
}

// SetGeometry replaces the geometry. A resting offset is re-clamped. An
// animation in flight keeps its target when it is still legal and is
// redirected to the clamped target otherwise.
func (s *Scroller) SetGeometry(now time.Time, g Geometry) {
	s.geometry = g
	target, ok := s.anim.Target()
	if !ok {
		s.offset = Clamp(s.offset, g)
		return
	}
	if clamped := Clamp(target, g); clamped != target {
		s.anim.Start(now, s.anim.Position(now), clamped)
	}
}

// SetMetrics replaces the reference metrics.
func (s *Scroller) SetMetrics(m Metrics) { s.metrics = m }

// Scroll moves by the displacement for dir and step. The displacement is
// applied to the target of an animation in flight, so repeated presses
// accumulate. It reports false when the request was suppressed or produced
// no movement.
func (s *Scroller) Scroll(now time.Time, dir input.Direction, step input.Step) bool {
	if s.suppressed() {
		return false
	}
	s.stopMomentum()
	d := Resolve(dir, step, s.geometry, s.metrics)
	return s.animateTo(now, s.base().Add(d))
}

// ScrollTo moves to target, clamped. Without animation the offset jumps and
// any animation in flight ends unfinished.
func (s *Scroller) ScrollTo(now time.Time, target geom.Point, animated bool) bool {
	if s.suppressed() {
		return false
	}
	s.stopMomentum()
	if !animated {
		s.anim.Cancel()
		target = Clamp(target, s.geometry)
		moved := target != s.offset
		s.offset = target
		return moved
	}
	return s.animateTo(now, target)
}

// Tick advances whichever motion is active and reports whether more ticks
// are needed.
func (s *Scroller) Tick(now time.Time) (geom.Point, bool) {
	if s.anim.Animating() {
		p, done := s.anim.Advance(now)
		if done {
			p = Clamp(p, s.geometry)
		}
		s.offset = p
		return p, !done
	}
	if s.momentum.active {
		s.offset = s.momentum.step(now, s.offset, s.geometry)
		return s.offset, s.momentum.active
	}
	return s.offset, false
}

// BeginInteraction marks the start of direct manipulation. Passive
// deceleration stops where it is.
func (s *Scroller) BeginInteraction() {
	s.interacting = true
	s.stopMomentum()
}

// Drag moves the resting offset by delta during an interaction. An
// animation in flight keeps control of the offset until it ends.
func (s *Scroller) Drag(delta geom.Point) bool {
	if !s.interacting || s.anim.Animating() {
		return false
	}
	next := Clamp(s.offset.Add(delta), s.geometry)
	moved := next != s.offset
	s.offset = next
	return moved
}

// EndInteraction ends direct manipulation, handing a non-zero release
// velocity to passive deceleration.
func (s *Scroller) EndInteraction(now time.Time, velocity geom.Point) {
	s.interacting = false
	if !s.anim.Animating() {
		s.momentum.start(now, velocity)
	}
}

// Fling starts passive deceleration with velocity, ending any animation in
// flight unfinished. A fling during deceleration adds to the remaining
// velocity.
func (s *Scroller) Fling(now time.Time, velocity geom.Point) {
	if s.anim.Animating() {
		s.offset = s.anim.Position(now)
		s.anim.Cancel()
	}
	if s.momentum.active {
		s.offset = s.momentum.step(now, s.offset, s.geometry)
		if s.momentum.active {
			velocity = velocity.Add(s.momentum.velocity)
		}
	}
	s.momentum.start(now, velocity)
}

// Stop ends all motion where it is.
func (s *Scroller) Stop(now time.Time) {
	if s.anim.Animating() {
		s.offset = s.anim.Position(now)
		s.anim.Cancel()
	}
	s.stopMomentum()
}

func (s *Scroller) suppressed() bool {
	return s.interacting && s.anim.Animating()
}

func (s *Scroller) stopMomentum() {
	s.momentum = momentum{}
}

// base is the offset new relative requests are measured from.
func (s *Scroller) base() geom.Point {
	if t, ok := s.anim.Target(); ok {
		return t
	}
	return s.offset
}

func (s *Scroller) animateTo(now time.Time, proposed geom.Point) bool {
	target := Clamp(proposed, s.geometry)
	if target == s.base() {
		return false
	}
	from := s.offset
	if s.anim.Animating() {
		from = s.anim.Position(now)
	}
	s.anim.Start(now, from, target)
	return true
}

type momentum struct {
	velocity geom.Point
	last     time.Time
	active   bool
}

func (m *momentum) start(now time.Time, velocity geom.Point) {
	*m = momentum{velocity: velocity, last: now, active: velocity.Length() >= momentumStopSpeed}
}

// step integrates the decaying velocity exactly over the elapsed time. An
// axis that hits a boundary loses its velocity.
func (m *momentum) step(now time.Time, offset geom.Point, g Geometry) geom.Point {
	dt := now.Sub(m.last).Seconds()
	if dt <= 0 {
		return offset
	}
	m.last = now

	k := math.Exp(-momentumDecay * dt)
	moved := offset.Add(m.velocity.Scale((1 - k) / momentumDecay))
	m.velocity = m.velocity.Scale(k)

	clamped := Clamp(moved, g)
	if clamped.X != moved.X {
		m.velocity.X = 0
	}
	if clamped.Y != moved.Y {
		m.velocity.Y = 0
	}
	if m.velocity.Length() < momentumStopSpeed {
		m.active = false
	}
	return clamped
}
