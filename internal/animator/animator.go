// Package animator moves a 2-D point towards a target along a piecewise
// linear velocity profile: accelerate, cruise, decelerate. An animation in
// flight can be redirected to a new target without a jump in position or
// velocity.
package animator

import (
	"math"
	"time"

	"github.com/daptify14/keynav/internal/geom"
)

// Phase boundaries as fractions of the total duration.
const (
	accelFraction  = 0.2
	cruiseFraction = 0.4
)

// DefaultMaxDuration is the ceiling that animation durations approach as
// the distance grows.
const DefaultMaxDuration = 500 * time.Millisecond

// Observer receives lifecycle callbacks. Every WillBeginAnimation is paired
// with exactly one DidEndAnimation.
type Observer interface {
	WillBeginAnimation(target geom.Point)
	DidEndAnimation(finished bool)
}

// Parameters describe one animation. T1, T2 and Duration are offsets from
// Start; velocities are in units per second.
type Parameters struct {
	Start          time.Time
	T1             time.Duration
	T2             time.Duration
	Duration       time.Duration
	From           geom.Point
	To             geom.Point
	StartVelocity  geom.Point
	MiddleVelocity geom.Point
}

// Animator owns at most one active animation.
type Animator struct {
	params      *Parameters
	last        geom.Point
	maxDuration time.Duration
	observer    Observer
}

// Option configures an Animator.
type Option func(*Animator)

// WithObserver sets the lifecycle observer.
func WithObserver(o Observer) Option {
	return func(a *Animator) { a.observer = o }
}

// WithMaxDuration sets the duration ceiling. Non-positive values are ignored.
func WithMaxDuration(d time.Duration) Option {
	return func(a *Animator) {
		if d > 0 {
			a.maxDuration = d
		}
	}
}

// New returns an idle Animator with DefaultMaxDuration as its ceiling.
func New(opts ...Option) *Animator {
	a := &Animator{maxDuration: DefaultMaxDuration}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a
}

// DurationFor returns the animation duration for a travel distance. It is
// zero for zero distance and saturates towards ceiling as distance grows.
func DurationFor(distance float64, ceiling time.Duration) time.Duration {
	if distance <= 0 || ceiling <= 0 {
		return 0
	}
	// ln(distance+e) >= 1, so the factor stays within [0, 1).
	factor := 1 - 1/math.Log(distance+math.E)
	return time.Duration(float64(ceiling) * factor)
}

// Animating reports whether an animation is in flight.
func (a *Animator) Animating() bool { return a.params != nil }

// Parameters returns a copy of the active parameters.
func (a *Animator) Parameters() (Parameters, bool) {
	if a.params == nil {
		return Parameters{}, false
	}
	return *a.params, true
}

// Target returns the destination of the animation in flight.
func (a *Animator) Target() (geom.Point, bool) {
	if a.params == nil {
		return geom.Point{}, false
	}
	return a.params.To, true
}

// Start animates from `from` to `to`. If an animation is already running,
// its velocity at now becomes the new start velocity, the new animation's
// WillBeginAnimation fires and then the interrupted one ends. It reports
// finished when its duration had already elapsed at now.
func (a *Animator) Start(now time.Time, from, to geom.Point) {
	var v0 geom.Point
	interrupted := a.params != nil
	finished := false
	if interrupted {
		elapsed := now.Sub(a.params.Start)
		finished = elapsed >= a.params.Duration
		if !finished {
			v0 = a.params.velocityAt(elapsed)
		}
	}

	p := newParameters(now, from, to, v0, DurationFor(from.Distance(to), a.maxDuration))
	a.params = &p
	a.last = from

	if a.observer != nil {
		a.observer.WillBeginAnimation(to)
		if interrupted {
			a.observer.DidEndAnimation(finished)
		}
	}
}

// Advance evaluates the animation at now. Once the duration has elapsed it
// returns exactly the target, reports completion, goes idle and fires
// DidEndAnimation(true). When idle it returns the last point and true.
func (a *Animator) Advance(now time.Time) (geom.Point, bool) {
	if a.params == nil {
		return a.last, true
	}
	elapsed := now.Sub(a.params.Start)
	if elapsed >= a.params.Duration {
		a.last = a.params.To
		a.params = nil
		if a.observer != nil {
			a.observer.DidEndAnimation(true)
		}
		return a.last, true
	}
	a.last = a.params.positionAt(elapsed)
	return a.last, false
}

// Position evaluates the animation at now without changing state.
func (a *Animator) Position(now time.Time) geom.Point {
	if a.params == nil {
		return a.last
	}
	elapsed := now.Sub(a.params.Start)
	if elapsed >= a.params.Duration {
		return a.params.To
	}
	return a.params.positionAt(elapsed)
}

// Velocity returns the instantaneous velocity at now; zero when idle.
func (a *Animator) Velocity(now time.Time) geom.Point {
	if a.params == nil {
		return geom.Point{}
	}
	return a.params.velocityAt(now.Sub(a.params.Start))
}

// Cancel stops the animation at the last computed point. It does nothing
// when idle.
func (a *Animator) Cancel() {
	if a.params == nil {
		return
	}
	a.params = nil
	if a.observer != nil {
		a.observer.DidEndAnimation(false)
	}
}

// Last returns the most recently computed point.
func (a *Animator) Last() geom.Point { return a.last }

func newParameters(now time.Time, from, to, v0 geom.Point, d time.Duration) Parameters {
	p := Parameters{
		Start:         now,
		T1:            time.Duration(float64(d) * accelFraction),
		T2:            time.Duration(float64(d) * (accelFraction + cruiseFraction)),
		Duration:      d,
		From:          from,
		To:            to,
		StartVelocity: v0,
	}
	p.MiddleVelocity = p.solveMiddleVelocity()
	return p
}

// solveMiddleVelocity picks the cruise velocity that makes the area under
// the velocity profile equal the displacement:
//
//	Δ = (v0+vm)/2·t1 + vm·(t2-t1) + vm/2·(T-t2)
func (p Parameters) solveMiddleVelocity() geom.Point {
	t1 := p.T1.Seconds()
	t2 := p.T2.Seconds()
	total := p.Duration.Seconds()
	denom := t1/2 + (t2 - t1) + (total-t2)/2
	if denom <= 0 {
		return geom.Point{}
	}
	delta := p.To.Sub(p.From)
	return delta.Sub(p.StartVelocity.Scale(t1 / 2)).Scale(1 / denom)
}

func (p Parameters) velocityAt(elapsed time.Duration) geom.Point {
	t := elapsed.Seconds()
	t1 := p.T1.Seconds()
	t2 := p.T2.Seconds()
	total := p.Duration.Seconds()
	switch {
	case t <= 0:
		return p.StartVelocity
	case t < t1:
		return lerp(p.StartVelocity, p.MiddleVelocity, t/t1)
	case t < t2:
		return p.MiddleVelocity
	case t < total:
		return p.MiddleVelocity.Scale(1 - (t-t2)/(total-t2))
	default:
		return geom.Point{}
	}
}

func (p Parameters) positionAt(elapsed time.Duration) geom.Point {
	t := elapsed.Seconds()
	t1 := p.T1.Seconds()
	t2 := p.T2.Seconds()
	total := p.Duration.Seconds()
	v0 := p.StartVelocity
	vm := p.MiddleVelocity

	if t <= 0 {
		return p.From
	}
	if t >= total {
		return p.To
	}
	if t < t1 {
		// x = v0·t + (vm-v0)·t²/(2·t1)
		return p.From.Add(v0.Scale(t)).Add(vm.Sub(v0).Scale(t * t / (2 * t1)))
	}
	accel := v0.Add(vm).Scale(t1 / 2)
	if t < t2 {
		return p.From.Add(accel).Add(vm.Scale(t - t1))
	}
	cruise := vm.Scale(t2 - t1)
	dt := t - t2
	decel := vm.Scale(dt - dt*dt/(2*(total-t2)))
	return p.From.Add(accel).Add(cruise).Add(decel)
}

func lerp(a, b geom.Point, f float64) geom.Point {
	return a.Add(b.Sub(a).Scale(f))
}
