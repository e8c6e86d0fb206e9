package anim

import (
	"math"
	"time"
)

// Animation describes how a value travels to a new target: either along a
// timed curve or under a spring. The zero Animation jumps immediately.
type Animation struct {
	Duration time.Duration
	Delay    time.Duration
	Curve    Curve
	Spring   *Spring
}

// None jumps to the target without interpolation.
var None = Animation{}

// DefaultDuration is used by the curve constructors when none is given.
const DefaultDuration = 350 * time.Millisecond

func Linear(d time.Duration) Animation { return Animation{Duration: d, Curve: LinearCurve} }

func EaseIn(d time.Duration) Animation { return Animation{Duration: d, Curve: EaseInCurve} }

func EaseOut(d time.Duration) Animation { return Animation{Duration: d, Curve: EaseOutCurve} }

// TimingCurve animates along a cubic bezier with the given control points.
func TimingCurve(x1, y1, x2, y2 float64, d time.Duration) Animation {
	return Animation{Duration: d, Curve: CubicBezier{x1, y1, x2, y2}}
}

// InterpolatingSpring animates under a spring. The motion keeps any
// velocity the value already has.
func InterpolatingSpring(mass, stiffness, damping float64) Animation {
	return Animation{Spring: &Spring{Mass: mass, Stiffness: stiffness, Damping: damping}}
}

// Delayed returns a copy of a that waits d before starting.
func (a Animation) Delayed(d time.Duration) Animation {
	a.Delay = d
	return a
}

func (a Animation) isNone() bool {
	return a.Spring == nil && (a.Duration <= 0 || a.Curve == nil)
}

// Float is a value animated toward a target. The zero Float rests at 0.
// It is driven by Step and is not safe for concurrent use.
type Float struct {
	value    float64
	velocity float64
	from     float64
	to       float64
	anim     Animation
	elapsed  time.Duration
	active   bool
	settle   float64
}

// NewFloat returns a Float resting at v.
func NewFloat(v float64) *Float {
	f := &Float{}
	f.Snap(v)
	return f
}

// Value is the current interpolated value.
func (f *Float) Value() float64 { return f.value }

// Target is the value the Float is heading to, or resting at.
func (f *Float) Target() float64 { return f.to }

// Velocity is the current rate of change in units per second. Timed
// animations do not track velocity.
func (f *Float) Velocity() float64 { return f.velocity }

// Active reports whether an animation is still running or waiting out its
// delay.
func (f *Float) Active() bool { return f.active }

// Snap jumps to v and stops any animation.
func (f *Float) Snap(v float64) {
	f.value, f.from, f.to = v, v, v
	f.velocity = 0
	f.active = false
	f.anim = None
	f.elapsed = 0
}

// Animate starts moving toward to. Retargeting a running spring keeps its
// velocity; a timed animation restarts from the current value.
func (f *Float) Animate(to float64, a Animation) {
	if a.isNone() && a.Delay <= 0 {
		f.Snap(to)
		return
	}
	f.from = f.value
	f.to = to
	f.anim = a
	f.elapsed = 0
	f.active = true
	f.settle = math.Max(math.Abs(to-f.value), 1) * 1e-3
	if a.Spring == nil {
		f.velocity = 0
	}
}

// Step advances the animation by dt.
func (f *Float) Step(dt time.Duration) {
	if !f.active || dt <= 0 {
		return
	}
	prevElapsed := f.elapsed
	f.elapsed += dt
	if f.elapsed <= f.anim.Delay {
		return
	}
	run := f.elapsed - f.anim.Delay
	if prevElapsed < f.anim.Delay {
		dt = run
	}

	switch {
	case f.anim.Spring != nil:
		f.value, f.velocity = f.anim.Spring.integrate(f.value, f.velocity, f.to, dt)
		if math.Abs(f.value-f.to) < f.settle && math.Abs(f.velocity) < f.settle {
			f.Snap(f.to)
		}
	case f.anim.isNone():
		f.Snap(f.to)
	default:
		t := float64(run) / float64(f.anim.Duration)
		if t >= 1 {
			f.Snap(f.to)
			return
		}
		f.value = f.from + (f.to-f.from)*f.anim.Curve.Ease(t)
	}
}
