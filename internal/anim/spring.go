package anim

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Spring is a damped harmonic oscillator pulling a value toward its target,
// described by its physical constants.
type Spring struct {
	Mass      float64
	Stiffness float64
	Damping   float64
}

// AngularFrequency is ω = sqrt(k/m) in radians per second.
func (s Spring) AngularFrequency() float64 {
	return math.Sqrt(math.Max(s.Stiffness, 0) / s.mass())
}

// DampingRatio reports ζ; below 1 the spring overshoots its target.
func (s Spring) DampingRatio() float64 {
	if s.Stiffness <= 0 {
		return 1
	}
	return s.Damping / (2 * math.Sqrt(s.Stiffness*s.mass()))
}

func (s Spring) mass() float64 {
	if s.Mass <= 0 {
		return 1
	}
	return s.Mass
}

// integrate advances position x and velocity v toward target over dt.
// harmonica solves the oscillator in closed form, so any frame length is
// stable.
func (s Spring) integrate(x, v, target float64, dt time.Duration) (float64, float64) {
	motion := harmonica.NewSpring(dt.Seconds(), s.AngularFrequency(), s.DampingRatio())
	return motion.Update(x, v, target)
}
