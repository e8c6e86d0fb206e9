// Package anim provides the interpolation primitives the gallery scenes use:
// timing curves, damped springs, and an animated float that can be
// retargeted mid-flight.
package anim

import "math"

// Curve maps linear progress t in [0,1] to eased progress. Eased values may
// leave [0,1] for curves that overshoot.
type Curve interface {
	Ease(t float64) float64
}

// CurveFunc adapts a plain function to Curve.
type CurveFunc func(t float64) float64

func (f CurveFunc) Ease(t float64) float64 { return f(t) }

// CubicBezier is a CSS-style timing curve with control points (X1,Y1) and
// (X2,Y2); the end points are fixed at (0,0) and (1,1).
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

var (
	LinearCurve  Curve = CurveFunc(func(t float64) float64 { return clamp01(t) })
	EaseInCurve  Curve = CubicBezier{0.42, 0, 1, 1}
	EaseOutCurve Curve = CubicBezier{0, 0, 0.58, 1}
)

const (
	newtonIterations = 8
	newtonEpsilon    = 1e-7
	bisectIterations = 40
)

// Ease solves the curve's x(s) = t for the parameter s and returns y(s).
func (b CubicBezier) Ease(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return b.y(b.solve(t))
}

func (b CubicBezier) x(s float64) float64 { return bezier(s, b.X1, b.X2) }
func (b CubicBezier) y(s float64) float64 { return bezier(s, b.Y1, b.Y2) }

// bezier evaluates a one-dimensional cubic with end points 0 and 1.
func bezier(s, p1, p2 float64) float64 {
	u := 1 - s
	return 3*u*u*s*p1 + 3*u*s*s*p2 + s*s*s
}

func bezierSlope(s, p1, p2 float64) float64 {
	u := 1 - s
	return 3*u*u*p1 + 6*u*s*(p2-p1) + 3*s*s*(1-p2)
}

func (b CubicBezier) solve(x float64) float64 {
	s := x
	for i := 0; i < newtonIterations; i++ {
		err := b.x(s) - x
		if math.Abs(err) < newtonEpsilon {
			return s
		}
		d := bezierSlope(s, b.X1, b.X2)
		if math.Abs(d) < 1e-6 {
			break
		}
		s -= err / d
	}

	// Newton stalled on a flat segment; x(s) is monotonic for X1,X2 in [0,1].
	lo, hi := 0.0, 1.0
	s = x
	for i := 0; i < bisectIterations; i++ {
		v := b.x(s)
		if math.Abs(v-x) < newtonEpsilon {
			break
		}
		if v < x {
			lo = s
		} else {
			hi = s
		}
		s = (lo + hi) / 2
	}
	return s
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
