package anim

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = time.Second / 60

func TestCurveEndpoints(t *testing.T) {
	curves := map[string]Curve{
		"linear":    LinearCurve,
		"easeIn":    EaseInCurve,
		"easeOut":   EaseOutCurve,
		"overshoot": CubicBezier{0.865, -0.295, 0.325, 1.275},
	}
	for name, c := range curves {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, 0, c.Ease(0), 1e-9)
			assert.InDelta(t, 1, c.Ease(1), 1e-9)
			assert.InDelta(t, 0, c.Ease(-0.5), 1e-9)
			assert.InDelta(t, 1, c.Ease(1.5), 1e-9)
		})
	}
}

func TestEaseInStartsSlow(t *testing.T) {
	assert.Less(t, EaseInCurve.Ease(0.25), 0.25)
	assert.Greater(t, EaseOutCurve.Ease(0.25), 0.25)
	assert.InDelta(t, 0.5, CubicBezier{0.42, 0, 0.58, 1}.Ease(0.5), 1e-6)
}

func TestBezierIsLinearForDiagonalControls(t *testing.T) {
	c := CubicBezier{1.0 / 3, 1.0 / 3, 2.0 / 3, 2.0 / 3}
	for _, x := range []float64{0.1, 0.3, 0.5, 0.9} {
		assert.InDelta(t, x, c.Ease(x), 1e-6)
	}
}

// TestOvershootCurve checks that the anticipating curve dips below zero early
// and rises above one before settling.
func TestOvershootCurve(t *testing.T) {
	c := CubicBezier{0.865, -0.295, 0.325, 1.275}
	assert.Less(t, c.Ease(0.1), 0.0)

	peak := 0.0
	for x := 0.0; x <= 1.0; x += 0.01 {
		if v := c.Ease(x); v > peak {
			peak = v
		}
	}
	assert.Greater(t, peak, 1.0)
}

func TestFloatLinear(t *testing.T) {
	f := NewFloat(0)
	f.Animate(10, Linear(time.Second))
	require.True(t, f.Active())

	f.Step(500 * time.Millisecond)
	assert.InDelta(t, 5, f.Value(), 1e-9)

	f.Step(600 * time.Millisecond)
	assert.Equal(t, 10.0, f.Value())
	assert.False(t, f.Active())
}

func TestFloatDelay(t *testing.T) {
	f := NewFloat(0)
	f.Animate(1, Linear(100*time.Millisecond).Delayed(100*time.Millisecond))

	f.Step(50 * time.Millisecond)
	assert.Zero(t, f.Value())
	assert.True(t, f.Active())

	f.Step(100 * time.Millisecond)
	assert.InDelta(t, 0.5, f.Value(), 1e-9)
}

func TestFloatDelayedJump(t *testing.T) {
	f := NewFloat(0)
	f.Animate(1, None.Delayed(time.Second))
	f.Step(500 * time.Millisecond)
	assert.Zero(t, f.Value())
	f.Step(600 * time.Millisecond)
	assert.Equal(t, 1.0, f.Value())
	assert.False(t, f.Active())
}

func TestFloatNoneSnaps(t *testing.T) {
	f := NewFloat(3)
	f.Animate(7, None)
	assert.Equal(t, 7.0, f.Value())
	assert.False(t, f.Active())
}

func TestFloatRetargetTimedRestartsFromCurrent(t *testing.T) {
	f := NewFloat(0)
	f.Animate(1, Linear(time.Second))
	f.Step(500 * time.Millisecond)

	f.Animate(0, Linear(time.Second))
	f.Step(500 * time.Millisecond)
	assert.InDelta(t, 0.25, f.Value(), 1e-9)
}

func TestSpringSettlesOnTarget(t *testing.T) {
	f := NewFloat(0)
	f.Animate(1, InterpolatingSpring(1, 100, 15))

	for i := 0; i < 300 && f.Active(); i++ {
		f.Step(tick)
	}
	assert.False(t, f.Active())
	assert.Equal(t, 1.0, f.Value())
}

func TestUnderdampedSpringOvershoots(t *testing.T) {
	spring := InterpolatingSpring(0.8, 200, 10)
	require.Less(t, spring.Spring.DampingRatio(), 1.0)

	f := NewFloat(0)
	f.Animate(1, spring)
	peak := 0.0
	for i := 0; i < 180; i++ {
		f.Step(tick)
		if f.Value() > peak {
			peak = f.Value()
		}
	}
	assert.Greater(t, peak, 1.05)
	assert.InDelta(t, 1, f.Value(), 1e-2)
}

func TestSpringRetargetKeepsVelocity(t *testing.T) {
	f := NewFloat(0)
	f.Animate(1, InterpolatingSpring(1, 200, 10))
	f.Step(50 * time.Millisecond)
	require.Greater(t, f.Velocity(), 0.0)

	before := f.Value()
	f.Animate(0, InterpolatingSpring(1, 200, 10))
	f.Step(time.Millisecond)
	assert.Greater(t, f.Value(), before, "momentum should carry past the retarget")
}

func TestSpringConstants(t *testing.T) {
	s := Spring{Mass: 0.8, Stiffness: 200, Damping: 10}
	assert.InDelta(t, 15.811, s.AngularFrequency(), 1e-3)
	assert.InDelta(t, 0.395, s.DampingRatio(), 1e-3)

	massless := Spring{Stiffness: 100, Damping: 20}
	assert.InDelta(t, 10, massless.AngularFrequency(), 1e-9)
	assert.InDelta(t, 1, massless.DampingRatio(), 1e-9, "zero mass is treated as unit mass")
}

func TestSpringStableAtLowTickRate(t *testing.T) {
	f := NewFloat(0)
	f.Animate(250, InterpolatingSpring(1, 300, 15))
	for i := 0; i < 90; i++ {
		f.Step(time.Second / 30)
		require.Less(t, f.Value(), 1000.0)
	}
	assert.InDelta(t, 250, f.Value(), 1)
}

func TestLerpRGBA(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	green := color.RGBA{G: 255, A: 255}

	assert.Equal(t, red, LerpRGBA(red, green, 0))
	assert.Equal(t, green, LerpRGBA(red, green, 1))
	assert.Equal(t, green, LerpRGBA(red, green, 2))
	assert.Equal(t, color.RGBA{R: 128, G: 128, A: 255}, LerpRGBA(red, green, 0.5))
	assert.Equal(t, color.RGBA{R: 128, A: 128}, WithAlpha(red, 0.5))
}

func TestWithAlphaStaysPremultiplied(t *testing.T) {
	colors := []color.RGBA{
		{R: 52, G: 199, B: 89, A: 255},
		{R: 255, G: 59, B: 48, A: 255},
		{R: 100, G: 40, B: 10, A: 120},
	}
	for _, c := range colors {
		for _, f := range []float64{0, 0.1, 0.33, 0.5, 0.99, 1, 1.5} {
			faded := WithAlpha(c, f)
			r, g, b, a := faded.RGBA()
			assert.LessOrEqual(t, r, a, "%v at %v", c, f)
			assert.LessOrEqual(t, g, a, "%v at %v", c, f)
			assert.LessOrEqual(t, b, a, "%v at %v", c, f)
		}
	}
	assert.Equal(t, color.RGBA{}, WithAlpha(colors[0], 0))
	assert.Equal(t, colors[0], WithAlpha(colors[0], 1))
}
