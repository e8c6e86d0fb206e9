package anim

import "image/color"

// LerpRGBA blends a toward b by t, clamped to [0,1]. Both colors are
// premultiplied, and so is the blend.
func LerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// WithAlpha fades c by f in [0,1]. color.RGBA is premultiplied, so every
// channel is scaled, not only A.
func WithAlpha(c color.RGBA, f float64) color.RGBA {
	f = clamp01(f)
	scale := func(x uint8) uint8 { return uint8(float64(x)*f + 0.5) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}
