package press

// Icon is the glyph drawn at the centre of the ring.
type Icon int

const (
	IconNone Icon = iota
	IconFingerprint
	IconCheckmark
)

func (i Icon) String() string {
	switch i {
	case IconFingerprint:
		return "fingerprint"
	case IconCheckmark:
		return "checkmark"
	default:
		return "none"
	}
}

// Tint names a palette role; front ends map tints to concrete colors.
type Tint int

const (
	TintAccent2 Tint = iota // charging / idle accent
	TintAccent1             // confirmation accent
	TintWhite
)

func (t Tint) String() string {
	switch t {
	case TintAccent1:
		return "accent1"
	case TintWhite:
		return "white"
	default:
		return "accent2"
	}
}

// FillGrowth is how much the fill circle grows at full charge.
const FillGrowth = 2.6

// Render holds the rendering parameters derived from a snapshot.
type Render struct {
	RingTrim  float64 // fraction of the ring stroke to draw, 0..1
	FillScale float64 // scale of the fill circle relative to its rest size
	Icon      Icon
	RingTint  Tint
	FillTint  Tint
}

// RenderOf derives render parameters from a snapshot. It is pure.
func RenderOf(s Snapshot) Render {
	r := Render{
		RingTrim:  s.Progress,
		FillScale: s.Progress*FillGrowth + 1.0,
		RingTint:  TintAccent2,
		FillTint:  TintAccent2,
	}
	switch {
	case s.Confirmed:
		r.Icon = IconCheckmark
	case s.Progress == 0:
		r.Icon = IconFingerprint
	}
	if s.Confirmed {
		r.RingTint = TintAccent1
	}
	if s.Progress == 1 {
		r.FillTint = TintWhite
	}
	return r
}
