package gallery

import (
	"image/color"
	"log/slog"
	"time"

	"github.com/iburimskiy/animation-gallery/internal/anim"
	"github.com/iburimskiy/animation-gallery/internal/press"
)

// Cue is a one-shot event raised when a press flag turns on.
type Cue int

const (
	CueConfirm Cue = iota + 1
	CueExplode
)

func (c Cue) String() string {
	switch c {
	case CueConfirm:
		return "confirm"
	case CueExplode:
		return "explode"
	default:
		return "unknown"
	}
}

// Ring geometry of the press scene.
const (
	FillDiameter = 100
	RingDiameter = 360
	RingWidth    = 5
	FillStroke   = 2
	IconSize     = 30
)

var (
	fillSpring = anim.InterpolatingSpring(1, 100, 15)
	iconFade   = anim.EaseIn(anim.DefaultDuration)
	burstOut   = anim.EaseOut(600 * time.Millisecond)
)

// PressRing is the long-press progress ring. The press.Session owns the
// state; PressRing layers smoothing on top of each snapshot change and
// turns flag edges into cues.
type PressRing struct {
	session *press.Session
	log     *slog.Logger

	fill  *anim.Float // smoothed progress behind the fill circles
	trim  *anim.Float // drawn ring length
	check *anim.Float // checkmark color, 0 clear .. 1 green
	burst *anim.Float // explosion flourish, 0..1

	cues []Cue
}

// NewPressRing builds the scene around a fresh session with timings t.
func NewPressRing(t press.Timings, log *slog.Logger) *PressRing {
	if log == nil {
		log = slog.Default()
	}
	s := &PressRing{
		session: press.NewSession(t, press.WithLogger(log)),
		log:     log,
		fill:    anim.NewFloat(0),
		trim:    anim.NewFloat(0),
		check:   anim.NewFloat(0),
		burst:   anim.NewFloat(0),
	}
	s.session.Subscribe(s.onChange)
	return s
}

func (s *PressRing) Name() string { return "Combination" }

// Session exposes the underlying state machine.
func (s *PressRing) Session() *press.Session { return s.session }

func (s *PressRing) PressStart() { s.session.PressStart() }

func (s *PressRing) PressEnd() { s.session.PressEnd() }

// Step advances the session first so that its changes retarget the
// smoothing before the smoothing itself moves.
func (s *PressRing) Step(dt time.Duration) {
	s.session.Advance(dt)
	s.fill.Step(dt)
	s.trim.Step(dt)
	s.check.Step(dt)
	s.burst.Step(dt)
}

// DrainCues returns the cues raised since the last call.
func (s *PressRing) DrainCues() []Cue {
	out := s.cues
	s.cues = nil
	return out
}

// ringSweep holds the drawn ring back for the first half of the wait for
// confirmation, then sweeps it in linearly so it closes as confirm lands.
func ringSweep(t press.Timings) anim.Animation {
	lead := t.ConfirmAt() / 2
	return anim.Linear(t.ConfirmAt() - lead).Delayed(lead)
}

func (s *PressRing) onChange(prev, next press.Snapshot) {
	if !prev.Held && next.Held {
		s.trim.Animate(1, ringSweep(s.session.Timings()))
	}
	if prev.Progress != next.Progress {
		s.fill.Animate(next.Progress, fillSpring)
	}
	if !prev.Confirmed && next.Confirmed {
		s.check.Animate(1, iconFade)
		s.cues = append(s.cues, CueConfirm)
	}
	if !prev.Exploded && next.Exploded {
		s.burst.Animate(1, burstOut)
		s.cues = append(s.cues, CueExplode)
	}
	if prev.Held && !next.Held {
		s.trim.Snap(0)
		s.check.Snap(0)
		s.burst.Snap(0)
	}
}

// RingView holds everything needed to draw the press scene. Its RingTrim
// is the smoothed ring, not the raw progress.
type RingView struct {
	press.Render

	Snapshot  press.Snapshot
	FillScale float64 // smoothed; may overshoot during the spring
	FillColor color.RGBA
	RingColor color.RGBA
	IconColor color.RGBA
	Burst     float64
}

func (s *PressRing) View() RingView {
	snap := s.session.Snapshot()
	r := press.RenderOf(snap)
	v := RingView{
		Render:    r,
		Snapshot:  snap,
		FillScale: s.fill.Value()*press.FillGrowth + 1,
		FillColor: fillColor(r.FillTint),
		RingColor: ringColor(r.RingTint),
		Burst:     s.burst.Value(),
	}
	v.RingTrim = s.trim.Value()
	switch r.Icon {
	case press.IconCheckmark:
		v.IconColor = anim.WithAlpha(Green, s.check.Value())
	case press.IconFingerprint:
		v.IconColor = White
	}
	return v
}

// ringColor maps tints for the progress ring: green confirms, blue charges.
func ringColor(t press.Tint) color.RGBA {
	if t == press.TintAccent1 {
		return Green
	}
	return Blue
}

// fillColor maps tints for the fill circle: white at full charge, else red.
func fillColor(t press.Tint) color.RGBA {
	switch t {
	case press.TintWhite:
		return White
	case press.TintAccent1:
		return Green
	default:
		return Red
	}
}
