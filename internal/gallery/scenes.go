package gallery

import (
	"image/color"
	"time"

	"github.com/iburimskiy/animation-gallery/internal/anim"
)

// ToggleColor flips a circle between red and green with an ease-in.
type ToggleColor struct {
	on  bool
	mix *anim.Float
}

func NewToggleColor() *ToggleColor { return &ToggleColor{mix: anim.NewFloat(0)} }

func (s *ToggleColor) Name() string { return "Toggle + Color Effect" }

func (s *ToggleColor) Tap() {
	s.on = !s.on
	s.mix.Animate(boolf(s.on), anim.EaseIn(500*time.Millisecond))
}

func (s *ToggleColor) Step(dt time.Duration) { s.mix.Step(dt) }

// CircleView is a single circle positioned relative to the window centre.
type CircleView struct {
	OffsetX, OffsetY float64
	Diameter         float64
	Scale            float64
	Color            color.RGBA
}

func (s *ToggleColor) View() CircleView {
	return CircleView{Diameter: CircleDiameter, Scale: 1, Color: anim.LerpRGBA(Red, Green, s.mix.Value())}
}

// IncrementScale grows a circle by one unit of scale per tap.
type IncrementScale struct {
	amount *anim.Float
}

func NewIncrementScale() *IncrementScale { return &IncrementScale{amount: anim.NewFloat(1)} }

func (s *IncrementScale) Name() string { return "Increment + Scale effect" }

func (s *IncrementScale) Tap() {
	s.amount.Animate(s.amount.Target()+1, anim.EaseIn(anim.DefaultDuration))
}

// Reset shrinks the circle back to its rest size.
func (s *IncrementScale) Reset() {
	s.amount.Animate(1, anim.EaseIn(anim.DefaultDuration))
}

func (s *IncrementScale) Step(dt time.Duration) { s.amount.Step(dt) }

func (s *IncrementScale) View() CircleView {
	return CircleView{Diameter: CircleDiameter, Scale: s.amount.Value(), Color: Red}
}

// OffsetColor slides a circle along a capsule track and recolors it.
type OffsetColor struct {
	on     bool
	offset *anim.Float
	mix    *anim.Float
}

// OffsetTravel is how far either side of centre the circle rests.
const OffsetTravel = 80

func NewOffsetColor() *OffsetColor {
	return &OffsetColor{offset: anim.NewFloat(-OffsetTravel), mix: anim.NewFloat(0)}
}

func (s *OffsetColor) Name() string { return "Offset + Color" }

func (s *OffsetColor) Tap() {
	s.on = !s.on
	a := anim.EaseIn(anim.DefaultDuration)
	if s.on {
		s.offset.Animate(OffsetTravel, a)
	} else {
		s.offset.Animate(-OffsetTravel, a)
	}
	s.mix.Animate(boolf(s.on), a)
}

func (s *OffsetColor) Step(dt time.Duration) {
	s.offset.Step(dt)
	s.mix.Step(dt)
}

// TrackView is the capsule behind the sliding circle.
type TrackView struct {
	Height float64
	Color  color.RGBA
}

func (s *OffsetColor) View() (CircleView, TrackView) {
	c := CircleView{
		OffsetX:  s.offset.Value(),
		Diameter: CircleDiameter,
		Scale:    1,
		Color:    anim.LerpRGBA(Red, Green, s.mix.Value()),
	}
	return c, TrackView{Height: 200, Color: Track}
}

// BezierScale scales a circle along an anticipating cubic bezier curve.
type BezierScale struct {
	on    bool
	scale *anim.Float
}

var bezierScale = anim.TimingCurve(0.865, -0.295, 0.325, 1.275, 700*time.Millisecond)

func NewBezierScale() *BezierScale { return &BezierScale{scale: anim.NewFloat(1)} }

func (s *BezierScale) Name() string { return "Toggle + Cubic Bezier effect" }

func (s *BezierScale) Tap() {
	s.on = !s.on
	if s.on {
		s.scale.Animate(2.5, bezierScale)
	} else {
		s.scale.Animate(1, bezierScale)
	}
}

func (s *BezierScale) Step(dt time.Duration) { s.scale.Step(dt) }

func (s *BezierScale) View() CircleView {
	return CircleView{Diameter: CircleDiameter, Scale: s.scale.Value(), Color: Red}
}

// SpringDrop drops a circle under a bouncy spring.
type SpringDrop struct {
	down   bool
	offset *anim.Float
}

var dropSpring = anim.InterpolatingSpring(0.8, 200, 10)

// DropDistance is the vertical travel of the dropped circle.
const DropDistance = 250

func NewSpringDrop() *SpringDrop { return &SpringDrop{offset: anim.NewFloat(1)} }

func (s *SpringDrop) Name() string { return "Spring effect" }

func (s *SpringDrop) Tap() {
	s.down = !s.down
	if s.down {
		s.offset.Animate(DropDistance, dropSpring)
	} else {
		s.offset.Animate(1, dropSpring)
	}
}

func (s *SpringDrop) Step(dt time.Duration) { s.offset.Step(dt) }

func (s *SpringDrop) View() CircleView {
	return CircleView{OffsetY: s.offset.Value(), Diameter: CircleDiameter, Scale: 1, Color: Red}
}

// SpringMenu morphs a three-bar menu icon into a cross.
type SpringMenu struct {
	open     bool
	rotation *anim.Float // degrees on the outer bars
	hidden   *anim.Float // 0 shown, 1 hidden for the middle bar
}

var menuSpring = anim.InterpolatingSpring(1, 300, 15)

// Bar geometry of the menu icon.
const (
	BarWidth   = 64
	BarHeight  = 10
	BarRadius  = 4
	BarSpacing = 14
	BarAngle   = 48
)

func NewSpringMenu() *SpringMenu {
	return &SpringMenu{rotation: anim.NewFloat(0), hidden: anim.NewFloat(0)}
}

func (s *SpringMenu) Name() string { return "Spring + Rotation" }

func (s *SpringMenu) Tap() {
	s.open = !s.open
	s.rotation.Animate(BarAngle*boolf(s.open), menuSpring)
	s.hidden.Animate(boolf(s.open), menuSpring)
}

func (s *SpringMenu) Step(dt time.Duration) {
	s.rotation.Step(dt)
	s.hidden.Step(dt)
}

// BarView is one bar of the menu icon. Rotation and scale pivot on the
// leading edge unless AnchorTrailing is set.
type BarView struct {
	OffsetY        float64
	AngleDeg       float64
	ScaleX         float64
	Opacity        float64
	AnchorTrailing bool
	Color          color.RGBA
}

func (s *SpringMenu) View() [3]BarView {
	h := s.hidden.Value()
	middle := 1 - h
	if middle < 0 {
		middle = 0
	}
	return [3]BarView{
		{OffsetY: -(BarHeight + BarSpacing), AngleDeg: s.rotation.Value(), ScaleX: 1, Opacity: 1, Color: Red},
		{ScaleX: middle, Opacity: clamp01(middle), AnchorTrailing: s.open, Color: Red},
		{OffsetY: BarHeight + BarSpacing, AngleDeg: -s.rotation.Value(), ScaleX: 1, Opacity: 1, Color: Red},
	}
}

func boolf(b bool) float64 {
	if b {
		return 1
	}
	return 0
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
