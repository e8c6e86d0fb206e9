package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/animation-gallery/internal/anim"
	"github.com/iburimskiy/animation-gallery/internal/config"
	"github.com/iburimskiy/animation-gallery/internal/gallery"
	"github.com/iburimskiy/animation-gallery/internal/press"
)

// arcSegments is the number of line segments in a full circle.
const arcSegments = 120

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(gallery.Background)

	cx := float64(g.cfg.Window.Width) / 2
	cy := float64(g.cfg.Window.Height) / 2

	switch s := g.gallery.Current().(type) {
	case *gallery.ToggleColor:
		drawCircle(screen, cx, cy, s.View())
	case *gallery.IncrementScale:
		drawCircle(screen, cx, cy, s.View())
	case *gallery.OffsetColor:
		c, track := s.View()
		drawTrack(screen, cx, cy, c.Diameter, track)
		drawCircle(screen, cx, cy, c)
	case *gallery.BezierScale:
		drawCircle(screen, cx, cy, s.View())
	case *gallery.SpringDrop:
		drawCircle(screen, cx, cy, s.View())
	case *gallery.SpringMenu:
		for _, bar := range s.View() {
			drawBar(screen, cx, cy, bar)
		}
	case *gallery.PressRing:
		g.drawPressRing(screen, cx, cy, s.View())
	}

	if buttonVisible(g.gallery.Current()) {
		g.drawButton(screen)
	}
	g.drawHUD(screen)
}

func drawCircle(screen *ebiten.Image, cx, cy float64, c gallery.CircleView) {
	r := c.Diameter * c.Scale / 2
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(screen, float32(cx+c.OffsetX), float32(cy+c.OffsetY), float32(r), c.Color, true)
}

// drawTrack draws a vertical capsule wide enough for a circle of diameter d.
func drawTrack(screen *ebiten.Image, cx, cy, d float64, t gallery.TrackView) {
	half := t.Height / 2
	r := float32(d / 2)
	vector.DrawFilledRect(screen, float32(cx)-r, float32(cy-half), 2*r, float32(t.Height), t.Color, true)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy-half), r, t.Color, true)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy+half), r, t.Color, true)
}

// drawBar draws one menu bar as a thick line from its pivot.
func drawBar(screen *ebiten.Image, cx, cy float64, b gallery.BarView) {
	length := gallery.BarWidth * b.ScaleX
	if length <= 0 || b.Opacity <= 0 {
		return
	}
	theta := b.AngleDeg * math.Pi / 180
	dir := 1.0
	px := cx - gallery.BarWidth/2
	if b.AnchorTrailing {
		dir = -1
		px = cx + gallery.BarWidth/2
	}
	py := cy + b.OffsetY
	ex := px + dir*length*math.Cos(theta)
	ey := py + dir*length*math.Sin(theta)
	col := anim.WithAlpha(b.Color, b.Opacity)
	vector.StrokeLine(screen, float32(px), float32(py), float32(ex), float32(ey), gallery.BarHeight, col, true)
	// rounded ends
	vector.DrawFilledCircle(screen, float32(px), float32(py), gallery.BarRadius, col, true)
	vector.DrawFilledCircle(screen, float32(ex), float32(ey), gallery.BarRadius, col, true)
}

// strokeArc strokes the arc of radius r from angle start through sweep
// radians, clockwise on screen.
func strokeArc(screen *ebiten.Image, cx, cy, r, start, sweep float64, width float32, clr color.Color) {
	n := int(math.Ceil(math.Abs(sweep) / (2 * math.Pi) * arcSegments))
	if n == 0 {
		return
	}
	step := sweep / float64(n)
	for j := 0; j < n; j++ {
		a1 := start + float64(j)*step
		a2 := a1 + step
		x1 := cx + math.Cos(a1)*r
		y1 := cy + math.Sin(a1)*r
		x2 := cx + math.Cos(a2)*r
		y2 := cy + math.Sin(a2)*r
		vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), width, clr, true)
	}
}

func (g *Game) drawPressRing(screen *ebiten.Image, cx, cy float64, v gallery.RingView) {
	g.drawPulse(screen, cx, cy)

	// fill
	r := float32(gallery.FillDiameter * v.FillScale / 2)
	if r > 0 {
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), r, v.FillColor, true)
		vector.StrokeCircle(screen, float32(cx), float32(cy), r, gallery.FillStroke, gallery.White, true)
	}

	// progress ring
	strokeArc(screen, cx, cy, gallery.RingDiameter/2, 0, 2*math.Pi*v.RingTrim, gallery.RingWidth, v.RingColor)

	switch v.Icon {
	case press.IconCheckmark:
		drawCheckmark(screen, cx, cy, v.IconColor)
	case press.IconFingerprint:
		drawFingerprint(screen, cx, cy, v.IconColor)
	}

	g.drawBurst(screen, cx, cy, v.Burst)
}

func drawCheckmark(screen *ebiten.Image, cx, cy float64, clr color.RGBA) {
	s := gallery.IconSize / 2.0
	x1, y1 := cx-s, cy
	x2, y2 := cx-s/3, cy+s*0.7
	x3, y3 := cx+s, cy-s*0.7
	vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), 4, clr, true)
	vector.StrokeLine(screen, float32(x2), float32(y2), float32(x3), float32(y3), 4, clr, true)
}

// drawFingerprint approximates the glyph with broken concentric arcs.
func drawFingerprint(screen *ebiten.Image, cx, cy float64, clr color.RGBA) {
	s := gallery.IconSize / 2.0
	for i := 1; i <= 4; i++ {
		r := s * float64(i) / 4
		gap := 0.6 - float64(i)*0.1
		start := -math.Pi/2 + gap + float64(i)*0.3
		strokeArc(screen, cx, cy, r, start, 2*math.Pi-2*gap, 1.5, clr)
	}
}

// drawPulse draws a faint ring that follows the smoothed audio level.
func (g *Game) drawPulse(screen *ebiten.Image, cx, cy float64) {
	level := clamp01(g.audio.level)
	if level < 0.01 {
		return
	}
	r := gallery.RingDiameter/2 + 12 + level*60
	col := anim.WithAlpha(gallery.Blue, 0.2+0.6*level)
	vector.StrokeCircle(screen, float32(cx), float32(cy), float32(r), float32(2+level*6), col, true)
}

// drawBurst throws particles outward from the ring once exploded.
func (g *Game) drawBurst(screen *ebiten.Image, cx, cy, burst float64) {
	if burst <= 0 {
		return
	}
	fade := clamp01(1 - burst)
	if fade == 0 {
		return
	}
	for i := 0; i < config.ParticleCount; i++ {
		angle := float64(i) * 2 * math.Pi / config.ParticleCount
		radius := gallery.RingDiameter/2 + burst*float64(140+(i%5)*20)

		x := cx + math.Cos(angle)*radius
		y := cy + math.Sin(angle)*radius

		size := 2 + 4*fade
		hue := (g.colorPhase + float64(i)*0.02) * 360
		r, g_val, b := hsvToRgb(hue, 1.0, 1.0)
		particleColor := color.NRGBA{R: r, G: g_val, B: b, A: uint8(255 * fade)}

		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(size), particleColor, true)
	}
}

func (g *Game) drawButton(screen *ebiten.Image) {
	// Button background
	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	}
	vector.DrawFilledRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, bgColor, false)

	borderColor := color.RGBA{R: 150, G: 170, B: 200, A: 255}
	vector.StrokeRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, 2, borderColor, false)

	text := "Chime..."
	textWidth := len(text) * 8 // Approximate character width
	textX := config.ButtonX + (config.ButtonWidth-textWidth)/2
	textY := config.ButtonY + (config.ButtonHeight-16)/2
	ebitenutil.DebugPrintAt(screen, text, textX, textY)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	title := fmt.Sprintf("%d/%d  %s", g.gallery.Index()+1, g.gallery.Len(), g.gallery.Current().Name())
	ebitenutil.DebugPrintAt(screen, title, 12, 12)

	var status string
	switch s := g.gallery.Current().(type) {
	case *gallery.PressRing:
		snap := s.Session().Snapshot()
		status = "Hold Space or the mouse to charge"
		if snap.Held {
			status = fmt.Sprintf("%s  held %s  progress %3.0f%%", snap.Phase, formatHold(snap.Elapsed), snap.Progress*100)
		}
	case *gallery.IncrementScale:
		status = "Click or Space to grow, R to reset"
	default:
		status = "Click or Space to animate"
	}
	if g.audio.muted() {
		status += " | muted"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, g.cfg.Window.Height-40)
	ebitenutil.DebugPrintAt(screen, "Tab/arrows/1-7 switch scene, M mute, Esc quit", 12, g.cfg.Window.Height-24)
}
