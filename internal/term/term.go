// Package term runs the press scene in a terminal.
package term

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/animation-gallery/internal/config"
	"github.com/iburimskiy/animation-gallery/internal/gallery"
	"github.com/iburimskiy/animation-gallery/internal/press"
)

// frame is the tick interval of the update loop (~60 FPS).
const frame = 16 * time.Millisecond

// Glyphs drawn at the centre of the ring.
const (
	CheckRune       = '✓'
	FingerprintRune = '◎'
)

// App drives a PressRing from tcell mouse events.
type App struct {
	screen  tcell.Screen
	ring    *gallery.PressRing
	log     *slog.Logger
	updates <-chan *config.Config
	beep    bool

	pressing bool
}

// New wraps an initialised screen. updates, if not nil, delivers reloaded
// configurations. Unless audio is muted the terminal bell rings on
// confirmation.
func New(screen tcell.Screen, cfg *config.Config, log *slog.Logger, updates <-chan *config.Config) *App {
	if log == nil {
		log = slog.Default()
	}
	return &App{
		screen:  screen,
		ring:    gallery.NewPressRing(cfg.Press.Timings(), log),
		log:     log,
		updates: updates,
		beep:    !cfg.Audio.Muted,
	}
}

// Ring exposes the scene driven by the app.
func (a *App) Ring() *gallery.PressRing { return a.ring }

// Run polls events and ticks until ctx is done or the user quits.
func (a *App) Run(ctx context.Context) error {
	a.screen.EnableMouse()
	a.screen.HideCursor()

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				// screen finalised
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !a.handle(ev) {
				return nil
			}
		case cfg, ok := <-a.updates:
			if !ok {
				a.updates = nil
				continue
			}
			a.apply(cfg)
		case now := <-ticker.C:
			a.step(now.Sub(last))
			last = now
			a.render()
		}
	}
}

// handle reacts to one event and reports whether the loop should continue.
func (a *App) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		switch {
		case down && !a.pressing:
			a.pressing = true
			a.ring.PressStart()
		case !down && a.pressing:
			a.pressing = false
			a.ring.PressEnd()
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) apply(cfg *config.Config) {
	if err := a.ring.Session().SetTimings(cfg.Press.Timings()); err != nil {
		a.log.Warn("Ignoring reloaded timings", "error", err)
		return
	}
	a.beep = !cfg.Audio.Muted
	a.log.Info("Configuration reloaded", "charge", cfg.Press.Charge)
}

func (a *App) step(dt time.Duration) {
	a.ring.Step(dt)
	for _, cue := range a.ring.DrainCues() {
		if cue == gallery.CueConfirm && a.beep {
			_ = a.screen.Beep()
		}
	}
}

func (a *App) render() {
	draw(a.screen, a.ring.View())
	a.screen.Show()
}

// draw paints v centred on screen. Cells are about twice as tall as they are
// wide, so horizontal distances are doubled.
func draw(screen tcell.Screen, v gallery.RingView) {
	screen.Clear()
	w, h := screen.Size()
	if w < 8 || h < 6 {
		return
	}
	bg := tcell.StyleDefault.Background(rgb(gallery.Background))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			screen.SetContent(x, y, ' ', nil, bg)
		}
	}

	cx, cy := w/2, (h-1)/2
	radius := math.Min(float64(cy-1), float64(w)/4-1)
	unit := radius / (gallery.RingDiameter / 2)

	// fill disc
	fr := gallery.FillDiameter * v.FillScale / 2 * unit
	fill := tcell.StyleDefault.Background(rgb(v.FillColor))
	for y := 0; y < h-1; y++ {
		for x := 0; x < w; x++ {
			dx := float64(x-cx) / 2
			dy := float64(y - cy)
			if dx*dx+dy*dy <= fr*fr {
				screen.SetContent(x, y, ' ', nil, fill)
			}
		}
	}

	// ring, clockwise from three o'clock
	ring := bg.Foreground(rgb(v.RingColor))
	steps := int(2 * math.Pi * radius * 4)
	for i := 0; i < int(float64(steps)*v.RingTrim); i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + int(math.Round(math.Cos(a)*radius*2))
		y := cy + int(math.Round(math.Sin(a)*radius))
		screen.SetContent(x, y, '█', nil, ring)
	}

	icon := fill.Foreground(rgb(v.IconColor))
	if fr < 0.5 {
		icon = bg.Foreground(rgb(v.IconColor))
	}
	switch v.Icon {
	case press.IconCheckmark:
		screen.SetContent(cx, cy, CheckRune, nil, icon)
	case press.IconFingerprint:
		screen.SetContent(cx, cy, FingerprintRune, nil, icon)
	}

	status := "Hold the mouse button to charge, q to quit"
	if v.Snapshot.Held {
		status = fmt.Sprintf("%-9s %3.0f%%", v.Snapshot.Phase, v.Snapshot.Progress*100)
	}
	text := bg.Foreground(tcell.ColorWhite)
	for i, r := range status {
		if i >= w {
			break
		}
		screen.SetContent(i, h-1, r, nil, text)
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
