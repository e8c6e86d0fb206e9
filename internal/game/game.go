package game

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/animation-gallery/internal/config"
	"github.com/iburimskiy/animation-gallery/internal/gallery"
)

var sceneKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7,
}

// Game is the ebiten front end of the gallery.
type Game struct {
	ctx     context.Context
	cfg     *config.Config
	log     *slog.Logger
	gallery *gallery.Gallery
	ring    *gallery.PressRing
	audio   *player
	updates <-chan *config.Config

	// button state
	buttonHovered bool
	buttonPressed bool

	// a press that began on a scene stays bound to it until release
	pressing bool
	shown    int

	colorPhase float64
	lastErr    error
}

// New builds the gallery from cfg. The window closes once ctx is done.
// updates, if not nil, delivers reloaded configurations to apply between
// frames.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger, updates <-chan *config.Config) *Game {
	ring := gallery.NewPressRing(cfg.Press.Timings(), log)
	g := &Game{
		ctx: ctx,
		cfg: cfg,
		log: log,
		gallery: gallery.New(
			gallery.NewToggleColor(),
			gallery.NewIncrementScale(),
			gallery.NewOffsetColor(),
			gallery.NewBezierScale(),
			gallery.NewSpringDrop(),
			gallery.NewSpringMenu(),
			ring,
		),
		ring:    ring,
		audio:   newPlayer(cfg.Audio, log),
		updates: updates,
	}
	if err := g.gallery.Select(cfg.Scene); err != nil {
		log.Warn("Invalid start scene", "error", err)
	}
	g.shown = g.gallery.Index()
	if err := g.audio.init(); err != nil {
		// Non-fatal, the gallery runs without sound
		log.Warn("Audio initialization failed", "error", err)
	}
	if cfg.Audio.ConfirmSound != "" {
		if err := g.audio.loadConfirm(cfg.Audio.ConfirmSound); err != nil {
			g.lastErr = err
			log.Warn("Failed to load confirm sound", "path", cfg.Audio.ConfirmSound, "error", err)
		}
	}
	return g
}

// Run opens the window and blocks until it is closed.
func (g *Game) Run() error {
	ebiten.SetWindowSize(g.cfg.Window.Width, g.cfg.Window.Height)
	ebiten.SetWindowTitle(g.cfg.Window.Title)
	ebiten.SetTPS(g.cfg.Window.TPS)
	g.log.Info("Opening gallery", "scene", g.gallery.Current().Name(), "tps", g.cfg.Window.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func (g *Game) tick() time.Duration {
	return time.Second / time.Duration(ebiten.TPS())
}

func (g *Game) Update() error {
	if err := stopRequested(g.ctx); err != nil {
		return err
	}
	g.applyUpdates()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	g.handleNavigation()
	g.handleButton()
	g.handleInteraction()

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.audio.setMuted(!g.audio.muted())
		g.log.Info("Audio muted", "muted", g.audio.muted())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if s, ok := g.gallery.Current().(*gallery.IncrementScale); ok {
			s.Reset()
		}
	}

	g.gallery.Step(g.tick())
	for _, cue := range g.ring.DrainCues() {
		g.audio.play(cue)
	}
	g.audio.update()
	g.colorPhase += config.ColorShiftSpeed
	return nil
}

func (g *Game) handleNavigation() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyTab) && ebiten.IsKeyPressed(ebiten.KeyShift),
		inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.gallery.Prev()
	case inpututil.IsKeyJustPressed(ebiten.KeyTab), inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.gallery.Next()
	default:
		for i, k := range sceneKeys {
			if inpututil.IsKeyJustPressed(k) {
				if err := g.gallery.Select(i); err != nil {
					g.lastErr = err
				}
			}
		}
	}
	if g.gallery.Index() != g.shown {
		g.shown = g.gallery.Index()
		g.pressing = false
		g.log.Info("Scene selected", "scene", g.gallery.Index(), "name", g.gallery.Current().Name())
	}
}

func (g *Game) handleButton() {
	if !buttonVisible(g.gallery.Current()) {
		g.buttonHovered, g.buttonPressed = false, false
		return
	}
	mouseX, mouseY := ebiten.CursorPosition()
	g.buttonHovered = overButton(g.gallery.Current(), mouseX, mouseY)

	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			if err := g.openConfirmDialog(); err != nil {
				g.lastErr = err
			}
		}
		g.buttonPressed = false
	}
}

// handleInteraction turns the left mouse button and the space bar into
// taps or press/release pairs for the current scene.
func (g *Game) handleInteraction() {
	in := frameInput{
		mouseDown: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		mouseUp:   inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		keyDown:   inpututil.IsKeyJustPressed(ebiten.KeySpace),
		keyUp:     inpututil.IsKeyJustReleased(ebiten.KeySpace),
		held:      ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		hovered:   g.buttonHovered,
	}
	g.pressing = dispatch(g.gallery.Current(), in, g.pressing)
}

func (g *Game) applyUpdates() {
	if g.updates == nil {
		return
	}
	select {
	case cfg, ok := <-g.updates:
		if !ok {
			g.updates = nil
			return
		}
		if err := g.ring.Session().SetTimings(cfg.Press.Timings()); err != nil {
			g.lastErr = err
			return
		}
		g.audio.setVolume(cfg.Audio.Volume)
		g.audio.setMuted(cfg.Audio.Muted)
		g.cfg.Press = cfg.Press
		g.cfg.Audio.Volume, g.cfg.Audio.Muted = cfg.Audio.Volume, cfg.Audio.Muted
		g.log.Info("Configuration reloaded",
			"charge", cfg.Press.Charge,
			"confirm_delay", cfg.Press.ConfirmDelay,
			"explode_delay", cfg.Press.ExplodeDelay)
	default:
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}
