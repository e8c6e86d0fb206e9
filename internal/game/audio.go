package game

import (
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/animation-gallery/internal/config"
	"github.com/iburimskiy/animation-gallery/internal/gallery"
	"github.com/iburimskiy/animation-gallery/internal/sound"
)

// player mixes cues into a single speaker stream: mixer -> tap -> volume.
type player struct {
	log    *slog.Logger
	sr     beep.SampleRate
	mixer  *beep.Mixer
	tap    *sound.Tap
	volume *effects.Volume

	confirm *beep.Buffer // replaces the synthesized chime when set
	ready   bool
	level   float64
}

func newPlayer(cfg config.AudioConfig, log *slog.Logger) *player {
	p := &player{
		log:   log,
		sr:    beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
	p.tap = sound.NewTap(p.mixer, config.TapRingSize)
	p.volume = &effects.Volume{Streamer: p.tap, Base: 2}
	p.applyVolume(cfg.Volume)
	p.volume.Silent = p.volume.Silent || cfg.Muted
	return p
}

func (p *player) init() error {
	if err := speaker.Init(p.sr, p.sr.N(time.Second/20)); err != nil {
		return err
	}
	// the mixer never drains, so this plays for the life of the process
	speaker.Play(p.volume)
	p.ready = true
	return nil
}

func (p *player) play(c gallery.Cue) {
	if !p.ready {
		return
	}
	var s beep.Streamer
	switch c {
	case gallery.CueConfirm:
		if p.confirm != nil {
			s = p.confirm.Streamer(0, p.confirm.Len())
		} else {
			s = sound.ConfirmChime(p.sr)
		}
	case gallery.CueExplode:
		s = sound.ExplodeBurst(p.sr)
	default:
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	p.log.Debug("Cue played", "cue", c.String())
}

// update smooths the tapped output level for the pulse ring.
func (p *player) update() {
	if !p.ready {
		p.level = 0
		return
	}
	mag := math.Pow(p.tap.Level(config.LevelWindow), 0.5)
	p.level = config.SmoothingFactor*p.level + (1-config.SmoothingFactor)*mag
}

func (p *player) muted() bool {
	speaker.Lock()
	defer speaker.Unlock()
	return p.volume.Silent
}

func (p *player) setMuted(m bool) {
	speaker.Lock()
	p.volume.Silent = m
	speaker.Unlock()
}

func (p *player) setVolume(v float64) {
	speaker.Lock()
	muted := p.volume.Silent
	p.applyVolume(v)
	p.volume.Silent = p.volume.Silent || muted
	speaker.Unlock()
}

// applyVolume maps linear volume in [0,1] onto the log2 scale of
// effects.Volume; zero becomes silence.
func (p *player) applyVolume(v float64) {
	if v <= 0 {
		p.volume.Volume = 0
		p.volume.Silent = true
		return
	}
	p.volume.Volume = math.Log2(v)
	p.volume.Silent = false
}

func (p *player) loadConfirm(path string) error {
	buf, err := sound.Load(path, p.sr)
	if err != nil {
		return err
	}
	p.confirm = buf
	p.log.Info("Confirm sound loaded", "path", path, "frames", buf.Len())
	return nil
}

func (g *Game) openConfirmDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Choose Confirm Sound"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: sound.Patterns,
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	if err := g.audio.loadConfirm(filename); err != nil {
		return err
	}
	g.cfg.Audio.ConfirmSound = filename
	g.lastErr = nil
	return nil
}
