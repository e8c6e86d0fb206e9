package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/iburimskiy/animation-gallery/internal/press"
)

const (
	WindowWidth  = 1024
	WindowHeight = 768

	TapRingSize     = 8192
	LevelWindow     = 1024
	SmoothingFactor = 0.6

	// Button dimensions
	ButtonWidth  = 120
	ButtonHeight = 40
	ButtonX      = 20
	ButtonY      = 50

	// Explosion flourish
	ParticleCount   = 50
	ColorShiftSpeed = 0.01

	// SceneCount is the number of gallery scenes; scenes are numbered from 0.
	SceneCount = 7
	PressScene = 6
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the runtime configuration, loaded from YAML.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Press  PressConfig  `yaml:"press"`
	Audio  AudioConfig  `yaml:"audio"`
	Scene  int          `yaml:"scene"`
}

// WindowConfig sizes the ebiten window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

// PressConfig holds the long-press timings.
type PressConfig struct {
	Charge       time.Duration `yaml:"charge"`
	ConfirmDelay time.Duration `yaml:"confirm_delay"`
	ExplodeDelay time.Duration `yaml:"explode_delay"`
}

// AudioConfig controls cue playback.
type AudioConfig struct {
	Muted        bool    `yaml:"muted"`
	SampleRate   int     `yaml:"sample_rate"`
	Volume       float64 `yaml:"volume"`
	ConfirmSound string  `yaml:"confirm_sound,omitempty"` // wav/mp3/flac replacing the synthesized chime
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	t := press.DefaultTimings()
	return &Config{
		Window: WindowConfig{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  "Animations - Tab/1-7: scene, click or Space: interact, Esc/Q: quit",
			TPS:    60,
		},
		Press: PressConfig{
			Charge:       t.Charge,
			ConfirmDelay: t.ConfirmDelay,
			ExplodeDelay: t.ExplodeDelay,
		},
		Audio: AudioConfig{
			SampleRate: 44100,
			Volume:     0.4,
		},
		Scene: PressScene,
	}
}

// Timings converts the press section for press.NewSession.
func (p PressConfig) Timings() press.Timings {
	return press.Timings{Charge: p.Charge, ConfirmDelay: p.ConfirmDelay, ExplodeDelay: p.ExplodeDelay}
}

// Validate checks every section and reports the first problem found.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS < 10 || c.Window.TPS > 240 {
		return fmt.Errorf("%w: window.tps %d outside [10,240]", ErrInvalid, c.Window.TPS)
	}
	if err := c.Press.Timings().Validate(); err != nil {
		return fmt.Errorf("%w: press: %v", ErrInvalid, err)
	}
	if c.Audio.SampleRate < 8000 || c.Audio.SampleRate > 192000 {
		return fmt.Errorf("%w: audio.sample_rate %d outside [8000,192000]", ErrInvalid, c.Audio.SampleRate)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume %.2f outside [0,1]", ErrInvalid, c.Audio.Volume)
	}
	if c.Scene < 0 || c.Scene >= SceneCount {
		return fmt.Errorf("%w: scene %d outside [0,%d)", ErrInvalid, c.Scene, SceneCount)
	}
	return nil
}
