package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iburimskiy/animation-gallery/internal/press"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, press.DefaultTimings(), cfg.Press.Timings())
	assert.Equal(t, PressScene, cfg.Scene)
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(*Config){
		"zero width":         func(c *Config) { c.Window.Width = 0 },
		"tps too low":        func(c *Config) { c.Window.TPS = 1 },
		"zero charge":        func(c *Config) { c.Press.Charge = 0 },
		"zero explode":       func(c *Config) { c.Press.ExplodeDelay = 0 },
		"negative confirm":   func(c *Config) { c.Press.ConfirmDelay = -time.Second },
		"tiny sample rate":   func(c *Config) { c.Audio.SampleRate = 100 },
		"volume above one":   func(c *Config) { c.Audio.Volume = 1.5 },
		"scene out of range": func(c *Config) { c.Scene = SceneCount },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
		})
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesAndExpandsEnv(t *testing.T) {
	t.Setenv("GALLERY_CHARGE", "2s")
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
window:
  title: Demo
press:
  charge: ${GALLERY_CHARGE}
  explode_delay: 1s
audio:
  muted: true
scene: 3
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Demo", cfg.Window.Title)
	assert.Equal(t, WindowWidth, cfg.Window.Width, "unset keys keep defaults")
	assert.Equal(t, 2*time.Second, cfg.Press.Charge)
	assert.Equal(t, Default().Press.ConfirmDelay, cfg.Press.ConfirmDelay)
	assert.Equal(t, time.Second, cfg.Press.ExplodeDelay)
	assert.True(t, cfg.Audio.Muted)
	assert.Equal(t, 3, cfg.Scene)
}

func TestParseKeepsLiteralDollar(t *testing.T) {
	t.Setenv("GALLERY_HOME", "/home/demo")
	t.Setenv("HOME", "/should/not/appear")
	data := []byte(`
window:
  title: "Costs $5 $HOME"
audio:
  confirm_sound: ${GALLERY_HOME}/chime$1.wav
`)
	cfg := Default()
	require.NoError(t, Parse(data, cfg))
	assert.Equal(t, "Costs $5 $HOME", cfg.Window.Title)
	assert.Equal(t, "/home/demo/chime$1.wav", cfg.Audio.ConfirmSound)
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scene: 42\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))

	require.NoError(t, os.WriteFile(path, []byte("scene: [\n"), 0o644))
	_, err = Load(path)
	require.Error(t, err)
}

func TestLoadEnvDoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("GALLERY_A=fromfile\nGALLERY_B=fromfile\n"), 0o644))
	t.Setenv("GALLERY_A", "preset")
	t.Setenv("GALLERY_B", "")
	require.NoError(t, os.Unsetenv("GALLERY_B"))

	require.NoError(t, LoadEnv(envFile, filepath.Join(dir, "missing.env")))
	assert.Equal(t, "preset", os.Getenv("GALLERY_A"))
	assert.Equal(t, "fromfile", os.Getenv("GALLERY_B"))
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := Default()
	cfg.Scene = 2
	cfg.Press.Charge = 1200 * time.Millisecond

	require.NoError(t, Write(path, cfg, false))
	require.Error(t, Write(path, cfg, false), "existing file needs force")
	require.NoError(t, Write(path, cfg, true))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestWatchDeliversValidChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scene: 1\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	updates, err := Watch(ctx, path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("scene: 99\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("scene: 4\n"), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-updates:
			require.NotNil(t, cfg)
			if cfg.Scene == 4 {
				cancel()
				for range updates {
				}
				return
			}
			t.Fatalf("unexpected scene %d delivered", cfg.Scene)
		case <-deadline:
			t.Fatal("no configuration update received")
		}
	}
}
