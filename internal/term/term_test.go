package term

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/animation-gallery/internal/config"
	"github.com/iburimskiy/animation-gallery/internal/press"
)

func newTestApp(t *testing.T) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(screen, config.Default(), log, nil), screen
}

func runFor(a *App, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		a.step(frame)
	}
}

func cellAt(screen tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := screen.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return 0
	}
	return c.Runes[0]
}

func countRune(screen tcell.SimulationScreen, r rune) int {
	cells, _, _ := screen.GetContents()
	n := 0
	for _, c := range cells {
		if len(c.Runes) > 0 && c.Runes[0] == r {
			n++
		}
	}
	return n
}

func TestIdleShowsFingerprint(t *testing.T) {
	a, screen := newTestApp(t)
	a.render()

	assert.Equal(t, FingerprintRune, cellAt(screen, 40, 11))
	assert.Zero(t, countRune(screen, '█'), "no ring before a press")
}

func TestHoldShowsCheckmarkAfterConfirm(t *testing.T) {
	a, screen := newTestApp(t)

	require.True(t, a.handle(tcell.NewEventMouse(40, 11, tcell.Button1, tcell.ModNone)))
	runFor(a, 700*time.Millisecond)
	a.render()
	partial := countRune(screen, '█')
	assert.Positive(t, partial)
	assert.Equal(t, press.Charging, a.Ring().Session().Snapshot().Phase)

	runFor(a, 400*time.Millisecond)
	a.render()
	assert.Equal(t, CheckRune, cellAt(screen, 40, 11))
	assert.Greater(t, countRune(screen, '█'), partial)
	assert.True(t, a.Ring().Session().Snapshot().Confirmed)
}

func TestReleaseResets(t *testing.T) {
	a, screen := newTestApp(t)

	a.handle(tcell.NewEventMouse(40, 11, tcell.Button1, tcell.ModNone))
	runFor(a, 2*time.Second)
	require.True(t, a.Ring().Session().Snapshot().Exploded)

	a.handle(tcell.NewEventMouse(40, 11, tcell.ButtonNone, tcell.ModNone))
	a.render()

	snap := a.Ring().Session().Snapshot()
	assert.Equal(t, press.Idle, snap.Phase)
	assert.Zero(t, snap.Progress)
	assert.Equal(t, FingerprintRune, cellAt(screen, 40, 11))
	assert.Zero(t, countRune(screen, '█'))
}

func TestDragKeepsPress(t *testing.T) {
	a, _ := newTestApp(t)

	a.handle(tcell.NewEventMouse(40, 11, tcell.Button1, tcell.ModNone))
	runFor(a, 300*time.Millisecond)
	a.handle(tcell.NewEventMouse(45, 12, tcell.Button1, tcell.ModNone))
	runFor(a, 300*time.Millisecond)

	snap := a.Ring().Session().Snapshot()
	assert.True(t, snap.Held)
	assert.Equal(t, uint64(1), snap.Generation)
}

func TestQuitKeys(t *testing.T) {
	a, _ := newTestApp(t)

	assert.False(t, a.handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, a.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, a.handle(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
}

func TestApplyReloadedTimings(t *testing.T) {
	a, _ := newTestApp(t)
	cfg := config.Default()
	cfg.Press.Charge = 2 * time.Second
	a.apply(cfg)

	a.handle(tcell.NewEventMouse(40, 11, tcell.Button1, tcell.ModNone))
	runFor(a, time.Second)
	snap := a.Ring().Session().Snapshot()
	assert.InDelta(t, 0.5, snap.Progress, 0.02)
	assert.False(t, snap.Confirmed)
}
