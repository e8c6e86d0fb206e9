package game

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/animation-gallery/internal/config"
	"github.com/iburimskiy/animation-gallery/internal/gallery"
	"github.com/iburimskiy/animation-gallery/internal/press"
)

func newRing() *gallery.PressRing {
	return gallery.NewPressRing(press.DefaultTimings(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestButtonOnlyOnPressScene(t *testing.T) {
	x, y := config.ButtonX+10, config.ButtonY+10

	assert.True(t, overButton(newRing(), x, y))
	assert.False(t, overButton(newRing(), config.ButtonX+config.ButtonWidth+1, y))

	for _, s := range []gallery.Scene{
		gallery.NewToggleColor(),
		gallery.NewIncrementScale(),
		gallery.NewOffsetColor(),
		gallery.NewBezierScale(),
		gallery.NewSpringDrop(),
		gallery.NewSpringMenu(),
	} {
		assert.False(t, buttonVisible(s), s.Name())
		assert.False(t, overButton(s, x, y), s.Name())
	}
}

func TestClickInButtonAreaTapsWhenButtonHidden(t *testing.T) {
	s := gallery.NewToggleColor()
	in := frameInput{mouseDown: true, hovered: overButton(s, config.ButtonX+10, config.ButtonY+10)}

	assert.False(t, dispatch(s, in, false))
	s.Step(time.Second)
	assert.Equal(t, gallery.Green, s.View().Color)
}

func TestClickOnVisibleButtonDoesNotPress(t *testing.T) {
	ring := newRing()
	in := frameInput{mouseDown: true, held: true, hovered: true}

	assert.False(t, dispatch(ring, in, false))
	assert.False(t, ring.Session().Snapshot().Held)
}

func TestPressHeldUntilBothInputsRelease(t *testing.T) {
	ring := newRing()

	pressing := dispatch(ring, frameInput{mouseDown: true, held: true}, false)
	require.True(t, pressing)
	require.True(t, ring.Session().Snapshot().Held)

	// space pressed too, then the mouse lets go while space is still down
	pressing = dispatch(ring, frameInput{keyDown: true, held: true}, pressing)
	pressing = dispatch(ring, frameInput{mouseUp: true, held: true}, pressing)
	assert.True(t, pressing)
	assert.True(t, ring.Session().Snapshot().Held)
	assert.Equal(t, uint64(1), ring.Session().Snapshot().Generation)

	pressing = dispatch(ring, frameInput{keyUp: true}, pressing)
	assert.False(t, pressing)
	assert.Equal(t, press.Idle, ring.Session().Snapshot().Phase)
}

func TestStopRequested(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, stopRequested(ctx))

	cancel()
	assert.True(t, errors.Is(stopRequested(ctx), ebiten.Termination))
}
