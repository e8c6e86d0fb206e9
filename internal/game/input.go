package game

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/animation-gallery/internal/config"
	"github.com/iburimskiy/animation-gallery/internal/gallery"
)

// frameInput is one frame of pointer and keyboard state.
type frameInput struct {
	mouseDown, mouseUp bool // left button edges
	keyDown, keyUp     bool // space edges
	held               bool // mouse or space still down after this frame
	hovered            bool // cursor over the visible chime button
}

// buttonVisible reports whether the chime button is shown on s.
func buttonVisible(s gallery.Scene) bool {
	_, ok := s.(*gallery.PressRing)
	return ok
}

// overButton reports whether (x, y) hits the chime button on s.
func overButton(s gallery.Scene, x, y int) bool {
	if !buttonVisible(s) {
		return false
	}
	return x >= config.ButtonX && x <= config.ButtonX+config.ButtonWidth &&
		y >= config.ButtonY && y <= config.ButtonY+config.ButtonHeight
}

// dispatch turns in into taps or press/release pairs for s and returns
// whether a press is still in progress. A press that began on s stays bound
// to it until neither input is held.
func dispatch(s gallery.Scene, in frameInput, pressing bool) bool {
	down := (in.mouseDown && !in.hovered) || in.keyDown
	up := in.mouseUp || in.keyUp

	switch s := s.(type) {
	case gallery.Tapper:
		if down {
			s.Tap()
		}
	case gallery.Presser:
		if down && !pressing {
			pressing = true
			s.PressStart()
		}
		if up && pressing && !in.held {
			pressing = false
			s.PressEnd()
		}
	}
	return pressing
}

// stopRequested maps a cancelled ctx onto ebiten's clean shutdown.
func stopRequested(ctx context.Context) error {
	if ctx.Err() != nil {
		return ebiten.Termination
	}
	return nil
}
