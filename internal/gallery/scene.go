// Package gallery holds the view models of the animation scenes. Each scene
// owns its flags and animated values and exposes plain per-frame view
// parameters; drawing is left to the front ends.
package gallery

import (
	"fmt"
	"image/color"
	"time"
)

// Scene is one page of the gallery.
type Scene interface {
	Name() string
	Step(dt time.Duration)
}

// Tapper is implemented by scenes driven by a single tap.
type Tapper interface {
	Tap()
}

// Presser is implemented by scenes driven by press and release.
type Presser interface {
	PressStart()
	PressEnd()
}

// Palette colors, taken from the system colors the scenes were designed with.
var (
	Background = color.RGBA{R: 85, G: 85, B: 85, A: 255}
	Track      = color.RGBA{R: 142, G: 142, B: 147, A: 255}
	Red        = color.RGBA{R: 255, G: 59, B: 48, A: 255}
	Green      = color.RGBA{R: 52, G: 199, B: 89, A: 255}
	Blue       = color.RGBA{R: 0, G: 122, B: 255, A: 255}
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// CircleDiameter is the rest size of the single-circle scenes.
const CircleDiameter = 150

// Gallery is an ordered set of scenes with one current scene.
type Gallery struct {
	scenes  []Scene
	current int
}

// New returns a gallery over scenes, starting at the first one.
func New(scenes ...Scene) *Gallery {
	return &Gallery{scenes: scenes}
}

// Len is the number of scenes.
func (g *Gallery) Len() int { return len(g.scenes) }

// Index is the position of the current scene.
func (g *Gallery) Index() int { return g.current }

// Current returns the current scene.
func (g *Gallery) Current() Scene { return g.scenes[g.current] }

// Select makes scene i current. A scene left while pressed is released.
func (g *Gallery) Select(i int) error {
	if i < 0 || i >= len(g.scenes) {
		return fmt.Errorf("scene %d out of range [0,%d)", i, len(g.scenes))
	}
	if i != g.current {
		if p, ok := g.Current().(Presser); ok {
			p.PressEnd()
		}
	}
	g.current = i
	return nil
}

// Next advances to the following scene, wrapping around.
func (g *Gallery) Next() { _ = g.Select((g.current + 1) % len(g.scenes)) }

// Prev steps back to the previous scene, wrapping around.
func (g *Gallery) Prev() { _ = g.Select((g.current + len(g.scenes) - 1) % len(g.scenes)) }

// Step advances every scene so that animations started on a scene finish
// even while it is off screen.
func (g *Gallery) Step(dt time.Duration) {
	for _, s := range g.scenes {
		s.Step(dt)
	}
}
