package sound

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// Tap passes a beep.Streamer through while keeping its last frames in a ring
// buffer, so the renderer can pulse with whatever is audible.
type Tap struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	mu        sync.RWMutex
}

// NewTap records up to ringSize frames of src.
func NewTap(src beep.Streamer, ringSize int) *Tap {
	if ringSize < 1 {
		ringSize = 1
	}
	return &Tap{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

// Stream pulls from Source and copies whatever it produced into the ring
// before handing the frames on. It runs on the speaker goroutine.
func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.nextIndex] = samples[i]
			t.nextIndex++
			if t.nextIndex >= len(t.buffer) {
				t.nextIndex = 0
			}
		}
		t.mu.Unlock()
	}
	return n, ok
}

// Err reports the error of the tapped source.
func (t *Tap) Err() error { return t.Source.Err() }

// Snapshot returns up to the last n frames, oldest first.
func (t *Tap) Snapshot(n int) [][2]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n > len(t.buffer) {
		n = len(t.buffer)
	}
	if n <= 0 {
		return nil
	}
	out := make([][2]float64, n)
	start := t.nextIndex - n
	if start < 0 {
		start += len(t.buffer)
	}
	for i := 0; i < n; i++ {
		out[i] = t.buffer[(start+i)%len(t.buffer)]
	}
	return out
}

// Level is the RMS of the last n frames, mixed down to mono.
func (t *Tap) Level(n int) float64 {
	samples := t.Snapshot(n)
	if len(samples) == 0 {
		return 0
	}
	var sumSquares float64
	for _, s := range samples {
		mono := (s[0] + s[1]) * 0.5
		sumSquares += mono * mono
	}
	return math.Sqrt(sumSquares / float64(len(samples)))
}
