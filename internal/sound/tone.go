// Package sound synthesizes and decodes the short cues played by the press
// scene, and taps the output so the renderer can pulse with it.
package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/faiface/beep"
)

// Envelope shapes a voice with linear attack and release, in seconds.
type Envelope struct {
	Attack  float64
	Release float64
}

// gain returns the envelope level for sample i of total.
func (e Envelope) gain(i, total int, sr beep.SampleRate) float64 {
	attack := int(e.Attack * float64(sr))
	release := int(e.Release * float64(sr))
	releaseStart := total - release
	if releaseStart < attack {
		releaseStart = attack
	}
	switch {
	case i < attack && attack > 0:
		return float64(i) / float64(attack)
	case i >= releaseStart && release > 0:
		return float64(total-i) / float64(release)
	default:
		return 1
	}
}

// Sine returns a sine tone of freq Hz lasting d, shaped by env.
func Sine(sr beep.SampleRate, freq float64, d time.Duration, amp float64, env Envelope) beep.Streamer {
	total := sr.N(d)
	pos := 0
	phase := 0.0
	inc := freq / float64(sr)
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for n < len(samples) && pos < total {
			v := math.Sin(2*math.Pi*phase) * amp * env.gain(pos, total, sr)
			samples[n][0], samples[n][1] = v, v
			phase += inc
			if phase >= 1 {
				phase--
			}
			pos++
			n++
		}
		return n, true
	})
}

// Sweep glides from one frequency to another over d, with a little noise
// mixed in.
func Sweep(sr beep.SampleRate, from, to float64, d time.Duration, amp, noise float64, env Envelope) beep.Streamer {
	total := sr.N(d)
	pos := 0
	phase := 0.0
	rng := rand.New(rand.NewSource(int64(total)))
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for n < len(samples) && pos < total {
			t := float64(pos) / float64(total)
			freq := from + (to-from)*t*t
			v := math.Sin(2*math.Pi*phase)*(1-noise) + (rng.Float64()*2-1)*noise
			v *= amp * env.gain(pos, total, sr)
			samples[n][0], samples[n][1] = v, v
			phase += freq / float64(sr)
			if phase >= 1 {
				phase--
			}
			pos++
			n++
		}
		return n, true
	})
}

var pluck = Envelope{Attack: 0.005, Release: 0.12}

// ConfirmChime is a rising two-note chime.
func ConfirmChime(sr beep.SampleRate) beep.Streamer {
	return beep.Seq(
		Sine(sr, 880, 90*time.Millisecond, 0.5, pluck),
		Sine(sr, 1318.5, 180*time.Millisecond, 0.5, pluck),
	)
}

// ExplodeBurst is a short upward sweep with grit.
func ExplodeBurst(sr beep.SampleRate) beep.Streamer {
	return Sweep(sr, 220, 1760, 350*time.Millisecond, 0.45, 0.3, Envelope{Attack: 0.01, Release: 0.2})
}
