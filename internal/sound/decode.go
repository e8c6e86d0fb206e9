package sound

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
)

// ErrUnsupportedFormat is returned for files that are not wav, mp3 or flac.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Patterns lists the file patterns Decode understands, for file pickers.
var Patterns = []string{"*.wav", "*.mp3", "*.flac"}

// resampleQuality is the beep resampler quality, 1 to 6.
const resampleQuality = 4

// Decode opens path and decodes it by extension. The caller closes the
// returned streamer.
func Decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav", ".mp3", ".flac":
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	}
	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return streamer, format, nil
}

// Load decodes path fully into memory at sample rate sr, so the result can
// be replayed any number of times.
func Load(path string, sr beep.SampleRate) (*beep.Buffer, error) {
	streamer, format, err := Decode(path)
	if err != nil {
		return nil, err
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != sr {
		src = beep.Resample(resampleQuality, format.SampleRate, sr, streamer)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	buf.Append(src)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("%s: no audio", filepath.Base(path))
	}
	return buf, nil
}
