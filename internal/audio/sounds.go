package audio

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// ErrUnknownSound is returned for a sound name with no synthesizer.
var ErrUnknownSound = errors.New("unknown sound")

// synth builds a fresh streamer for one playback of a sound.
type synth func(sr beep.SampleRate) beep.Streamer

// Sounds are synthesized rather than decoded; names match the asset manifest.
var synths = map[string]synth{
	"SFX_Jump_23":     newJumpChirp,
	"background_song": newBackgroundSong,
}

// Names returns the sounds that can be played, sorted.
func Names() []string {
	names := make([]string, 0, len(synths))
	for name := range synths {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Streamer builds the stream for a named sound at volume (0..1). A looping
// sound restarts whenever it ends and never finishes.
func Streamer(name string, sr beep.SampleRate, volume float64, looping bool) (beep.Streamer, error) {
	build, ok := synths[name]
	if !ok {
		return nil, fmt.Errorf("audio: %w: %q", ErrUnknownSound, name)
	}

	var s beep.Streamer
	if looping {
		s = &repeat{next: func() beep.Streamer { return build(sr) }}
	} else {
		s = build(sr)
	}
	return newVolume(s, volume), nil
}

// newVolume scales s linearly. Zero volume is silent since log2(0) is -Inf.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// repeat plays a fresh stream from next each time the current one ends.
type repeat struct {
	next func() beep.Streamer
	cur  beep.Streamer
}

func (r *repeat) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		if r.cur == nil {
			r.cur = r.next()
		}
		m, more := r.cur.Stream(samples[n:])
		n += m
		if !more || m == 0 {
			r.cur = nil
		}
	}
	return n, true
}

func (r *repeat) Err() error { return nil }

// chirp is a sine sweep with an exponential decay.
type chirp struct {
	sr       beep.SampleRate
	from, to float64
	length   int
	pos      int
	phase    float64
}

func newJumpChirp(sr beep.SampleRate) beep.Streamer {
	return &chirp{sr: sr, from: 300, to: 900, length: sr.N(150 * time.Millisecond)}
}

func (c *chirp) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if c.pos >= c.length {
			return i, i > 0
		}
		progress := float64(c.pos) / float64(c.length)
		freq := c.from + (c.to-c.from)*progress
		c.phase += freq / float64(c.sr)

		v := 0.5 * math.Exp(-4*progress) * math.Sin(2*math.Pi*c.phase)
		samples[i][0] = v
		samples[i][1] = v
		c.pos++
	}
	return len(samples), true
}

func (c *chirp) Err() error { return nil }

// tune is a short arpeggio played as soft square-ish notes. It ends after
// one pass; looping playback wraps it in repeat.
type tune struct {
	sr      beep.SampleRate
	notes   []float64
	noteLen int
	pos     int
}

func newBackgroundSong(sr beep.SampleRate) beep.Streamer {
	return &tune{
		sr:      sr,
		notes:   []float64{220, 277.18, 329.63, 440, 329.63, 277.18, 246.94, 329.63},
		noteLen: sr.N(250 * time.Millisecond),
	}
}

func (t *tune) Stream(samples [][2]float64) (n int, ok bool) {
	total := t.noteLen * len(t.notes)
	for i := range samples {
		if t.pos >= total {
			return i, i > 0
		}
		note := t.notes[t.pos/t.noteLen]
		inNote := float64(t.pos%t.noteLen) / float64(t.noteLen)
		secs := float64(t.pos) / float64(t.sr)

		v := math.Sin(2 * math.Pi * note * secs)
		v += 0.3 * math.Sin(2*math.Pi*note*3*secs)
		v *= 0.2 * (1 - inNote)

		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *tune) Err() error { return nil }
