// Package audio plays the game's sounds through the system speaker.
//
// Playback is best-effort: a machine without an audio device gets a Silent
// player, and the game runs the same either way.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/engine"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes sound effects and one music track onto the speaker.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	music  *beep.Ctrl
	volume float64
	closed bool
}

// NewPlayer opens the speaker. It fails when no audio device is available.
func NewPlayer(volume float64) (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: failed to open speaker: %w", err)
	}

	p := &Player{mixer: &beep.Mixer{}, volume: volume}
	speaker.Play(p.mixer)
	return p, nil
}

// PlaySound starts a sound. A looping sound replaces the current music track.
func (p *Player) PlaySound(sound engine.Sound, looping bool) error {
	s, err := Streamer(sound.Name, sampleRate, p.volume, looping)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return fmt.Errorf("audio: player closed")
	}

	speaker.Lock()
	defer speaker.Unlock()
	if looping {
		if p.music != nil {
			p.music.Paused = true
			p.music.Streamer = nil
		}
		p.music = &beep.Ctrl{Streamer: s}
		p.mixer.Add(p.music)
		return nil
	}
	p.mixer.Add(s)
	return nil
}

// Close stops everything that is playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
}

// Silent is an engine.Audio that plays nothing. It still rejects unknown
// sounds so a misnamed asset shows up in the log without a device.
type Silent struct{}

func (Silent) PlaySound(sound engine.Sound, _ bool) error {
	if _, ok := synths[sound.Name]; !ok {
		return fmt.Errorf("audio: %w: %q", ErrUnknownSound, sound.Name)
	}
	return nil
}

// Closer is implemented by players that hold the speaker open.
type Closer interface {
	Close()
}

// New returns the audio backend cfg asks for. If the speaker cannot be opened
// the failure is logged and a Silent player is returned.
func New(cfg config.AudioConfig, mute bool, logger *log.Logger) engine.Audio {
	if !cfg.Enabled || mute {
		return Silent{}
	}

	p, err := NewPlayer(cfg.Volume)
	if err != nil {
		if logger != nil {
			logger.Warn("audio disabled", "error", err)
		}
		return Silent{}
	}
	return p
}
