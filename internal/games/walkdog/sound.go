package walkdog

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/engine"
)

// playSound starts a sound and logs, rather than returns, any failure.
// Gameplay must not depend on whether audio works.
func playSound(audio engine.Audio, logger *log.Logger, sound engine.Sound, looping bool) {
	if audio == nil {
		return
	}
	if err := audio.PlaySound(sound, looping); err != nil {
		logger.Warn("could not play sound", "sound", sound.Name, "looping", looping, "error", err)
	}
}

// orDiscard substitutes a logger that drops everything for nil.
func orDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.New(io.Discard)
	}
	return logger
}
