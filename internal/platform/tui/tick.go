package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxStepsPerFrame caps catch-up after a stall.
const maxStepsPerFrame = 10

// TickMsg is sent to trigger a frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after one frame interval.
func tickCmd(frameRate int) tea.Cmd {
	return tea.Tick(interval(frameRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func interval(rate int) time.Duration {
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// Scheduler turns wall-clock time into whole fixed logic steps.
type Scheduler struct {
	step time.Duration
	debt time.Duration
	last time.Time
}

// NewScheduler creates a scheduler running tickRate logic steps per second.
func NewScheduler(tickRate int) *Scheduler {
	return &Scheduler{step: interval(tickRate)}
}

// Advance accounts for the time since the previous call and returns how many
// logic steps are due. The first call only starts the clock. Debt beyond
// maxStepsPerFrame steps is dropped.
func (s *Scheduler) Advance(now time.Time) int {
	if s.last.IsZero() {
		s.last = now
		return 0
	}

	elapsed := now.Sub(s.last)
	s.last = now
	if elapsed < 0 {
		elapsed = 0
	}

	s.debt += elapsed
	if limit := s.step * maxStepsPerFrame; s.debt > limit {
		s.debt = limit
	}

	steps := int(s.debt / s.step)
	s.debt -= time.Duration(steps) * s.step
	return steps
}

// Reset forgets accumulated time, e.g. after a pause.
func (s *Scheduler) Reset() {
	s.debt = 0
	s.last = time.Time{}
}

// Step returns the duration of one logic step.
func (s *Scheduler) Step() time.Duration {
	return s.step
}
