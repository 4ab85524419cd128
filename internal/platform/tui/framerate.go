package tui

import "time"

// FrameRate counts rendered frames and publishes the count once per second.
type FrameRate struct {
	frames  int
	elapsed time.Duration
	current int
}

// Frame records one rendered frame that took dt since the previous one.
func (f *FrameRate) Frame(dt time.Duration) {
	f.frames++
	f.elapsed += dt
	if f.elapsed >= time.Second {
		f.current = f.frames
		f.frames = 0
		f.elapsed = 0
	}
}

// Current returns the frame count of the last complete second.
func (f *FrameRate) Current() int {
	return f.current
}
