// Package engine defines the collaborators the game core draws, listens and
// plays sound through, plus the small value types they exchange.
//
// The core only issues calls on these interfaces; the platform layer supplies
// the terminal-backed implementations.
package engine

import "github.com/vovakirdan/tui-runner/internal/core"

// Renderer receives draw calls in logical canvas coordinates.
type Renderer interface {
	// Clear blanks the given region.
	Clear(rect core.Rect)
	// DrawImage draws the src region of img into dst.
	DrawImage(img *ImageHandle, src, dst core.Rect)
	// DrawEntireImage draws img at its natural size with its top-left at pos.
	DrawEntireImage(img *ImageHandle, pos core.Point)
	// DrawText draws debug text at location.
	DrawText(text string, location core.Point)
}

// BoxDrawer is implemented by renderers that can outline bounding boxes.
type BoxDrawer interface {
	DrawBoundingBox(box core.Rect)
}

// Input reports whether a named key is currently held.
type Input interface {
	IsPressed(code string) bool
}

// Sound is a handle to a decoded sound.
type Sound struct {
	Name string
}

// Audio plays sounds. Playback is fire-and-forget; callers treat errors as
// non-fatal.
type Audio interface {
	PlaySound(sound Sound, looping bool) error
}

// NoInput is an Input with nothing pressed.
type NoInput struct{}

// IsPressed always returns false.
func (NoInput) IsPressed(string) bool { return false }

// NopRenderer discards every draw call.
type NopRenderer struct{}

func (NopRenderer) Clear(core.Rect)                              {}
func (NopRenderer) DrawImage(*ImageHandle, core.Rect, core.Rect) {}
func (NopRenderer) DrawEntireImage(*ImageHandle, core.Point)     {}
func (NopRenderer) DrawText(string, core.Point)                  {}
