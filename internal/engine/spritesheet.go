package engine

import (
	"errors"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// ErrSpriteNotFound is returned when a frame name has no sprite-sheet entry.
var ErrSpriteNotFound = errors.New("sprite not found")

// SheetRect is a rectangle as stored in sprite-sheet JSON.
type SheetRect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Cell describes one frame: where it sits in the image (Frame) and how the
// trimmed frame is offset inside the untrimmed sprite (SpriteSourceSize).
type Cell struct {
	Frame            SheetRect `json:"frame"`
	SpriteSourceSize SheetRect `json:"spriteSourceSize"`
}

// Source returns the frame's source rectangle within the sheet image.
func (c Cell) Source() core.Rect {
	return core.NewRect(c.Frame.X, c.Frame.Y, c.Frame.W, c.Frame.H)
}

// Sheet maps frame names to cells.
type Sheet struct {
	Frames map[string]Cell `json:"frames"`
}

// SpriteSheet pairs a sheet descriptor with the image it indexes.
type SpriteSheet struct {
	sheet Sheet
	image *ImageHandle
}

// NewSpriteSheet creates a sprite sheet.
func NewSpriteSheet(sheet Sheet, image *ImageHandle) *SpriteSheet {
	return &SpriteSheet{sheet: sheet, image: image}
}

// Sheet returns the descriptor.
func (s *SpriteSheet) Sheet() Sheet {
	return s.sheet
}

// Image returns the backing image.
func (s *SpriteSheet) Image() *ImageHandle {
	return s.image
}

// Cell looks up a frame by name.
func (s *SpriteSheet) Cell(name string) (Cell, bool) {
	c, ok := s.sheet.Frames[name]
	return c, ok
}

// Draw copies source from the sheet image into destination.
func (s *SpriteSheet) Draw(r Renderer, source, destination core.Rect) {
	r.DrawImage(s.image, source, destination)
}
