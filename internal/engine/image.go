package engine

import "github.com/vovakirdan/tui-runner/internal/core"

// ImageHandle stands in for a decoded image. Terminal renderers paint it with
// Glyph in Color; a zero Glyph means "outline only".
type ImageHandle struct {
	Name   string
	Width  float64
	Height float64
	Glyph  rune
	Color  core.Color
}

// Image is an ImageHandle placed in the world with its own bounding box.
type Image struct {
	element     *ImageHandle
	boundingBox core.Rect
}

// NewImage places element with its top-left corner at position.
func NewImage(element *ImageHandle, position core.Point) *Image {
	return &Image{
		element:     element,
		boundingBox: core.NewRect(position.X, position.Y, element.Width, element.Height),
	}
}

// BoundingBox returns the image's world-space box.
func (i *Image) BoundingBox() core.Rect {
	return i.boundingBox
}

// Right returns the x-coordinate of the image's right edge.
func (i *Image) Right() float64 {
	return i.boundingBox.Right()
}

// SetX moves the image's left edge to x.
func (i *Image) SetX(x float64) {
	i.boundingBox.SetX(x)
}

// MoveHorizontally shifts the image by distance.
func (i *Image) MoveHorizontally(distance float64) {
	i.SetX(i.boundingBox.X() + distance)
}

// Draw renders the whole image at its position.
func (i *Image) Draw(r Renderer) {
	r.DrawEntireImage(i.element, i.boundingBox.Position)
}
