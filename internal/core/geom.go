// Package core provides fundamental types and utilities for the runner.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Point is a position in the 600x600 logical canvas (world units).
type Point struct {
	X, Y float64
}

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	Position Point   // Top-left corner
	Width    float64 // Horizontal extent
	Height   float64 // Vertical extent
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Position: Point{X: x, Y: y}, Width: w, Height: h}
}

// X returns the x-coordinate of the left edge.
func (r Rect) X() float64 {
	return r.Position.X
}

// Y returns the y-coordinate of the top edge.
func (r Rect) Y() float64 {
	return r.Position.Y
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.Position.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Position.Y + r.Height
}

// SetX moves the rectangle so its left edge sits at x.
func (r *Rect) SetX(x float64) {
	r.Position.X = x
}

// Translate returns a copy of the rectangle shifted by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return NewRect(r.Position.X+dx, r.Position.Y+dy, r.Width, r.Height)
}

// Intersects returns true if this rectangle overlaps with another.
// Edges are exclusive: rectangles that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X() < other.Right() &&
		r.Right() > other.X() &&
		r.Y() < other.Bottom() &&
		r.Bottom() > other.Y()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
