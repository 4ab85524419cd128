package walkdog

import (
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/engine"
)

// Obstacle is anything in the course the runner can collide with.
type Obstacle interface {
	// Draw renders the obstacle.
	Draw(r engine.Renderer)
	// MoveHorizontally shifts every box and sprite anchor by dx.
	MoveHorizontally(dx float64)
	// Right returns the rightmost x-coordinate the obstacle covers.
	Right() float64
	// CheckIntersection resolves a collision with boy, knocking it out or
	// landing it on top.
	CheckIntersection(boy *RedHatBoy) error
	// BoundingBoxes returns the obstacle's boxes in world space.
	BoundingBoxes() []core.Rect
}

// Rightmost returns the largest Right() among obstacles, or 0 when empty.
func Rightmost(obstacles []Obstacle) float64 {
	if len(obstacles) == 0 {
		return 0
	}
	right := obstacles[0].Right()
	for _, o := range obstacles[1:] {
		right = max(right, o.Right())
	}
	return right
}
