package walkdog

import (
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/engine"
)

// Barrier is a solid block. Touching it knocks the runner out.
type Barrier struct {
	image *engine.Image
}

// NewBarrier wraps a placed image.
func NewBarrier(image *engine.Image) *Barrier {
	return &Barrier{image: image}
}

func (b *Barrier) Draw(r engine.Renderer) {
	b.image.Draw(r)
}

func (b *Barrier) MoveHorizontally(dx float64) {
	b.image.MoveHorizontally(dx)
}

func (b *Barrier) Right() float64 {
	return b.image.Right()
}

func (b *Barrier) BoundingBoxes() []core.Rect {
	return []core.Rect{b.image.BoundingBox()}
}

func (b *Barrier) CheckIntersection(boy *RedHatBoy) error {
	box, err := boy.BoundingBox()
	if err != nil {
		return err
	}
	if box.Intersects(b.image.BoundingBox()) {
		boy.KnockOut()
	}
	return nil
}
