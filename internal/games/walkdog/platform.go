package walkdog

import (
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/engine"
)

// Platform is a floating surface built from several tiles. The runner can land
// on it from above; any other contact knocks it out.
type Platform struct {
	sheet         *engine.SpriteSheet
	position      core.Point
	sprites       []engine.Cell
	boundingBoxes []core.Rect
}

// NewPlatform places a platform with its top-left at position. Boxes are given
// relative to position and keep their order; names missing from the sheet are
// skipped when drawing.
func NewPlatform(sheet *engine.SpriteSheet, position core.Point, spriteNames []string, boxes []core.Rect) *Platform {
	sprites := make([]engine.Cell, 0, len(spriteNames))
	for _, name := range spriteNames {
		if cell, ok := sheet.Cell(name); ok {
			sprites = append(sprites, cell)
		}
	}

	placed := make([]core.Rect, len(boxes))
	for i, box := range boxes {
		placed[i] = box.Translate(position.X, position.Y)
	}

	return &Platform{
		sheet:         sheet,
		position:      position,
		sprites:       sprites,
		boundingBoxes: placed,
	}
}

// Draw lays the tiles out left to right, each as wide as its frame.
func (p *Platform) Draw(r engine.Renderer) {
	x := 0.0
	for _, sprite := range p.sprites {
		p.sheet.Draw(r, sprite.Source(), core.NewRect(p.position.X+x, p.position.Y, sprite.Frame.W, sprite.Frame.H))
		x += sprite.Frame.W
	}
}

func (p *Platform) MoveHorizontally(dx float64) {
	p.position.X += dx
	for i := range p.boundingBoxes {
		p.boundingBoxes[i].SetX(p.boundingBoxes[i].X() + dx)
	}
}

// Right returns the right edge of the last box.
func (p *Platform) Right() float64 {
	if len(p.boundingBoxes) == 0 {
		return p.position.X
	}
	return p.boundingBoxes[len(p.boundingBoxes)-1].Right()
}

func (p *Platform) BoundingBoxes() []core.Rect {
	return p.boundingBoxes
}

// CheckIntersection resolves against the first box the runner touches.
func (p *Platform) CheckIntersection(boy *RedHatBoy) error {
	box, err := boy.BoundingBox()
	if err != nil {
		return err
	}

	for _, target := range p.boundingBoxes {
		if !box.Intersects(target) {
			continue
		}
		if boy.VelocityY() > 0 && boy.PosY() < p.position.Y {
			boy.LandOn(target.Y())
		} else {
			boy.KnockOut()
		}
		return nil
	}
	return nil
}
