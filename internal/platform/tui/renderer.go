package tui

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/engine"
)

// Renderer draws the game's logical canvas onto a region of a Screen.
// Images become rectangles of their glyph; a zero glyph draws an outline.
type Renderer struct {
	screen   *core.Screen
	canvasW  float64
	canvasH  float64
	viewport viewport
}

// viewport is the screen region, in cells, the canvas is scaled into.
type viewport struct {
	x, y, w, h int
}

// NewRenderer creates a renderer for a canvasW x canvasH logical canvas.
func NewRenderer(screen *core.Screen, canvasW, canvasH float64) *Renderer {
	r := &Renderer{screen: screen, canvasW: canvasW, canvasH: canvasH}
	r.Layout(screen.Width(), screen.Height())
	return r
}

// Layout fits the canvas into a width x height cell area at the top of the
// screen. Cells are about twice as tall as they are wide, so a square canvas
// gets two columns per row.
func (r *Renderer) Layout(width, height int) {
	rows := max(height, 1)
	cols := int(math.Round(float64(rows) * 2 * r.canvasW / r.canvasH))
	if cols > width {
		cols = max(width, 1)
		rows = core.Clamp(int(math.Round(float64(cols)*r.canvasH/(2*r.canvasW))), 1, rows)
	}
	r.viewport = viewport{x: (width - cols) / 2, y: 0, w: cols, h: rows}
}

// Viewport returns the canvas area as x, y, width, height in cells.
func (r *Renderer) Viewport() (x, y, w, h int) {
	return r.viewport.x, r.viewport.y, r.viewport.w, r.viewport.h
}

// cells maps a logical rectangle to the cell span it covers, unclipped.
// Every non-empty rectangle covers at least one cell.
func (r *Renderer) cells(rect core.Rect) (x0, y0, x1, y1 int) {
	w, h := float64(r.viewport.w), float64(r.viewport.h)

	x0 = int(math.Floor(rect.X() * w / r.canvasW))
	y0 = int(math.Floor(rect.Y() * h / r.canvasH))
	x1 = max(int(math.Ceil(rect.Right()*w/r.canvasW)), x0+1)
	y1 = max(int(math.Ceil(rect.Bottom()*h/r.canvasH)), y0+1)
	return x0, y0, x1, y1
}

// set writes one cell if it lies inside the viewport.
func (r *Renderer) set(x, y int, ch rune, c core.Color) {
	if x < 0 || x >= r.viewport.w || y < 0 || y >= r.viewport.h {
		return
	}
	r.screen.SetColored(r.viewport.x+x, r.viewport.y+y, ch, c)
}

// fill paints the part of rect that lies inside the viewport.
func (r *Renderer) fill(rect core.Rect, ch rune, c core.Color) {
	x0, y0, x1, y1 := r.cells(rect)
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, r.viewport.w), min(y1, r.viewport.h)
	r.screen.FillRect(r.viewport.x+x0, r.viewport.y+y0, x1-x0, y1-y0, ch, c)
}

func (r *Renderer) outline(rect core.Rect, c core.Color) {
	x0, y0, x1, y1 := r.cells(rect)
	right, bottom := x1-1, y1-1

	for x := x0 + 1; x < right; x++ {
		r.set(x, y0, '─', c)
		r.set(x, bottom, '─', c)
	}
	for y := y0 + 1; y < bottom; y++ {
		r.set(x0, y, '│', c)
		r.set(right, y, '│', c)
	}
	r.set(x0, y0, '┌', c)
	r.set(right, y0, '┐', c)
	r.set(x0, bottom, '└', c)
	r.set(right, bottom, '┘', c)
}

func (r *Renderer) paint(img *engine.ImageHandle, dst core.Rect) {
	if img.Glyph == 0 {
		r.outline(dst, img.Color)
		return
	}
	r.fill(dst, img.Glyph, img.Color)
}

// Clear blanks the part of rect that is on screen.
func (r *Renderer) Clear(rect core.Rect) {
	r.fill(rect, ' ', core.ColorDefault)
}

// DrawImage paints dst. Terminal cells cannot show the sprite's pixels, so
// the source region is ignored.
func (r *Renderer) DrawImage(img *engine.ImageHandle, _, dst core.Rect) {
	r.paint(img, dst)
}

// DrawEntireImage paints img at its natural size.
func (r *Renderer) DrawEntireImage(img *engine.ImageHandle, pos core.Point) {
	r.paint(img, core.NewRect(pos.X, pos.Y, img.Width, img.Height))
}

// DrawText writes text starting at the cell containing location.
func (r *Renderer) DrawText(text string, location core.Point) {
	x, y, _, _ := r.cells(core.NewRect(location.X, location.Y, 0, 0))
	for i, ch := range []rune(text) {
		r.set(x+i, y, ch, core.ColorBrightYellow)
	}
}

// DrawBoundingBox outlines a collision box.
func (r *Renderer) DrawBoundingBox(box core.Rect) {
	r.outline(box, core.ColorYellow)
}

// DrawMessage centers lines of text vertically and horizontally in the viewport.
func (r *Renderer) DrawMessage(lines ...string) {
	top := (r.viewport.h - len(lines)) / 2
	for i, line := range lines {
		runes := []rune(line)
		left := (r.viewport.w - len(runes)) / 2
		for j, ch := range runes {
			r.set(left+j, top+i, ch, core.ColorBrightYellow)
		}
	}
}
