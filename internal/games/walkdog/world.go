package walkdog

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/engine"
)

// World is the scrolling course: the runner, two background tiles that take
// turns covering the screen, and the obstacles generated so far.
//
// Obstacles live in screen space and scroll left. The timeline marks, in world
// space, how far right obstacles have been generated; scrolled is how far the
// screen has moved. Their difference is the lookahead still ahead of the
// screen's left edge.
type World struct {
	boy         *RedHatBoy
	backgrounds [2]*engine.Image
	background  *engine.ImageHandle
	obstacles   []Obstacle
	generator   *SegmentGenerator
	timeline    float64
	scrolled    float64

	cfg config.WorldConfig
	// Draw bounding boxes when the renderer supports it.
	showBoxes bool
}

// NewWorld creates a world with no obstacles. The first segment is generated
// on the first Walk.
func NewWorld(boy *RedHatBoy, background *engine.ImageHandle, generator *SegmentGenerator, cfg config.RunnerConfig) *World {
	return &World{
		boy:        boy,
		background: background,
		backgrounds: [2]*engine.Image{
			engine.NewImage(background, core.Point{X: 0, Y: 0}),
			engine.NewImage(background, core.Point{X: background.Width, Y: 0}),
		},
		generator: generator,
		cfg:       cfg.World,
		showBoxes: cfg.Debug.BoundingBoxes,
	}
}

// Reset returns a new world with a fresh runner and no obstacles. Only the
// assets and the segment generator are shared with w.
func (w *World) Reset() *World {
	fresh := &World{
		boy:        w.boy.Reset(),
		background: w.background,
		backgrounds: [2]*engine.Image{
			engine.NewImage(w.background, core.Point{X: 0, Y: 0}),
			engine.NewImage(w.background, core.Point{X: w.background.Width, Y: 0}),
		},
		generator: w.generator,
		cfg:       w.cfg,
		showBoxes: w.showBoxes,
	}
	return fresh
}

// Boy returns the runner.
func (w *World) Boy() *RedHatBoy {
	return w.boy
}

// Obstacles returns the live obstacles in spawn order.
func (w *World) Obstacles() []Obstacle {
	return w.obstacles
}

// Backgrounds returns the two background tiles.
func (w *World) Backgrounds() [2]*engine.Image {
	return w.backgrounds
}

// Timeline returns the world-space x up to which obstacles exist.
func (w *World) Timeline() float64 {
	return w.timeline
}

// Distance returns how far the course has scrolled.
func (w *World) Distance() float64 {
	return w.scrolled
}

// Velocity is the scroll speed; negative moves everything left.
func (w *World) Velocity() float64 {
	return -w.boy.WalkingSpeed()
}

// KnockedOut reports whether the runner is out.
func (w *World) KnockedOut() bool {
	return w.boy.KnockedOut()
}

// Walk scrolls the course by one tick. The runner must already have been
// updated for this tick.
func (w *World) Walk() error {
	velocity := w.Velocity()

	first, second := w.backgrounds[0], w.backgrounds[1]
	first.MoveHorizontally(velocity)
	second.MoveHorizontally(velocity)
	if first.Right() < 0 {
		first.SetX(second.Right())
	}
	if second.Right() < 0 {
		second.SetX(first.Right())
	}
	w.scrolled -= velocity

	kept := w.obstacles[:0]
	for _, o := range w.obstacles {
		if o.Right() > 0 {
			kept = append(kept, o)
		}
	}
	clear(w.obstacles[len(kept):])
	w.obstacles = kept

	for _, o := range w.obstacles {
		o.MoveHorizontally(velocity)
		if err := o.CheckIntersection(w.boy); err != nil {
			return err
		}
	}

	if lookahead := w.timeline - w.scrolled; lookahead < w.cfg.TimelineMinimum {
		segment := w.generator.Next(lookahead + w.cfg.ObstacleBuffer)
		w.obstacles = append(w.obstacles, segment...)
		w.timeline = max(w.timeline, w.scrolled+Rightmost(segment))
	}

	return nil
}

// Draw renders backgrounds, then the runner, then obstacles.
func (w *World) Draw(r engine.Renderer) error {
	for _, bg := range w.backgrounds {
		bg.Draw(r)
	}
	if err := w.boy.Draw(r); err != nil {
		return err
	}
	for _, o := range w.obstacles {
		o.Draw(r)
	}

	if w.showBoxes {
		if boxes, ok := r.(engine.BoxDrawer); ok {
			return w.drawBoundingBoxes(boxes)
		}
	}
	return nil
}

func (w *World) drawBoundingBoxes(d engine.BoxDrawer) error {
	box, err := w.boy.BoundingBox()
	if err != nil {
		return err
	}
	d.DrawBoundingBox(box)
	for _, o := range w.obstacles {
		for _, b := range o.BoundingBoxes() {
			d.DrawBoundingBox(b)
		}
	}
	return nil
}
