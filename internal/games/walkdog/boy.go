package walkdog

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/engine"
)

// The hit box is the sprite's destination box trimmed of transparent padding.
const (
	boundingBoxXOffset     = 18
	boundingBoxYOffset     = 14
	boundingBoxWidthInset  = 28
	boundingBoxHeightInset = 14
)

// RedHatBoy is the runner: a state machine plus the sprite sheet it animates.
type RedHatBoy struct {
	machine *Machine
	sheet   *engine.SpriteSheet

	cfg       config.RunnerConfig
	audio     engine.Audio
	jumpSound engine.Sound
	logger    *log.Logger
}

// NewRedHatBoy creates an idle runner at the configured starting point.
func NewRedHatBoy(sheet *engine.SpriteSheet, cfg config.RunnerConfig, audio engine.Audio, jumpSound engine.Sound, logger *log.Logger) *RedHatBoy {
	logger = orDiscard(logger)
	return &RedHatBoy{
		machine:   NewMachine(cfg, audio, jumpSound, logger),
		sheet:     sheet,
		cfg:       cfg,
		audio:     audio,
		jumpSound: jumpSound,
		logger:    logger,
	}
}

// Reset returns a fresh idle runner sharing this one's sprite sheet and audio.
func (b *RedHatBoy) Reset() *RedHatBoy {
	return NewRedHatBoy(b.sheet, b.cfg, b.audio, b.jumpSound, b.logger)
}

// FrameName returns the sprite-sheet key of the frame to display, e.g. "Run (3).png".
func (b *RedHatBoy) FrameName() string {
	return frameKey(b.machine.FrameName(), b.machine.Context().Frame)
}

func frameKey(label string, frame int) string {
	return fmt.Sprintf("%s (%d).png", label, frame/3+1)
}

// CurrentSprite looks up the frame to display.
func (b *RedHatBoy) CurrentSprite() (engine.Cell, error) {
	name := b.FrameName()
	cell, ok := b.sheet.Cell(name)
	if !ok {
		return engine.Cell{}, fmt.Errorf("walkdog: frame %q in state %s: %w", name, b.machine.State(), engine.ErrSpriteNotFound)
	}
	return cell, nil
}

// DestinationBox is where the current frame is drawn, untrimmed.
func (b *RedHatBoy) DestinationBox() (core.Rect, error) {
	sprite, err := b.CurrentSprite()
	if err != nil {
		return core.Rect{}, err
	}
	pos := b.machine.Context().Position
	return core.NewRect(
		pos.X+sprite.SpriteSourceSize.X,
		pos.Y+sprite.SpriteSourceSize.Y,
		sprite.Frame.W,
		sprite.Frame.H,
	), nil
}

// BoundingBox is the box used for collisions.
func (b *RedHatBoy) BoundingBox() (core.Rect, error) {
	dst, err := b.DestinationBox()
	if err != nil {
		return core.Rect{}, err
	}
	return core.NewRect(
		dst.X()+boundingBoxXOffset,
		dst.Y()+boundingBoxYOffset,
		dst.Width-boundingBoxWidthInset,
		dst.Height-boundingBoxHeightInset,
	), nil
}

// Draw renders the current frame.
func (b *RedHatBoy) Draw(r engine.Renderer) error {
	sprite, err := b.CurrentSprite()
	if err != nil {
		return err
	}
	dst, err := b.DestinationBox()
	if err != nil {
		return err
	}
	b.sheet.Draw(r, sprite.Source(), dst)
	return nil
}

// PosY returns the sprite anchor's y-coordinate.
func (b *RedHatBoy) PosY() float64 {
	return b.machine.Context().Position.Y
}

// VelocityY returns the vertical speed; positive is falling.
func (b *RedHatBoy) VelocityY() float64 {
	return b.machine.Context().Velocity.Y
}

// WalkingSpeed returns the horizontal run speed.
func (b *RedHatBoy) WalkingSpeed() float64 {
	return b.machine.Context().Velocity.X
}

// State returns the current state's name.
func (b *RedHatBoy) State() StateName {
	return b.machine.State()
}

// Context returns a snapshot of the runner's continuous state.
func (b *RedHatBoy) Context() Context {
	return b.machine.Context()
}

// KnockedOut reports whether the runner is out for good.
func (b *RedHatBoy) KnockedOut() bool {
	return b.machine.KnockedOut()
}

func (b *RedHatBoy) Update()          { b.machine.Update() }
func (b *RedHatBoy) RunRight()        { b.machine.Transition(Run) }
func (b *RedHatBoy) Slide()           { b.machine.Transition(Slide) }
func (b *RedHatBoy) Jump()            { b.machine.Transition(Jump) }
func (b *RedHatBoy) KnockOut()        { b.machine.Transition(KnockOut) }
func (b *RedHatBoy) LandOn(y float64) { b.machine.Transition(Land(y)) }

// RequiredFrames lists every sprite-sheet key the runner can ask for.
func RequiredFrames() []string {
	animations := []struct {
		label string
		ticks int
	}{
		{IdleFrameName, IdleFrames},
		{RunningFrameName, RunningFrames},
		{SlidingFrameName, SlidingFrames},
		{JumpingFrameName, JumpingFrames},
		{FallingFrameName, FallingFrames},
	}

	var names []string
	for _, a := range animations {
		for frame := 0; frame <= a.ticks; frame += 3 {
			names = append(names, frameKey(a.label, frame))
		}
	}
	return names
}
