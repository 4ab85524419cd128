// Package walkdog implements "Walk the Dog", a side-scrolling runner.
// The runner starts on the first right-arrow press and keeps going until it
// hits a stone or the side of a platform. Space jumps, down-arrow slides.
//
// All logic is tick-counted: the host calls Update once per fixed step and
// Draw once per rendered frame. Nothing here reads the clock.
package walkdog

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/engine"
)

// Game is the Walk the Dog game.
type Game struct {
	machine *gameMachine
	canvas  core.Rect
	logger  *log.Logger
}

// New builds a game from loaded assets. It fails if the sprite sheets lack a
// frame the runner or the platforms can ask for, or if the configuration names
// an unknown segment pattern.
func New(a *assets.Assets, cfg config.RunnerConfig, audio engine.Audio, logger *log.Logger, seed int64) (*Game, error) {
	logger = orDiscard(logger)

	if err := assets.Validate(a.Runner, RequiredFrames()); err != nil {
		return nil, fmt.Errorf("walkdog: runner sheet: %w", err)
	}
	if err := assets.Validate(a.Tiles, PlatformTiles); err != nil {
		return nil, fmt.Errorf("walkdog: tile sheet: %w", err)
	}

	generator, err := NewSegmentGenerator(
		SegmentAssets{Stone: a.Stone, Tiles: a.Tiles},
		cfg.World.Segments,
		rand.New(rand.NewSource(seed)),
	)
	if err != nil {
		return nil, err
	}

	boy := NewRedHatBoy(a.Runner, cfg, audio, a.JumpSound, logger)
	world := NewWorld(boy, a.Background, generator, cfg)

	if cfg.Audio.Music && a.Music.Name != "" {
		playSound(audio, logger, a.Music, true)
	}

	logger.Debug("game created", "seed", seed, "segments", generator.Names())

	return &Game{
		machine: newGameMachine(world, logger),
		canvas:  core.NewRect(0, 0, cfg.Canvas.Width, cfg.Canvas.Height),
		logger:  logger,
	}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "walkdog"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Walk the Dog"
}

// Update advances the game by one logic tick.
func (g *Game) Update(in engine.Input) error {
	if in == nil {
		in = engine.NoInput{}
	}
	return g.machine.update(in)
}

// Draw clears the canvas and draws the world.
func (g *Game) Draw(r engine.Renderer) error {
	r.Clear(g.canvas)
	return g.machine.draw(r)
}

// RequestNewGame signals that the player wants to play again. It is only
// accepted after a game over; the next Update starts the new game.
func (g *Game) RequestNewGame() bool {
	return g.machine.requestNewGame()
}

// Phase returns the current game-level state.
func (g *Game) Phase() Phase {
	return g.machine.state.phase()
}

// World returns the world currently being played.
func (g *Game) World() *World {
	return g.machine.state.world()
}

// State returns a summary for the host.
func (g *Game) State() core.GameState {
	w := g.World()
	return core.GameState{
		Phase:    string(g.Phase()),
		Runner:   w.Boy().State().String(),
		Distance: w.Distance(),
		GameOver: g.Phase() == PhaseGameOver,
	}
}
