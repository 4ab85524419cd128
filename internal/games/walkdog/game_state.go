package walkdog

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/engine"
)

// Phase names a game-level state.
type Phase string

const (
	PhaseReady    Phase = "Ready"
	PhaseWalking  Phase = "Walking"
	PhaseGameOver Phase = "GameOver"
)

// gameState is the closed set of game-level states. Each owns the world it
// plays in.
type gameState interface {
	phase() Phase
	world() *World
}

type readyState struct{ w *World }

type walkingState struct{ w *World }

// gameOverState waits on newGame, which the host signals through
// Game.RequestNewGame.
type gameOverState struct {
	w       *World
	newGame chan struct{}
}

func (s readyState) phase() Phase    { return PhaseReady }
func (s walkingState) phase() Phase  { return PhaseWalking }
func (s gameOverState) phase() Phase { return PhaseGameOver }

func (s readyState) world() *World    { return s.w }
func (s walkingState) world() *World  { return s.w }
func (s gameOverState) world() *World { return s.w }

// update waits for the run key, then starts the runner.
func (s readyState) update(in engine.Input) gameState {
	s.w.boy.Update()
	if in.IsPressed(core.KeyArrowRight) {
		s.w.boy.RunRight()
		return walkingState(s)
	}
	return s
}

// update runs one tick of play. Held keys re-issue their event every tick; the
// runner ignores the ones its state has no use for. The game is over in the
// same update that leaves the runner knocked out.
func (s walkingState) update(in engine.Input, logger *log.Logger) (gameState, error) {
	if in.IsPressed(core.KeyArrowDown) {
		s.w.boy.Slide()
	}
	if in.IsPressed(core.KeySpace) {
		s.w.boy.Jump()
	}

	s.w.boy.Update()
	if err := s.w.Walk(); err != nil {
		return s, err
	}

	if s.w.KnockedOut() {
		logger.Info("runner knocked out", "distance", s.w.Distance())
		return gameOverState{w: s.w, newGame: make(chan struct{}, 1)}, nil
	}
	return s, nil
}

// update stays frozen until a new game has been requested.
func (s gameOverState) update() gameState {
	select {
	case <-s.newGame:
		return readyState{w: s.w.Reset()}
	default:
		return s
	}
}

// requestNewGame queues the signal. It reports false if one is already pending.
func (s gameOverState) requestNewGame() bool {
	select {
	case s.newGame <- struct{}{}:
		return true
	default:
		return false
	}
}

// gameMachine drives the game-level states.
type gameMachine struct {
	state  gameState
	logger *log.Logger
}

func newGameMachine(w *World, logger *log.Logger) *gameMachine {
	return &gameMachine{state: readyState{w: w}, logger: orDiscard(logger)}
}

func (m *gameMachine) update(in engine.Input) error {
	var err error
	switch s := m.state.(type) {
	case readyState:
		m.state = s.update(in)
		if m.state.phase() == PhaseWalking {
			m.logger.Debug("runner started")
		}
	case walkingState:
		m.state, err = s.update(in, m.logger)
	case gameOverState:
		m.state = s.update()
		if m.state.phase() == PhaseReady {
			m.logger.Debug("new game")
		}
	}
	return err
}

func (m *gameMachine) draw(r engine.Renderer) error {
	return m.state.world().Draw(r)
}

func (m *gameMachine) requestNewGame() bool {
	if s, ok := m.state.(gameOverState); ok {
		return s.requestNewGame()
	}
	return false
}
