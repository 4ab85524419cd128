// Package tui provides the Bubble Tea host for the runner.
// It drives the game with a fixed-timestep scheduler, maps keys to the game's
// key codes, and draws the game's canvas into the terminal.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/engine"
)

// footerHeight is the number of rows below the canvas: HUD and help.
const footerHeight = 2

// frameRateLocation is where the frame-rate counter is drawn on the canvas.
var frameRateLocation = core.Point{X: 400, Y: 100}

// Game is what the host needs from a game.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
type Game interface {
	ID() string
	Title() string
	// Update advances the simulation by one fixed tick.
	Update(in engine.Input) error
	// Draw issues draw calls for the current frame.
	Draw(r engine.Renderer) error
	// RequestNewGame asks for a new game; false if not possible now.
	RequestNewGame() bool
	State() core.GameState
}

// Options configure the host.
type Options struct {
	TickRate      int     // Logic steps per second
	FrameRate     int     // Frames drawn per second
	CanvasW       float64 // Logical canvas size
	CanvasH       float64
	ShowFrameRate bool
	HoldTicks     int // How long a key press counts as held
	ScreenW       int // Terminal size at start-up; zero uses the default
	ScreenH       int
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game      Game
	opts      Options
	screen    *core.Screen
	renderer  *Renderer
	input     *core.KeyState
	scheduler *Scheduler
	fps       *FrameRate
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	lastFrame time.Time
	state     core.GameState
	paused    bool
	quitting  bool
	err       error
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, opts Options, logger *log.Logger) Model {
	rt := core.DefaultConfig()
	if opts.TickRate <= 0 {
		opts.TickRate = rt.TickRate
	}
	if opts.FrameRate <= 0 {
		opts.FrameRate = opts.TickRate
	}
	if logger == nil {
		logger = log.Default()
	}

	if opts.ScreenW > 0 && opts.ScreenH > 0 {
		rt.ScreenW, rt.ScreenH = opts.ScreenW, opts.ScreenH
	}
	screen := core.NewScreen(rt.ScreenW, max(rt.ScreenH-footerHeight, 1))

	return Model{
		game:      game,
		opts:      opts,
		screen:    screen,
		renderer:  NewRenderer(screen, opts.CanvasW, opts.CanvasH),
		input:     core.NewKeyState(opts.HoldTicks),
		scheduler: NewScheduler(opts.TickRate),
		fps:       &FrameRate{},
		keys:      DefaultKeyMap(),
		help:      help.New(),
		logger:    logger,
		state:     game.State(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		m.scheduler.Reset()
		m.input.Clear()
		m.logger.Debug("pause toggled", "paused", m.paused)
		return m, nil

	case key.Matches(msg, m.keys.NewGame):
		if m.game.RequestNewGame() {
			m.logger.Info("new game requested")
		}
		return m, nil
	}

	if m.paused {
		return m, nil
	}
	if code, ok := m.keys.GameKey(msg); ok {
		m.input.Press(code)
	}
	return m, nil
}

// handleResize fits the canvas to the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	height := max(msg.Height-footerHeight, 1)
	m.screen.Resize(msg.Width, height)
	m.renderer.Layout(msg.Width, height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs the logic steps that are due, then draws one frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	steps := m.scheduler.Advance(now)
	if m.paused {
		steps = 0
	}

	for range steps {
		if err := m.game.Update(m.input); err != nil {
			return m.fail(err)
		}
		m.input.Tick()
	}
	m.state = m.game.State()
	m.state.Paused = m.paused

	if !m.lastFrame.IsZero() {
		m.fps.Frame(now.Sub(m.lastFrame))
	}
	m.lastFrame = now

	if err := m.draw(); err != nil {
		return m.fail(err)
	}

	return m, tickCmd(m.opts.FrameRate)
}

// draw renders the game and any overlay into the screen buffer.
func (m Model) draw() error {
	m.screen.Clear()
	if err := m.game.Draw(m.renderer); err != nil {
		return err
	}

	if m.opts.ShowFrameRate {
		m.renderer.DrawText(fmt.Sprintf("%d fps", m.fps.Current()), frameRateLocation)
	}

	switch {
	case m.paused:
		m.renderer.DrawMessage("PAUSED", "press P to resume")
	case m.state.GameOver:
		m.renderer.DrawMessage("GAME OVER", "press R for a new game")
	case m.state.Phase == "Ready":
		m.renderer.DrawMessage(m.game.Title(), "press → to run")
	}
	return nil
}

func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	m.logger.Error("game stopped", "game", m.game.ID(), "error", err)
	m.err = err
	m.quitting = true
	return m, tea.Quit
}

// Err returns the error that stopped the game, if any.
func (m Model) Err() error {
	return m.err
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	phase := valueStyle
	if m.state.GameOver {
		phase = errorStyle
	}

	hud := hudStyle.Render("distance ") + valueStyle.Render(fmt.Sprintf("%.0f", m.state.Distance)) +
		hudStyle.Render("   phase ") + phase.Render(m.state.Phase) +
		hudStyle.Render("   runner ") + valueStyle.Render(m.state.Runner)

	return RenderScreen(m.screen) + "\n" + hud + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until the player quits or the
// game fails.
func Run(game Game, opts Options, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(game, opts, logger),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
