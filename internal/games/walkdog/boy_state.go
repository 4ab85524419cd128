package walkdog

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/engine"
)

// Animation lengths in logic ticks. Each displayed frame lasts three ticks,
// so these are tied to the sprite sheet's frame counts.
const (
	IdleFrames    = 29
	RunningFrames = 23
	SlidingFrames = 14
	JumpingFrames = 35
	FallingFrames = 29
)

// Sprite-sheet labels for each animation.
const (
	IdleFrameName    = "Idle"
	RunningFrameName = "Run"
	SlidingFrameName = "Slide"
	JumpingFrameName = "Jump"
	FallingFrameName = "Dead"
)

// StateName identifies a runner state.
type StateName int

const (
	Idle StateName = iota
	Running
	Sliding
	Jumping
	Falling
	KnockedOut
)

// String returns the state's name.
func (s StateName) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	case Sliding:
		return "Sliding"
	case Jumping:
		return "Jumping"
	case Falling:
		return "Falling"
	case KnockedOut:
		return "KnockedOut"
	default:
		return "Unknown"
	}
}

// EventKind identifies a runner event.
type EventKind int

const (
	EventUpdate EventKind = iota
	EventRun
	EventSlide
	EventJump
	EventKnockOut
	EventLand
)

// Event is an input to the runner state machine.
type Event struct {
	Kind     EventKind
	Position float64 // Surface y for EventLand
}

// Events without payload.
var (
	Update   = Event{Kind: EventUpdate}
	Run      = Event{Kind: EventRun}
	Slide    = Event{Kind: EventSlide}
	Jump     = Event{Kind: EventJump}
	KnockOut = Event{Kind: EventKnockOut}
)

// Land returns the event for landing on a surface whose top is at y.
func Land(y float64) Event {
	return Event{Kind: EventLand, Position: y}
}

// Context is the runner's continuous state. It is a value: every
// transformation returns a new snapshot.
type Context struct {
	Frame    int
	Position core.Point
	Velocity core.Point // X is the run speed, Y is vertical speed (positive is down)
}

// physics holds the constants a Context is integrated with.
type physics struct {
	config.PhysicsConfig
	height float64 // Canvas height; landing "on" it puts the runner on the floor
}

func newPhysics(cfg config.RunnerConfig) physics {
	return physics{PhysicsConfig: cfg.Physics, height: cfg.Canvas.Height}
}

func (p physics) playerHeight() float64 {
	return p.height - p.Floor
}

// update advances one tick of gravity, animation and vertical motion.
func (c Context) update(frameCount int, p physics) Context {
	if c.Velocity.Y < p.TerminalVelocity {
		c.Velocity.Y += p.Gravity
	}

	if c.Frame < frameCount {
		c.Frame++
	} else {
		c.Frame = 0
	}

	c.Position.Y += c.Velocity.Y

	if c.Position.Y > p.Floor {
		c.Position.Y = p.Floor
	}

	return c
}

func (c Context) resetFrame() Context {
	c.Frame = 0
	return c
}

func (c Context) runRight(p physics) Context {
	c.Velocity.X += p.RunningSpeed
	return c
}

func (c Context) setVerticalVelocity(y float64) Context {
	c.Velocity.Y = y
	return c
}

func (c Context) stop() Context {
	c.Velocity.X = 0
	c.Velocity.Y = 0
	return c
}

// setOn stands the runner on a surface whose top is at y.
func (c Context) setOn(y float64, p physics) Context {
	c.Position.Y = y - p.playerHeight()
	return c
}

// boyState is the closed set of runner states.
type boyState interface {
	name() StateName
	context() Context
	frameName() string
}

type idleState struct{ ctx Context }
type runningState struct{ ctx Context }
type slidingState struct{ ctx Context }
type jumpingState struct{ ctx Context }
type fallingState struct{ ctx Context }
type knockedOutState struct{ ctx Context }

func (s idleState) name() StateName       { return Idle }
func (s runningState) name() StateName    { return Running }
func (s slidingState) name() StateName    { return Sliding }
func (s jumpingState) name() StateName    { return Jumping }
func (s fallingState) name() StateName    { return Falling }
func (s knockedOutState) name() StateName { return KnockedOut }

func (s idleState) context() Context       { return s.ctx }
func (s runningState) context() Context    { return s.ctx }
func (s slidingState) context() Context    { return s.ctx }
func (s jumpingState) context() Context    { return s.ctx }
func (s fallingState) context() Context    { return s.ctx }
func (s knockedOutState) context() Context { return s.ctx }

func (s idleState) frameName() string       { return IdleFrameName }
func (s runningState) frameName() string    { return RunningFrameName }
func (s slidingState) frameName() string    { return SlidingFrameName }
func (s jumpingState) frameName() string    { return JumpingFrameName }
func (s fallingState) frameName() string    { return FallingFrameName }
func (s knockedOutState) frameName() string { return FallingFrameName }

func newIdleState(p physics) idleState {
	return idleState{ctx: Context{
		Frame:    0,
		Position: core.Point{X: p.StartingPoint, Y: p.Floor},
	}}
}

func (s idleState) update(p physics) boyState {
	return idleState{ctx: s.ctx.update(IdleFrames, p)}
}

func (s idleState) run(p physics) boyState {
	return runningState{ctx: s.ctx.resetFrame().runRight(p)}
}

func (s runningState) update(p physics) boyState {
	return runningState{ctx: s.ctx.update(RunningFrames, p)}
}

func (s runningState) slide() boyState {
	return slidingState{ctx: s.ctx.resetFrame()}
}

func (s runningState) jump(p physics) boyState {
	return jumpingState{ctx: s.ctx.resetFrame().setVerticalVelocity(p.JumpSpeed)}
}

func (s runningState) landOn(y float64, p physics) boyState {
	return runningState{ctx: s.ctx.setOn(y, p)}
}

func (s runningState) knockOut() boyState {
	return fallingState{ctx: s.ctx.resetFrame().stop()}
}

func (s slidingState) update(p physics) boyState {
	ctx := s.ctx.update(SlidingFrames, p)
	if ctx.Frame >= SlidingFrames {
		return slidingState{ctx: ctx}.stand()
	}
	return slidingState{ctx: ctx}
}

func (s slidingState) stand() boyState {
	return runningState{ctx: s.ctx.resetFrame()}
}

func (s slidingState) landOn(y float64, p physics) boyState {
	return slidingState{ctx: s.ctx.setOn(y, p)}
}

func (s slidingState) knockOut() boyState {
	return fallingState{ctx: s.ctx.resetFrame().stop()}
}

// update lands the runner once it is back on the floor. Vertical velocity is
// left as is; gravity keeps acting on it from the next tick.
func (s jumpingState) update(p physics) boyState {
	ctx := s.ctx.update(JumpingFrames, p)
	if ctx.Position.Y >= p.Floor {
		return jumpingState{ctx: ctx}.landOn(p.height, p)
	}
	return jumpingState{ctx: ctx}
}

func (s jumpingState) landOn(y float64, p physics) boyState {
	return runningState{ctx: s.ctx.resetFrame().setOn(y, p)}
}

func (s jumpingState) knockOut() boyState {
	return fallingState{ctx: s.ctx.resetFrame().stop()}
}

func (s fallingState) update(p physics) boyState {
	ctx := s.ctx.update(FallingFrames, p)
	if ctx.Frame >= FallingFrames {
		return fallingState{ctx: ctx}.knockOut()
	}
	return fallingState{ctx: ctx}
}

func (s fallingState) knockOut() boyState {
	return knockedOutState{ctx: s.ctx}
}

// Machine is the runner's state machine.
type Machine struct {
	state     boyState
	physics   physics
	audio     engine.Audio
	jumpSound engine.Sound
	logger    *log.Logger
}

// NewMachine creates a machine in the Idle state at the starting point.
func NewMachine(cfg config.RunnerConfig, audio engine.Audio, jumpSound engine.Sound, logger *log.Logger) *Machine {
	p := newPhysics(cfg)
	return &Machine{
		state:     newIdleState(p),
		physics:   p,
		audio:     audio,
		jumpSound: jumpSound,
		logger:    orDiscard(logger),
	}
}

// Transition applies event to the current state. Pairs without an entry in the
// table leave the state unchanged.
func (m *Machine) Transition(event Event) {
	m.state = m.next(event)
}

func (m *Machine) next(event Event) boyState {
	p := m.physics

	switch s := m.state.(type) {
	case idleState:
		switch event.Kind {
		case EventRun:
			return s.run(p)
		case EventUpdate:
			return s.update(p)
		}

	case runningState:
		switch event.Kind {
		case EventSlide:
			return s.slide()
		case EventJump:
			jumping := s.jump(p)
			playSound(m.audio, m.logger, m.jumpSound, false)
			return jumping
		case EventLand:
			return s.landOn(event.Position, p)
		case EventKnockOut:
			return s.knockOut()
		case EventUpdate:
			return s.update(p)
		}

	case slidingState:
		switch event.Kind {
		case EventLand:
			return s.landOn(event.Position, p)
		case EventKnockOut:
			return s.knockOut()
		case EventUpdate:
			return s.update(p)
		}

	case jumpingState:
		switch event.Kind {
		case EventLand:
			return s.landOn(event.Position, p)
		case EventKnockOut:
			return s.knockOut()
		case EventUpdate:
			return s.update(p)
		}

	case fallingState:
		if event.Kind == EventUpdate {
			return s.update(p)
		}

	case knockedOutState:
		// Terminal.
	}

	return m.state
}

// Update advances the runner by one tick.
func (m *Machine) Update() {
	m.Transition(Update)
}

// State returns the current state's name.
func (m *Machine) State() StateName {
	return m.state.name()
}

// FrameName returns the sprite-sheet label of the current animation.
func (m *Machine) FrameName() string {
	return m.state.frameName()
}

// Context returns a snapshot of the runner's continuous state.
func (m *Machine) Context() Context {
	return m.state.context()
}

// KnockedOut reports whether the runner has reached the terminal state.
func (m *Machine) KnockedOut() bool {
	return m.state.name() == KnockedOut
}
