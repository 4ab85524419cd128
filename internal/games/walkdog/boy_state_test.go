package walkdog

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/engine"
)

var allEvents = []Event{Update, Run, Slide, Jump, KnockOut, Land(400)}

func newTestMachine(audio engine.Audio) *Machine {
	return NewMachine(config.DefaultRunnerConfig(), audio, engine.Sound{Name: "jump"}, nil)
}

// machineIn drives a fresh machine into the named state.
func machineIn(t *testing.T, name StateName) *Machine {
	t.Helper()
	m := newTestMachine(nil)

	switch name {
	case Idle:
	case Running:
		m.Transition(Run)
	case Sliding:
		m.Transition(Run)
		m.Transition(Slide)
	case Jumping:
		m.Transition(Run)
		m.Transition(Jump)
	case Falling:
		m.Transition(Run)
		m.Transition(KnockOut)
	case KnockedOut:
		m.Transition(Run)
		m.Transition(KnockOut)
		for range FallingFrames {
			m.Update()
		}
	}

	if m.State() != name {
		t.Fatalf("machineIn(%s) reached %s", name, m.State())
	}
	return m
}

func TestUnlistedTransitionsAreNoOps(t *testing.T) {
	handled := map[StateName][]EventKind{
		Idle:       {EventRun, EventUpdate},
		Running:    {EventSlide, EventJump, EventLand, EventKnockOut, EventUpdate},
		Sliding:    {EventLand, EventKnockOut, EventUpdate},
		Jumping:    {EventLand, EventKnockOut, EventUpdate},
		Falling:    {EventUpdate},
		KnockedOut: nil,
	}

	for state, kinds := range handled {
		for _, event := range allEvents {
			listed := false
			for _, k := range kinds {
				if k == event.Kind {
					listed = true
				}
			}
			if listed {
				continue
			}

			t.Run(state.String(), func(t *testing.T) {
				m := machineIn(t, state)
				before := m.state
				m.Transition(event)
				if m.state != before {
					t.Errorf("event %d changed %s: %+v -> %+v", event.Kind, state, before, m.state)
				}
			})
		}
	}
}

func TestKnockedOutIsAbsorbing(t *testing.T) {
	m := machineIn(t, KnockedOut)
	before := m.state

	for i := 0; i < 100; i++ {
		m.Transition(allEvents[i%len(allEvents)])
		if m.state != before {
			t.Fatalf("KnockedOut left after %d events: %+v", i+1, m.state)
		}
	}
	if !m.KnockedOut() {
		t.Error("KnockedOut() = false, expected true")
	}
}

func TestTransitionTable(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	floor := cfg.Physics.Floor

	tests := []struct {
		name      string
		from      StateName
		event     Event
		to        StateName
		frame     int
		velocityX float64
		velocityY float64
		posY      float64
	}{
		{"idle runs", Idle, Run, Running, 0, cfg.Physics.RunningSpeed, 0, floor},
		{"running slides", Running, Slide, Sliding, 0, cfg.Physics.RunningSpeed, 0, floor},
		{"running jumps", Running, Jump, Jumping, 0, cfg.Physics.RunningSpeed, cfg.Physics.JumpSpeed, floor},
		{"running lands", Running, Land(420), Running, 0, cfg.Physics.RunningSpeed, 0, 420 - cfg.PlayerHeight()},
		{"sliding lands", Sliding, Land(420), Sliding, 0, cfg.Physics.RunningSpeed, 0, 420 - cfg.PlayerHeight()},
		{"jumping lands", Jumping, Land(420), Running, 0, cfg.Physics.RunningSpeed, cfg.Physics.JumpSpeed, 420 - cfg.PlayerHeight()},
		{"running knocked out", Running, KnockOut, Falling, 0, 0, 0, floor},
		{"sliding knocked out", Sliding, KnockOut, Falling, 0, 0, 0, floor},
		{"jumping knocked out", Jumping, KnockOut, Falling, 0, 0, 0, floor},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := machineIn(t, tc.from)
			m.Transition(tc.event)

			if m.State() != tc.to {
				t.Fatalf("State() = %s, expected %s", m.State(), tc.to)
			}
			ctx := m.Context()
			if ctx.Frame != tc.frame {
				t.Errorf("Frame = %d, expected %d", ctx.Frame, tc.frame)
			}
			if ctx.Velocity.X != tc.velocityX || ctx.Velocity.Y != tc.velocityY {
				t.Errorf("Velocity = %+v, expected (%v, %v)", ctx.Velocity, tc.velocityX, tc.velocityY)
			}
			if ctx.Position.Y != tc.posY {
				t.Errorf("Position.Y = %v, expected %v", ctx.Position.Y, tc.posY)
			}
		})
	}
}

func TestInitialContext(t *testing.T) {
	ctx := newTestMachine(nil).Context()

	if ctx.Position.X != -20 || ctx.Position.Y != 475 {
		t.Errorf("Position = %+v, expected (-20, 475)", ctx.Position)
	}
	if ctx.Velocity.X != 0 || ctx.Velocity.Y != 0 {
		t.Errorf("Velocity = %+v, expected (0, 0)", ctx.Velocity)
	}
	if ctx.Frame != 0 {
		t.Errorf("Frame = %d, expected 0", ctx.Frame)
	}
}

func TestGravityIsMonotonicUntilTerminalVelocity(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	m := machineIn(t, Jumping)

	prev := m.Context().Velocity.Y
	reachedTerminal := false
	for m.State() == Jumping {
		m.Update()
		v := m.Context().Velocity.Y

		switch {
		case prev < cfg.Physics.TerminalVelocity:
			if v <= prev {
				t.Fatalf("velocity went from %v to %v below terminal velocity", prev, v)
			}
		default:
			reachedTerminal = true
			if v != prev {
				t.Fatalf("velocity changed from %v to %v at terminal velocity", prev, v)
			}
		}
		prev = v
	}

	if !reachedTerminal {
		t.Error("jump never reached terminal velocity")
	}
}

func TestFloorClamp(t *testing.T) {
	floor := config.DefaultRunnerConfig().Physics.Floor
	rng := rand.New(rand.NewSource(7))

	for run := 0; run < 20; run++ {
		m := newTestMachine(nil)
		for i := 0; i < 500; i++ {
			m.Transition(allEvents[rng.Intn(len(allEvents))])
			if y := m.Context().Position.Y; y > floor {
				t.Fatalf("run %d step %d: Position.Y = %v exceeds floor %v", run, i, y, floor)
			}
		}
	}
}

func TestSlideEndsExactlyAtCeiling(t *testing.T) {
	m := machineIn(t, Sliding)

	for i := 1; i < SlidingFrames; i++ {
		m.Update()
		if m.State() != Sliding {
			t.Fatalf("left Sliding after %d updates, expected %d", i, SlidingFrames)
		}
	}

	m.Update()
	if m.State() != Running {
		t.Fatalf("State() = %s after %d updates, expected Running", m.State(), SlidingFrames)
	}
	if m.Context().Frame != 0 {
		t.Errorf("Frame = %d after standing up, expected 0", m.Context().Frame)
	}
}

func TestJumpLandsOnTheFloor(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	m := machineIn(t, Jumping)

	var touchdown float64
	for ticks := 0; m.State() == Jumping; ticks++ {
		if ticks > 1000 {
			t.Fatal("jump never landed")
		}
		m.Update()
		if m.State() == Jumping && m.Context().Position.Y >= cfg.Physics.Floor {
			t.Fatalf("still Jumping on the floor at tick %d", ticks)
		}
		touchdown = m.Context().Velocity.Y
	}

	if m.State() != Running {
		t.Fatalf("State() = %s, expected Running", m.State())
	}
	ctx := m.Context()
	if ctx.Position.Y != cfg.Physics.Floor {
		t.Errorf("Position.Y = %v after landing, expected %v", ctx.Position.Y, cfg.Physics.Floor)
	}
	// Landing only moves the runner; vertical speed carries over.
	if touchdown != cfg.Physics.TerminalVelocity {
		t.Errorf("Velocity.Y = %v after landing, expected %v", touchdown, cfg.Physics.TerminalVelocity)
	}
	if ctx.Velocity.X != cfg.Physics.RunningSpeed {
		t.Errorf("Velocity.X = %v after landing, expected %v", ctx.Velocity.X, cfg.Physics.RunningSpeed)
	}
}

func TestFallingBecomesKnockedOut(t *testing.T) {
	m := machineIn(t, Falling)

	for i := 1; i < FallingFrames; i++ {
		m.Update()
		if m.State() != Falling {
			t.Fatalf("left Falling after %d updates, expected %d", i, FallingFrames)
		}
	}
	m.Update()
	if !m.KnockedOut() {
		t.Errorf("State() = %s after %d updates, expected KnockedOut", m.State(), FallingFrames)
	}
}

func TestIdleAndRunningLoop(t *testing.T) {
	tests := []struct {
		state   StateName
		ceiling int
	}{
		{Idle, IdleFrames},
		{Running, RunningFrames},
	}

	for _, tc := range tests {
		t.Run(tc.state.String(), func(t *testing.T) {
			m := machineIn(t, tc.state)
			for i := 1; i <= tc.ceiling; i++ {
				m.Update()
				if m.Context().Frame != i {
					t.Fatalf("Frame = %d after %d updates", m.Context().Frame, i)
				}
			}
			m.Update()
			if m.Context().Frame != 0 {
				t.Errorf("Frame = %d past the ceiling, expected 0", m.Context().Frame)
			}
			if m.State() != tc.state {
				t.Errorf("State() = %s, expected %s", m.State(), tc.state)
			}
		})
	}
}

func TestJumpPlaysSound(t *testing.T) {
	audio := &recordingAudio{}
	m := newTestMachine(audio)
	m.Transition(Run)
	m.Transition(Jump)
	m.Transition(Jump) // mid-air, ignored

	if len(audio.played) != 1 || audio.played[0] != "jump loop=false" {
		t.Errorf("played = %v, expected one jump", audio.played)
	}
}

func TestAudioFailureDoesNotAffectJump(t *testing.T) {
	m := newTestMachine(&recordingAudio{err: errAudio})
	m.Transition(Run)
	m.Transition(Jump)

	if m.State() != Jumping {
		t.Errorf("State() = %s, expected Jumping despite audio failure", m.State())
	}
}

func TestStateNameString(t *testing.T) {
	tests := []struct {
		name     StateName
		expected string
	}{
		{Idle, "Idle"},
		{Running, "Running"},
		{Sliding, "Sliding"},
		{Jumping, "Jumping"},
		{Falling, "Falling"},
		{KnockedOut, "KnockedOut"},
		{StateName(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.name.String(); got != tc.expected {
			t.Errorf("StateName(%d).String() = %q, expected %q", int(tc.name), got, tc.expected)
		}
	}
}
