package core

// Key codes understood by the game. Names follow the browser KeyboardEvent.code
// values the game logic was authored against.
const (
	KeyArrowRight = "ArrowRight"
	KeyArrowDown  = "ArrowDown"
	KeySpace      = "Space"
)

// DefaultHoldTicks is how long a key counts as held after its last press.
// Terminals report presses and auto-repeats, never releases.
const DefaultHoldTicks = 8

// KeyState tracks which keys are currently held.
//
// A press marks the key held for holdTicks logic ticks; terminal auto-repeat
// keeps refreshing it while the physical key is down. Release clears it early.
type KeyState struct {
	held      map[string]int
	holdTicks int
}

// NewKeyState creates a key state with the given hold window in ticks.
// Non-positive values fall back to DefaultHoldTicks.
func NewKeyState(holdTicks int) *KeyState {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &KeyState{
		held:      make(map[string]int),
		holdTicks: holdTicks,
	}
}

// Press marks a key as held and restarts its hold window.
func (k *KeyState) Press(code string) {
	if k.held == nil {
		k.held = make(map[string]int)
	}
	if k.holdTicks <= 0 {
		k.holdTicks = DefaultHoldTicks
	}
	k.held[code] = k.holdTicks
}

// Release marks a key as no longer held.
func (k *KeyState) Release(code string) {
	delete(k.held, code)
}

// IsPressed reports whether the key is currently held.
func (k *KeyState) IsPressed(code string) bool {
	return k.held[code] > 0
}

// Tick ages every held key by one logic tick and drops expired ones.
// Call once after each game update.
func (k *KeyState) Tick() {
	for code, left := range k.held {
		if left <= 1 {
			delete(k.held, code)
			continue
		}
		k.held[code] = left - 1
	}
}

// Clear releases every key.
func (k *KeyState) Clear() {
	for code := range k.held {
		delete(k.held, code)
	}
}
