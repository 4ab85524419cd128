package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Logic ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is a read-only summary of the game for the platform layer.
type GameState struct {
	Phase    string  // "Ready", "Walking" or "GameOver"
	Runner   string  // Current runner state name
	Distance float64 // Logical units scrolled in this session
	GameOver bool    // Whether the runner has been knocked out
	Paused   bool    // Whether the platform has paused ticking
}
