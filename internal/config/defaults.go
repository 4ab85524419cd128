package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: PhysicsConfig{
			Gravity:          1,
			TerminalVelocity: 20,
			JumpSpeed:        -25,
			RunningSpeed:     4,
			Floor:            475,
			StartingPoint:    -20,
		},
		Canvas: CanvasConfig{
			Width:  600,
			Height: 600,
		},
		World: WorldConfig{
			TimelineMinimum: 1000,
			ObstacleBuffer:  20,
			Segments:        []string{"stone_and_platform", "platform_and_stone"},
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.25,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
