// Package config provides YAML-based configuration loading for the runner.
package config

import (
	"errors"
	"fmt"
)

// RunnerConfig contains all configuration for the Walk the Dog runner.
type RunnerConfig struct {
	Physics PhysicsConfig `yaml:"physics"`
	Canvas  CanvasConfig  `yaml:"canvas"`
	World   WorldConfig   `yaml:"world"`
	Audio   AudioConfig   `yaml:"audio"`
	Debug   DebugConfig   `yaml:"debug"`
}

// PhysicsConfig defines the runner's vertical kinematics, in logical units per tick.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	JumpSpeed        float64 `yaml:"jump_speed"` // Negative is upward
	RunningSpeed     float64 `yaml:"running_speed"`
	Floor            float64 `yaml:"floor"`          // Ground y of the sprite anchor
	StartingPoint    float64 `yaml:"starting_point"` // Anchor x
}

// CanvasConfig defines the logical canvas size.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// WorldConfig defines obstacle generation.
type WorldConfig struct {
	TimelineMinimum float64  `yaml:"timeline_minimum"` // Lookahead that triggers a new segment
	ObstacleBuffer  float64  `yaml:"obstacle_buffer"`  // Gap before a new segment
	Segments        []string `yaml:"segments"`         // Pattern names picked uniformly
}

// AudioConfig controls sound playback.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // Linear gain, 0..1
	Music   bool    `yaml:"music"`
}

// DebugConfig enables diagnostic overlays.
type DebugConfig struct {
	FrameRate     bool `yaml:"frame_rate"`
	BoundingBoxes bool `yaml:"bounding_boxes"`
}

// PlayerHeight is the distance from the anchor to the bottom of the canvas
// when the runner stands on the floor.
func (c RunnerConfig) PlayerHeight() float64 {
	return c.Canvas.Height - c.Physics.Floor
}

// Validate reports configuration values the game cannot run with.
func (c RunnerConfig) Validate() error {
	var errs []error

	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas size must be positive, got %vx%v", c.Canvas.Width, c.Canvas.Height))
	}
	if c.Physics.Floor <= 0 || c.Physics.Floor >= c.Canvas.Height {
		errs = append(errs, fmt.Errorf("physics.floor %v must lie inside the canvas", c.Physics.Floor))
	}
	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must be positive, got %v", c.Physics.Gravity))
	}
	if c.Physics.TerminalVelocity <= 0 {
		errs = append(errs, fmt.Errorf("physics.terminal_velocity must be positive, got %v", c.Physics.TerminalVelocity))
	}
	if c.Physics.JumpSpeed >= 0 {
		errs = append(errs, fmt.Errorf("physics.jump_speed must be negative (upward), got %v", c.Physics.JumpSpeed))
	}
	if c.Physics.RunningSpeed <= 0 {
		errs = append(errs, fmt.Errorf("physics.running_speed must be positive, got %v", c.Physics.RunningSpeed))
	}
	if c.World.TimelineMinimum <= 0 {
		errs = append(errs, fmt.Errorf("world.timeline_minimum must be positive, got %v", c.World.TimelineMinimum))
	}
	if len(c.World.Segments) == 0 {
		errs = append(errs, errors.New("world.segments must name at least one pattern"))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be within [0, 1], got %v", c.Audio.Volume))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
