// Package config provides YAML-based game configuration loading and
// difficulty tier management.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// FlappyConfig contains all configuration for the game.
// Distances are world units (pixels of the 400x600 playfield), velocities
// are world units per second.
type FlappyConfig struct {
	World      WorldConfig      `yaml:"world"`
	Bird       BirdConfig       `yaml:"bird"`
	Pipes      PipeConfig       `yaml:"pipes"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Timing     TimingConfig     `yaml:"timing"`
	Menu       MenuConfig       `yaml:"menu"`
}

// WorldConfig defines the playfield size.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BirdConfig defines the player sprite.
type BirdConfig struct {
	StartX       float64         `yaml:"start_x"` // Fraction of world width
	StartY       float64         `yaml:"start_y"` // Fraction of world height
	Gravity      float64         `yaml:"gravity"`
	FlapVelocity float64         `yaml:"flap_velocity"`
	Scale        float64         `yaml:"scale"`
	BodyInset    float64         `yaml:"body_inset"` // Frame pixels trimmed from body height
	DeathTint    core.Color      `yaml:"death_tint"`
	Animation    AnimationConfig `yaml:"animation"`
}

// AnimationConfig defines the looping flight animation.
type AnimationConfig struct {
	Key        string `yaml:"key"`
	StartFrame int    `yaml:"start_frame"`
	EndFrame   int    `yaml:"end_frame"`
	FrameRate  int    `yaml:"frame_rate"`
	Repeat     int    `yaml:"repeat"` // -1 loops forever
}

// PipeConfig defines the obstacle pool.
type PipeConfig struct {
	Pairs      int     `yaml:"pairs"`
	Velocity   float64 `yaml:"velocity"`
	EdgeMargin int     `yaml:"edge_margin"` // Minimum distance of the gap from top/bottom
}

// TimingConfig defines scene timers.
type TimingConfig struct {
	RestartDelayMs  int `yaml:"restart_delay_ms"`
	ResumeCountdown int `yaml:"resume_countdown"` // Seconds before play continues after pause
	CountdownStepMs int `yaml:"countdown_step_ms"`
}

// MenuConfig defines menu layout.
type MenuConfig struct {
	LineHeight float64 `yaml:"line_height"`
}

// Range is an inclusive integer interval.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Valid reports whether Min <= Max.
func (r Range) Valid() bool {
	return r.Min <= r.Max
}

// String formats the range as [min, max].
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.Min, r.Max)
}

// Validate checks the configuration for values the game cannot run with.
func (c FlappyConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %gx%g", c.World.Width, c.World.Height))
	}
	if c.Bird.Scale <= 0 {
		errs = append(errs, fmt.Errorf("bird scale must be positive, got %g", c.Bird.Scale))
	}
	if c.Bird.Animation.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("animation frame_rate must be positive, got %d", c.Bird.Animation.FrameRate))
	}
	if c.Bird.Animation.StartFrame > c.Bird.Animation.EndFrame {
		errs = append(errs, fmt.Errorf("animation start_frame %d is after end_frame %d",
			c.Bird.Animation.StartFrame, c.Bird.Animation.EndFrame))
	}
	if c.Pipes.Pairs <= 0 {
		errs = append(errs, fmt.Errorf("pipes.pairs must be positive, got %d", c.Pipes.Pairs))
	}
	if c.Timing.CountdownStepMs <= 0 {
		errs = append(errs, fmt.Errorf("timing.countdown_step_ms must be positive, got %d", c.Timing.CountdownStepMs))
	}
	if err := c.Difficulty.Validate(int(c.World.Height), c.Pipes.EdgeMargin); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid flappy config: %w", errors.Join(errs...))
	}
	return nil
}
