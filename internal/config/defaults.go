package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// It mirrors defaults/flappy.yaml and backs up a broken embed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: WorldConfig{
			Width:  400,
			Height: 600,
		},
		Bird: BirdConfig{
			StartX:       0.1,
			StartY:       0.5,
			Gravity:      600,
			FlapVelocity: 300,
			Scale:        3,
			BodyInset:    8,
			DeathTint:    core.ColorBrightRed,
			Animation: AnimationConfig{
				Key:        "fly",
				StartFrame: 9,
				EndFrame:   15,
				FrameRate:  8,
				Repeat:     -1,
			},
		},
		Pipes: PipeConfig{
			Pairs:      4,
			Velocity:   -200,
			EdgeMargin: 20,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Initial: "easy",
			Tiers: []TierConfig{
				{Name: "easy", MinScore: 0, Horizontal: Range{300, 350}, Vertical: Range{150, 200}},
				{Name: "normal", MinScore: 1, Horizontal: Range{280, 330}, Vertical: Range{140, 190}},
				{Name: "hard", MinScore: 3, Horizontal: Range{250, 310}, Vertical: Range{120, 170}},
			},
		},
		Timing: TimingConfig{
			RestartDelayMs:  1000,
			ResumeCountdown: 3,
			CountdownStepMs: 1000,
		},
		Menu: MenuConfig{
			LineHeight: 42,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
