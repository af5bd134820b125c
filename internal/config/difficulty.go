package config

import (
	"errors"
	"fmt"
)

// DifficultyConfig defines the tier progression system.
type DifficultyConfig struct {
	Enabled bool         `yaml:"enabled"` // false keeps the initial tier for the whole run
	Initial string       `yaml:"initial"` // Name of the tier a run starts in
	Tiers   []TierConfig `yaml:"tiers"`   // Ordered from easiest to hardest
}

// TierConfig is one named obstacle-spacing configuration.
type TierConfig struct {
	Name       string `yaml:"name"`
	MinScore   int    `yaml:"min_score"`  // Score at which the tier is entered
	Horizontal Range  `yaml:"horizontal"` // Distance between consecutive pairs
	Vertical   Range  `yaml:"vertical"`   // Height of the gap
}

// Validate checks tier ordering and ranges against the world height.
func (d DifficultyConfig) Validate(worldHeight, edgeMargin int) error {
	if len(d.Tiers) == 0 {
		return errors.New("difficulty: no tiers defined")
	}
	if d.Initial != "" && d.TierIndex(d.Initial) < 0 {
		return fmt.Errorf("difficulty: initial tier %q is not defined", d.Initial)
	}

	for i, t := range d.Tiers {
		if t.Name == "" {
			return fmt.Errorf("difficulty: tier %d has no name", i)
		}
		if !t.Horizontal.Valid() || !t.Vertical.Valid() {
			return fmt.Errorf("difficulty: tier %q has an inverted range", t.Name)
		}
		if t.Horizontal.Min <= 0 || t.Vertical.Min <= 0 {
			return fmt.Errorf("difficulty: tier %q ranges must be positive", t.Name)
		}
		if t.Vertical.Max > worldHeight-2*edgeMargin {
			return fmt.Errorf("difficulty: tier %q gap %d does not fit a %d high world",
				t.Name, t.Vertical.Max, worldHeight)
		}
		if i > 0 && t.MinScore <= d.Tiers[i-1].MinScore {
			return fmt.Errorf("difficulty: tier %q min_score %d must be above %q (%d)",
				t.Name, t.MinScore, d.Tiers[i-1].Name, d.Tiers[i-1].MinScore)
		}
	}
	return nil
}

// TierIndex returns the index of the named tier, or -1.
func (d DifficultyConfig) TierIndex(name string) int {
	for i, t := range d.Tiers {
		if t.Name == name {
			return i
		}
	}
	return -1
}

// DifficultyPreset represents a named starting difficulty.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means "use the config file".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// easy/normal/hard choose the starting tier; fixed disables progression.
func ApplyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		if cfg.Difficulty.TierIndex(string(preset)) >= 0 {
			cfg.Difficulty.Initial = string(preset)
		}
	}
}

// DifficultyManager tracks the current tier of one run.
// The tier only moves forward while a run lasts.
type DifficultyManager struct {
	cfg     DifficultyConfig
	initial int
	current int
}

// NewDifficultyManager creates a new difficulty manager positioned on the
// initial tier.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	initial := cfg.TierIndex(cfg.Initial)
	if initial < 0 {
		initial = 0
	}
	return &DifficultyManager{
		cfg:     cfg,
		initial: initial,
		current: initial,
	}
}

// Reset moves back to the initial tier for a new run.
func (d *DifficultyManager) Reset() {
	d.current = d.initial
}

// IsEnabled returns whether tier progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Current returns the active tier.
func (d *DifficultyManager) Current() TierConfig {
	return d.cfg.Tiers[d.current]
}

// Index returns the position of the active tier.
func (d *DifficultyManager) Index() int {
	return d.current
}

// Advance selects the hardest tier whose threshold the score has reached.
// It never selects an easier tier than the current one.
// Returns true if the tier changed.
func (d *DifficultyManager) Advance(score int) bool {
	if !d.cfg.Enabled {
		return false
	}

	next := d.current
	for i := d.current + 1; i < len(d.cfg.Tiers); i++ {
		if score >= d.cfg.Tiers[i].MinScore {
			next = i
		}
	}
	if next == d.current {
		return false
	}
	d.current = next
	return true
}
