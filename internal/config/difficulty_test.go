package config

import "testing"

func TestTierAdvancesAtThresholds(t *testing.T) {
	d := NewDifficultyManager(DefaultFlappyConfig().Difficulty)

	if d.Current().Name != "easy" {
		t.Fatalf("initial tier = %q, expected easy", d.Current().Name)
	}

	expected := []string{"easy", "normal", "normal", "hard", "hard", "hard"}
	for score, want := range expected {
		d.Advance(score)
		if got := d.Current().Name; got != want {
			t.Errorf("score %d: tier = %q, expected %q", score, got, want)
		}
	}
}

func TestTierNeverRegresses(t *testing.T) {
	d := NewDifficultyManager(DefaultFlappyConfig().Difficulty)

	d.Advance(3)
	if d.Current().Name != "hard" {
		t.Fatalf("tier = %q, expected hard", d.Current().Name)
	}

	for _, score := range []int{0, 1, 2} {
		if d.Advance(score) {
			t.Errorf("Advance(%d) reported a change after reaching hard", score)
		}
		if d.Current().Name != "hard" {
			t.Errorf("Advance(%d) regressed to %q", score, d.Current().Name)
		}
	}
}

func TestTierSkipsToHardestReached(t *testing.T) {
	d := NewDifficultyManager(DefaultFlappyConfig().Difficulty)

	if !d.Advance(10) {
		t.Error("Advance(10) should report a change")
	}
	if d.Current().Name != "hard" {
		t.Errorf("tier = %q, expected hard", d.Current().Name)
	}
}

func TestTierReset(t *testing.T) {
	d := NewDifficultyManager(DefaultFlappyConfig().Difficulty)
	d.Advance(5)
	d.Reset()

	if d.Index() != 0 {
		t.Errorf("Reset should return to the initial tier, got index %d", d.Index())
	}
}

func TestFixedPresetDisablesProgression(t *testing.T) {
	cfg := DefaultFlappyConfig()
	ApplyPreset(&cfg, DifficultyFixed)

	d := NewDifficultyManager(cfg.Difficulty)
	if d.IsEnabled() {
		t.Error("fixed preset should disable progression")
	}
	d.Advance(100)
	if d.Current().Name != "easy" {
		t.Errorf("fixed preset tier = %q, expected easy", d.Current().Name)
	}
}

func TestPresetChoosesStartingTier(t *testing.T) {
	cfg := DefaultFlappyConfig()
	ApplyPreset(&cfg, DifficultyHard)

	d := NewDifficultyManager(cfg.Difficulty)
	if d.Current().Name != "hard" {
		t.Errorf("hard preset tier = %q, expected hard", d.Current().Name)
	}

	// Reaching the normal threshold must not step back down.
	d.Advance(1)
	if d.Current().Name != "hard" {
		t.Errorf("hard preset regressed to %q", d.Current().Name)
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) unexpected error: %v", name, err)
		}
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset(insane) should fail")
	}
}

func TestDifficultyValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DifficultyConfig)
	}{
		{"no tiers", func(d *DifficultyConfig) { d.Tiers = nil }},
		{"unknown initial", func(d *DifficultyConfig) { d.Initial = "nightmare" }},
		{"inverted range", func(d *DifficultyConfig) { d.Tiers[0].Horizontal = Range{Min: 400, Max: 300} }},
		{"gap too tall", func(d *DifficultyConfig) { d.Tiers[1].Vertical = Range{Min: 100, Max: 590} }},
		{"unordered thresholds", func(d *DifficultyConfig) { d.Tiers[2].MinScore = 1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := DefaultFlappyConfig().Difficulty
			tc.mutate(&d)
			if err := d.Validate(600, 20); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}

	if err := DefaultFlappyConfig().Difficulty.Validate(600, 20); err != nil {
		t.Errorf("default difficulty should validate: %v", err)
	}
}
