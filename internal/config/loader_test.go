package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	cfg, err := parseFlappy(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultFlappyConfig()) {
		t.Errorf("embedded YAML and DefaultFlappyConfig differ:\n%+v\n%+v", cfg, DefaultFlappyConfig())
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	data := []byte("bird:\n  gravity: 900\npipes:\n  velocity: -250\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadFlappyWithSource(path)
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Bird.Gravity != 900 {
		t.Errorf("Gravity = %g, expected 900", cfg.Bird.Gravity)
	}
	if cfg.Pipes.Velocity != -250 {
		t.Errorf("Velocity = %g, expected -250", cfg.Pipes.Velocity)
	}
	// Untouched values keep their defaults
	if cfg.Bird.FlapVelocity != 300 {
		t.Errorf("FlapVelocity = %g, expected default 300", cfg.Bird.FlapVelocity)
	}
	if len(cfg.Difficulty.Tiers) != 3 {
		t.Errorf("expected default tiers, got %d", len(cfg.Difficulty.Tiers))
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadFlappy(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFlappy(bad); err == nil {
		t.Error("malformed YAML should be an error")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("pipes:\n  pairs: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFlappy(invalid); err == nil {
		t.Error("invalid values should be an error")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultFlappyConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := parseFlappy(data)
	if err != nil {
		t.Fatalf("marshalled config does not parse: %v", err)
	}
	if cfg.Bird.DeathTint != DefaultFlappyConfig().Bird.DeathTint {
		t.Errorf("DeathTint = %d after round trip", cfg.Bird.DeathTint)
	}
}
