package registry

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/engine"
)

type stubScene struct {
	key  string
	opts Options
}

func (s *stubScene) Key() string                           { return s.key }
func (s *stubScene) Create(*engine.Systems)                {}
func (s *stubScene) Update(*engine.Systems, time.Duration) {}

func withCleanRegistry(t *testing.T) {
	t.Helper()
	mu.Lock()
	saved := entries
	entries = make(map[string]entry)
	mu.Unlock()

	t.Cleanup(func() {
		mu.Lock()
		entries = saved
		mu.Unlock()
	})
}

func register(key string, order int) {
	Register(SceneInfo{Key: key, Order: order, Title: key}, func(opts Options) engine.Scene {
		return &stubScene{key: key, opts: opts}
	})
}

func TestListAndBuildFollowOrder(t *testing.T) {
	withCleanRegistry(t)
	register("PlayScene", 30)
	register("PreloadScene", 0)
	register("MenuScene", 10)

	list := List()
	want := []string{"PreloadScene", "MenuScene", "PlayScene"}
	if len(list) != len(want) {
		t.Fatalf("List() returned %d scenes, want %d", len(list), len(want))
	}
	for i, key := range want {
		if list[i].Key != key {
			t.Errorf("List()[%d] = %q, want %q", i, list[i].Key, key)
		}
	}

	opts := Options{Config: config.DefaultFlappyConfig()}
	scenes := Build(opts)
	for i, key := range want {
		if scenes[i].Key() != key {
			t.Errorf("Build()[%d] = %q, want %q", i, scenes[i].Key(), key)
		}
	}
	if got := scenes[0].(*stubScene).opts.Config.World.Width; got != 400 {
		t.Errorf("factory options not passed through, world width = %g", got)
	}
}

func TestCreateAndExists(t *testing.T) {
	withCleanRegistry(t)
	register("MenuScene", 10)

	if !Exists("MenuScene") {
		t.Error("Exists(MenuScene) = false")
	}
	if Exists("Nope") {
		t.Error("Exists(Nope) = true")
	}

	s, err := Create("MenuScene", Options{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if s.Key() != "MenuScene" {
		t.Errorf("Create returned %q", s.Key())
	}

	if _, err := Create("Nope", Options{}); err == nil {
		t.Error("Create(Nope) should fail")
	}
}

func TestRegisterPanicsOnDuplicates(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		order int
	}{
		{"same key", "MenuScene", 20},
		{"same order", "OtherScene", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withCleanRegistry(t)
			register("MenuScene", 10)

			defer func() {
				if recover() == nil {
					t.Error("Register should panic")
				}
			}()
			register(tt.key, tt.order)
		})
	}
}
