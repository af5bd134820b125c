// Package registry provides a global registry for scene factories.
// Scenes register themselves in init() functions, allowing the host to
// assemble the game without hardcoded scene lists.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/engine"
)

// Options is what every scene factory receives.
type Options struct {
	Config config.FlappyConfig
}

// Factory is a function that creates a new instance of a scene.
type Factory func(opts Options) engine.Scene

// SceneInfo contains metadata about a registered scene.
type SceneInfo struct {
	Key   string
	Order int // Position in the scene list; the lowest starts first
	Title string
}

type entry struct {
	info    SceneInfo
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a scene factory to the registry.
// Typically called from a scene's init() function.
// Panics if a scene with the same key or order is already registered.
func Register(info SceneInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[info.Key]; exists {
		panic(fmt.Sprintf("registry: scene %q already registered", info.Key))
	}
	for _, e := range entries {
		if e.info.Order == info.Order {
			panic(fmt.Sprintf("registry: scene %q already uses order %d", e.info.Key, info.Order))
		}
	}

	entries[info.Key] = entry{info: info, factory: f}
}

// List returns information about all registered scenes, sorted by order.
func List() []SceneInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SceneInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Order < result[j].Order
	})

	return result
}

// Create instantiates a scene by its key.
// Returns an error if the key is not registered.
func Create(key string, opts Options) (engine.Scene, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[key]
	if !ok {
		return nil, fmt.Errorf("registry: unknown scene %q", key)
	}

	return e.factory(opts), nil
}

// Build instantiates every registered scene in order.
func Build(opts Options) []engine.Scene {
	infos := List()

	mu.RLock()
	defer mu.RUnlock()

	scenes := make([]engine.Scene, 0, len(infos))
	for _, info := range infos {
		scenes = append(scenes, entries[info.Key].factory(opts))
	}
	return scenes
}

// Exists checks if a scene with the given key is registered.
func Exists(key string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[key]
	return ok
}
