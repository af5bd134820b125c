// Package flappy implements a Flappy Bird-style game as a set of engine
// scenes. The bird must fly through a stream of pipe pairs; the gaps shrink
// and the pipes bunch up as the score grows.
package flappy

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/engine"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

const (
	ID    = "flappy"
	Title = "Flappy Bird"
)

// Scene keys in start order.
const (
	PreloadSceneKey = "PreloadScene"
	MenuSceneKey    = "MenuScene"
	ScoreSceneKey   = "ScoreScene"
	PlaySceneKey    = "PlayScene"
	PauseSceneKey   = "PauseScene"
)

// EventGameOver is emitted on the game event bus with a RunResult when a run ends.
const EventGameOver = "gameover"

// RunResult describes a finished run.
type RunResult struct {
	Score int
	Best  int
	Tier  string
}

// Options configures a game instance.
type Options struct {
	Config   config.FlappyConfig
	TickRate int
	Seed     int64
	Assets   engine.AssetSource
	Storage  engine.Storage
	Logger   *log.Logger
}

// New builds the game from the registered scenes and starts PreloadScene.
func New(opts Options) (*engine.Game, error) {
	scenes := registry.Build(registry.Options{Config: opts.Config})

	return engine.New(engine.Config{
		Width:    opts.Config.World.Width,
		Height:   opts.Config.World.Height,
		TickRate: opts.TickRate,
		Seed:     opts.Seed,
		Scenes:   scenes,
		Assets:   opts.Assets,
		Storage:  opts.Storage,
		Logger:   opts.Logger,
	})
}
