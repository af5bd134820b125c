package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/engine"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// ScoreScene shows the best score with a back button.
type ScoreScene struct {
	baseScene
	text *engine.Text
}

func NewScoreScene(cfg config.FlappyConfig) *ScoreScene {
	return &ScoreScene{baseScene: baseScene{key: ScoreSceneKey, cfg: cfg, canGoBack: true}}
}

func (s *ScoreScene) Create(sys *engine.Systems) {
	s.createBase(sys)

	best, err := LoadBest(sys.Storage)
	if err != nil {
		sys.Log.Warn("best score unavailable", "err", err)
	}
	cx, cy := s.center(sys)
	s.text = sys.Add.Text(cx, cy, fmt.Sprintf("Best Score: %d", best), menuColor).SetOrigin(0.5, 0.5)
}

func init() {
	registry.Register(registry.SceneInfo{Key: ScoreSceneKey, Order: 20, Title: "Best score"},
		func(o registry.Options) engine.Scene { return NewScoreScene(o.Config) })
}
