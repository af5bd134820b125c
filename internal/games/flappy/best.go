package flappy

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-flappy/internal/engine"
)

// BestScoreKey is the storage key of the persisted best score.
const BestScoreKey = "bestScore"

// LoadBest returns the stored best score. Missing or malformed values read as 0.
func LoadBest(store engine.Storage) (int, error) {
	v, ok, err := store.GetItem(BestScoreKey)
	if err != nil {
		return 0, fmt.Errorf("flappy: load best score: %w", err)
	}
	if !ok {
		return 0, nil
	}
	best, err := strconv.Atoi(v)
	if err != nil || best < 0 {
		return 0, nil
	}
	return best, nil
}

// SaveBest stores score when nothing usable is stored yet or score beats the
// stored value. Returns the best score after the update.
func SaveBest(store engine.Storage, score int) (int, error) {
	best, err := LoadBest(store)
	if err != nil {
		return 0, err
	}
	if best != 0 && score <= best {
		return best, nil
	}
	if err := store.SetItem(BestScoreKey, strconv.Itoa(score)); err != nil {
		return best, fmt.Errorf("flappy: save best score: %w", err)
	}
	return score, nil
}
