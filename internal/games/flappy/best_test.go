package flappy

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/engine"
)

func TestLoadBestMissingOrMalformed(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		set    bool
		want   int
	}{
		{"missing", "", false, 0},
		{"number", "12", true, 12},
		{"garbage", "abc", true, 0},
		{"negative", "-4", true, 0},
		{"empty", "", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := engine.NewMemoryStorage()
			if tt.set {
				store.SetItem(BestScoreKey, tt.stored)
			}
			got, err := LoadBest(store)
			if err != nil {
				t.Fatalf("LoadBest: %v", err)
			}
			if got != tt.want {
				t.Errorf("LoadBest() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBestScoreNeverDecreases(t *testing.T) {
	store := engine.NewMemoryStorage()
	runs := []int{3, 1, 5, 0, 5, 4, 9}
	want := []int{3, 3, 5, 5, 5, 5, 9}

	prev := 0
	for i, score := range runs {
		best, err := SaveBest(store, score)
		if err != nil {
			t.Fatalf("SaveBest(%d): %v", score, err)
		}
		if best != want[i] {
			t.Errorf("run %d: best = %d, want %d", i, best, want[i])
		}
		if best < prev {
			t.Errorf("run %d: best decreased from %d to %d", i, prev, best)
		}
		prev = best
	}

	if v, _, _ := store.GetItem(BestScoreKey); v != "9" {
		t.Errorf("stored best = %q, want 9", v)
	}
}

func TestSaveBestReplacesUnusableValue(t *testing.T) {
	store := engine.NewMemoryStorage()
	store.SetItem(BestScoreKey, "NaN")

	best, err := SaveBest(store, 0)
	if err != nil {
		t.Fatalf("SaveBest: %v", err)
	}
	if best != 0 {
		t.Errorf("best = %d, want 0", best)
	}
	if v, _, _ := store.GetItem(BestScoreKey); v != "0" {
		t.Errorf("stored = %q, want 0", v)
	}
}

type failingStorage struct{}

var errDisk = errors.New("disk full")

func (failingStorage) GetItem(string) (string, bool, error) { return "", false, errDisk }
func (failingStorage) SetItem(string, string) error         { return errDisk }

func TestBestScoreStorageErrors(t *testing.T) {
	if _, err := LoadBest(failingStorage{}); !errors.Is(err, errDisk) {
		t.Errorf("LoadBest error = %v, want %v", err, errDisk)
	}
	if _, err := SaveBest(failingStorage{}, 3); !errors.Is(err, errDisk) {
		t.Errorf("SaveBest error = %v, want %v", err, errDisk)
	}
}
