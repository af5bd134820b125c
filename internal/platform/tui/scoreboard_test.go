package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func openScoreStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestScoreboardViews(t *testing.T) {
	store := openScoreStore(t)
	for _, s := range []int{2, 5, 1} {
		if _, err := store.SaveScore(flappy.ID, s, "easy"); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}
	if _, err := flappy.SaveBest(store, 5); err != nil {
		t.Fatalf("SaveBest: %v", err)
	}

	m := NewScoreboardModel(store, 80, 24)
	if m.Best() != 5 {
		t.Errorf("Best = %d, want 5", m.Best())
	}
	if m.CurrentView() != ViewTop {
		t.Errorf("initial view = %v, want %v", m.CurrentView(), ViewTop)
	}
	if got := m.Scores(); len(got) != 3 || got[0].Score != 5 {
		t.Errorf("top scores = %v", got)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.CurrentView() != ViewRecent {
		t.Fatalf("view after tab = %v, want %v", m.CurrentView(), ViewRecent)
	}
	if got := m.Scores(); len(got) != 3 || got[0].Score != 1 {
		t.Errorf("recent scores = %v, want newest first", got)
	}

	view := m.View()
	if !strings.Contains(view, "BEST SCORE 5") {
		t.Errorf("title missing best score:\n%s", view)
	}
}

func TestScoreboardWithoutSource(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if len(m.Scores()) != 0 || m.Best() != 0 {
		t.Errorf("empty scoreboard has scores %v best %d", m.Scores(), m.Best())
	}
	if !strings.Contains(m.View(), "No runs recorded yet.") {
		t.Error("empty scoreboard should say so")
	}

	next, cmd := m.Update(runeKey("q"))
	if cmd == nil || !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit the scoreboard")
	}
}
