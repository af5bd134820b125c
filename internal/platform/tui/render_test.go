package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawTextColor(1, 0, "hi", core.ColorDefault)
	s.DrawTextColor(0, 2, "ok", core.ColorGreen)

	out := RenderScreen(s)
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("rendered %d line breaks, want 2", got)
	}
	if !strings.Contains(out, "hi") {
		t.Errorf("rendered screen misses text: %q", out)
	}
	if !strings.Contains(out, "ok") {
		t.Errorf("rendered screen misses colored text: %q", out)
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("unknown color rendered %q, want plain text", got)
	}
}

func TestRenderWithFooter(t *testing.T) {
	s := core.NewScreen(4, 2)
	if got := strings.Count(renderWithFooter(s, ""), "\n"); got != 1 {
		t.Errorf("no footer: %d line breaks, want 1", got)
	}
	out := renderWithFooter(s, "help")
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("with footer: %d line breaks, want 2", got)
	}
	if !strings.Contains(out, "help") {
		t.Errorf("footer missing: %q", out)
	}
}
