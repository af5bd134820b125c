package core

import "testing"

func TestKeyPress(t *testing.T) {
	ev := KeyPress(KeyDown)
	if ev.Kind != EventKeyDown || ev.Key != KeyDown {
		t.Errorf("KeyPress(KeyDown) = %+v, expected keydown DOWN", ev)
	}
	if ev := KeyPress(KeySpace); ev.Key != "SPACE" {
		t.Errorf("KeyPress(KeySpace).Key = %q, expected SPACE", ev.Key)
	}
}

func TestInputFramePushAndClear(t *testing.T) {
	f := NewInputFrame()
	f.PressKey(KeySpace)
	f.Push(Pointer(EventPointerDown, 3, 4))

	if f.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", f.Len())
	}
	if f.Events[0] != KeyPress(KeySpace) {
		t.Errorf("PressKey recorded %+v", f.Events[0])
	}
	if f.Events[1].Kind != EventPointerDown || f.Events[1].X != 3 || f.Events[1].Y != 4 {
		t.Errorf("pointer event not recorded: %+v", f.Events[1])
	}

	f.Clear()
	if f.Len() != 0 {
		t.Errorf("Clear should empty the frame, got %d events", f.Len())
	}
}

func TestEventKindString(t *testing.T) {
	if EventPointerDown.String() != "pointerdown" {
		t.Errorf("String() = %q", EventPointerDown.String())
	}
	if EventKind(99).String() != "unknown" {
		t.Errorf("unknown kind String() = %q", EventKind(99).String())
	}
}
