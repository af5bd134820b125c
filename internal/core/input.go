package core

// Key is a platform-independent key code delivered to the engine.
// Names follow the engine's "keydown_<KEY>" event convention.
type Key string

const (
	KeyNone  Key = ""
	KeySpace Key = "SPACE" // Space - flap
	KeyUp    Key = "UP"    // Up arrow, W, K - flap / menu up
	KeyDown  Key = "DOWN"  // Down arrow, S, J - menu down
	KeyEnter Key = "ENTER" // Enter - confirm menu entry
	KeyEsc   Key = "ESC"   // Escape - pause / back
	KeyP     Key = "P"     // P - pause
	KeyB     Key = "B"     // B - back
)

// EventKind distinguishes the input events a frame can carry.
type EventKind int

const (
	EventKeyDown EventKind = iota
	EventPointerDown
	EventPointerUp
	EventPointerMove
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventKeyDown:
		return "keydown"
	case EventPointerDown:
		return "pointerdown"
	case EventPointerUp:
		return "pointerup"
	case EventPointerMove:
		return "pointermove"
	default:
		return "unknown"
	}
}

// InputEvent is one key press or pointer action.
// Pointer coordinates are screen cells; the engine maps them to world space.
type InputEvent struct {
	Kind EventKind
	Key  Key // Set for EventKeyDown
	X, Y int // Set for pointer events
}

// KeyPress builds a key-down event for k.
func KeyPress(k Key) InputEvent {
	return InputEvent{Kind: EventKeyDown, Key: k}
}

// Pointer builds a pointer event at a screen cell.
func Pointer(kind EventKind, x, y int) InputEvent {
	return InputEvent{Kind: kind, X: x, Y: y}
}

// InputFrame collects the input events received during one simulation tick,
// in arrival order.
type InputFrame struct {
	Events []InputEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Events: make([]InputEvent, 0, 4)}
}

// Push appends an event to the frame.
func (f *InputFrame) Push(e InputEvent) {
	f.Events = append(f.Events, e)
}

// PressKey appends a key-down event.
func (f *InputFrame) PressKey(k Key) {
	f.Push(KeyPress(k))
}

// Len returns the number of events in the frame.
func (f InputFrame) Len() int {
	return len(f.Events)
}

// Clear resets the frame for the next tick, keeping its capacity.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}
