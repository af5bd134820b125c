package engine

// Handler receives the payload of an emitted event (may be nil).
type Handler func(data any)

// ListenerID identifies a registered listener for removal.
type ListenerID uint64

type listener struct {
	id   ListenerID
	fn   Handler
	once bool
}

// Emitter is a synchronous, string-keyed event bus.
// Listeners run in registration order on the emitting goroutine.
type Emitter struct {
	listeners map[string][]listener
	nextID    ListenerID
}

// NewEmitter creates an empty emitter.
func NewEmitter() *Emitter {
	return &Emitter{listeners: make(map[string][]listener)}
}

// On registers fn for event and returns its id.
func (e *Emitter) On(event string, fn Handler) ListenerID {
	return e.add(event, fn, false)
}

// Once registers fn to run for the next emission of event only.
func (e *Emitter) Once(event string, fn Handler) ListenerID {
	return e.add(event, fn, true)
}

func (e *Emitter) add(event string, fn Handler, once bool) ListenerID {
	e.nextID++
	e.listeners[event] = append(e.listeners[event], listener{id: e.nextID, fn: fn, once: once})
	return e.nextID
}

// Off removes a listener. Unknown ids are ignored.
func (e *Emitter) Off(event string, id ListenerID) {
	ls := e.listeners[event]
	for i, l := range ls {
		if l.id == id {
			e.listeners[event] = append(ls[:i:i], ls[i+1:]...)
			return
		}
	}
}

// Emit calls every listener of event with data.
// Listeners added while emitting are not called for this emission.
// Returns the number of listeners called.
func (e *Emitter) Emit(event string, data any) int {
	ls := e.listeners[event]
	if len(ls) == 0 {
		return 0
	}

	snapshot := make([]listener, len(ls))
	copy(snapshot, ls)

	for _, l := range snapshot {
		if l.once {
			e.Off(event, l.id)
		}
		l.fn(data)
	}
	return len(snapshot)
}

// ListenerCount returns how many listeners event has.
func (e *Emitter) ListenerCount(event string) int {
	return len(e.listeners[event])
}

// RemoveAll drops every listener of every event.
func (e *Emitter) RemoveAll() {
	clear(e.listeners)
}
