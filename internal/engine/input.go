package engine

import (
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// InputPlugin routes keys and pointer events to one scene.
type InputPlugin struct {
	display *DisplayList
	events  *Emitter
	hovered *intmap.Map[ObjectID, GameObject]
}

func newInputPlugin(display *DisplayList) *InputPlugin {
	return &InputPlugin{
		display: display,
		events:  NewEmitter(),
		hovered: intmap.New[ObjectID, GameObject](8),
	}
}

// On registers a scene-level pointer listener ("pointerdown", "pointerup",
// "pointermove"). Scene listeners run after interactive objects.
func (in *InputPlugin) On(event string, fn func(Pointer)) ListenerID {
	return in.events.On(event, func(data any) {
		p, _ := data.(Pointer)
		fn(p)
	})
}

// OnKey registers fn for key-down events of k.
func (in *InputPlugin) OnKey(k core.Key, fn func()) ListenerID {
	return in.events.On(keyEvent(k), func(any) { fn() })
}

// OnAnyKey registers fn for every key-down event.
func (in *InputPlugin) OnAnyKey(fn func(core.Key)) ListenerID {
	return in.events.On("keydown", func(data any) {
		k, _ := data.(core.Key)
		fn(k)
	})
}

// Off removes a listener registered with On, OnKey or OnAnyKey.
func (in *InputPlugin) Off(event string, id ListenerID) {
	in.events.Off(event, id)
}

// IsHovered reports whether the pointer is over the object.
func (in *InputPlugin) IsHovered(id ObjectID) bool {
	_, ok := in.hovered.Get(id)
	return ok
}

func keyEvent(k core.Key) string {
	return "keydown_" + string(k)
}

func (in *InputPlugin) reset() {
	in.events.RemoveAll()
	in.hovered.Clear()
}

// dispatch delivers one event and reports whether an interactive object consumed it.
// alive is checked between handlers so a scene shut down mid-dispatch stops receiving.
func (in *InputPlugin) dispatch(ev core.InputEvent, vp Viewport, alive func() bool) bool {
	switch ev.Kind {
	case core.EventKeyDown:
		in.events.Emit(keyEvent(ev.Key), nil)
		if alive() {
			in.events.Emit("keydown", ev.Key)
		}
		return false

	case core.EventPointerMove:
		p := pointerAt(ev, vp)
		in.updateHover(p, vp, alive)
		if alive() {
			in.events.Emit(EventPointerMove, p)
		}
		return false

	case core.EventPointerDown, core.EventPointerUp:
		p := pointerAt(ev, vp)
		name := EventPointerDown
		if ev.Kind == core.EventPointerUp {
			name = EventPointerUp
		}

		in.updateHover(p, vp, alive)
		hit := in.topHit(p, vp)
		if hit != nil && alive() {
			hit.Events().Emit(name, p)
		}
		if alive() {
			in.events.Emit(name, p)
		}
		return hit != nil
	}
	return false
}

func pointerAt(ev core.InputEvent, vp Viewport) Pointer {
	x, y := vp.ToWorld(ev.X, ev.Y)
	return Pointer{X: x, Y: y, Col: ev.X, Row: ev.Y}
}

// topHit returns the topmost visible interactive object under p.
func (in *InputPlugin) topHit(p Pointer, vp Viewport) GameObject {
	objs := in.display.All()
	for i := len(objs) - 1; i >= 0; i-- {
		obj := objs[i]
		if obj.Interactive() && obj.Visible() && obj.Bounds(vp).Contains(p.X, p.Y) {
			return obj
		}
	}
	return nil
}

// updateHover emits pointerover/pointerout for objects the pointer entered or left.
func (in *InputPlugin) updateHover(p Pointer, vp Viewport, alive func() bool) {
	objs := append([]GameObject(nil), in.display.All()...)
	for _, obj := range objs {
		if !alive() {
			return
		}
		if !obj.Interactive() {
			continue
		}
		over := obj.Visible() && obj.Bounds(vp).Contains(p.X, p.Y)
		_, was := in.hovered.Get(obj.ID())

		switch {
		case over && !was:
			in.hovered.Put(obj.ID(), obj)
			obj.Events().Emit(EventPointerOver, p)
		case !over && was:
			in.hovered.Del(obj.ID())
			obj.Events().Emit(EventPointerOut, p)
		}
	}
}
