package engine

import (
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ObjectID identifies a display object within a game.
type ObjectID uint32

// Pointer is a pointer event position in world space.
type Pointer struct {
	X, Y     float64
	Col, Row int
}

// Pointer events delivered to interactive objects and scene input.
const (
	EventPointerDown = "pointerdown"
	EventPointerUp   = "pointerup"
	EventPointerMove = "pointermove"
	EventPointerOver = "pointerover"
	EventPointerOut  = "pointerout"
)

// GameObject is anything a scene's display list can hold.
type GameObject interface {
	ID() ObjectID
	Visible() bool
	Interactive() bool
	// Bounds returns the world-space hit area.
	Bounds(vp Viewport) core.RectF
	Events() *Emitter

	draw(r *renderer)
	preUpdate(dt time.Duration)
}

// object holds the state shared by every display object.
type object struct {
	id               ObjectID
	X, Y             float64
	originX, originY float64
	visible          bool
	interactive      bool
	events           *Emitter
}

func newObject(id ObjectID, x, y float64) object {
	return object{
		id:      id,
		X:       x,
		Y:       y,
		originX: 0.5,
		originY: 0.5,
		visible: true,
		events:  NewEmitter(),
	}
}

func (o *object) ID() ObjectID           { return o.id }
func (o *object) Visible() bool          { return o.visible }
func (o *object) Interactive() bool      { return o.interactive }
func (o *object) Events() *Emitter       { return o.events }
func (o *object) Origin() (x, y float64) { return o.originX, o.originY }

// On registers a pointer listener on this object. The object must be
// interactive to receive events.
func (o *object) On(event string, fn func(Pointer)) ListenerID {
	return o.events.On(event, func(data any) {
		p, _ := data.(Pointer)
		fn(p)
	})
}

// Image is a static textured display object.
type Image struct {
	object
	texture *Texture
	frame   int
	scale   float64
	flipX   bool
	tint    core.Color
	tinted  bool
}

func newImage(id ObjectID, x, y float64, tex *Texture) *Image {
	return &Image{
		object:  newObject(id, x, y),
		texture: tex,
		scale:   1,
	}
}

// SetOrigin sets the normalized anchor point used for positioning.
func (i *Image) SetOrigin(x, y float64) *Image {
	i.originX, i.originY = x, y
	return i
}

func (i *Image) SetPosition(x, y float64) *Image {
	i.X, i.Y = x, y
	return i
}

func (i *Image) SetScale(s float64) *Image {
	i.scale = s
	return i
}

func (i *Image) SetFlipX(flip bool) *Image {
	i.flipX = flip
	return i
}

// SetTint draws every texel of the image in c.
func (i *Image) SetTint(c core.Color) *Image {
	i.tint, i.tinted = c, true
	return i
}

func (i *Image) ClearTint() *Image {
	i.tinted = false
	return i
}

func (i *Image) SetVisible(v bool) *Image {
	i.visible = v
	return i
}

// SetInteractive enables pointer events for the image.
func (i *Image) SetInteractive() *Image {
	i.interactive = true
	return i
}

// SetFrame selects the spritesheet frame to draw.
func (i *Image) SetFrame(frame int) *Image {
	i.frame = frame
	return i
}

func (i *Image) Texture() *Texture        { return i.texture }
func (i *Image) Frame() int               { return i.frame }
func (i *Image) Scale() float64           { return i.scale }
func (i *Image) FlipX() bool              { return i.flipX }
func (i *Image) Tint() (core.Color, bool) { return i.tint, i.tinted }

// DisplayWidth returns the scaled width in world units.
func (i *Image) DisplayWidth() float64 {
	return i.texture.Width * i.scale
}

// DisplayHeight returns the scaled height in world units.
func (i *Image) DisplayHeight() float64 {
	return i.texture.Height * i.scale
}

// WorldBounds returns the display rectangle in world space.
func (i *Image) WorldBounds() core.RectF {
	w, h := i.DisplayWidth(), i.DisplayHeight()
	return core.NewRectF(i.X-i.originX*w, i.Y-i.originY*h, w, h)
}

// Bounds returns the display rectangle; images do not depend on the viewport.
func (i *Image) Bounds(Viewport) core.RectF {
	return i.WorldBounds()
}

func (i *Image) draw(r *renderer) {
	color := i.texture.Color
	if i.tinted {
		color = i.tint
	}
	r.drawTexture(i.texture, i.frame, i.WorldBounds(), i.flipX, color)
}

func (i *Image) preUpdate(time.Duration) {}

// Sprite is an image with an optional physics body and animation playback.
type Sprite struct {
	Image
	body  *Body
	anims *AnimationManager
	anim  animState
}

func newSprite(id ObjectID, x, y float64, tex *Texture, anims *AnimationManager) *Sprite {
	return &Sprite{
		Image: *newImage(id, x, y, tex),
		anims: anims,
	}
}

// Body returns the sprite's physics body, or nil if physics is not enabled.
func (s *Sprite) Body() *Body {
	return s.body
}

// Play starts the named animation from its first frame.
func (s *Sprite) Play(key string) error {
	a, ok := s.anims.Get(key)
	if !ok {
		return &UnknownAnimationError{Key: key}
	}
	s.anim.play(a)
	s.frame = s.anim.frame()
	return nil
}

// StopAnimation halts playback on the current frame.
func (s *Sprite) StopAnimation() {
	s.anim.playing = false
}

// AnimationKey returns the key of the current animation, or "".
func (s *Sprite) AnimationKey() string {
	if s.anim.anim == nil {
		return ""
	}
	return s.anim.anim.Key
}

// IsPlaying reports whether an animation is advancing.
func (s *Sprite) IsPlaying() bool {
	return s.anim.playing
}

func (s *Sprite) preUpdate(dt time.Duration) {
	if s.anim.update(dt) {
		s.frame = s.anim.frame()
	}
}

// Text is a single line of colored text. Its size follows the terminal grid:
// one cell per rune and one row tall.
type Text struct {
	object
	text  string
	color core.Color
}

func newText(id ObjectID, x, y float64, text string, color core.Color) *Text {
	t := &Text{object: newObject(id, x, y), text: text, color: color}
	t.originX, t.originY = 0, 0
	return t
}

func (t *Text) SetText(s string) *Text {
	t.text = s
	return t
}

func (t *Text) SetColor(c core.Color) *Text {
	t.color = c
	return t
}

func (t *Text) SetOrigin(x, y float64) *Text {
	t.originX, t.originY = x, y
	return t
}

func (t *Text) SetPosition(x, y float64) *Text {
	t.X, t.Y = x, y
	return t
}

func (t *Text) SetVisible(v bool) *Text {
	t.visible = v
	return t
}

// SetInteractive enables pointer events for the text.
func (t *Text) SetInteractive() *Text {
	t.interactive = true
	return t
}

func (t *Text) Text() string      { return t.text }
func (t *Text) Color() core.Color { return t.color }

// Bounds returns the world rectangle covered by the rendered text.
func (t *Text) Bounds(vp Viewport) core.RectF {
	w := float64(utf8.RuneCountInString(t.text)) * vp.UnitsPerCol
	h := vp.UnitsPerRow
	return core.NewRectF(t.X-t.originX*w, t.Y-t.originY*h, w, h)
}

func (t *Text) draw(r *renderer) {
	b := t.Bounds(r.vp)
	r.drawText(b.X, b.Y, t.text, t.color)
}

func (t *Text) preUpdate(time.Duration) {}

// DisplayList is a scene's ordered set of objects; later objects draw on top.
type DisplayList struct {
	objects []GameObject
}

// Add appends obj to the top of the list.
func (d *DisplayList) Add(obj GameObject) {
	d.objects = append(d.objects, obj)
}

// Remove deletes the object with the given id.
func (d *DisplayList) Remove(id ObjectID) bool {
	for i, obj := range d.objects {
		if obj.ID() == id {
			d.objects = append(d.objects[:i], d.objects[i+1:]...)
			return true
		}
	}
	return false
}

// All returns the objects in draw order. The slice must not be modified.
func (d *DisplayList) All() []GameObject {
	return d.objects
}

func (d *DisplayList) Len() int {
	return len(d.objects)
}

func (d *DisplayList) clear() {
	d.objects = nil
}
