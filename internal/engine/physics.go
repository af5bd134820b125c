package engine

import (
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Body is an arcade physics body attached to a sprite. Size and offset are
// kept in unscaled frame units and follow the sprite's scale and origin.
type Body struct {
	owner *Sprite

	// World-space rectangle, refreshed from the owner every step.
	X, Y          float64
	Width, Height float64

	VelocityX, VelocityY float64
	GravityY             float64
	AllowGravity         bool
	Immovable            bool
	CollideWorldBounds   bool
	Enable               bool

	// Set when the last step clamped the body to a world edge.
	BlockedUp, BlockedDown bool

	sizeW, sizeH     float64
	offsetX, offsetY float64
}

func newBody(owner *Sprite) *Body {
	b := &Body{
		owner:        owner,
		AllowGravity: true,
		Enable:       true,
		sizeW:        owner.texture.Width,
		sizeH:        owner.texture.Height,
	}
	b.sync()
	return b
}

// Owner returns the sprite the body moves.
func (b *Body) Owner() *Sprite {
	return b.owner
}

// SetSize sets the body size in frame units. With center, the body is
// centered on the frame; otherwise the offset is kept.
func (b *Body) SetSize(w, h float64, center bool) *Body {
	b.sizeW, b.sizeH = w, h
	if center {
		b.offsetX = (b.owner.texture.Width - w) / 2
		b.offsetY = (b.owner.texture.Height - h) / 2
	}
	b.sync()
	return b
}

// SetOffset positions the body relative to the frame's top-left, in frame units.
func (b *Body) SetOffset(x, y float64) *Body {
	b.offsetX, b.offsetY = x, y
	b.sync()
	return b
}

func (b *Body) SetVelocity(x, y float64) *Body {
	b.VelocityX, b.VelocityY = x, y
	return b
}

func (b *Body) SetVelocityX(v float64) *Body {
	b.VelocityX = v
	return b
}

func (b *Body) SetVelocityY(v float64) *Body {
	b.VelocityY = v
	return b
}

// Bounds returns the body rectangle in world space.
func (b *Body) Bounds() core.RectF {
	return core.NewRectF(b.X, b.Y, b.Width, b.Height)
}

func (b *Body) Right() float64  { return b.X + b.Width }
func (b *Body) Bottom() float64 { return b.Y + b.Height }

// sync recomputes the body rectangle from the owner's display bounds.
func (b *Body) sync() {
	scale := b.owner.scale
	display := b.owner.WorldBounds()
	b.Width = b.sizeW * scale
	b.Height = b.sizeH * scale
	b.X = display.X + b.offsetX*scale
	b.Y = display.Y + b.offsetY*scale
}

// collidable is a sprite or a group of sprites.
type collidable interface {
	sprites() []*Sprite
}

func (s *Sprite) sprites() []*Sprite { return []*Sprite{s} }

// Collider fires its callback for every overlapping body pair on each step.
// Bodies are not separated; the callback decides what a contact means.
type Collider struct {
	a, b     collidable
	callback func(a, b *Sprite)
	active   bool
}

// Destroy stops the collider from being checked.
func (c *Collider) Destroy() {
	c.active = false
}

func (c *Collider) check() {
	for _, sa := range c.a.sprites() {
		ba := sa.body
		if ba == nil || !ba.Enable {
			continue
		}
		for _, sb := range c.b.sprites() {
			bb := sb.body
			if bb == nil || !bb.Enable || ba == bb {
				continue
			}
			if ba.Bounds().Intersects(bb.Bounds()) && c.callback != nil {
				c.callback(sa, sb)
			}
		}
	}
}

// Group is a set of physics sprites that can be moved together.
type Group struct {
	world    *World
	children []*Sprite
}

func (g *Group) sprites() []*Sprite { return g.children }

// Create adds a new physics sprite to the scene and to the group.
func (g *Group) Create(x, y float64, key string) *Sprite {
	s := g.world.AddSprite(x, y, key)
	g.children = append(g.children, s)
	return s
}

// Children returns the group's sprites in creation order.
func (g *Group) Children() []*Sprite {
	return g.children
}

func (g *Group) Len() int {
	return len(g.children)
}

// SetVelocityX sets the horizontal velocity of every member.
func (g *Group) SetVelocityX(v float64) {
	for _, s := range g.children {
		if s.body != nil {
			s.body.VelocityX = v
		}
	}
}

// World is a scene's arcade physics simulation.
type World struct {
	Bounds   core.RectF
	GravityY float64

	add       *Factory
	bodies    []*Body
	index     *intmap.Map[ObjectID, *Body]
	colliders []*Collider
	paused    bool
}

func newWorld(add *Factory, w, h float64) *World {
	return &World{
		Bounds: core.NewRectF(0, 0, w, h),
		add:    add,
		index:  intmap.New[ObjectID, *Body](32),
	}
}

// AddSprite creates a sprite in the scene with physics enabled.
func (w *World) AddSprite(x, y float64, key string) *Sprite {
	s := w.add.Sprite(x, y, key)
	w.Enable(s)
	return s
}

// Enable attaches a body to s if it has none and returns it.
func (w *World) Enable(s *Sprite) *Body {
	if s.body != nil {
		return s.body
	}
	s.body = newBody(s)
	w.bodies = append(w.bodies, s.body)
	w.index.Put(s.id, s.body)
	return s.body
}

// BodyOf returns the body of the object with the given id.
func (w *World) BodyOf(id ObjectID) (*Body, bool) {
	return w.index.Get(id)
}

// Remove detaches the body of s from the simulation.
func (w *World) Remove(s *Sprite) {
	if s.body == nil {
		return
	}
	for i, b := range w.bodies {
		if b == s.body {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
	w.index.Del(s.id)
	s.body = nil
}

// AddGroup creates an empty physics group.
func (w *World) AddGroup() *Group {
	return &Group{world: w}
}

// AddCollider calls cb whenever a body of a overlaps a body of b.
// a and b are *Sprite or *Group.
func (w *World) AddCollider(a, b collidable, cb func(a, b *Sprite)) *Collider {
	c := &Collider{a: a, b: b, callback: cb, active: true}
	w.colliders = append(w.colliders, c)
	return c
}

// Pause freezes every body and collider until Resume.
func (w *World) Pause() {
	w.paused = true
}

func (w *World) Resume() {
	w.paused = false
}

func (w *World) IsPaused() bool {
	return w.paused
}

// BodyCount returns the number of simulated bodies.
func (w *World) BodyCount() int {
	return w.index.Len()
}

// Step integrates every body over dt seconds and runs the colliders.
func (w *World) Step(dt float64) {
	if w.paused {
		return
	}

	for _, b := range w.bodies {
		if !b.Enable {
			continue
		}
		b.sync()
		prevX, prevY := b.X, b.Y

		if b.AllowGravity {
			b.VelocityY += (w.GravityY + b.GravityY) * dt
		}
		b.X += b.VelocityX * dt
		b.Y += b.VelocityY * dt

		b.BlockedUp, b.BlockedDown = false, false
		if b.CollideWorldBounds {
			w.clamp(b)
		}

		b.owner.X += b.X - prevX
		b.owner.Y += b.Y - prevY
	}

	for _, c := range w.colliders {
		if w.paused {
			break
		}
		if c.active {
			c.check()
		}
	}
}

func (w *World) clamp(b *Body) {
	if x := core.ClampF(b.X, w.Bounds.X, w.Bounds.Right()-b.Width); x != b.X {
		b.X = x
		b.VelocityX = 0
	}

	if b.Y < w.Bounds.Y {
		b.Y = w.Bounds.Y
		b.VelocityY = 0
		b.BlockedUp = true
	} else if b.Bottom() > w.Bounds.Bottom() {
		b.Y = w.Bounds.Bottom() - b.Height
		b.VelocityY = 0
		b.BlockedDown = true
	}
}

func (w *World) reset() {
	w.bodies = nil
	w.index.Clear()
	w.colliders = nil
	w.paused = false
}
