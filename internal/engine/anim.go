package engine

import (
	"fmt"
	"time"
)

// RepeatForever makes an animation loop until stopped.
const RepeatForever = -1

// Animation is a named frame sequence of a spritesheet.
type Animation struct {
	Key       string
	Frames    []int
	FrameRate int // Frames per second
	Repeat    int // Extra plays after the first; RepeatForever loops
}

// UnknownAnimationError is returned when playing an animation that was never created.
type UnknownAnimationError struct {
	Key string
}

func (e *UnknownAnimationError) Error() string {
	return fmt.Sprintf("engine: unknown animation %q", e.Key)
}

// AnimationManager holds the game's animations. Animations are global:
// creating one in a scene makes it available to every scene.
type AnimationManager struct {
	anims    map[string]*Animation
	textures *TextureCache
}

func newAnimationManager(textures *TextureCache) *AnimationManager {
	return &AnimationManager{
		anims:    make(map[string]*Animation),
		textures: textures,
	}
}

// GenerateFrameNumbers returns frames start..end (inclusive) of a loaded spritesheet.
func (m *AnimationManager) GenerateFrameNumbers(texture string, start, end int) ([]int, error) {
	tex, ok := m.textures.Get(texture)
	if !ok {
		return nil, fmt.Errorf("engine: generate frames: texture %q not loaded", texture)
	}
	if start < 0 || end < start || end >= tex.FrameCount() {
		return nil, fmt.Errorf("engine: generate frames: range %d..%d outside %q (%d frames)",
			start, end, texture, tex.FrameCount())
	}

	frames := make([]int, 0, end-start+1)
	for f := start; f <= end; f++ {
		frames = append(frames, f)
	}
	return frames, nil
}

// Create registers an animation. If the key already exists the existing
// animation is returned unchanged.
func (m *AnimationManager) Create(a Animation) (*Animation, error) {
	if existing, ok := m.anims[a.Key]; ok {
		return existing, nil
	}
	if a.Key == "" {
		return nil, fmt.Errorf("engine: create animation: empty key")
	}
	if len(a.Frames) == 0 {
		return nil, fmt.Errorf("engine: create animation %q: no frames", a.Key)
	}
	if a.FrameRate <= 0 {
		a.FrameRate = 24
	}

	anim := a
	anim.Frames = append([]int(nil), a.Frames...)
	m.anims[a.Key] = &anim
	return &anim, nil
}

// Get returns the animation registered under key.
func (m *AnimationManager) Get(key string) (*Animation, bool) {
	a, ok := m.anims[key]
	return a, ok
}

func (m *AnimationManager) Exists(key string) bool {
	_, ok := m.anims[key]
	return ok
}

// animState is the playback position of one sprite.
type animState struct {
	anim    *Animation
	index   int
	elapsed time.Duration
	repeats int
	playing bool
}

func (s *animState) play(a *Animation) {
	*s = animState{anim: a, playing: true}
}

func (s *animState) frame() int {
	if s.anim == nil {
		return 0
	}
	return s.anim.Frames[s.index]
}

// update advances playback and reports whether the frame changed.
func (s *animState) update(dt time.Duration) bool {
	if !s.playing || s.anim == nil {
		return false
	}

	step := time.Second / time.Duration(s.anim.FrameRate)
	s.elapsed += dt

	changed := false
	for s.elapsed >= step {
		s.elapsed -= step
		s.index++
		changed = true

		if s.index < len(s.anim.Frames) {
			continue
		}
		if s.anim.Repeat == RepeatForever || s.repeats < s.anim.Repeat {
			s.index = 0
			s.repeats++
			continue
		}
		s.index = len(s.anim.Frames) - 1
		s.playing = false
		break
	}
	return changed
}
