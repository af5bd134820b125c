// Package assets loads the game's text textures. The default set is
// embedded; a directory with the same layout can replace it.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
)

// ManifestFile is the metadata file every asset directory must contain.
const ManifestFile = "manifest.yaml"

//go:embed data/*
var embedded embed.FS

// ErrNotFound is returned for paths missing from the manifest or the file system.
var ErrNotFound = errors.New("asset not found")

// Entry describes one texture file.
type Entry struct {
	Path   string     `yaml:"path"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	Color  core.Color `yaml:"color"`
}

// Manifest lists the textures of an asset directory.
type Manifest struct {
	Textures []Entry `yaml:"textures"`
}

// Library resolves texture paths against a file system and its manifest.
// It implements engine.AssetSource.
type Library struct {
	fsys    fs.FS
	entries map[string]Entry
	order   []string
}

// Embedded returns the library built into the binary.
func Embedded() (*Library, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("assets: embedded: %w", err)
	}
	return New(sub)
}

// Open returns a library for dir, or the embedded library when dir is empty.
func Open(dir string) (*Library, error) {
	if dir == "" {
		return Embedded()
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("assets: open %s: not a directory", dir)
	}
	return New(os.DirFS(dir))
}

// New reads the manifest of fsys.
func New(fsys fs.FS) (*Library, error) {
	data, err := fs.ReadFile(fsys, ManifestFile)
	if err != nil {
		return nil, fmt.Errorf("assets: read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("assets: parse manifest: %w", err)
	}

	lib := &Library{fsys: fsys, entries: make(map[string]Entry, len(m.Textures))}
	for _, e := range m.Textures {
		if e.Path == "" {
			return nil, errors.New("assets: manifest entry without path")
		}
		if e.Width <= 0 || e.Height <= 0 {
			return nil, fmt.Errorf("assets: %s: size must be positive, got %gx%g", e.Path, e.Width, e.Height)
		}
		if _, dup := lib.entries[e.Path]; dup {
			return nil, fmt.Errorf("assets: %s: listed twice", e.Path)
		}
		lib.entries[e.Path] = e
		lib.order = append(lib.order, e.Path)
	}
	return lib, nil
}

// Paths returns the manifest paths in file order.
func (l *Library) Paths() []string {
	return append([]string(nil), l.order...)
}

// Entry returns the manifest entry for path.
func (l *Library) Entry(path string) (Entry, bool) {
	e, ok := l.entries[path]
	return e, ok
}

// Image loads path as a single-frame texture.
func (l *Library) Image(key, path string) (*engine.Texture, error) {
	e, rows, err := l.read(path)
	if err != nil {
		return nil, err
	}
	return &engine.Texture{
		Key:    key,
		Width:  e.Width,
		Height: e.Height,
		Color:  e.Color,
		Frames: [][][]rune{rows},
	}, nil
}

// Spritesheet loads path and cuts it into frames of the given world size,
// left to right, then top to bottom.
func (l *Library) Spritesheet(key, path string, frame engine.FrameSize) (*engine.Texture, error) {
	e, rows, err := l.read(path)
	if err != nil {
		return nil, err
	}
	if frame.Width <= 0 || frame.Height <= 0 {
		return nil, fmt.Errorf("assets: %s: invalid frame size %gx%g", path, frame.Width, frame.Height)
	}

	cols, ok1 := divides(e.Width, frame.Width)
	nrows, ok2 := divides(e.Height, frame.Height)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("assets: %s: %gx%g is not a multiple of frame %gx%g",
			path, e.Width, e.Height, frame.Width, frame.Height)
	}

	textW := len(rows[0])
	textH := len(rows)
	if textW%cols != 0 || textH%nrows != 0 {
		return nil, fmt.Errorf("assets: %s: %dx%d characters do not split into %dx%d frames",
			path, textW, textH, cols, nrows)
	}
	fw, fh := textW/cols, textH/nrows

	frames := make([][][]rune, 0, cols*nrows)
	for fy := 0; fy < nrows; fy++ {
		for fx := 0; fx < cols; fx++ {
			f := make([][]rune, fh)
			for y := 0; y < fh; y++ {
				f[y] = rows[fy*fh+y][fx*fw : (fx+1)*fw]
			}
			frames = append(frames, f)
		}
	}

	return &engine.Texture{
		Key:    key,
		Width:  frame.Width,
		Height: frame.Height,
		Color:  e.Color,
		Frames: frames,
	}, nil
}

func (l *Library) read(path string) (Entry, [][]rune, error) {
	e, ok := l.entries[path]
	if !ok {
		return Entry{}, nil, fmt.Errorf("assets: %s: %w in manifest", path, ErrNotFound)
	}
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Entry{}, nil, fmt.Errorf("assets: %s: %w", path, ErrNotFound)
		}
		return Entry{}, nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	rows, err := parseArt(string(data))
	if err != nil {
		return Entry{}, nil, fmt.Errorf("assets: %s: %w", path, err)
	}
	return e, rows, nil
}

// parseArt splits text art into equal-width rows, padding short lines
// with transparent spaces.
func parseArt(s string) ([][]rune, error) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil, errors.New("empty texture")
	}

	lines := strings.Split(s, "\n")
	width := 0
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}
	if width == 0 {
		return nil, errors.New("empty texture")
	}

	rows := make([][]rune, len(lines))
	for i, line := range lines {
		r := []rune(line)
		for len(r) < width {
			r = append(r, ' ')
		}
		rows[i] = r
	}
	return rows, nil
}

// divides returns whole/part when part divides whole exactly.
func divides(whole, part float64) (int, bool) {
	n := whole / part
	if n < 1 || math.Abs(n-math.Round(n)) > 1e-9 {
		return 0, false
	}
	return int(math.Round(n)), true
}
