// Package assets loads the runner's sprite sheets, image metadata and sound
// handles. Everything is decoded once at start-up and is read-only afterwards.
package assets

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/engine"
)

//go:embed data
var embedded embed.FS

// ManifestFile is the name of the manifest inside an asset filesystem.
const ManifestFile = "manifest.yaml"

// Manifest describes the asset pack.
type Manifest struct {
	Images map[string]ImageSpec `yaml:"images"`
	Sheets map[string]SheetSpec `yaml:"sheets"`
	Sounds map[string]string    `yaml:"sounds"`
}

// ImageSpec describes one image.
type ImageSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Glyph  string  `yaml:"glyph"`
	Color  string  `yaml:"color"`
}

// SheetSpec binds a sprite-sheet descriptor to an image.
type SheetSpec struct {
	Descriptor string `yaml:"descriptor"`
	Image      string `yaml:"image"`
}

// Assets is the decoded asset pack.
type Assets struct {
	Runner     *engine.SpriteSheet
	Tiles      *engine.SpriteSheet
	Stone      *engine.ImageHandle
	Background *engine.ImageHandle
	JumpSound  engine.Sound
	Music      engine.Sound
}

// LoadEmbedded loads the asset pack compiled into the binary.
func LoadEmbedded() (*Assets, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("assets: embedded pack: %w", err)
	}
	return Load(sub)
}

// Load reads the manifest and every file it references from fsys.
func Load(fsys fs.FS) (*Assets, error) {
	data, err := fs.ReadFile(fsys, ManifestFile)
	if err != nil {
		return nil, fmt.Errorf("assets: failed to read %s: %w", ManifestFile, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("assets: failed to parse %s: %w", ManifestFile, err)
	}

	images := make(map[string]*engine.ImageHandle, len(m.Images))
	for name, spec := range m.Images {
		img, err := spec.handle(name)
		if err != nil {
			return nil, err
		}
		images[name] = img
	}

	sheets := make(map[string]*engine.SpriteSheet, len(m.Sheets))
	for name, spec := range m.Sheets {
		sheet, err := loadSheet(fsys, spec, images)
		if err != nil {
			return nil, fmt.Errorf("assets: sheet %q: %w", name, err)
		}
		sheets[name] = sheet
	}

	a := &Assets{
		Runner:     sheets["rhb"],
		Tiles:      sheets["tiles"],
		Stone:      images["stone"],
		Background: images["background"],
		JumpSound:  engine.Sound{Name: m.Sounds["jump"]},
		Music:      engine.Sound{Name: m.Sounds["music"]},
	}

	switch {
	case a.Runner == nil:
		return nil, fmt.Errorf("assets: missing sheet %q", "rhb")
	case a.Tiles == nil:
		return nil, fmt.Errorf("assets: missing sheet %q", "tiles")
	case a.Stone == nil:
		return nil, fmt.Errorf("assets: missing image %q", "stone")
	case a.Background == nil:
		return nil, fmt.Errorf("assets: missing image %q", "background")
	}

	return a, nil
}

func (spec ImageSpec) handle(name string) (*engine.ImageHandle, error) {
	if spec.Width <= 0 || spec.Height <= 0 {
		return nil, fmt.Errorf("assets: image %q has invalid size %vx%v", name, spec.Width, spec.Height)
	}

	var glyph rune
	if spec.Glyph != "" {
		r, size := utf8.DecodeRuneInString(spec.Glyph)
		if r == utf8.RuneError || size != len(spec.Glyph) {
			return nil, fmt.Errorf("assets: image %q glyph must be a single character, got %q", name, spec.Glyph)
		}
		glyph = r
	}

	var color core.Color
	if strings.TrimSpace(spec.Color) != "" {
		c, ok := core.ParseColor(spec.Color)
		if !ok {
			return nil, fmt.Errorf("assets: image %q has unknown color %q", name, spec.Color)
		}
		color = c
	}

	return &engine.ImageHandle{
		Name:   name,
		Width:  spec.Width,
		Height: spec.Height,
		Glyph:  glyph,
		Color:  color,
	}, nil
}

func loadSheet(fsys fs.FS, spec SheetSpec, images map[string]*engine.ImageHandle) (*engine.SpriteSheet, error) {
	img, ok := images[spec.Image]
	if !ok {
		return nil, fmt.Errorf("unknown image %q", spec.Image)
	}

	data, err := fs.ReadFile(fsys, spec.Descriptor)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", spec.Descriptor, err)
	}

	var sheet engine.Sheet
	if err := json.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", spec.Descriptor, err)
	}
	if len(sheet.Frames) == 0 {
		return nil, fmt.Errorf("%s has no frames", spec.Descriptor)
	}

	return engine.NewSpriteSheet(sheet, img), nil
}

// Validate checks that every named frame exists in sheet.
func Validate(sheet *engine.SpriteSheet, frames []string) error {
	var missing []string
	for _, name := range frames {
		if _, ok := sheet.Cell(name); !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("assets: %w: %q", engine.ErrSpriteNotFound, missing)
	}
	return nil
}

// FrameNames returns the sheet's frame names in sorted order.
func FrameNames(sheet *engine.SpriteSheet) []string {
	names := make([]string, 0, len(sheet.Sheet().Frames))
	for name := range sheet.Sheet().Frames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
