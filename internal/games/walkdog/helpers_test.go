package walkdog

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/engine"
)

// keys is an Input with a fixed set of held keys.
type keys map[string]bool

func (k keys) IsPressed(code string) bool { return k[code] }

// recordingAudio remembers every sound it was asked to play.
type recordingAudio struct {
	played []string
	err    error
}

func (a *recordingAudio) PlaySound(s engine.Sound, looping bool) error {
	a.played = append(a.played, fmt.Sprintf("%s loop=%v", s.Name, looping))
	return a.err
}

// recordingRenderer logs draw calls in order.
type recordingRenderer struct {
	calls []string
	boxes []core.Rect
}

func (r *recordingRenderer) Clear(rect core.Rect) {
	r.calls = append(r.calls, fmt.Sprintf("clear %v", rect))
}

func (r *recordingRenderer) DrawImage(img *engine.ImageHandle, _, _ core.Rect) {
	r.calls = append(r.calls, "image "+img.Name)
}

func (r *recordingRenderer) DrawEntireImage(img *engine.ImageHandle, _ core.Point) {
	r.calls = append(r.calls, "entire "+img.Name)
}

func (r *recordingRenderer) DrawText(text string, _ core.Point) {
	r.calls = append(r.calls, "text "+text)
}

// boxRenderer also supports the bounding-box overlay.
type boxRenderer struct {
	recordingRenderer
}

func (r *boxRenderer) DrawBoundingBox(box core.Rect) {
	r.boxes = append(r.boxes, box)
}

var errAudio = errors.New("audio device unavailable")

func loadAssets(t *testing.T) *assets.Assets {
	t.Helper()
	a, err := assets.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded() failed: %v", err)
	}
	return a
}

func newTestBoy(t *testing.T, audio engine.Audio) *RedHatBoy {
	t.Helper()
	a := loadAssets(t)
	return NewRedHatBoy(a.Runner, config.DefaultRunnerConfig(), audio, a.JumpSound, nil)
}

func newTestWorld(t *testing.T, seed int64) *World {
	t.Helper()
	a := loadAssets(t)
	cfg := config.DefaultRunnerConfig()
	gen, err := NewSegmentGenerator(SegmentAssets{Stone: a.Stone, Tiles: a.Tiles}, cfg.World.Segments, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("NewSegmentGenerator() failed: %v", err)
	}
	boy := NewRedHatBoy(a.Runner, cfg, nil, a.JumpSound, nil)
	return NewWorld(boy, a.Background, gen, cfg)
}

func newTestGame(t *testing.T, audio engine.Audio) *Game {
	t.Helper()
	g, err := New(loadAssets(t), config.DefaultRunnerConfig(), audio, nil, 42)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g
}

func stoneAt(t *testing.T, x float64) *Barrier {
	t.Helper()
	return NewBarrier(engine.NewImage(loadAssets(t).Stone, core.Point{X: x, Y: StoneOnGround}))
}
