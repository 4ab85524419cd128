package walkdog

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/engine"
)

func TestFrameName(t *testing.T) {
	boy := newTestBoy(t, nil)

	if got := boy.FrameName(); got != "Idle (1).png" {
		t.Errorf("FrameName() = %q, expected %q", got, "Idle (1).png")
	}

	// Three ticks per displayed frame.
	for range 3 {
		boy.Update()
	}
	if got := boy.FrameName(); got != "Idle (2).png" {
		t.Errorf("FrameName() after 3 ticks = %q, expected %q", got, "Idle (2).png")
	}

	boy.RunRight()
	if got := boy.FrameName(); got != "Run (1).png" {
		t.Errorf("FrameName() after RunRight = %q, expected %q", got, "Run (1).png")
	}
}

func TestRequiredFramesExist(t *testing.T) {
	a := loadAssets(t)
	names := RequiredFrames()

	if len(names) != 45 {
		t.Errorf("RequiredFrames() has %d names, expected 45", len(names))
	}
	for _, name := range names {
		if _, ok := a.Runner.Cell(name); !ok {
			t.Errorf("runner sheet missing %q", name)
		}
	}
}

func TestBoundingBoxIsInset(t *testing.T) {
	boy := newTestBoy(t, nil)

	// Idle (1).png: 88x117 frame offset (24, 8) in the untrimmed sprite.
	dst, err := boy.DestinationBox()
	if err != nil {
		t.Fatalf("DestinationBox() failed: %v", err)
	}
	if want := core.NewRect(4, 483, 88, 117); dst != want {
		t.Errorf("DestinationBox() = %+v, expected %+v", dst, want)
	}

	box, err := boy.BoundingBox()
	if err != nil {
		t.Fatalf("BoundingBox() failed: %v", err)
	}
	if want := core.NewRect(22, 497, 60, 103); box != want {
		t.Errorf("BoundingBox() = %+v, expected %+v", box, want)
	}
	if box.Bottom() != config.DefaultRunnerConfig().Canvas.Height {
		t.Errorf("standing runner's box bottom = %v, expected the canvas bottom", box.Bottom())
	}
}

func TestMissingSpriteIsAnError(t *testing.T) {
	empty := engine.NewSpriteSheet(engine.Sheet{Frames: map[string]engine.Cell{}}, &engine.ImageHandle{Name: "rhb"})
	boy := NewRedHatBoy(empty, config.DefaultRunnerConfig(), nil, engine.Sound{}, nil)

	if _, err := boy.CurrentSprite(); !errors.Is(err, engine.ErrSpriteNotFound) {
		t.Errorf("CurrentSprite() error = %v, expected ErrSpriteNotFound", err)
	}
	if _, err := boy.BoundingBox(); !errors.Is(err, engine.ErrSpriteNotFound) {
		t.Errorf("BoundingBox() error = %v, expected ErrSpriteNotFound", err)
	}

	r := &recordingRenderer{}
	if err := boy.Draw(r); !errors.Is(err, engine.ErrSpriteNotFound) {
		t.Errorf("Draw() error = %v, expected ErrSpriteNotFound", err)
	}
	if len(r.calls) != 0 {
		t.Errorf("Draw() issued %v despite failing", r.calls)
	}
}

func TestBoyDraw(t *testing.T) {
	boy := newTestBoy(t, nil)
	r := &recordingRenderer{}

	if err := boy.Draw(r); err != nil {
		t.Fatalf("Draw() failed: %v", err)
	}
	if len(r.calls) != 1 || r.calls[0] != "image rhb" {
		t.Errorf("Draw() calls = %v, expected [image rhb]", r.calls)
	}
}

func TestBoyReset(t *testing.T) {
	audio := &recordingAudio{}
	boy := newTestBoy(t, audio)
	boy.RunRight()
	boy.KnockOut()

	fresh := boy.Reset()
	if fresh == boy {
		t.Fatal("Reset() returned the same runner")
	}
	if fresh.State() != Idle {
		t.Errorf("State() = %s, expected Idle", fresh.State())
	}
	if fresh.sheet != boy.sheet {
		t.Error("Reset() should share the sprite sheet")
	}
	if boy.State() != Falling {
		t.Errorf("Reset() changed the old runner to %s", boy.State())
	}

	fresh.RunRight()
	fresh.Jump()
	if len(audio.played) != 1 {
		t.Errorf("reset runner should keep audio, played = %v", audio.played)
	}
}
