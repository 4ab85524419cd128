package walkdog

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

func TestBarrierKnocksOut(t *testing.T) {
	tests := []struct {
		name    string
		x       float64
		wantOut bool
	}{
		{"overlapping", 50, true},
		{"ahead", 300, false},
		// Running box spans x 18..95; a shared edge is not a hit.
		{"touching edge", 95, false},
		{"just inside", 94.5, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			boy := newTestBoy(t, nil)
			boy.RunRight()

			if err := stoneAt(t, tc.x).CheckIntersection(boy); err != nil {
				t.Fatalf("CheckIntersection() failed: %v", err)
			}
			if got := boy.State() == Falling; got != tc.wantOut {
				t.Errorf("knocked out = %v, expected %v (state %s)", got, tc.wantOut, boy.State())
			}
		})
	}
}

func TestBarrierGeometry(t *testing.T) {
	b := stoneAt(t, 100)

	if b.Right() != 190 {
		t.Errorf("Right() = %v, expected 190", b.Right())
	}
	b.MoveHorizontally(-40)
	if b.Right() != 150 {
		t.Errorf("Right() after move = %v, expected 150", b.Right())
	}
	boxes := b.BoundingBoxes()
	if len(boxes) != 1 || boxes[0] != core.NewRect(60, StoneOnGround, 90, 54) {
		t.Errorf("BoundingBoxes() = %v", boxes)
	}
}

func TestPlatformResolvesFirstBox(t *testing.T) {
	tiles := loadAssets(t).Tiles
	lower := core.NewRect(0, 10, 200, 50) // top at 490 once placed
	upper := core.NewRect(0, 0, 200, 50)  // top at 480

	tests := []struct {
		name  string
		boxes []core.Rect
		wantY float64
	}{
		{"lower first", []core.Rect{lower, upper}, 490},
		{"upper first", []core.Rect{upper, lower}, 480},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			boy := newTestBoy(t, nil)
			boy.RunRight()
			boy.Update() // falling speed is now positive

			p := NewPlatform(tiles, core.Point{X: 0, Y: 480}, PlatformTiles, tc.boxes)
			if err := p.CheckIntersection(boy); err != nil {
				t.Fatalf("CheckIntersection() failed: %v", err)
			}

			if boy.State() != Running {
				t.Fatalf("State() = %s, expected Running", boy.State())
			}
			if want := tc.wantY - config.DefaultRunnerConfig().PlayerHeight(); boy.PosY() != want {
				t.Errorf("PosY() = %v, expected %v (landed on box at %v)", boy.PosY(), want, tc.wantY)
			}
		})
	}
}

func TestPlatformSideHitKnocksOut(t *testing.T) {
	boy := newTestBoy(t, nil)
	boy.RunRight()
	boy.Update()

	p := NewPlatform(loadAssets(t).Tiles, core.Point{X: 0, Y: LowPlatform}, PlatformTiles, floatingPlatformBoxes())
	if err := p.CheckIntersection(boy); err != nil {
		t.Fatalf("CheckIntersection() failed: %v", err)
	}
	if boy.State() != Falling {
		t.Errorf("State() = %s, expected Falling", boy.State())
	}
}

func TestPlatformLandingFromAbove(t *testing.T) {
	boy := newTestBoy(t, nil)
	boy.RunRight()
	boy.Jump()
	for boy.VelocityY() <= 0 {
		boy.Update()
	}

	top := boy.PosY() + 100
	p := NewPlatform(loadAssets(t).Tiles, core.Point{X: 0, Y: top}, PlatformTiles, floatingPlatformBoxes())
	if err := p.CheckIntersection(boy); err != nil {
		t.Fatalf("CheckIntersection() failed: %v", err)
	}

	if boy.State() != Running {
		t.Fatalf("State() = %s, expected Running", boy.State())
	}
	if want := top - config.DefaultRunnerConfig().PlayerHeight(); boy.PosY() != want {
		t.Errorf("PosY() = %v, expected %v", boy.PosY(), want)
	}
}

func TestPlatformGeometry(t *testing.T) {
	p := NewPlatform(loadAssets(t).Tiles, core.Point{X: 100, Y: HighPlatform}, PlatformTiles, floatingPlatformBoxes())

	if p.Right() != 484 {
		t.Errorf("Right() = %v, expected 484", p.Right())
	}

	p.MoveHorizontally(-50)
	boxes := p.BoundingBoxes()
	want := []core.Rect{
		core.NewRect(50, HighPlatform, 60, 54),
		core.NewRect(110, HighPlatform, 264, 93),
		core.NewRect(374, HighPlatform, 60, 54),
	}
	for i := range want {
		if boxes[i] != want[i] {
			t.Errorf("box %d = %+v, expected %+v", i, boxes[i], want[i])
		}
	}
	if p.Right() != 434 {
		t.Errorf("Right() after move = %v, expected 434", p.Right())
	}
}

func TestPlatformDrawSkipsMissingTiles(t *testing.T) {
	tiles := loadAssets(t).Tiles
	p := NewPlatform(tiles, core.Point{}, []string{"13.png", "nope.png", "15.png"}, floatingPlatformBoxes())

	r := &recordingRenderer{}
	p.Draw(r)
	if len(r.calls) != 2 {
		t.Errorf("Draw() issued %d calls, expected 2: %v", len(r.calls), r.calls)
	}
}

func TestRightmost(t *testing.T) {
	if got := Rightmost(nil); got != 0 {
		t.Errorf("Rightmost(nil) = %v, expected 0", got)
	}

	obstacles := []Obstacle{stoneAt(t, 500), stoneAt(t, 100), stoneAt(t, 300)}
	if got := Rightmost(obstacles); got != 590 {
		t.Errorf("Rightmost() = %v, expected 590", got)
	}
}
