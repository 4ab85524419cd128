package walkdog

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/engine"
)

// Vertical placements, in canvas units.
const (
	LowPlatform   = 420.0
	HighPlatform  = 375.0
	StoneOnGround = 546.0
)

// Floating platform geometry. The middle tile is taller than the edges.
const (
	platformWidth      = 384.0
	platformHeight     = 93.0
	platformEdgeWidth  = 60.0
	platformEdgeHeight = 54.0
)

// PlatformTiles are the tile-sheet frames a floating platform is drawn with.
var PlatformTiles = []string{"13.png", "14.png", "15.png"}

func floatingPlatformBoxes() []core.Rect {
	return []core.Rect{
		core.NewRect(0, 0, platformEdgeWidth, platformEdgeHeight),
		core.NewRect(platformEdgeWidth, 0, platformWidth-platformEdgeWidth*2, platformHeight),
		core.NewRect(platformWidth-platformEdgeWidth, 0, platformEdgeWidth, platformEdgeHeight),
	}
}

// SegmentAssets are the images segments are built from.
type SegmentAssets struct {
	Stone *engine.ImageHandle
	Tiles *engine.SpriteSheet
}

func (a SegmentAssets) stone(x float64) Obstacle {
	return NewBarrier(engine.NewImage(a.Stone, core.Point{X: x, Y: StoneOnGround}))
}

func (a SegmentAssets) platform(x, y float64) Obstacle {
	return NewPlatform(a.Tiles, core.Point{X: x, Y: y}, PlatformTiles, floatingPlatformBoxes())
}

// SegmentFunc lays out one segment with offsetX as its left reference.
type SegmentFunc func(a SegmentAssets, offsetX float64) []Obstacle

// StoneAndStone is two stones on the ground.
func StoneAndStone(a SegmentAssets, offsetX float64) []Obstacle {
	return []Obstacle{
		a.stone(offsetX + 150),
		a.stone(offsetX + 500),
	}
}

// StoneAndPlatform is a stone followed by a low platform.
func StoneAndPlatform(a SegmentAssets, offsetX float64) []Obstacle {
	return []Obstacle{
		a.stone(offsetX + 150),
		a.platform(offsetX+400, LowPlatform),
	}
}

// PlatformAndStone is a high platform with a stone under its far end.
func PlatformAndStone(a SegmentAssets, offsetX float64) []Obstacle {
	return []Obstacle{
		a.stone(offsetX + 400),
		a.platform(offsetX+200, HighPlatform),
	}
}

var segmentPatterns = map[string]SegmentFunc{
	"stone_and_stone":    StoneAndStone,
	"stone_and_platform": StoneAndPlatform,
	"platform_and_stone": PlatformAndStone,
}

// SegmentNames returns the known pattern names, sorted.
func SegmentNames() []string {
	names := make([]string, 0, len(segmentPatterns))
	for name := range segmentPatterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SegmentGenerator picks a pattern uniformly at random for each new segment.
type SegmentGenerator struct {
	assets   SegmentAssets
	names    []string
	patterns []SegmentFunc
	rng      *rand.Rand
}

// NewSegmentGenerator builds a generator over the named patterns.
func NewSegmentGenerator(a SegmentAssets, names []string, rng *rand.Rand) (*SegmentGenerator, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("walkdog: no segment patterns")
	}

	g := &SegmentGenerator{assets: a, rng: rng}
	for _, name := range names {
		fn, ok := segmentPatterns[name]
		if !ok {
			return nil, fmt.Errorf("walkdog: unknown segment pattern %q (known: %v)", name, SegmentNames())
		}
		g.names = append(g.names, name)
		g.patterns = append(g.patterns, fn)
	}
	return g, nil
}

// Next lays out a randomly chosen segment at offsetX.
func (g *SegmentGenerator) Next(offsetX float64) []Obstacle {
	return g.patterns[g.rng.Intn(len(g.patterns))](g.assets, offsetX)
}

// Names returns the patterns this generator chooses from.
func (g *SegmentGenerator) Names() []string {
	return g.names
}
