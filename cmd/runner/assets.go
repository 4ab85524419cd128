package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/engine"
	"github.com/vovakirdan/tui-runner/internal/games/walkdog"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Validate and list the embedded assets",
	Long: `Checks that the embedded asset pack has every sprite frame the game
draws and lists its sprite sheets, images and sounds.`,
	Args: cobra.NoArgs,
	RunE: runAssets,
}

func runAssets(cmd *cobra.Command, args []string) error {
	a, err := assets.LoadEmbedded()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printSheet(out, "rhb", a.Runner)
	printSheet(out, "tiles", a.Tiles)

	fmt.Fprintln(out, "Images:")
	for _, img := range []*engine.ImageHandle{a.Stone, a.Background} {
		glyph := "outline"
		if img.Glyph != 0 {
			glyph = string(img.Glyph)
		}
		fmt.Fprintf(out, "  %-12s %4.0fx%-4.0f %s\n", img.Name, img.Width, img.Height, glyph)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Sounds:")
	for _, name := range audio.Names() {
		fmt.Fprintf(out, "  %s\n", name)
	}
	fmt.Fprintln(out)

	if err := assets.Validate(a.Runner, walkdog.RequiredFrames()); err != nil {
		return fmt.Errorf("runner sheet: %w", err)
	}
	if err := assets.Validate(a.Tiles, walkdog.PlatformTiles); err != nil {
		return fmt.Errorf("tiles sheet: %w", err)
	}

	fmt.Fprintln(out, "All required frames present.")
	return nil
}

// printSheet lists a sheet's animations with their frame counts. Frames
// named "Label (n).png" are grouped under Label.
func printSheet(w io.Writer, name string, sheet *engine.SpriteSheet) {
	counts := make(map[string]int)
	for _, frame := range assets.FrameNames(sheet) {
		label := frame
		if i := strings.Index(frame, " ("); i > 0 {
			label = frame[:i]
		}
		counts[label]++
	}

	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	fmt.Fprintf(w, "Sheet %s (%s):\n", name, sheet.Image().Name)
	for _, label := range labels {
		fmt.Fprintf(w, "  %-12s %d frames\n", label, counts[label])
	}
	fmt.Fprintln(w)
}
