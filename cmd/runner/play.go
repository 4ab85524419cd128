package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-runner/internal/audio"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start Walk the Dog in the terminal.

Controls:
  Right/L    - Start running
  Space/Up   - Jump
  Down/J     - Slide
  P/Esc      - Pause
  R          - New game (after game over)
  Q/Ctrl+C   - Quit

Examples:
  runner play
  runner play --seed 42
  runner play --mute --fps 30
  runner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("play needs an interactive terminal; try 'runner simulate'")
	}

	logFile, err := openLog(flagLogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := newLogger(logFile, flagDebug)

	seed := resolveSeed(flagSeed)
	logger.Info("starting", "seed", seed, "fps", flagFPS)

	// Audio comes up before the game so the opening music can start.
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := audio.New(cfg.Audio, flagMute, logger)
	if c, ok := out.(audio.Closer); ok {
		defer c.Close()
	}

	game, err := newGame(cfg, out, logger, seed)
	if err != nil {
		return err
	}

	// Lay out for the real terminal before the first resize message arrives.
	width, height := 0, 0
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	err = tui.Run(game, tui.Options{
		ScreenW:       width,
		ScreenH:       height,
		TickRate:      flagFPS,
		FrameRate:     flagFPS,
		CanvasW:       cfg.Canvas.Width,
		CanvasH:       cfg.Canvas.Height,
		ShowFrameRate: cfg.Debug.FrameRate,
	}, logger)
	if err != nil {
		logger.Error("game stopped", "err", err)
		return err
	}

	logger.Info("quit", "distance", game.World().Distance())
	return nil
}
