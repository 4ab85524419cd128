package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/assets"
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/engine"
	"github.com/vovakirdan/tui-runner/internal/games/walkdog"
)

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// openLog opens the log file for appending, creating parent directories.
// The terminal belongs to the game, so logs never go to stdout.
func openLog(path string) (io.WriteCloser, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory %s: %w", dir, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

func newLogger(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// resolveSeed turns the --seed flag into the seed actually used.
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// loadConfig loads the runner configuration named by --config, falling back
// to the usual search path.
func loadConfig() (config.RunnerConfig, error) {
	return config.Load(flagConfig)
}

// newGame loads the assets and builds the game from an already loaded
// configuration.
func newGame(cfg config.RunnerConfig, audio engine.Audio, logger *log.Logger, seed int64) (*walkdog.Game, error) {
	a, err := assets.LoadEmbedded()
	if err != nil {
		return nil, err
	}
	return walkdog.New(a, cfg, audio, logger, seed)
}
