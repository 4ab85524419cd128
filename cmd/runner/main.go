// runner is a terminal side-scroller: run right, jump stones, land on platforms.
//
// Usage:
//
//	runner play              - Play in the terminal
//	runner simulate          - Run a scripted game headlessly and print the result
//	runner assets            - Check and list the embedded asset pack
//
// Global flags:
//
//	--fps <rate>       - Logic tick rate (default: 60)
//	--seed <value>     - RNG seed for obstacle patterns (0 = time-based)
//	--config <path>    - Custom runner config YAML
//	--log-file <path>  - Log destination (default: ~/.arcade/runner.log)
//	--debug            - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Walk the Dog - a side-scrolling runner in your terminal",
	Long: `Walk the Dog is an endless runner played in the terminal.
Press the right arrow to start running, space to jump over stones and
down to slide. Land on platforms from above; hitting one from the side
ends the run.

Available commands:
  play      - Play the game
  simulate  - Run a scripted game without a terminal
  assets    - Validate and list the embedded assets

Examples:
  runner play
  runner play --seed 42 --mute
  runner simulate --ticks 5000 --jump-every 45
  runner assets`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Logic tick rate (steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.arcade/runner.log", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(assetsCmd)
}
