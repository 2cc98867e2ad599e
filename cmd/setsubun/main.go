// setsubun is a bean-throwing arcade game: steer a bean with the pointer and
// herd the demons into the safe zone.
//
// Usage:
//
//	setsubun                  - Play in the terminal
//	setsubun play --backend desktop
//	setsubun simulate -n 10   - Play rounds headless and print the scores
//	setsubun config           - Print the default configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible rounds
//	--log <path>    - Write logs to a file
//	--verbose       - Log debug messages
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagLogPath string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "setsubun",
	Short: "Setsubun - herd the demons into the safe circle",
	Long: `Setsubun is a small arcade game. Demons wander the arena and bounce off
its walls; the bean follows your pointer and scares away any demon it touches.
The score is how many demons are inside the safe circle; the one that counts
is the score when the countdown runs out and the round ends.

Available commands:
  play      - Play a round (default)
  simulate  - Play rounds without a display
  config    - Print the default configuration

Examples:
  setsubun
  setsubun play --backend desktop --difficulty hard
  setsubun simulate --rounds 20 --seed 7`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log debug messages")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns a logger writing to the --log file, or to fallback when
// no file is given. The returned closer must be called on exit.
func newLogger(fallback io.Writer) (*log.Logger, io.Closer, error) {
	var (
		w      = fallback
		closer io.Closer = io.NopCloser(nil)
	)
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "setsubun",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}
