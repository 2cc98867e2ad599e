package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/setsubun/internal/assets"
	"github.com/vovakirdan/setsubun/internal/config"
	"github.com/vovakirdan/setsubun/internal/platform/desktop"
	"github.com/vovakirdan/setsubun/internal/platform/tui"
)

// ErrUnknownBackend is returned for an unsupported --backend value.
var ErrUnknownBackend = errors.New("unknown backend")

var (
	flagConfig     string
	flagDifficulty string
	flagBackend    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start playing. Move the pointer to steer the bean.

Controls:
  Mouse       - Move the bean
  Enter/Click - Play again after game over
  Q/Ctrl+C    - Quit

Backends:
  tui      - Play in the terminal (mouse support required)
  desktop  - Play in a window

Difficulty options:
  easy   - Longer countdown, fewer demons
  normal - Defaults
  hard   - Shorter countdown, more demons

Examples:
  setsubun play
  setsubun play --backend desktop
  setsubun play --difficulty hard
  setsubun play --config ./my-setsubun.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().StringVar(&flagBackend, "backend", "tui", "Where to play: tui, desktop")
}

// loadConfig reads the config file and applies the difficulty preset.
func loadConfig() (config.SetsubunConfig, assets.Loader, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, nil, err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return cfg, nil, err
	}
	config.ApplyPreset(&cfg, preset)

	loader, err := assets.NewLoader(cfg.Assets.Root)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, loader, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, loader, err := loadConfig()
	if err != nil {
		return err
	}

	switch flagBackend {
	case "tui":
		// Logging to the terminal would tear the screen.
		logger, closer, err := newLogger(io.Discard)
		if err != nil {
			return err
		}
		defer closer.Close()

		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}

		return tui.Run(cmd.Context(), tui.Options{
			Config:   cfg,
			Loader:   loader,
			TickRate: flagFPS,
			Seed:     flagSeed,
			Cols:     width,
			Rows:     height,
			Logger:   logger,
		})

	case "desktop":
		logger, closer, err := newLogger(os.Stderr)
		if err != nil {
			return err
		}
		defer closer.Close()

		return desktop.Run(cmd.Context(), desktop.Options{
			Config:   cfg,
			Loader:   loader,
			TickRate: flagFPS,
			Seed:     flagSeed,
			Logger:   logger,
		})

	default:
		return fmt.Errorf("%w %q (expected tui or desktop)", ErrUnknownBackend, flagBackend)
	}
}
