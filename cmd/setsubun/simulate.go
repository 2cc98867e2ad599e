package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/setsubun/internal/platform/headless"
)

var (
	flagRounds int
	flagChase  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play rounds without a display",
	Long: `Runs whole rounds as fast as possible and prints each score.
The pointer rests in the top-left corner unless --chase is given, in which case
it sits on the centre of the safe zone.

Examples:
  setsubun simulate
  setsubun simulate --rounds 20 --seed 7
  setsubun simulate --difficulty hard --chase`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVarP(&flagRounds, "rounds", "n", 1, "Number of rounds to play")
	simulateCmd.Flags().BoolVar(&flagChase, "chase", false, "Keep the bean in the safe zone")
	simulateCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simulateCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, loader, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	opts := headless.Options{
		Config: cfg,
		Loader: loader,
		Seed:   flagSeed,
		Rounds: flagRounds,
		Logger: logger,
	}
	if flagChase {
		cx, cy := cfg.Arena.Width/2, cfg.Arena.Height/2
		opts.Pointer = func(int) (int, int) { return cx, cy }
	}

	results, err := headless.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	total := 0
	fmt.Printf("  %-5s  %5s  %5s\n", "Round", "Score", "Ticks")
	fmt.Printf("  %-5s  %5s  %5s\n", "-----", "-----", "-----")
	for _, r := range results {
		fmt.Printf("  %-5d  %5d  %5d\n", r.Round, r.Score, r.Ticks)
		total += r.Score
	}
	fmt.Println()
	fmt.Printf("Average score: %.2f\n", float64(total)/float64(len(results)))
	return nil
}
