package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/yafb/internal/config"
	"github.com/vovakirdan/yafb/internal/game"
	"github.com/vovakirdan/yafb/internal/platform/tui"
	"github.com/vovakirdan/yafb/internal/registry"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high-score table",
	Long: `Display the persisted high-score table.

Examples:
  yafb scores
  yafb scores --store sqlite`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr)

	tuning, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := registry.Open(flagStore, flagScoresPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening score store: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// The ledger applies the same ordering and size limit as the game.
	ledger := game.NewLedger(store, tuning.Scores.TableSize, logger)

	source := fmt.Sprintf("%s store: %s", flagStore, storePath())
	fmt.Print(tui.ScoreTable(ledger.Entries(), ledger.Capacity(), source))
}

// storePath returns the path the selected store reads from.
func storePath() string {
	if flagScoresPath != "" {
		return flagScoresPath
	}
	for _, b := range registry.List() {
		if b.Name == flagStore {
			return b.DefaultPath
		}
	}
	return ""
}
