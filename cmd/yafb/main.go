// yafb is Yet Another Flappy Bird, a side-scrolling arcade game for the terminal.
//
// Usage:
//
//	yafb                 - Play (same as yafb play)
//	yafb play            - Play the game
//	yafb scores          - Show the high-score table
//	yafb config          - Print the effective tuning as YAML
//	yafb stores          - List score store backends
//
// Global flags:
//
//	--config <path>  - Tuning YAML (default: search ~/.yafb, ./configs, embedded)
//	--fps <rate>     - Host tick rate (default: 60)
//	--seed <value>   - RNG seed for reproducible obstacles
//	--store <name>   - Score store backend: text or sqlite (default: text)
//	--scores <path>  - Score store path (default: backend specific)
//	--log <path>     - Log file while playing (default: ~/.yafb/yafb.log)
//	--verbose        - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import storage to register the score backends
	_ "github.com/vovakirdan/yafb/internal/storage"
)

var (
	// Global flags
	flagConfig     string
	flagFPS        int
	flagSeed       int64
	flagStore      string
	flagScoresPath string
	flagLogPath    string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "yafb",
	Short: "Yet Another Flappy Bird - in your terminal",
	Long: `Yet Another Flappy Bird is a side-scrolling arcade game: flap through
the gaps, don't touch the walls, and don't fall off the screen.

Available commands:
  play     - Play the game (default)
  scores   - View the high-score table
  config   - Print the effective tuning
  stores   - List score store backends

Examples:
  yafb
  yafb play --seed 42
  yafb scores
  yafb play --store sqlite --scores ./scores.db
  yafb config > ~/.yafb/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Host tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "text", "Score store backend (text, sqlite)")
	rootCmd.PersistentFlags().StringVar(&flagScoresPath, "scores", "", "Path to the score store (default depends on --store)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.yafb/yafb.log", "Log file used while playing")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(storesCmd)
}
