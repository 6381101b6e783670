package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/yafb/internal/config"
	"github.com/vovakirdan/yafb/internal/core"
	"github.com/vovakirdan/yafb/internal/game"
	"github.com/vovakirdan/yafb/internal/platform/tui"
	"github.com/vovakirdan/yafb/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game at the main menu.

Controls:
  S          - Start a run
  H          - High scores
  Space      - Flap
  E          - Edit your name after a run
  Enter      - Save the score / finish editing
  M          - Main menu
  R          - Restart
  Q          - Quit
  Ctrl+S     - Save a screenshot to ~/.yafb/screenshots
  Ctrl+C     - Exit immediately

Examples:
  yafb play
  yafb play --seed 42
  yafb play --config ./my-tuning.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	tuning, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := openLogFile(flagLogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logger, closeLog = log.New(io.Discard), func() {}
	}
	defer closeLog()

	// Use time-based seed if not specified
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := core.RuntimeConfig{
		ScreenW:  tuning.Screen.Width,
		ScreenH:  tuning.Screen.Height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	// The playfield has a fixed size; warn early if it will not fit.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < cfg.ScreenW || h < cfg.ScreenH+1 {
			logger.Warn("terminal smaller than playfield", "width", w, "height", h,
				"need_width", cfg.ScreenW, "need_height", cfg.ScreenH+1)
			fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the game needs %dx%d.\n",
				w, h, cfg.ScreenW, cfg.ScreenH+1)
		}
	}

	// Open score storage
	var scores game.ScoreStore
	store, err := registry.Open(flagStore, flagScoresPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open score store: %v\n", err)
		logger.Warn("playing without a score store", "store", flagStore, "error", err)
		// Continue without storage - scores stay in memory
		store = nil
	} else {
		scores = store
	}

	g := game.New(game.Options{
		Tuning: tuning,
		Seed:   seed,
		Store:  scores,
		Logger: logger,
	})
	logger.Info("game started", "seed", seed, "store", flagStore, "fps", flagFPS)

	runErr := tui.Run(g, cfg, logger)

	// Close store before potential exit
	if store != nil {
		if err := store.Close(); err != nil {
			logger.Warn("could not close score store", "error", err)
		}
	}

	if runErr != nil {
		logger.Error("game loop failed", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	logger.Info("game exited")
}
