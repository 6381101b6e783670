// Package game implements the flappy simulation: fixed-step physics, the
// recycled obstacle stream, collision, the high-score ledger and the mode
// state machine that sequences them. It draws into a core.Screen and reads
// core.KeyEvent values; it never touches the terminal.
package game

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/yafb/internal/config"
	"github.com/vovakirdan/yafb/internal/core"
)

// Mode is the active screen of the state machine.
type Mode int

const (
	ModeMenu Mode = iota
	ModeHighScore
	ModePlaying
	ModeEdit
	ModeEnd
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "Menu"
	case ModeHighScore:
		return "HighScore"
	case ModePlaying:
		return "Playing"
	case ModeEdit:
		return "Edit"
	case ModeEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// AllModes lists every mode.
func AllModes() []Mode {
	return []Mode{ModeMenu, ModeHighScore, ModePlaying, ModeEdit, ModeEnd}
}

// StepResult is returned by Tick.
type StepResult struct {
	Mode    Mode    // Mode after the tick
	Score   int     // Running score after the tick
	Stepped bool    // Whether the simulation advanced one step
	Outcome Outcome // What the key event did
	Quit    bool    // The host should terminate
}

// Options configures a new Game.
type Options struct {
	Tuning config.Tuning
	Seed   int64
	Store  ScoreStore // Nil keeps scores in memory only
	Logger *log.Logger
}

// Game owns all simulation state. It is not safe for concurrent use.
type Game struct {
	tuning     config.Tuning
	mode       Mode
	playerName string
	score      int
	saved      bool   // Current run already written to the ledger
	savedRank  int    // Rank of the saved entry, -1 if it did not make the table
	savedName  string // Name the entry was saved under

	clock         Accumulator
	player        Player
	generator     *Generator
	obstacles     [ObstacleCount]Obstacle
	lastObstacleX int
	ledger        *Ledger

	logger *log.Logger
}

// New creates a game in menu mode and loads the high-score table.
func New(opts Options) *Game {
	t := opts.Tuning
	logger := orDiscard(opts.Logger)

	g := &Game{
		tuning:     t,
		mode:       ModeMenu,
		playerName: t.Player.DefaultName,
		clock:      NewAccumulator(t.TickDuration()),
		player:     NewPlayer(t.Player.StartX, t.Player.StartY, t.Physics),
		generator:  NewGenerator(opts.Seed, t),
		ledger:     NewLedger(opts.Store, t.Scores.TableSize, logger),
		logger:     logger,
	}
	g.reset()
	return g
}

// Tick advances the game by one host frame. delta is the real time since the
// previous call and ev the key pressed during it, if any.
func (g *Game) Tick(delta time.Duration, ev core.KeyEvent) StepResult {
	var res StepResult

	mode := g.mode
	if mode == ModePlaying {
		res.Stepped = g.advance(delta)
	}
	// A run that just ended does not see this tick's key.
	if g.mode == mode {
		res.Outcome = g.dispatch(ev)
	}

	res.Mode = g.mode
	res.Score = g.score
	res.Quit = res.Outcome == OutcomeQuit
	return res
}

// advance runs the Playing handler: at most one physics step, then
// collision and recycling per obstacle, then the bottom bound.
func (g *Game) advance(delta time.Duration) bool {
	if !g.clock.Advance(delta) {
		return false
	}

	g.player.ApplyGravityAndAdvance()

	for i := range g.obstacles {
		o := &g.obstacles[i]
		if o.Hits(g.player.X, g.player.Y, g.tuning.Player.XOffset) {
			g.endRun("collision")
			return true
		}
		if g.generator.RecycleIfPassed(o, g.player.X, g.score, g.lastObstacleX) {
			g.score++
			g.lastObstacleX = o.X
		}
	}

	if g.player.Y > g.tuning.Screen.Height {
		g.endRun("fell")
	}
	return true
}

func (g *Game) endRun(reason string) {
	g.mode = ModeEnd
	g.logger.Debug("run ended", "reason", reason, "score", g.score, "column", g.player.X)
}

// reset restores everything a run depends on.
func (g *Game) reset() {
	t := g.tuning
	g.player.Reset(t.Player.StartX, t.Player.StartY)
	for i := range g.obstacles {
		g.obstacles[i] = g.generator.Spawn(t.Screen.Width*(i+1), 0)
	}
	g.lastObstacleX = g.obstacles[len(g.obstacles)-1].X
	g.score = 0
	g.saved = false
	g.savedRank = -1
	g.savedName = ""
	g.clock.Reset()
}

// saveScore writes the finished run to the ledger once. Later calls in the
// same run only update the saved entry when the name has changed since.
func (g *Game) saveScore() {
	if g.score <= 0 {
		return
	}
	name := g.playerName
	if name == "" {
		name = g.tuning.Player.DefaultName
	}

	if g.saved {
		if name == g.savedName {
			return
		}
		g.savedName = name
		if g.savedRank < 0 {
			return
		}
		if err := g.ledger.Rename(g.savedRank, name); err != nil {
			g.logger.Warn("could not save high scores", "error", err)
			return
		}
		g.logger.Info("score renamed", "name", name, "rank", g.savedRank+1)
		return
	}

	rank, err := g.ledger.Record(core.ScoreEntry{Name: name, Score: g.score})
	g.saved = true
	g.savedRank = rank
	g.savedName = name
	if err != nil {
		g.logger.Warn("could not save high scores", "error", err)
		return
	}
	g.logger.Info("score saved", "name", name, "score", g.score, "rank", rank+1)
}

// Mode returns the active mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Score returns the running score.
func (g *Game) Score() int {
	return g.score
}

// PlayerName returns the name used when saving.
func (g *Game) PlayerName() string {
	return g.playerName
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// Obstacles returns a copy of the obstacle pool.
func (g *Game) Obstacles() [ObstacleCount]Obstacle {
	return g.obstacles
}

// LastObstacleX returns the world column of the most recently placed obstacle.
func (g *Game) LastObstacleX() int {
	return g.lastObstacleX
}

// HighScores returns the high-score table, highest first.
func (g *Game) HighScores() []core.ScoreEntry {
	return g.ledger.Entries()
}

// Saved reports whether the current run has been written to the table.
func (g *Game) Saved() bool {
	return g.saved
}

// Tuning returns the tuning the game runs with.
func (g *Game) Tuning() config.Tuning {
	return g.tuning
}
