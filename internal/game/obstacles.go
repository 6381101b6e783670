package game

import (
	"math/rand"

	"github.com/vovakirdan/yafb/internal/config"
)

// ObstacleCount is the size of the recycled obstacle pool.
const ObstacleCount = 3

// Obstacle is a vertical wall with a passable gap.
type Obstacle struct {
	X           int // World column
	GapCenter   int // Screen row at the middle of the gap
	GapHalfSize int // Rows above and below GapCenter that are open
}

// GapTop returns the first open row.
func (o Obstacle) GapTop() int {
	return o.GapCenter - o.GapHalfSize
}

// GapBottom returns the last open row.
func (o Obstacle) GapBottom() int {
	return o.GapCenter + o.GapHalfSize
}

// InGap reports whether row y is inside the gap (bounds inclusive).
func (o Obstacle) InGap(y int) bool {
	return y >= o.GapTop() && y <= o.GapBottom()
}

// ScreenX converts the world column to a screen column for a player at playerX.
func (o Obstacle) ScreenX(playerX int) int {
	return o.X - playerX
}

// Hits reports whether a player at (playerX, playerY) collides with the
// obstacle. Collision is only tested on the exact step the player's column
// lines up with the obstacle's trigger column.
func (o Obstacle) Hits(playerX, playerY, xOffset int) bool {
	return playerX == o.X-xOffset && !o.InGap(playerY)
}

// Generator places obstacles. It owns the only random source used for
// obstacle placement, so a seed fully determines a run.
type Generator struct {
	rng        *rand.Rand
	cfg        config.ObstacleConfig
	xOffset    int
	difficulty *config.Difficulty
}

// NewGenerator creates a generator seeded with seed.
func NewGenerator(seed int64, tuning config.Tuning) *Generator {
	return &Generator{
		rng:        rand.New(rand.NewSource(seed)),
		cfg:        tuning.Obstacles,
		xOffset:    tuning.Player.XOffset,
		difficulty: config.NewDifficulty(tuning.Difficulty, tuning.Obstacles.MinGapHalfSize),
	}
}

// Spawn creates an obstacle at world column x for the given score.
func (g *Generator) Spawn(x, score int) Obstacle {
	return Obstacle{
		X:           x,
		GapCenter:   g.gapCenter(),
		GapHalfSize: g.difficulty.SpawnHalfSize(score),
	}
}

// RecycleIfPassed moves an obstacle the player has left behind to
// 2*MinOffset past lastX, the most recently placed obstacle, and draws a new
// gap. It reports whether the obstacle was moved.
func (g *Generator) RecycleIfPassed(o *Obstacle, playerX, score, lastX int) bool {
	if o.X > playerX-g.xOffset {
		return false
	}
	o.X = lastX + 2*g.cfg.MinOffset
	o.GapCenter = g.gapCenter()
	o.GapHalfSize = g.difficulty.RecycleHalfSize(score)
	return true
}

// gapCenter draws a row uniformly from [GapCenterMin, GapCenterMax).
func (g *Generator) gapCenter() int {
	return g.cfg.GapCenterMin + g.rng.Intn(g.cfg.GapCenterMax-g.cfg.GapCenterMin)
}
