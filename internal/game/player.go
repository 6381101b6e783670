package game

import "github.com/vovakirdan/yafb/internal/config"

// Player is the actor the user steers. X is its world column, Y its screen row.
type Player struct {
	X        int
	Y        int
	Velocity float64 // Cells per step, positive = down

	physics config.PhysicsConfig
}

// NewPlayer creates a player at rest at (x, y).
func NewPlayer(x, y int, physics config.PhysicsConfig) Player {
	return Player{X: x, Y: y, physics: physics}
}

// Reset moves the player to (x, y) and stops it.
func (p *Player) Reset(x, y int) {
	p.X = x
	p.Y = y
	p.Velocity = 0
}

// ApplyGravityAndAdvance runs one step of discrete physics: gravity up to the
// terminal fall speed, vertical move by the truncated velocity and one column
// of horizontal scroll. The top of the field stops the player; the bottom
// does not.
func (p *Player) ApplyGravityAndAdvance() {
	if p.Velocity < p.physics.MaxFallSpeed {
		p.Velocity = min(p.Velocity+p.physics.Gravity, p.physics.MaxFallSpeed)
	}
	p.Y += int(p.Velocity)
	p.X++
	if p.Y < 0 {
		p.Y = 0
		p.Velocity = 0
	}
}

// Flap sets the upward impulse. Repeated flaps do not stack.
func (p *Player) Flap() {
	p.Velocity = p.physics.FlapImpulse
}
