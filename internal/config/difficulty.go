package config

// Difficulty turns the running score into obstacle gap sizes.
// Every size it returns is floored so a gap never collapses.
type Difficulty struct {
	cfg     DifficultyConfig
	minHalf int
}

// NewDifficulty creates a difficulty curve. minHalf is the smallest gap
// half-size any obstacle may have.
func NewDifficulty(cfg DifficultyConfig, minHalf int) *Difficulty {
	if minHalf < 1 {
		minHalf = 1
	}
	return &Difficulty{cfg: cfg, minHalf: minHalf}
}

// SpawnSize returns the gap size for an obstacle placed at run start.
func (d *Difficulty) SpawnSize(score int) int {
	divisor := d.cfg.SpawnScoreDivisor
	if divisor <= 0 {
		divisor = 1
	}
	return max(d.cfg.SpawnMinSize, d.cfg.SpawnBaseSize-score/divisor)
}

// RecycleSize returns the gap size for an obstacle moved further down the track.
func (d *Difficulty) RecycleSize(score int) int {
	return 2 * max(d.cfg.RecycleMinSize, d.cfg.RecycleBaseSize-score)
}

// HalfSize converts a gap size into a half-size, floored at the minimum.
func (d *Difficulty) HalfSize(size int) int {
	return max(d.minHalf, size/2)
}

// SpawnHalfSize is HalfSize(SpawnSize(score)).
func (d *Difficulty) SpawnHalfSize(score int) int {
	return d.HalfSize(d.SpawnSize(score))
}

// RecycleHalfSize is HalfSize(RecycleSize(score)).
func (d *Difficulty) RecycleHalfSize(score int) int {
	return d.HalfSize(d.RecycleSize(score))
}
