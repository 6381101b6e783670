package core

// RuntimeConfig contains host facts passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Host frames per second (render/input rate, not simulation rate)
	Seed     int64 // RNG seed for deterministic obstacle generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  50,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// ScoreEntry is one row of the high-score table.
type ScoreEntry struct {
	Name  string
	Score int
}
