// Package config provides YAML-based tuning for the game and the
// difficulty curve applied to obstacle gaps.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode"
	"unicode/utf8"
)

// Tuning contains every numeric knob of the simulation.
type Tuning struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Player     PlayerConfig     `yaml:"player"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Timing     TimingConfig     `yaml:"timing"`
	Scores     ScoresConfig     `yaml:"scores"`
}

// ScreenConfig defines the play field size in cells.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the player's start position and name rules.
type PlayerConfig struct {
	StartX        int    `yaml:"start_x"`
	StartY        int    `yaml:"start_y"`
	XOffset       int    `yaml:"x_offset"` // Screen column of the player
	DefaultName   string `yaml:"default_name"`
	MaxNameLength int    `yaml:"max_name_length"`
}

// PhysicsConfig defines the discrete gravity model.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	FlapImpulse  float64 `yaml:"flap_impulse"`
}

// ObstacleConfig defines obstacle placement.
type ObstacleConfig struct {
	MinOffset      int `yaml:"min_offset"`
	GapCenterMin   int `yaml:"gap_center_min"` // Inclusive
	GapCenterMax   int `yaml:"gap_center_max"` // Exclusive
	MinGapHalfSize int `yaml:"min_gap_half_size"`
}

// DifficultyConfig defines how gap sizes shrink as the score grows.
type DifficultyConfig struct {
	SpawnBaseSize     int `yaml:"spawn_base_size"`
	SpawnMinSize      int `yaml:"spawn_min_size"`
	SpawnScoreDivisor int `yaml:"spawn_score_divisor"`
	RecycleBaseSize   int `yaml:"recycle_base_size"`
	RecycleMinSize    int `yaml:"recycle_min_size"`
}

// TimingConfig defines the fixed simulation step.
type TimingConfig struct {
	TickMS int `yaml:"tick_ms"`
}

// ScoresConfig defines the high-score table.
type ScoresConfig struct {
	TableSize int `yaml:"table_size"`
}

// Default returns the built-in tuning. It matches defaults/yafb.yaml.
func Default() Tuning {
	return Tuning{
		Screen: ScreenConfig{Width: 80, Height: 50},
		Player: PlayerConfig{
			StartX:        5,
			StartY:        25,
			XOffset:       5,
			DefaultName:   "Player1",
			MaxNameLength: 12,
		},
		Physics: PhysicsConfig{
			Gravity:      1.0,
			MaxFallSpeed: 5.0,
			FlapImpulse:  -5.0,
		},
		Obstacles: ObstacleConfig{
			MinOffset:      40,
			GapCenterMin:   10,
			GapCenterMax:   40,
			MinGapHalfSize: 3,
		},
		Difficulty: DifficultyConfig{
			SpawnBaseSize:     20,
			SpawnMinSize:      5,
			SpawnScoreDivisor: 10,
			RecycleBaseSize:   10,
			RecycleMinSize:    3,
		},
		Timing: TimingConfig{TickMS: 75},
		Scores: ScoresConfig{TableSize: 5},
	}
}

// TickDuration returns the simulation step as a duration.
func (t Tuning) TickDuration() time.Duration {
	return time.Duration(t.Timing.TickMS) * time.Millisecond
}

// Validate rejects tunings the simulation cannot run with.
func (t Tuning) Validate() error {
	var errs []error

	if t.Screen.Width <= 0 || t.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen must be positive, got %dx%d", t.Screen.Width, t.Screen.Height))
	}
	if t.Player.MaxNameLength <= 0 {
		errs = append(errs, fmt.Errorf("player.max_name_length must be positive, got %d", t.Player.MaxNameLength))
	}
	if err := validName(t.Player.DefaultName, t.Player.MaxNameLength); err != nil {
		errs = append(errs, fmt.Errorf("player.default_name: %w", err))
	}
	if t.Physics.FlapImpulse >= 0 {
		errs = append(errs, fmt.Errorf("physics.flap_impulse must be negative, got %v", t.Physics.FlapImpulse))
	}
	if t.Physics.MaxFallSpeed <= 0 {
		errs = append(errs, fmt.Errorf("physics.max_fall_speed must be positive, got %v", t.Physics.MaxFallSpeed))
	}
	if t.Obstacles.MinOffset <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.min_offset must be positive, got %d", t.Obstacles.MinOffset))
	}
	if t.Obstacles.GapCenterMax <= t.Obstacles.GapCenterMin {
		errs = append(errs, fmt.Errorf("obstacles gap center range [%d, %d) is empty",
			t.Obstacles.GapCenterMin, t.Obstacles.GapCenterMax))
	}
	if t.Obstacles.MinGapHalfSize <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.min_gap_half_size must be positive, got %d", t.Obstacles.MinGapHalfSize))
	}
	if t.Difficulty.SpawnScoreDivisor <= 0 {
		errs = append(errs, fmt.Errorf("difficulty.spawn_score_divisor must be positive, got %d", t.Difficulty.SpawnScoreDivisor))
	}
	if t.Timing.TickMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_ms must be positive, got %d", t.Timing.TickMS))
	}
	if t.Scores.TableSize <= 0 {
		errs = append(errs, fmt.Errorf("scores.table_size must be positive, got %d", t.Scores.TableSize))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid tuning: %w", errors.Join(errs...))
	}
	return nil
}

// validName applies the rule names typed in game follow: letters and digits
// only, at most maxLen runes. Score files separate fields by whitespace.
func validName(name string, maxLen int) error {
	if name == "" {
		return errors.New("must not be empty")
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return fmt.Errorf("%q may only contain letters and digits", name)
		}
	}
	if maxLen > 0 && utf8.RuneCountInString(name) > maxLen {
		return fmt.Errorf("%q is longer than %d runes", name, maxLen)
	}
	return nil
}
