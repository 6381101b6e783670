package config

import "testing"

func newDefaultDifficulty() *Difficulty {
	cfg := Default()
	return NewDifficulty(cfg.Difficulty, cfg.Obstacles.MinGapHalfSize)
}

func TestSpawnSizeNarrowsWithScore(t *testing.T) {
	d := newDefaultDifficulty()

	tests := []struct {
		score, size int
	}{
		{0, 20},
		{9, 20},
		{10, 19},
		{100, 10},
		{150, 5},
		{10000, 5},
	}
	for _, tc := range tests {
		if got := d.SpawnSize(tc.score); got != tc.size {
			t.Errorf("SpawnSize(%d) = %d, expected %d", tc.score, got, tc.size)
		}
	}
}

func TestRecycleSizeIsDoubledFloor(t *testing.T) {
	d := newDefaultDifficulty()

	tests := []struct {
		score, size int
	}{
		{0, 20},
		{1, 18},
		{7, 6},
		{8, 6},
		{500, 6},
	}
	for _, tc := range tests {
		if got := d.RecycleSize(tc.score); got != tc.size {
			t.Errorf("RecycleSize(%d) = %d, expected %d", tc.score, got, tc.size)
		}
	}
}

func TestHalfSizeNeverBelowMinimum(t *testing.T) {
	d := newDefaultDifficulty()

	for score := 0; score <= 1000; score++ {
		if h := d.SpawnHalfSize(score); h < 3 {
			t.Fatalf("SpawnHalfSize(%d) = %d, below minimum", score, h)
		}
		if h := d.RecycleHalfSize(score); h < 3 {
			t.Fatalf("RecycleHalfSize(%d) = %d, below minimum", score, h)
		}
	}

	if d.SpawnHalfSize(0) != 10 {
		t.Errorf("SpawnHalfSize(0) = %d, expected 10", d.SpawnHalfSize(0))
	}
	if d.RecycleHalfSize(2) != 8 {
		t.Errorf("RecycleHalfSize(2) = %d, expected 8", d.RecycleHalfSize(2))
	}
}

func TestZeroDivisorDoesNotPanic(t *testing.T) {
	d := NewDifficulty(DifficultyConfig{SpawnBaseSize: 20, SpawnMinSize: 5}, 0)
	if got := d.SpawnSize(3); got != 17 {
		t.Errorf("SpawnSize(3) with zero divisor = %d, expected 17", got)
	}
	if got := d.HalfSize(0); got != 1 {
		t.Errorf("HalfSize(0) = %d, expected floor of 1", got)
	}
}
