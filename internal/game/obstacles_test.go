package game

import (
	"testing"

	"github.com/vovakirdan/yafb/internal/config"
)

func TestGapHalfSizeBound(t *testing.T) {
	cfg := config.Default()

	for seed := int64(0); seed < 5; seed++ {
		gen := NewGenerator(seed, cfg)
		for score := 0; score <= 500; score += 7 {
			o := gen.Spawn(100, score)
			if o.GapHalfSize < 3 {
				t.Fatalf("Spawn(score=%d) half size %d < 3", score, o.GapHalfSize)
			}
			if o.GapCenter < 10 || o.GapCenter >= 40 {
				t.Fatalf("Spawn gap center %d outside [10, 40)", o.GapCenter)
			}

			o.X = 0
			if !gen.RecycleIfPassed(&o, 100, score, 200) {
				t.Fatalf("obstacle behind the player should recycle")
			}
			if o.GapHalfSize < 3 {
				t.Fatalf("Recycle(score=%d) half size %d < 3", score, o.GapHalfSize)
			}
			if o.GapCenter < 10 || o.GapCenter >= 40 {
				t.Fatalf("Recycle gap center %d outside [10, 40)", o.GapCenter)
			}
		}
	}
}

func TestSpawnHalfSizeAtRunStart(t *testing.T) {
	gen := NewGenerator(1, config.Default())
	o := gen.Spawn(80, 0)
	if o.X != 80 {
		t.Errorf("Spawn X = %d, expected 80", o.X)
	}
	if o.GapHalfSize != 10 {
		t.Errorf("Spawn half size at score 0 = %d, expected 10", o.GapHalfSize)
	}
}

func TestRecycleChainsOffLastObstacle(t *testing.T) {
	gen := NewGenerator(7, config.Default())

	tests := []struct {
		name  string
		x     int
		lastX int
	}{
		{"far behind", -300, 400},
		{"just passed", 95, 400},
		{"recycled out of order", 10, 1000},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := Obstacle{X: tc.x, GapCenter: 20, GapHalfSize: 5}
			if !gen.RecycleIfPassed(&o, 100, 3, tc.lastX) {
				t.Fatal("expected a recycle")
			}
			if o.X != tc.lastX+80 {
				t.Errorf("X = %d, expected lastX+2*MinOffset = %d", o.X, tc.lastX+80)
			}
			if o.GapHalfSize != 7 {
				t.Errorf("half size at score 3 = %d, expected 7", o.GapHalfSize)
			}
		})
	}
}

func TestRecycleTriggerColumn(t *testing.T) {
	gen := NewGenerator(7, config.Default())

	// Triggers once X <= playerX - xOffset
	ahead := Obstacle{X: 96, GapCenter: 20, GapHalfSize: 5}
	if gen.RecycleIfPassed(&ahead, 100, 0, 300) {
		t.Error("obstacle at playerX-4 should not recycle")
	}
	if ahead.X != 96 {
		t.Errorf("untouched obstacle moved to %d", ahead.X)
	}

	edge := Obstacle{X: 95, GapCenter: 20, GapHalfSize: 5}
	if !gen.RecycleIfPassed(&edge, 100, 0, 300) {
		t.Error("obstacle at playerX-5 should recycle")
	}
}

func TestCollisionExactness(t *testing.T) {
	const xOffset = 5
	o := Obstacle{X: 50, GapCenter: 25, GapHalfSize: 5}
	trigger := o.X - xOffset

	tests := []struct {
		name string
		x, y int
		hit  bool
	}{
		{"center of gap", trigger, 25, false},
		{"top edge of gap", trigger, 20, false},
		{"bottom edge of gap", trigger, 30, false},
		{"below gap", trigger, 31, true},
		{"above gap", trigger, 19, true},
		{"one column early", trigger - 1, 31, false},
		{"one column late", trigger + 1, 31, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := o.Hits(tc.x, tc.y, xOffset); got != tc.hit {
				t.Errorf("Hits(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.hit)
			}
		})
	}
}

func TestGeneratorDeterminism(t *testing.T) {
	cfg := config.Default()
	a := NewGenerator(12345, cfg)
	b := NewGenerator(12345, cfg)

	for i := 0; i < 50; i++ {
		oa, ob := a.Spawn(i, i), b.Spawn(i, i)
		if oa != ob {
			t.Fatalf("spawn %d differs: %+v vs %+v", i, oa, ob)
		}
	}
}

func TestScreenX(t *testing.T) {
	o := Obstacle{X: 80}
	if got := o.ScreenX(5); got != 75 {
		t.Errorf("ScreenX(5) = %d, expected 75", got)
	}
}
