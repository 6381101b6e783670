package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(5, 5, 10, 10)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 10, 10, true},
		{"top-left corner", 5, 5, true},
		{"right edge (exclusive)", 15, 10, false},
		{"bottom edge (exclusive)", 10, 15, false},
		{"left of rect", 4, 10, false},
		{"above rect", 10, 4, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 4, 5)
	if r.Right() != 6 {
		t.Errorf("Right() = %d, expected 6", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom() = %d, expected 8", r.Bottom())
	}
}
