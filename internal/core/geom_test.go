package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"last cell", 29, 24, true},
		{"right edge is exclusive", 30, 15, false},
		{"bottom edge is exclusive", 15, 25, false},
		{"left of", 9, 15, false},
		{"above", 15, 9, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectInner(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		expected Rect
	}{
		{"board frame", NewRect(4, 2, 24, 13), NewRect(5, 3, 22, 11)},
		{"frame only", NewRect(0, 0, 2, 2), NewRect(1, 1, 0, 0)},
		{"degenerate", NewRect(3, 3, 1, 0), NewRect(4, 4, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Inner(); got != tc.expected {
				t.Errorf("Inner() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 40, 12)

	got := outer.Centered(14, 5)
	if got != NewRect(13, 3, 14, 5) {
		t.Errorf("Centered(14, 5) = %+v", got)
	}

	// Too big to fit: pinned to the top-left of the outer rect
	got = NewRect(2, 1, 10, 4).Centered(20, 8)
	if got.X != 2 || got.Y != 1 || got.W != 20 || got.H != 8 {
		t.Errorf("oversized Centered = %+v", got)
	}
}
