package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 5, 4, 2)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 10, 5, true},
		{"bottom-right inside", 13, 6, true},
		{"right edge excluded", 14, 5, false},
		{"bottom edge excluded", 10, 7, false},
		{"left of rect", 9, 5, false},
		{"above rect", 10, 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(3, 4, 10, 6)
	if r.Right() != 13 {
		t.Errorf("Right() = %d, expected 13", r.Right())
	}
	if r.Bottom() != 10 {
		t.Errorf("Bottom() = %d, expected 10", r.Bottom())
	}
	if r.Empty() {
		t.Error("Empty() = true for a 10x6 rect")
	}
	if !NewRect(0, 0, 0, 5).Empty() {
		t.Error("Empty() = false for a zero-width rect")
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		val, expected float64
	}{
		{0.5, 0.5},
		{-0.1, 0},
		{1.7, 1},
		{0, 0},
		{1, 1},
	}

	for _, tt := range tests {
		if got := Clamp01(tt.val); got != tt.expected {
			t.Errorf("Clamp01(%v) = %v, expected %v", tt.val, got, tt.expected)
		}
	}
}
