package core

import "testing"

func TestRectContains(t *testing.T) {
	// A 20x10 viewport whose top-left grid cell is (5, 3).
	view := NewRect(5, 3, 20, 10)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 5, 3, true},
		{"inside", 12, 7, true},
		{"last column", 24, 3, true},
		{"one past right edge", 25, 3, false},
		{"last row", 5, 12, true},
		{"one past bottom edge", 5, 13, false},
		{"left of viewport", 4, 7, false},
		{"above viewport", 12, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := view.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestRectEdgesAndCenter(t *testing.T) {
	r := NewRect(2, 4, 10, 6)

	if r.Right() != 12 {
		t.Errorf("Right() = %d, expected 12", r.Right())
	}
	if r.Bottom() != 10 {
		t.Errorf("Bottom() = %d, expected 10", r.Bottom())
	}
	if x, y := r.Center(); x != 7 || y != 7 {
		t.Errorf("Center() = (%d, %d), expected (7, 7)", x, y)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 0, 0},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.lo, tt.hi, got, tt.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %v, expected 1", got)
	}
	if got := ClampF(-0.2, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.2, 0, 1) = %v, expected 0", got)
	}
	if got := ClampF(0.3, 0, 1); got != 0.3 {
		t.Errorf("ClampF(0.3, 0, 1) = %v, expected 0.3", got)
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t, expected float64
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.1, 1},
		{10, 0, 0.5, 5},
	}

	for _, tt := range tests {
		if got := Lerp(tt.a, tt.b, tt.t); got != tt.expected {
			t.Errorf("Lerp(%v, %v, %v) = %v, expected %v", tt.a, tt.b, tt.t, got, tt.expected)
		}
	}
}

func TestIntHelpers(t *testing.T) {
	if Min(3, 7) != 3 || Max(3, 7) != 7 {
		t.Error("Min/Max returned wrong values")
	}
	if Abs(-4) != 4 || Abs(4) != 4 {
		t.Error("Abs returned wrong values")
	}
	if Sign(-9) != -1 || Sign(0) != 0 || Sign(2) != 1 {
		t.Error("Sign returned wrong values")
	}
}
