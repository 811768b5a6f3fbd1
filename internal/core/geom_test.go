package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 2, 19, 10)

	if r.Right() != 21 {
		t.Errorf("Right() = %d, expected 21", r.Right())
	}
	if r.Bottom() != 12 {
		t.Errorf("Bottom() = %d, expected 12", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{31, 0, 63, 31},
		{-4, 0, 63, 0},
		{64, 0, 63, 63},
		{0, 0, 63, 0},
		{63, 0, 63, 63},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(2.5, 0, 8); got != 2.5 {
		t.Errorf("ClampF(2.5, 0, 8) = %v, expected 2.5", got)
	}
	if got := ClampF(-0.25, 0, 8); got != 0 {
		t.Errorf("ClampF(-0.25, 0, 8) = %v, expected 0", got)
	}
	if got := ClampF(9.75, 0, 8); got != 8 {
		t.Errorf("ClampF(9.75, 0, 8) = %v, expected 8", got)
	}
}

func TestSnapStep(t *testing.T) {
	tests := []struct {
		name                      string
		v, min, max, step, expect float64
	}{
		{"on grid", 10, 0, 360, 5, 10},
		{"rounds down", 12, 0, 360, 5, 10},
		{"rounds up", 13, 0, 360, 5, 15},
		{"quarter steps", 1.3, 0, 8, 0.25, 1.25},
		{"clamped high", 9, 0, 8, 0.25, 8},
		{"clamped low", -3, 0, 8, 0.25, 0},
		{"max off grid", 100, 0, 100, 30, 90},
		{"zero step clamps only", 4.2, 0, 5, 0, 4.2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := SnapStep(tc.v, tc.min, tc.max, tc.step)
			if result != tc.expect {
				t.Errorf("SnapStep(%v, %v, %v, %v) = %v, expected %v", tc.v, tc.min, tc.max, tc.step, result, tc.expect)
			}
		})
	}
}

func TestAbs(t *testing.T) {
	for _, tc := range []struct{ in, expected int }{{7, 7}, {-7, 7}, {0, 0}} {
		if got := Abs(tc.in); got != tc.expected {
			t.Errorf("Abs(%d) = %d, expected %d", tc.in, got, tc.expected)
		}
	}
}
