// Package core provides fundamental types shared by the programs and the
// platform layers: the screen buffer, small numeric helpers and the Display
// and Input collaborator interfaces. It has no external dependencies so game
// logic stays pure and testable.
package core

import "math"

// Rect is an axis-aligned block of screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// SnapStep moves v onto the nearest value min + k*step inside [min, max].
// A non-positive step only clamps.
func SnapStep(v, min, max, step float64) float64 {
	v = ClampF(v, min, max)
	if step <= 0 {
		return v
	}
	k := math.Round((v - min) / step)
	snapped := min + k*step
	if snapped > max {
		snapped -= step
	}
	return ClampF(snapped, min, max)
}
