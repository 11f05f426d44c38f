// Package core provides fundamental types and utilities for the arcade.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned bounding box in world units.
// World units are pixels of the fixed playfield; the host projects them
// onto whatever surface it draws to.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height, never negative
}

// NewRect creates a new rectangle with the given position and dimensions.
// Negative sizes are clamped to zero.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: max(w, 0), H: max(h, 0)}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps reports whether a and b intersect on both axes.
// Edges that merely touch do not count.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// InsetY shrinks the rectangle vertically by d on both the top and bottom edge.
func (r Rect) InsetY(d float64) Rect {
	return NewRect(r.X, r.Y+d, r.W, r.H-2*d)
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

// Wrap returns i modulo n, always in [0, n).
func Wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}
