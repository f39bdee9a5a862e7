// Package geometry computes the static shapes of the favorite button from
// its bounding box: the icon frame, the frame the radiating lines live in,
// their rotations, and the paths for the circle, its mask, and the lines.
package geometry

import "math"

// Point is a position in widget coordinates.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. Negative sizes are treated as zero.
type Rect struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
}

// R is shorthand for building a Rect.
func R(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Mid returns the center point.
func (r Rect) Mid() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains checks if a point is within the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// normalized clamps negative sizes to zero.
func (r Rect) normalized() Rect {
	if r.Width < 0 {
		r.Width = 0
	}
	if r.Height < 0 {
		r.Height = 0
	}
	return r
}

// Rotate rotates p about center by angle radians. Positive angles turn
// clockwise on a y-down surface.
func Rotate(p, center Point, angle float64) Point {
	sin, cos := math.Sincos(angle)
	dx, dy := p.X-center.X, p.Y-center.Y
	return Point{
		X: center.X + dx*cos - dy*sin,
		Y: center.Y + dx*sin + dy*cos,
	}
}
