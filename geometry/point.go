// Package geometry contains the coordinate-space math for shapes: local/world
// transforms under rotation and flip, point containment, resize-handle layout,
// and the resize arithmetic itself. It is independent of event and UI state.
package geometry

import "math"

// Point represents a 2D coordinate in canvas space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for constructing a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance calculates the Euclidean distance to another point.
func (p Point) Distance(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// RotateAbout rotates p by angle radians around the center c.
func (p Point) RotateAbout(c Point, angle float64) Point {
	sin, cos := math.Sincos(angle)
	dx := p.X - c.X
	dy := p.Y - c.Y
	return Point{
		X: c.X + dx*cos - dy*sin,
		Y: c.Y + dx*sin + dy*cos,
	}
}
