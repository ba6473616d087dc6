// Package geom holds the playfield geometry used for hit-testing.
package geom

import "math"

// Point is a position on the playfield in logical units.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Contains reports whether point lies strictly inside the circle at center
// with the given radius. A point on the boundary is outside.
func Contains(center Point, radius float64, point Point) bool {
	return center.Dist(point) < radius
}

// Bounds is an axis-aligned playfield rectangle anchored at the origin.
type Bounds struct {
	W, H float64
}

// Center returns the geometric center of b.
func (b Bounds) Center() Point {
	return Point{X: b.W / 2, Y: b.H / 2}
}
