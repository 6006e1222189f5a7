package canvas

import "math"

// Point represents a coordinate in either screen or page space.
type Point struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of two points.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the component-wise difference of two points.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Distance returns the Euclidean distance between two points.
// Euclidean distance is used for drag thresholds because thresholds are
// specified in pixels, not cells.
func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Equal returns true if two points are exactly equal.
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}
