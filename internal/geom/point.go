// Package geom provides the pixel-space geometry primitives shared by the
// vision pipeline and the trajectory tracker. Coordinates follow the image
// convention: origin at the top-left corner, Y increasing downward.
package geom

import (
	"image"
	"math"
)

// Point is a real-valued position in pixel space.
type Point struct {
	X float64
	Y float64
}

// NewPoint returns a Point at (x, y).
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// NewPointFrom converts an integer image point.
func NewPointFrom(p image.Point) Point {
	return Point{X: float64(p.X), Y: float64(p.Y)}
}

// ImagePoint rounds p to the nearest integer pixel.
func (p Point) ImagePoint() image.Point {
	return image.Pt(int(math.Round(p.X)), int(math.Round(p.Y)))
}

// Distance returns the Euclidean distance between p1 and p2.
func Distance(p1, p2 Point) float64 {
	return math.Hypot(p1.X-p2.X, p1.Y-p2.Y)
}
