package maskedit

import (
	"fmt"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Point is a position in surface-local pixel coordinates.
// Coordinates may be fractional; equality is exact.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Chebyshev returns the larger of the horizontal and vertical distances
// between p and q.
func (p Point) Chebyshev(q Point) float64 {
	return math.Max(math.Abs(p.X-q.X), math.Abs(p.Y-q.Y))
}

// Near reports whether q lies within r pixels of p on both axes.
func (p Point) Near(q Point, r float64) bool {
	return p.Chebyshev(q) <= r
}

// String returns the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

func (p Point) fixed() fixed.Point26_6 {
	return rasterx.ToFixedP(p.X, p.Y)
}

// bounds returns the smallest float rectangle containing pts, as
// min and max corners. ok is false for an empty slice.
func bounds(pts []Point) (lo, hi Point, ok bool) {
	if len(pts) == 0 {
		return Point{}, Point{}, false
	}
	lo, hi = pts[0], pts[0]
	for _, p := range pts[1:] {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return lo, hi, true
}
