// Package geom holds the points and affine matrices shared by the path,
// transform and reification packages.
package geom

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used when comparing coordinates and matrix
// entries. It decides, among other things, whether a composed transform
// counts as a pure scale or needs path conversion during reification.
var Epsilon = 1e-9

// Equal reports whether a and b differ by at most eps.
func Equal(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// Point is an X,Y coordinate
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul scales both components by s.
func (p Point) Mul(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Reflect returns the reflection of p about center.
func (p Point) Reflect(center Point) Point {
	return Point{2*center.X - p.X, 2*center.Y - p.Y}
}

func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Equal reports whether both components are within eps.
func (p Point) Equal(q Point, eps float64) bool {
	return Equal(p.X, q.X, eps) && Equal(p.Y, q.Y, eps)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
