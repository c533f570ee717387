// Package transform models the SVG transform attribute: its six function
// kinds, lists of them, parsing, composition into a matrix and writing.
package transform

import (
	"math"

	"github.com/vasalvit/svgkit/geom"
)

// Transform is one function of a transform list. Its implementations are
// Translate, Rotate, Scale, SkewX, SkewY and Matrix.
type Transform interface {
	// Matrix returns the affine matrix of the function.
	Matrix() geom.Matrix
	// Name is the SVG function name.
	Name() string
	transform()
}

type Translate struct {
	X, Y float64
}

// Rotate rotates by Angle degrees around Center.
type Rotate struct {
	Angle  float64
	Center geom.Point
}

type Scale struct {
	X, Y float64
}

// SkewX skews along the x axis by Angle degrees.
type SkewX struct {
	Angle float64
}

// SkewY skews along the y axis by Angle degrees.
type SkewY struct {
	Angle float64
}

// Matrix is an explicit matrix(a b c d e f).
type Matrix struct {
	A, B, C, D, E, F float64
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func (t Translate) Matrix() geom.Matrix { return geom.Translation(t.X, t.Y) }

func (t Rotate) Matrix() geom.Matrix {
	r := geom.Rotation(t.Angle)
	if t.Center == (geom.Point{}) {
		return r
	}
	return geom.Translation(t.Center.X, t.Center.Y).Mul(r).Mul(geom.Translation(-t.Center.X, -t.Center.Y))
}

func (t Scale) Matrix() geom.Matrix { return geom.Scaling(t.X, t.Y) }
func (t SkewX) Matrix() geom.Matrix { return geom.NewMatrix(1, 0, math.Tan(radians(t.Angle)), 1, 0, 0) }
func (t SkewY) Matrix() geom.Matrix { return geom.NewMatrix(1, math.Tan(radians(t.Angle)), 0, 1, 0, 0) }
func (t Matrix) Matrix() geom.Matrix {
	return geom.NewMatrix(t.A, t.B, t.C, t.D, t.E, t.F)
}

func (Translate) Name() string { return "translate" }
func (Rotate) Name() string    { return "rotate" }
func (Scale) Name() string     { return "scale" }
func (SkewX) Name() string     { return "skewX" }
func (SkewY) Name() string     { return "skewY" }
func (Matrix) Name() string    { return "matrix" }

func (Translate) transform() {}
func (Rotate) transform()    {}
func (Scale) transform()     {}
func (SkewX) transform()     {}
func (SkewY) transform()     {}
func (Matrix) transform()    {}

// FromMatrix wraps a geom.Matrix as a matrix() function.
func FromMatrix(m geom.Matrix) Matrix {
	v := m.Values()
	return Matrix{v[0], v[1], v[2], v[3], v[4], v[5]}
}

// List is the ordered content of a transform attribute.
type List []Transform

// Compose folds the list left to right into M0·M1·…·Mn-1, so that
// Compose(List{A, B}).Apply(p) equals A applied to B applied to p. An
// empty list composes to the identity.
func Compose(l List) geom.Matrix {
	m := geom.Identity()
	for _, t := range l {
		m = m.Mul(t.Matrix())
	}
	return m
}

// Matrix is Compose(l).
func (l List) Matrix() geom.Matrix {
	return Compose(l)
}

// Apply maps p through the composed list.
func (l List) Apply(p geom.Point) geom.Point {
	return Compose(l).Apply(p)
}

// Reduce drops functions that are the identity within eps.
func (l List) Reduce(eps float64) List {
	var out List
	for _, t := range l {
		if !t.Matrix().IsIdentity(eps) {
			out = append(out, t)
		}
	}
	return out
}

// WithOrigin returns the list that applies l around origin, as the
// transform-origin property does: translate(origin) l translate(-origin).
func WithOrigin(l List, origin geom.Point) List {
	if origin == (geom.Point{}) || len(l) == 0 {
		return l
	}
	out := make(List, 0, len(l)+2)
	out = append(out, Translate{origin.X, origin.Y})
	out = append(out, l...)
	return append(out, Translate{-origin.X, -origin.Y})
}
