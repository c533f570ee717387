package geom

import (
	"fmt"
	"math"

	mt "github.com/rustyoz/Mtransform"
	"golang.org/x/image/math/f64"
)

// Matrix is an affine transformation stored as a 3x3 matrix in row form
//
//	| a  c  e |
//	| b  d  f |
//	| 0  0  1 |
//
// so that x' = a*x + c*y + e and y' = b*x + d*y + f.
type Matrix mt.Transform

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix(mt.Identity())
}

// NewMatrix builds a matrix from the six values of an SVG matrix(a b c d e f).
func NewMatrix(a, b, c, d, e, f float64) Matrix {
	m := Identity()
	m[0][0], m[0][1], m[0][2] = a, c, e
	m[1][0], m[1][1], m[1][2] = b, d, f
	return m
}

// Translation returns a matrix that moves points by (tx, ty).
func Translation(tx, ty float64) Matrix {
	return NewMatrix(1, 0, 0, 1, tx, ty)
}

// Scaling returns a matrix scaling by sx and sy around the origin.
func Scaling(sx, sy float64) Matrix {
	return NewMatrix(sx, 0, 0, sy, 0, 0)
}

// Rotation returns a matrix rotating by deg degrees around the origin.
func Rotation(deg float64) Matrix {
	s, c := math.Sincos(deg * math.Pi / 180)
	return NewMatrix(c, s, -s, c, 0, 0)
}

// FromAff3 converts an x/image affine matrix.
func FromAff3(a f64.Aff3) Matrix {
	return NewMatrix(a[0], a[3], a[1], a[4], a[2], a[5])
}

func (m Matrix) A() float64 { return m[0][0] }
func (m Matrix) B() float64 { return m[1][0] }
func (m Matrix) C() float64 { return m[0][1] }
func (m Matrix) D() float64 { return m[1][1] }
func (m Matrix) E() float64 { return m[0][2] }
func (m Matrix) F() float64 { return m[1][2] }

// Values returns a, b, c, d, e, f in SVG order.
func (m Matrix) Values() [6]float64 {
	return [6]float64{m.A(), m.B(), m.C(), m.D(), m.E(), m.F()}
}

// Mul returns m·n. Applying the result to a point applies n first.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix(mt.MultiplyTransforms(mt.Transform(m), mt.Transform(n)))
}

// Apply maps a point through the full affine transformation.
func (m Matrix) Apply(p Point) Point {
	t := mt.Transform(m)
	x, y := t.Apply(p.X, p.Y)
	return Point{x, y}
}

// ApplyVector maps a displacement through the linear part only.
func (m Matrix) ApplyVector(v Point) Point {
	return Point{m.A()*v.X + m.C()*v.Y, m.B()*v.X + m.D()*v.Y}
}

// Linear returns m with its translation removed.
func (m Matrix) Linear() Matrix {
	return NewMatrix(m.A(), m.B(), m.C(), m.D(), 0, 0)
}

// Det returns the determinant of the linear part.
func (m Matrix) Det() float64 {
	return m.A()*m.D() - m.B()*m.C()
}

// Inverse returns the inverse matrix. ok is false when m is singular.
func (m Matrix) Inverse() (inv Matrix, ok bool) {
	det := m.Det()
	if det == 0 {
		return Identity(), false
	}
	a, b, c, d, e, f := m.A()/det, m.B()/det, m.C()/det, m.D()/det, m.E(), m.F()
	return NewMatrix(d, -b, -c, a, c*f-d*e, b*e-a*f), true
}

// Equal compares every entry within eps.
func (m Matrix) Equal(n Matrix, eps float64) bool {
	mv, nv := m.Values(), n.Values()
	for i := range mv {
		if !Equal(mv[i], nv[i], eps) {
			return false
		}
	}
	return true
}

func (m Matrix) IsIdentity(eps float64) bool {
	return m.Equal(Identity(), eps)
}

// IsAxisAligned reports whether the linear part has no rotation or skew,
// that is b and c are both zero.
func (m Matrix) IsAxisAligned(eps float64) bool {
	return Equal(m.B(), 0, eps) && Equal(m.C(), 0, eps)
}

// IsUniform reports whether m maps circles to circles: the linear part is
// a similarity (rotation, reflection and a single scale factor).
func (m Matrix) IsUniform(eps float64) bool {
	a, b, c, d := m.A(), m.B(), m.C(), m.D()
	if Equal(a, d, eps) && Equal(b, -c, eps) {
		return true
	}
	return Equal(a, -d, eps) && Equal(b, c, eps)
}

// ScaleFactors returns the lengths the unit x and y vectors have after
// transformation.
func (m Matrix) ScaleFactors() (sx, sy float64) {
	return math.Hypot(m.A(), m.B()), math.Hypot(m.C(), m.D())
}

// Aff3 converts m to the row-major layout used by golang.org/x/image/draw.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{m.A(), m.C(), m.E(), m.B(), m.D(), m.F()}
}

func (m Matrix) String() string {
	return fmt.Sprintf("matrix(%g %g %g %g %g %g)", m.A(), m.B(), m.C(), m.D(), m.E(), m.F())
}
