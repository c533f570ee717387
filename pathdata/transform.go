package pathdata

import (
	"math"

	"github.com/vasalvit/svgkit/geom"
)

// Transform returns a new sequence with m applied to every coordinate.
// Absolute points are mapped through m, relative offsets through its
// linear part only. Horizontal and vertical lines stay so while m keeps
// their direction and become lines otherwise. Arc radii and rotation are
// recomputed from the transformed ellipse.
func Transform(d Data, m geom.Matrix) Data {
	out := make(Data, 0, len(d))
	var c cursor
	pt := func(p geom.Point, rel bool) geom.Point {
		if rel {
			return m.ApplyVector(p)
		}
		return m.Apply(p)
	}
	for _, cmd := range d {
		switch cmd := cmd.(type) {
		case MoveTo:
			out = append(out, MoveTo{End: pt(cmd.End, cmd.Relative), Relative: cmd.Relative})
		case LineTo:
			out = append(out, LineTo{End: pt(cmd.End, cmd.Relative), Relative: cmd.Relative})
		case HorizontalLineTo:
			out = append(out, transformHorizontal(cmd, m, c.cur))
		case VerticalLineTo:
			out = append(out, transformVertical(cmd, m, c.cur))
		case CubicTo:
			out = append(out, CubicTo{
				Control1: pt(cmd.Control1, cmd.Relative),
				Control2: pt(cmd.Control2, cmd.Relative),
				End:      pt(cmd.End, cmd.Relative),
				Relative: cmd.Relative,
			})
		case SmoothCubicTo:
			out = append(out, SmoothCubicTo{
				Control2: pt(cmd.Control2, cmd.Relative),
				End:      pt(cmd.End, cmd.Relative),
				Relative: cmd.Relative,
			})
		case QuadTo:
			out = append(out, QuadTo{
				Control:  pt(cmd.Control, cmd.Relative),
				End:      pt(cmd.End, cmd.Relative),
				Relative: cmd.Relative,
			})
		case SmoothQuadTo:
			out = append(out, SmoothQuadTo{End: pt(cmd.End, cmd.Relative), Relative: cmd.Relative})
		case ArcTo:
			radii, rot, sweep := TransformArc(m, cmd.Radii, cmd.Rotation, cmd.Sweep)
			out = append(out, ArcTo{
				Radii:    radii,
				Rotation: rot,
				Large:    cmd.Large,
				Sweep:    sweep,
				End:      pt(cmd.End, cmd.Relative),
				Relative: cmd.Relative,
			})
		default:
			out = append(out, cmd)
		}
		c.step(cmd)
	}
	return out
}

func transformHorizontal(cmd HorizontalLineTo, m geom.Matrix, cur geom.Point) Command {
	if cmd.Relative {
		v := m.ApplyVector(geom.Pt(cmd.X, 0))
		if geom.Equal(m.B(), 0, geom.Epsilon) {
			return HorizontalLineTo{X: v.X, Relative: true}
		}
		return LineTo{End: v, Relative: true}
	}
	p := m.Apply(geom.Pt(cmd.X, cur.Y))
	if geom.Equal(m.B(), 0, geom.Epsilon) {
		return HorizontalLineTo{X: p.X}
	}
	return LineTo{End: p}
}

func transformVertical(cmd VerticalLineTo, m geom.Matrix, cur geom.Point) Command {
	if cmd.Relative {
		v := m.ApplyVector(geom.Pt(0, cmd.Y))
		if geom.Equal(m.C(), 0, geom.Epsilon) {
			return VerticalLineTo{Y: v.Y, Relative: true}
		}
		return LineTo{End: v, Relative: true}
	}
	p := m.Apply(geom.Pt(cur.X, cmd.Y))
	if geom.Equal(m.C(), 0, geom.Epsilon) {
		return VerticalLineTo{Y: p.Y}
	}
	return LineTo{End: p}
}

// TransformArc maps the ellipse of an arc through the linear part of m and
// returns its new radii, x-axis rotation in degrees and sweep flag. A
// singular m collapses the minor radius to zero, which renders as a
// straight segment.
func TransformArc(m geom.Matrix, radii geom.Point, rotation float64, sweep bool) (geom.Point, float64, bool) {
	rx, ry := math.Abs(radii.X), math.Abs(radii.Y)
	if m.Det() < 0 {
		sweep = !sweep
	}
	if m.IsAxisAligned(geom.Epsilon) && geom.Equal(m.A(), m.D(), geom.Epsilon) {
		s := math.Abs(m.A())
		return geom.Pt(rx*s, ry*s), rotation, sweep
	}

	// The transformed ellipse is {A·(cos t, sin t)} with A = L·R(φ)·diag(rx, ry).
	// Its axes are the eigenvectors of A·Aᵀ and the radii the square roots
	// of the eigenvalues.
	sin, cos := math.Sincos(rotation * math.Pi / 180)
	u := m.ApplyVector(geom.Pt(rx*cos, rx*sin))
	v := m.ApplyVector(geom.Pt(-ry*sin, ry*cos))
	p := u.X*u.X + v.X*v.X
	q := u.X*u.Y + v.X*v.Y
	s := u.Y*u.Y + v.Y*v.Y

	mean := (p + s) / 2
	r := math.Hypot((p-s)/2, q)
	l1, l2 := mean+r, math.Max(mean-r, 0)

	phi := 0.0
	if r > geom.Epsilon*math.Max(mean, 1) {
		phi = 0.5 * math.Atan2(2*q, p-s) * 180 / math.Pi
	}
	if phi < 0 {
		phi += 180
	}
	if phi >= 180 {
		phi -= 180
	}
	return geom.Pt(math.Sqrt(l1), math.Sqrt(l2)), phi, sweep
}
