package transform

import (
	"math"

	"github.com/vasalvit/svgkit/geom"
)

// Decompose rewrites m as a list of elementary functions. It tries a
// translate·rotate·scale·skewX split and a translate·skewY·scale·skewX
// split, drops identity parts and keeps the shorter result. A singular
// linear part that neither split can express is returned as matrix().
func Decompose(m geom.Matrix) List {
	eps := geom.Epsilon
	qr, qrOK := decomposeQR(m, eps)
	ldu, lduOK := decomposeLDU(m, eps)
	switch {
	case lduOK && (!qrOK || len(ldu) < len(qr)):
		return ldu
	case qrOK:
		return qr
	}
	return List{FromMatrix(m)}
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

func decomposeQR(m geom.Matrix, eps float64) (List, bool) {
	a, b, c, d := m.A(), m.B(), m.C(), m.D()
	sx := math.Hypot(a, b)
	if sx <= eps {
		return nil, false
	}
	sy := m.Det() / sx
	k := (a*c + b*d) / (sx * sx)
	l := List{
		Translate{m.E(), m.F()},
		Rotate{Angle: degrees(math.Atan2(b, a))},
		Scale{sx, sy},
		SkewX{degrees(math.Atan(k))},
	}
	return l.Reduce(eps), true
}

func decomposeLDU(m geom.Matrix, eps float64) (List, bool) {
	a, b, c := m.A(), m.B(), m.C()
	if math.Abs(a) <= eps {
		return nil, false
	}
	l := List{
		Translate{m.E(), m.F()},
		SkewY{degrees(math.Atan(b / a))},
		Scale{a, m.Det() / a},
		SkewX{degrees(math.Atan(c / a))},
	}
	return l.Reduce(eps), true
}
