package transform

import (
	"github.com/vasalvit/svgkit/style"
)

// Write renders l as a transform attribute value. Arguments that equal
// their defaults are left out: translate's zero y, scale's y when it
// equals x, and rotate's center when it is the origin.
func Write(l List, s style.Style) string {
	sep := s.ListSeparator
	if sep == "" {
		sep = " "
	}
	var b []byte
	for i, t := range l {
		if i > 0 {
			b = append(b, sep...)
		}
		b = append(b, t.Name()...)
		b = append(b, '(')
		for j, f := range args(t) {
			if j > 0 {
				b = append(b, sep...)
			}
			b = s.AppendNumber(b, f)
		}
		b = append(b, ')')
	}
	return string(b)
}

// String writes l with the default style.
func (l List) String() string {
	return Write(l, style.Default())
}

func args(t Transform) []float64 {
	switch t := t.(type) {
	case Translate:
		if t.Y == 0 {
			return []float64{t.X}
		}
		return []float64{t.X, t.Y}
	case Scale:
		if t.X == t.Y {
			return []float64{t.X}
		}
		return []float64{t.X, t.Y}
	case Rotate:
		if t.Center.X == 0 && t.Center.Y == 0 {
			return []float64{t.Angle}
		}
		return []float64{t.Angle, t.Center.X, t.Center.Y}
	case SkewX:
		return []float64{t.Angle}
	case SkewY:
		return []float64{t.Angle}
	case Matrix:
		return []float64{t.A, t.B, t.C, t.D, t.E, t.F}
	}
	return nil
}
