// Package pathdata parses, transforms and writes the drawing commands of
// an SVG path "d" attribute.
package pathdata

import "github.com/vasalvit/svgkit/geom"

// Command is one drawing command of a path. The set of implementations is
// closed: MoveTo, LineTo, HorizontalLineTo, VerticalLineTo, CubicTo,
// SmoothCubicTo, QuadTo, SmoothQuadTo, ArcTo and ClosePath.
type Command interface {
	// Letter is the command letter, lower case for relative commands.
	Letter() byte
	IsRelative() bool
	// Args lists the numeric arguments in the order they are written.
	// Arc flags are reported as 0 or 1.
	Args() []float64
	command()
}

type MoveTo struct {
	End      geom.Point
	Relative bool
}

type LineTo struct {
	End      geom.Point
	Relative bool
}

type HorizontalLineTo struct {
	X        float64
	Relative bool
}

type VerticalLineTo struct {
	Y        float64
	Relative bool
}

// CubicTo is a cubic Bézier segment.
type CubicTo struct {
	Control1, Control2, End geom.Point
	Relative                bool
}

// SmoothCubicTo is a cubic Bézier segment whose first control point is
// implied by the previous command, see Data.ImplicitControl.
type SmoothCubicTo struct {
	Control2, End geom.Point
	Relative      bool
}

// QuadTo is a quadratic Bézier segment.
type QuadTo struct {
	Control, End geom.Point
	Relative     bool
}

// SmoothQuadTo is a quadratic Bézier segment with an implied control point.
type SmoothQuadTo struct {
	End      geom.Point
	Relative bool
}

// ArcTo is an elliptical arc. Rotation is the x-axis rotation in degrees.
type ArcTo struct {
	Radii        geom.Point
	Rotation     float64
	Large, Sweep bool
	End          geom.Point
	Relative     bool
}

// ClosePath closes the current subpath.
type ClosePath struct{}

func letter(abs byte, rel bool) byte {
	if rel {
		return abs + 'a' - 'A'
	}
	return abs
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func (c MoveTo) Letter() byte           { return letter('M', c.Relative) }
func (c LineTo) Letter() byte           { return letter('L', c.Relative) }
func (c HorizontalLineTo) Letter() byte { return letter('H', c.Relative) }
func (c VerticalLineTo) Letter() byte   { return letter('V', c.Relative) }
func (c CubicTo) Letter() byte          { return letter('C', c.Relative) }
func (c SmoothCubicTo) Letter() byte    { return letter('S', c.Relative) }
func (c QuadTo) Letter() byte           { return letter('Q', c.Relative) }
func (c SmoothQuadTo) Letter() byte     { return letter('T', c.Relative) }
func (c ArcTo) Letter() byte            { return letter('A', c.Relative) }
func (ClosePath) Letter() byte          { return 'Z' }

func (c MoveTo) IsRelative() bool           { return c.Relative }
func (c LineTo) IsRelative() bool           { return c.Relative }
func (c HorizontalLineTo) IsRelative() bool { return c.Relative }
func (c VerticalLineTo) IsRelative() bool   { return c.Relative }
func (c CubicTo) IsRelative() bool          { return c.Relative }
func (c SmoothCubicTo) IsRelative() bool    { return c.Relative }
func (c QuadTo) IsRelative() bool           { return c.Relative }
func (c SmoothQuadTo) IsRelative() bool     { return c.Relative }
func (c ArcTo) IsRelative() bool            { return c.Relative }
func (ClosePath) IsRelative() bool          { return false }

func (c MoveTo) Args() []float64           { return []float64{c.End.X, c.End.Y} }
func (c LineTo) Args() []float64           { return []float64{c.End.X, c.End.Y} }
func (c HorizontalLineTo) Args() []float64 { return []float64{c.X} }
func (c VerticalLineTo) Args() []float64   { return []float64{c.Y} }
func (c CubicTo) Args() []float64 {
	return []float64{c.Control1.X, c.Control1.Y, c.Control2.X, c.Control2.Y, c.End.X, c.End.Y}
}
func (c SmoothCubicTo) Args() []float64 {
	return []float64{c.Control2.X, c.Control2.Y, c.End.X, c.End.Y}
}
func (c QuadTo) Args() []float64       { return []float64{c.Control.X, c.Control.Y, c.End.X, c.End.Y} }
func (c SmoothQuadTo) Args() []float64 { return []float64{c.End.X, c.End.Y} }
func (c ArcTo) Args() []float64 {
	return []float64{c.Radii.X, c.Radii.Y, c.Rotation, flag(c.Large), flag(c.Sweep), c.End.X, c.End.Y}
}
func (ClosePath) Args() []float64 { return nil }

func (MoveTo) command()           {}
func (LineTo) command()           {}
func (HorizontalLineTo) command() {}
func (VerticalLineTo) command()   {}
func (CubicTo) command()          {}
func (SmoothCubicTo) command()    {}
func (QuadTo) command()           {}
func (SmoothQuadTo) command()     {}
func (ArcTo) command()            {}
func (ClosePath) command()        {}

// equalCommands compares kind, relative flag and arguments within eps.
func equalCommands(a, b Command, eps float64) bool {
	if a.Letter() != b.Letter() {
		return false
	}
	aa, ba := a.Args(), b.Args()
	if len(aa) != len(ba) {
		return false
	}
	for i := range aa {
		if !geom.Equal(aa[i], ba[i], eps) {
			return false
		}
	}
	return true
}
