package pathdata

import (
	"errors"
	"fmt"

	"github.com/vasalvit/svgkit/geom"
)

// ErrMissingMoveTo is reported by Validate for data not starting with a
// MoveTo.
var ErrMissingMoveTo = errors.New("path data must start with a moveto")

// Data is an ordered, mutable sequence of commands. Parse guarantees that
// non-empty results start with a MoveTo; direct edits are not checked.
type Data []Command

// cursor tracks the pen while walking a command sequence. Coordinates are
// absolute.
type cursor struct {
	cur, start geom.Point
	prev       Command
	// ctrl is the last control point of prev when it is a curve.
	ctrl geom.Point
}

func (c *cursor) abs(p geom.Point, rel bool) geom.Point {
	if rel {
		return c.cur.Add(p)
	}
	return p
}

// reflected returns the implicit first control point of a smooth cubic
// (cubic true) or smooth quadratic command following prev.
func (c *cursor) reflected(cubic bool) geom.Point {
	switch c.prev.(type) {
	case CubicTo, SmoothCubicTo:
		if cubic {
			return c.ctrl.Reflect(c.cur)
		}
	case QuadTo, SmoothQuadTo:
		if !cubic {
			return c.ctrl.Reflect(c.cur)
		}
	}
	return c.cur
}

// step moves the cursor past cmd.
func (c *cursor) step(cmd Command) {
	switch cmd := cmd.(type) {
	case MoveTo:
		c.cur = c.abs(cmd.End, cmd.Relative)
		c.start = c.cur
	case LineTo:
		c.cur = c.abs(cmd.End, cmd.Relative)
	case HorizontalLineTo:
		if cmd.Relative {
			c.cur.X += cmd.X
		} else {
			c.cur.X = cmd.X
		}
	case VerticalLineTo:
		if cmd.Relative {
			c.cur.Y += cmd.Y
		} else {
			c.cur.Y = cmd.Y
		}
	case CubicTo:
		c.ctrl = c.abs(cmd.Control2, cmd.Relative)
		c.cur = c.abs(cmd.End, cmd.Relative)
	case SmoothCubicTo:
		c.ctrl = c.abs(cmd.Control2, cmd.Relative)
		c.cur = c.abs(cmd.End, cmd.Relative)
	case QuadTo:
		c.ctrl = c.abs(cmd.Control, cmd.Relative)
		c.cur = c.abs(cmd.End, cmd.Relative)
	case SmoothQuadTo:
		c.ctrl = c.reflected(false)
		c.cur = c.abs(cmd.End, cmd.Relative)
	case ArcTo:
		c.cur = c.abs(cmd.End, cmd.Relative)
	case ClosePath:
		c.cur = c.start
	}
	c.prev = cmd
}

// Clone returns a copy that can be edited independently.
func (d Data) Clone() Data {
	if d == nil {
		return nil
	}
	out := make(Data, len(d))
	copy(out, d)
	return out
}

// Equal compares two sequences command by command within eps.
func (d Data) Equal(o Data, eps float64) bool {
	if len(d) != len(o) {
		return false
	}
	for i := range d {
		if !equalCommands(d[i], o[i], eps) {
			return false
		}
	}
	return true
}

// Validate reports an error when non-empty data does not start with a
// MoveTo.
func (d Data) Validate() error {
	if len(d) == 0 {
		return nil
	}
	if _, ok := d[0].(MoveTo); !ok {
		return fmt.Errorf("%w: found %c", ErrMissingMoveTo, d[0].Letter())
	}
	return nil
}

// ImplicitControl returns the absolute first control point of the smooth
// curve command at index i. ok is false when d[i] is not SmoothCubicTo or
// SmoothQuadTo.
func (d Data) ImplicitControl(i int) (p geom.Point, ok bool) {
	if i < 0 || i >= len(d) {
		return geom.Point{}, false
	}
	var c cursor
	for _, cmd := range d[:i] {
		c.step(cmd)
	}
	switch d[i].(type) {
	case SmoothCubicTo:
		return c.reflected(true), true
	case SmoothQuadTo:
		return c.reflected(false), true
	}
	return geom.Point{}, false
}

// EndPoint returns the absolute current point after the last command.
func (d Data) EndPoint() geom.Point {
	var c cursor
	for _, cmd := range d {
		c.step(cmd)
	}
	return c.cur
}

// Subpaths splits d before every MoveTo. The first MoveTo of a relative
// subpath is made absolute so every part stands on its own.
func (d Data) Subpaths() []Data {
	var (
		out []Data
		c   cursor
	)
	for _, cmd := range d {
		if m, ok := cmd.(MoveTo); ok || len(out) == 0 {
			if ok && m.Relative {
				cmd = MoveTo{End: c.abs(m.End, true)}
			}
			out = append(out, Data{})
		}
		out[len(out)-1] = append(out[len(out)-1], cmd)
		c.step(cmd)
	}
	return out
}

