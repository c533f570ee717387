package pathdata

import "github.com/vasalvit/svgkit/geom"

// Absolute returns d with every command in absolute form.
func (d Data) Absolute() Data {
	return d.rewrite(toAbsolute)
}

// Relative returns d with every command in relative form.
func (d Data) Relative() Data {
	return d.rewrite(toRelative)
}

// ApplyShorthands replaces lines by horizontal or vertical lines when
// lines is set, and curves whose first control point equals the implicit
// one by their smooth form when curves is set.
func (d Data) ApplyShorthands(lines, curves bool) Data {
	return d.rewrite(func(cmd Command, c *cursor) Command {
		switch cmd := cmd.(type) {
		case LineTo:
			if !lines {
				break
			}
			end := c.abs(cmd.End, cmd.Relative)
			delta := cmd.End
			if !cmd.Relative {
				delta = cmd.End.Sub(c.cur)
			}
			switch {
			case geom.Equal(end.Y, c.cur.Y, geom.Epsilon):
				if cmd.Relative {
					return HorizontalLineTo{X: delta.X, Relative: true}
				}
				return HorizontalLineTo{X: end.X}
			case geom.Equal(end.X, c.cur.X, geom.Epsilon):
				if cmd.Relative {
					return VerticalLineTo{Y: delta.Y, Relative: true}
				}
				return VerticalLineTo{Y: end.Y}
			}
		case CubicTo:
			if curves && c.abs(cmd.Control1, cmd.Relative).Equal(c.reflected(true), geom.Epsilon) {
				return SmoothCubicTo{Control2: cmd.Control2, End: cmd.End, Relative: cmd.Relative}
			}
		case QuadTo:
			if curves && c.abs(cmd.Control, cmd.Relative).Equal(c.reflected(false), geom.Epsilon) {
				return SmoothQuadTo{End: cmd.End, Relative: cmd.Relative}
			}
		}
		return cmd
	})
}

// ResolveShorthands is the reverse of ApplyShorthands: horizontal and
// vertical lines become lines, smooth curves get their implicit control
// point written out.
func (d Data) ResolveShorthands(lines, curves bool) Data {
	return d.rewrite(func(cmd Command, c *cursor) Command {
		switch cmd := cmd.(type) {
		case HorizontalLineTo:
			if !lines {
				break
			}
			if cmd.Relative {
				return LineTo{End: geom.Pt(cmd.X, 0), Relative: true}
			}
			return LineTo{End: geom.Pt(cmd.X, c.cur.Y)}
		case VerticalLineTo:
			if !lines {
				break
			}
			if cmd.Relative {
				return LineTo{End: geom.Pt(0, cmd.Y), Relative: true}
			}
			return LineTo{End: geom.Pt(c.cur.X, cmd.Y)}
		case SmoothCubicTo:
			if curves {
				return CubicTo{Control1: c.local(c.reflected(true), cmd.Relative), Control2: cmd.Control2, End: cmd.End, Relative: cmd.Relative}
			}
		case SmoothQuadTo:
			if curves {
				return QuadTo{Control: c.local(c.reflected(false), cmd.Relative), End: cmd.End, Relative: cmd.Relative}
			}
		}
		return cmd
	})
}

// rewrite maps every command with f, giving f the cursor positioned
// before the command in the original sequence.
func (d Data) rewrite(f func(Command, *cursor) Command) Data {
	if d == nil {
		return nil
	}
	out := make(Data, 0, len(d))
	var c cursor
	for _, cmd := range d {
		out = append(out, f(cmd, &c))
		c.step(cmd)
	}
	return out
}

// local turns an absolute point into a relative offset when rel is set.
func (c *cursor) local(p geom.Point, rel bool) geom.Point {
	if rel {
		return p.Sub(c.cur)
	}
	return p
}

func toAbsolute(cmd Command, c *cursor) Command {
	if !cmd.IsRelative() {
		return cmd
	}
	switch cmd := cmd.(type) {
	case MoveTo:
		return MoveTo{End: c.abs(cmd.End, true)}
	case LineTo:
		return LineTo{End: c.abs(cmd.End, true)}
	case HorizontalLineTo:
		return HorizontalLineTo{X: c.cur.X + cmd.X}
	case VerticalLineTo:
		return VerticalLineTo{Y: c.cur.Y + cmd.Y}
	case CubicTo:
		return CubicTo{Control1: c.abs(cmd.Control1, true), Control2: c.abs(cmd.Control2, true), End: c.abs(cmd.End, true)}
	case SmoothCubicTo:
		return SmoothCubicTo{Control2: c.abs(cmd.Control2, true), End: c.abs(cmd.End, true)}
	case QuadTo:
		return QuadTo{Control: c.abs(cmd.Control, true), End: c.abs(cmd.End, true)}
	case SmoothQuadTo:
		return SmoothQuadTo{End: c.abs(cmd.End, true)}
	case ArcTo:
		cmd.End = c.abs(cmd.End, true)
		cmd.Relative = false
		return cmd
	}
	return cmd
}

func toRelative(cmd Command, c *cursor) Command {
	if cmd.IsRelative() {
		return cmd
	}
	switch cmd := cmd.(type) {
	case MoveTo:
		return MoveTo{End: c.local(cmd.End, true), Relative: true}
	case LineTo:
		return LineTo{End: c.local(cmd.End, true), Relative: true}
	case HorizontalLineTo:
		return HorizontalLineTo{X: cmd.X - c.cur.X, Relative: true}
	case VerticalLineTo:
		return VerticalLineTo{Y: cmd.Y - c.cur.Y, Relative: true}
	case CubicTo:
		return CubicTo{Control1: c.local(cmd.Control1, true), Control2: c.local(cmd.Control2, true), End: c.local(cmd.End, true), Relative: true}
	case SmoothCubicTo:
		return SmoothCubicTo{Control2: c.local(cmd.Control2, true), End: c.local(cmd.End, true), Relative: true}
	case QuadTo:
		return QuadTo{Control: c.local(cmd.Control, true), End: c.local(cmd.End, true), Relative: true}
	case SmoothQuadTo:
		return SmoothQuadTo{End: c.local(cmd.End, true), Relative: true}
	case ArcTo:
		cmd.End = c.local(cmd.End, true)
		cmd.Relative = true
		return cmd
	}
	return cmd
}
