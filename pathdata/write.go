package pathdata

import (
	"github.com/vasalvit/svgkit/style"
)

// Write renders d as the value of a "d" attribute.
func Write(d Data, s style.Style) string {
	switch s.ShorthandLines {
	case style.Always:
		d = d.ApplyShorthands(true, false)
	case style.Never:
		d = d.ResolveShorthands(true, false)
	}
	switch s.ShorthandCurves {
	case style.Always:
		d = d.ApplyShorthands(false, true)
	case style.Never:
		d = d.ResolveShorthands(false, true)
	}
	switch s.Coordinates {
	case style.Absolute:
		d = d.Absolute()
	case style.Relative:
		d = d.Relative()
	}

	var (
		b    []byte
		prev byte
	)
	for i, cmd := range d {
		l := cmd.Letter()
		if i > 0 {
			b = append(b, ' ')
		}
		if i == 0 || s.Commands != style.Implicit || !implicitLetter(prev, l) {
			b = append(b, l)
		}
		b = appendArgs(b, cmd, s)
		prev = l
	}
	return string(b)
}

// String writes d with the default style.
func (d Data) String() string {
	return Write(d, style.Default())
}

// implicitLetter reports whether a command with letter l may be written
// without it after a command with letter prev.
func implicitLetter(prev, l byte) bool {
	switch l {
	case 'M', 'm', 'Z', 'z':
		return false
	case 'L':
		return prev == 'L' || prev == 'M'
	case 'l':
		return prev == 'l' || prev == 'm'
	}
	return l == prev
}

func appendArgs(b []byte, cmd Command, s style.Style) []byte {
	args := cmd.Args()
	if a, ok := cmd.(ArcTo); ok {
		b = appendPair(b, args[0], args[1], s)
		b = append(b, ' ')
		b = s.AppendNumber(b, a.Rotation)
		b = append(b, ' ', flagByte(a.Large), ' ', flagByte(a.Sweep), ' ')
		return appendPair(b, args[5], args[6], s)
	}
	if len(args) == 1 {
		return s.AppendNumber(b, args[0])
	}
	for i := 0; i+1 < len(args); i += 2 {
		if i > 0 {
			b = append(b, ' ')
		}
		b = appendPair(b, args[i], args[i+1], s)
	}
	return b
}

func appendPair(b []byte, x, y float64, s style.Style) []byte {
	b = s.AppendNumber(b, x)
	b = append(b, ',')
	return s.AppendNumber(b, y)
}

func flagByte(f bool) byte {
	if f {
		return '1'
	}
	return '0'
}
