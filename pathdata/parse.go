package pathdata

import (
	"fmt"

	"github.com/vasalvit/svgkit/geom"
	"github.com/vasalvit/svgkit/internal/scan"
)

// SyntaxError describes malformed path data.
type SyntaxError struct {
	Input  string
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("path data: %s at offset %d in %q", e.Msg, e.Offset, e.Input)
}

// arity is the number of arguments in one group of each command.
var arity = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1, 'C': 6, 'S': 4, 'Q': 4, 'T': 2, 'A': 7, 'Z': 0,
}

type pathParser struct {
	input string
	*scan.Scanner
}

// Parse reads the value of a path "d" attribute. An empty or blank string
// gives empty data.
func Parse(s string) (Data, error) {
	p := &pathParser{input: s, Scanner: scan.New(s)}
	var d Data
	for {
		p.SkipSpace()
		if p.EOF() {
			return d, nil
		}
		at := p.Pos
		c := p.Peek()
		upper := c &^ ('a' - 'A')
		n, ok := arity[upper]
		if !ok {
			if scan.IsNumberStart(c) && len(d) > 0 {
				return nil, p.errorf(at, "unexpected number after %c", d[len(d)-1].Letter())
			}
			return nil, p.errorf(at, "unexpected %q, expected a command", c)
		}
		p.Pos++
		if len(d) == 0 && upper != 'M' {
			return nil, p.errorf(at, "path data must start with a moveto, found %c", c)
		}
		if upper == 'Z' {
			d = append(d, ClosePath{})
			continue
		}
		rel := c != upper
		for group := 0; ; group++ {
			p.SkipSpace()
			if group > 0 {
				comma := p.SkipCommaSpace()
				if !scan.IsNumberStart(p.Peek()) {
					if comma {
						return nil, p.errorf(p.Pos, "trailing comma after %c", c)
					}
					break
				}
			}
			args, err := p.group(upper, n)
			if err != nil {
				return nil, err
			}
			d = append(d, build(upper, rel, group, args))
		}
	}
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Data {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// group reads the n arguments of one command group.
func (p *pathParser) group(cmd byte, n int) ([]float64, error) {
	args := make([]float64, n)
	for i := range args {
		if i > 0 {
			p.SkipCommaSpace()
		}
		if cmd == 'A' && (i == 3 || i == 4) {
			switch p.Peek() {
			case '0':
				args[i] = 0
			case '1':
				args[i] = 1
			default:
				if p.EOF() {
					return nil, p.errorf(p.Pos, "%c expects %d arguments, got %d", cmd, n, i)
				}
				return nil, p.errorf(p.Pos, "invalid arc flag %q", p.Peek())
			}
			p.Pos++
			continue
		}
		f, ok := p.Number()
		if !ok {
			return nil, p.errorf(p.Pos, "%c expects %d arguments, got %d", cmd, n, i)
		}
		args[i] = f
	}
	return args, nil
}

// build turns one argument group into a command. Groups after the first
// one of a moveto become lineto commands.
func build(cmd byte, rel bool, group int, a []float64) Command {
	switch cmd {
	case 'M':
		if group > 0 {
			return LineTo{End: geom.Pt(a[0], a[1]), Relative: rel}
		}
		return MoveTo{End: geom.Pt(a[0], a[1]), Relative: rel}
	case 'L':
		return LineTo{End: geom.Pt(a[0], a[1]), Relative: rel}
	case 'H':
		return HorizontalLineTo{X: a[0], Relative: rel}
	case 'V':
		return VerticalLineTo{Y: a[0], Relative: rel}
	case 'C':
		return CubicTo{Control1: geom.Pt(a[0], a[1]), Control2: geom.Pt(a[2], a[3]), End: geom.Pt(a[4], a[5]), Relative: rel}
	case 'S':
		return SmoothCubicTo{Control2: geom.Pt(a[0], a[1]), End: geom.Pt(a[2], a[3]), Relative: rel}
	case 'Q':
		return QuadTo{Control: geom.Pt(a[0], a[1]), End: geom.Pt(a[2], a[3]), Relative: rel}
	case 'T':
		return SmoothQuadTo{End: geom.Pt(a[0], a[1]), Relative: rel}
	default:
		return ArcTo{
			Radii:    geom.Pt(a[0], a[1]),
			Rotation: a[2],
			Large:    a[3] == 1,
			Sweep:    a[4] == 1,
			End:      geom.Pt(a[5], a[6]),
			Relative: rel,
		}
	}
}

func (p *pathParser) errorf(offset int, format string, args ...interface{}) error {
	return &SyntaxError{Input: p.input, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}
