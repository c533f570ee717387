package transform

import (
	"fmt"

	"github.com/vasalvit/svgkit/geom"
	"github.com/vasalvit/svgkit/internal/scan"
)

// SyntaxError describes a malformed transform list.
type SyntaxError struct {
	Input  string
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("transform: %s at offset %d in %q", e.Msg, e.Offset, e.Input)
}

// arities lists the accepted argument counts of each function.
var arities = map[string][]int{
	"matrix":    {6},
	"translate": {1, 2},
	"scale":     {1, 2},
	"rotate":    {1, 3},
	"skewX":     {1},
	"skewY":     {1},
}

// Parse reads a transform attribute value. Function names are case
// sensitive; an empty or blank value gives an empty list.
func Parse(s string) (List, error) {
	sc := scan.New(s)
	errorf := func(offset int, format string, args ...interface{}) error {
		return &SyntaxError{Input: s, Offset: offset, Msg: fmt.Sprintf(format, args...)}
	}

	var l List
	sc.SkipSpace()
	for !sc.EOF() {
		if len(l) > 0 {
			comma := sc.SkipCommaSpace()
			if sc.EOF() {
				if comma {
					return nil, errorf(sc.Pos, "trailing comma")
				}
				break
			}
		}
		at := sc.Pos
		name := sc.Ident()
		want, ok := arities[name]
		if !ok {
			if name == "" {
				return nil, errorf(at, "unexpected %q", sc.Peek())
			}
			return nil, errorf(at, "unknown function %q", name)
		}
		sc.SkipSpace()
		if sc.Peek() != '(' {
			return nil, errorf(sc.Pos, "expected ( after %s", name)
		}
		sc.Pos++
		sc.SkipSpace()

		var args []float64
		for sc.Peek() != ')' {
			if len(args) > 0 {
				sc.SkipCommaSpace()
			}
			f, ok := sc.Number()
			if !ok {
				if sc.EOF() {
					return nil, errorf(sc.Pos, "missing ) after %s", name)
				}
				return nil, errorf(sc.Pos, "unexpected %q in %s", sc.Peek(), name)
			}
			args = append(args, f)
			sc.SkipSpace()
		}
		sc.Pos++

		if !accepts(want, len(args)) {
			return nil, errorf(at, "%s takes %v arguments, got %d", name, want, len(args))
		}
		l = append(l, build(name, args))
		sc.SkipSpace()
	}
	return l, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) List {
	l, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return l
}

func accepts(want []int, n int) bool {
	for _, w := range want {
		if w == n {
			return true
		}
	}
	return false
}

func build(name string, a []float64) Transform {
	switch name {
	case "matrix":
		return Matrix{a[0], a[1], a[2], a[3], a[4], a[5]}
	case "translate":
		if len(a) == 1 {
			return Translate{X: a[0]}
		}
		return Translate{X: a[0], Y: a[1]}
	case "scale":
		if len(a) == 1 {
			return Scale{X: a[0], Y: a[0]}
		}
		return Scale{X: a[0], Y: a[1]}
	case "rotate":
		if len(a) == 1 {
			return Rotate{Angle: a[0]}
		}
		return Rotate{Angle: a[0], Center: geom.Pt(a[1], a[2])}
	case "skewX":
		return SkewX{Angle: a[0]}
	default:
		return SkewY{Angle: a[0]}
	}
}
