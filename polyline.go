package svg

import (
	"fmt"

	gl "github.com/rustyoz/genericlexer"
	"github.com/tdewolff/parse/v2/strconv"

	"github.com/vasalvit/svgkit/geom"
	"github.com/vasalvit/svgkit/internal/scan"
	"github.com/vasalvit/svgkit/pathdata"
	"github.com/vasalvit/svgkit/reify"
	"github.com/vasalvit/svgkit/style"
)

// Polyline is an SVG polyline element: a set of connected line segments.
type Polyline struct {
	Presentation
	Points string `xml:"points,attr"`
}

func (p *Polyline) Kind() string { return "polyline" }

func (p *Polyline) Attributes() (reify.Attributes, error) {
	return pointAttributes(p.Kind(), &p.Presentation, p.Points)
}

func (p *Polyline) Capabilities() reify.Capabilities {
	return reify.Capabilities{
		PointsOnly:       true,
		CanConvertToPath: true,
		ToPath: func(a reify.Attributes) (pathdata.Data, error) {
			return pathdata.Polyline(a.Points), nil
		},
	}
}

func (p *Polyline) store(a reify.Attributes, s style.Style) {
	p.Points = formatPoints(a.Points, s)
	p.Presentation.store(a, s)
}

// Polygon is an SVG polygon element: a closed Polyline.
type Polygon struct {
	Presentation
	Points string `xml:"points,attr"`
}

func (p *Polygon) Kind() string { return "polygon" }

func (p *Polygon) Attributes() (reify.Attributes, error) {
	return pointAttributes(p.Kind(), &p.Presentation, p.Points)
}

func (p *Polygon) Capabilities() reify.Capabilities {
	return reify.Capabilities{
		PointsOnly:       true,
		CanConvertToPath: true,
		ToPath: func(a reify.Attributes) (pathdata.Data, error) {
			return pathdata.Polygon(a.Points), nil
		},
	}
}

func (p *Polygon) store(a reify.Attributes, s style.Style) {
	p.Points = formatPoints(a.Points, s)
	p.Presentation.store(a, s)
}

func pointAttributes(kind string, p *Presentation, points string) (reify.Attributes, error) {
	a, err := collect(kind, p, nil)
	if err != nil {
		return a, err
	}
	a.Points, err = ParsePoints(points)
	if err != nil {
		return a, fmt.Errorf("svg: <%s>: %w", kind, err)
	}
	return a, nil
}

// ParsePoints reads a points attribute: coordinate pairs separated by
// whitespace or commas. On an odd number of coordinates or a syntax error
// the complete pairs read so far are returned together with the error.
func ParsePoints(s string) ([]geom.Point, error) {
	var (
		coords []float64
		off    int
		err    error
	)
	for off < len(s) && err == nil {
		var next int
		coords, next, err = lexCoords(s, off, coords)
		if err != nil || next > off {
			off = next
			continue
		}
		// the lexer does not start a token on this byte
		f, n := strconv.ParseFloat([]byte(s[off:]))
		switch {
		case scan.IsSpace(s[off]):
			off++
		case n > 0:
			coords = append(coords, f)
			off += n
		default:
			err = fmt.Errorf("points %q: unexpected %q at %d", s, s[off], off)
		}
	}

	points := make([]geom.Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		points = append(points, geom.Pt(coords[i], coords[i+1]))
	}
	if err == nil && len(coords)%2 != 0 {
		err = fmt.Errorf("points %q: odd number of coordinates", s)
	}
	if len(points) == 0 {
		points = nil
	}
	return points, err
}

// lexCoords appends the numbers lexed from s[off:] to coords. It returns
// the offset where the lexer stopped, or where a number read further than
// the lexer's token, so that the caller can resume from there.
func lexCoords(s string, off int, coords []float64) ([]float64, int, error) {
	l, items := gl.Lex("points", s[off:])
	defer func() {
		for range items {
		}
	}()
	for {
		i := l.NextItem()
		switch i.Type {
		case gl.ItemEOS:
			return coords, off, nil
		case gl.ItemWSP, gl.ItemComma:
			off += len(i.Value)
		case gl.ItemNumber:
			f, n := strconv.ParseFloat([]byte(s[off:]))
			if n == 0 {
				return coords, off, fmt.Errorf("points %q: bad number %q at %d", s, i.Value, off)
			}
			coords = append(coords, f)
			off += n
			if n != len(i.Value) {
				return coords, off, nil
			}
		default:
			return coords, off, fmt.Errorf("points %q: unexpected %q at %d", s, i.Value, off)
		}
	}
}

func formatPoints(points []geom.Point, s style.Style) string {
	var b []byte
	for i, p := range points {
		if i > 0 {
			b = append(b, ' ')
		}
		b = s.AppendNumber(b, p.X)
		b = append(b, ',')
		b = s.AppendNumber(b, p.Y)
	}
	return string(b)
}

// Line is an SVG line element
type Line struct {
	Presentation
	X1 string `xml:"x1,attr"`
	Y1 string `xml:"y1,attr"`
	X2 string `xml:"x2,attr"`
	Y2 string `xml:"y2,attr"`
}

func (l *Line) Kind() string { return "line" }

func (l *Line) fields() []field {
	return []field{{"x1", &l.X1}, {"y1", &l.Y1}, {"x2", &l.X2}, {"y2", &l.Y2}}
}

func (l *Line) Attributes() (reify.Attributes, error) {
	return collect(l.Kind(), &l.Presentation, l.fields())
}

func (l *Line) Capabilities() reify.Capabilities {
	return reify.Capabilities{
		PointsOnly:       true,
		CanConvertToPath: true,
		ToPath: func(a reify.Attributes) (pathdata.Data, error) {
			v := a.Values
			return pathdata.Line(geom.Pt(v["x1"], v["y1"]), geom.Pt(v["x2"], v["y2"])), nil
		},
	}
}

func (l *Line) store(a reify.Attributes, s style.Style) {
	storeFields(l.fields(), a, s)
	l.Presentation.store(a, s)
}
