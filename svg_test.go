package svg

import (
	"encoding/xml"
	"errors"
	"math"
	"runtime"
	"testing"
	"time"

	"github.com/cheekybits/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasalvit/svgkit/geom"
	"github.com/vasalvit/svgkit/pathdata"
	"github.com/vasalvit/svgkit/reify"
	"github.com/vasalvit/svgkit/style"
	"github.com/vasalvit/svgkit/transform"
)

func TestDecode(t *testing.T) {
	is := is.New(t)

	var r Rect
	err := xml.Unmarshal([]byte(`<rect id="r1" x="207" y="53" fill="#009FE3" width="181.667" height="85.333" transform="matrix(1 0 0 1 232.3306 107.5952)"/>`), &r)
	is.NoErr(err)
	is.Equal(r.ID, "r1")
	is.Equal(r.Width, "181.667")
	is.Equal(r.Transform, "matrix(1 0 0 1 232.3306 107.5952)")

	var u Use
	err = xml.Unmarshal([]byte(`<use xmlns:xlink="http://www.w3.org/1999/xlink" xlink:href="#r1" x="5"/>`), &u)
	is.NoErr(err)
	is.Equal(u.Href, "#r1")
}

func TestReifyRect(t *testing.T) {
	is := is.New(t)

	r := &Rect{X: "10", Y: "20", Width: "30", Height: "40", Rx: "5"}
	r.Transform = "translate(5 5) scale(2 3)"
	r.StrokeWidth = "2"

	e, out, err := NewReifier().Reify(r)
	is.NoErr(err)
	is.Equal(out.Kind, reify.Applied)
	is.Equal(e, r)
	is.Equal(r.Transform, "")
	is.Equal(r.X, "25")
	is.Equal(r.Y, "65")
	is.Equal(r.Width, "60")
	is.Equal(r.Height, "120")
	is.Equal(r.Rx, "10")
	is.Equal(r.Ry, "15")
	is.Equal(r.StrokeWidth, style.Default().FormatNumber(2*math.Sqrt(6)))
}

func TestReifyCircle(t *testing.T) {
	is := is.New(t)

	c := &Circle{Cx: "10", Cy: "20", Radius: "5"}
	c.Transform = "translate(1, 1) scale(2)"
	c.Fill = "red"
	_, out, err := NewReifier().Reify(c)
	is.NoErr(err)
	is.Equal(out.Kind, reify.Applied)
	is.Equal(c.Cx, "21")
	is.Equal(c.Cy, "41")
	is.Equal(c.Radius, "10")
	is.Equal(c.Fill, "red")
}

func TestCircleBecomesPath(t *testing.T) {
	c := &Circle{Cx: "10", Cy: "20", Radius: "5"}
	c.ID = "c1"
	c.Transform = "rotate(30) scale(1 2)"
	c.StrokeWidth = "1"

	e, out, err := NewReifier().Reify(c)
	require.NoError(t, err)
	require.Equal(t, reify.ConvertedToPath, out.Kind)

	p, ok := e.(*Path)
	require.True(t, ok)
	assert.Equal(t, "c1", p.ID)
	assert.Empty(t, p.Transform)
	assert.Equal(t, "rotate(30) scale(1 2)", c.Transform)

	got, err := pathdata.Parse(p.D)
	require.NoError(t, err)
	m := transform.Compose(transform.MustParse("rotate(30) scale(1 2)"))
	want := pathdata.Transform(pathdata.Circle(10, 20, 5), m)
	assert.True(t, got.Equal(want, 1e-9), "%s != %s", got, want)
	width, err := parseLength(p.StrokeWidth)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(2), width, 1e-12)
}

func TestReifyPoints(t *testing.T) {
	is := is.New(t)

	pl := &Polyline{Points: "0,0 10,0 10,10"}
	pl.Transform = "translate(1 2)"
	_, out, err := NewReifier().Reify(pl)
	is.NoErr(err)
	is.Equal(out.Kind, reify.Applied)
	is.Equal(pl.Points, "1,2 11,2 11,12")

	pg := &Polygon{Points: "0 0 4 0 4 4"}
	pg.Transform = "scale(-1 1)"
	_, out, err = NewReifier().Reify(pg)
	is.NoErr(err)
	is.Equal(out.Kind, reify.Applied)
	is.Equal(pg.Points, "0,0 -4,0 -4,4")

	l := &Line{X2: "10", Y2: "0"}
	l.Transform = "matrix(0 1 -1 0 3 4)"
	_, out, err = NewReifier().Reify(l)
	is.NoErr(err)
	is.Equal(out.Kind, reify.Applied)
	is.Equal(l.X1, "3")
	is.Equal(l.Y1, "4")
	is.Equal(l.X2, "3")
	is.Equal(l.Y2, "14")

	p := &Path{D: "M0,0 L10,10 h5 Z"}
	p.Transform = "translate(5,5)"
	_, out, err = NewReifier().Reify(p)
	is.NoErr(err)
	is.Equal(out.Kind, reify.Applied)
	is.Equal(p.D, "M5,5 L15,15 h5 Z")
}

func TestReifyImage(t *testing.T) {
	img := &Image{X: "0", Y: "0", Width: "10", Height: "10", Href: "cat.png"}
	img.Transform = "scale(2 3)"
	_, _, err := NewReifier().Reify(img)
	assert.True(t, errors.Is(err, reify.ErrUnsupportedTransform))
	assert.Equal(t, "10", img.Width)

	img.PreserveAspectRatio = "none"
	_, out, err := NewReifier().Reify(img)
	require.NoError(t, err)
	assert.Equal(t, reify.Applied, out.Kind)
	assert.Equal(t, "20", img.Width)
	assert.Equal(t, "30", img.Height)

	img.PreserveAspectRatio = ""
	img.Transform = "translate(1) scale(2)"
	_, out, err = NewReifier().Reify(img)
	require.NoError(t, err)
	assert.Equal(t, reify.Applied, out.Kind)
	assert.Equal(t, "1", img.X)
	assert.Equal(t, "40", img.Width)
	assert.Equal(t, "60", img.Height)
}

func TestSkipped(t *testing.T) {
	is := is.New(t)

	u := &Use{X: "1", Href: "#r1"}
	u.Transform = "rotate(10)"
	e, out, err := NewReifier().Reify(u)
	is.NoErr(err)
	is.Equal(out.Kind, reify.Skipped)
	is.Equal(e, u)
	is.Equal(u.Transform, "rotate(10)")
	is.Equal(u.X, "1")

	r := &Rect{Width: "10", Height: "10"}
	r.Fill = "url(#g)"
	r.Transform = "translate(1)"
	_, out, err = NewReifier().Reify(r)
	is.NoErr(err)
	is.Equal(out.Kind, reify.Skipped)
	is.Equal(r.Transform, "translate(1)")

	rf := NewReifier()
	rf.Units = PaintUnits{"g": "userSpaceOnUse"}
	_, out, err = rf.Reify(r)
	is.NoErr(err)
	is.Equal(out.Kind, reify.Applied)
	is.Equal(r.X, "1")
	is.Equal(r.Y, "0")
}

func TestStyleAttribute(t *testing.T) {
	is := is.New(t)

	c := &Circle{Radius: "1"}
	c.Style = "fill:red; stroke-width:2"
	c.StrokeWidth = "7"
	c.StrokeDasharray = "1,2"
	c.Transform = "scale(2)"
	_, _, err := NewReifier().Reify(c)
	is.NoErr(err)
	is.Equal(c.Style, "fill:red;stroke-width:4")
	is.Equal(c.StrokeWidth, "7")
	is.Equal(c.StrokeDasharray, "2 4")

	c.Style = "vector-effect:non-scaling-stroke"
	c.Transform = "scale(2)"
	_, _, err = NewReifier().Reify(c)
	is.NoErr(err)
	is.Equal(c.StrokeWidth, "7")
	is.Equal(c.Radius, "4")
}

func TestTransformOrigin(t *testing.T) {
	r := &Rect{Width: "10", Height: "10"}
	r.Transform = "scale(2)"
	r.TransformOrigin = "5 5"
	_, out, err := NewReifier().Reify(r)
	require.NoError(t, err)
	assert.Equal(t, reify.Applied, out.Kind)
	assert.Equal(t, "-5", r.X)
	assert.Equal(t, "-5", r.Y)
	assert.Equal(t, "20", r.Width)
	assert.Empty(t, r.TransformOrigin)

	r.Transform = "scale(2)"
	r.TransformOrigin = "center"
	_, _, err = NewReifier().Reify(r)
	assert.Error(t, err)
}

func TestReifyErrors(t *testing.T) {
	tests := []struct {
		Description string
		Element     Element
	}{
		{"bad transform", &Circle{Presentation: Presentation{Transform: "scale(1 2 3)"}}},
		{"bad length", &Rect{Width: "10em", Presentation: Presentation{Transform: "scale(2)"}}},
		{"bad path", &Path{D: "L0 0", Presentation: Presentation{Transform: "scale(2)"}}},
		{"odd points", &Polyline{Points: "1 2 3", Presentation: Presentation{Transform: "scale(2)"}}},
		{"bad stroke", &Line{Presentation: Presentation{Transform: "scale(2)", StrokeWidth: "thick"}}},
	}
	for _, test := range tests {
		e, _, err := NewReifier().Reify(test.Element)
		assert.Error(t, err, test.Description)
		assert.Equal(t, test.Element, e, test.Description)
	}
}

func TestParsePoints(t *testing.T) {
	tests := []struct {
		Description string
		In          string
		Want        []geom.Point
	}{
		{"commas and spaces", "0,0 10,0 10.5,10", []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10.5, Y: 10}}},
		{"empty", "", nil},
		{"leading dot", "1,1 .5,.5", []geom.Point{{X: 1, Y: 1}, {X: 0.5, Y: 0.5}}},
		{"crlf", "1,1\r\n2,2", []geom.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}},
		{"form feed", "1,1\f2,2", []geom.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}},
		{"second fraction starts a number", "1.5.5", []geom.Point{{X: 1.5, Y: 0.5}}},
		{"signs", "-1,+2 3-4", []geom.Point{{X: -1, Y: 2}, {X: 3, Y: -4}}},
		{"exponent", "1e1,2", []geom.Point{{X: 10, Y: 2}}},
		{"trailing whitespace", " 1 2 \t", []geom.Point{{X: 1, Y: 2}}},
	}
	for _, test := range tests {
		points, err := ParsePoints(test.In)
		require.NoError(t, err, test.Description)
		assert.Equal(t, test.Want, points, test.Description)
	}

	points, err := ParsePoints("1 2 3")
	assert.Error(t, err)
	assert.Equal(t, []geom.Point{{X: 1, Y: 2}}, points)

	for _, in := range []string{"1 2 x 3", "1,2 (3,4)", "1 2 - 3"} {
		_, err := ParsePoints(in)
		assert.Error(t, err, in)
	}
}

func TestParsePointsReleasesLexer(t *testing.T) {
	before := runtime.NumGoroutine()
	for i := 0; i < 100; i++ {
		_, _ = ParsePoints("0,0 10,10")
		_, _ = ParsePoints("0,0 x")
	}
	assert.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= before+2
	}, time.Second, 10*time.Millisecond)
}

func TestParseLength(t *testing.T) {
	for in, want := range map[string]float64{"10": 10, " 2.5px ": 2.5, "-3": -3, "1e2": 100} {
		got, err := parseLength(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{"", "10%", "1 2", "px"} {
		_, err := parseLength(in)
		assert.Error(t, err, in)
	}
}

func TestURLRef(t *testing.T) {
	id, ok := urlRef(` url("#grad") `)
	assert.True(t, ok)
	assert.Equal(t, "grad", id)

	_, ok = urlRef("#fff")
	assert.False(t, ok)
}

func TestSkipLinkedElements(t *testing.T) {
	is := is.New(t)

	var r Rect
	err := xml.Unmarshal([]byte(`<rect x="0" width="10" height="10" clip-path="url(#c)" mask="url(#m)" transform="translate(5 5)"/>`), &r)
	is.NoErr(err)
	_, out, err := NewReifier().Reify(&r)
	is.NoErr(err)
	is.Equal(out.Kind, reify.Skipped)
	is.Equal(r.X, "0")
	is.Equal(r.Transform, "translate(5 5)")

	for _, st := range []string{"filter:url(#f)", "marker: url(#dot)", "marker-end:url('#arrow')"} {
		l := &Line{X2: "10"}
		l.Style = st
		l.Transform = "translate(5 5)"
		_, out, err := NewReifier().Reify(l)
		is.NoErr(err)
		is.Equal(out.Kind, reify.Skipped)
		is.Equal(l.X2, "10")
	}

	c := &Circle{Radius: "1"}
	c.ClipPath = "none"
	c.Transform = "translate(5 5)"
	_, out, err = NewReifier().Reify(c)
	is.NoErr(err)
	is.Equal(out.Kind, reify.Applied)
	is.Equal(c.Cx, "5")
}

func TestPathLength(t *testing.T) {
	is := is.New(t)

	p := &Path{D: "M0,0 L10,0"}
	p.StrokeDasharray = "10 5"
	p.StrokeDashoffset = "2"
	p.StrokeWidth = "1"
	p.Transform = "scale(2)"
	_, _, err := NewReifier().Reify(p)
	is.NoErr(err)
	is.Equal(p.StrokeDasharray, "20 10")
	is.Equal(p.StrokeDashoffset, "4")

	p = &Path{D: "M0,0 L10,0"}
	p.PathLength = "100"
	p.StrokeDasharray = "10 5"
	p.StrokeDashoffset = "2"
	p.StrokeWidth = "1"
	p.Transform = "scale(2)"
	_, out, err := NewReifier().Reify(p)
	is.NoErr(err)
	is.Equal(out.Kind, reify.Applied)
	is.Equal(p.D, "M0,0 L20,0")
	is.Equal(p.StrokeDasharray, "10 5")
	is.Equal(p.StrokeDashoffset, "2")
	is.Equal(p.StrokeWidth, "2")
	is.Equal(p.PathLength, "100")

	c := &Circle{Cx: "0", Cy: "0", Radius: "5"}
	c.PathLength = "10"
	c.StrokeDasharray = "1"
	c.Transform = "scale(1 2)"
	e, out, err := NewReifier().Reify(c)
	is.NoErr(err)
	is.Equal(out.Kind, reify.ConvertedToPath)
	path := e.(*Path)
	is.Equal(path.PathLength, "10")
	is.Equal(path.StrokeDasharray, "1")
}
