package pathdata

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasalvit/svgkit/geom"
)

func TestTransformTranslate(t *testing.T) {
	d := MustParse("M0 0 L10 0 l0 10 H5 v-5 Z")
	got := Transform(d, geom.Translation(5, 5))
	assert.True(t, got.Equal(MustParse("M5 5 L15 5 l0 10 H10 v-5 Z"), 1e-12), got.String())
}

func TestTransformRelativeUsesLinearPart(t *testing.T) {
	m := geom.Translation(100, 0).Mul(geom.Scaling(2, 2))
	got := Transform(MustParse("M1 1 l2 0"), m)
	assert.True(t, got.Equal(MustParse("M102 2 l4 0"), 1e-12), got.String())
}

func TestTransformRotatedLines(t *testing.T) {
	got := Transform(MustParse("M0 0 H10 v10"), geom.Rotation(90))
	require.Len(t, got, 3)
	h, ok := got[1].(LineTo)
	require.True(t, ok, "horizontal line should become a line, got %T", got[1])
	assert.True(t, h.End.Equal(geom.Pt(0, 10), 1e-12))
	v, ok := got[2].(LineTo)
	require.True(t, ok)
	assert.True(t, v.Relative)
	assert.True(t, v.End.Equal(geom.Pt(-10, 0), 1e-12))
}

func TestTransformMapsEndpoints(t *testing.T) {
	d := MustParse("M1 2 l3 4 h5 V20 c1 2 3 4 5 6 s1 1 2 2 Q30 30 40 40 t5 5 a3 4 10 1 0 6 7 z m1 1 L0 0")
	m := geom.Translation(3, -7).Mul(geom.Rotation(33)).Mul(geom.NewMatrix(1, 0.2, 0.5, 1.5, 0, 0))
	got := Transform(d, m).Absolute()
	abs := d.Absolute()
	require.Len(t, got, len(abs))

	var before, after cursor
	for i := range abs {
		before.step(abs[i])
		after.step(got[i])
		assert.True(t, after.cur.Equal(m.Apply(before.cur), 1e-9), "command %d: %v vs %v", i, after.cur, m.Apply(before.cur))
	}
	for i, cmd := range abs {
		if _, ok := cmd.(SmoothCubicTo); ok {
			want, _ := abs.ImplicitControl(i)
			have, _ := got.ImplicitControl(i)
			assert.True(t, have.Equal(m.Apply(want), 1e-9))
		}
	}
}

func TestTransformArcUniformScale(t *testing.T) {
	got := Transform(MustParse("M0 0 A5 10 30 1 0 20 0"), geom.Scaling(3, 3))
	arc := got[1].(ArcTo)
	assert.Equal(t, geom.Pt(15, 30), arc.Radii)
	assert.Equal(t, 30.0, arc.Rotation)
	assert.True(t, arc.Large)
	assert.False(t, arc.Sweep)
	assert.Equal(t, geom.Pt(60, 0), arc.End)
}

func TestTransformArcReflectionFlipsSweep(t *testing.T) {
	got := Transform(MustParse("M0 0 A5 5 0 0 1 10 0"), geom.Scaling(-1, 1))
	arc := got[1].(ArcTo)
	assert.True(t, arc.Radii.Equal(geom.Pt(5, 5), 1e-12))
	assert.False(t, arc.Sweep)
}

func TestTransformArcSingular(t *testing.T) {
	radii, _, _ := TransformArc(geom.Scaling(1, 0), geom.Pt(5, 5), 0, true)
	assert.InDelta(t, 5, radii.X, 1e-12)
	assert.InDelta(t, 0, radii.Y, 1e-12)
}

// onEllipse measures how far p is from the ellipse with the given center,
// radii and rotation, as |(x/rx)² + (y/ry)² - 1| in the ellipse frame.
func onEllipse(p, center, radii geom.Point, rotation float64) float64 {
	sin, cos := math.Sincos(rotation * math.Pi / 180)
	l := p.Sub(center)
	x := l.X*cos + l.Y*sin
	y := -l.X*sin + l.Y*cos
	return math.Abs(x*x/(radii.X*radii.X) + y*y/(radii.Y*radii.Y) - 1)
}

func TestTransformArcGeneral(t *testing.T) {
	center, r := geom.Pt(10, 20), 5.0
	matrices := []geom.Matrix{
		geom.Translation(3, 4).Mul(geom.Rotation(30)).Mul(geom.Scaling(2, 1)),
		geom.Scaling(1, 3),
		geom.NewMatrix(1, 0, 0.7, 1, 0, 0),
		geom.Rotation(-75).Mul(geom.Scaling(-2, 0.5)),
	}
	for _, m := range matrices {
		got := Transform(Circle(center.X, center.Y, r), m)
		require.Len(t, got, 4)
		first, second := got[1].(ArcTo), got[2].(ArcTo)
		assert.True(t, first.End.Equal(m.Apply(geom.Pt(center.X-r, center.Y)), 1e-9))
		assert.True(t, second.End.Equal(m.Apply(geom.Pt(center.X+r, center.Y)), 1e-9))
		assert.GreaterOrEqual(t, first.Rotation, 0.0)
		assert.Less(t, first.Rotation, 180.0)
		assert.Equal(t, m.Det() < 0, !first.Sweep)

		c := m.Apply(center)
		for deg := 0.0; deg < 360; deg += 15 {
			sin, cos := math.Sincos(deg * math.Pi / 180)
			p := m.Apply(center.Add(geom.Pt(r*cos, r*sin)))
			assert.Less(t, onEllipse(p, c, first.Radii, first.Rotation), 1e-9, "%v at %v degrees", m, deg)
		}
	}
}

func TestTransformRotatedEllipse(t *testing.T) {
	// an ellipse rotated by 20 degrees then by 40 more
	d := Data{MoveTo{}, ArcTo{Radii: geom.Pt(8, 3), Rotation: 20, Sweep: true, End: geom.Pt(1, 1)}}
	arc := Transform(d, geom.Rotation(40))[1].(ArcTo)
	assert.InDelta(t, 8, arc.Radii.X, 1e-9)
	assert.InDelta(t, 3, arc.Radii.Y, 1e-9)
	assert.InDelta(t, 60, arc.Rotation, 1e-9)
}
