package pathdata

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vasalvit/svgkit/geom"
)

func TestShapes(t *testing.T) {
	tests := []struct {
		Description string
		D           Data
		Want        string
	}{
		{"rect", Rect(1, 2, 10, 20, 0, 0), "M1,2 L11,2 L11,22 L1,22 L1,2 Z"},
		{"rounded rect", Rect(0, 0, 10, 20, 2, 3), "M2,0 L8,0 A2,3 0 0 1 10,3 L10,17 A2,3 0 0 1 8,20 L2,20 A2,3 0 0 1 0,17 L0,3 A2,3 0 0 1 2,0 Z"},
		{"rounded rect clamps radii", Rect(0, 0, 10, 10, 50, 1), "M5,0 L5,0 A5,1 0 0 1 10,1 L10,9 A5,1 0 0 1 5,10 L5,10 A5,1 0 0 1 0,9 L0,1 A5,1 0 0 1 5,0 Z"},
		{"circle", Circle(10, 10, 5), "M15,10 A5,5 0 0 1 5,10 A5,5 0 0 1 15,10 Z"},
		{"ellipse", Ellipse(0, 0, 4, 2), "M4,0 A4,2 0 0 1 -4,0 A4,2 0 0 1 4,0 Z"},
		{"line", Line(geom.Pt(1, 2), geom.Pt(3, 4)), "M1,2 L3,4"},
		{"polyline", Polyline([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}}), "M0,0 L1,1 L2,0"},
		{"polygon", Polygon([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}}), "M0,0 L1,1 L2,0 Z"},
	}
	for _, test := range tests {
		assert.Equal(t, test.Want, test.D.String(), test.Description)
		assert.NoError(t, test.D.Validate(), test.Description)
	}

	assert.Nil(t, Polyline(nil))
	assert.Nil(t, Polygon(nil))
}
