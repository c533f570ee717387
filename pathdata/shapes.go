package pathdata

import (
	"math"

	"github.com/vasalvit/svgkit/geom"
)

// Rect returns the outline of a rectangle, clockwise from the top left
// corner: four lines and a close. Corner radii are clamped to half the
// side lengths; when either is zero the corners are sharp.
func Rect(x, y, w, h, rx, ry float64) Data {
	rx = math.Min(math.Abs(rx), w/2)
	ry = math.Min(math.Abs(ry), h/2)
	if rx <= 0 || ry <= 0 {
		return Data{
			MoveTo{End: geom.Pt(x, y)},
			LineTo{End: geom.Pt(x+w, y)},
			LineTo{End: geom.Pt(x+w, y+h)},
			LineTo{End: geom.Pt(x, y+h)},
			LineTo{End: geom.Pt(x, y)},
			ClosePath{},
		}
	}
	r := geom.Pt(rx, ry)
	return Data{
		MoveTo{End: geom.Pt(x+rx, y)},
		LineTo{End: geom.Pt(x+w-rx, y)},
		ArcTo{Radii: r, Sweep: true, End: geom.Pt(x+w, y+ry)},
		LineTo{End: geom.Pt(x+w, y+h-ry)},
		ArcTo{Radii: r, Sweep: true, End: geom.Pt(x+w-rx, y+h)},
		LineTo{End: geom.Pt(x+rx, y+h)},
		ArcTo{Radii: r, Sweep: true, End: geom.Pt(x, y+h-ry)},
		LineTo{End: geom.Pt(x, y+ry)},
		ArcTo{Radii: r, Sweep: true, End: geom.Pt(x+rx, y)},
		ClosePath{},
	}
}

// Ellipse returns an ellipse as two half arcs starting at its rightmost
// point.
func Ellipse(cx, cy, rx, ry float64) Data {
	r := geom.Pt(math.Abs(rx), math.Abs(ry))
	return Data{
		MoveTo{End: geom.Pt(cx+r.X, cy)},
		ArcTo{Radii: r, Sweep: true, End: geom.Pt(cx-r.X, cy)},
		ArcTo{Radii: r, Sweep: true, End: geom.Pt(cx+r.X, cy)},
		ClosePath{},
	}
}

func Circle(cx, cy, r float64) Data {
	return Ellipse(cx, cy, r, r)
}

// Line returns a single segment from p1 to p2.
func Line(p1, p2 geom.Point) Data {
	return Data{MoveTo{End: p1}, LineTo{End: p2}}
}

// Polyline connects points with lines. It returns nil for no points.
func Polyline(points []geom.Point) Data {
	if len(points) == 0 {
		return nil
	}
	d := make(Data, 0, len(points))
	d = append(d, MoveTo{End: points[0]})
	for _, p := range points[1:] {
		d = append(d, LineTo{End: p})
	}
	return d
}

// Polygon is a closed Polyline.
func Polygon(points []geom.Point) Data {
	d := Polyline(points)
	if d == nil {
		return nil
	}
	return append(d, ClosePath{})
}
