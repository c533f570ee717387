package reify

import (
	"fmt"
	"math"
	"slices"

	"github.com/vasalvit/svgkit/geom"
	"github.com/vasalvit/svgkit/internal/logging"
	"github.com/vasalvit/svgkit/pathdata"
	"github.com/vasalvit/svgkit/transform"
)

// Reify moves the transform list l into the element described by attrs.
//
// Elements matching the skip policy are Skipped. Point-only elements take
// any transform directly. Other elements take a translation combined with
// a positive scale through their position and size attributes, except
// that a single radius only takes a uniform scale. Everything else goes
// through caps.ToPath and comes back as ConvertedToPath, or fails with an
// UnsupportedTransformError when the element cannot become a path.
//
// attrs is never modified.
func Reify(l transform.List, attrs Attributes, caps Capabilities, opts ...Option) (Outcome, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := logging.With("reify")

	if reason := o.skip.Match(attrs); reason != "" {
		log.Debug("skipped", "kind", attrs.Kind, "reason", reason)
		return Outcome{Kind: Skipped, Attributes: attrs}, nil
	}

	m := transform.Compose(l)
	tol := o.tolerance
	switch {
	case m.IsIdentity(tol):
		return Outcome{Kind: Applied, Attributes: attrs.Clone()}, nil
	case caps.PointsOnly:
		return Outcome{Kind: Applied, Attributes: o.applyPoints(attrs, m)}, nil
	case m.IsAxisAligned(tol) && m.A() > tol && m.D() > tol:
		if geom.Equal(m.A(), m.D(), tol) || !o.has(attrs, Radius) {
			return Outcome{Kind: Applied, Attributes: o.applyScale(attrs, m)}, nil
		}
	}

	if !caps.CanConvertToPath || caps.ToPath == nil {
		log.Debug("unsupported", "kind", attrs.Kind, "matrix", m.String())
		return Outcome{}, &UnsupportedTransformError{Kind: attrs.Kind, Matrix: m}
	}
	d, err := caps.ToPath(attrs)
	if err != nil {
		return Outcome{}, fmt.Errorf("reify: convert <%s> to path: %w", attrs.Kind, err)
	}
	log.Debug("converted to path", "kind", attrs.Kind, "matrix", m.String())
	return Outcome{Kind: ConvertedToPath, Attributes: o.convert(attrs, d, m)}, nil
}

// has reports whether any present attribute has the role r.
func (o *options) has(a Attributes, r Role) bool {
	for name := range a.Values {
		if o.roles[name] == r {
			return true
		}
	}
	return false
}

// applyPoints maps every position, point and path coordinate through m.
func (o *options) applyPoints(a Attributes, m geom.Matrix) Attributes {
	out := a.Clone()
	for _, p := range o.pairs {
		if !o.carries(&out, p) {
			continue
		}
		q := m.Apply(geom.Pt(out.Values[p.X], out.Values[p.Y]))
		out.Values[p.X], out.Values[p.Y] = q.X, q.Y
	}
	for i, p := range out.Points {
		out.Points[i] = m.Apply(p)
	}
	if out.Path != nil {
		out.Path = pathdata.Transform(out.Path, m)
	}
	o.scaleStroke(&out, m)
	return out
}

// applyScale handles a translation plus a positive, axis aligned scale.
func (o *options) applyScale(a Attributes, m geom.Matrix) Attributes {
	out := a.Clone()
	sx, sy := m.A(), m.D()
	if !geom.Equal(sx, sy, o.tolerance) {
		for _, pair := range o.mirrored {
			o.mirror(&out, pair[0], pair[1])
		}
	}
	for _, p := range o.pairs {
		if !o.carries(&out, p) {
			continue
		}
		out.Values[p.X] = sx*out.Values[p.X] + m.E()
		out.Values[p.Y] = sy*out.Values[p.Y] + m.F()
	}
	for name, v := range out.Values {
		switch o.roles[name] {
		case SizeX:
			out.Values[name] = v * sx
		case SizeY:
			out.Values[name] = v * sy
		case Radius:
			out.Values[name] = v * sx
		}
	}
	o.scaleStroke(&out, m)
	return out
}

// convert builds the attributes of the path replacing a. Geometry
// attributes are dropped, the others are kept.
func (o *options) convert(a Attributes, d pathdata.Data, m geom.Matrix) Attributes {
	out := a.Clone()
	out.Kind = "path"
	out.Points = nil
	out.Path = pathdata.Transform(d, m)
	for _, p := range o.pairs {
		delete(out.Values, p.X)
		delete(out.Values, p.Y)
	}
	for name := range out.Values {
		if r := o.roles[name]; r != 0 && r != Stroke && r != Distance {
			delete(out.Values, name)
		}
	}
	if len(out.Values) == 0 {
		out.Values = nil
	}
	o.scaleStroke(&out, m)
	return out
}

// carries reports whether a has the position pair p, and if so makes sure
// both of its attributes are set.
func (o *options) carries(a *Attributes, p Pair) bool {
	if !a.Has(p.X) && !a.Has(p.Y) && !slices.Contains(p.Kinds, a.Kind) {
		return false
	}
	if a.Values == nil {
		a.Values = make(map[string]float64)
	}
	a.Values[p.X] += 0
	a.Values[p.Y] += 0
	return true
}

// mirror writes the implied value of an absent attribute of a mirrored
// pair, since a non-uniform scale makes the two differ.
func (o *options) mirror(a *Attributes, x, y string) {
	switch {
	case a.Has(x) && !a.Has(y):
		a.Values[y] = a.Values[x]
	case a.Has(y) && !a.Has(x):
		a.Values[x] = a.Values[y]
	}
}

func (o *options) scaleStroke(a *Attributes, m geom.Matrix) {
	if a.NonScalingStroke {
		return
	}
	k := o.stroke(m)
	if math.IsNaN(k) || math.IsInf(k, 0) {
		return
	}
	authored := a.Has("pathLength")
	for name, v := range a.Values {
		if r := o.roles[name]; r == Stroke || (r == Distance && !authored) {
			a.Values[name] = v * k
		}
	}
	if authored {
		return
	}
	for i := range a.Dashes {
		a.Dashes[i] *= k
	}
}
