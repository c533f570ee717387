// Package reify bakes an element's transform into its own geometry
// attributes, converting the element to a path when the attributes cannot
// express the transform.
package reify

import (
	"maps"
	"slices"

	"github.com/vasalvit/svgkit/geom"
	"github.com/vasalvit/svgkit/pathdata"
)

// PaintRef is a fill or stroke that points at a paint server such as a
// gradient or pattern.
type PaintRef struct {
	Property string // "fill" or "stroke"
	ID       string
	// Units is the paint server's gradientUnits or patternUnits value.
	// Empty means unspecified, which SVG treats as objectBoundingBox.
	Units string
}

// Link is a property that points at another element, like
// clip-path="url(#c)".
type Link struct {
	Property string
	ID       string
}

// Attributes are the geometry-bearing attributes of one element, as plain
// values owned by the caller.
type Attributes struct {
	// Kind is the element name, e.g. "rect".
	Kind string
	// Values holds numeric attributes by SVG name. Only present attributes
	// are listed.
	Values map[string]float64
	// Points is the points attribute of polylines and polygons.
	Points []geom.Point
	// Path is the d attribute of paths.
	Path   pathdata.Data
	Dashes []float64
	Paint  []PaintRef
	Links  []Link
	// NonScalingStroke is set by vector-effect="non-scaling-stroke".
	NonScalingStroke bool
	// Href is the element referenced by a use element, if any.
	Href string
}

// Clone returns a deep copy.
func (a Attributes) Clone() Attributes {
	out := a
	out.Values = maps.Clone(a.Values)
	out.Points = slices.Clone(a.Points)
	out.Path = a.Path.Clone()
	out.Dashes = slices.Clone(a.Dashes)
	out.Paint = slices.Clone(a.Paint)
	out.Links = slices.Clone(a.Links)
	return out
}

// Has reports whether the numeric attribute name is present.
func (a Attributes) Has(name string) bool {
	_, ok := a.Values[name]
	return ok
}

// Capabilities describes what an element can do besides editing its
// attributes.
type Capabilities struct {
	// CanConvertToPath is set when ToPath can turn the element into path
	// data.
	CanConvertToPath bool
	ToPath           func(Attributes) (pathdata.Data, error)
	// PointsOnly is set for elements whose geometry is a list of points
	// (lines, polylines, polygons, paths). Any affine map applies to them
	// exactly.
	PointsOnly bool
}

// OutcomeKind says what Reify did.
type OutcomeKind int

const (
	// Applied means the transform now lives in the element's own
	// attributes.
	Applied OutcomeKind = iota
	// ConvertedToPath means the element must be replaced by a path with
	// the returned attributes.
	ConvertedToPath
	// Skipped means policy left the element alone. It is not an error.
	Skipped
)

func (k OutcomeKind) String() string {
	switch k {
	case Applied:
		return "applied"
	case ConvertedToPath:
		return "converted to path"
	case Skipped:
		return "skipped"
	}
	return "unknown"
}

// Outcome is the result of Reify. On Applied and ConvertedToPath the caller
// removes the transform attribute and stores Attributes; on Skipped
// Attributes is the unchanged input.
type Outcome struct {
	Kind       OutcomeKind
	Attributes Attributes
}
