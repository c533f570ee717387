package reify

import (
	"math"

	"github.com/vasalvit/svgkit/geom"
)

// Role classifies a numeric attribute that is not a position.
type Role int

const (
	SizeX Role = iota + 1
	SizeY
	// Radius is a single length along both axes, like a circle's r.
	Radius
	// Stroke is a stroke length that does not follow the path, like
	// stroke-width.
	Stroke
	// Distance is a length measured along the path. It scales with the
	// stroke unless the element sets pathLength, which makes it relative
	// to that authored length instead.
	Distance
)

// Pair names the two attributes of a position. Width and Height, when
// set, name the extent the position is the corner of. Kinds lists the
// elements that carry the pair even when both attributes are absent,
// with an implied value of zero.
type Pair struct {
	X, Y          string
	Width, Height string
	Kinds         []string
}

// DefaultPairs are the position attributes of the basic shapes.
var DefaultPairs = []Pair{
	{X: "x", Y: "y", Width: "width", Height: "height", Kinds: []string{"rect", "image", "use", "text", "svg", "foreignObject"}},
	{X: "cx", Y: "cy", Kinds: []string{"circle", "ellipse"}},
	{X: "x1", Y: "y1", Kinds: []string{"line"}},
	{X: "x2", Y: "y2", Kinds: []string{"line"}},
}

// DefaultRoles classifies the non-position geometry attributes.
var DefaultRoles = map[string]Role{
	"width":             SizeX,
	"height":            SizeY,
	"rx":                SizeX,
	"ry":                SizeY,
	"r":                 Radius,
	"font-size":         Radius,
	"stroke-width":      Stroke,
	"stroke-dashoffset": Distance,
}

// DefaultMirrored lists attribute pairs where an absent one takes the value
// of the other, like rect's rx and ry.
var DefaultMirrored = [][2]string{{"rx", "ry"}}

// StrokePolicy returns the factor stroke lengths are multiplied by under m.
type StrokePolicy func(m geom.Matrix) float64

// GeometricMean scales strokes by sqrt(|det|), which is sqrt(|a·d|) for an
// axis aligned scale. It is exact for uniform scales and an approximation
// otherwise, since a non-uniformly scaled stroke has no single width.
func GeometricMean(m geom.Matrix) float64 {
	return math.Sqrt(math.Abs(m.Det()))
}

// SkipPolicy decides which elements are left untouched.
type SkipPolicy struct {
	// Kinds are element names that are never reified.
	Kinds map[string]bool
	// Units are paint server unit values whose coordinates depend on the
	// element's bounding box. The empty string stands for unspecified.
	Units map[string]bool
	// References skips elements that reference another element.
	References bool
	// Links are properties whose element references are evaluated in the
	// element's own coordinates, such as clip paths and masks.
	Links map[string]bool
}

// DefaultSkipPolicy skips use and pattern elements, references, elements
// that are clipped, masked, filtered or carry markers, and elements painted
// by bounding box relative paint servers.
func DefaultSkipPolicy() SkipPolicy {
	return SkipPolicy{
		Kinds:      map[string]bool{"use": true, "pattern": true},
		Units:      map[string]bool{"": true, "objectBoundingBox": true},
		References: true,
		Links: map[string]bool{
			"clip-path":    true,
			"mask":         true,
			"filter":       true,
			"marker":       true,
			"marker-start": true,
			"marker-mid":   true,
			"marker-end":   true,
		},
	}
}

// Match returns the reason a is skipped, or "" when it is not.
func (p SkipPolicy) Match(a Attributes) string {
	if p.Kinds[a.Kind] {
		return "reuse element " + a.Kind
	}
	if p.References && a.Href != "" {
		return "references " + a.Href
	}
	for _, link := range a.Links {
		if p.Links[link.Property] {
			return link.Property + " references " + link.ID
		}
	}
	for _, ref := range a.Paint {
		if p.Units[ref.Units] {
			return ref.Property + " uses bounding box units"
		}
	}
	return ""
}

type options struct {
	tolerance float64
	stroke    StrokePolicy
	skip      SkipPolicy
	pairs     []Pair
	roles     map[string]Role
	mirrored  [][2]string
}

// Option configures Reify.
type Option func(*options)

func defaultOptions() options {
	return options{
		tolerance: geom.Epsilon,
		stroke:    GeometricMean,
		skip:      DefaultSkipPolicy(),
		pairs:     DefaultPairs,
		roles:     DefaultRoles,
		mirrored:  DefaultMirrored,
	}
}

// WithTolerance sets how close matrix entries must be to count as equal
// when classifying the transform. Larger values treat more near-scales as
// pure scales instead of converting to a path.
func WithTolerance(eps float64) Option {
	return func(o *options) {
		o.tolerance = eps
	}
}

// WithStrokePolicy replaces GeometricMean.
func WithStrokePolicy(p StrokePolicy) Option {
	return func(o *options) {
		o.stroke = p
	}
}

func WithSkipPolicy(p SkipPolicy) Option {
	return func(o *options) {
		o.skip = p
	}
}

// WithRoles replaces the attribute role table.
func WithRoles(roles map[string]Role) Option {
	return func(o *options) {
		o.roles = roles
	}
}

// WithPairs replaces the position table.
func WithPairs(pairs []Pair) Option {
	return func(o *options) {
		o.pairs = pairs
	}
}
