// Package svg adapts SVG geometry elements to the reify engine. Each
// element struct carries its attributes as the raw strings found in the
// document, tagged for encoding/xml, and knows how to turn them into
// reify.Attributes and back.
package svg

import (
	"fmt"
	"log/slog"
	"maps"

	"github.com/vasalvit/svgkit/internal/logging"
	"github.com/vasalvit/svgkit/reify"
	"github.com/vasalvit/svgkit/style"
)

// SetLogger sets the logger used by every svgkit package. Logging is off
// until it is called; a nil logger turns it off again.
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Element is a geometry element that can take its own transform.
type Element interface {
	// Kind returns the element name, e.g. "rect".
	Kind() string
	// Attributes parses the geometry attributes.
	Attributes() (reify.Attributes, error)
	Capabilities() reify.Capabilities

	presentation() *Presentation
	store(a reify.Attributes, s style.Style)
}

// PaintUnits maps a paint server id to its gradientUnits or patternUnits
// value. Servers missing from the map count as unspecified.
type PaintUnits map[string]string

// Reifier moves transform attributes into element geometry.
type Reifier struct {
	// Units describes the paint servers of the document.
	Units PaintUnits
	// Style formats the numbers and path data written back.
	Style   style.Style
	Options []reify.Option
}

// NewReifier returns a Reifier writing with style.Default.
func NewReifier(opts ...reify.Option) *Reifier {
	return &Reifier{Style: style.Default(), Options: opts}
}

// Reify removes the transform of e by rewriting its geometry. On Applied
// e itself is updated and returned. On ConvertedToPath a new *Path that
// replaces e is returned and e is left as it was. On Skipped, or on error,
// e is returned unchanged.
func (r *Reifier) Reify(e Element) (Element, reify.Outcome, error) {
	p := e.presentation()
	l, err := p.TransformList()
	if err != nil {
		return e, reify.Outcome{}, fmt.Errorf("svg: <%s>: %w", e.Kind(), err)
	}
	attrs, err := e.Attributes()
	if err != nil {
		return e, reify.Outcome{}, err
	}
	for i, ref := range attrs.Paint {
		attrs.Paint[i].Units = r.Units[ref.ID]
	}

	opts := r.Options
	if a, ok := e.(aspectKeeper); ok && a.keepsAspect() {
		opts = append(opts[:len(opts):len(opts)], reify.WithRoles(aspectRoles))
	}
	out, err := reify.Reify(l, attrs, e.Capabilities(), opts...)
	if err != nil {
		return e, out, err
	}

	switch out.Kind {
	case reify.Applied:
		e.store(out.Attributes, r.Style)
		p.clearTransform()
	case reify.ConvertedToPath:
		path := &Path{Presentation: *p}
		path.clearTransform()
		path.store(out.Attributes, r.Style)
		return path, out, nil
	}
	return e, out, nil
}

// aspectKeeper is implemented by elements whose content keeps its aspect
// ratio inside the width and height box.
type aspectKeeper interface {
	keepsAspect() bool
}

// aspectRoles makes width and height scale together, so that only uniform
// scales are applied to the attributes.
var aspectRoles = func() map[string]reify.Role {
	roles := maps.Clone(reify.DefaultRoles)
	roles["width"] = reify.Radius
	roles["height"] = reify.Radius
	return roles
}()

// field binds an attribute name to the struct field holding its value.
type field struct {
	name  string
	value *string
}

// collect parses the numeric fields and the presentation attributes of an
// element.
func collect(kind string, p *Presentation, fields []field) (reify.Attributes, error) {
	a := reify.Attributes{Kind: kind}
	for _, f := range fields {
		if *f.value == "" {
			continue
		}
		v, err := parseLength(*f.value)
		if err != nil {
			return a, fmt.Errorf("svg: <%s %s=%q>: %w", kind, f.name, *f.value, err)
		}
		if a.Values == nil {
			a.Values = make(map[string]float64)
		}
		a.Values[f.name] = v
	}
	if err := p.collect(&a); err != nil {
		return a, fmt.Errorf("svg: <%s>: %w", kind, err)
	}
	return a, nil
}

// storeFields writes back every field present in a.
func storeFields(fields []field, a reify.Attributes, s style.Style) {
	for _, f := range fields {
		if v, ok := a.Values[f.name]; ok {
			*f.value = s.FormatNumber(v)
		}
	}
}
