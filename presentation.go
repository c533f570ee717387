package svg

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vasalvit/svgkit/geom"
	"github.com/vasalvit/svgkit/internal/scan"
	"github.com/vasalvit/svgkit/reify"
	"github.com/vasalvit/svgkit/style"
	"github.com/vasalvit/svgkit/transform"
)

// Presentation holds the attributes shared by every geometry element.
// Stroke and paint properties may also be given in Style, which then
// takes precedence over the attribute of the same name.
type Presentation struct {
	ID               string `xml:"id,attr"`
	Transform        string `xml:"transform,attr"`
	TransformOrigin  string `xml:"transform-origin,attr"`
	Style            string `xml:"style,attr"`
	Fill             string `xml:"fill,attr"`
	Stroke           string `xml:"stroke,attr"`
	StrokeWidth      string `xml:"stroke-width,attr"`
	StrokeDasharray  string `xml:"stroke-dasharray,attr"`
	StrokeDashoffset string `xml:"stroke-dashoffset,attr"`
	VectorEffect     string `xml:"vector-effect,attr"`
	ClipPath         string `xml:"clip-path,attr"`
	Mask             string `xml:"mask,attr"`
	Filter           string `xml:"filter,attr"`
	MarkerStart      string `xml:"marker-start,attr"`
	MarkerMid        string `xml:"marker-mid,attr"`
	MarkerEnd        string `xml:"marker-end,attr"`
	// PathLength is the author's length for the outline. Dash lengths are
	// measured against it.
	PathLength string `xml:"pathLength,attr"`
}

func (p *Presentation) presentation() *Presentation { return p }

// TransformList parses Transform, folding in TransformOrigin when set.
// The origin must be given as two numbers.
func (p *Presentation) TransformList() (transform.List, error) {
	l, err := transform.Parse(p.Transform)
	if err != nil || p.TransformOrigin == "" {
		return l, err
	}
	sc := scan.New(p.TransformOrigin)
	sc.SkipSpace()
	x, okX := sc.Number()
	sc.SkipCommaSpace()
	y, okY := sc.Number()
	sc.SkipSpace()
	if !okX || !okY || !sc.EOF() {
		return nil, fmt.Errorf("unsupported transform-origin %q", p.TransformOrigin)
	}
	return transform.WithOrigin(l, geom.Pt(x, y)), nil
}

func (p *Presentation) clearTransform() {
	p.Transform = ""
	p.TransformOrigin = ""
}

func (p *Presentation) attr(name string) *string {
	switch name {
	case "fill":
		return &p.Fill
	case "stroke":
		return &p.Stroke
	case "stroke-width":
		return &p.StrokeWidth
	case "stroke-dasharray":
		return &p.StrokeDasharray
	case "stroke-dashoffset":
		return &p.StrokeDashoffset
	case "vector-effect":
		return &p.VectorEffect
	case "clip-path":
		return &p.ClipPath
	case "mask":
		return &p.Mask
	case "filter":
		return &p.Filter
	case "marker-start":
		return &p.MarkerStart
	case "marker-mid":
		return &p.MarkerMid
	case "marker-end":
		return &p.MarkerEnd
	}
	return nil
}

// property returns the effective value of a presentation property.
// Properties without an attribute field, like the marker shorthand, are
// only read from Style.
func (p *Presentation) property(name string) string {
	if v, ok := declarations(p.Style).get(name); ok {
		return v
	}
	if a := p.attr(name); a != nil {
		return *a
	}
	return ""
}

// setProperty writes value where the property is currently defined.
func (p *Presentation) setProperty(name, value string) {
	ds := declarations(p.Style)
	if ds.set(name, value) {
		p.Style = ds.String()
		return
	}
	*p.attr(name) = value
}

var strokeLengths = []string{"stroke-width", "stroke-dashoffset"}

var linkProperties = []string{"clip-path", "mask", "filter", "marker", "marker-start", "marker-mid", "marker-end"}

func (p *Presentation) collect(a *reify.Attributes) error {
	for _, name := range strokeLengths {
		v := p.property(name)
		if v == "" {
			continue
		}
		f, err := parseLength(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", name, v, err)
		}
		if a.Values == nil {
			a.Values = make(map[string]float64)
		}
		a.Values[name] = f
	}
	if v := p.property("stroke-dasharray"); v != "" && v != "none" {
		dashes, err := parseList(v)
		if err != nil {
			return fmt.Errorf("stroke-dasharray=%q: %w", v, err)
		}
		a.Dashes = dashes
	}
	for _, name := range []string{"fill", "stroke"} {
		if id, ok := urlRef(p.property(name)); ok {
			a.Paint = append(a.Paint, reify.PaintRef{Property: name, ID: id})
		}
	}
	for _, name := range linkProperties {
		if id, ok := urlRef(p.property(name)); ok {
			a.Links = append(a.Links, reify.Link{Property: name, ID: id})
		}
	}
	if p.PathLength != "" {
		f, err := parseLength(p.PathLength)
		if err != nil {
			return fmt.Errorf("pathLength=%q: %w", p.PathLength, err)
		}
		if a.Values == nil {
			a.Values = make(map[string]float64)
		}
		a.Values["pathLength"] = f
	}
	a.NonScalingStroke = p.property("vector-effect") == "non-scaling-stroke"
	return nil
}

func (p *Presentation) store(a reify.Attributes, s style.Style) {
	for _, name := range strokeLengths {
		if v, ok := a.Values[name]; ok {
			p.setProperty(name, s.FormatNumber(v))
		}
	}
	if len(a.Dashes) > 0 {
		b := make([]byte, 0, 8*len(a.Dashes))
		for i, d := range a.Dashes {
			if i > 0 {
				b = append(b, ' ')
			}
			b = s.AppendNumber(b, d)
		}
		p.setProperty("stroke-dasharray", string(b))
	}
}

// urlRef extracts the id of a url(#id) value, as used by paints, clip
// paths, masks, filters and markers.
func urlRef(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "url(") {
		return "", false
	}
	end := strings.IndexByte(v, ')')
	if end < 0 {
		return "", false
	}
	ref := strings.Trim(strings.TrimSpace(v[len("url("):end]), `"'`)
	return strings.TrimPrefix(ref, "#"), true
}

var errLength = errors.New("not a plain length")

// parseLength reads a number with an optional px unit.
func parseLength(s string) (float64, error) {
	sc := scan.New(s)
	sc.SkipSpace()
	f, ok := sc.Number()
	if !ok {
		return 0, errLength
	}
	if unit := sc.Ident(); unit != "" && unit != "px" {
		return 0, errLength
	}
	sc.SkipSpace()
	if !sc.EOF() {
		return 0, errLength
	}
	return f, nil
}

// parseList reads numbers separated by commas or spaces.
func parseList(s string) ([]float64, error) {
	var out []float64
	sc := scan.New(s)
	sc.SkipSpace()
	for !sc.EOF() {
		f, ok := sc.Number()
		if !ok {
			return nil, errLength
		}
		out = append(out, f)
		sc.SkipCommaSpace()
	}
	return out, nil
}

type declaration struct {
	name, value string
}

// declarationList is the parsed content of a style attribute.
type declarationList []declaration

func declarations(style string) declarationList {
	var ds declarationList
	for _, part := range strings.Split(style, ";") {
		name, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		ds = append(ds, declaration{strings.TrimSpace(name), strings.TrimSpace(value)})
	}
	return ds
}

func (ds declarationList) get(name string) (string, bool) {
	for i := len(ds) - 1; i >= 0; i-- {
		if ds[i].name == name {
			return ds[i].value, true
		}
	}
	return "", false
}

func (ds declarationList) set(name, value string) bool {
	found := false
	for i := range ds {
		if ds[i].name == name {
			ds[i].value = value
			found = true
		}
	}
	return found
}

func (ds declarationList) String() string {
	var b strings.Builder
	for i, d := range ds {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(d.name)
		b.WriteByte(':')
		b.WriteString(d.value)
	}
	return b.String()
}
