package svg

import (
	"github.com/vasalvit/svgkit/pathdata"
	"github.com/vasalvit/svgkit/reify"
	"github.com/vasalvit/svgkit/style"
)

// Rect is an SVG rect element
type Rect struct {
	Presentation
	X      string `xml:"x,attr"`
	Y      string `xml:"y,attr"`
	Width  string `xml:"width,attr"`
	Height string `xml:"height,attr"`
	Rx     string `xml:"rx,attr"`
	Ry     string `xml:"ry,attr"`
}

func (r *Rect) Kind() string { return "rect" }

func (r *Rect) fields() []field {
	return []field{
		{"x", &r.X}, {"y", &r.Y},
		{"width", &r.Width}, {"height", &r.Height},
		{"rx", &r.Rx}, {"ry", &r.Ry},
	}
}

func (r *Rect) Attributes() (reify.Attributes, error) {
	return collect(r.Kind(), &r.Presentation, r.fields())
}

func (r *Rect) Capabilities() reify.Capabilities {
	return reify.Capabilities{CanConvertToPath: true, ToPath: rectPath}
}

func (r *Rect) store(a reify.Attributes, s style.Style) {
	storeFields(r.fields(), a, s)
	r.Presentation.store(a, s)
}

func rectPath(a reify.Attributes) (pathdata.Data, error) {
	v := a.Values
	rx, ry := radii(a)
	return pathdata.Rect(v["x"], v["y"], v["width"], v["height"], rx, ry), nil
}

// Image is an SVG image element. It has no path form, so transforms its
// attributes cannot express are reported as unsupported.
type Image struct {
	Presentation
	X                   string `xml:"x,attr"`
	Y                   string `xml:"y,attr"`
	Width               string `xml:"width,attr"`
	Height              string `xml:"height,attr"`
	Href                string `xml:"href,attr"`
	PreserveAspectRatio string `xml:"preserveAspectRatio,attr"`
}

func (i *Image) Kind() string { return "image" }

func (i *Image) fields() []field {
	return []field{{"x", &i.X}, {"y", &i.Y}, {"width", &i.Width}, {"height", &i.Height}}
}

func (i *Image) Attributes() (reify.Attributes, error) {
	return collect(i.Kind(), &i.Presentation, i.fields())
}

func (i *Image) Capabilities() reify.Capabilities {
	return reify.Capabilities{}
}

func (i *Image) store(a reify.Attributes, s style.Style) {
	storeFields(i.fields(), a, s)
	i.Presentation.store(a, s)
}

// keepsAspect is true unless preserveAspectRatio is none, in which case
// the picture stretches with its box.
func (i *Image) keepsAspect() bool {
	return i.PreserveAspectRatio != "none"
}

// Use is an SVG use element. The default policy skips it since the
// referenced content may be shared.
type Use struct {
	Presentation
	X      string `xml:"x,attr"`
	Y      string `xml:"y,attr"`
	Width  string `xml:"width,attr"`
	Height string `xml:"height,attr"`
	Href   string `xml:"href,attr"`
}

func (u *Use) Kind() string { return "use" }

func (u *Use) fields() []field {
	return []field{{"x", &u.X}, {"y", &u.Y}, {"width", &u.Width}, {"height", &u.Height}}
}

func (u *Use) Attributes() (reify.Attributes, error) {
	a, err := collect(u.Kind(), &u.Presentation, u.fields())
	a.Href = u.Href
	return a, err
}

func (u *Use) Capabilities() reify.Capabilities {
	return reify.Capabilities{}
}

func (u *Use) store(a reify.Attributes, s style.Style) {
	storeFields(u.fields(), a, s)
	u.Presentation.store(a, s)
}
