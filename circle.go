package svg

import (
	"github.com/vasalvit/svgkit/pathdata"
	"github.com/vasalvit/svgkit/reify"
	"github.com/vasalvit/svgkit/style"
)

// Circle is an SVG circle element
type Circle struct {
	Presentation
	Cx     string `xml:"cx,attr"`
	Cy     string `xml:"cy,attr"`
	Radius string `xml:"r,attr"`
}

func (c *Circle) Kind() string { return "circle" }

func (c *Circle) fields() []field {
	return []field{{"cx", &c.Cx}, {"cy", &c.Cy}, {"r", &c.Radius}}
}

func (c *Circle) Attributes() (reify.Attributes, error) {
	return collect(c.Kind(), &c.Presentation, c.fields())
}

// Capabilities implements Element. A circle only takes uniform scales in
// its attributes and becomes a path otherwise.
func (c *Circle) Capabilities() reify.Capabilities {
	return reify.Capabilities{CanConvertToPath: true, ToPath: circlePath}
}

func (c *Circle) store(a reify.Attributes, s style.Style) {
	storeFields(c.fields(), a, s)
	c.Presentation.store(a, s)
}

func circlePath(a reify.Attributes) (pathdata.Data, error) {
	v := a.Values
	return pathdata.Circle(v["cx"], v["cy"], v["r"]), nil
}

// Ellipse is an SVG ellipse element
type Ellipse struct {
	Presentation
	Cx string `xml:"cx,attr"`
	Cy string `xml:"cy,attr"`
	Rx string `xml:"rx,attr"`
	Ry string `xml:"ry,attr"`
}

func (e *Ellipse) Kind() string { return "ellipse" }

func (e *Ellipse) fields() []field {
	return []field{{"cx", &e.Cx}, {"cy", &e.Cy}, {"rx", &e.Rx}, {"ry", &e.Ry}}
}

func (e *Ellipse) Attributes() (reify.Attributes, error) {
	return collect(e.Kind(), &e.Presentation, e.fields())
}

func (e *Ellipse) Capabilities() reify.Capabilities {
	return reify.Capabilities{CanConvertToPath: true, ToPath: ellipsePath}
}

func (e *Ellipse) store(a reify.Attributes, s style.Style) {
	storeFields(e.fields(), a, s)
	e.Presentation.store(a, s)
}

func ellipsePath(a reify.Attributes) (pathdata.Data, error) {
	rx, ry := radii(a)
	return pathdata.Ellipse(a.Values["cx"], a.Values["cy"], rx, ry), nil
}

// radii returns rx and ry, an absent one taking the value of the other.
func radii(a reify.Attributes) (rx, ry float64) {
	rx, ry = a.Values["rx"], a.Values["ry"]
	switch {
	case a.Has("rx") && !a.Has("ry"):
		ry = rx
	case a.Has("ry") && !a.Has("rx"):
		rx = ry
	}
	return rx, ry
}
