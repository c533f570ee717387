package svg

import (
	"fmt"

	"github.com/vasalvit/svgkit/pathdata"
	"github.com/vasalvit/svgkit/reify"
	"github.com/vasalvit/svgkit/style"
)

// Path is an SVG path element. It is also what an element that cannot
// keep its own shape under a transform turns into.
type Path struct {
	Presentation
	D string `xml:"d,attr"`
}

func (p *Path) Kind() string { return "path" }

func (p *Path) Attributes() (reify.Attributes, error) {
	a, err := collect(p.Kind(), &p.Presentation, nil)
	if err != nil {
		return a, err
	}
	a.Path, err = pathdata.Parse(p.D)
	if err != nil {
		return a, fmt.Errorf("svg: <path d>: %w", err)
	}
	return a, nil
}

// Capabilities implements Element. Any affine map applies to path data
// exactly.
func (p *Path) Capabilities() reify.Capabilities {
	return reify.Capabilities{PointsOnly: true}
}

func (p *Path) store(a reify.Attributes, s style.Style) {
	p.D = pathdata.Write(a.Path, s)
	p.Presentation.store(a, s)
}
