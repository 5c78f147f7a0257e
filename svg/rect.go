package svg

import (
	"fmt"

	"github.com/vasalvit/compguide"
)

// Rect is an SVG rect element
type Rect struct {
	ID        string  `xml:"id,attr"`
	Transform string  `xml:"transform,attr"`
	X         float64 `xml:"x,attr"`
	Y         float64 `xml:"y,attr"`
	Width     float64 `xml:"width,attr"`
	Height    float64 `xml:"height,attr"`
}

// Primitives implements the Element interface
func (r *Rect) Primitives() ([]compguide.Primitive, error) {
	if r.Transform != "" {
		return nil, fmt.Errorf("%w: transform on rect %q", ErrUnsupported, r.ID)
	}
	return []compguide.Primitive{compguide.Rect{X: r.X, Y: r.Y, W: r.Width, H: r.Height}}, nil
}
