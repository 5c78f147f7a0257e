package svg

import (
	"fmt"

	"github.com/vasalvit/compguide"
)

// Line is an SVG line element
type Line struct {
	ID        string  `xml:"id,attr"`
	Transform string  `xml:"transform,attr"`
	X1        float64 `xml:"x1,attr"`
	Y1        float64 `xml:"y1,attr"`
	X2        float64 `xml:"x2,attr"`
	Y2        float64 `xml:"y2,attr"`
}

// Primitives implements the Element interface
func (l *Line) Primitives() ([]compguide.Primitive, error) {
	if l.Transform != "" {
		return nil, fmt.Errorf("%w: transform on line %q", ErrUnsupported, l.ID)
	}
	return []compguide.Primitive{compguide.Line{
		P1: compguide.Tuple{l.X1, l.Y1},
		P2: compguide.Tuple{l.X2, l.Y2},
	}}, nil
}
