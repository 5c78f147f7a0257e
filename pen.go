package compguide

import (
	"fmt"
	"math"
)

// LineStyle is the stroke pattern of a pen.
type LineStyle int

// Line styles.
const (
	SolidLine LineStyle = iota
	DashLine
	DotLine
	DashDotLine
	DashDotDotLine

	numLineStyles
)

var lineStyleTags = [numLineStyles]string{
	SolidLine:      "solid",
	DashLine:       "dash",
	DotLine:        "dot",
	DashDotLine:    "dashdot",
	DashDotDotLine: "dashdotdot",
}

// dash patterns in units of pen width
var lineStyleDashes = [numLineStyles][]float64{
	SolidLine:      nil,
	DashLine:       {4, 2},
	DotLine:        {1, 2},
	DashDotLine:    {4, 2, 1, 2},
	DashDotDotLine: {4, 2, 1, 2, 1, 2},
}

func (s LineStyle) String() string {
	if s >= 0 && s < numLineStyles {
		return lineStyleTags[s]
	}
	return fmt.Sprintf("LineStyle(%d)", int(s))
}

// LineStyles returns every line style in declaration order.
func LineStyles() []LineStyle {
	styles := make([]LineStyle, 0, numLineStyles)
	for s := SolidLine; s < numLineStyles; s++ {
		styles = append(styles, s)
	}
	return styles
}

// ParseLineStyle returns the line style with the given tag.
func ParseLineStyle(tag string) (LineStyle, error) {
	for s, t := range lineStyleTags {
		if t == tag {
			return LineStyle(s), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown line style %q", ErrInvalidPen, tag)
}

// MinPenWidth is the thinnest width a scaled pen is drawn with.
const MinPenWidth = 0.75

// Pen describes how a surface strokes primitives. Color is passed to the
// surface untouched, as "#rrggbb" or "#rrggbbaa".
type Pen struct {
	Color string
	Width float64
	Style LineStyle
}

// DefaultPen returns the pen guides are drawn with unless configured.
func DefaultPen() Pen {
	return Pen{Color: "#00aa00", Width: 2, Style: SolidLine}
}

// Validate reports whether the pen can be drawn with.
func (p Pen) Validate() error {
	if !(p.Width > 0) || math.IsInf(p.Width, 0) {
		return fmt.Errorf("%w: width %g", ErrInvalidPen, p.Width)
	}
	if p.Style < 0 || p.Style >= numLineStyles {
		return fmt.Errorf("%w: style %s", ErrInvalidPen, p.Style)
	}
	if p.Color == "" {
		return fmt.Errorf("%w: empty color", ErrInvalidPen)
	}
	return nil
}

// Scaled returns the pen with its width multiplied by ratio, never
// thinner than MinPenWidth. Used when drawing onto a reduced preview.
func (p Pen) Scaled(ratio float64) Pen {
	p.Width = math.Max(MinPenWidth, p.Width*ratio)
	return p
}

// Dashes returns the dash pattern of the pen in canvas units, nil for
// solid lines.
func (p Pen) Dashes() []float64 {
	if p.Style < 0 || p.Style >= numLineStyles {
		return nil
	}
	pattern := lineStyleDashes[p.Style]
	if pattern == nil {
		return nil
	}
	out := make([]float64, len(pattern))
	for i, v := range pattern {
		out[i] = v * p.Width
	}
	return out
}
