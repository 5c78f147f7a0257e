package svg

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/vasalvit/compguide"
)

const namespace = "http://www.w3.org/2000/svg"

// Encode writes prims as a standalone SVG document of the given canvas
// size. Every primitive is stroked with pen inside a single group and
// nothing is filled.
func Encode(w io.Writer, width, height float64, prims []compguide.Primitive, pen compguide.Pen) error {
	if err := pen.Validate(); err != nil {
		return err
	}
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return fmt.Errorf("%w: canvas %gx%g", compguide.ErrInvalidArgument, width, height)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	root := xml.StartElement{Name: xml.Name{Local: "svg"}, Attr: []xml.Attr{
		attr("xmlns", namespace),
		attr("width", num(width)),
		attr("height", num(height)),
		attr("viewBox", nums(0, 0, width, height)),
	}}
	group := xml.StartElement{Name: xml.Name{Local: "g"}, Attr: []xml.Attr{
		attr("stroke", pen.Color),
		attr("stroke-width", num(pen.Width)),
		attr("fill", "none"),
	}}
	if dashes := pen.Dashes(); dashes != nil {
		group.Attr = append(group.Attr, attr("stroke-dasharray", nums(dashes...)))
	}

	if err := enc.EncodeToken(root); err != nil {
		return err
	}
	if err := enc.EncodeToken(group); err != nil {
		return err
	}
	for _, p := range prims {
		if err := encodePrimitive(enc, p); err != nil {
			return err
		}
	}
	if err := enc.EncodeToken(group.End()); err != nil {
		return err
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return err
	}
	return enc.Flush()
}

func encodePrimitive(enc *xml.Encoder, p compguide.Primitive) error {
	switch p := p.(type) {
	case compguide.Line:
		return emptyElement(enc, "line",
			attr("x1", num(p.P1[0])), attr("y1", num(p.P1[1])),
			attr("x2", num(p.P2[0])), attr("y2", num(p.P2[1])),
		)
	case compguide.Rect:
		return emptyElement(enc, "rect",
			attr("x", num(p.X)), attr("y", num(p.Y)),
			attr("width", num(p.W)), attr("height", num(p.H)),
		)
	case compguide.ArcPath:
		return emptyElement(enc, "path", attr("d", arcPathData(p)))
	}
	return fmt.Errorf("%w: primitive %T", ErrUnsupported, p)
}

// arcPathData writes an arc path as path data. The current point is joined
// to each arc start with a lineto when they differ.
func arcPathData(p compguide.ArcPath) string {
	var b strings.Builder
	b.WriteString("M " + nums(p.Start[0], p.Start[1]))
	current := p.Start
	for _, a := range p.Arcs {
		if start := a.StartPoint(); start != current {
			b.WriteString(" L " + nums(start[0], start[1]))
		}
		end := a.EndPoint()
		large, sweep := 0.0, 0.0
		if math.Abs(a.SweepAngle) > 180 {
			large = 1
		}
		if a.SweepAngle < 0 {
			sweep = 1
		}
		r := a.Radius()
		b.WriteString(" A " + nums(r, r, 0, large, sweep, end[0], end[1]))
		current = end
	}
	return b.String()
}

func emptyElement(enc *xml.Encoder, name string, attrs ...xml.Attr) error {
	start := xml.StartElement{Name: xml.Name{Local: name}, Attr: attrs}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	return enc.EncodeToken(start.End())
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

// num formats v without exponent so path data stays readable by simple
// number lexers.
func num(v float64) string {
	if v == 0 {
		v = 0 // drops the sign of negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func nums(vs ...float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = num(v)
	}
	return strings.Join(parts, " ")
}
