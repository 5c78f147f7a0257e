// Package svg writes composition guides as standalone SVG documents and
// reads the subset of SVG it writes back into guide primitives.
package svg

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	mt "github.com/rustyoz/Mtransform"

	"github.com/vasalvit/compguide"
)

var (
	// ErrUnsupported is returned for SVG constructs the decoder does not
	// handle, such as transform attributes, curves or ellipses.
	ErrUnsupported = errors.New("svg: unsupported construct")
	// ErrInvalidPath is returned for malformed path data.
	ErrInvalidPath = errors.New("svg: invalid path data")
)

// Element is a drawable SVG element. All supported SVG elements implement
// this interface.
type Element interface {
	Primitives() ([]compguide.Primitive, error)
}

// Svg represents an SVG file containing groups, lines, rects and paths in
// document order.
type Svg struct {
	Title     string
	Width     string
	Height    string
	ViewBox   string
	Elements  []Element
	Name      string
	Transform mt.Transform
}

// Group represents an SVG group (usually located in a 'g' XML element)
type Group struct {
	ID              string
	Stroke          string
	StrokeWidth     float64
	StrokeDashArray string
	Elements        []Element
	TransformString string
	Parent          *Group
}

// Primitives implements the Element interface
func (g *Group) Primitives() ([]compguide.Primitive, error) {
	if g.TransformString != "" {
		return nil, fmt.Errorf("%w: transform on group %q", ErrUnsupported, g.ID)
	}
	var prims []compguide.Primitive
	for _, e := range g.Elements {
		ep, err := e.Primitives()
		if err != nil {
			return nil, err
		}
		prims = append(prims, ep...)
	}
	return prims, nil
}

// Pen returns the pen described by the stroke attributes of the group.
// Attributes the group does not set are inherited from its enclosing
// groups. Missing stroke widths default to 1 as in SVG.
func (g *Group) Pen() (compguide.Pen, error) {
	stroke, width, dashArray := g.Stroke, g.StrokeWidth, g.StrokeDashArray
	for p := g.Parent; p != nil; p = p.Parent {
		if stroke == "" {
			stroke = p.Stroke
		}
		if width == 0 {
			width = p.StrokeWidth
		}
		if dashArray == "" {
			dashArray = p.StrokeDashArray
		}
	}

	pen := compguide.Pen{Color: stroke, Width: width}
	if pen.Width == 0 {
		pen.Width = 1
	}
	if dashArray != "" && dashArray != "none" {
		dashes, err := parseDashArray(dashArray)
		if err != nil {
			return compguide.Pen{}, err
		}
		style, ok := matchLineStyle(pen, dashes)
		if !ok {
			return compguide.Pen{}, fmt.Errorf("%w: stroke-dasharray %q", ErrUnsupported, dashArray)
		}
		pen.Style = style
	}
	return pen, pen.Validate()
}

func parseDashArray(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	dashes := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("svg: stroke-dasharray: %w", err)
		}
		dashes = append(dashes, v)
	}
	return dashes, nil
}

func matchLineStyle(pen compguide.Pen, dashes []float64) (compguide.LineStyle, bool) {
	for _, style := range compguide.LineStyles() {
		pen.Style = style
		want := pen.Dashes()
		if len(want) == 0 || len(want) != len(dashes) {
			continue
		}
		same := true
		for i := range want {
			if math.Abs(want[i]-dashes[i]) > 1e-9*math.Max(1, want[i]) {
				same = false
				break
			}
		}
		if same {
			return style, true
		}
	}
	return 0, false
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (g *Group) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "id":
			g.ID = attr.Value
		case "stroke":
			g.Stroke = attr.Value
		case "stroke-width":
			w, err := strconv.ParseFloat(strings.TrimSpace(attr.Value), 64)
			if err != nil {
				return fmt.Errorf("svg: stroke-width of group %q: %w", g.ID, err)
			}
			g.StrokeWidth = w
		case "stroke-dasharray":
			g.StrokeDashArray = attr.Value
		case "transform":
			g.TransformString = attr.Value
		}
	}

	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			var element Element

			switch tok.Name.Local {
			case "g":
				element = &Group{Parent: g}
			case "line":
				element = &Line{}
			case "rect":
				element = &Rect{}
			case "path":
				element = &Path{}
			default:
				compguide.Logger().Warn("svg: skipping element", "element", tok.Name.Local)
				if err := decoder.Skip(); err != nil {
					return err
				}
				continue
			}

			if err = decoder.DecodeElement(element, &tok); err != nil {
				return fmt.Errorf("error decoding element of Group: %w", err)
			}
			g.Elements = append(g.Elements, element)

		case xml.EndElement:
			return nil
		}
	}
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (s *Svg) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "width":
			s.Width = attr.Value
		case "height":
			s.Height = attr.Value
		case "viewBox":
			s.ViewBox = attr.Value
		}
	}

	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			var element Element

			switch tok.Name.Local {
			case "title":
				if err = decoder.DecodeElement(&s.Title, &tok); err != nil {
					return fmt.Errorf("error decoding title of SVG struct: %w", err)
				}
				continue
			case "g":
				element = &Group{}
			case "line":
				element = &Line{}
			case "rect":
				element = &Rect{}
			case "path":
				element = &Path{}
			default:
				compguide.Logger().Warn("svg: skipping element", "element", tok.Name.Local)
				if err := decoder.Skip(); err != nil {
					return err
				}
				continue
			}

			if err = decoder.DecodeElement(element, &tok); err != nil {
				return fmt.Errorf("error decoding element of SVG struct: %w", err)
			}
			s.Elements = append(s.Elements, element)

		case xml.EndElement:
			if tok.Name.Local == "svg" {
				return nil
			}
		}
	}
}

// Primitives returns every primitive of the document in document order,
// scaled by the factor given when parsing.
func (s *Svg) Primitives() ([]compguide.Primitive, error) {
	prims := []compguide.Primitive{}
	for _, e := range s.Elements {
		ep, err := e.Primitives()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name, err)
		}
		prims = append(prims, ep...)
	}
	if s.Transform == mt.Identity() {
		return prims, nil
	}
	return compguide.Transform(prims, s.Transform), nil
}

// ParseDrawingInstructions returns the drawing instructions of every
// primitive in the document.
func (s *Svg) ParseDrawingInstructions() ([]*compguide.DrawingInstruction, error) {
	prims, err := s.Primitives()
	if err != nil {
		return nil, err
	}
	return compguide.Instructions(prims), nil
}

// Pen returns the pen of the first group, in document order, carrying a
// stroke, or the default pen when no group does.
func (s *Svg) Pen() (compguide.Pen, error) {
	if g := firstStroked(s.Elements); g != nil {
		return g.Pen()
	}
	return compguide.DefaultPen(), nil
}

func firstStroked(elements []Element) *Group {
	for _, e := range elements {
		g, ok := e.(*Group)
		if !ok {
			continue
		}
		if g.Stroke != "" {
			return g
		}
		if inner := firstStroked(g.Elements); inner != nil {
			return inner
		}
	}
	return nil
}

// ParseSvg parses an SVG string into an SVG struct. A positive scale
// multiplies every coordinate, a negative one divides by its magnitude.
func ParseSvg(str string, name string, scale float64) (*Svg, error) {
	return ParseSvgFromReader(strings.NewReader(str), name, scale)
}

// ParseSvgFromReader parses an SVG struct from an io.Reader
func ParseSvgFromReader(r io.Reader, name string, scale float64) (*Svg, error) {
	svg := Svg{Name: name, Transform: scaling(scale)}

	if err := xml.NewDecoder(r).Decode(&svg); err != nil {
		return nil, fmt.Errorf("ParseSvg Error: %w", err)
	}
	if svg.Name == "" {
		svg.Name = strings.TrimSpace(svg.Title)
	}

	compguide.Logger().Debug("svg parsed", "name", name, "elements", len(svg.Elements))

	return &svg, nil
}

func scaling(scale float64) mt.Transform {
	t := mt.Identity()
	switch {
	case scale > 0:
		t[0][0], t[1][1] = scale, scale
	case scale < 0:
		t[0][0], t[1][1] = 1.0/-scale, 1.0/-scale
	}
	return t
}
