package svg

import (
	"fmt"
	"math"
	"strconv"

	gl "github.com/rustyoz/genericlexer"

	"github.com/vasalvit/compguide"
)

// Path is an SVG XML path element
type Path struct {
	ID              string `xml:"id,attr"`
	D               string `xml:"d,attr"`
	TransformString string `xml:"transform,attr"`
}

// A segment of a subpath ends at End. Arc is nil for straight segments.
type segment struct {
	End compguide.Tuple
	Arc *compguide.Arc
}

// A subpath starts with a moveto and holds every segment drawn up to the
// next moveto.
type subpath struct {
	Start    compguide.Tuple
	Segments []segment
	Closed   bool
}

func (sp *subpath) hasArcs() bool {
	for _, s := range sp.Segments {
		if s.Arc != nil {
			return true
		}
	}
	return false
}

// Primitives implements the Element interface. Subpaths made of straight
// segments become lines; subpaths holding arcs become one arc path, where
// straight segments are only allowed as joins into the following arc.
func (p *Path) Primitives() ([]compguide.Primitive, error) {
	if p.TransformString != "" {
		return nil, fmt.Errorf("%w: transform on path %q", ErrUnsupported, p.ID)
	}
	subpaths, err := parsePathDescription(p.ID, p.D)
	if err != nil {
		return nil, err
	}

	var prims []compguide.Primitive
	for _, sp := range subpaths {
		if !sp.hasArcs() {
			prev := sp.Start
			for _, s := range sp.Segments {
				prims = append(prims, compguide.Line{P1: prev, P2: s.End})
				prev = s.End
			}
			if sp.Closed && prev != sp.Start {
				prims = append(prims, compguide.Line{P1: prev, P2: sp.Start})
			}
			continue
		}

		if sp.Closed {
			return nil, fmt.Errorf("%w: closed arc path %q", ErrUnsupported, p.ID)
		}
		ap := compguide.ArcPath{Start: sp.Start}
		for i, s := range sp.Segments {
			if s.Arc == nil {
				if i+1 == len(sp.Segments) || sp.Segments[i+1].Arc == nil {
					return nil, fmt.Errorf("%w: straight segment inside arc path %q", ErrUnsupported, p.ID)
				}
				continue
			}
			ap.Arcs = append(ap.Arcs, *s.Arc)
		}
		prims = append(prims, ap)
	}
	return prims, nil
}

type pathDescriptionParser struct {
	lex      *gl.Lexer
	x, y     float64
	subpaths []*subpath
	current  *subpath
}

// parsePathDescription interprets path data. Supported commands are
// moveto, lineto, horizontal and vertical lineto, circular arcs and
// closepath, absolute and relative.
func parsePathDescription(name, d string) ([]*subpath, error) {
	l, items := gl.Lex(name, d)
	// the lexer goroutine only exits once its channel is drained
	defer func() {
		go func() {
			for range items {
			}
		}()
	}()
	pdp := &pathDescriptionParser{lex: l}
	for {
		i := pdp.lex.NextItem()
		switch {
		case i.Type == gl.ItemError:
			return nil, fmt.Errorf("%w: %s", ErrInvalidPath, i.Value)
		case i.Type == gl.ItemEOS:
			return pdp.subpaths, nil
		case i.Type == gl.ItemLetter:
			if err := pdp.parseCommand(i); err != nil {
				return nil, err
			}
		case i.Type == gl.ItemNumber:
			return nil, fmt.Errorf("%w: number %s without command", ErrInvalidPath, i.Value)
		}
	}
}

func (pdp *pathDescriptionParser) parseCommand(i gl.Item) error {
	switch i.Value {
	case "M", "m":
		return pdp.parseMoveTo(i.Value == "m")
	case "L", "l":
		return pdp.parseLineTo(i.Value == "l")
	case "H", "h":
		return pdp.parseHLineTo(i.Value == "h")
	case "V", "v":
		return pdp.parseVLineTo(i.Value == "v")
	case "A", "a":
		return pdp.parseArcTo(i.Value == "a")
	case "Z", "z":
		return pdp.parseClose()
	}
	return fmt.Errorf("%w: path command %q", ErrUnsupported, i.Value)
}

func (pdp *pathDescriptionParser) skipSeparators() {
	pdp.lex.ConsumeWhiteSpace()
	pdp.lex.ConsumeComma()
	pdp.lex.ConsumeWhiteSpace()
}

// peekNumber reports whether the next item starts a number.
func (pdp *pathDescriptionParser) peekNumber() bool {
	pdp.skipSeparators()
	i := pdp.lex.PeekItem()
	return i.Type == gl.ItemNumber || i.Value == "-" || i.Value == "+"
}

func (pdp *pathDescriptionParser) parseNumber() (float64, error) {
	pdp.skipSeparators()
	i := pdp.lex.NextItem()
	sign := 1.0
	if i.Type != gl.ItemNumber && (i.Value == "-" || i.Value == "+") {
		if i.Value == "-" {
			sign = -1
		}
		i = pdp.lex.NextItem()
	}
	if i.Type != gl.ItemNumber {
		return 0, fmt.Errorf("%w: expected number, got %q", ErrInvalidPath, i.Value)
	}
	n, err := strconv.ParseFloat(i.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}
	return sign * n, nil
}

func (pdp *pathDescriptionParser) parseTuple(relative bool) (compguide.Tuple, error) {
	x, err := pdp.parseNumber()
	if err != nil {
		return compguide.Tuple{}, err
	}
	y, err := pdp.parseNumber()
	if err != nil {
		return compguide.Tuple{}, err
	}
	if relative {
		x += pdp.x
		y += pdp.y
	}
	return compguide.Tuple{x, y}, nil
}

func (pdp *pathDescriptionParser) moveTo(t compguide.Tuple) {
	pdp.current = &subpath{Start: t}
	pdp.subpaths = append(pdp.subpaths, pdp.current)
	pdp.x, pdp.y = t[0], t[1]
}

func (pdp *pathDescriptionParser) segmentTo(t compguide.Tuple, arc *compguide.Arc) error {
	if pdp.current == nil {
		return fmt.Errorf("%w: path does not start with a moveto", ErrInvalidPath)
	}
	pdp.current.Segments = append(pdp.current.Segments, segment{End: t, Arc: arc})
	pdp.x, pdp.y = t[0], t[1]
	return nil
}

// parseMoveTo reads a moveto; extra coordinate pairs are implicit linetos.
func (pdp *pathDescriptionParser) parseMoveTo(relative bool) error {
	t, err := pdp.parseTuple(relative)
	if err != nil {
		return fmt.Errorf("error parsing MoveTo: %w", err)
	}
	pdp.moveTo(t)

	for pdp.peekNumber() {
		t, err := pdp.parseTuple(relative)
		if err != nil {
			return fmt.Errorf("error parsing MoveTo: %w", err)
		}
		if err := pdp.segmentTo(t, nil); err != nil {
			return err
		}
	}
	return nil
}

func (pdp *pathDescriptionParser) parseLineTo(relative bool) error {
	if !pdp.peekNumber() {
		return fmt.Errorf("%w: LineTo without coordinates", ErrInvalidPath)
	}
	for pdp.peekNumber() {
		t, err := pdp.parseTuple(relative)
		if err != nil {
			return fmt.Errorf("error parsing LineTo: %w", err)
		}
		if err := pdp.segmentTo(t, nil); err != nil {
			return err
		}
	}
	return nil
}

func (pdp *pathDescriptionParser) parseHLineTo(relative bool) error {
	if !pdp.peekNumber() {
		return fmt.Errorf("%w: HLineTo without coordinate", ErrInvalidPath)
	}
	for pdp.peekNumber() {
		n, err := pdp.parseNumber()
		if err != nil {
			return fmt.Errorf("error parsing HLineTo: %w", err)
		}
		if relative {
			n += pdp.x
		}
		if err := pdp.segmentTo(compguide.Tuple{n, pdp.y}, nil); err != nil {
			return err
		}
	}
	return nil
}

func (pdp *pathDescriptionParser) parseVLineTo(relative bool) error {
	if !pdp.peekNumber() {
		return fmt.Errorf("%w: VLineTo without coordinate", ErrInvalidPath)
	}
	for pdp.peekNumber() {
		n, err := pdp.parseNumber()
		if err != nil {
			return fmt.Errorf("error parsing VLineTo: %w", err)
		}
		if relative {
			n += pdp.y
		}
		if err := pdp.segmentTo(compguide.Tuple{pdp.x, n}, nil); err != nil {
			return err
		}
	}
	return nil
}

// parseArcTo reads circular elliptical arcs: rx ry rotation large-arc
// sweep x y. Ellipses are not supported.
func (pdp *pathDescriptionParser) parseArcTo(relative bool) error {
	if !pdp.peekNumber() {
		return fmt.Errorf("%w: ArcTo without parameters", ErrInvalidPath)
	}
	for pdp.peekNumber() {
		var params [5]float64
		for k := range params {
			n, err := pdp.parseNumber()
			if err != nil {
				return fmt.Errorf("error parsing ArcTo: %w", err)
			}
			params[k] = n
		}
		rx, ry, large, sweep := params[0], params[1], params[3], params[4]
		if (large != 0 && large != 1) || (sweep != 0 && sweep != 1) {
			return fmt.Errorf("%w: arc flags must be 0 or 1", ErrInvalidPath)
		}
		if math.Abs(rx) != math.Abs(ry) {
			return fmt.Errorf("%w: elliptical arc", ErrUnsupported)
		}

		from := compguide.Tuple{pdp.x, pdp.y}
		to, err := pdp.parseTuple(relative)
		if err != nil {
			return fmt.Errorf("error parsing ArcTo: %w", err)
		}
		arc, ok := centerArc(from, to, math.Abs(rx), large == 1, sweep == 1)
		if !ok {
			// degenerate arcs are drawn as straight lines
			if err := pdp.segmentTo(to, nil); err != nil {
				return err
			}
			continue
		}
		if err := pdp.segmentTo(to, &arc); err != nil {
			return err
		}
	}
	return nil
}

func (pdp *pathDescriptionParser) parseClose() error {
	if pdp.current == nil {
		return fmt.Errorf("%w: closepath without subpath", ErrInvalidPath)
	}
	pdp.current.Closed = true
	start := pdp.current.Start
	pdp.x, pdp.y = start[0], start[1]
	// drawing after a closepath starts a new subpath at the same point
	pdp.current = &subpath{Start: start}
	pdp.subpaths = append(pdp.subpaths, pdp.current)
	return nil
}

// centerArc converts an SVG endpoint arc of radius r into an arc inscribed
// in its circle's bounds. It reports false when the endpoints coincide or
// the radius is zero.
func centerArc(from, to compguide.Tuple, r float64, large, sweep bool) (compguide.Arc, bool) {
	dx, dy := (to[0]-from[0])/2, (to[1]-from[1])/2
	d2 := dx*dx + dy*dy
	if d2 == 0 || r == 0 {
		return compguide.Arc{}, false
	}
	if r*r < d2 {
		r = math.Sqrt(d2)
	}
	k := math.Sqrt((r*r - d2) / d2)
	if large == sweep {
		k = -k
	}
	cx := from[0] + dx - k*dy
	cy := from[1] + dy + k*dx

	start := compguide.AngleOf(from[0]-cx, from[1]-cy)
	end := compguide.AngleOf(to[0]-cx, to[1]-cy)

	// a positive SVG sweep runs clockwise on screen
	var span float64
	if sweep {
		span = -compguide.NormalizeAngle(start - end)
	} else {
		span = compguide.NormalizeAngle(end - start)
	}
	if span == 0 && large {
		span = 360
		if sweep {
			span = -360
		}
	}

	return compguide.Arc{
		Bounds:     compguide.Rectangle{X: cx - r, Y: cy - r, Width: 2 * r, Height: 2 * r},
		StartAngle: start,
		SweepAngle: span,
	}, true
}
