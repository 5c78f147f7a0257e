package compguide

// InstructionType tells a drawing library which function it has to call
type InstructionType int

// These are instruction types that we use with our path drawing library
const (
	MoveInstruction InstructionType = iota
	LineInstruction
	ArcInstruction
	CloseInstruction
	PaintInstruction
)

func (t InstructionType) String() string {
	switch t {
	case MoveInstruction:
		return "move"
	case LineInstruction:
		return "line"
	case ArcInstruction:
		return "arc"
	case CloseInstruction:
		return "close"
	case PaintInstruction:
		return "paint"
	}
	return "unknown"
}

// DrawingInstruction contains enough information that a simple drawing
// library can draw the primitives returned by Render.
//
// M is the target point of move and line instructions. Arc is set on arc
// instructions; the library first joins the current point to the arc
// start with a straight line, then draws the arc. Paint ends a primitive
// and asks the library to stroke what was built so far.
type DrawingInstruction struct {
	Kind InstructionType
	M    *Tuple
	Arc  *Arc
}

// Instructions converts prims into a flat instruction stream. Every
// primitive ends with a PaintInstruction.
func Instructions(prims []Primitive) []*DrawingInstruction {
	var out []*DrawingInstruction
	for _, p := range prims {
		out = appendInstructions(out, p)
		out = append(out, &DrawingInstruction{Kind: PaintInstruction})
	}
	return out
}

func appendInstructions(out []*DrawingInstruction, p Primitive) []*DrawingInstruction {
	move := func(t Tuple) *DrawingInstruction { return &DrawingInstruction{Kind: MoveInstruction, M: &t} }
	lineTo := func(t Tuple) *DrawingInstruction { return &DrawingInstruction{Kind: LineInstruction, M: &t} }

	switch p := p.(type) {
	case Line:
		out = append(out, move(p.P1), lineTo(p.P2))
	case Rect:
		out = append(out,
			move(Tuple{p.X, p.Y}),
			lineTo(Tuple{p.X + p.W, p.Y}),
			lineTo(Tuple{p.X + p.W, p.Y + p.H}),
			lineTo(Tuple{p.X, p.Y + p.H}),
			&DrawingInstruction{Kind: CloseInstruction},
		)
	case ArcPath:
		out = append(out, move(p.Start))
		for i := range p.Arcs {
			a := p.Arcs[i]
			out = append(out, &DrawingInstruction{Kind: ArcInstruction, Arc: &a})
		}
	}
	return out
}
