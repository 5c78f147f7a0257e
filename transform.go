package compguide

import (
	mt "github.com/rustyoz/Mtransform"
)

// Transform applies t to every primitive and returns the transformed
// copies. Arcs stay circular only under rotations, reflections and
// translations, which is all the engine itself ever composes.
func Transform(prims []Primitive, t mt.Transform) []Primitive {
	out := make([]Primitive, 0, len(prims))
	for _, p := range prims {
		out = append(out, transformPrimitive(p, t))
	}
	return out
}

func transformPrimitive(p Primitive, t mt.Transform) Primitive {
	switch p := p.(type) {
	case Line:
		return Line{P1: applyTuple(t, p.P1), P2: applyTuple(t, p.P2)}
	case Rect:
		r := transformRect(t, Rectangle{X: p.X, Y: p.Y, Width: p.W, Height: p.H})
		return Rect{X: r.X, Y: r.Y, W: r.Width, H: r.Height}
	case ArcPath:
		arcs := make([]Arc, 0, len(p.Arcs))
		for _, a := range p.Arcs {
			arcs = append(arcs, transformArc(t, a))
		}
		return ArcPath{Start: applyTuple(t, p.Start), Arcs: arcs}
	}
	return p
}

func applyTuple(t mt.Transform, p Tuple) Tuple {
	x, y := t.Apply(p[0], p[1])
	return Tuple{x, y}
}

func transformRect(t mt.Transform, r Rectangle) Rectangle {
	return rectFromPoints(
		applyTuple(t, Tuple{r.left(), r.top()}),
		applyTuple(t, Tuple{r.right(), r.bottom()}),
	)
}

// transformArc maps the arc bounds and its angles. An orientation
// reversing transform mirrors the angles and flips the sweep direction.
func transformArc(t mt.Transform, a Arc) Arc {
	sign := 1.0
	if t[0][0]*t[1][1]-t[0][1]*t[1][0] < 0 {
		sign = -1
	}
	zero := AngleOf(t[0][0], t[1][0])
	return Arc{
		Bounds:     transformRect(t, a.Bounds),
		StartAngle: NormalizeAngle(sign*a.StartAngle + zero),
		SweepAngle: sign * a.SweepAngle,
	}
}

func translation(x, y float64) mt.Transform {
	t := mt.Identity()
	t[0][2] = x
	t[1][2] = y
	return t
}

// mirror returns the reflection about the vertical (horizontal=true) or
// horizontal axis of a w x h box anchored at the origin.
func mirror(w, h float64, horizontal, vertical bool) mt.Transform {
	t := mt.Identity()
	if horizontal {
		t[0][0] = -1
		t[0][2] = w
	}
	if vertical {
		t[1][1] = -1
		t[1][2] = h
	}
	return t
}

// quarterTurn maps landscape local coordinates back onto a portrait area:
// (x, y) -> (area.X + area.Width - y, area.Y + x).
func quarterTurn(area Rectangle) mt.Transform {
	t := mt.Identity()
	t[0][0], t[0][1], t[0][2] = 0, -1, area.X+area.Width
	t[1][0], t[1][1], t[1][2] = 1, 0, area.Y
	return t
}

// Mirror reflects prims across the vertical (horizontal=true) and/or
// horizontal centre line of area.
func Mirror(prims []Primitive, area Rectangle, horizontal, vertical bool) []Primitive {
	t := mt.MultiplyTransforms(
		translation(area.X, area.Y),
		mt.MultiplyTransforms(mirror(area.Width, area.Height, horizontal, vertical), translation(-area.X, -area.Y)),
	)
	return Transform(prims, t)
}
