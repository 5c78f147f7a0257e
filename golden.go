package compguide

import "math"

// Phi is the golden ratio.
const Phi = 1.6180339887498949

// SpiralSections is the number of golden cuts drawn by the spiral guides.
const SpiralSections = 8

// goldenCut is one square cut off a rectangle: P1 and P2 are the ends of
// the cut line and Rest is what remains for the next cut.
type goldenCut struct {
	P1, P2 Tuple
	Rest   Rectangle
}

// goldenPosition cuts the square on the shorter side of r, from the left
// or top edge when fromStart is set, from the right or bottom edge
// otherwise.
func goldenPosition(r Rectangle, fromStart bool) goldenCut {
	if r.Width > r.Height {
		if fromStart {
			x := r.left() + r.Height
			return goldenCut{
				P1:   Tuple{x, r.top()},
				P2:   Tuple{x, r.bottom()},
				Rest: rectFromPoints(Tuple{x, r.top()}, Tuple{r.right(), r.bottom()}),
			}
		}
		x := r.left() + r.Width - r.Height
		return goldenCut{
			P1:   Tuple{x, r.bottom()},
			P2:   Tuple{x, r.top()},
			Rest: rectFromPoints(Tuple{r.left(), r.top()}, Tuple{x, r.bottom()}),
		}
	}
	if fromStart {
		y := r.top() + r.Width
		return goldenCut{
			P1:   Tuple{r.right(), y},
			P2:   Tuple{r.left(), y},
			Rest: rectFromPoints(Tuple{r.left(), y}, Tuple{r.right(), r.bottom()}),
		}
	}
	y := r.top() + r.Height - r.Width
	return goldenCut{
		P1:   Tuple{r.left(), y},
		P2:   Tuple{r.right(), y},
		Rest: rectFromPoints(Tuple{r.left(), r.top()}, Tuple{r.right(), y}),
	}
}

// goldenCuts performs the SpiralSections cuts of a w x h frame. Cuts
// follow a four phase cycle; phases 0 and 1 cut from the start side.
// visit receives each cut together with its phase before advancing.
func goldenCuts(w, h float64, visit func(c goldenCut, phase int)) {
	phase := 1
	c := goldenPosition(Rectangle{Width: w, Height: h}, true)
	for i := 0; i < SpiralSections; i++ {
		visit(c, phase)
		phase++
		if phase >= 4 {
			phase = 0
		}
		c = goldenPosition(c.Rest, phase <= 1)
	}
}

// goldenSpiral returns the arcs of the golden spiral, one quarter circle
// per cut, centred on the cut's first corner with the cut side as radius.
func goldenSpiral(w, h float64) ArcPath {
	path := ArcPath{Arcs: make([]Arc, 0, SpiralSections)}
	angle := 180.0
	goldenCuts(w, h, func(c goldenCut, phase int) {
		d := 2 * (math.Abs(c.P1[1]-c.P2[1]) + math.Abs(c.P1[0]-c.P2[0]))
		path.Arcs = append(path.Arcs, Arc{
			Bounds:     Rectangle{X: c.P1[0] - d/2, Y: c.P1[1] - d/2, Width: d, Height: d},
			StartAngle: NormalizeAngle(angle),
			SweepAngle: 90,
		})
		angle += 90
		// the cycle restarts at phase 1
		if phase == 0 {
			angle = 180
		}
	})
	path.Start = path.Arcs[0].StartPoint()
	return path
}

// goldenSpiralSection returns the cut lines of the golden spiral.
func goldenSpiralSection(w, h float64) []Primitive {
	lines := make([]Primitive, 0, SpiralSections)
	goldenCuts(w, h, func(c goldenCut, _ int) {
		lines = append(lines, Line{P1: c.P1, P2: c.P2})
	})
	return lines
}
