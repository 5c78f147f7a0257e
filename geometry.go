package compguide

import (
	"fmt"
	"math"
)

// Tuple is an X,Y coordinate
type Tuple [2]float64

// Rectangle is an area of the canvas, in canvas units.
type Rectangle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (r Rectangle) left() float64   { return r.X }
func (r Rectangle) top() float64    { return r.Y }
func (r Rectangle) right() float64  { return r.X + r.Width }
func (r Rectangle) bottom() float64 { return r.Y + r.Height }

// rectFromPoints returns the rectangle spanned by two opposite corners.
func rectFromPoints(a, b Tuple) Rectangle {
	x0, x1 := math.Min(a[0], b[0]), math.Max(a[0], b[0])
	y0, y1 := math.Min(a[1], b[1]), math.Max(a[1], b[1])
	return Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

func (r Rectangle) valid() bool {
	for _, v := range [...]float64{r.X, r.Y, r.Width, r.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return r.Width > 0 && r.Height > 0
}

func (r Rectangle) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.Width, r.Height)
}

// PrimitiveKind tells a drawing surface how to draw a Primitive.
type PrimitiveKind int

// Primitive kinds produced by the engine.
const (
	LinePrimitive PrimitiveKind = iota
	RectPrimitive
	ArcPathPrimitive
)

func (k PrimitiveKind) String() string {
	switch k {
	case LinePrimitive:
		return "line"
	case RectPrimitive:
		return "rect"
	case ArcPathPrimitive:
		return "arcpath"
	}
	return fmt.Sprintf("PrimitiveKind(%d)", int(k))
}

// Primitive is one drawable unit returned by Render. The set of
// implementations is closed: Line, Rect and ArcPath.
type Primitive interface {
	Kind() PrimitiveKind
	primitive()
}

// Line is a straight segment from P1 to P2.
type Line struct {
	P1 Tuple
	P2 Tuple
}

// Rect is an axis aligned rectangle outline.
type Rect struct {
	X, Y, W, H float64
}

// Arc is a circular arc inscribed in Bounds. Angles are in degrees,
// counter-clockwise as seen on screen, with 0 pointing right.
type Arc struct {
	Bounds     Rectangle
	StartAngle float64
	SweepAngle float64
}

// ArcPath is a continuous path starting at Start; each arc is joined to
// the current point of the path before being drawn.
type ArcPath struct {
	Start Tuple
	Arcs  []Arc
}

func (Line) Kind() PrimitiveKind    { return LinePrimitive }
func (Rect) Kind() PrimitiveKind    { return RectPrimitive }
func (ArcPath) Kind() PrimitiveKind { return ArcPathPrimitive }

func (Line) primitive()    {}
func (Rect) primitive()    {}
func (ArcPath) primitive() {}

// Center returns the centre of the arc's circle.
func (a Arc) Center() Tuple {
	return Tuple{a.Bounds.X + a.Bounds.Width/2, a.Bounds.Y + a.Bounds.Height/2}
}

// Radius returns the radius of the arc's circle.
func (a Arc) Radius() float64 {
	return a.Bounds.Width / 2
}

// PointAt returns the point of the arc's circle at angle degrees.
func (a Arc) PointAt(angle float64) Tuple {
	c := a.Center()
	cos, sin := unitVector(angle)
	return Tuple{c[0] + a.Bounds.Width/2*cos, c[1] - a.Bounds.Height/2*sin}
}

// StartPoint returns the first point of the arc.
func (a Arc) StartPoint() Tuple { return a.PointAt(a.StartAngle) }

// EndPoint returns the last point of the arc.
func (a Arc) EndPoint() Tuple { return a.PointAt(a.StartAngle + a.SweepAngle) }

// Points flattens the arc into steps+1 points, start and end included.
func (a Arc) Points(steps int) []Tuple {
	if steps < 1 {
		steps = 1
	}
	pts := make([]Tuple, 0, steps+1)
	for i := 0; i <= steps; i++ {
		pts = append(pts, a.PointAt(a.StartAngle+a.SweepAngle*float64(i)/float64(steps)))
	}
	return pts
}

// Points flattens the whole path, steps points per arc. Joins between the
// current point and the start of the next arc are kept as straight
// segments.
func (p ArcPath) Points(steps int) []Tuple {
	pts := []Tuple{p.Start}
	for _, a := range p.Arcs {
		arcPts := a.Points(steps)
		if last := pts[len(pts)-1]; samePoint(last, arcPts[0]) {
			arcPts = arcPts[1:]
		}
		pts = append(pts, arcPts...)
	}
	return pts
}

func samePoint(a, b Tuple) bool {
	const eps = 1e-9
	scale := math.Max(1, math.Max(math.Abs(a[0]), math.Abs(a[1])))
	return math.Abs(a[0]-b[0]) <= eps*scale && math.Abs(a[1]-b[1]) <= eps*scale
}

// NormalizeAngle maps an angle in degrees into [0, 360).
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg == 360 {
		deg = 0
	}
	return deg
}

// unitVector returns cos and sin of deg; quarter turns are exact.
func unitVector(deg float64) (float64, float64) {
	switch NormalizeAngle(deg) {
	case 0:
		return 1, 0
	case 90:
		return 0, 1
	case 180:
		return -1, 0
	case 270:
		return 0, -1
	}
	rad := deg * math.Pi / 180
	return math.Cos(rad), math.Sin(rad)
}

// AngleOf returns the on-screen angle in degrees of the direction (dx, dy)
// given in y-down canvas coordinates. Directions within a relative 1e-9 of
// an axis snap to it, so decoded coordinates keep quarter-turn angles exact.
func AngleOf(dx, dy float64) float64 {
	const eps = 1e-9
	scale := math.Max(math.Abs(dx), math.Abs(dy))
	switch {
	case math.Abs(dy) <= eps*scale && dx > 0:
		return 0
	case math.Abs(dx) <= eps*scale && dy < 0:
		return 90
	case math.Abs(dy) <= eps*scale && dx < 0:
		return 180
	case math.Abs(dx) <= eps*scale && dy > 0:
		return 270
	}
	return NormalizeAngle(math.Atan2(-dy, dx) * 180 / math.Pi)
}
