package compguide

import (
	"math"
	"testing"

	mt "github.com/rustyoz/Mtransform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArcPoints(t *testing.T) {
	a := Arc{Bounds: Rectangle{X: 0, Y: -100, Width: 200, Height: 200}, StartAngle: 180, SweepAngle: 90}

	assert.Equal(t, Tuple{100, 0}, a.Center())
	assert.Equal(t, 100.0, a.Radius())
	assert.Equal(t, Tuple{0, 0}, a.StartPoint())
	assert.Equal(t, Tuple{100, 100}, a.EndPoint())

	pts := a.Points(4)
	require.Len(t, pts, 5)
	assert.Equal(t, a.StartPoint(), pts[0])
	assert.Equal(t, a.EndPoint(), pts[4])
	for _, p := range pts {
		d := (p[0]-100)*(p[0]-100) + p[1]*p[1]
		assert.InDelta(t, 100*100, d, 1e-6)
	}

	assert.Len(t, a.Points(0), 2)
}

func TestArcPathPointsDropsJoins(t *testing.T) {
	path := ArcPath{
		Start: Tuple{0, 0},
		Arcs: []Arc{
			{Bounds: Rectangle{X: 0, Y: -100, Width: 200, Height: 200}, StartAngle: 180, SweepAngle: 90},
			{Bounds: Rectangle{X: 50, Y: 0, Width: 100, Height: 100}, StartAngle: 270, SweepAngle: 90},
		},
	}
	pts := path.Points(2)
	// start, 2 more on the first arc, 2 more on the second
	assert.Len(t, pts, 5)
	assert.Equal(t, Tuple{150, 50}, pts[4])
}

func TestAngles(t *testing.T) {
	assert.Equal(t, 0.0, NormalizeAngle(360))
	assert.Equal(t, 90.0, NormalizeAngle(450))
	assert.Equal(t, 270.0, NormalizeAngle(-90))

	assert.Equal(t, 0.0, AngleOf(1, 0))
	assert.Equal(t, 90.0, AngleOf(0, -1))
	assert.Equal(t, 180.0, AngleOf(-1, 0))
	assert.Equal(t, 270.0, AngleOf(0, 1))
	assert.InDelta(t, 45.0, AngleOf(1, -1), 1e-12)

	// decoded coordinates carry rounding noise
	assert.Equal(t, 90.0, AngleOf(1e-14, -100))
	assert.Equal(t, 180.0, AngleOf(-100, 3e-13))
	assert.NotEqual(t, 0.0, AngleOf(100, -1e-3))
}

func TestTransformArc(t *testing.T) {
	a := Arc{Bounds: Rectangle{X: 0, Y: 0, Width: 10, Height: 10}, StartAngle: 180, SweepAngle: 90}
	from, to := a.StartPoint(), a.EndPoint()

	turn := mt.Identity()
	turn[0][0], turn[0][1], turn[0][2] = 0, -1, 10
	turn[1][0], turn[1][1], turn[1][2] = 1, 0, 0

	transforms := map[string]mt.Transform{
		"mirror x":   mirror(10, 10, true, false),
		"mirror y":   mirror(10, 10, false, true),
		"quarter":    turn,
		"translate":  translation(3, -4),
		"mirror all": mirror(10, 10, true, true),
	}
	for name, tr := range transforms {
		got := transformArc(tr, a)
		assertNear(t, applyTuple(tr, from), got.StartPoint(), 1e-12)
		assertNear(t, applyTuple(tr, to), got.EndPoint(), 1e-12)
		assert.Equal(t, 90.0, math.Abs(got.SweepAngle), name)
	}
}

func TestTransformRectNormalised(t *testing.T) {
	got := Transform([]Primitive{Rect{X: 1, Y: 2, W: 3, H: 4}}, mirror(10, 10, true, true))
	assert.Equal(t, []Primitive{Rect{X: 6, Y: 4, W: 3, H: 4}}, got)
}
