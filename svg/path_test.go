package svg

import (
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/vasalvit/compguide"
)

var approx = cmpopts.EquateApprox(1e-9, 1e-9)

type PathTest struct {
	Description string
	Svg         string
	Prims       []compguide.Primitive
}

func line(x1, y1, x2, y2 float64) compguide.Primitive {
	return compguide.Line{P1: compguide.Tuple{x1, y1}, P2: compguide.Tuple{x2, y2}}
}

var tests = []PathTest{
	{
		"absolute lines",
		`<svg viewBox="0 0 100 100"><path d="M0.000 0.000 L100.000 0.000 100.000 100.000 L0.000 100.000 Z" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]compguide.Primitive{
			line(0, 0, 100, 0),
			line(100, 0, 100, 100),
			line(100, 100, 0, 100),
			line(0, 100, 0, 0),
		},
	},
	{
		"relative lines",
		`<svg viewBox="0 0 100 100"><path d="M0.000 0.000 l100.000 0.000 100.000 100.000 l0.000 100.000 Z" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]compguide.Primitive{
			line(0, 0, 100, 0),
			line(100, 0, 200, 100),
			line(200, 100, 200, 200),
			line(200, 200, 0, 0),
		},
	},
	{
		"relative h-line test",
		`<svg viewBox="0 0 100 100"><path d="M0.000 0.000 h100.000 50.000" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]compguide.Primitive{line(0, 0, 100, 0), line(100, 0, 150, 0)},
	},
	{
		"absolute h-line test",
		`<svg viewBox="0 0 100 100"><path d="M0.000 0.000 H100.000 50.000" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]compguide.Primitive{line(0, 0, 100, 0), line(100, 0, 50, 0)},
	},
	{
		"relative v-line test",
		`<svg viewBox="0 0 100 100"><path d="M0.000 0.000 v100.000 50.000" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]compguide.Primitive{line(0, 0, 0, 100), line(0, 100, 0, 150)},
	},
	{
		"absolute v-line test",
		`<svg viewBox="0 0 100 100"><path d="M0.000 0.000 V100.000 50.000" fill="#000000" stroke="#000000" stroke-width="2"/></svg>`,
		[]compguide.Primitive{line(0, 0, 0, 100), line(0, 100, 0, 50)},
	},
	{
		"implicit lineto after moveto",
		`<svg><path d="M 10 10 20 10 m 5 5 5 0"/></svg>`,
		[]compguide.Primitive{line(10, 10, 20, 10), line(25, 15, 30, 15)},
	},
	{
		"counter-clockwise quarter arc",
		`<svg><path d="M 0 0 A 100 100 0 0 0 100 100"/></svg>`,
		[]compguide.Primitive{compguide.ArcPath{
			Start: compguide.Tuple{0, 0},
			Arcs: []compguide.Arc{
				{Bounds: compguide.Rectangle{X: 0, Y: -100, Width: 200, Height: 200}, StartAngle: 180, SweepAngle: 90},
			},
		}},
	},
	{
		"clockwise quarter arc",
		`<svg><path d="M 0 0 A 100 100 0 0 1 100 100"/></svg>`,
		[]compguide.Primitive{compguide.ArcPath{
			Start: compguide.Tuple{0, 0},
			Arcs: []compguide.Arc{
				{Bounds: compguide.Rectangle{X: -100, Y: 0, Width: 200, Height: 200}, StartAngle: 90, SweepAngle: -90},
			},
		}},
	},
	{
		"large arc",
		`<svg><path d="M 0 0 A 100 100 0 1 0 100 100"/></svg>`,
		[]compguide.Primitive{compguide.ArcPath{
			Start: compguide.Tuple{0, 0},
			Arcs: []compguide.Arc{
				{Bounds: compguide.Rectangle{X: -100, Y: 0, Width: 200, Height: 200}, StartAngle: 90, SweepAngle: 270},
			},
		}},
	},
	{
		"joined arcs",
		`<svg><path d="M 0 0 L 0 10 a 10 10 0 0 0 10 10 A 10 10 0 0 0 20 10"/></svg>`,
		[]compguide.Primitive{compguide.ArcPath{
			Start: compguide.Tuple{0, 0},
			Arcs: []compguide.Arc{
				{Bounds: compguide.Rectangle{X: 0, Y: 0, Width: 20, Height: 20}, StartAngle: 180, SweepAngle: 90},
				{Bounds: compguide.Rectangle{X: 0, Y: 0, Width: 20, Height: 20}, StartAngle: 270, SweepAngle: 90},
			},
		}},
	},
}

func TestParsePathList(t *testing.T) {
	for _, test := range tests {
		svg, err := ParseSvg(test.Svg, "test", 0)
		require.NoError(t, err, test.Description)

		prims, err := svg.Primitives()
		require.NoError(t, err, test.Description)

		if diff := cmp.Diff(test.Prims, prims, approx); diff != "" {
			t.Fatalf("unexpected primitives for test %s (-want +got):\n%s", test.Description, diff)
		}
	}
}

func TestParseDrawingInstructions(t *testing.T) {
	svg, err := ParseSvg(tests[2].Svg, "test", 0)
	require.NoError(t, err)

	dis, err := svg.ParseDrawingInstructions()
	require.NoError(t, err)

	kinds := []compguide.InstructionType{
		compguide.MoveInstruction, compguide.LineInstruction, compguide.PaintInstruction,
		compguide.MoveInstruction, compguide.LineInstruction, compguide.PaintInstruction,
	}
	require.Len(t, dis, len(kinds))
	for i, kind := range kinds {
		if dis[i].Kind != kind {
			t.Fatalf("expected instruction %d to be %s, but was %s", i, kind, dis[i].Kind)
		}
	}
	if *dis[4].M != (compguide.Tuple{150, 0}) {
		t.Fatalf("expected last line to end at 150,0, got %v", *dis[4].M)
	}
}

func TestParsePathErrors(t *testing.T) {
	tests := []struct {
		d    string
		want error
	}{
		{"M 0 0 C 1 1 2 2 3 3", ErrUnsupported},
		{"M 0 0 A 10 20 0 0 0 10 10", ErrUnsupported},
		{"M 0 0 L 5 5 A 10 10 0 0 0 10 10 L 20 20", ErrUnsupported},
		{"M 0 0 A 10 10 0 0 0 10 10 Z", ErrUnsupported},
		{"L 10 10", ErrInvalidPath},
		{"M 0 0 A 10 10 0 2 0 10 10", ErrInvalidPath},
		{"M 0 0 L", ErrInvalidPath},
		{"Z", ErrInvalidPath},
	}
	for _, tt := range tests {
		p := &Path{ID: "bad", D: tt.d}
		_, err := p.Primitives()
		if !errors.Is(err, tt.want) {
			t.Fatalf("path %q: expected %v, got %v", tt.d, tt.want, err)
		}
	}
}

func TestParsePathReleasesLexer(t *testing.T) {
	before := runtime.NumGoroutine()
	for i := 0; i < 200; i++ {
		svg, err := ParseSvg(`<svg><path d="M 0 0 L 10 10"/></svg>`, "lexer", 0)
		require.NoError(t, err)
		_, err = svg.Primitives()
		require.NoError(t, err)

		_, err = (&Path{ID: "bad", D: "L 10 10 L 20 20"}).Primitives()
		require.Error(t, err)
	}
	require.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= before+5
	}, 2*time.Second, 10*time.Millisecond, "lexer goroutines still running: before=%d now=%d", before, runtime.NumGoroutine())
}
