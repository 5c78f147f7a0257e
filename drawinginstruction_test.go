package compguide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstructions(t *testing.T) {
	arc := Arc{Bounds: Rectangle{Width: 2, Height: 2}, StartAngle: 180, SweepAngle: 90}
	prims := []Primitive{
		line(0, 0, 10, 10),
		Rect{X: 1, Y: 2, W: 3, H: 4},
		ArcPath{Start: Tuple{0, 1}, Arcs: []Arc{arc, arc}},
	}

	dis := Instructions(prims)

	kinds := []InstructionType{
		MoveInstruction, LineInstruction, PaintInstruction,
		MoveInstruction, LineInstruction, LineInstruction, LineInstruction, CloseInstruction, PaintInstruction,
		MoveInstruction, ArcInstruction, ArcInstruction, PaintInstruction,
	}
	require.Len(t, dis, len(kinds))
	for i, k := range kinds {
		assert.Equal(t, k, dis[i].Kind, "instruction %d", i)
	}

	assert.Equal(t, Tuple{10, 10}, *dis[1].M)
	assert.Equal(t, Tuple{4, 6}, *dis[5].M)
	assert.Equal(t, Tuple{0, 1}, *dis[9].M)
	assert.Equal(t, arc, *dis[10].Arc)
	// each instruction owns its arc
	assert.NotSame(t, dis[10].Arc, dis[11].Arc)
	assert.Nil(t, dis[12].M)
}

func TestInstructionsEmpty(t *testing.T) {
	assert.Empty(t, Instructions(nil))
}
