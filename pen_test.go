package compguide

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPen(t *testing.T) {
	p := DefaultPen()
	require.NoError(t, p.Validate())
	assert.Nil(t, p.Dashes())

	p.Style = DashDotLine
	assert.Equal(t, []float64{8, 4, 2, 4}, p.Dashes())

	assert.Equal(t, 1.0, p.Scaled(0.5).Width)
	assert.Equal(t, MinPenWidth, p.Scaled(0.1).Width)
	assert.Equal(t, 2.0, p.Width, "Scaled must not modify the receiver")
}

func TestPenValidate(t *testing.T) {
	bad := []Pen{
		{Color: "#fff", Width: 0},
		{Color: "#fff", Width: -1},
		{Color: "#fff", Width: 1, Style: LineStyle(9)},
		{Width: 1},
	}
	for _, p := range bad {
		assert.True(t, errors.Is(p.Validate(), ErrInvalidPen), "%+v", p)
	}
}

func TestParseLineStyle(t *testing.T) {
	for s := SolidLine; s < numLineStyles; s++ {
		got, err := ParseLineStyle(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := ParseLineStyle("wavy")
	assert.True(t, errors.Is(err, ErrInvalidPen))
}
