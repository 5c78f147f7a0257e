package raster

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasalvit/compguide"
)

func TestRenderBasicCross(t *testing.T) {
	prims, err := compguide.Render(compguide.BasicCross, compguide.Rectangle{Width: 40, Height: 30}, 0)
	require.NoError(t, err)

	dc, err := Render(40, 30, prims, compguide.DefaultPen())
	require.NoError(t, err)
	defer dc.Close()

	img := dc.Image()
	require.Equal(t, 40, img.Bounds().Dx())
	require.Equal(t, 30, img.Bounds().Dy())

	_, _, _, a := img.At(20, 5).RGBA()
	assert.NotZero(t, a, "vertical line")
	_, _, _, a = img.At(5, 15).RGBA()
	assert.NotZero(t, a, "horizontal line")
	_, _, _, a = img.At(5, 5).RGBA()
	assert.Zero(t, a, "background stays transparent")
}

func TestRenderSpiral(t *testing.T) {
	prims, err := compguide.Render(compguide.GoldenSpiral, compguide.Rectangle{Width: 162, Height: 100}, 0)
	require.NoError(t, err)

	dc, err := Render(162, 100, prims, compguide.DefaultPen())
	require.NoError(t, err)
	defer dc.Close()

	var painted int
	img := dc.Image()
	for y := 0; y < 100; y++ {
		for x := 0; x < 162; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
				painted++
			}
		}
	}
	assert.Greater(t, painted, 100)
}

func TestEncodePNG(t *testing.T) {
	prims, err := compguide.Render(compguide.RuleOfThirds, compguide.Rectangle{Width: 30, Height: 30}, 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, 30, 30, prims, compguide.Pen{Color: "#ff0000", Width: 1, Style: compguide.DashLine}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 30, img.Bounds().Dx())
}

func TestRenderErrors(t *testing.T) {
	_, err := Render(0, 10, nil, compguide.DefaultPen())
	assert.True(t, errors.Is(err, compguide.ErrInvalidArgument))

	_, err = Render(10, 10, nil, compguide.Pen{Color: "#000", Width: -1})
	assert.True(t, errors.Is(err, compguide.ErrInvalidPen))
}

func TestPreview(t *testing.T) {
	assert.Equal(t, 0.1, PreviewScale(1920, 1080, 192, 192))
	assert.Equal(t, 0.5, PreviewScale(100, 400, 100, 200))
	assert.Equal(t, 0.0, PreviewScale(0, 400, 100, 200))

	dc, err := Preview(compguide.BasicCross, 1920, 1080, 0, compguide.DefaultPen(), 192, 192)
	require.NoError(t, err)
	defer dc.Close()
	assert.Equal(t, 192, dc.Width())
	assert.Equal(t, 108, dc.Height())

	_, err = Preview(compguide.BasicCross, 1920, 1080, 0, compguide.DefaultPen(), 0, 192)
	assert.True(t, errors.Is(err, compguide.ErrInvalidArgument))
}

func TestFlattenSteps(t *testing.T) {
	assert.Equal(t, ArcFlattenSteps, flattenSteps(compguide.Arc{SweepAngle: 90}))
	assert.Equal(t, 3*ArcFlattenSteps, flattenSteps(compguide.Arc{SweepAngle: -270}))
	assert.Equal(t, 1, flattenSteps(compguide.Arc{}))
}

func TestValidHexColor(t *testing.T) {
	for _, c := range []string{"#fff", "#ffff", "#00aa00", "#00AA00cc"} {
		assert.True(t, validHexColor(c), c)
	}
	for _, c := range []string{"", "00aa00", "#00aa0", "#ggg", "green"} {
		assert.False(t, validHexColor(c), c)
	}
}
