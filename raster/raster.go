// Package raster strokes guide primitives onto a gg drawing context and
// encodes the result as PNG previews.
package raster

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/gogpu/gg"
	mt "github.com/rustyoz/Mtransform"

	"github.com/vasalvit/compguide"
)

// ArcFlattenSteps is the number of straight segments used for every 90
// degrees of arc.
const ArcFlattenSteps = 16

// Stroke draws prims onto dc with pen. Arcs are flattened into line
// segments; every primitive is stroked on its own.
func Stroke(dc *gg.Context, prims []compguide.Primitive, pen compguide.Pen) error {
	if err := pen.Validate(); err != nil {
		return err
	}
	if !validHexColor(pen.Color) {
		compguide.Logger().Warn("raster: colour is not #rgb, #rrggbb or #rrggbbaa", "color", pen.Color)
	}

	dc.SetHexColor(pen.Color)
	dc.SetLineWidth(pen.Width)
	if dashes := pen.Dashes(); dashes != nil {
		dc.SetDash(dashes...)
	} else {
		dc.ClearDash()
	}

	for _, di := range compguide.Instructions(prims) {
		switch di.Kind {
		case compguide.MoveInstruction:
			dc.MoveTo(di.M[0], di.M[1])
		case compguide.LineInstruction:
			dc.LineTo(di.M[0], di.M[1])
		case compguide.ArcInstruction:
			for _, p := range di.Arc.Points(flattenSteps(*di.Arc)) {
				dc.LineTo(p[0], p[1])
			}
		case compguide.CloseInstruction:
			dc.ClosePath()
		case compguide.PaintInstruction:
			if err := dc.Stroke(); err != nil {
				return fmt.Errorf("raster: stroke: %w", err)
			}
		}
	}
	return nil
}

func flattenSteps(a compguide.Arc) int {
	steps := int(math.Ceil(math.Abs(a.SweepAngle) / 90 * ArcFlattenSteps))
	if steps < 1 {
		steps = 1
	}
	return steps
}

func validHexColor(c string) bool {
	if !strings.HasPrefix(c, "#") {
		return false
	}
	c = c[1:]
	switch len(c) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range c {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

// Render returns a transparent width x height context with prims stroked
// onto it. The caller owns the context and should Close it.
func Render(width, height int, prims []compguide.Primitive, pen compguide.Pen) (*gg.Context, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image %dx%d", compguide.ErrInvalidArgument, width, height)
	}
	dc := gg.NewContext(width, height)
	if err := Stroke(dc, prims, pen); err != nil {
		dc.Close()
		return nil, err
	}
	compguide.Logger().Debug("raster render", "width", width, "height", height, "primitives", len(prims))
	return dc, nil
}

// EncodePNG renders prims like Render and writes the image to w as PNG.
func EncodePNG(w io.Writer, width, height int, prims []compguide.Primitive, pen compguide.Pen) error {
	dc, err := Render(width, height, prims, pen)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.EncodePNG(w)
}

// PreviewScale returns the ratio fitting a docW x docH document inside a
// boxW x boxH preview while keeping its aspect ratio.
func PreviewScale(docW, docH, boxW, boxH float64) float64 {
	if !(docW > 0) || !(docH > 0) {
		return 0
	}
	return math.Min(boxW/docW, boxH/docH)
}

// Preview draws kind over the whole docW x docH document, scaled down to
// fit a boxW x boxH image. The pen width is scaled with the document.
func Preview(kind compguide.GuideKind, docW, docH float64, opts compguide.OptionSet, pen compguide.Pen, boxW, boxH int) (*gg.Context, error) {
	ratio := PreviewScale(docW, docH, float64(boxW), float64(boxH))
	if !(ratio > 0) {
		return nil, fmt.Errorf("%w: preview of %gx%g into %dx%d", compguide.ErrInvalidArgument, docW, docH, boxW, boxH)
	}

	prims, err := compguide.Render(kind, compguide.Rectangle{Width: docW, Height: docH}, opts)
	if err != nil {
		return nil, err
	}
	scale := mt.Identity()
	scale[0][0], scale[1][1] = ratio, ratio

	w := int(math.Round(docW * ratio))
	h := int(math.Round(docH * ratio))
	return Render(max(w, 1), max(h, 1), compguide.Transform(prims, scale), pen.Scaled(ratio))
}
