package compguide

import (
	"fmt"

	mt "github.com/rustyoz/Mtransform"
)

// Frame is the working frame a guide is drawn in. Width and Height are
// the local (landscape) dimensions; OffsetX and OffsetY place the frame
// inside the normalised area.
type Frame struct {
	Area    Rectangle
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
	// Rotated is set when the area is taller than wide and the guide was
	// computed a quarter turn away from the canvas.
	Rotated bool
	// Options are the effective options, flips already swapped when
	// Rotated.
	Options OptionSet

	transform mt.Transform
}

// WorkingFrame resolves the frame kind is drawn in for area and opts.
func WorkingFrame(kind GuideKind, area Rectangle, opts OptionSet) (Frame, error) {
	if !kind.Valid() {
		return Frame{}, fmt.Errorf("%w: %d", ErrUnknownGuideKind, int(kind))
	}
	if !area.valid() {
		return Frame{}, fmt.Errorf("%w: area %s must have a positive width and height", ErrInvalidArgument, area)
	}
	return newFrame(area, Effective(kind, opts)), nil
}

func newFrame(area Rectangle, opts OptionSet) Frame {
	f := Frame{Area: area, Options: opts}

	w, h := area.Width, area.Height
	base := translation(area.X, area.Y)
	if h > w {
		w, h = h, w
		base = quarterTurn(area)
		f.Rotated = true
		f.Options = opts.swapFlips()
	}

	f.Width, f.Height = w, h
	if f.Options.Has(ForceGoldenRatio) {
		if w/h >= Phi {
			f.Width = h * Phi
			f.OffsetX = (w - f.Width) / 2
		} else {
			f.Height = w / Phi
			f.OffsetY = (h - f.Height) / 2
		}
	}

	flip := mirror(f.Width, f.Height, f.Options.Has(FlipHorizontal), f.Options.Has(FlipVertical))
	f.transform = mt.MultiplyTransforms(
		mt.MultiplyTransforms(base, translation(f.OffsetX, f.OffsetY)),
		flip,
	)
	return f
}

// Empty reports whether the frame has no area left to draw in.
func (f Frame) Empty() bool {
	return !(f.Width > 0 && f.Height > 0)
}

// Bounds returns the frame in canvas coordinates.
func (f Frame) Bounds() Rectangle {
	return transformRect(f.transform, Rectangle{Width: f.Width, Height: f.Height})
}

// Transform returns the local to canvas transform of the frame.
func (f Frame) Transform() mt.Transform {
	return f.transform
}
