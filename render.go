package compguide

import (
	"fmt"
	"log/slog"
)

// Render returns the primitives of guide kind drawn over area.
//
// Options kind does not accept are ignored and its forced options are
// always applied. Areas taller than wide are computed in landscape and
// rotated back, so flips keep their on-canvas meaning. The result is
// deterministic and Render is safe for concurrent use.
func Render(kind GuideKind, area Rectangle, opts OptionSet) ([]Primitive, error) {
	f, err := WorkingFrame(kind, area, opts)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", kind, err)
	}
	return renderFrame(kind, f), nil
}

// renderFrame draws kind in a resolved frame. A frame with no area left
// yields an empty, non-nil slice.
func renderFrame(kind GuideKind, f Frame) []Primitive {
	log := Logger()
	if f.Empty() {
		log.Debug("empty working frame", slog.String("kind", kind.String()), slog.Any("area", f.Area))
		return []Primitive{}
	}

	local := construct(kind, f.Width, f.Height)
	log.Debug("render",
		slog.String("kind", kind.String()),
		slog.Any("area", f.Area),
		slog.String("options", f.Options.String()),
		slog.Bool("rotated", f.Rotated),
		slog.Int("primitives", len(local)),
	)
	return Transform(local, f.transform)
}

// construct builds the guide in a local w x h frame anchored at the origin.
func construct(kind GuideKind, w, h float64) []Primitive {
	switch kind {
	case RuleOfThirds:
		return grid(w, h, 3)
	case BasicQuarters:
		return grid(w, h, 4)
	case GoldenSection:
		return grid(w, h, 1+Phi)
	case GoldenRectangle:
		return []Primitive{Rect{W: w, H: h}}
	case GoldenSpiral:
		return []Primitive{goldenSpiral(w, h)}
	case GoldenSpiralSection:
		return goldenSpiralSection(w, h)
	case GoldenTriangles:
		pX := w / (1 + Phi)
		return []Primitive{
			line(0, 0, w, h),
			line(0, h, pX, 0),
			line(w, 0, w-pX, h),
		}
	case GoldenDiagonals:
		dX := w - h
		return []Primitive{
			line(0, 0, h, h),
			line(0, h, h, 0),
			line(dX, 0, dX+h, h),
			line(dX, h, dX+h, 0),
		}
	case BasicCross:
		mX, mY := w/2, h/2
		return []Primitive{
			line(mX, 0, mX, h),
			line(0, mY, w, mY),
		}
	case BasicDiagonals:
		return []Primitive{
			line(0, 0, w, h),
			line(0, h, w, 0),
		}
	case BasicDiamond:
		mX, mY := w/2, h/2
		return []Primitive{
			line(0, mY, mX, 0),
			line(mX, 0, w, mY),
			line(w, mY, mX, h),
			line(mX, h, 0, mY),
		}
	case DynamicSymmetry:
		tmpX := w / 3
		pY := 2 * h / 3
		return reciprocal(w, h, h/(pY/tmpX))
	case DynamicSymmetryGolden:
		tmpX := w / (1 + Phi)
		pY := h - h/(1+Phi)
		return reciprocal(w, h, h/(pY/tmpX))
	case ReciprocalLines:
		return reciprocal(w, h, w/3)
	case ReciprocalLinesGolden:
		return reciprocal(w, h, w/(1+Phi))
	}
	return nil
}

func line(x1, y1, x2, y2 float64) Line {
	return Line{P1: Tuple{x1, y1}, P2: Tuple{x2, y2}}
}

// grid returns two verticals and two horizontals at 1/div of the frame
// from each edge.
func grid(w, h, div float64) []Primitive {
	pX, pY := w/div, h/div
	return []Primitive{
		line(pX, 0, pX, h),
		line(w-pX, 0, w-pX, h),
		line(0, pY, w, pY),
		line(0, h-pY, w, h-pY),
	}
}

// reciprocal returns the four lines running from each corner to the
// point pX away from the opposite corner on the other long edge.
func reciprocal(w, h, pX float64) []Primitive {
	return []Primitive{
		line(0, 0, pX, h),
		line(0, h, pX, 0),
		line(w, 0, w-pX, h),
		line(w, h, w-pX, 0),
	}
}
