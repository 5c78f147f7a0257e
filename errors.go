package compguide

import "errors"

var (
	// ErrInvalidArgument is returned for an area without a positive, finite
	// width and height.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownGuideKind is returned for a kind outside the declared set.
	ErrUnknownGuideKind = errors.New("unknown guide kind")
	// ErrInvalidPen is returned by Pen.Validate.
	ErrInvalidPen = errors.New("invalid pen")
)
