package geobox

import "errors"

// Sentinel errors for geobox operations. Call sites wrap these with
// fmt.Errorf("...: %w", ErrX); callers match via errors.Is.
var (
	// ErrInvalidRange indicates a min bound greater than its max bound.
	ErrInvalidRange = errors.New("geobox: invalid range: min bound exceeds max bound")
	// ErrIndexOutOfRange indicates a positional bound index outside 0..5.
	ErrIndexOutOfRange = errors.New("geobox: bound index out of range")
	// ErrNoOverlap indicates an intersection of boxes that do not overlap.
	ErrNoOverlap = errors.New("geobox: boxes do not overlap")
	// ErrInvalidProportion indicates a split proportion outside (0,1).
	ErrInvalidProportion = errors.New("geobox: split proportion must be in (0,1)")
)
