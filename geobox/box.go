package geobox

import "fmt"

// NumBounds is the number of scalar bounds carried by a Box, in the
// fixed positional order MinX, MaxX, MinY, MaxY, MinT, MaxT.
const NumBounds = 6

// Box is a 6-D axis-aligned bounding box: two spatial axes and one
// temporal axis, all bounds inclusive. A Box is immutable once built;
// every operation returns a new value, never mutates the receiver.
//
// Spatial bounds are in whatever consistent unit the caller indexes
// in (projected meters, degrees); temporal bounds are epoch seconds.
type Box struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinT, MaxT float64
}

// New constructs a validated Box. Each axis is checked independently,
// x first, then y, then t, so the returned error names the offending
// pair. Equal bounds on an axis are valid (degenerate box).
func New(minX, maxX, minY, maxY, minT, maxT float64) (Box, error) {
	if minX > maxX {
		return Box{}, fmt.Errorf("minx=%v > maxx=%v: %w", minX, maxX, ErrInvalidRange)
	}
	if minY > maxY {
		return Box{}, fmt.Errorf("miny=%v > maxy=%v: %w", minY, maxY, ErrInvalidRange)
	}
	if minT > maxT {
		return Box{}, fmt.Errorf("mint=%v > maxt=%v: %w", minT, maxT, ErrInvalidRange)
	}
	return Box{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY, MinT: minT, MaxT: maxT}, nil
}

// Bounds returns the six bounds as a fixed-order array. The array is
// a copy: it can be ranged over, re-ranged, or mutated freely without
// affecting the Box.
func (b Box) Bounds() [NumBounds]float64 {
	return [NumBounds]float64{b.MinX, b.MaxX, b.MinY, b.MaxY, b.MinT, b.MaxT}
}

// At returns the i-th bound in the fixed positional order.
// Returns ErrIndexOutOfRange unless 0 <= i < NumBounds.
func (b Box) At(i int) (float64, error) {
	if i < 0 || i >= NumBounds {
		return 0, fmt.Errorf("index %d: %w", i, ErrIndexOutOfRange)
	}
	bounds := b.Bounds()
	return bounds[i], nil
}

// Slice returns the half-open positional subsequence [lo, hi) of the
// bounds. Returns ErrIndexOutOfRange when the range is malformed or
// falls outside 0..NumBounds.
func (b Box) Slice(lo, hi int) ([]float64, error) {
	if lo < 0 || hi > NumBounds || lo > hi {
		return nil, fmt.Errorf("slice [%d:%d]: %w", lo, hi, ErrIndexOutOfRange)
	}
	bounds := b.Bounds()
	out := make([]float64, hi-lo)
	copy(out, bounds[lo:hi])
	return out, nil
}

// String renders the box for logs and error messages.
func (b Box) String() string {
	return fmt.Sprintf("Box(minx=%g, maxx=%g, miny=%g, maxy=%g, mint=%g, maxt=%g)",
		b.MinX, b.MaxX, b.MinY, b.MaxY, b.MinT, b.MaxT)
}
