package geobox

import "fmt"

// Contains reports whether other lies entirely within b: both bounds
// of other must fall inside [min, max] on each of the three axes.
// This is containment of intervals, not mere corner containment, so a
// box always contains itself and containment is inclusive.
func (b Box) Contains(other Box) bool {
	return b.MinX <= other.MinX && other.MinX <= b.MaxX &&
		b.MinX <= other.MaxX && other.MaxX <= b.MaxX &&
		b.MinY <= other.MinY && other.MinY <= b.MaxY &&
		b.MinY <= other.MaxY && other.MaxY <= b.MaxY &&
		b.MinT <= other.MinT && other.MinT <= b.MaxT &&
		b.MinT <= other.MaxT && other.MaxT <= b.MaxT
}

// Union returns the minimum bounding box containing both b and other.
func (b Box) Union(other Box) Box {
	return Box{
		MinX: min(b.MinX, other.MinX), MaxX: max(b.MaxX, other.MaxX),
		MinY: min(b.MinY, other.MinY), MaxY: max(b.MaxY, other.MaxY),
		MinT: min(b.MinT, other.MinT), MaxT: max(b.MaxT, other.MaxT),
	}
}

// Intersect returns the overlap of b and other. When the boxes are
// disjoint on any axis the componentwise result is an inverted range;
// that construction failure surfaces as ErrNoOverlap carrying both
// operands, never as ErrInvalidRange.
func (b Box) Intersect(other Box) (Box, error) {
	out, err := New(
		max(b.MinX, other.MinX), min(b.MaxX, other.MaxX),
		max(b.MinY, other.MinY), min(b.MaxY, other.MaxY),
		max(b.MinT, other.MinT), min(b.MaxT, other.MaxT),
	)
	if err != nil {
		return Box{}, fmt.Errorf("%v and %v: %w", b, other, ErrNoOverlap)
	}
	return out, nil
}

// Intersects reports whether b and other overlap on all three axes,
// without building the intersection. Bounds are inclusive: boxes that
// merely touch count as intersecting, matching Intersect's success.
func (b Box) Intersects(other Box) bool {
	return b.MinX <= other.MaxX && b.MaxX >= other.MinX &&
		b.MinY <= other.MaxY && b.MaxY >= other.MinY &&
		b.MinT <= other.MaxT && b.MaxT >= other.MinT
}

// Area returns the spatial area (maxx-minx)·(maxy-miny).
func (b Box) Area() float64 {
	return (b.MaxX - b.MinX) * (b.MaxY - b.MinY)
}

// Volume returns the spatial area times the temporal extent.
func (b Box) Volume() float64 {
	return b.Area() * (b.MaxT - b.MinT)
}

// Split partitions b in two along x (horizontal=true) or y at
// min + proportion·(max-min). The halves exactly partition b on the
// split axis and are identical to b on every other axis. Returns
// ErrInvalidProportion unless 0 < proportion < 1.
func (b Box) Split(proportion float64, horizontal bool) (first, second Box, err error) {
	if !(proportion > 0 && proportion < 1) {
		return Box{}, Box{}, fmt.Errorf("proportion=%v: %w", proportion, ErrInvalidProportion)
	}
	first, second = b, b
	if horizontal {
		splitX := b.MinX + (b.MaxX-b.MinX)*proportion
		first.MaxX, second.MinX = splitX, splitX
	} else {
		splitY := b.MinY + (b.MaxY-b.MinY)*proportion
		first.MaxY, second.MinY = splitY, splitY
	}
	return first, second, nil
}
