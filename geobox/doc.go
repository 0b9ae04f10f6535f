// Package geobox defines Box, an immutable 6-dimensional axis-aligned
// bounding box over two spatial axes and one temporal axis, used as
// the key type when indexing raster tiles across space and time.
//
// What:
//
//   - Box carries six bounds (MinX, MaxX, MinY, MaxY, MinT, MaxT) and
//     is validated at construction; all algebra returns new values.
//   - Set algebra: Contains, Union, Intersect, Intersects.
//   - Measures: Area (spatial), Volume (spatial × temporal).
//   - Split partitions a box in two along x or y at a proportion.
//   - At/Slice/Bounds expose the six bounds positionally for interop
//     with coordinate-indexed spatial indexes (R-trees and friends).
//
// Why:
//
//   - Tile indexing: each raster file's spatial extent plus the time
//     interval it covers becomes one Box inserted into an index.
//   - Query planning: intersect a query window with candidate tiles,
//     split regions into train/validation halves.
//
// Conventions:
//
//   - All bounds are inclusive; touching boxes intersect and a box
//     contains its own boundary.
//   - Degenerate boxes (equal bounds on an axis) are valid and have
//     zero Area or Volume.
//
// Complexity: every operation is O(1) and allocation-free except
// Slice, which allocates its result.
//
// Errors:
//
//   - ErrInvalidRange: a min bound exceeds its max at construction.
//   - ErrIndexOutOfRange: positional access outside 0..5.
//   - ErrNoOverlap: Intersect of disjoint boxes.
//   - ErrInvalidProportion: Split factor outside (0,1).
package geobox
