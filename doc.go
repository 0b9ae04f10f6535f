// Package spantile provides the core primitives for streaming training
// samples out of heterogeneous, possibly remote, tiled geospatial
// datasets: a 6-D spatiotemporal bounding box with exact set algebra,
// partial-timestamp disambiguation, sample collation, and recursive
// file discovery over local and virtual file systems.
//
// What spantile gives you:
//
//   - Bounding boxes: an immutable 6-D interval (x, y, time) with
//     union, intersection, containment and proportional splitting —
//     the key type for any spatiotemporal tile index.
//   - Timestamps: turn a textually truncated date ("2020", "2020-12")
//     into the maximal epoch-second interval it could represent.
//   - Collation: stack, concatenate, merge and unbind dictionaries of
//     named tensors across many spatial tiles.
//   - Discovery: glob-filtered recursive listing over both native
//     directory trees and scheme-prefixed virtual file systems
//     (cloud blob stores, archives).
//
// Everything is synchronous, allocation-light, and free of shared
// mutable state; callers layer their own concurrency on top.
//
// The library is organized into small, single-concern subpackages:
//
//	geobox/   — the Box value type and its interval algebra
//	timespan/ — partial-timestamp → time-interval resolution
//	tensor/   — dense N-d float64 arrays backing collation
//	collate/  — stack/concat/merge/unbind over tensor samples
//	discover/ — local and virtual-filesystem file discovery
//	extdep/   — external executables and optional-dependency hints
//
// Quick taste:
//
//	tile, _ := geobox.New(0, 10, 0, 10, mint, maxt)
//	query, _ := geobox.New(5, 15, 5, 15, mint, maxt)
//	if tile.Intersects(query) {
//		overlap, _ := tile.Intersect(query)
//		_ = overlap.Area()
//	}
//
//	go get github.com/veldram/spantile
package spantile
