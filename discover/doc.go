// Package discover lists tile files recursively, with glob filtering,
// over both native directory trees and scheme-prefixed virtual file
// systems (cloud blob stores, zip archives).
//
// What:
//
//   - IsVirtualPath: pure string test for VFS addressing ("://"
//     scheme separators or "/vsi" style prefixes).
//   - Lister: the narrow driver contract a virtual filesystem must
//     satisfy — list a directory's children, or classify the failure
//     as ErrNotDirectory / ErrNotFound.
//   - Walker: discovery configured with an afero.Fs for local roots,
//     a Lister for virtual roots, and a zap logger.
//   - ListRecursive: all files under a root whose final path
//     component matches a glob pattern.
//
// Why:
//
//   - Building a spatiotemporal tile index starts with enumerating
//     every raster under a dataset root, wherever that root lives;
//     the index builder only needs bare path strings back.
//
// Traversal semantics:
//
//   - Virtual roots walk an explicit stack of directories with one
//     blocking ListDir call per directory; a path the driver rejects
//     as "not a directory" is a file leaf. A root that does not exist
//     yields an empty list (non-recursive listing compatibility); any
//     other driver failure propagates unchanged.
//   - Local roots glob root/**/pattern; a missing root yields an
//     empty list. Order follows the traversal, not sorted.
//
// The walk is synchronous and sequential; a slow backend blocks it.
// Callers wanting parallelism or deadlines layer their own on top.
//
// Errors:
//
//   - ErrNotDirectory, ErrNotFound: driver failure classification.
//   - ErrNoLister: a virtual root with no Lister configured.
package discover
