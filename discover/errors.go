package discover

import "errors"

// Sentinel errors for virtual-filesystem traversal. Drivers classify
// listing failures by returning (or wrapping) the first two; anything
// else is unclassified and propagates to the caller unchanged.
var (
	// ErrNotDirectory indicates a listed path that is a file leaf.
	ErrNotDirectory = errors.New("discover: not a directory")
	// ErrNotFound indicates a path that does not exist.
	ErrNotFound = errors.New("discover: does not exist")
	// ErrNoLister indicates a virtual root with no Lister configured.
	ErrNoLister = errors.New("discover: no virtual filesystem lister configured")
)
