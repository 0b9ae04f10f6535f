package tensor

import "errors"

// Sentinel errors for tensor operations. Returned wrapped with call
// context; match with errors.Is.
var (
	// ErrBadShape indicates a non-positive dimension or a data length
	// that does not match the requested shape.
	ErrBadShape = errors.New("tensor: invalid shape")
	// ErrIndexOutOfRange indicates an element index outside the shape.
	ErrIndexOutOfRange = errors.New("tensor: index out of range")
	// ErrShapeMismatch indicates operands with incompatible shapes.
	ErrShapeMismatch = errors.New("tensor: shape mismatch")
	// ErrEmptyInput indicates a batched operation over zero tensors.
	ErrEmptyInput = errors.New("tensor: at least one tensor required")
)
