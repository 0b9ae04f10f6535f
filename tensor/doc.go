// Package tensor provides a dense, row-major N-dimensional float64
// array with exactly the capability set sample collation needs:
// stack along a new leading axis, concatenate along the existing
// leading axis, elementwise maximum, and unbind back into slices.
//
// What:
//
//   - Dense stores values in a flat slice plus a shape vector; the
//     empty shape with a single element is the scalar form.
//   - Constructors: New, Zeros, FromVector, Scalar.
//   - Ops: Stack, Concat, Maximum, Unbind, Clip.
//
// Why:
//
//   - Batching: a mini-batch of k same-shape tiles is their Stack;
//     Unbind recovers the individual tiles.
//   - Mosaicking: overlapping tiles merge via elementwise Maximum so
//     real data wins over nodata zeros.
//
// Conventions:
//
//   - Values are laid out row-major (last axis fastest).
//   - Accessors return copies; no method mutates its inputs, every op
//     allocates its result.
//
// Complexity: all operations are linear in the number of elements.
//
// Errors:
//
//   - ErrBadShape: non-positive dimension or data/shape length
//     mismatch at construction.
//   - ErrIndexOutOfRange: At/Set index outside the shape.
//   - ErrShapeMismatch: incompatible operand shapes.
//   - ErrEmptyInput: Stack/Concat of an empty batch.
package tensor
