// Package collate combines dictionaries of named tensors — samples —
// into batches, and splits batches back into samples.
//
// What:
//
//   - Stack: new leading batch axis per key (mini-batch formation).
//   - Concat: join along the existing leading axis (intersecting
//     datasets contributing bands to one sample).
//   - Merge: fold overlapping tiles, elementwise maximum for tensors
//     so real data beats nodata zeros.
//   - Unbind: inverse of Stack, one sample per leading-axis slice.
//
// Heterogeneity policy (deliberate, not an oversight): values that
// are not *tensor.Dense — file paths, CRS strings, per-tile boxes —
// ride along instead of erroring. Stack keeps the raw per-sample
// slice, Concat keeps the first sample's value, Merge lets the last
// write win. This supports metadata fields replicated identically
// across a batch.
//
// External contract (unchecked): every sample in a batch carries the
// same key set, and values under one key are homogeneous in type.
// Batches violating this either surface a typed error or silently
// shorten per-key lists; callers must pass homogeneous samples.
//
// Errors:
//
//   - ErrMixedKey: tensor and non-tensor values under one key.
//   - tensor.ErrShapeMismatch: incompatible tensor shapes, or Unbind
//     over keys with differing leading-axis lengths.
package collate
