package tensor

import (
	"fmt"
	"slices"
)

// Stack combines same-shape tensors along a new leading axis: k
// tensors of shape s become one tensor of shape [k, s...]. Returns
// ErrEmptyInput for an empty batch and ErrShapeMismatch unless every
// shape is identical.
func Stack(ts []*Dense) (*Dense, error) {
	if len(ts) == 0 {
		return nil, fmt.Errorf("stack: %w", ErrEmptyInput)
	}
	base := ts[0]
	for _, t := range ts[1:] {
		if !slices.Equal(base.shape, t.shape) {
			return nil, fmt.Errorf("stack %v with %v: %w", base.shape, t.shape, ErrShapeMismatch)
		}
	}
	shape := append([]int{len(ts)}, base.shape...)
	data := make([]float64, 0, len(ts)*base.Len())
	for _, t := range ts {
		data = append(data, t.data...)
	}
	return &Dense{shape: shape, data: data}, nil
}

// Concat joins tensors along the existing leading axis; every operand
// must have the same rank and identical trailing dimensions. Scalars
// have no axis to join on and are rejected.
func Concat(ts []*Dense) (*Dense, error) {
	if len(ts) == 0 {
		return nil, fmt.Errorf("concat: %w", ErrEmptyInput)
	}
	base := ts[0]
	if base.Rank() == 0 {
		return nil, fmt.Errorf("concat scalars: %w", ErrShapeMismatch)
	}
	lead := 0
	for _, t := range ts {
		if t.Rank() != base.Rank() || !slices.Equal(t.shape[1:], base.shape[1:]) {
			return nil, fmt.Errorf("concat %v with %v: %w", base.shape, t.shape, ErrShapeMismatch)
		}
		lead += t.shape[0]
	}
	shape := append([]int{lead}, base.shape[1:]...)
	data := make([]float64, 0, lead*stride(base.shape))
	for _, t := range ts {
		data = append(data, t.data...)
	}
	return &Dense{shape: shape, data: data}, nil
}

// Maximum returns the elementwise maximum of two same-shape tensors.
// Zero conventionally encodes "no data", so Maximum prefers real data
// over the zero sentinel when mosaicking overlapping tiles.
func Maximum(a, b *Dense) (*Dense, error) {
	if !slices.Equal(a.shape, b.shape) {
		return nil, fmt.Errorf("maximum %v with %v: %w", a.shape, b.shape, ErrShapeMismatch)
	}
	out := a.Clone()
	for i, v := range b.data {
		if v > out.data[i] {
			out.data[i] = v
		}
	}
	return out, nil
}

// Unbind is the inverse of Stack: it splits the leading axis into
// shape[0] tensors of shape shape[1:]. Unbinding a rank-1 tensor
// yields scalars. Scalars themselves have no axis to unbind and fail
// with ErrShapeMismatch.
func Unbind(t *Dense) ([]*Dense, error) {
	if t.Rank() == 0 {
		return nil, fmt.Errorf("unbind scalar: %w", ErrShapeMismatch)
	}
	n := t.shape[0]
	sub := t.Len() / n
	out := make([]*Dense, n)
	for i := range out {
		out[i] = &Dense{
			shape: slices.Clone(t.shape[1:]),
			data:  slices.Clone(t.data[i*sub : (i+1)*sub]),
		}
	}
	return out, nil
}

// Clip returns a copy of t with every element clamped to [lo, hi].
func Clip(t *Dense, lo, hi float64) *Dense {
	out := t.Clone()
	for i, v := range out.data {
		out.data[i] = min(max(v, lo), hi)
	}
	return out
}

// stride is the element count of one leading-axis slice.
func stride(shape []int) int {
	n := 1
	for _, dim := range shape[1:] {
		n *= dim
	}
	return n
}
