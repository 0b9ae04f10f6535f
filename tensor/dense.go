package tensor

import (
	"fmt"
	"slices"
)

// Dense is a row-major N-dimensional float64 array. The zero-rank
// form (empty shape, one element) represents a scalar. Dense values
// are never mutated by package operations; Set is the only mutator
// and acts on the receiver alone.
type Dense struct {
	shape []int
	data  []float64 // flat backing storage, length == product(shape)
}

// New builds a Dense of the given shape from a flat row-major value
// slice. Both slices are copied. An empty (or nil) shape with exactly
// one value yields a scalar. Returns ErrBadShape on a non-positive
// dimension or when len(data) differs from the shape's element count.
func New(shape []int, data []float64) (*Dense, error) {
	n := 1
	for _, dim := range shape {
		if dim <= 0 {
			return nil, fmt.Errorf("dimension %d in %v: %w", dim, shape, ErrBadShape)
		}
		n *= dim
	}
	if len(data) != n {
		return nil, fmt.Errorf("%d values for shape %v (want %d): %w", len(data), shape, n, ErrBadShape)
	}
	return &Dense{
		shape: slices.Clone(shape),
		data:  slices.Clone(data),
	}, nil
}

// Zeros builds a zero-filled Dense of the given shape.
func Zeros(shape ...int) (*Dense, error) {
	n := 1
	for _, dim := range shape {
		if dim <= 0 {
			return nil, fmt.Errorf("dimension %d in %v: %w", dim, shape, ErrBadShape)
		}
		n *= dim
	}
	return &Dense{shape: slices.Clone(shape), data: make([]float64, n)}, nil
}

// FromVector builds a rank-1 Dense from values; values is copied.
// Returns ErrBadShape for an empty slice.
func FromVector(values []float64) (*Dense, error) {
	return New([]int{len(values)}, values)
}

// Scalar builds the rank-0 form holding a single value.
func Scalar(v float64) *Dense {
	return &Dense{data: []float64{v}}
}

// Rank returns the number of axes (0 for scalars).
func (t *Dense) Rank() int { return len(t.shape) }

// Shape returns a copy of the shape vector.
func (t *Dense) Shape() []int { return slices.Clone(t.shape) }

// Len returns the total number of elements.
func (t *Dense) Len() int { return len(t.data) }

// Values returns a copy of the flat row-major data.
func (t *Dense) Values() []float64 { return slices.Clone(t.data) }

// Clone returns a deep copy.
func (t *Dense) Clone() *Dense {
	return &Dense{shape: slices.Clone(t.shape), data: slices.Clone(t.data)}
}

// Equal reports whether both tensors have identical shape and values.
func (t *Dense) Equal(other *Dense) bool {
	return slices.Equal(t.shape, other.shape) && slices.Equal(t.data, other.data)
}

// At returns the element at the given multi-index; the index arity
// must equal the rank (a scalar takes no indices).
func (t *Dense) At(idx ...int) (float64, error) {
	off, err := t.offset(idx)
	if err != nil {
		return 0, err
	}
	return t.data[off], nil
}

// Set stores v at the given multi-index.
func (t *Dense) Set(v float64, idx ...int) error {
	off, err := t.offset(idx)
	if err != nil {
		return err
	}
	t.data[off] = v
	return nil
}

// offset maps a multi-index to the flat row-major position.
func (t *Dense) offset(idx []int) (int, error) {
	if len(idx) != len(t.shape) {
		return 0, fmt.Errorf("%d indices for rank %d: %w", len(idx), len(t.shape), ErrIndexOutOfRange)
	}
	off := 0
	for i, x := range idx {
		if x < 0 || x >= t.shape[i] {
			return 0, fmt.Errorf("index %v outside shape %v: %w", idx, t.shape, ErrIndexOutOfRange)
		}
		off = off*t.shape[i] + x
	}
	return off, nil
}

// String renders the shape and, for small tensors, the values.
func (t *Dense) String() string {
	if len(t.data) <= 8 {
		return fmt.Sprintf("Dense(shape=%v, values=%v)", t.shape, t.data)
	}
	return fmt.Sprintf("Dense(shape=%v, %d values)", t.shape, len(t.data))
}
