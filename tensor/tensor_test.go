package tensor_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldram/spantile/tensor"
)

func mustNew(t *testing.T, shape []int, data []float64) *tensor.Dense {
	t.Helper()
	d, err := tensor.New(shape, data)
	require.NoError(t, err)
	return d
}

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		shape []int
		data  []float64
	}{
		{"ZeroDim", []int{0, 3}, nil},
		{"NegativeDim", []int{-1}, []float64{1}},
		{"ShortData", []int{2, 2}, []float64{1, 2, 3}},
		{"LongData", []int{2}, []float64{1, 2, 3}},
		{"ScalarTooManyValues", nil, []float64{1, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tensor.New(tc.shape, tc.data)
			if !errors.Is(err, tensor.ErrBadShape) {
				t.Errorf("New(%v, %v) error = %v; want ErrBadShape", tc.shape, tc.data, err)
			}
		})
	}
}

func TestNew_CopiesInputs(t *testing.T) {
	shape := []int{2}
	data := []float64{1, 2}
	d := mustNew(t, shape, data)
	shape[0] = 99
	data[0] = 99
	assert.Equal(t, []int{2}, d.Shape())
	assert.Equal(t, []float64{1, 2}, d.Values())
}

func TestScalarForm(t *testing.T) {
	s := tensor.Scalar(7)
	assert.Equal(t, 0, s.Rank())
	assert.Equal(t, 1, s.Len())
	v, err := s.At()
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)
}

func TestAtSet(t *testing.T) {
	d := mustNew(t, []int{2, 3}, []float64{1, 2, 3, 4, 5, 6})

	v, err := d.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	require.NoError(t, d.Set(9, 0, 1))
	v, err = d.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 9.0, v)

	for _, idx := range [][]int{{2, 0}, {0, 3}, {-1, 0}, {0}, {0, 0, 0}} {
		_, err := d.At(idx...)
		assert.ErrorIs(t, err, tensor.ErrIndexOutOfRange, "At(%v)", idx)
	}
}

func TestZeros(t *testing.T) {
	d, err := tensor.Zeros(2, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, d.Values())
	_, err = tensor.Zeros(0)
	assert.ErrorIs(t, err, tensor.ErrBadShape)
}

func TestStack(t *testing.T) {
	a := mustNew(t, []int{3, 3}, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	b := mustNew(t, []int{3, 3}, []float64{9, 8, 7, 6, 5, 4, 3, 2, 1})

	stacked, err := tensor.Stack([]*tensor.Dense{a, b})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 3}, stacked.Shape())
	v, err := stacked.At(1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 9.0, v)

	_, err = tensor.Stack(nil)
	assert.ErrorIs(t, err, tensor.ErrEmptyInput)

	c := mustNew(t, []int{2, 3}, make([]float64, 6))
	_, err = tensor.Stack([]*tensor.Dense{a, c})
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestUnbind_RoundTrip(t *testing.T) {
	a := mustNew(t, []int{3, 3}, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	b := mustNew(t, []int{3, 3}, []float64{9, 8, 7, 6, 5, 4, 3, 2, 1})
	stacked, err := tensor.Stack([]*tensor.Dense{a, b})
	require.NoError(t, err)

	parts, err := tensor.Unbind(stacked)
	require.NoError(t, err)
	require.Len(t, parts, 2)
	assert.True(t, parts[0].Equal(a), "first slice must equal a")
	assert.True(t, parts[1].Equal(b), "second slice must equal b")
}

func TestUnbind_Vector(t *testing.T) {
	v, err := tensor.FromVector([]float64{1, 2, 3})
	require.NoError(t, err)
	parts, err := tensor.Unbind(v)
	require.NoError(t, err)
	require.Len(t, parts, 3)
	for i, p := range parts {
		assert.Equal(t, 0, p.Rank())
		got, err := p.At()
		require.NoError(t, err)
		assert.Equal(t, float64(i+1), got)
	}
}

func TestUnbind_Scalar(t *testing.T) {
	_, err := tensor.Unbind(tensor.Scalar(1))
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestConcat(t *testing.T) {
	a := mustNew(t, []int{1, 2}, []float64{1, 2})
	b := mustNew(t, []int{2, 2}, []float64{3, 4, 5, 6})

	joined, err := tensor.Concat([]*tensor.Dense{a, b})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, joined.Shape())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, joined.Values())

	c := mustNew(t, []int{2, 3}, make([]float64, 6))
	_, err = tensor.Concat([]*tensor.Dense{a, c})
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = tensor.Concat([]*tensor.Dense{tensor.Scalar(1)})
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)

	_, err = tensor.Concat(nil)
	assert.ErrorIs(t, err, tensor.ErrEmptyInput)
}

func TestMaximum(t *testing.T) {
	a, err := tensor.FromVector([]float64{0, 5, 0})
	require.NoError(t, err)
	b, err := tensor.FromVector([]float64{3, 0, 0})
	require.NoError(t, err)

	m, err := tensor.Maximum(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 5, 0}, m.Values())
	// Inputs untouched.
	assert.Equal(t, []float64{0, 5, 0}, a.Values())

	c := mustNew(t, []int{2}, []float64{1, 2})
	_, err = tensor.Maximum(a, c)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestClip(t *testing.T) {
	d, err := tensor.FromVector([]float64{-2, 0.5, 7})
	require.NoError(t, err)
	got := tensor.Clip(d, 0, 1)
	assert.Equal(t, []float64{0, 0.5, 1}, got.Values())
	assert.Equal(t, []float64{-2, 0.5, 7}, d.Values())
}

func TestEqualClone(t *testing.T) {
	a := mustNew(t, []int{2}, []float64{1, 2})
	b := a.Clone()
	assert.True(t, a.Equal(b))
	require.NoError(t, b.Set(9, 0))
	assert.False(t, a.Equal(b), "clone must be independent")
}
