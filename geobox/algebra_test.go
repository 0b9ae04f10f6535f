package geobox_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldram/spantile/geobox"
)

func mustBox(t *testing.T, minX, maxX, minY, maxY, minT, maxT float64) geobox.Box {
	t.Helper()
	b, err := geobox.New(minX, maxX, minY, maxY, minT, maxT)
	require.NoError(t, err)
	return b
}

func TestContains(t *testing.T) {
	outer := mustBox(t, 0, 10, 0, 10, 0, 10)
	cases := []struct {
		name  string
		inner geobox.Box
		want  bool
	}{
		{"Self", outer, true},
		{"Strict", mustBox(t, 2, 8, 2, 8, 2, 8), true},
		{"TouchingBoundary", mustBox(t, 0, 10, 0, 5, 0, 10), true},
		{"SpatialOverhang", mustBox(t, 5, 12, 2, 8, 2, 8), false},
		{"TemporalOverhang", mustBox(t, 2, 8, 2, 8, 5, 12), false},
		{"Disjoint", mustBox(t, 20, 30, 20, 30, 20, 30), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, outer.Contains(tc.inner))
		})
	}
}

// TestUnion_ContainsBoth checks the union property from both sides,
// including disjoint operands.
func TestUnion_ContainsBoth(t *testing.T) {
	pairs := [][2]geobox.Box{
		{mustBox(t, 0, 4, 0, 4, 0, 4), mustBox(t, 2, 6, 2, 6, 2, 6)},
		{mustBox(t, 0, 1, 0, 1, 0, 1), mustBox(t, 8, 9, 8, 9, 8, 9)},
		{mustBox(t, -5, 0, -5, 0, -5, 0), mustBox(t, 0, 5, 0, 5, 0, 5)},
	}
	for _, p := range pairs {
		a, b := p[0], p[1]
		u := a.Union(b)
		assert.True(t, u.Contains(a), "Union(%v, %v) must contain %v", a, b, a)
		assert.True(t, u.Contains(b), "Union(%v, %v) must contain %v", a, b, b)
		assert.Equal(t, u, b.Union(a), "union must be commutative")
	}
}

func TestIntersect(t *testing.T) {
	a := mustBox(t, 0, 4, 0, 4, 0, 4)
	b := mustBox(t, 2, 6, 2, 6, 2, 6)

	got, err := a.Intersect(b)
	require.NoError(t, err)
	assert.Equal(t, mustBox(t, 2, 4, 2, 4, 2, 4), got)
	assert.True(t, a.Contains(got), "intersection must lie inside a")
	assert.True(t, b.Contains(got), "intersection must lie inside b")

	// Touching boxes intersect in a degenerate box.
	c := mustBox(t, 4, 8, 0, 4, 0, 4)
	edge, err := a.Intersect(c)
	require.NoError(t, err)
	assert.Zero(t, edge.Area())

	// Disjoint boxes fail with ErrNoOverlap, not ErrInvalidRange.
	d := mustBox(t, 10, 12, 10, 12, 10, 12)
	_, err = a.Intersect(d)
	require.ErrorIs(t, err, geobox.ErrNoOverlap)
	require.NotErrorIs(t, err, geobox.ErrInvalidRange)
	// Operands are carried for diagnostics.
	assert.Contains(t, err.Error(), a.String())
	assert.Contains(t, err.Error(), d.String())
}

// TestIntersects_AgreesWithIntersect checks the boolean shortcut
// against the constructive operation over a grid of offsets.
func TestIntersects_AgreesWithIntersect(t *testing.T) {
	a := mustBox(t, 0, 4, 0, 4, 0, 4)
	for _, dx := range []float64{-6, -4, -2, 0, 2, 4, 6} {
		for _, dt := range []float64{-6, 0, 6} {
			b := mustBox(t, dx, dx+4, 0, 4, dt, dt+4)
			_, err := a.Intersect(b)
			assert.Equal(t, err == nil, a.Intersects(b),
				"Intersects(%v, %v) must mirror Intersect success", a, b)
		}
	}
}

func TestAreaVolume(t *testing.T) {
	b := mustBox(t, 0, 3, 0, 4, 0, 2)
	assert.Equal(t, 12.0, b.Area())
	assert.Equal(t, 24.0, b.Volume())
}

func TestSplit(t *testing.T) {
	b := mustBox(t, 0, 10, 0, 20, 5, 15)

	first, second, err := b.Split(0.25, true)
	require.NoError(t, err)
	assert.Equal(t, mustBox(t, 0, 2.5, 0, 20, 5, 15), first)
	assert.Equal(t, mustBox(t, 2.5, 10, 0, 20, 5, 15), second)
	assert.Equal(t, b, first.Union(second), "halves must reunite exactly")

	first, second, err = b.Split(0.5, false)
	require.NoError(t, err)
	assert.Equal(t, mustBox(t, 0, 10, 0, 10, 5, 15), first)
	assert.Equal(t, mustBox(t, 0, 10, 10, 20, 5, 15), second)
	assert.Equal(t, b, first.Union(second))

	for _, p := range []float64{0, 1, -0.5, 1.5} {
		_, _, err := b.Split(p, true)
		assert.ErrorIs(t, err, geobox.ErrInvalidProportion, "Split(%v)", p)
	}
}

// TestSplit_DegenerateAxis: splitting a zero-width axis yields two
// copies of the original box.
func TestSplit_DegenerateAxis(t *testing.T) {
	b := mustBox(t, 5, 5, 0, 10, 0, 1)
	first, second, err := b.Split(0.5, true)
	require.NoError(t, err)
	assert.Equal(t, b, first)
	assert.Equal(t, b, second)
}
