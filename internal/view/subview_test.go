package view

import (
	"testing"

	"github.com/born-ml/localcopy/internal/layout"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iota3(l layout.Layout) *View[float64] {
	v := MustNew[float64]("A", l, 3, 4, 5)
	for i := range v.Data() {
		v.Data()[i] = float64(i)
	}
	return v
}

func TestSubview_IndexDropsDimension(t *testing.T) {
	for _, l := range []layout.Layout{layout.Right, layout.Left} {
		a := iota3(l)
		s := a.Subview(Index(1), All(), All())

		require.Equal(t, 2, s.Rank())
		if diff := cmp.Diff(Shape{4, 5}, s.Extents()); diff != "" {
			t.Errorf("%v extents mismatch (-want +got):\n%s", l, diff)
		}
		for j := 0; j < 4; j++ {
			for k := 0; k < 5; k++ {
				assert.Equal(t, a.At(1, j, k), s.At(j, k), "%v (%d,%d)", l, j, k)
			}
		}
	}
}

func TestSubview_Aliases(t *testing.T) {
	a := iota3(layout.Right)
	s := a.Subview(Index(2), Range(1, 3), Index(4))

	require.Equal(t, Shape{2}, s.Extents())
	s.Set(-1, 1)
	assert.Equal(t, -1.0, a.At(2, 2, 4))
}

func TestSubview_Contiguity(t *testing.T) {
	right := iota3(layout.Right)
	assert.True(t, right.Subview(Index(0), All(), All()).IsContiguous())
	assert.False(t, right.Subview(All(), All(), Index(0)).IsContiguous())

	left := iota3(layout.Left)
	assert.False(t, left.Subview(Index(0), All(), All()).IsContiguous())
	col := left.Subview(All(), All(), Index(2))
	l, ok := col.ContiguousLayout()
	assert.True(t, ok)
	assert.Equal(t, layout.Left, l)

	// A single row of a column-major matrix is strided.
	m := MustNew[float64]("M", layout.Left, 8, 1)
	row := m.Subview(Index(3), All())
	assert.True(t, row.IsContiguous(), "extent-1 dimensions do not break contiguity")
}

func TestSubview_Span(t *testing.T) {
	a := iota3(layout.Right)
	s := a.Subview(All(), Index(0), Index(0))
	assert.Equal(t, 3, s.Size())
	assert.Equal(t, 41, s.Span())
	assert.Equal(t, 40.0, s.Data()[s.OffsetOf([]int{2})])
}

func TestSubview_Empty(t *testing.T) {
	a := iota3(layout.Right)
	s := a.Subview(Range(3, 3), All(), All())
	assert.Equal(t, 0, s.Size())
	assert.Nil(t, s.Data())
}

func TestSubview_Panics(t *testing.T) {
	a := iota3(layout.Right)

	assert.Panics(t, func() { a.Subview(All(), All()) }, "selector count")
	assert.Panics(t, func() { a.Subview(Index(3), All(), All()) }, "index out of range")
	assert.Panics(t, func() { a.Subview(All(), Range(2, 5), All()) }, "range past extent")
	assert.Panics(t, func() { a.Subview(All(), Range(3, 2), All()) }, "inverted range")
	assert.Panics(t, func() { a.Subview(Index(0), Index(0), Index(0)) }, "no dimension kept")
}

func TestLeading(t *testing.T) {
	a := MustNew[float64]("A", layout.Left, 4, 4, 4, 4)
	a.Set(5, 2, 1, 3, 0)

	s := Leading(a, 2, Range(1, 3))
	require.Equal(t, Shape{2, 4, 4}, s.Extents())
	assert.Equal(t, 5.0, s.At(0, 3, 0))

	assert.Panics(t, func() { Leading(MustNew[float64]("v", layout.Right, 4), 0, All()) })
}

func TestSelectorString(t *testing.T) {
	assert.Equal(t, "3", Index(3).String())
	assert.Equal(t, ":", All().String())
	assert.Equal(t, "1:4", Range(1, 4).String())
}
