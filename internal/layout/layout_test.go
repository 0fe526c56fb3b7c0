package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrides(t *testing.T) {
	tests := []struct {
		name    string
		extents []int
		layout  Layout
		want    []int
	}{
		{"right rank1", []int{5}, Right, []int{1}},
		{"right rank3", []int{2, 3, 4}, Right, []int{12, 4, 1}},
		{"left rank1", []int{5}, Left, []int{1}},
		{"left rank3", []int{2, 3, 4}, Left, []int{1, 2, 6}},
		{"empty", nil, Right, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Strides(tt.extents, tt.layout)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Strides() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOffset_Injective(t *testing.T) {
	for _, l := range []Layout{Right, Left} {
		for rank := 1; rank <= MaxRank; rank++ {
			extents := make([]int, rank)
			for k := range extents {
				extents[k] = 2 + k%2
			}
			strides := Strides(extents, l)

			n := 1
			for _, e := range extents {
				n *= e
			}

			seen := make(map[int]bool, n)
			coords := make([]int, rank)
			for {
				off := Offset(coords, strides)
				require.False(t, seen[off], "%v rank %d: offset %d produced twice", l, rank, off)
				require.GreaterOrEqual(t, off, 0)
				require.Less(t, off, n)
				seen[off] = true
				if Next(coords, extents, l) {
					break
				}
			}
			assert.Len(t, seen, n, "%v rank %d", l, rank)
		}
	}
}

func TestUnravel_InvertsOffset(t *testing.T) {
	extents := []int{3, 4, 2, 5}
	for _, l := range []Layout{Right, Left} {
		strides := Strides(extents, l)
		coords := make([]int, len(extents))
		for flat := 0; flat < 3*4*2*5; flat++ {
			Unravel(flat, extents, l, coords)
			assert.Equal(t, flat, Offset(coords, strides), "%v flat %d", l, flat)
		}
	}
}

func TestFastestIndex(t *testing.T) {
	extents := []int{2, 3}
	coords := make([]int, 2)

	Unravel(1, extents, Right, coords)
	assert.Equal(t, []int{0, 1}, coords, "row-major varies the last index fastest")

	Unravel(1, extents, Left, coords)
	assert.Equal(t, []int{1, 0}, coords, "column-major varies the first index fastest")
}

func TestNext_WrapsInUnravelOrder(t *testing.T) {
	extents := []int{2, 2, 3}
	for _, l := range []Layout{Right, Left} {
		coords := make([]int, 3)
		want := make([]int, 3)
		for flat := 1; flat < 12; flat++ {
			require.False(t, Next(coords, extents, l))
			Unravel(flat, extents, l, want)
			require.Equal(t, want, coords, "%v step %d", l, flat)
		}
		assert.True(t, Next(coords, extents, l))
		assert.Equal(t, []int{0, 0, 0}, coords)
	}
}

func TestParse(t *testing.T) {
	l, err := Parse("left")
	require.NoError(t, err)
	assert.Equal(t, Left, l)

	l, err = Parse("LayoutRight")
	require.NoError(t, err)
	assert.Equal(t, Right, l)

	_, err = Parse("diagonal")
	assert.Error(t, err)

	assert.Equal(t, "LayoutLeft", Left.String())
	assert.Equal(t, "LayoutUnknown", Layout(7).String())
}
