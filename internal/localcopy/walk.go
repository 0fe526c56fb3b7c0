package localcopy

import (
	"github.com/born-ml/localcopy/internal/layout"
	"github.com/born-ml/localcopy/internal/parallel"
	"github.com/born-ml/localcopy/internal/view"
)

// walk hands the calling lane its share of the flattened index space [0, n)
// and then synchronizes the scope.
func walk(s parallel.Scope, n int, body func(lo, hi int)) {
	lo, hi := parallel.Chunk(n, s.TeamRank(), s.TeamSize())
	if lo < hi {
		body(lo, hi)
	}
	s.TeamBarrier()
}

// copyRange copies the elements at flat positions [lo, hi) of dst's index
// space from src. Positions are counted in the order dst is laid out in.
func copyRange[T view.Elem](dst, src *view.View[T], lo, hi int) {
	d, s := dst.Data(), src.Data()

	order, contiguous := dst.ContiguousLayout()
	if contiguous && dst.SameStrides(src) {
		copy(d[lo:hi], s[lo:hi])
		return
	}

	var buf [layout.MaxRank]int
	coords := coordsFor(buf[:], dst.Rank())
	extents := dst.Extents()
	dstStrides, srcStrides := dst.Strides(), src.Strides()

	layout.Unravel(lo, extents, order, coords)
	for i := lo; i < hi; i++ {
		d[layout.Offset(coords, dstStrides)] = s[layout.Offset(coords, srcStrides)]
		layout.Next(coords, extents, order)
	}
}

// fillRange stores v at flat positions [lo, hi) of dst's index space.
func fillRange[T view.Elem](dst *view.View[T], v T, lo, hi int) {
	d := dst.Data()

	order, contiguous := dst.ContiguousLayout()
	if contiguous {
		for i := lo; i < hi; i++ {
			d[i] = v
		}
		return
	}

	var buf [layout.MaxRank]int
	coords := coordsFor(buf[:], dst.Rank())
	extents := dst.Extents()
	strides := dst.Strides()

	layout.Unravel(lo, extents, order, coords)
	for i := lo; i < hi; i++ {
		d[layout.Offset(coords, strides)] = v
		layout.Next(coords, extents, order)
	}
}

func coordsFor(buf []int, rank int) []int {
	if rank <= len(buf) {
		return buf[:rank]
	}
	return make([]int, rank)
}
