package view

import "fmt"

type selectorKind int

const (
	selectIndex selectorKind = iota
	selectAll
	selectRange
)

// Selector picks the part of one dimension a subview keeps.
type Selector struct {
	kind       selectorKind
	begin, end int
}

// Index fixes a dimension at i and drops it from the subview.
func Index(i int) Selector {
	return Selector{kind: selectIndex, begin: i, end: i + 1}
}

// All keeps the whole dimension.
func All() Selector {
	return Selector{kind: selectAll}
}

// Range keeps the half-open interval [begin, end) of a dimension.
func Range(begin, end int) Selector {
	return Selector{kind: selectRange, begin: begin, end: end}
}

// String returns the selector in slice notation.
func (s Selector) String() string {
	switch s.kind {
	case selectIndex:
		return fmt.Sprint(s.begin)
	case selectAll:
		return ":"
	default:
		return fmt.Sprintf("%d:%d", s.begin, s.end)
	}
}

// Subview returns a view aliasing v's storage restricted by one selector per
// dimension. Dimensions selected with Index are dropped.
//
// This is a view operation (no data copy). Panics if the number of selectors
// differs from the rank, a bound is out of range, or every dimension is
// dropped.
//
// Example:
//
//	a := view.MustNew[float64]("A", layout.Right, 8, 8, 8)
//	row := a.Subview(view.Index(3), view.All(), view.Range(2, 6)) // extents [8 4]
func (v *View[T]) Subview(sel ...Selector) *View[T] {
	if len(sel) != v.Rank() {
		panic(fmt.Sprintf("subview: view %q has rank %d, got %d selectors", v.label, v.Rank(), len(sel)))
	}

	offset := v.offset
	extents := make(Shape, 0, len(sel))
	strides := make([]int, 0, len(sel))

	for k, s := range sel {
		begin, end := s.begin, s.end
		if s.kind == selectAll {
			begin, end = 0, v.extents[k]
		}
		if begin < 0 || end > v.extents[k] || begin > end {
			panic(fmt.Sprintf("subview: selector %v out of range for extent %d in dimension %d of view %q",
				s, v.extents[k], k, v.label))
		}

		offset += begin * v.strides[k]
		if s.kind != selectIndex {
			extents = append(extents, end-begin)
			strides = append(strides, v.strides[k])
		}
	}

	if len(extents) == 0 {
		panic(fmt.Sprintf("subview: every dimension of view %q is fixed; use At instead", v.label))
	}

	return &View[T]{
		label:   v.label,
		data:    v.data,
		offset:  offset,
		extents: extents,
		strides: strides,
		layout:  v.layout,
		space:   v.space,
	}
}

// Leading selects index i of the leading dimension, applies second to the
// next dimension and keeps every remaining dimension whole.
// Panics if v has rank < 2.
func Leading[T Elem](v *View[T], i int, second Selector) *View[T] {
	if v.Rank() < 2 {
		panic(fmt.Sprintf("subview: leading selection needs rank >= 2, view %q has rank %d", v.label, v.Rank()))
	}
	sel := make([]Selector, v.Rank())
	sel[0] = Index(i)
	sel[1] = second
	for k := 2; k < len(sel); k++ {
		sel[k] = All()
	}
	return v.Subview(sel...)
}
