package view

import (
	"fmt"
	"unsafe"

	"github.com/born-ml/localcopy/internal/layout"
)

// View is a rank-R window onto typed storage.
//
// A View never owns a private copy of its elements: subviews alias the
// storage of their parent, and scratch views alias the team's scratch region.
// Storage is kept alive by the garbage collector for as long as any view
// references it.
type View[T Elem] struct {
	label   string
	data    []T // Backing storage shared with parents and subviews.
	offset  int // Position of element (0, ..., 0) in data.
	extents Shape
	strides []int
	layout  layout.Layout
	space   MemorySpace
}

// New creates a zero-initialized host view with the given layout and extents.
func New[T Elem](label string, l layout.Layout, extents ...int) (*View[T], error) {
	shape := Shape(extents)
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape for view %q: %w", label, err)
	}
	return &View[T]{
		label:   label,
		data:    make([]T, shape.NumElements()),
		extents: shape.Clone(),
		strides: layout.Strides(shape, l),
		layout:  l,
		space:   HostSpace,
	}, nil
}

// MustNew is like New but panics on an invalid shape.
func MustNew[T Elem](label string, l layout.Layout, extents ...int) *View[T] {
	v, err := New[T](label, l, extents...)
	if err != nil {
		panic(fmt.Sprintf("view: %v", err))
	}
	return v
}

// FromSlice wraps existing storage in a host view without copying it.
func FromSlice[T Elem](label string, data []T, l layout.Layout, extents ...int) (*View[T], error) {
	shape := Shape(extents)
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape for view %q: %w", label, err)
	}
	if n := shape.NumElements(); len(data) < n {
		return nil, fmt.Errorf("view %q needs %d elements, slice has %d", label, n, len(data))
	}
	return &View[T]{
		label:   label,
		data:    data,
		extents: shape.Clone(),
		strides: layout.Strides(shape, l),
		layout:  l,
		space:   HostSpace,
	}, nil
}

// NewScratch carves a view out of a team's scratch region.
//
// Every lane of a team must perform the same sequence of NewScratch calls on
// its own Arena; the lanes then share the returned storage. Contents are
// whatever the region held before (zero for a fresh dispatch) and must be
// written before they are read.
// Panics with ErrScratchExhausted if the region is too small.
func NewScratch[T Elem](a *Arena, label string, l layout.Layout, extents ...int) *View[T] {
	shape := Shape(extents)
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("view: invalid shape for scratch view %q: %v", label, err))
	}

	n := shape.NumElements()
	var data []T
	if n > 0 {
		b := a.Alloc(ScratchSize[T](extents...))
		//nolint:gosec // unsafe.Slice over an 8-byte aligned scratch allocation sized by ScratchSize.
		data = unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
	}

	return &View[T]{
		label:   label,
		data:    data,
		extents: shape.Clone(),
		strides: layout.Strides(shape, l),
		layout:  l,
		space:   ScratchSpace,
	}
}

// Label returns the view's label.
func (v *View[T]) Label() string {
	return v.label
}

// Rank returns the number of dimensions.
func (v *View[T]) Rank() int {
	return len(v.extents)
}

// Extent returns the extent of dimension k.
func (v *View[T]) Extent(k int) int {
	return v.extents[k]
}

// Extents returns the view's extents. The result must not be modified.
func (v *View[T]) Extents() Shape {
	return v.extents
}

// Strides returns the element stride of each dimension. The result must not be modified.
func (v *View[T]) Strides() []int {
	return v.strides
}

// Layout returns the layout tag the view was created with.
func (v *View[T]) Layout() layout.Layout {
	return v.layout
}

// Space returns the memory space of the view's storage.
func (v *View[T]) Space() MemorySpace {
	return v.space
}

// DType returns the runtime element type.
func (v *View[T]) DType() DataType {
	return DTypeOf[T]()
}

// Size returns the number of index tuples (product of extents).
func (v *View[T]) Size() int {
	return v.extents.NumElements()
}

// Span returns the number of storage elements between the view's first and
// last element, inclusive. It equals Size for contiguous views.
func (v *View[T]) Span() int {
	if v.Size() == 0 {
		return 0
	}
	span := 1
	for k, e := range v.extents {
		span += (e - 1) * v.strides[k]
	}
	return span
}

// Data returns the storage the view spans, starting at its first element.
// WARNING: Direct access to underlying memory shared with other views.
func (v *View[T]) Data() []T {
	span := v.Span()
	if span == 0 {
		return nil
	}
	return v.data[v.offset : v.offset+span]
}

// OffsetOf returns the position of idx within Data(). Indices are not bounds checked.
func (v *View[T]) OffsetOf(idx []int) int {
	return layout.Offset(idx, v.strides)
}

// At returns the element at idx.
func (v *View[T]) At(idx ...int) T {
	v.checkIndex("at", idx)
	return v.data[v.offset+layout.Offset(idx, v.strides)]
}

// Set stores val at idx.
func (v *View[T]) Set(val T, idx ...int) {
	v.checkIndex("set", idx)
	v.data[v.offset+layout.Offset(idx, v.strides)] = val
}

// ShapeCompatible reports whether other has the same rank and extents.
// Layouts may differ.
func (v *View[T]) ShapeCompatible(other *View[T]) bool {
	return v.extents.Equal(other.extents)
}

// ContiguousLayout reports whether the view's elements occupy a dense block
// in the order of some layout, and which one. The view's own layout tag is
// preferred when both match.
func (v *View[T]) ContiguousLayout() (layout.Layout, bool) {
	if v.contiguousIn(v.layout) {
		return v.layout, true
	}
	other := layout.Left
	if v.layout == layout.Left {
		other = layout.Right
	}
	if v.contiguousIn(other) {
		return other, true
	}
	return v.layout, false
}

// IsContiguous reports whether the view's elements occupy a dense block.
func (v *View[T]) IsContiguous() bool {
	_, ok := v.ContiguousLayout()
	return ok
}

// SameStrides reports whether both views address elements identically.
// Dimensions of extent 1 are ignored since their stride is never applied.
func (v *View[T]) SameStrides(other *View[T]) bool {
	if len(v.strides) != len(other.strides) {
		return false
	}
	for k := range v.strides {
		if v.extents[k] > 1 && v.strides[k] != other.strides[k] {
			return false
		}
	}
	return true
}

// String returns a short description of the view.
func (v *View[T]) String() string {
	return fmt.Sprintf("View<%s, %s, %s>(%q, %v)", v.DType(), v.layout, v.space, v.label, []int(v.extents))
}

func (v *View[T]) contiguousIn(l layout.Layout) bool {
	want := layout.Strides(v.extents, l)
	for k := range want {
		if v.extents[k] > 1 && v.strides[k] != want[k] {
			return false
		}
	}
	return true
}

func (v *View[T]) checkIndex(op string, idx []int) {
	if len(idx) != len(v.extents) {
		panic(fmt.Sprintf("%s: view %q has rank %d, got %d indices", op, v.label, len(v.extents), len(idx)))
	}
	for k, i := range idx {
		if i < 0 || i >= v.extents[k] {
			panic(fmt.Sprintf("%s: index %d out of range [0, %d) in dimension %d of view %q",
				op, i, v.extents[k], k, v.label))
		}
	}
}
