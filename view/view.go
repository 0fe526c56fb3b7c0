// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package view

import (
	"github.com/born-ml/localcopy/internal/layout"
	"github.com/born-ml/localcopy/internal/view"
)

// View is a rank-R window onto typed storage. See the package documentation.
type View[T Elem] = view.View[T]

// Elem is the constraint for view element types.
type Elem = view.Elem

// Shape holds the extents of a view.
type Shape = view.Shape

// Layout selects how an index tuple is linearized.
type Layout = layout.Layout

// MemorySpace identifies where a view's storage lives.
type MemorySpace = view.MemorySpace

// Arena is a lane's cursor into its team's scratch region.
type Arena = view.Arena

// Selector picks the part of one dimension a subview keeps.
type Selector = view.Selector

// Layouts.
const (
	LayoutRight = layout.Right
	LayoutLeft  = layout.Left
)

// Memory spaces.
const (
	HostSpace    = view.HostSpace
	ScratchSpace = view.ScratchSpace
)

// ErrScratchExhausted is wrapped by the panic raised when scratch memory runs out.
var ErrScratchExhausted = view.ErrScratchExhausted

// New creates a zero-initialized host view.
func New[T Elem](label string, l Layout, extents ...int) (*View[T], error) {
	return view.New[T](label, l, extents...)
}

// MustNew is like New but panics on an invalid shape.
func MustNew[T Elem](label string, l Layout, extents ...int) *View[T] {
	return view.MustNew[T](label, l, extents...)
}

// FromSlice wraps existing storage in a host view without copying it.
func FromSlice[T Elem](label string, data []T, l Layout, extents ...int) (*View[T], error) {
	return view.FromSlice(label, data, l, extents...)
}

// NewScratch carves a view out of a team's scratch region.
func NewScratch[T Elem](a *Arena, label string, l Layout, extents ...int) *View[T] {
	return view.NewScratch[T](a, label, l, extents...)
}

// ScratchSize returns the scratch bytes a view of T with the given extents needs.
func ScratchSize[T Elem](extents ...int) int {
	return view.ScratchSize[T](extents...)
}

// Index fixes a dimension and drops it from the subview.
func Index(i int) Selector { return view.Index(i) }

// All keeps a whole dimension.
func All() Selector { return view.All() }

// Range keeps the half-open interval [begin, end) of a dimension.
func Range(begin, end int) Selector { return view.Range(begin, end) }

// Leading selects index i of the leading dimension, applies second to the next
// dimension and keeps the rest whole.
func Leading[T Elem](v *View[T], i int, second Selector) *View[T] {
	return view.Leading(v, i, second)
}
