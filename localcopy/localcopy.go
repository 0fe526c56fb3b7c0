// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package localcopy copies or fills views from inside a parallel kernel.
//
// The team forms share the work across all lanes of a team and end with a
// team barrier; the thread and unscoped forms run on the calling goroutine
// only and never block.
//
// Example:
//
//	parallel.Teams(parallel.TeamPolicy{LeagueSize: n}, func(m *parallel.Member) {
//	    lid := m.LeagueRank()
//	    src := a.Subview(view.Index(lid), view.All())
//	    dst := b.Subview(view.Index(lid), view.All())
//	    localcopy.DeepCopy(m, dst, src)          // whole team, barrier on return
//	    localcopy.DeepCopyScalar(m, dst, 20.0)   // fill, barrier on return
//	}, parallel.DefaultConfig())
package localcopy

import (
	"github.com/born-ml/localcopy/internal/localcopy"
	"github.com/born-ml/localcopy/parallel"
	"github.com/born-ml/localcopy/view"
)

// ShapeMismatchError is the panic value raised when a copy's views differ in extents.
type ShapeMismatchError = localcopy.ShapeMismatchError

// ErrShapeMismatch is wrapped by every ShapeMismatchError.
var ErrShapeMismatch = localcopy.ErrShapeMismatch

// DeepCopy copies src into dst across the lanes of team and ends with a team barrier.
func DeepCopy[T view.Elem](team *parallel.Member, dst, src *view.View[T]) {
	localcopy.DeepCopy(team, dst, src)
}

// DeepCopyScalar sets every element of dst to v within scope s.
func DeepCopyScalar[T view.Elem](s parallel.Scope, dst *view.View[T], v T) {
	localcopy.DeepCopyScalar(s, dst, v)
}

// DeepCopyThread copies src into dst on the calling lane only, without a barrier.
func DeepCopyThread[T view.Elem](th parallel.Thread, dst, src *view.View[T]) {
	localcopy.DeepCopyThread(th, dst, src)
}

// DeepCopyThreadScalar sets every element of dst to v on the calling lane only.
func DeepCopyThreadScalar[T view.Elem](th parallel.Thread, dst *view.View[T], v T) {
	localcopy.DeepCopyThreadScalar(th, dst, v)
}

// DeepCopyUnscoped copies src into dst on the calling goroutine.
func DeepCopyUnscoped[T view.Elem](dst, src *view.View[T]) {
	localcopy.DeepCopyUnscoped(dst, src)
}

// DeepCopyUnscopedScalar sets every element of dst to v on the calling goroutine.
func DeepCopyUnscopedScalar[T view.Elem](dst *view.View[T], v T) {
	localcopy.DeepCopyUnscopedScalar(dst, v)
}
