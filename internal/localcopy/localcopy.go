package localcopy

import (
	"github.com/born-ml/localcopy/internal/parallel"
	"github.com/born-ml/localcopy/internal/view"
)

// DeepCopy copies src into dst cooperatively across the lanes of team.
//
// Every lane of the team must call DeepCopy with the same views. The
// destination is split evenly over the lanes and the call ends with a team
// barrier: when it returns, every lane observes the complete copy.
// Panics with a *ShapeMismatchError on every lane if the extents differ.
func DeepCopy[T view.Elem](team *parallel.Member, dst, src *view.View[T]) {
	checkShapes("local deep copy", dst, src)
	walk(team, dst.Size(), func(lo, hi int) {
		copyRange(dst, src, lo, hi)
	})
}

// DeepCopyScalar sets every element of dst to v.
//
// With a team member every lane must call it with the same view; the fill
// is shared across lanes and ends with a team barrier. With a Thread or
// Unscoped context the calling goroutine fills the whole view and there is
// no barrier.
func DeepCopyScalar[T view.Elem](s parallel.Scope, dst *view.View[T], v T) {
	walk(s, dst.Size(), func(lo, hi int) {
		fillRange(dst, v, lo, hi)
	})
}

// DeepCopyThread copies src into dst on the calling lane only.
//
// No work is shared with sibling lanes and there is no barrier; the copy is
// visible to the calling lane immediately and to other lanes only after a
// later team barrier. Panics with a *ShapeMismatchError if the extents differ.
func DeepCopyThread[T view.Elem](th parallel.Thread, dst, src *view.View[T]) {
	checkShapes("local deep copy thread", dst, src)
	walk(th, dst.Size(), func(lo, hi int) {
		copyRange(dst, src, lo, hi)
	})
}

// DeepCopyThreadScalar sets every element of dst to v on the calling lane only.
func DeepCopyThreadScalar[T view.Elem](th parallel.Thread, dst *view.View[T], v T) {
	DeepCopyScalar(th, dst, v)
}

// DeepCopyUnscoped copies src into dst on the calling goroutine. It is meant
// for one iteration of a flat range dispatch that owns dst.
// Panics with a *ShapeMismatchError if the extents differ.
func DeepCopyUnscoped[T view.Elem](dst, src *view.View[T]) {
	checkShapes("local deep copy", dst, src)
	walk(parallel.Unscoped{}, dst.Size(), func(lo, hi int) {
		copyRange(dst, src, lo, hi)
	})
}

// DeepCopyUnscopedScalar sets every element of dst to v on the calling goroutine.
func DeepCopyUnscopedScalar[T view.Elem](dst *view.View[T], v T) {
	DeepCopyScalar(parallel.Unscoped{}, dst, v)
}
