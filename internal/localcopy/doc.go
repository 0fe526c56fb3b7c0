// Package localcopy copies a view into another view, or fills a view with a
// scalar, from inside a parallel kernel.
//
// The copies never allocate and never start goroutines; they only take part
// in the concurrency of the dispatch that calls them:
//
//   - DeepCopy and DeepCopyScalar with a team member split the destination
//     across the team's lanes and end with a team barrier, so every lane sees
//     the whole result on return.
//   - DeepCopyThread and DeepCopyThreadScalar run entirely on the calling
//     lane with no barrier. The caller narrows the views to the part the lane
//     owns.
//   - DeepCopyUnscoped and DeepCopyUnscopedScalar do the same for one
//     iteration of a flat range dispatch.
//
// Source and destination of a copy must have the same rank and extents;
// layouts and memory spaces may differ. A mismatch is a programming error
// and panics with a *ShapeMismatchError before any element is written.
package localcopy
