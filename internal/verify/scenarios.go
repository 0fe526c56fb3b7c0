package verify

import (
	"fmt"

	"github.com/born-ml/localcopy/internal/layout"
	"github.com/born-ml/localcopy/internal/localcopy"
	"github.com/born-ml/localcopy/internal/parallel"
	"github.com/born-ml/localcopy/internal/view"
)

var rankScenarios = []struct {
	name string
	run  func(fx *fixture) error
}{
	{"thread-copy", (*fixture).threadCopy},
	{"team-copy", (*fixture).teamCopy},
	{"team-fill", (*fixture).teamFill},
	{"range-copy", (*fixture).rangeCopy},
	{"range-fill", (*fixture).rangeFill},
}

// fixture holds a source view A with A.Data()[i] == i and a destination B,
// both of rank+1 dimensions of the same extent. The leading dimension is
// indexed by league rank.
type fixture struct {
	opts Options
	n    int
	rank int
	a, b *view.View[float64]
}

func newFixture(opts Options, l layout.Layout, rank int) *fixture {
	extents := view.Uniform(rank+1, opts.Extent)
	fx := &fixture{
		opts: opts,
		n:    opts.Extent,
		rank: rank,
		a:    view.MustNew[float64]("A", l, extents...),
		b:    view.MustNew[float64]("B", l, extents...),
	}

	data := fx.a.Data()
	parallel.For(len(data), func(i int) { data[i] = float64(i) }, opts.Parallel)
	return fx
}

func (fx *fixture) reset() {
	localcopy.DeepCopyUnscopedScalar(fx.b, 0)
}

func (fx *fixture) policy() parallel.TeamPolicy {
	return parallel.TeamPolicy{LeagueSize: fx.n, TeamSize: fx.opts.TeamSize}
}

// threadCopy has every lane copy a batch of its team's row on its own.
func (fx *fixture) threadCopy() error {
	n := fx.n
	parallel.Teams(fx.policy(), func(m *parallel.Member) {
		lid := m.LeagueRank()

		unitsOfWork := (n + m.LeagueSize() - 1) / m.LeagueSize()
		batches := (n + unitsOfWork - 1) / unitsOfWork

		parallel.TeamThreadRange(m, batches, func(idx int) {
			start := idx * unitsOfWork
			stop := min((idx+1)*unitsOfWork, n)
			src := view.Leading(fx.a, lid, view.Range(start, stop))
			dst := view.Leading(fx.b, lid, view.Range(start, stop))
			localcopy.DeepCopyThread(m.Thread(), dst, src)
		})
	}, fx.opts.Parallel)
	return fx.checkEqual()
}

func (fx *fixture) teamCopy() error {
	parallel.Teams(fx.policy(), func(m *parallel.Member) {
		lid := m.LeagueRank()
		localcopy.DeepCopy(m, view.Leading(fx.b, lid, view.All()), view.Leading(fx.a, lid, view.All()))
	}, fx.opts.Parallel)
	return fx.checkEqual()
}

func (fx *fixture) teamFill() error {
	parallel.Teams(fx.policy(), func(m *parallel.Member) {
		localcopy.DeepCopyScalar(m, view.Leading(fx.b, m.LeagueRank(), view.All()), FillValue)
	}, fx.opts.Parallel)
	return fx.checkSum()
}

func (fx *fixture) rangeCopy() error {
	parallel.For(fx.n, func(lid int) {
		localcopy.DeepCopyUnscoped(view.Leading(fx.b, lid, view.All()), view.Leading(fx.a, lid, view.All()))
	}, fx.opts.Parallel)
	return fx.checkEqual()
}

func (fx *fixture) rangeFill() error {
	parallel.For(fx.n, func(lid int) {
		localcopy.DeepCopyUnscopedScalar(view.Leading(fx.b, lid, view.All()), FillValue)
	}, fx.opts.Parallel)
	return fx.checkSum()
}

// checkEqual compares A and B element by element over their storage.
func (fx *fixture) checkEqual() error {
	a, b := fx.a.Data(), fx.b.Data()
	mismatches := parallel.Reduce(len(a), 0,
		func(i int, acc int) int {
			if a[i] != b[i] {
				acc++
			}
			return acc
		},
		func(x, y int) int { return x + y }, fx.opts.Parallel)

	if mismatches != 0 {
		return fmt.Errorf("%d of %d elements of B differ from A", mismatches, len(a))
	}
	return nil
}

// checkSum compares the sum of B with FillValue * n^(rank+1).
func (fx *fixture) checkSum() error {
	b := fx.b.Data()
	got := parallel.Reduce(len(b), 0.0,
		func(i int, acc float64) float64 { return acc + b[i] },
		func(x, y float64) float64 { return x + y }, fx.opts.Parallel)

	want := FillValue * float64(fx.b.Size())
	if got != want {
		return fmt.Errorf("sum of B is %v, want %v", got, want)
	}
	return nil
}

// scratchRoundTrip stages per-lane values in team scratch memory and copies
// them out to host views.
func scratchRoundTrip(opts Options) error {
	n := opts.Extent
	check1 := view.MustNew[float64]("check_1", layout.Right, n)
	check2 := view.MustNew[float64]("check_2", layout.Right, n)

	policy := parallel.TeamPolicy{
		LeagueSize:   1,
		TeamSize:     opts.TeamSize,
		ScratchBytes: view.ScratchSize[float64](n, 1),
	}
	parallel.Teams(policy, func(m *parallel.Member) {
		shared := view.NewScratch[float64](m.TeamScratch(), "shmem", layout.Right, n, 1)

		parallel.TeamThreadRange(m, n, func(i int) {
			localcopy.DeepCopyUnscopedScalar(shared.Subview(view.Index(i), view.All()), float64(i))
		})
		m.TeamBarrier()
		localcopy.DeepCopy(m, check1, shared.Subview(view.All(), view.Index(0)))

		localcopy.DeepCopyScalar(m, shared, ScratchFillValue)
		localcopy.DeepCopy(m, check2, shared.Subview(view.All(), view.Index(0)))
	}, opts.Parallel)

	for i := 0; i < n; i++ {
		if got := check1.At(i); got != float64(i) {
			return fmt.Errorf("check_1[%d] = %v, want %d", i, got, i)
		}
		if got := check2.At(i); got != ScratchFillValue {
			return fmt.Errorf("check_2[%d] = %v, want %v", i, got, ScratchFillValue)
		}
	}
	return nil
}
