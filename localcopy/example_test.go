package localcopy_test

import (
	"fmt"

	"github.com/born-ml/localcopy/localcopy"
	"github.com/born-ml/localcopy/parallel"
	"github.com/born-ml/localcopy/view"
)

func ExampleDeepCopy() {
	const n = 4
	a := view.MustNew[float64]("A", view.LayoutRight, n, n)
	for i := range a.Data() {
		a.Data()[i] = float64(i)
	}
	b := view.MustNew[float64]("B", view.LayoutLeft, n, n)

	parallel.Teams(parallel.TeamPolicy{LeagueSize: n, TeamSize: 2}, func(m *parallel.Member) {
		lid := m.LeagueRank()
		localcopy.DeepCopy(m, b.Subview(view.Index(lid), view.All()), a.Subview(view.Index(lid), view.All()))
	}, parallel.DefaultConfig())

	fmt.Println(b.At(2, 3), b.Data()[1])
	// Output: 11 4
}

func ExampleDeepCopyUnscopedScalar() {
	v := view.MustNew[int32]("v", view.LayoutRight, 2, 3)
	localcopy.DeepCopyUnscopedScalar(v.Subview(view.All(), view.Index(1)), 7)
	fmt.Println(v.Data())
	// Output: [0 7 0 0 7 0]
}

func ExampleDeepCopyThread() {
	const n = 3
	a := view.MustNew[int64]("A", view.LayoutRight, n, n)
	for i := range a.Data() {
		a.Data()[i] = int64(10 * i)
	}
	b := view.MustNew[int64]("B", view.LayoutRight, n, n)

	parallel.Teams(parallel.TeamPolicy{LeagueSize: 1, TeamSize: n}, func(m *parallel.Member) {
		row := m.TeamRank()
		localcopy.DeepCopyThread(m.Thread(), b.Subview(view.Index(row), view.All()), a.Subview(view.Index(row), view.All()))
	}, parallel.DefaultConfig())

	fmt.Println(b.Data())
	// Output: [0 10 20 30 40 50 60 70 80]
}
