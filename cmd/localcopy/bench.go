package main

import (
	"fmt"
	"time"

	"github.com/born-ml/localcopy/internal/layout"
	"github.com/born-ml/localcopy/internal/localcopy"
	"github.com/born-ml/localcopy/internal/parallel"
	"github.com/born-ml/localcopy/internal/view"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time team, thread and range copies",
	Args:  cobra.NoArgs,
	RunE:  runBench,
}

func runBench(cmd *cobra.Command, _ []string) error {
	bc := cfg.Bench
	dstLayout, err := layout.Parse(bc.Layout)
	if err != nil {
		return err
	}

	extents := view.Uniform(bc.Rank+1, bc.Extent)
	src, err := view.New[float64]("A", layout.Right, extents...)
	if err != nil {
		return err
	}
	dst, err := view.New[float64]("B", dstLayout, extents...)
	if err != nil {
		return err
	}
	data := src.Data()
	for i := range data {
		data[i] = float64(i)
	}

	pc := cfg.ParallelConfig()
	pc.Logger = logger
	n := bc.Extent
	policy := parallel.TeamPolicy{LeagueSize: n}

	kernels := []struct {
		name string
		run  func()
	}{
		{"team", func() {
			parallel.Teams(policy, func(m *parallel.Member) {
				lid := m.LeagueRank()
				localcopy.DeepCopy(m, view.Leading(dst, lid, view.All()), view.Leading(src, lid, view.All()))
			}, pc)
		}},
		{"thread", func() {
			parallel.Teams(policy, func(m *parallel.Member) {
				lid := m.LeagueRank()
				parallel.TeamThreadRange(m, n, func(i int) {
					localcopy.DeepCopyThread(m.Thread(),
						view.Leading(dst, lid, view.Range(i, i+1)), view.Leading(src, lid, view.Range(i, i+1)))
				})
			}, pc)
		}},
		{"range", func() {
			parallel.For(n, func(lid int) {
				localcopy.DeepCopyUnscoped(view.Leading(dst, lid, view.All()), view.Leading(src, lid, view.All()))
			}, pc)
		}},
		{"team-fill", func() {
			parallel.Teams(policy, func(m *parallel.Member) {
				localcopy.DeepCopyScalar(m, view.Leading(dst, m.LeagueRank(), view.All()), 20.0)
			}, pc)
		}},
	}

	logger.Info("benchmarking local deep copy",
		zap.Stringer("src", src), zap.Stringer("dst", dst), zap.Int("iterations", bc.Iterations))

	out := cmd.OutOrStdout()
	bytes := float64(src.Size() * 8)
	for _, k := range kernels {
		start := time.Now()
		for i := 0; i < bc.Iterations; i++ {
			k.run()
		}
		per := max(time.Since(start)/time.Duration(bc.Iterations), time.Nanosecond)
		fmt.Fprintf(out, "%-10s %12s/op %10.1f MB/s\n", k.name, per, bytes/per.Seconds()/1e6)
	}
	return nil
}
