// Package verify runs the local deep copy scenarios across ranks and layouts
// and reports which ones hold.
package verify

import (
	"errors"
	"fmt"
	"time"

	"github.com/born-ml/localcopy/internal/layout"
	"github.com/born-ml/localcopy/internal/parallel"
	"go.uber.org/zap"
)

// FillValue is the scalar broadcast by the fill scenarios.
const FillValue = 20.0

// ScratchFillValue is the scalar broadcast into scratch memory.
const ScratchFillValue = 6.0

// Options selects which scenarios run and how.
type Options struct {
	Extent   int             // Extent of every dimension, including the league dimension.
	MaxRank  int             // Ranks 1..MaxRank are checked below the league dimension.
	Layouts  []layout.Layout // Layouts to check.
	TeamSize int             // Lanes per team; 0 selects automatically.
	Parallel parallel.Config // Dispatch settings, including the logger.
}

// Result is the outcome of one scenario.
type Result struct {
	Scenario string
	Layout   layout.Layout
	Rank     int
	Passed   bool
	Detail   string
	Elapsed  time.Duration
}

// String returns a one-line summary of the result.
func (r Result) String() string {
	status := "PASS"
	if !r.Passed {
		status = "FAIL"
	}
	s := fmt.Sprintf("%s %-14s %-11s rank=%d (%s)", status, r.Scenario, r.Layout, r.Rank, r.Elapsed.Round(time.Microsecond))
	if r.Detail != "" {
		s += ": " + r.Detail
	}
	return s
}

// Report collects the results of a Run.
type Report struct {
	Results []Result
}

// Failed returns the results that did not pass.
func (r Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if !res.Passed {
			failed = append(failed, res)
		}
	}
	return failed
}

// Err joins one error per failed scenario, or returns nil.
func (r Report) Err() error {
	var errs []error
	for _, res := range r.Failed() {
		errs = append(errs, fmt.Errorf("%s %s rank %d: %s", res.Scenario, res.Layout, res.Rank, res.Detail))
	}
	return errors.Join(errs...)
}

// Run executes every scenario for every rank in [1, MaxRank] and every layout,
// followed by the scratch round trip.
func Run(opts Options) (Report, error) {
	if opts.Extent < 1 {
		return Report{}, fmt.Errorf("extent must be >= 1, got %d", opts.Extent)
	}
	if opts.MaxRank < 1 || opts.MaxRank+1 > layout.MaxRank {
		return Report{}, fmt.Errorf("max rank must be in [1, %d], got %d", layout.MaxRank-1, opts.MaxRank)
	}
	if len(opts.Layouts) == 0 {
		return Report{}, errors.New("no layouts to verify")
	}

	logger := opts.logger()
	var report Report

	for _, l := range opts.Layouts {
		for rank := 1; rank <= opts.MaxRank; rank++ {
			logger.Debug("checking rank", zap.Stringer("layout", l), zap.Int("rank", rank))
			fx := newFixture(opts, l, rank)
			for _, sc := range rankScenarios {
				fx.reset()
				report.Results = append(report.Results, runScenario(logger, sc.name, l, rank, func() error {
					return sc.run(fx)
				}))
			}
		}
	}

	report.Results = append(report.Results, runScenario(logger, "scratch", layout.Right, 1, func() error {
		return scratchRoundTrip(opts)
	}))

	return report, report.Err()
}

func (o Options) logger() *zap.Logger {
	if o.Parallel.Logger == nil {
		return zap.NewNop()
	}
	return o.Parallel.Logger
}

// runScenario runs fn, turning a panic into a failed result.
func runScenario(logger *zap.Logger, name string, l layout.Layout, rank int, fn func() error) (res Result) {
	res = Result{Scenario: name, Layout: l, Rank: rank}
	start := time.Now()

	defer func() {
		res.Elapsed = time.Since(start)
		if r := recover(); r != nil {
			res.Passed = false
			res.Detail = fmt.Sprintf("panic: %v", r)
		}
		if res.Passed {
			logger.Debug("scenario passed", zap.String("scenario", name),
				zap.Stringer("layout", l), zap.Int("rank", rank), zap.Duration("elapsed", res.Elapsed))
		} else {
			logger.Warn("scenario failed", zap.String("scenario", name),
				zap.Stringer("layout", l), zap.Int("rank", rank), zap.String("detail", res.Detail))
		}
	}()

	if err := fn(); err != nil {
		res.Detail = err.Error()
		return res
	}
	res.Passed = true
	return res
}
