// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package parallel dispatches kernels over flat ranges and leagues of teams.
//
// Example:
//
//	parallel.Teams(parallel.TeamPolicy{LeagueSize: 8, TeamSize: 4}, func(m *parallel.Member) {
//	    parallel.TeamThreadRange(m, 100, func(i int) {
//	        // lane-private work on item i of team m.LeagueRank()
//	    })
//	    m.TeamBarrier() // every lane's items are now visible to the team
//	}, parallel.DefaultConfig())
package parallel

import "github.com/born-ml/localcopy/internal/parallel"

// Config controls parallel execution behavior.
type Config = parallel.Config

// TeamPolicy describes a league of teams.
type TeamPolicy = parallel.TeamPolicy

// Member is one lane of one team.
type Member = parallel.Member

// Thread is a lane acting on its own, without synchronization authority.
type Thread = parallel.Thread

// Unscoped is the context of one iteration of a flat range dispatch.
type Unscoped = parallel.Unscoped

// Scope is the execution context a kernel runs in.
type Scope = parallel.Scope

// ErrBrokenBarrier is the panic value raised when a team barrier is broken.
var ErrBrokenBarrier = parallel.ErrBrokenBarrier

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config { return parallel.DefaultConfig() }

// For executes f(i) for i in [0, n).
func For(n int, f func(i int), cfg Config) { parallel.For(n, f, cfg) }

// Reduce folds f over [0, n), combining chunk results with join.
func Reduce[T any](n int, identity T, f func(i int, acc T) T, join func(a, b T) T, cfg Config) T {
	return parallel.Reduce(n, identity, f, join, cfg)
}

// Teams runs f once per lane of every team in the league.
func Teams(policy TeamPolicy, f func(m *Member), cfg Config) { parallel.Teams(policy, f, cfg) }

// TeamThreadRange executes f(i) for the share of [0, n) owned by m's lane.
func TeamThreadRange(m *Member, n int, f func(i int)) { parallel.TeamThreadRange(m, n, f) }
