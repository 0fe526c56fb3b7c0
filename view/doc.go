// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package view provides multi-dimensional array views for team-parallel kernels.
//
// # Overview
//
// A View is a typed, rank-R window onto storage. It records extents, strides,
// a layout tag and the memory space its storage lives in:
//   - HostSpace: heap memory created with New, MustNew or FromSlice
//   - ScratchSpace: team-local memory created with NewScratch
//
// Views never copy on construction. Subview narrows a view with one Selector
// per dimension and aliases the parent's storage.
//
// # Layouts
//
//	a := view.MustNew[float64]("A", view.LayoutRight, 8, 8) // row-major
//	b := view.MustNew[float64]("B", view.LayoutLeft, 8, 8)  // column-major
//
// # Subviews
//
//	row := a.Subview(view.Index(3), view.All())        // extents [8]
//	blk := a.Subview(view.Range(2, 4), view.Range(0, 3)) // extents [2 3]
//
// # Scratch memory
//
// Inside a team dispatch every lane performs the same NewScratch calls on its
// own cursor and receives the same storage:
//
//	policy := parallel.TeamPolicy{LeagueSize: 1, ScratchBytes: view.ScratchSize[float64](8, 1)}
//	parallel.Teams(policy, func(m *parallel.Member) {
//	    s := view.NewScratch[float64](m.TeamScratch(), "shmem", view.LayoutRight, 8, 1)
//	    ...
//	}, parallel.DefaultConfig())
package view
