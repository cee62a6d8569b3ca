// SPDX-License-Identifier: MIT

// Package lvsort is a small, dependency-light playground for classic
// comparison sorts and for measuring how their costs grow.
//
// 🚀 What is inside?
//
//	sorting/      — bubble, selection, insertion, merge, quick and heap sort
//	                over []int, with a uniform non-mutating contract,
//	                pivot policies and operation counters
//	complexity/   — the empirical complexity check: one random input,
//	                per-algorithm median timings and operation counts,
//	                plus two oracles (operation counts, wall clock)
//	cmd/lvsort/   — command-line front end (sort, list, check)
//
// ✨ Why lvsort?
//
//   - Beginner-friendly – one signature for every sort: ([]int, ...Option) → ([]int, error)
//   - Deterministic – seeded inputs and pivots, counted comparisons/swaps/writes
//   - Stack-safe – quick sort recurses only into the smaller partition
//   - Pure Go – no cgo
//
// Quick example:
//
//	out, err := sorting.MergeSort([]int{38, 27, 43, 3, 9, 82, 10})
//	// out == [3 9 10 27 38 43 82]
//
//	go install github.com/katalvlaran/lvsort/cmd/lvsort@latest
package lvsort
