// SPDX-License-Identifier: MIT

// Package sorting implements six classic comparison sorts over integer
// sequences, with a uniform, non-mutating contract.
//
// 🚀 What is in the box?
//
//	Quadratic       — BubbleSort, SelectionSort, InsertionSort
//	Linearithmic    — MergeSort, QuickSort, HeapSort
//
// Every sort has the same shape:
//
//	out, err := sorting.QuickSort(data, opts...)
//
// and the same guarantees:
//   - data is never modified; out is a freshly allocated slice.
//   - out holds the same multiset as data, in non-decreasing order.
//   - a nil slice is rejected with ErrNilInput; an empty, non-nil slice
//     yields an empty, non-nil result.
//   - no sort is stable (equal values may be reordered).
//
// ✨ Options:
//   - WithPivot   — quick sort pivot policy (default: PivotMedianOfThree).
//     PivotFirst degrades to O(n²) on already sorted input; that is the
//     textbook behavior and is kept on purpose for comparison runs.
//   - WithSeed    — seed for PivotRandom (0 ⇒ fixed default seed).
//   - WithCounter — collects comparisons, swaps and single-slot writes,
//     giving a deterministic measure of work done.
//
// Stack depth:
//
//	MergeSort recurses to depth ⌈log₂ n⌉. QuickSort recurses only into the
//	smaller partition and iterates on the larger, so its depth is O(log n)
//	whatever the pivot policy.
//
// Use Sort(alg, data) to dispatch by Algorithm, and Algorithm.Class() to
// group algorithms by asymptotic class.
package sorting
