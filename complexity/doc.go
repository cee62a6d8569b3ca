// SPDX-License-Identifier: MIT

// Package complexity gathers empirical evidence that the O(n²) sorts in
// package sorting are slower than the O(n log n) ones.
//
// Protocol:
//  1. Generate one random sequence of size N (default 5000) from a seed.
//  2. For each algorithm and each trial, sort that sequence. Sorts never
//     mutate their input, so no run observes another's output.
//  3. Record the wall-clock time of every trial and the operation count
//     reported by sorting.WithCounter.
//
// Two oracles read the resulting Report:
//
//	VerifyOperations — deterministic: every Quadratic algorithm's operation
//	                   total must exceed every Linearithmic one's.
//	VerifyTiming     — best effort: compares median wall-clock times. It is
//	                   sensitive to scheduling noise and GC pauses; treat a
//	                   failure as a smoke signal, not a correctness verdict.
//
// Usage:
//
//	rep, err := complexity.Run(complexity.WithSize(5000), complexity.WithTrials(5))
//	if err != nil { ... }
//	if err := rep.VerifyOperations(); err != nil { ... }
package complexity
