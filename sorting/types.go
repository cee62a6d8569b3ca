// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"
	"strings"
)

// Algorithm identifies one of the six sorts in this package.
type Algorithm int

const (
	// Bubble — adjacent compare/swap passes with early exit.
	Bubble Algorithm = iota
	// Selection — repeated minimum-of-suffix selection.
	Selection
	// Insertion — left shifts through a sorted prefix.
	Insertion
	// Merge — top-down merge sort with a single auxiliary buffer.
	Merge
	// Quick — three-way partitioning quick sort.
	Quick
	// Heap — in-place max-heap sort.
	Heap
)

var algorithmNames = [...]string{
	Bubble:    "bubble",
	Selection: "selection",
	Insertion: "insertion",
	Merge:     "merge",
	Quick:     "quick",
	Heap:      "heap",
}

// Algorithms returns all supported algorithms, quadratic ones first.
func Algorithms() []Algorithm {
	return []Algorithm{Bubble, Selection, Insertion, Merge, Quick, Heap}
}

// Valid reports whether a names a supported algorithm.
func (a Algorithm) Valid() bool {
	return a >= Bubble && a <= Heap
}

// String returns the lower-case short name ("bubble", "quick", ...).
func (a Algorithm) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Class returns the asymptotic average-case class of a.
func (a Algorithm) Class() ComplexityClass {
	switch a {
	case Bubble, Selection, Insertion:
		return Quadratic
	case Merge, Quick, Heap:
		return Linearithmic
	default:
		return UnknownClass
	}
}

// ParseAlgorithm maps a short name to an Algorithm. Matching ignores case,
// surrounding spaces and an optional "sort" suffix, so "Quick", "quicksort"
// and " quick " all resolve to Quick.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimSuffix(key, "sort")
	key = strings.TrimSuffix(key, "_")
	key = strings.TrimSuffix(key, "-")
	for i, n := range algorithmNames {
		if n == key {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// ComplexityClass groups algorithms by their average-case running time.
type ComplexityClass int

const (
	// UnknownClass is reported for invalid Algorithm values.
	UnknownClass ComplexityClass = iota
	// Quadratic is O(n²).
	Quadratic
	// Linearithmic is O(n log n).
	Linearithmic
)

// String returns the big-O notation of the class.
func (c ComplexityClass) String() string {
	switch c {
	case Quadratic:
		return "O(n²)"
	case Linearithmic:
		return "O(n log n)"
	default:
		return "unknown"
	}
}

// PivotPolicy selects how QuickSort chooses its pivot.
//
//   - PivotFirst         — leftmost element; O(n²) on sorted input.
//   - PivotMiddle        — element at the midpoint.
//   - PivotMedianOfThree — median of first, middle and last (default).
//   - PivotRandom        — uniform index from a seeded RNG (see WithSeed).
type PivotPolicy int

const (
	PivotMedianOfThree PivotPolicy = iota
	PivotFirst
	PivotMiddle
	PivotRandom
)

var pivotNames = [...]string{
	PivotMedianOfThree: "median3",
	PivotFirst:         "first",
	PivotMiddle:        "middle",
	PivotRandom:        "random",
}

func (p PivotPolicy) valid() bool {
	return p >= PivotMedianOfThree && p <= PivotRandom
}

// String returns the short name used by ParsePivotPolicy.
func (p PivotPolicy) String() string {
	if !p.valid() {
		return fmt.Sprintf("PivotPolicy(%d)", int(p))
	}
	return pivotNames[p]
}

// ParsePivotPolicy maps "first", "middle", "median3" or "random" to a policy.
func ParsePivotPolicy(name string) (PivotPolicy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range pivotNames {
		if n == key {
			return PivotPolicy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown pivot policy %q", ErrOptionViolation, name)
}

// Counter accumulates the work done by a sort.
//
//   - Comparisons — element-to-element comparisons.
//   - Swaps       — pairwise exchanges of two slots.
//   - Writes      — single-slot stores (insertion shifts, merge copies).
//
// A Counter passed through WithCounter is added to, never reset, so one
// Counter can aggregate several calls. It is not safe for concurrent use.
type Counter struct {
	Comparisons uint64
	Swaps       uint64
	Writes      uint64
}

// Total returns Comparisons + Swaps + Writes.
func (c Counter) Total() uint64 {
	return c.Comparisons + c.Swaps + c.Writes
}

// Reset zeroes all fields.
func (c *Counter) Reset() {
	*c = Counter{}
}

// Add accumulates other into c.
func (c *Counter) Add(other Counter) {
	c.Comparisons += other.Comparisons
	c.Swaps += other.Swaps
	c.Writes += other.Writes
}

// String renders the counter as "cmp=… swp=… wr=…".
func (c Counter) String() string {
	return fmt.Sprintf("cmp=%d swp=%d wr=%d", c.Comparisons, c.Swaps, c.Writes)
}
