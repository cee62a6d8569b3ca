// SPDX-License-Identifier: MIT

package complexity

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvsort/sorting"
)

// Measurement is the outcome of timing one algorithm.
type Measurement struct {
	Algorithm sorting.Algorithm
	Class     sorting.ComplexityClass

	// Samples holds the elapsed time of each trial, in run order.
	Samples []time.Duration

	// Median is the median of Samples (mean of the middle two for even counts).
	Median time.Duration

	// Ops is the operation count of a single sort of the input.
	Ops sorting.Counter
}

// Report collects the measurements of a Run, in the order requested.
type Report struct {
	Size         int
	Trials       int
	Seed         int64
	Measurements []Measurement
}

// Lookup returns the measurement for alg, if present.
func (r *Report) Lookup(alg sorting.Algorithm) (Measurement, bool) {
	for _, m := range r.Measurements {
		if m.Algorithm == alg {
			return m, true
		}
	}
	return Measurement{}, false
}

// byClass splits the measurements into quadratic and linearithmic groups.
func (r *Report) byClass() (slow, fast []Measurement) {
	for _, m := range r.Measurements {
		switch m.Class {
		case sorting.Quadratic:
			slow = append(slow, m)
		case sorting.Linearithmic:
			fast = append(fast, m)
		}
	}
	return slow, fast
}

// VerifyOperations checks that every Quadratic algorithm performed strictly
// more operations than every Linearithmic one. The result is deterministic
// for a given seed and size. A report holding only one class passes.
//
// Errors: ErrComplexityViolation naming the first offending pair.
func (r *Report) VerifyOperations() error {
	slow, fast := r.byClass()
	for _, s := range slow {
		for _, f := range fast {
			if s.Ops.Total() <= f.Ops.Total() {
				return fmt.Errorf("%w: %s (%d ops) is not above %s (%d ops)",
					ErrComplexityViolation, s.Algorithm, s.Ops.Total(), f.Algorithm, f.Ops.Total())
			}
		}
	}
	return nil
}

// DefaultTimingPairs returns the pairs compared by VerifyTiming when called
// with nil arguments: bubble and selection against merge and quick.
func DefaultTimingPairs() (slow, fast []sorting.Algorithm) {
	return []sorting.Algorithm{sorting.Bubble, sorting.Selection},
		[]sorting.Algorithm{sorting.Merge, sorting.Quick}
}

// VerifyTiming checks that the median time of every algorithm in slow
// exceeds the median time of every algorithm in fast. Nil slices select
// DefaultTimingPairs.
//
// Wall-clock comparisons depend on the host; a failure here is a warning
// sign rather than proof of a bug.
//
// Errors: ErrMissingAlgorithm, ErrComplexityViolation.
func (r *Report) VerifyTiming(slow, fast []sorting.Algorithm) error {
	defSlow, defFast := DefaultTimingPairs()
	if slow == nil {
		slow = defSlow
	}
	if fast == nil {
		fast = defFast
	}

	for _, sa := range slow {
		s, ok := r.Lookup(sa)
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingAlgorithm, sa)
		}
		for _, fa := range fast {
			f, ok := r.Lookup(fa)
			if !ok {
				return fmt.Errorf("%w: %s", ErrMissingAlgorithm, fa)
			}
			if s.Median <= f.Median {
				return fmt.Errorf("%w: %s (%v) should be slower than %s (%v)",
					ErrComplexityViolation, sa, s.Median, fa, f.Median)
			}
		}
	}
	return nil
}
