// SPDX-License-Identifier: MIT

package complexity

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvsort/sorting"
)

// Defaults used by DefaultOptions.
const (
	// DefaultSize is the input length; large enough for the n² vs n log n gap
	// to dominate measurement noise.
	DefaultSize = 5000

	// DefaultTrials is the number of timed runs per algorithm.
	DefaultTrials = 5
)

// Option configures Run via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when Run is invoked.
type Option func(*Options)

// Options holds the resolved configuration of a Run.
type Options struct {
	// Ctx allows cancellation between trials.
	Ctx context.Context

	// Size is the length of the random input.
	Size int

	// Trials is the number of timed runs per algorithm; the median is reported.
	Trials int

	// Seed drives RandomSequence (0 ⇒ DefaultSeed).
	Seed int64

	// Algorithms lists what to measure, in report order.
	Algorithms []sorting.Algorithm

	// SortOptions are forwarded to every sort call (e.g. a pivot policy).
	SortOptions []sorting.Option

	err error
}

// DefaultOptions returns Size=DefaultSize, Trials=DefaultTrials, Seed=0,
// all six algorithms and a background context.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Size:       DefaultSize,
		Trials:     DefaultTrials,
		Seed:       0,
		Algorithms: sorting.Algorithms(),
	}
}

// WithContext sets a custom context for cancellation. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSize sets the input length; n must be positive.
func WithSize(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Size must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Size = n
	}
}

// WithTrials sets the number of timed runs per algorithm; k must be positive.
func WithTrials(k int) Option {
	return func(o *Options) {
		if k <= 0 {
			o.err = fmt.Errorf("%w: Trials must be positive (%d)", ErrOptionViolation, k)
			return
		}
		o.Trials = k
	}
}

// WithSeed sets the input seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithAlgorithms restricts the run to algs. Duplicates and unknown values
// are rejected; an empty list is a violation.
func WithAlgorithms(algs ...sorting.Algorithm) Option {
	return func(o *Options) {
		if len(algs) == 0 {
			o.err = fmt.Errorf("%w: empty algorithm list", ErrOptionViolation)
			return
		}
		seen := make(map[sorting.Algorithm]bool, len(algs))
		for _, a := range algs {
			if !a.Valid() {
				o.err = fmt.Errorf("%w: %v", ErrOptionViolation, a)
				return
			}
			if seen[a] {
				o.err = fmt.Errorf("%w: duplicate algorithm %s", ErrOptionViolation, a)
				return
			}
			seen[a] = true
		}
		o.Algorithms = append([]sorting.Algorithm(nil), algs...)
	}
}

// WithSortOptions forwards opts to every sort call. A WithCounter passed here
// is overridden by the per-trial counter Run attaches.
func WithSortOptions(opts ...sorting.Option) Option {
	return func(o *Options) {
		o.SortOptions = append(o.SortOptions, opts...)
	}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
