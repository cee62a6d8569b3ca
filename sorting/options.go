// SPDX-License-Identifier: MIT

package sorting

import "fmt"

// Option configures a sort call via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the
// sort runs; option constructors never panic.
type Option func(*Options)

// Options holds the resolved configuration of a sort call.
// Options that do not apply to an algorithm are ignored by it.
type Options struct {
	// Pivot is the QuickSort pivot policy.
	Pivot PivotPolicy

	// Seed drives PivotRandom. Zero selects a fixed default seed.
	Seed int64

	// Counter, if non-nil, receives the operation counts of the call.
	Counter *Counter

	err error
}

// DefaultOptions returns the zero-configuration options:
//   - Pivot: PivotMedianOfThree
//   - Seed: 0 (default seed)
//   - Counter: nil (no instrumentation)
func DefaultOptions() Options {
	return Options{
		Pivot:   PivotMedianOfThree,
		Seed:    0,
		Counter: nil,
	}
}

// WithPivot sets the QuickSort pivot policy.
func WithPivot(p PivotPolicy) Option {
	return func(o *Options) {
		if !p.valid() {
			o.err = fmt.Errorf("%w: pivot policy %d", ErrOptionViolation, int(p))
			return
		}
		o.Pivot = p
	}
}

// WithSeed sets the seed used by PivotRandom.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithCounter attaches an operation counter. A nil counter disables counting.
func WithCounter(c *Counter) Option {
	return func(o *Options) {
		o.Counter = c
	}
}

// gatherOptions applies opts over DefaultOptions; the last writer wins.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// record adds c to the attached counter, if any.
func (o *Options) record(c Counter) {
	if o.Counter != nil {
		o.Counter.Add(c)
	}
}
