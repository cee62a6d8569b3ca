// SPDX-License-Identifier: MIT

package complexity

import (
	"fmt"
	"slices"
	"time"

	"github.com/katalvlaran/lvsort/sorting"
)

// Run executes the measurement protocol described in the package doc and
// returns a Report. Each sort output is checked with sorting.IsSorted.
//
// Errors: ErrOptionViolation for bad options, ctx.Err() on cancellation,
// ErrUnsorted if a sort misbehaves, or any error from the sorts themselves.
func Run(opts ...Option) (*Report, error) {
	o := gatherOptions(opts)
	if o.err != nil {
		return nil, o.err
	}

	input, err := RandomSequence(o.Size, o.Seed)
	if err != nil {
		return nil, err
	}

	rep := &Report{
		Size:         o.Size,
		Trials:       o.Trials,
		Seed:         o.Seed,
		Measurements: make([]Measurement, 0, len(o.Algorithms)),
	}
	for _, alg := range o.Algorithms {
		m, err := measure(&o, alg, input)
		if err != nil {
			return nil, err
		}
		rep.Measurements = append(rep.Measurements, m)
	}
	return rep, nil
}

// measure times o.Trials sorts of input with alg.
func measure(o *Options, alg sorting.Algorithm, input []int) (Measurement, error) {
	m := Measurement{
		Algorithm: alg,
		Class:     alg.Class(),
		Samples:   make([]time.Duration, 0, o.Trials),
	}
	sortOpts := make([]sorting.Option, len(o.SortOptions), len(o.SortOptions)+1)
	copy(sortOpts, o.SortOptions)

	for trial := 0; trial < o.Trials; trial++ {
		if err := o.Ctx.Err(); err != nil {
			return Measurement{}, err
		}

		var c sorting.Counter
		start := time.Now()
		out, err := sorting.Sort(alg, input, append(sortOpts, sorting.WithCounter(&c))...)
		elapsed := time.Since(start)
		if err != nil {
			return Measurement{}, err
		}
		if !sorting.IsSorted(out) {
			return Measurement{}, fmt.Errorf("%w: %s", ErrUnsorted, alg)
		}

		m.Samples = append(m.Samples, elapsed)
		if trial == 0 {
			m.Ops = c
		}
	}
	m.Median = median(m.Samples)
	return m, nil
}

// median returns the median of d without reordering it.
func median(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	s := slices.Clone(d)
	slices.Sort(s)
	mid := len(s) / 2
	if len(s)%2 == 1 {
		return s[mid]
	}
	return (s[mid-1] + s[mid]) / 2
}
