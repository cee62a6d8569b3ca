// SPDX-License-Identifier: MIT

package sorting

import "math/rand"

// QuickSort returns a sorted copy of data using three-way quick sort.
//
// Algorithm:
//  1. Pick a pivot index in [lo, hi] according to Options.Pivot.
//  2. Partition into  < pivot | == pivot | > pivot.  Values equal to the
//     pivot are settled together, so inputs with many duplicates do not
//     degrade.
//  3. Recurse into the smaller outer part and loop on the larger one.
//
// Step 3 bounds recursion depth by O(log n) for every pivot policy, so an
// adversarial input can cost O(n²) time but never exhausts the stack.
// With PivotFirst, already sorted input hits that O(n²) worst case:
// exactly n(n−1) comparisons for n distinct values.
//
// Complexity: O(n log n) average, O(n²) worst; O(log n) stack.
func QuickSort(data []int, opts ...Option) ([]int, error) {
	a, o, err := prepare(MethodQuick, data, opts)
	if err != nil {
		return nil, err
	}

	q := quicksorter{a: a, policy: o.Pivot}
	if o.Pivot == PivotRandom {
		q.rng = rngFromSeed(o.Seed)
	}
	if len(a) > 1 {
		q.sortRange(0, len(a)-1)
	}

	o.record(q.c)
	return a, nil
}

// quicksorter carries the per-call state of QuickSort.
type quicksorter struct {
	a      []int
	policy PivotPolicy
	rng    *rand.Rand
	c      Counter
}

// sortRange sorts a[lo..hi] (inclusive bounds).
func (q *quicksorter) sortRange(lo, hi int) {
	for lo < hi {
		lt, gt := q.partition(lo, hi, q.pivot(lo, hi))
		if lt-lo < hi-gt {
			q.sortRange(lo, lt-1)
			lo = gt + 1
		} else {
			q.sortRange(gt+1, hi)
			hi = lt - 1
		}
	}
}

// pivot returns the pivot index for a[lo..hi].
func (q *quicksorter) pivot(lo, hi int) int {
	switch q.policy {
	case PivotFirst:
		return lo
	case PivotMiddle:
		return lo + (hi-lo)/2
	case PivotRandom:
		return lo + q.rng.Intn(hi-lo+1)
	default:
		return q.medianOfThree(lo, lo+(hi-lo)/2, hi)
	}
}

// medianOfThree returns whichever of i, j, k holds the median value.
func (q *quicksorter) medianOfThree(i, j, k int) int {
	a := q.a
	q.c.Comparisons++
	if a[i] > a[j] {
		i, j = j, i
	}
	// a[i] <= a[j]
	q.c.Comparisons++
	if a[j] <= a[k] {
		return j
	}
	q.c.Comparisons++
	if a[i] > a[k] {
		return i
	}
	return k
}

// partition splits a[lo..hi] around the value at index p. On return
//
//	a[lo..lt-1] < pivot,  a[lt..gt] == pivot,  a[gt+1..hi] > pivot.
//
// The first pass is a Lomuto split into "less" and "greater or equal"; the
// second gathers the values equal to the pivot at the front of the upper part.
// Elements already on the correct side are never moved, so sorted input stays
// sorted.
func (q *quicksorter) partition(lo, hi, p int) (lt, gt int) {
	a := q.a
	if p != lo {
		a[lo], a[p] = a[p], a[lo]
		q.c.Swaps++
	}
	pivot := a[lo]

	s := lo
	for i := lo + 1; i <= hi; i++ {
		q.c.Comparisons++
		if a[i] < pivot {
			s++
			if s != i {
				a[s], a[i] = a[i], a[s]
				q.c.Swaps++
			}
		}
	}
	if s != lo {
		a[lo], a[s] = a[s], a[lo]
		q.c.Swaps++
	}

	e := s
	for i := s + 1; i <= hi; i++ {
		q.c.Comparisons++
		if a[i] == pivot {
			e++
			if e != i {
				a[e], a[i] = a[i], a[e]
				q.c.Swaps++
			}
		}
	}
	return s, e
}
