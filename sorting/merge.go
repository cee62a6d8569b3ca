// SPDX-License-Identifier: MIT

package sorting

// MergeSort returns a sorted copy of data using top-down merge sort.
//
// Algorithm:
//  1. Split [lo, hi) at mid = lo + (hi−lo)/2.
//  2. Sort both halves recursively.
//  3. Copy [lo, hi) into the scratch buffer and merge the two runs back,
//     always taking the smaller front element.
//
// A single scratch buffer of len(data) is allocated per call and shared by
// every merge. Recursion depth is ⌈log₂ n⌉.
//
// Complexity: Θ(n log n) time, O(n) auxiliary memory.
func MergeSort(data []int, opts ...Option) ([]int, error) {
	a, o, err := prepare(MethodMerge, data, opts)
	if err != nil {
		return nil, err
	}

	var c Counter
	if len(a) > 1 {
		buf := make([]int, len(a))
		mergeSortRange(a, buf, 0, len(a), &c)
	}

	o.record(c)
	return a, nil
}

func mergeSortRange(a, buf []int, lo, hi int, c *Counter) {
	if hi-lo < 2 {
		return
	}
	mid := lo + (hi-lo)/2
	mergeSortRange(a, buf, lo, mid, c)
	mergeSortRange(a, buf, mid, hi, c)
	merge(a, buf, lo, mid, hi, c)
}

// merge combines the sorted runs a[lo:mid] and a[mid:hi].
func merge(a, buf []int, lo, mid, hi int, c *Counter) {
	copy(buf[lo:hi], a[lo:hi])
	c.Writes += uint64(hi - lo)

	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		c.Comparisons++
		if buf[j] < buf[i] {
			a[k] = buf[j]
			j++
		} else {
			a[k] = buf[i]
			i++
		}
		c.Writes++
		k++
	}
	for ; i < mid; i, k = i+1, k+1 {
		a[k] = buf[i]
		c.Writes++
	}
	for ; j < hi; j, k = j+1, k+1 {
		a[k] = buf[j]
		c.Writes++
	}
}
