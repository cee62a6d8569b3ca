// SPDX-License-Identifier: MIT

package sorting

// InsertionSort returns a sorted copy of data using insertion sort.
//
// Each a[i], i ≥ 1, is lifted out and larger prefix elements are shifted one
// slot right until its place is found. Shifts and the final placement count
// as Writes; an element already in place costs one comparison and no write.
//
// Complexity: O(n²) worst/average, O(n) on nearly sorted input.
func InsertionSort(data []int, opts ...Option) ([]int, error) {
	a, o, err := prepare(MethodInsertion, data, opts)
	if err != nil {
		return nil, err
	}

	var c Counter
	insertionRange(a, 0, len(a), &c)

	o.record(c)
	return a, nil
}

// insertionRange sorts a[lo:hi] in place.
func insertionRange(a []int, lo, hi int, c *Counter) {
	for i := lo + 1; i < hi; i++ {
		key := a[i]
		j := i - 1
		for j >= lo {
			c.Comparisons++
			if a[j] <= key {
				break
			}
			a[j+1] = a[j]
			c.Writes++
			j--
		}
		if j+1 != i {
			a[j+1] = key
			c.Writes++
		}
	}
}
