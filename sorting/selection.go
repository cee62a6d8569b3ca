// SPDX-License-Identifier: MIT

package sorting

// SelectionSort returns a sorted copy of data using selection sort.
//
// For each position i, the minimum of a[i:] is located and swapped into i.
// Self-swaps are skipped, so at most n−1 swaps are performed.
//
// Complexity: Θ(n²) comparisons on every input, O(n) swaps.
func SelectionSort(data []int, opts ...Option) ([]int, error) {
	a, o, err := prepare(MethodSelection, data, opts)
	if err != nil {
		return nil, err
	}

	var c Counter
	n := len(a)
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			c.Comparisons++
			if a[j] < a[minIdx] {
				minIdx = j
			}
		}
		if minIdx != i {
			a[i], a[minIdx] = a[minIdx], a[i]
			c.Swaps++
		}
	}

	o.record(c)
	return a, nil
}
