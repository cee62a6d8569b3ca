// SPDX-License-Identifier: MIT

package sorting

// BubbleSort returns a sorted copy of data using bubble sort.
//
// Algorithm:
//  1. Walk adjacent pairs (j, j+1) of the unsorted prefix, swapping
//     out-of-order pairs. After pass i the i largest values are final.
//  2. Stop after a pass with zero swaps, or after n−1 passes.
//
// Complexity: O(n²) worst/average, O(n) on sorted input (one pass, n−1
// comparisons, no swaps). Memory: O(1) beyond the result.
//
// Errors: ErrNilInput, ErrOptionViolation.
func BubbleSort(data []int, opts ...Option) ([]int, error) {
	a, o, err := prepare(MethodBubble, data, opts)
	if err != nil {
		return nil, err
	}

	var c Counter
	n := len(a)
	for pass := 0; pass < n-1; pass++ {
		swapped := false
		for j := 0; j < n-1-pass; j++ {
			c.Comparisons++
			if a[j] > a[j+1] {
				a[j], a[j+1] = a[j+1], a[j]
				c.Swaps++
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}

	o.record(c)
	return a, nil
}
