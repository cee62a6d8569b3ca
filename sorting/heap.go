// SPDX-License-Identifier: MIT

package sorting

// HeapSort returns a sorted copy of data using in-place heap sort.
//
// Algorithm:
//  1. Heapify: sift down every internal node from n/2−1 to 0, giving a
//     max-heap rooted at index 0 (children of i are 2i+1 and 2i+2).
//  2. For end = n−1 … 1: swap the root into a[end] and sift the new root
//     down within a[0:end].
//
// Complexity: O(n log n) time on every input, O(1) auxiliary memory.
func HeapSort(data []int, opts ...Option) ([]int, error) {
	a, o, err := prepare(MethodHeap, data, opts)
	if err != nil {
		return nil, err
	}

	var c Counter
	n := len(a)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(a, i, n, &c)
	}
	for end := n - 1; end > 0; end-- {
		a[0], a[end] = a[end], a[0]
		c.Swaps++
		siftDown(a, 0, end, &c)
	}

	o.record(c)
	return a, nil
}

// siftDown restores the max-heap property for the subtree at root within a[0:n].
func siftDown(a []int, root, n int, c *Counter) {
	for {
		child := 2*root + 1
		if child >= n {
			return
		}
		if child+1 < n {
			c.Comparisons++
			if a[child+1] > a[child] {
				child++
			}
		}
		c.Comparisons++
		if a[root] >= a[child] {
			return
		}
		a[root], a[child] = a[child], a[root]
		c.Swaps++
		root = child
	}
}
