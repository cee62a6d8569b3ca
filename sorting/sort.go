// SPDX-License-Identifier: MIT

package sorting

// Sort dispatches to the sort named by alg.
// Returns ErrUnknownAlgorithm for values outside Algorithms().
func Sort(alg Algorithm, data []int, opts ...Option) ([]int, error) {
	switch alg {
	case Bubble:
		return BubbleSort(data, opts...)
	case Selection:
		return SelectionSort(data, opts...)
	case Insertion:
		return InsertionSort(data, opts...)
	case Merge:
		return MergeSort(data, opts...)
	case Quick:
		return QuickSort(data, opts...)
	case Heap:
		return HeapSort(data, opts...)
	default:
		return nil, wrapf(MethodSort, ErrUnknownAlgorithm)
	}
}

// IsSorted reports whether a is in non-decreasing order.
// Empty and nil slices are sorted.
func IsSorted(a []int) bool {
	for i := 1; i < len(a); i++ {
		if a[i-1] > a[i] {
			return false
		}
	}
	return true
}

// prepare validates input and options and returns a private copy of data
// for the algorithm to reorder.
func prepare(method string, data []int, opts []Option) ([]int, Options, error) {
	if data == nil {
		return nil, Options{}, wrapf(method, ErrNilInput)
	}
	o := gatherOptions(opts)
	if o.err != nil {
		return nil, o, wrapf(method, o.err)
	}
	out := make([]int, len(data))
	copy(out, data)
	return out, o, nil
}
