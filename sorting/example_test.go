// SPDX-License-Identifier: MIT
package sorting_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsort/sorting"
)

// ExampleQuickSort sorts a small slice with the default median-of-three pivot.
// The input is left untouched.
func ExampleQuickSort() {
	in := []int{10, 7, 8, 9, 1, 5}
	out, err := sorting.QuickSort(in)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out)
	fmt.Println(in)
	// Output:
	// [1 5 7 8 9 10]
	// [10 7 8 9 1 5]
}

// ExampleMergeSort shows that an empty slice is valid and a nil slice is not.
func ExampleMergeSort() {
	out, err := sorting.MergeSort([]int{})
	fmt.Println(out, err)

	_, err = sorting.MergeSort(nil)
	fmt.Println(errors.Is(err, sorting.ErrNilInput))
	// Output:
	// [] <nil>
	// true
}

// ExampleWithCounter compares the work of bubble sort on sorted and reversed input.
func ExampleWithCounter() {
	var sorted, reversed sorting.Counter
	_, _ = sorting.BubbleSort([]int{1, 2, 3, 4, 5}, sorting.WithCounter(&sorted))
	_, _ = sorting.BubbleSort([]int{5, 4, 3, 2, 1}, sorting.WithCounter(&reversed))
	fmt.Println("sorted:  ", sorted)
	fmt.Println("reversed:", reversed)
	// Output:
	// sorted:   cmp=4 swp=0 wr=0
	// reversed: cmp=10 swp=10 wr=0
}

// ExampleSort dispatches by algorithm name.
func ExampleSort() {
	alg, err := sorting.ParseAlgorithm("heapsort")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	out, _ := sorting.Sort(alg, []int{12, 11, 13, 5, 6, 7})
	fmt.Println(alg, alg.Class(), out)
	// Output:
	// heap O(n log n) [5 6 7 11 12 13]
}
