// SPDX-License-Identifier: MIT
package sorting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsort/sorting"
)

type sortFunc func([]int, ...sorting.Option) ([]int, error)

// allSorts lists every public sort under a stable name for table tests.
var allSorts = []struct {
	name string
	fn   sortFunc
}{
	{"Bubble", sorting.BubbleSort},
	{"Selection", sorting.SelectionSort},
	{"Insertion", sorting.InsertionSort},
	{"Merge", sorting.MergeSort},
	{"Quick", sorting.QuickSort},
	{"Heap", sorting.HeapSort},
}

// TestSorts_KnownScenarios checks the classic textbook inputs for each algorithm.
func TestSorts_KnownScenarios(t *testing.T) {
	cases := []struct {
		name string
		fn   sortFunc
		in   []int
		want []int
	}{
		{"Bubble", sorting.BubbleSort, []int{5, 1, 4, 2, 8}, []int{1, 2, 4, 5, 8}},
		{"BubbleSingle", sorting.BubbleSort, []int{3}, []int{3}},
		{"Selection", sorting.SelectionSort, []int{64, 25, 12, 22, 11}, []int{11, 12, 22, 25, 64}},
		{"SelectionPair", sorting.SelectionSort, []int{2, 1}, []int{1, 2}},
		{"Insertion", sorting.InsertionSort, []int{12, 11, 13, 5, 6}, []int{5, 6, 11, 12, 13}},
		{"InsertionSorted", sorting.InsertionSort, []int{1, 2, 3}, []int{1, 2, 3}},
		{"Merge", sorting.MergeSort, []int{38, 27, 43, 3, 9, 82, 10}, []int{3, 9, 10, 27, 38, 43, 82}},
		{"Quick", sorting.QuickSort, []int{10, 7, 8, 9, 1, 5}, []int{1, 5, 7, 8, 9, 10}},
		{"Heap", sorting.HeapSort, []int{12, 11, 13, 5, 6, 7}, []int{5, 6, 7, 11, 12, 13}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.fn(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestSorts_EdgeCases runs the shared boundary inputs through all six sorts.
func TestSorts_EdgeCases(t *testing.T) {
	cases := []struct {
		name string
		in   []int
		want []int
	}{
		{"empty", []int{}, []int{}},
		{"single", []int{42}, []int{42}},
		{"duplicates", []int{3, 1, 3, 2, 1, 3}, []int{1, 1, 2, 3, 3, 3}},
		{"all equal", []int{7, 7, 7, 7}, []int{7, 7, 7, 7}},
		{"sorted", []int{1, 2, 3, 4, 5, 6}, []int{1, 2, 3, 4, 5, 6}},
		{"reversed", []int{6, 5, 4, 3, 2, 1}, []int{1, 2, 3, 4, 5, 6}},
		{"negatives", []int{0, -3, 5, -1, -3, 2}, []int{-3, -3, -1, 0, 2, 5}},
		{"extremes", []int{maxInt, minInt, 0, maxInt, minInt}, []int{minInt, minInt, 0, maxInt, maxInt}},
	}
	for _, s := range allSorts {
		for _, tc := range cases {
			t.Run(s.name+"/"+tc.name, func(t *testing.T) {
				got, err := s.fn(tc.in)
				require.NoError(t, err)
				require.NotNil(t, got, "empty input must yield an empty, non-nil slice")
				assert.Equal(t, tc.want, got)
			})
		}
	}
}

// TestSorts_NilInput verifies the absent-sequence error for every sort.
func TestSorts_NilInput(t *testing.T) {
	for _, s := range allSorts {
		t.Run(s.name, func(t *testing.T) {
			got, err := s.fn(nil)
			assert.ErrorIs(t, err, sorting.ErrNilInput)
			assert.Nil(t, got)
			assert.Contains(t, err.Error(), s.name+"Sort:", "error should carry the method name")
		})
	}
}

// TestSorts_DoNotMutateInput ensures the returned slice is a private copy.
func TestSorts_DoNotMutateInput(t *testing.T) {
	for _, s := range allSorts {
		t.Run(s.name, func(t *testing.T) {
			in := []int{9, 4, 7, 1, 8, 2}
			snapshot := append([]int(nil), in...)

			got, err := s.fn(in)
			require.NoError(t, err)
			assert.Equal(t, snapshot, in, "input must be left untouched")

			got[0] = -100
			assert.Equal(t, snapshot, in, "result must not alias input")
		})
	}
}

// TestSort_Dispatch checks that Sort routes every Algorithm and rejects unknown ones.
func TestSort_Dispatch(t *testing.T) {
	in := []int{4, 2, 5, 1, 3}
	for _, alg := range sorting.Algorithms() {
		got, err := sorting.Sort(alg, in)
		require.NoError(t, err, alg.String())
		assert.Equal(t, []int{1, 2, 3, 4, 5}, got, alg.String())
	}

	_, err := sorting.Sort(sorting.Algorithm(99), in)
	assert.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)
}

func TestIsSorted(t *testing.T) {
	assert.True(t, sorting.IsSorted(nil))
	assert.True(t, sorting.IsSorted([]int{}))
	assert.True(t, sorting.IsSorted([]int{1}))
	assert.True(t, sorting.IsSorted([]int{1, 1, 2, 3, 3}))
	assert.False(t, sorting.IsSorted([]int{1, 3, 2}))
}

const (
	maxInt = int(^uint(0) >> 1)
	minInt = -maxInt - 1
)
