// SPDX-License-Identifier: MIT

package sorting

import (
	"errors"
	"fmt"
)

// Sentinel errors. Match them with errors.Is; returned errors carry the
// method name as a prefix, e.g. "QuickSort: sorting: input is nil".
var (
	// ErrNilInput is returned when the input slice is nil (absent sequence).
	// An empty, non-nil slice is valid input.
	ErrNilInput = errors.New("sorting: input is nil")

	// ErrOptionViolation is returned when an Option carries a meaningless value,
	// e.g. an unknown PivotPolicy.
	ErrOptionViolation = errors.New("sorting: invalid option supplied")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm and Sort for names or
	// values outside the six supported algorithms.
	ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")
)

// Method names used as error prefixes.
const (
	MethodBubble    = "BubbleSort"
	MethodSelection = "SelectionSort"
	MethodInsertion = "InsertionSort"
	MethodMerge     = "MergeSort"
	MethodQuick     = "QuickSort"
	MethodHeap      = "HeapSort"
	MethodSort      = "Sort"
)

// wrapf attaches method context to a sentinel while keeping it visible to errors.Is.
func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
