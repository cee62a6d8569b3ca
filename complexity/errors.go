// SPDX-License-Identifier: MIT

package complexity

import "errors"

var (
	// ErrOptionViolation is returned when an Option carries a meaningless value.
	ErrOptionViolation = errors.New("complexity: invalid option supplied")

	// ErrBadSize is returned by RandomSequence for a negative length.
	ErrBadSize = errors.New("complexity: invalid sequence size")

	// ErrComplexityViolation is returned by the Verify methods when a slower
	// class did not cost more than a faster one.
	ErrComplexityViolation = errors.New("complexity: ordering between classes violated")

	// ErrMissingAlgorithm is returned by VerifyTiming when a requested
	// algorithm was not measured.
	ErrMissingAlgorithm = errors.New("complexity: algorithm not in report")

	// ErrUnsorted is returned by Run if a sort produced out-of-order output.
	ErrUnsorted = errors.New("complexity: sort produced unsorted output")
)
