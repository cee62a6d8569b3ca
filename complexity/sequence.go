// SPDX-License-Identifier: MIT

package complexity

import (
	"fmt"
	"math/rand"
)

// DefaultSeed replaces a zero seed so that default runs are reproducible.
const DefaultSeed int64 = 1

// RandomSequence returns n values drawn uniformly from [0, n), generated
// deterministically from seed (seed==0 ⇒ DefaultSeed). n==0 yields an empty,
// non-nil slice.
//
// Complexity: O(n) time and space.
func RandomSequence(n int, seed int64) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadSize, n)
	}
	if seed == 0 {
		seed = DefaultSeed
	}
	r := rand.New(rand.NewSource(seed))

	out := make([]int, n)
	for i := range out {
		out[i] = r.Intn(n)
	}
	return out, nil
}
