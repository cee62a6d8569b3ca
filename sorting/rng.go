// SPDX-License-Identifier: MIT

package sorting

import "math/rand"

// defaultRNGSeed replaces a zero seed so that PivotRandom is reproducible
// unless the caller asks for a specific stream.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed==0 ⇒ defaultRNGSeed.
// The returned RNG is owned by a single call and never shared.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}
