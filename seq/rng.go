// RNG utilities for the treap variant's priority source.
//
// Grounded on tsp/rng.go's deterministic-RNG-factory idiom: the treap
// must be reproducible under a fixed seed, so construction always goes
// through rngFromSeed rather than a time-based source.
package seq

import "math/rand"

// defaultTreapSeed is used when NewTreap is called with seed == 0, so
// that a Treap is always reproducible even when a caller does not care
// to pick a seed.
const defaultTreapSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand. seed == 0 maps to
// defaultTreapSeed; any other value is used verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultTreapSeed
	}
	return rand.New(rand.NewSource(s))
}
