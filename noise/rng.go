// RNG utilities behind lattice generation.
//
// Goals:
//   - Determinism: same seed ⇒ identical lattice across platforms.
//   - Encapsulation: a single RNG factory; the Field never touches a global source.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. A Field owns its source and only
//     draws from it under its write lock.

package noise

import "math/rand"

// rngFromSeed returns a deterministic *rand.Rand for seed.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// fillLattice draws n+1 values from src. Only the first n cells are
// addressable through the mask; the trailing cell keeps the table length at
// LatticeSize+1 so a seed yields the same draw sequence as the classic table.
//
// Complexity: O(n) time, O(n) space.
func fillLattice(src RandSource, n int) []float64 {
	lattice := make([]float64, n+1)
	for i := range lattice {
		lattice[i] = src.Float64()
	}
	return lattice
}
