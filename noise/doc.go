// Package noise implements a seedable, multi-octave lattice noise field in the
// classic Processing/Perlin noise() lineage.
//
// 🚀 What is a noise Field?
//
//	A Field holds a table ("lattice") of uniform random values in [0,1).
//	Querying Noise(x, y, z) looks up the 8 lattice corners around the point,
//	blends them with a cosine ease curve (trilinear interpolation) and sums
//	several octaves, each twice the frequency and a fraction of the amplitude
//	of the previous one. The result varies smoothly in space:
//	  • terrain heightmaps & cave densities
//	  • organic motion / jitter for animation
//	  • procedural textures (clouds, marble, wood)
//
// ✨ Key features:
//   - deterministic: same seed ⇒ identical lattice ⇒ identical values
//   - lazy lattice build guarded by sync.RWMutex (safe to share across goroutines)
//   - tunable detail: octaves, amplitude falloff, lattice size (power of two)
//   - Reseed / SetDetail to reconfigure a live Field
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvnoise/noise"
//
//	f, err := noise.New(
//	  noise.WithSeed(42),        // reproducible lattice
//	  noise.WithOctaves(6),      // more detail
//	  noise.WithFalloff(0.45),   // slightly smoother
//	)
//	if err != nil {
//	  // errors.Is(err, noise.ErrConfig)
//	}
//	h := f.Noise(0.5, 0.5, 0)
//
// Negative coordinates:
//
//	Inputs are folded to their absolute value before sampling, so the field
//	is mirrored across each axis: Noise(x,y,z) == Noise(-x,-y,-z). This
//	follows the classic implementation and deviates from canonical Perlin
//	noise, which extends across the origin without mirroring.
//
// Range:
//
//	Lattice values lie in [0,1) and the octave amplitudes sum to < 1 for
//	falloff ≤ 0.5, so with the defaults every output lies in [0,1).
//
// Non-finite input:
//
//	NaN or ±Inf coordinates yield NaN. No error is reported and the call
//	never panics.
//
// Performance:
//
//   - Noise:   O(octaves) time, no allocation
//   - Lattice: O(LatticeSize) time & memory, built once
package noise
