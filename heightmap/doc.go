// Package heightmap samples a 3D noise source over a rectangular grid and
// analyses the result as terrain.
//
// What:
//
//   - Heightmap stores Width×Height samples in row-major order.
//   - New fills it from any Source (a *noise.Field, OpenSimplex, gradient Perlin)
//     with rows sampled in parallel.
//   - Stats / Normalize summarize and rescale the samples.
//   - Islands finds connected regions of cells at or above a sea level.
//
// Why:
//
//   - Game maps: procedural terrain, land/water masks, island counting.
//   - Comparing noise generators on the same grid.
//
// Complexity:
//
//   - New:       O(W×H×cost(Source)), Memory: O(W×H).
//   - Stats:     O(W×H).
//   - Normalize: O(W×H), Memory: O(W×H).
//   - Islands:   O(W×H×d), Memory: O(W×H)    (d = 4 or 8 neighbors).
//
// Options:
//
//   - Options.Scale:            lattice units per cell (> 0).
//   - Options.Z:                fixed third coordinate (slice through 3D noise).
//   - Options.OffsetX/OffsetY:  origin of the sampled window.
//   - Options.Workers:          parallel row samplers (>= 1).
//
// Errors:
//
//   - ErrEmptyMap: width or height is zero, or input values have no rows/columns.
//   - ErrNonRectangular: input rows have differing lengths.
//   - ErrNilSource: no Source given.
//   - ErrBadScale: Scale is not a positive finite number.
//   - ErrBadOffset: OffsetX, OffsetY or Z is NaN or infinite.
//   - ErrBadWorkers: Workers < 1.
package heightmap
