// Package lvnoise is a small procedural-noise toolkit built around a seedable
// lattice noise field in the Processing/Perlin noise() lineage.
//
// 🚀 What is inside?
//
//	noise/        Field: multi-octave lattice noise, cosine-eased trilinear
//	              interpolation, lazy thread-safe lattice, Reseed/SetDetail
//	heightmap/    sample any 3D Source (Field, OpenSimplex, gradient Perlin)
//	              over a grid in parallel; stats, normalization, islands
//	cmd/noisegen  render a heightmap to PNG from flags or a TOML file
//
// Quick start:
//
//	f, _ := noise.New(noise.WithSeed(42))
//	v := f.Noise(0.5, 0.5, 0) // 0.4772916050721467
//
//	go get github.com/katalvlaran/lvnoise/noise
package lvnoise
