// SPDX-License-Identifier: MIT
// Package: lvnoise/noise
//
// types.go: lattice geometry, defaults and the Field type.

package noise

import "sync"

// Lattice geometry. A flat lattice offset is xi + yi<<YWrapBits + zi<<ZWrapBits,
// so neighbouring rows sit YWrap apart and neighbouring planes ZWrap apart.
const (
	// YWrapBits is the shift applied to the y lattice coordinate.
	YWrapBits = 4
	// YWrap is the lattice stride between adjacent y cells.
	YWrap = 1 << YWrapBits
	// ZWrapBits is the shift applied to the z lattice coordinate.
	ZWrapBits = 8
	// ZWrap is the lattice stride between adjacent z cells.
	ZWrap = 1 << ZWrapBits
)

// Defaults applied by New when no option overrides them.
const (
	// DefaultLatticeSize is the number of addressable lattice cells (2^12).
	DefaultLatticeSize = 4096
	// DefaultOctaves is the number of summed noise layers.
	DefaultOctaves = 4
	// DefaultFalloff is the per-octave amplitude multiplier.
	DefaultFalloff = 0.5
	// MaxLatticeSize bounds the lattice so its table (8 bytes per cell) is
	// allocated predictably at first use: 2^24 cells, 128 MiB.
	MaxLatticeSize = 1 << 24
)

// initialAmplitude weights the first octave; later octaves are scaled by falloff.
const initialAmplitude = 0.5

// RandSource is the uniform random source used to fill the lattice.
// Float64 must return values in [0,1). *math/rand.Rand satisfies it.
//
// A RandSource is only called while the Field holds its write lock, so it
// need not be goroutine-safe unless the caller shares it elsewhere.
type RandSource interface {
	Float64() float64
}

// Field is a lattice noise generator. The zero value is not usable; build one
// with New.
//
// A Field is safe for concurrent use. The lattice is built on the first query
// (or by Reseed) under mu and is read-only afterwards.
type Field struct {
	mu sync.RWMutex

	octaves     int
	falloff     float64
	latticeSize int
	mask        int
	seed        int64
	seeded      bool

	rng     RandSource
	lattice []float64
}

// Octaves returns the number of summed noise layers.
func (f *Field) Octaves() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.octaves
}

// Falloff returns the per-octave amplitude multiplier.
func (f *Field) Falloff() float64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.falloff
}

// LatticeSize returns the number of addressable lattice cells.
func (f *Field) LatticeSize() int {
	return f.latticeSize
}

// Seed returns the seed the current lattice derives from. ok is false when
// the lattice is driven by a caller-supplied RandSource (see WithRand).
func (f *Field) Seed() (seed int64, ok bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.seed, f.seeded
}
