// SPDX-License-Identifier: MIT
// Package: lvnoise/noise
//
// options.go: functional options for New, resolved and validated in one place.

package noise

import (
	"math"
	"time"
)

// Option customizes a Field before construction.
// Options only record values; New validates the resolved configuration and
// reports violations as errors.
type Option func(*fieldConfig)

// fieldConfig collects option values before validation.
type fieldConfig struct {
	octaves     int
	falloff     float64
	latticeSize int
	seed        int64
	seeded      bool
	rng         RandSource
	rngSet      bool
}

// newFieldConfig applies opts over the package defaults.
func newFieldConfig(opts ...Option) fieldConfig {
	cfg := fieldConfig{
		octaves:     DefaultOctaves,
		falloff:     DefaultFalloff,
		latticeSize: DefaultLatticeSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithOctaves sets the number of summed noise layers (>= 1).
// More octaves add finer detail at O(n) cost per query.
func WithOctaves(n int) Option {
	return func(c *fieldConfig) {
		c.octaves = n
	}
}

// WithFalloff sets the per-octave amplitude multiplier, in (0,1).
// Lower values give smoother output.
func WithFalloff(falloff float64) Option {
	return func(c *fieldConfig) {
		c.falloff = falloff
	}
}

// WithLatticeSize sets the lattice resolution. It must be a power of two no
// larger than MaxLatticeSize: lattice offsets are reduced with a bit mask, not
// a modulo.
func WithLatticeSize(n int) Option {
	return func(c *fieldConfig) {
		c.latticeSize = n
	}
}

// WithSeed fills the lattice from a math/rand source seeded with seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *fieldConfig) {
		c.seed, c.seeded = seed, true
		c.rng, c.rngSet = nil, false
	}
}

// WithRand fills the lattice from src. It overrides any earlier WithSeed.
func WithRand(src RandSource) Option {
	return func(c *fieldConfig) {
		c.rng, c.rngSet = src, true
		c.seeded = false
	}
}

// validate checks the resolved configuration, in the order
// lattice size → octaves → falloff → rng.
func (c fieldConfig) validate(method string) error {
	if !isPowerOfTwo(c.latticeSize) || c.latticeSize > MaxLatticeSize {
		return fieldErrorf(method, ErrLatticeSize, "latticeSize=%d", c.latticeSize)
	}
	if err := validateDetail(method, c.octaves, c.falloff); err != nil {
		return err
	}
	if c.rngSet && c.rng == nil {
		return fieldErrorf(method, ErrNilRand, "WithRand(nil)")
	}
	return nil
}

// validateDetail checks the octave count and falloff shared by New and SetDetail.
func validateDetail(method string, octaves int, falloff float64) error {
	if octaves < 1 {
		return fieldErrorf(method, ErrOctaves, "octaves=%d", octaves)
	}
	if math.IsNaN(falloff) || falloff <= 0 || falloff >= 1 {
		return fieldErrorf(method, ErrFalloff, "falloff=%v", falloff)
	}
	return nil
}

// isPowerOfTwo reports whether n is a positive power of two.
func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// resolveSeed picks the seed for an unseeded, source-less Field.
func resolveSeed(c *fieldConfig) {
	if !c.seeded && !c.rngSet {
		c.seed, c.seeded = time.Now().UnixNano(), true
	}
}
