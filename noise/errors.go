// SPDX-License-Identifier: MIT
// Package: lvnoise/noise
//
// errors.go: sentinel configuration errors for Field construction.

package noise

import (
	"errors"
	"fmt"
)

// ErrConfig is the class of every configuration error returned by New and
// SetDetail. Use errors.Is(err, ErrConfig) to detect any of them.
var ErrConfig = errors.New("noise: invalid configuration")

// Sentinel errors for Field configuration. Each one also matches ErrConfig.
var (
	// ErrLatticeSize indicates a lattice size that is not a positive power of two
	// or exceeds MaxLatticeSize.
	ErrLatticeSize = fmt.Errorf("%w: lattice size must be a positive power of two <= MaxLatticeSize", ErrConfig)

	// ErrOctaves indicates an octave count below 1.
	ErrOctaves = fmt.Errorf("%w: octaves must be >= 1", ErrConfig)

	// ErrFalloff indicates an amplitude falloff outside the open interval (0,1).
	ErrFalloff = fmt.Errorf("%w: amplitude falloff must be in (0,1)", ErrConfig)

	// ErrNilRand indicates WithRand was given a nil source.
	ErrNilRand = fmt.Errorf("%w: random source is nil", ErrConfig)
)

const (
	methodNew       = "New"
	methodSetDetail = "SetDetail"
)

// fieldErrorf prefixes err with the method name and a formatted detail,
// keeping err reachable through errors.Is.
func fieldErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
