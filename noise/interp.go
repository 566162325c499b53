package noise

import (
	"github.com/fogleman/ease"
	"golang.org/x/exp/constraints"
)

// smooth maps a fractional lattice coordinate t ∈ [0,1) to a blend weight
// 0.5·(1 − cos(π·t)). The curve has zero slope at both cell edges, which keeps
// the interpolated field C¹ across lattice boundaries.
func smooth(t float64) float64 {
	return ease.InOutSine(t)
}

// lerp blends a toward b by t.
func lerp[T constraints.Float](a, b, t T) T {
	return a + t*(b-a)
}
