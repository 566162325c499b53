package noise

import "math"

// octaveState is the value carried from one octave to the next.
type octaveState struct {
	xi, yi, zi int     // integer lattice coordinates
	xf, yf, zf float64 // fractional offsets in [0,1)
	amp        float64 // amplitude of the octave about to be sampled
	sum        float64 // accumulated result
}

// Noise returns the fractal lattice noise at (x, y, z).
//
// Negative coordinates are folded to their absolute value, so the field is
// mirrored across every axis. NaN or infinite input yields NaN.
//
// The first call builds the lattice if it does not exist yet.
//
// Complexity: O(octaves) time, no allocation after the first call.
func (f *Field) Noise(x, y, z float64) float64 {
	if isNonFinite(x) || isNonFinite(y) || isNonFinite(z) {
		return math.NaN()
	}
	lattice, octaves, falloff := f.snapshot()

	s := newOctaveState(math.Abs(x), math.Abs(y), math.Abs(z))
	for o := 0; o < octaves; o++ {
		s = f.octave(lattice, s, falloff)
	}
	return s.sum
}

// Noise1D returns Noise(x, 0, 0).
func (f *Field) Noise1D(x float64) float64 {
	return f.Noise(x, 0, 0)
}

// Noise2D returns Noise(x, y, 0).
func (f *Field) Noise2D(x, y float64) float64 {
	return f.Noise(x, y, 0)
}

// Noise3D is an alias of Noise.
func (f *Field) Noise3D(x, y, z float64) float64 {
	return f.Noise(x, y, z)
}

// Eval3 lets a Field serve as a generic 3D noise source.
func (f *Field) Eval3(x, y, z float64) float64 {
	return f.Noise(x, y, z)
}

// newOctaveState splits non-negative coordinates into lattice and fraction parts.
func newOctaveState(x, y, z float64) octaveState {
	xi, yi, zi := math.Floor(x), math.Floor(y), math.Floor(z)
	return octaveState{
		xi: int(xi), yi: int(yi), zi: int(zi),
		xf: x - xi, yf: y - yi, zf: z - zi,
		amp: initialAmplitude,
	}
}

// octave samples one layer at s and returns the state for the next, twice as
// fine, layer.
func (f *Field) octave(lattice []float64, s octaveState, falloff float64) octaveState {
	rxf, ryf, rzf := smooth(s.xf), smooth(s.yf), smooth(s.zf)
	of := s.xi + (s.yi << YWrapBits) + (s.zi << ZWrapBits)
	m := f.mask

	// near z plane
	n1 := lerp(lattice[of&m], lattice[(of+1)&m], rxf)
	n2 := lerp(lattice[(of+YWrap)&m], lattice[(of+YWrap+1)&m], rxf)
	n1 = lerp(n1, n2, ryf)

	// far z plane
	of += ZWrap
	n2 = lerp(lattice[of&m], lattice[(of+1)&m], rxf)
	n3 := lerp(lattice[(of+YWrap)&m], lattice[(of+YWrap+1)&m], rxf)
	n2 = lerp(n2, n3, ryf)

	n1 = lerp(n1, n2, rzf)

	next := octaveState{
		sum: s.sum + n1*s.amp,
		amp: s.amp * falloff,
	}
	next.xi, next.xf = double(s.xi, s.xf)
	next.yi, next.yf = double(s.yi, s.yf)
	next.zi, next.zf = double(s.zi, s.zf)
	return next
}

// double scales a split coordinate by two, carrying a fractional overflow
// into the integer part so the fraction stays in [0,1).
func double(i int, frac float64) (int, float64) {
	i <<= 1
	frac *= 2
	if frac >= 1.0 {
		i++
		frac--
	}
	return i, frac
}

func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
