package heightmap

import (
	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Source is any 3D scalar noise. *noise.Field and opensimplex.Noise satisfy
// it directly. Implementations must be safe for concurrent Eval3 calls.
type Source interface {
	Eval3(x, y, z float64) float64
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(x, y, z float64) float64

// Eval3 calls fn(x, y, z).
func (fn SourceFunc) Eval3(x, y, z float64) float64 {
	return fn(x, y, z)
}

// Simplex returns an OpenSimplex source normalized to [0,1].
func Simplex(seed int64) Source {
	return opensimplex.NewNormalized(seed)
}

// gradientPerlin wraps go-perlin's gradient noise.
type gradientPerlin struct {
	p *perlin.Perlin
}

// Perlin returns a classic gradient Perlin source. alpha is the weight of
// each successive octave (a higher value smooths the output), beta the
// frequency multiplier and n the octave count. Output is roughly in [-1,1].
func Perlin(alpha, beta float64, n int32, seed int64) Source {
	return gradientPerlin{p: perlin.NewPerlin(alpha, beta, n, seed)}
}

func (g gradientPerlin) Eval3(x, y, z float64) float64 {
	return g.p.Noise3D(x, y, z)
}
