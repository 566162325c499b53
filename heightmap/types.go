package heightmap

import "runtime"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// offsets returns the neighbor deltas for c.
func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}
	return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}

// Options contains tunable parameters for sampling.
type Options struct {
	// Scale is the distance in noise space between adjacent cells.
	Scale float64
	// Z is the fixed third coordinate of every sample.
	Z float64
	// OffsetX and OffsetY shift the sampled window in noise space.
	OffsetX, OffsetY float64
	// Workers bounds the number of rows sampled concurrently.
	Workers int
}

// DefaultOptions returns Options with Scale=0.02, Z=0, no offset and one
// worker per CPU.
func DefaultOptions() Options {
	return Options{
		Scale:   0.02,
		Workers: runtime.GOMAXPROCS(0),
	}
}

// Heightmap is a Width×Height grid of samples. It is immutable once built;
// Normalize returns a new map.
type Heightmap struct {
	Width, Height int
	// Cells holds the samples in row-major order: Cells[y*Width+x].
	Cells []float64
}
