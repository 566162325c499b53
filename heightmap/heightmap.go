package heightmap

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"
)

// New samples src over a width×height grid. Cell (x,y) holds
//
//	src.Eval3(OffsetX + x·Scale, OffsetY + y·Scale, Z)
//
// Rows are sampled by up to opts.Workers goroutines; ctx cancellation stops
// outstanding rows and is returned as the error.
// Algorithmic complexity: O(W×H) samples, O(W×H) memory.
func New(ctx context.Context, src Source, width, height int, opts Options) (*Heightmap, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("New: %dx%d: %w", width, height, ErrEmptyMap)
	}
	if !(opts.Scale > 0) || !isFinite(opts.Scale) {
		return nil, fmt.Errorf("New: scale=%v: %w", opts.Scale, ErrBadScale)
	}
	if !isFinite(opts.OffsetX) || !isFinite(opts.OffsetY) || !isFinite(opts.Z) {
		return nil, fmt.Errorf("New: offset=(%v,%v) z=%v: %w", opts.OffsetX, opts.OffsetY, opts.Z, ErrBadOffset)
	}
	if opts.Workers < 1 {
		return nil, fmt.Errorf("New: workers=%d: %w", opts.Workers, ErrBadWorkers)
	}

	hm := &Heightmap{Width: width, Height: height, Cells: make([]float64, width*height)}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for y := 0; y < height; y++ {
		y := y // per-iteration copy (Go 1.22 loopvar semantics under go 1.21 directive)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			row := hm.Cells[y*width : (y+1)*width]
			sy := opts.OffsetY + float64(y)*opts.Scale
			for x := range row {
				row[x] = src.Eval3(opts.OffsetX+float64(x)*opts.Scale, sy, opts.Z)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return hm, nil
}

// FromValues builds a Heightmap from a non-empty, rectangular 2D slice
// indexed values[y][x]. The input is copied.
// Returns ErrEmptyMap if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
func FromValues(values [][]float64) (*Heightmap, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyMap
	}
	h, w := len(values), len(values[0])
	cells := make([]float64, 0, w*h)
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells = append(cells, row...)
	}
	return &Heightmap{Width: w, Height: h, Cells: cells}, nil
}

// At returns the sample at (x,y). It panics if (x,y) is out of bounds, like
// a slice index.
func (hm *Heightmap) At(x, y int) float64 {
	return hm.Cells[hm.index(x, y)]
}

// InBounds reports whether (x,y) lies within the map.
// Complexity: O(1).
func (hm *Heightmap) InBounds(x, y int) bool {
	return x >= 0 && x < hm.Width && y >= 0 && y < hm.Height
}

// index maps (x,y) to a row-major index: y*Width + x.
func (hm *Heightmap) index(x, y int) int {
	return y*hm.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (hm *Heightmap) Coordinate(idx int) (x, y int) {
	return idx % hm.Width, idx / hm.Width
}

// Stats returns the minimum, maximum and arithmetic mean of all samples.
func (hm *Heightmap) Stats() (lo, hi, mean float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	var sum float64
	for _, v := range hm.Cells {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
		sum += v
	}
	return lo, hi, sum / float64(len(hm.Cells))
}

// Normalize returns a copy remapped linearly so the lowest sample becomes 0
// and the highest 1. A flat map normalizes to all zeros.
func (hm *Heightmap) Normalize() *Heightmap {
	lo, hi, _ := hm.Stats()
	out := &Heightmap{Width: hm.Width, Height: hm.Height, Cells: make([]float64, len(hm.Cells))}
	if hi == lo {
		return out
	}
	for i, v := range hm.Cells {
		out.Cells[i] = unlerp(lo, hi, v)
	}
	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// unlerp returns where v sits between a and b, as a fraction.
func unlerp[T constraints.Float](a, b, v T) T {
	return (v - a) / (b - a)
}
