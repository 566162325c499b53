package heightmap_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvnoise/heightmap"
	"github.com/katalvlaran/lvnoise/noise"
)

// benchmarkNew samples a 256×256 map from src with the given worker count.
func benchmarkNew(b *testing.B, src heightmap.Source, workers int) {
	opts := heightmap.DefaultOptions()
	opts.Workers = workers
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := heightmap.New(context.Background(), src, 256, 256, opts); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkNew_LatticeSerial samples lattice noise on one worker.
func BenchmarkNew_LatticeSerial(b *testing.B) {
	f, _ := noise.New(noise.WithSeed(42))
	benchmarkNew(b, f, 1)
}

// BenchmarkNew_LatticeParallel samples lattice noise on all CPUs.
func BenchmarkNew_LatticeParallel(b *testing.B) {
	f, _ := noise.New(noise.WithSeed(42))
	benchmarkNew(b, f, heightmap.DefaultOptions().Workers)
}

// BenchmarkNew_Simplex samples OpenSimplex for comparison.
func BenchmarkNew_Simplex(b *testing.B) {
	benchmarkNew(b, heightmap.Simplex(42), heightmap.DefaultOptions().Workers)
}

// BenchmarkIslands measures component search on a noise map.
func BenchmarkIslands(b *testing.B) {
	f, _ := noise.New(noise.WithSeed(42))
	hm, err := heightmap.New(context.Background(), f, 256, 256, heightmap.DefaultOptions())
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		hm.Islands(0.5, heightmap.Conn4)
	}
}
