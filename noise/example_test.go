package noise_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnoise/noise"
)

// ExampleField_Noise samples a seeded Field with the default detail.
//
// Scenario:
//
//	Seed 42, 4 octaves, falloff 0.5, 4096-cell lattice.
//	Negative inputs mirror positive ones.
//
// Complexity: O(octaves) per query.
func ExampleField_Noise() {
	f, err := noise.New(noise.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.6f\n", f.Noise(0.5, 0.5, 0))
	fmt.Println(f.Noise(1.7, 2.25, 3.5) == f.Noise(-1.7, -2.25, -3.5))
	// Output:
	// 0.477292
	// true
}

// ExampleNew_invalidLattice shows how configuration errors surface.
func ExampleNew_invalidLattice() {
	_, err := noise.New(noise.WithLatticeSize(100))
	fmt.Println(errors.Is(err, noise.ErrLatticeSize), errors.Is(err, noise.ErrConfig))
	// Output:
	// true true
}

// ExampleField_SetDetail lowers the detail of a live Field.
func ExampleField_SetDetail() {
	f, _ := noise.New(noise.WithSeed(42))
	if err := f.SetDetail(1, 0.5); err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("octaves=%d value=%.6f\n", f.Octaves(), f.Noise2D(0.5, 0.5))
	// Output:
	// octaves=1 value=0.233413
}
