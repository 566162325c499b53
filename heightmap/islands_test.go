package heightmap

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// componentSizes returns the sorted sizes of comps.
func componentSizes(comps [][]int) []int {
	sizes := make([]int, len(comps))
	for i, c := range comps {
		sizes[i] = len(c)
	}
	sort.Ints(sizes)
	return sizes
}

// TestIslands_Simple4 uses a 4×3 map with orthogonal connectivity.
//
// Map (sea level 0.5):
//
//	0.1 0.9 0.8 0.2
//	0.7 0.6 0.3 0.0
//	0.2 0.4 0.5 0.9
//
// Expected: 2 islands of sizes 4 and 2.
func TestIslands_Simple4(t *testing.T) {
	hm, err := FromValues([][]float64{
		{0.1, 0.9, 0.8, 0.2},
		{0.7, 0.6, 0.3, 0.0},
		{0.2, 0.4, 0.5, 0.9},
	})
	require.NoError(t, err)

	comps := hm.Islands(0.5, Conn4)
	assert.Equal(t, []int{2, 4}, componentSizes(comps))
	assert.Equal(t, 1, comps[0][0], "first component starts at its first row-major cell")
}

// TestIslands_Diagonal8 checks that corner-touching cells merge under Conn8
// and stay apart under Conn4.
//
//	1 0 0 0 1
//	0 1 0 1 0
//	0 0 1 0 0
//	0 1 0 1 0
//	1 0 0 0 1
func TestIslands_Diagonal8(t *testing.T) {
	hm, err := FromValues([][]float64{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	})
	require.NoError(t, err)

	assert.Equal(t, []int{9}, componentSizes(hm.Islands(1, Conn8)))
	assert.Len(t, hm.Islands(1, Conn4), 9)
}

// TestIslands_AllWater returns no components.
func TestIslands_AllWater(t *testing.T) {
	hm, _ := FromValues([][]float64{{0, 0}, {0, 0}})
	assert.Empty(t, hm.Islands(0.5, Conn4))
	assert.Equal(t, 0.0, hm.LandFraction(0.5))
	assert.Equal(t, 1.0, hm.LandFraction(0))
}

// TestIslands_NaNIsWater keeps Islands consistent with LandFraction when a
// cell is NaN: the NaN neither starts nor joins an island.
func TestIslands_NaNIsWater(t *testing.T) {
	hm, err := FromValues([][]float64{
		{math.NaN(), 0.9},
		{0.1, 0.1},
	})
	require.NoError(t, err)

	assert.Equal(t, [][]int{{1}}, hm.Islands(0.5, Conn4))
	assert.Equal(t, [][]int{{1}}, hm.Islands(0.5, Conn8))
	assert.Equal(t, 0.25, hm.LandFraction(0.5))

	all, err := FromValues([][]float64{{math.NaN(), math.NaN()}})
	require.NoError(t, err)
	assert.Empty(t, all.Islands(0, Conn8))
	assert.Equal(t, 0.0, all.LandFraction(0))
}
