package heightmap

// Islands finds all contiguous regions of land cells (value ≥ seaLevel; NaN
// cells are water, as in LandFraction),
// according to conn. Returns a slice of components; each component is a
// slice of row-major cell indices in BFS order. Components are ordered by
// their first cell in row-major scan.
//
// To convert an index back to (x,y), use Coordinate.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (hm *Heightmap) Islands(seaLevel float64, conn Connectivity) [][]int {
	seen := make([]bool, len(hm.Cells))
	offsets := conn.offsets()
	var comps [][]int

	for i0, v := range hm.Cells {
		if !(v >= seaLevel) || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			ux, uy := hm.Coordinate(queue[qi])
			for _, d := range offsets {
				vx, vy := ux+d[0], uy+d[1]
				if !hm.InBounds(vx, vy) {
					continue
				}
				vi := hm.index(vx, vy)
				if seen[vi] || !(hm.Cells[vi] >= seaLevel) {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// LandFraction returns the share of cells at or above seaLevel.
func (hm *Heightmap) LandFraction(seaLevel float64) float64 {
	land := 0
	for _, v := range hm.Cells {
		if v >= seaLevel {
			land++
		}
	}
	return float64(land) / float64(len(hm.Cells))
}
