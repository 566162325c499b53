package noise

// ensureLattice returns the lattice, building it on first use.
// The fast path holds only the read lock; the build re-checks under the
// write lock so concurrent first callers share one table.
func (f *Field) ensureLattice() []float64 {
	f.mu.RLock()
	lattice := f.lattice
	f.mu.RUnlock()
	if lattice != nil {
		return lattice
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.lattice == nil {
		f.lattice = fillLattice(f.rng, f.latticeSize)
	}
	return f.lattice
}

// snapshot returns the lattice together with the detail settings it is
// sampled with, read under one lock so Reseed or SetDetail cannot land between
// them.
func (f *Field) snapshot() (lattice []float64, octaves int, falloff float64) {
	f.ensureLattice()
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.lattice, f.octaves, f.falloff
}

// Lattice returns a copy of the lattice, building it if needed.
// The returned slice has LatticeSize()+1 entries.
func (f *Field) Lattice() []float64 {
	lattice := f.ensureLattice()
	out := make([]float64, len(lattice))
	copy(out, lattice)
	return out
}
