package noise

// New builds a Field from opts. Configuration is validated here, never on
// first use:
//
//   - ErrLatticeSize: lattice size is not a positive power of two, or exceeds MaxLatticeSize.
//   - ErrOctaves: octaves < 1.
//   - ErrFalloff: falloff outside (0,1).
//   - ErrNilRand: WithRand(nil).
//
// Without WithSeed or WithRand the lattice is seeded from the wall clock;
// Seed reports the value used.
//
// The lattice itself is built lazily on the first query.
func New(opts ...Option) (*Field, error) {
	cfg := newFieldConfig(opts...)
	if err := cfg.validate(methodNew); err != nil {
		return nil, err
	}
	resolveSeed(&cfg)

	f := &Field{
		octaves:     cfg.octaves,
		falloff:     cfg.falloff,
		latticeSize: cfg.latticeSize,
		mask:        cfg.latticeSize - 1,
		seed:        cfg.seed,
		seeded:      cfg.seeded,
		rng:         cfg.rng,
	}
	if f.rng == nil {
		f.rng = rngFromSeed(f.seed)
	}
	return f, nil
}

// Reseed replaces the random source with a fresh one seeded by seed and
// rebuilds the lattice immediately. It is mutually exclusive with queries.
func (f *Field) Reseed(seed int64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seed, f.seeded = seed, true
	f.rng = rngFromSeed(seed)
	f.lattice = fillLattice(f.rng, f.latticeSize)
}

// SetDetail changes the octave count and amplitude falloff of a live Field.
// The lattice is kept. On error the Field is left unchanged.
func (f *Field) SetDetail(octaves int, falloff float64) error {
	if err := validateDetail(methodSetDetail, octaves, falloff); err != nil {
		return err
	}
	f.mu.Lock()
	f.octaves, f.falloff = octaves, falloff
	f.mu.Unlock()
	return nil
}
