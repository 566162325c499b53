package main

import (
	"flag"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds the noisegen parameters. TOML keys match the flag names.
type Config struct {
	Source   string  `toml:"source"`
	Seed     int64   `toml:"seed"`
	Octaves  int     `toml:"octaves"`
	Falloff  float64 `toml:"falloff"`
	Lattice  int     `toml:"lattice"`
	Width    int     `toml:"width"`
	Height   int     `toml:"height"`
	Scale    float64 `toml:"scale"`
	Z        float64 `toml:"z"`
	Workers  int     `toml:"workers"`
	SeaLevel float64 `toml:"sea"`
	Out      string  `toml:"out"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Source:   "lattice",
		Seed:     42,
		Octaves:  4,
		Falloff:  0.5,
		Lattice:  4096,
		Width:    256,
		Height:   256,
		Scale:    0.02,
		Workers:  4,
		SeaLevel: 0.5,
		Out:      "noise.png",
	}
}

// Load decodes a TOML file over the current values. Keys absent from the
// file keep their value.
func (c *Config) Load(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return fmt.Errorf("load %s: unknown keys %v", path, keys)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Source, "source", c.Source, "noise source: lattice, simplex or perlin")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed")
	fs.IntVar(&c.Octaves, "octaves", c.Octaves, "summed noise layers")
	fs.Float64Var(&c.Falloff, "falloff", c.Falloff, "per-octave amplitude falloff in (0,1)")
	fs.IntVar(&c.Lattice, "lattice", c.Lattice, "lattice size (power of two)")
	fs.IntVar(&c.Width, "width", c.Width, "image width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "image height in cells")
	fs.Float64Var(&c.Scale, "scale", c.Scale, "noise-space distance between cells")
	fs.Float64Var(&c.Z, "z", c.Z, "z slice through 3D noise")
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel row samplers")
	fs.Float64Var(&c.SeaLevel, "sea", c.SeaLevel, "sea level on the normalized map for island counting")
	fs.StringVar(&c.Out, "out", c.Out, "output PNG path")
}

// Parse resolves configuration: defaults, then the -config TOML file, then
// flags given explicitly on the command line.
func Parse(args []string) (*Config, error) {
	cfg := NewConfig()

	// first pass only finds -config; unknown flags are handled below
	pre := flag.NewFlagSet("noisegen", flag.ContinueOnError)
	path := pre.String("config", "", "TOML configuration file")
	cfg.Bind(pre)
	if err := pre.Parse(args); err != nil {
		return nil, err
	}
	if *path == "" {
		return cfg.validated()
	}

	cfg = NewConfig()
	if err := cfg.Load(*path); err != nil {
		return nil, err
	}
	fs := flag.NewFlagSet("noisegen", flag.ContinueOnError)
	fs.String("config", *path, "TOML configuration file")
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg.validated()
}

func (c *Config) validated() (*Config, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate rejects settings that no source can use. Lattice-specific limits
// (falloff, lattice size) are left to noise.New.
func (c *Config) Validate() error {
	switch c.Source {
	case "lattice", "simplex", "perlin":
	default:
		return fmt.Errorf("config: unknown source %q", c.Source)
	}
	if c.Octaves < 1 {
		return fmt.Errorf("config: octaves=%d must be >= 1", c.Octaves)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: size %dx%d must be positive", c.Width, c.Height)
	}
	if !(c.Scale > 0) {
		return fmt.Errorf("config: scale=%v must be > 0", c.Scale)
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: workers=%d must be >= 1", c.Workers)
	}
	return nil
}
