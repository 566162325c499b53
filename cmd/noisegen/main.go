// Command noisegen renders a noise heightmap to a grayscale PNG and reports
// its statistics and island count.
//
//	noisegen -seed 7 -octaves 6 -scale 0.01 -out terrain.png
//	noisegen -config terrain.toml -source simplex
package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"os/signal"

	"github.com/katalvlaran/lvnoise/heightmap"
	"github.com/katalvlaran/lvnoise/noise"
)

func main() {
	cfg, err := Parse(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal(err)
	}
}

// run builds the source, samples the map and writes the image.
func run(ctx context.Context, cfg *Config) error {
	src, err := newSource(cfg)
	if err != nil {
		return err
	}

	opts := heightmap.Options{Scale: cfg.Scale, Z: cfg.Z, Workers: cfg.Workers}
	hm, err := heightmap.New(ctx, src, cfg.Width, cfg.Height, opts)
	if err != nil {
		return err
	}
	lo, hi, mean := hm.Stats()
	norm := hm.Normalize()
	islands := norm.Islands(cfg.SeaLevel, heightmap.Conn4)
	log.Printf("%s %dx%d: min=%.4f max=%.4f mean=%.4f land=%.1f%% islands=%d",
		cfg.Source, hm.Width, hm.Height, lo, hi, mean, 100*norm.LandFraction(cfg.SeaLevel), len(islands))

	if err := writePNG(cfg.Out, norm); err != nil {
		return err
	}
	log.Printf("wrote %s", cfg.Out)
	return nil
}

// newSource maps the configured source name to a heightmap.Source.
func newSource(cfg *Config) (heightmap.Source, error) {
	switch cfg.Source {
	case "lattice":
		f, err := noise.New(
			noise.WithSeed(cfg.Seed),
			noise.WithOctaves(cfg.Octaves),
			noise.WithFalloff(cfg.Falloff),
			noise.WithLatticeSize(cfg.Lattice),
		)
		if err != nil {
			return nil, err
		}
		return f, nil
	case "simplex":
		return heightmap.Simplex(cfg.Seed), nil
	case "perlin":
		return heightmap.Perlin(2, 2, int32(cfg.Octaves), cfg.Seed), nil
	default:
		return nil, fmt.Errorf("unknown source %q", cfg.Source)
	}
}

// writePNG stores a [0,1] heightmap as an 8-bit grayscale image.
func writePNG(path string, hm *heightmap.Heightmap) error {
	img := image.NewGray(image.Rect(0, 0, hm.Width, hm.Height))
	for y := 0; y < hm.Height; y++ {
		for x := 0; x < hm.Width; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(hm.At(x, y)*255 + 0.5)})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
