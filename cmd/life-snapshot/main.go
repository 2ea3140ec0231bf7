package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"time"

	"lifedots/internal/app"
	"lifedots/internal/core"
	"lifedots/internal/life"
	"lifedots/internal/render"
)

// stepClock advances by the configured speed on every read so each Update
// fires the pending tick.
type stepClock struct {
	now  time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

func main() {
	gens := flag.Int("gens", 100, "generations to simulate")
	out := flag.String("out", "life.png", "output PNG path")
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if *gens < 0 {
		log.Fatalf("gens must not be negative, got %d", *gens)
	}
	opts, err := cfg.Options()
	if err != nil {
		log.Fatal(err)
	}
	opts.Clock = &stepClock{now: time.Unix(0, 0), step: time.Duration(opts.Speed * float64(time.Second))}

	w, h := cfg.CanvasSize()
	raster := render.NewRaster(w, h)
	ctrl, err := life.NewController(opts, render.NewRenderer(core.NewRNG(opts.Seed)), raster)
	if err != nil {
		log.Fatal(err)
	}
	initial := ctrl.Grid().Population()

	start := time.Now()
	if *gens > 0 {
		ctrl.Start()
		for ctrl.Generation() < *gens {
			ctrl.Update()
		}
		ctrl.Pause()
	}
	elapsed := time.Since(start)

	if err := writePNG(*out, raster, ctrl.Theme()); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("seed=%d gens=%d population %d -> %d (%s) wrote %s\n",
		opts.Seed, ctrl.Generation(), initial, ctrl.Grid().Population(), elapsed.Round(time.Millisecond), *out)
}

func writePNG(path string, raster *render.Raster, theme core.Theme) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, raster.Composite(render.PaletteFor(theme).Background)); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
