package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"lgca/internal/app"
	"lgca/internal/encode"
	"lgca/internal/sim"
)

func main() {
	cfg := sim.DefaultConfig()

	width := flag.Int("width", cfg.Width, "grid width in cells")
	height := flag.Int("height", cfg.Height, "grid height in cells")
	downscale := flag.Int("downscale", cfg.Downscale, "block edge length; one image pixel per block")
	iterations := flag.Int("iterations", cfg.Iterations, "number of simulation steps")
	frameskip := flag.Int("frameskip", cfg.FrameSkip, "steps between rendered frames")
	coloring := flag.String("coloring", cfg.Coloring.String(), "block coloring policy: density or velocity")
	seed := flag.Int64("seed", cfg.Seed, "seed for the random fills")
	workers := flag.Int("workers", runtime.NumCPU(), "worker goroutines per update step")
	fill := flag.Float64("fill", cfg.InitialFill, "background occupation probability at start")
	edges := flag.Bool("edges", cfg.EdgeBoundary, "close the domain with wall cells")
	out := flag.String("out", "output", "directory for rendered frames")

	var seedRegions, sources []sim.Source
	flag.Func("seed-region", "one-time fill as x,y,w,h,p (repeatable; replaces the default center seed)", func(v string) error {
		s, err := parseRegion(v)
		if err != nil {
			return err
		}
		seedRegions = append(seedRegions, s)
		return nil
	})
	flag.Func("source", "per-step inflow region as x,y,w,h,p (repeatable)", func(v string) error {
		s, err := parseRegion(v)
		if err != nil {
			return err
		}
		sources = append(sources, s)
		return nil
	})
	flag.Parse()

	cfg.Width = *width
	cfg.Height = *height
	cfg.Downscale = *downscale
	cfg.Iterations = *iterations
	cfg.FrameSkip = *frameskip
	cfg.Seed = *seed
	cfg.Workers = *workers
	cfg.InitialFill = *fill
	cfg.EdgeBoundary = *edges
	cfg.InitialRegions = seedRegions
	if seedRegions == nil && cfg.Width >= 8 && cfg.Height >= 8 {
		// Default to a dense square over the middle sixteenth of the domain.
		cfg.InitialRegions = []sim.Source{
			{X: cfg.Width * 3 / 8, Y: cfg.Height * 3 / 8, W: cfg.Width / 4, H: cfg.Height / 4, Density: 1.0},
		}
	}
	cfg.Sources = sources

	var err error
	if cfg.Coloring, err = sim.ParseColoring(*coloring); err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatal(err)
	}

	runner, err := app.NewRunner(cfg, encode.PNG{}, *out)
	if err != nil {
		log.Fatal(err)
	}

	start := time.Now()
	err = runner.Run(func(step, total int) {
		printProgress(start, step, total)
	})
	fmt.Println()
	if err != nil {
		log.Fatal(err)
	}
}

// parseRegion reads a rectangle plus probability from "x,y,w,h,p".
func parseRegion(v string) (sim.Source, error) {
	var s sim.Source
	if _, err := fmt.Sscanf(v, "%d,%d,%d,%d,%f", &s.X, &s.Y, &s.W, &s.H, &s.Density); err != nil {
		return sim.Source{}, fmt.Errorf("want x,y,w,h,p: %w", err)
	}
	return s, nil
}

// printProgress rewrites a single status line with the step counter and a
// remaining-time estimate.
func printProgress(start time.Time, step, total int) {
	elapsed := time.Since(start).Seconds()
	remaining := 0
	if perSec := float64(step) / elapsed; perSec > 0 {
		remaining = int(float64(total-step) / perSec)
	}
	fmt.Printf("\r\x1B[2Kstep: %d/%d  time remaining: %dhr %dmin %dsec",
		step, total, remaining/3600, remaining%3600/60, remaining%60)
}
