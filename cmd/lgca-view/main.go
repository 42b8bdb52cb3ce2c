//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"runtime"

	"lgca/internal/app"
	"lgca/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := sim.DefaultConfig()

	width := flag.Int("width", 256, "grid width in cells")
	height := flag.Int("height", 256, "grid height in cells")
	downscale := flag.Int("downscale", 2, "block edge length; one screen pixel per block")
	coloring := flag.String("coloring", cfg.Coloring.String(), "block coloring policy: density or velocity")
	seed := flag.Int64("seed", cfg.Seed, "seed for the random fills")
	workers := flag.Int("workers", runtime.NumCPU(), "worker goroutines per update step")
	fill := flag.Float64("fill", cfg.InitialFill, "background occupation probability at start")
	scale := flag.Int("scale", 3, "pixel scale multiplier")
	tps := flag.Int("tps", 60, "simulation steps per second")
	flag.Parse()

	cfg.Width = *width
	cfg.Height = *height
	cfg.Downscale = *downscale
	cfg.Seed = *seed
	cfg.Workers = *workers
	cfg.InitialFill = *fill
	cfg.InitialRegions = []sim.Source{
		{X: *width * 3 / 8, Y: *height * 3 / 8, W: *width / 4, H: *height / 4, Density: 1.0},
	}

	var err error
	if cfg.Coloring, err = sim.ParseColoring(*coloring); err != nil {
		log.Fatal(err)
	}

	runner, err := app.NewRunner(cfg, nil, "")
	if err != nil {
		log.Fatal(err)
	}

	game := app.NewGame(runner, *scale, *tps, cfg.Seed)
	w, h := cfg.Width/cfg.Downscale, cfg.Height/cfg.Downscale

	ebiten.SetWindowTitle("lgca")
	ebiten.SetWindowSize(w*(*scale), h*(*scale))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
