package app

import (
	"fmt"
	"path/filepath"

	"lgca/internal/encode"
	"lgca/internal/render"
	"lgca/internal/sim"
)

// Progress is invoked after every completed step.
type Progress func(step, total int)

// Runner drives one simulation: it owns the two grid buffers, injects the
// sources, steps the engine, swaps the buffers, and hands finished frames
// to the encoder. The encoder may be nil for callers that never write
// frames, such as the interactive viewer.
type Runner struct {
	cfg    sim.Config
	cur    *sim.Grid
	next   *sim.Grid
	rng    *sim.RNG
	enc    encode.FrameEncoder
	outDir string
	frame  []byte
}

// NewRunner validates the configuration, allocates both grid buffers, and
// applies the initial conditions.
func NewRunner(cfg sim.Config, enc encode.FrameEncoder, outDir string) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w, h := cfg.Width/cfg.Downscale, cfg.Height/cfg.Downscale
	r := &Runner{
		cfg:    cfg,
		cur:    sim.NewGrid(cfg.Width, cfg.Height),
		next:   sim.NewGrid(cfg.Width, cfg.Height),
		rng:    sim.NewRNG(cfg.Seed),
		enc:    enc,
		outDir: outDir,
		frame:  make([]byte, w*h*3),
	}
	r.init()
	return r, nil
}

// Config returns the run configuration.
func (r *Runner) Config() sim.Config { return r.cfg }

// Grid returns the buffer holding the most recent completed state.
func (r *Runner) Grid() *sim.Grid { return r.cur }

// init lays down the starting state: background gas, one-time seed regions,
// and finally the edge walls, so a seed overlapping the rim cannot punch a
// hole in the box.
func (r *Runner) init() {
	if r.cfg.InitialFill > 0 {
		r.cur.FillRegion(0, 0, r.cfg.Width, r.cfg.Height, r.cfg.InitialFill, r.rng)
	}
	for _, s := range r.cfg.InitialRegions {
		s.Apply(r.cur, r.rng)
	}
	if r.cfg.EdgeBoundary {
		r.cur.SetBoundaryAtEdge()
	}
}

// Reset reinitializes both buffers from the given seed.
func (r *Runner) Reset(seed int64) {
	r.rng = sim.NewRNG(seed)
	r.cur.Clear()
	r.next.Clear()
	r.init()
}

// Advance runs one step: source injection, streaming and collision into the
// spare buffer, then the buffer swap.
func (r *Runner) Advance() {
	for _, s := range r.cfg.Sources {
		s.Apply(r.cur, r.rng)
	}
	sim.Step(r.cur, r.next, r.cfg.Workers)
	r.cur, r.next = r.next, r.cur
}

// WriteFrame renders the current state and persists it as frame n. A failed
// write leaves the grid buffers untouched, so the caller may keep stepping.
func (r *Runner) WriteFrame(n int) error {
	if r.enc == nil {
		return nil
	}
	render.FrameInto(r.frame, r.cur, r.cfg.Downscale, r.cfg.Coloring)
	w, h := render.FrameSize(r.cur, r.cfg.Downscale)
	dest := filepath.Join(r.outDir, fmt.Sprintf("image%d.png", n))
	if err := r.enc.Encode(r.frame, w, h, dest); err != nil {
		return fmt.Errorf("frame %d: %w", n, err)
	}
	return nil
}

// Run writes frame zero, then executes the configured number of steps,
// writing a frame every FrameSkip-th step and reporting progress after each
// step.
func (r *Runner) Run(progress Progress) error {
	if err := r.WriteFrame(0); err != nil {
		return err
	}
	for i := 1; i <= r.cfg.Iterations; i++ {
		r.Advance()
		if i%r.cfg.FrameSkip == 0 {
			if err := r.WriteFrame(i / r.cfg.FrameSkip); err != nil {
				return err
			}
		}
		if progress != nil {
			progress(i, r.cfg.Iterations)
		}
	}
	return nil
}
